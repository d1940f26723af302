package onesignal

import (
	"errors"
	"fmt"
)

var (
	// ErrClientNil is returned when a method is called on a nil client.
	ErrClientNil = errors.New("onesignal client is nil")

	// ErrValidation is returned when a request is rejected locally, before
	// anything is sent.
	ErrValidation = errors.New("validation failed")

	// ErrTransport wraps failures of the underlying HTTP call.
	ErrTransport = errors.New("transport failure")

	// ErrParse is returned when a response body is not valid JSON.
	ErrParse = errors.New("failed to parse response body")
)

// APIError is returned when the OneSignal API answers with a non-2xx status.
type APIError struct {
	Method     string
	Path       string
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s %s failed with status %d: %s", e.Method, e.Path, e.StatusCode, e.Message)
}
