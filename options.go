package onesignal

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"
)

// APIURL is the default OneSignal REST API base URL.
const APIURL = "https://onesignal.com/api/v1"

type Option func(*Options)

type Options struct {
	baseURL            string
	timeout            time.Duration
	requestLogger      RequestLogger
	requestHeaders     map[string]string
	insecureSkipVerify bool
}

func newClientOptions() *Options {
	return &Options{
		baseURL:       APIURL,
		timeout:       30 * time.Second,
		requestLogger: &NoopLogger{},
		requestHeaders: map[string]string{
			"Accept": "application/json",
		},
	}
}

// WithBaseURL overrides the API base URL. Empty values are ignored.
func WithBaseURL(baseURL string) Option {
	return func(o *Options) {
		baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
		if baseURL != "" {
			o.baseURL = baseURL
		}
	}
}

// WithTimeout sets the transport timeout applied to every request.
// A zero value disables the timeout; negative values are ignored.
func WithTimeout(timeout time.Duration) Option {
	return func(o *Options) {
		if timeout >= 0 {
			o.timeout = timeout
		}
	}
}

func WithRequestLogger(logger RequestLogger) Option {
	return func(o *Options) {
		if logger != nil {
			o.requestLogger = logger
		}
	}
}

// WithRequestHeader adds a static header to every request. Content-Type,
// Accept and Authorization are managed by the client and cannot be overridden.
func WithRequestHeader(header, value string) Option {
	return func(o *Options) {
		header = strings.TrimSpace(header)

		if header == "" ||
			strings.EqualFold(header, "Content-Type") ||
			strings.EqualFold(header, "Accept") ||
			strings.EqualFold(header, "Authorization") {
			return
		}

		o.requestHeaders[header] = value
	}
}

// WithInsecureSkipVerify disables TLS certificate verification. Only use this
// against test endpoints; verification is enabled by default.
func WithInsecureSkipVerify(skip bool) Option {
	return func(o *Options) {
		o.insecureSkipVerify = skip
	}
}

func (o *Options) Validate() error {
	if o.baseURL == "" {
		return errors.New("baseURL must be set")
	}

	u, err := url.Parse(o.baseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("baseURL %q is not an absolute URL", o.baseURL)
	}

	if o.timeout < 0 {
		return errors.New("timeout must be non-negative")
	}

	if o.timeout > 5*time.Minute {
		return fmt.Errorf("timeout must not exceed %v", 5*time.Minute)
	}

	if o.requestLogger == nil {
		return errors.New("requestLogger must not be nil")
	}

	return nil
}
