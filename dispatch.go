package onesignal

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

// Method is the HTTP method of an API call.
type Method int

const (
	MethodPost Method = iota
	MethodPut
)

func (m Method) String() string {
	switch m {
	case MethodPost:
		return "POST"
	case MethodPut:
		return "PUT"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// call is a fully assembled request, ready to be dispatched.
type call struct {
	method     Method
	endpoint   string
	body       []byte
	apiKey     string
	pathParams map[string]string
}

func newCall(method Method, endpoint string, params Params, apiKey string, pathParams map[string]string) (*call, error) {
	body, err := json.Marshal(params)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to encode request body: %w", ErrValidation, err)
	}

	return &call{
		method:     method,
		endpoint:   endpoint,
		body:       body,
		apiKey:     apiKey,
		pathParams: pathParams,
	}, nil
}

// Callback is invoked with the response of a successful asynchronous call.
type Callback func(*resty.Response)

// Result is the decoded JSON body of an API response.
type Result map[string]any

// ID returns the id of the created notification or player.
func (r Result) ID() string {
	id, _ := r["id"].(string)
	return id
}

// Recipients returns the number of players a notification was sent to.
func (r Result) Recipients() int {
	n, _ := r["recipients"].(float64)
	return int(n)
}

// Errors returns the errors member of the response, if any. OneSignal reports
// some partial failures with a 200 status and a list or object here.
func (r Result) Errors() any {
	return r["errors"]
}

// ParseResult decodes a response body. An empty body yields a nil Result.
func ParseResult(body []byte) (Result, error) {
	if len(strings.TrimSpace(string(body))) == 0 {
		return nil, nil
	}

	var result Result
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}

	return result, nil
}

// dispatch performs c synchronously and decodes the response.
func (c *Client) dispatch(ctx context.Context, cl *call) (Result, error) {
	resp, err := c.execute(ctx, cl)
	if err != nil {
		return nil, err
	}

	return ParseResult(resp.Body())
}

// dispatchAsync starts c in the background. cb, when non-nil, runs with the
// response once the call has succeeded.
func (c *Client) dispatchAsync(ctx context.Context, cl *call, cb Callback) *Future[*resty.Response] {
	return newFuture(ctx, func(ctx context.Context) (*resty.Response, error) {
		resp, err := c.execute(ctx, cl)
		if err != nil {
			return resp, err
		}

		if cb != nil {
			cb(resp)
		}

		return resp, nil
	})
}

func (c *Client) execute(ctx context.Context, cl *call) (*resty.Response, error) {
	requestID := uuid.NewString()
	logger := c.options.requestLogger

	req := c.http.R().
		SetContext(ctx).
		SetHeaders(buildHeaders(c.config.RESTAPIKey, cl.apiKey)).
		SetPathParams(cl.pathParams).
		SetBody(cl.body)

	logger.Debugf("onesignal: request %s: %s %s", requestID, cl.method, cl.endpoint)

	var (
		resp *resty.Response
		err  error
	)

	switch cl.method {
	case MethodPost:
		resp, err = req.Post(cl.endpoint)
	case MethodPut:
		resp, err = req.Put(cl.endpoint)
	default:
		return nil, fmt.Errorf("%w: unsupported method %s", ErrValidation, cl.method)
	}

	if err != nil {
		logger.Errorf("onesignal: request %s: %s %s failed: %v", requestID, cl.method, cl.endpoint, err)
		return resp, fmt.Errorf("%w: %s %s: %w", ErrTransport, cl.method, cl.endpoint, err)
	}

	if resp.IsError() {
		path := cl.endpoint
		if resp.Request != nil && resp.Request.RawRequest != nil {
			path = resp.Request.RawRequest.URL.Path
		}

		apiErr := &APIError{
			Method:     cl.method.String(),
			Path:       path,
			StatusCode: resp.StatusCode(),
			Message:    extractErrorMessage(resp.Body()),
		}
		logger.Warnf("onesignal: request %s: %v", requestID, apiErr)
		return resp, apiErr
	}

	logger.Debugf("onesignal: request %s: status %d in %v", requestID, resp.StatusCode(), resp.Time())

	return resp, nil
}

// extractErrorMessage pulls the messages out of OneSignal's
// {"errors": [...]} body, falling back to the raw body.
func extractErrorMessage(body []byte) string {
	raw := strings.TrimSpace(string(body))
	if raw == "" {
		return "(empty error body)"
	}

	var payload struct {
		Errors []string `json:"errors"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && len(payload.Errors) > 0 {
		return strings.Join(payload.Errors, "; ")
	}

	return raw
}
