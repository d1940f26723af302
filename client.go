package onesignal

import (
	"context"
	"crypto/tls"
	"fmt"
	"maps"

	"github.com/go-resty/resty/v2"
)

// Client sends notifications and manages players synchronously. A Client is
// immutable: AddParams, SetParam and Async return derived clients sharing the
// same transport, so one Client can be used from many goroutines.
type Client struct {
	config     Config
	options    *Options
	http       *resty.Client
	additional Params
}

// New validates cfg and the options and returns a ready to use client.
func New(cfg Config, opts ...Option) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	options := newClientOptions()
	for _, o := range opts {
		if o != nil {
			o(options)
		}
	}

	if err := options.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	rc := resty.New().
		SetBaseURL(options.baseURL).
		SetTimeout(options.timeout).
		SetLogger(options.requestLogger).
		SetHeaders(options.requestHeaders)

	if options.insecureSkipVerify {
		options.requestLogger.Warnf("onesignal: TLS certificate verification is disabled")
		rc.SetTLSClientConfig(&tls.Config{InsecureSkipVerify: true}) //nolint:gosec // explicit opt-in
	}

	return &Client{
		config:  cfg,
		options: options,
		http:    rc,
	}, nil
}

// Close releases idle connections held by the transport.
func (c *Client) Close() {
	if c == nil || c.http == nil {
		return
	}
	c.http.GetClient().CloseIdleConnections()
}

func (c *Client) AppID() string {
	return c.config.AppID
}

func (c *Client) UserAuthKey() string {
	return c.config.UserAuthKey
}

// TestCredentials describes the configured credentials. It includes the REST
// API key in clear text and is meant for local debugging only.
func (c *Client) TestCredentials() string {
	return "APP ID: " + c.config.AppID + " REST: " + c.config.RESTAPIKey
}

// AddParams returns a client that merges params into every notification it
// sends, replacing any previously added params.
func (c *Client) AddParams(params Params) *Client {
	out := c.derive()
	out.additional = maps.Clone(params)
	return out
}

// SetParam returns a client that additionally merges key=value into every
// notification it sends.
func (c *Client) SetParam(key string, value any) *Client {
	out := c.derive()
	out.additional = c.additional.clone()
	out.additional[key] = value
	return out
}

// Async returns a client whose calls run in the background and return a
// [Future].
func (c *Client) Async() *AsyncClient {
	return &AsyncClient{client: c}
}

func (c *Client) derive() *Client {
	out := *c
	return &out
}

// SendNotificationToUser sends message to a single player.
func (c *Client) SendNotificationToUser(ctx context.Context, message, userID string, opts ...NotificationOption) (Result, error) {
	if c == nil {
		return nil, ErrClientNil
	}
	return c.SendNotificationCustom(ctx, toUserParams(c.config.AppID, message, userID, opts))
}

// SendNotificationUsingTags sends message to the players matching tags. The
// tag expression is passed to the API as is.
func (c *Client) SendNotificationUsingTags(ctx context.Context, message string, tags any, opts ...NotificationOption) (Result, error) {
	if c == nil {
		return nil, ErrClientNil
	}
	return c.SendNotificationCustom(ctx, usingTagsParams(c.config.AppID, message, tags, opts))
}

// SendNotificationToAll sends message to every subscribed player.
func (c *Client) SendNotificationToAll(ctx context.Context, message string, opts ...NotificationOption) (Result, error) {
	if c == nil {
		return nil, ErrClientNil
	}
	return c.SendNotificationCustom(ctx, toAllParams(c.config.AppID, message, opts))
}

// SendNotificationToSegment sends message to the players of segment.
func (c *Client) SendNotificationToSegment(ctx context.Context, message, segment string, opts ...NotificationOption) (Result, error) {
	if c == nil {
		return nil, ErrClientNil
	}
	return c.SendNotificationCustom(ctx, toSegmentParams(c.config.AppID, message, segment, opts))
}

// SendNotificationToFilteredSegment sends message to the players of segments
// (All when empty) that match filters. The iOS badge is incremented.
func (c *Client) SendNotificationToFilteredSegment(ctx context.Context, message string, filters []Filter, segments []string, opts ...NotificationOption) (Result, error) {
	if c == nil {
		return nil, ErrClientNil
	}
	return c.SendNotificationCustom(ctx, toFilteredSegmentParams(c.config.AppID, message, filters, segments, opts))
}

// SendNotificationToUserByEmail is SendNotificationToFilteredSegment with an
// additional email filter.
func (c *Client) SendNotificationToUserByEmail(ctx context.Context, message, email string, filters []Filter, segments []string, opts ...NotificationOption) (Result, error) {
	return c.SendNotificationToFilteredSegment(ctx, message, emailFilters(filters, email), segments, opts...)
}

// SendNotificationCustom sends a notification built from params, see
// https://documentation.onesignal.com/reference/create-notification. app_id is
// filled in when blank and all players are targeted when params name neither
// segments nor player ids. The reserved api_key field overrides the REST API
// key for this request.
func (c *Client) SendNotificationCustom(ctx context.Context, params Params) (Result, error) {
	if c == nil {
		return nil, ErrClientNil
	}

	cl, err := c.notificationCall(params)
	if err != nil {
		return nil, err
	}

	return c.dispatch(ctx, cl)
}

// CreatePlayer registers a device. params must carry a numeric device_type.
func (c *Client) CreatePlayer(ctx context.Context, params Params) (Result, error) {
	if c == nil {
		return nil, ErrClientNil
	}

	cl, err := createPlayerCall(c.config.AppID, params)
	if err != nil {
		return nil, err
	}

	return c.dispatch(ctx, cl)
}

// EditPlayer updates the device identified by params["id"].
func (c *Client) EditPlayer(ctx context.Context, params Params) (Result, error) {
	if c == nil {
		return nil, ErrClientNil
	}

	cl, err := editPlayerCall(c.config.AppID, params)
	if err != nil {
		return nil, err
	}

	return c.dispatch(ctx, cl)
}

// prepareNotification finalises params on a copy: app_id first, then the
// default targeting, then the additional params which override everything.
func (c *Client) prepareNotification(params Params) Params {
	p := params.clone()
	ensureAppID(p, c.config.AppID)
	defaultTargeting(p)
	mergeAdditional(p, c.additional)
	return p
}

func (c *Client) notificationCall(params Params) (*call, error) {
	p := c.prepareNotification(params)
	apiKey := takeAPIKey(p)
	return newCall(MethodPost, endpointNotifications, p, apiKey, nil)
}
