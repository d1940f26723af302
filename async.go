package onesignal

import (
	"context"

	"github.com/go-resty/resty/v2"
)

// AsyncClient is the non-blocking view of a [Client]. Every call returns a
// [Future] immediately; transport and API failures are reported through
// [Future.Await]. Like Client, an AsyncClient is immutable.
type AsyncClient struct {
	client   *Client
	callback Callback
}

// WithCallback returns an AsyncClient that runs cb with the response of every
// successful call before its future completes. A nil cb removes the callback.
func (a *AsyncClient) WithCallback(cb Callback) *AsyncClient {
	if a == nil {
		return &AsyncClient{callback: cb}
	}
	return &AsyncClient{client: a.client, callback: cb}
}

// Sync returns the blocking client.
func (a *AsyncClient) Sync() *Client {
	return a.client
}

func (a *AsyncClient) SendNotificationToUser(ctx context.Context, message, userID string, opts ...NotificationOption) *Future[*resty.Response] {
	if a == nil || a.client == nil {
		return failedFuture[*resty.Response](ErrClientNil)
	}
	return a.SendNotificationCustom(ctx, toUserParams(a.client.config.AppID, message, userID, opts))
}

func (a *AsyncClient) SendNotificationUsingTags(ctx context.Context, message string, tags any, opts ...NotificationOption) *Future[*resty.Response] {
	if a == nil || a.client == nil {
		return failedFuture[*resty.Response](ErrClientNil)
	}
	return a.SendNotificationCustom(ctx, usingTagsParams(a.client.config.AppID, message, tags, opts))
}

func (a *AsyncClient) SendNotificationToAll(ctx context.Context, message string, opts ...NotificationOption) *Future[*resty.Response] {
	if a == nil || a.client == nil {
		return failedFuture[*resty.Response](ErrClientNil)
	}
	return a.SendNotificationCustom(ctx, toAllParams(a.client.config.AppID, message, opts))
}

func (a *AsyncClient) SendNotificationToSegment(ctx context.Context, message, segment string, opts ...NotificationOption) *Future[*resty.Response] {
	if a == nil || a.client == nil {
		return failedFuture[*resty.Response](ErrClientNil)
	}
	return a.SendNotificationCustom(ctx, toSegmentParams(a.client.config.AppID, message, segment, opts))
}

func (a *AsyncClient) SendNotificationToFilteredSegment(ctx context.Context, message string, filters []Filter, segments []string, opts ...NotificationOption) *Future[*resty.Response] {
	if a == nil || a.client == nil {
		return failedFuture[*resty.Response](ErrClientNil)
	}
	return a.SendNotificationCustom(ctx, toFilteredSegmentParams(a.client.config.AppID, message, filters, segments, opts))
}

func (a *AsyncClient) SendNotificationToUserByEmail(ctx context.Context, message, email string, filters []Filter, segments []string, opts ...NotificationOption) *Future[*resty.Response] {
	return a.SendNotificationToFilteredSegment(ctx, message, emailFilters(filters, email), segments, opts...)
}

func (a *AsyncClient) SendNotificationCustom(ctx context.Context, params Params) *Future[*resty.Response] {
	if a == nil || a.client == nil {
		return failedFuture[*resty.Response](ErrClientNil)
	}

	cl, err := a.client.notificationCall(params)
	if err != nil {
		return failedFuture[*resty.Response](err)
	}

	return a.client.dispatchAsync(ctx, cl, a.callback)
}

// CreatePlayer validates params synchronously; a validation error is returned
// without starting the call.
func (a *AsyncClient) CreatePlayer(ctx context.Context, params Params) (*Future[*resty.Response], error) {
	if a == nil || a.client == nil {
		return nil, ErrClientNil
	}

	cl, err := createPlayerCall(a.client.config.AppID, params)
	if err != nil {
		return nil, err
	}

	return a.client.dispatchAsync(ctx, cl, a.callback), nil
}

func (a *AsyncClient) EditPlayer(ctx context.Context, params Params) (*Future[*resty.Response], error) {
	if a == nil || a.client == nil {
		return nil, ErrClientNil
	}

	cl, err := editPlayerCall(a.client.config.AppID, params)
	if err != nil {
		return nil, err
	}

	return a.client.dispatchAsync(ctx, cl, a.callback), nil
}
