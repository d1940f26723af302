// Package onesignal provides an HTTP client for the OneSignal push
// notification API.
//
// The client wraps [github.com/go-resty/resty/v2] and sends notifications to
// single players, segments, tag queries, filters or every subscriber, and
// creates or updates players.
//
// # Basic Usage
//
//	cfg, err := onesignal.LoadConfigFromEnv()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	c, err := onesignal.New(cfg, onesignal.WithTimeout(10*time.Second))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer c.Close()
//
//	res, err := c.SendNotificationToSegment(ctx, "Hello", "Subscribed Users",
//	    onesignal.WithURL("https://example.com"),
//	)
//
// # Asynchronous Calls
//
// [Client.Async] returns an [AsyncClient] whose methods return a [Future]
// immediately. An optional [Callback] set with [AsyncClient.WithCallback]
// runs with the response of every successful call:
//
//	f := c.Async().WithCallback(onSent).SendNotificationToAll(ctx, "Hello")
//	resp, err := f.Await()
//
// Clients are immutable. [Client.AddParams], [Client.SetParam],
// [Client.Async] and [AsyncClient.WithCallback] return derived clients, so a
// client can be shared between goroutines.
//
// # Request Parameters
//
// Notification builders assemble the request, then three steps run in order:
// app_id is filled in when blank, every subscriber is targeted when neither
// included_segments nor include_player_ids is set, and finally the params added
// with [Client.AddParams] or [Client.SetParam] are merged over the request.
// Added params always win.
//
// # Errors
//
// Local validation failures wrap [ErrValidation] and never reach the network.
// Network failures wrap [ErrTransport], undecodable bodies wrap [ErrParse] and
// non-2xx answers are returned as [*APIError]. Nothing is retried.
//
// # Logging
//
// Implement [RequestLogger] and supply it via [WithRequestLogger], or wrap a
// [log/slog] logger with [NewSlogLogger]. The default [NoopLogger] discards
// all log output.
package onesignal
