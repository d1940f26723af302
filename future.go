package onesignal

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrTimeout is returned by [Future.AwaitWithTimeout] when the call has not
// completed in time. The call itself keeps running.
var ErrTimeout = errors.New("onesignal: timed out waiting for future completion")

// Future is the pending result of an asynchronous API call.
type Future[T any] struct {
	result T
	err    error
	once   sync.Once
	done   chan struct{}
}

func newFuture[T any](ctx context.Context, fn func(context.Context) (T, error)) *Future[T] {
	f := &Future[T]{done: make(chan struct{})}

	go func() {
		defer close(f.done)

		if err := ctx.Err(); err != nil {
			f.err = err
			return
		}

		res, err := fn(ctx)
		f.once.Do(func() {
			f.result = res
			f.err = err
		})
	}()

	return f
}

// failedFuture returns an already completed future holding err.
func failedFuture[T any](err error) *Future[T] {
	f := &Future[T]{err: err, done: make(chan struct{})}
	close(f.done)
	return f
}

// Await blocks until the call completes and returns its result.
func (f *Future[T]) Await() (T, error) {
	<-f.done
	return f.result, f.err
}

// AwaitWithTimeout is like Await but gives up after timeout.
func (f *Future[T]) AwaitWithTimeout(timeout time.Duration) (T, error) {
	select {
	case <-f.done:
		return f.result, f.err
	case <-time.After(timeout):
		var zero T
		return zero, ErrTimeout
	}
}

// Done returns a channel closed once the call has completed.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// IsComplete reports whether the call has completed, without blocking.
func (f *Future[T]) IsComplete() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}
