package onesignal

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFuture_Await(t *testing.T) {
	t.Parallel()

	f := newFuture(context.Background(), func(context.Context) (int, error) {
		return 42, nil
	})

	got, err := f.Await()
	require.NoError(t, err)
	assert.Equal(t, 42, got)
	assert.True(t, f.IsComplete())

	select {
	case <-f.Done():
	default:
		t.Fatal("expected Done to be closed")
	}
}

func TestFuture_Error(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	f := newFuture(context.Background(), func(context.Context) (string, error) {
		return "", boom
	})

	_, err := f.Await()
	assert.ErrorIs(t, err, boom)
}

func TestFuture_AwaitWithTimeout(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	defer close(release)

	f := newFuture(context.Background(), func(context.Context) (int, error) {
		<-release
		return 1, nil
	})

	_, err := f.AwaitWithTimeout(10 * time.Millisecond)
	assert.ErrorIs(t, err, ErrTimeout)
	assert.False(t, f.IsComplete())
}

func TestFuture_CanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	f := newFuture(ctx, func(context.Context) (int, error) {
		called = true
		return 1, nil
	})

	_, err := f.Await()
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}

func TestFailedFuture(t *testing.T) {
	t.Parallel()

	f := failedFuture[int](ErrClientNil)

	assert.True(t, f.IsComplete())
	_, err := f.Await()
	assert.ErrorIs(t, err, ErrClientNil)
}
