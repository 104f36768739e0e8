//go:build unix

package signal

import (
	"context"
	"os"
	"sync/atomic"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupSignalHandler_SignalsCancelContext(t *testing.T) {
	for _, sig := range []syscall.Signal{syscall.SIGINT, syscall.SIGTERM} {
		t.Run(sig.String(), func(t *testing.T) {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			var called atomic.Bool
			h := SetupSignalHandler(ctx, cancel, func() { called.Store(true) })

			require.NoError(t, syscall.Kill(os.Getpid(), sig))

			select {
			case <-ctx.Done():
			case <-time.After(time.Second):
				t.Fatal("context was not cancelled after signal")
			}
			assert.True(t, called.Load())
			assert.True(t, h.Interrupted())
			assert.ErrorIs(t, ctx.Err(), context.Canceled)
		})
	}
}

func TestSetupSignalHandler_ContextCancellationIsNotAnInterrupt(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	var called atomic.Bool
	h := SetupSignalHandler(ctx, cancel, func() { called.Store(true) })
	cancel()

	time.Sleep(20 * time.Millisecond)
	assert.False(t, called.Load())
	assert.False(t, h.Interrupted())
}

func TestSetupSignalHandler_NilCallback(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	h := SetupSignalHandler(ctx, cancel, nil)
	require.NoError(t, syscall.Kill(os.Getpid(), syscall.SIGINT))

	select {
	case <-ctx.Done():
	case <-time.After(time.Second):
		t.Fatal("context was not cancelled after signal")
	}
	assert.True(t, h.Interrupted())
}

func TestHandlerStopIsIdempotent(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	h := SetupSignalHandler(ctx, cancel, nil)
	h.Stop()
	h.Stop()
	assert.NoError(t, ctx.Err())
	assert.False(t, h.Interrupted())
}
