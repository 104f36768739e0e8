// Package signal turns SIGINT and SIGTERM into context cancellation so the
// tick loop can shut down between ticks.
package signal

import (
	"context"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
)

// Handler records whether shutdown was caused by a signal.
type Handler struct {
	interrupted atomic.Bool
	stop        func()
}

// SetupSignalHandler registers SIGINT and SIGTERM handlers.
// When a signal is received, it calls onInterrupt (if non-nil), then cancels
// the context. The listening goroutine exits on the first signal or when ctx
// is done, and unregisters itself either way.
func SetupSignalHandler(ctx context.Context, cancel context.CancelFunc, onInterrupt func()) *Handler {
	h := &Handler{}
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	done := make(chan struct{})
	var once atomic.Bool
	h.stop = func() {
		if once.CompareAndSwap(false, true) {
			close(done)
		}
	}

	go func() {
		defer signal.Stop(sigCh)
		select {
		case <-sigCh:
			h.interrupted.Store(true)
			if onInterrupt != nil {
				onInterrupt()
			}
			cancel()
		case <-ctx.Done():
		case <-done:
		}
	}()
	return h
}

// Interrupted reports whether a signal was received.
func (h *Handler) Interrupted() bool {
	return h.interrupted.Load()
}

// Stop unregisters the handler without cancelling anything.
func (h *Handler) Stop() {
	h.stop()
}
