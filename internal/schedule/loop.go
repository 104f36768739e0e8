package schedule

import (
	"context"
	"time"
)

// Interval converts a rate in ticks per second into a ticker period.
// Non-positive rates yield one tick per second.
func Interval(rate int) time.Duration {
	if rate <= 0 {
		return time.Second
	}
	return time.Second / time.Duration(rate)
}

// Loop calls fn once immediately and then every interval until ctx is done
// or fn returns an error. Ticks are never run concurrently; a slow fn drops
// ticks rather than queueing them.
func Loop(ctx context.Context, interval time.Duration, fn func() error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := fn(); err != nil {
		return err
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := fn(); err != nil {
				return err
			}
		}
	}
}
