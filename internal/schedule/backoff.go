// Package schedule paces the autosplitter: a fixed-rate tick loop and a
// polled exponential backoff for attach attempts.
package schedule

import "time"

// Default attach backoff bounds.
const (
	DefaultBaseDelay = 250 * time.Millisecond
	DefaultMaxDelay  = 5 * time.Second
)

// Backoff gates retries of an operation that is polled from a loop rather
// than retried in place. Delays: Base, Base*2, Base*4, ... capped at Max.
// The zero value uses the default bounds.
type Backoff struct {
	Base time.Duration
	Max  time.Duration

	delay time.Duration
	next  time.Time
}

// Ready reports whether an attempt may be made at now.
func (b *Backoff) Ready(now time.Time) bool {
	return b.next.IsZero() || !now.Before(b.next)
}

// Fail records a failed attempt at now and schedules the next one.
// It returns the delay until then.
func (b *Backoff) Fail(now time.Time) time.Duration {
	base, ceiling := b.bounds()
	if b.delay == 0 {
		b.delay = base
	} else {
		b.delay *= 2
	}
	if b.delay > ceiling {
		b.delay = ceiling
	}
	b.next = now.Add(b.delay)
	return b.delay
}

// Reset clears the failure history so the next attempt is immediate.
func (b *Backoff) Reset() {
	b.delay = 0
	b.next = time.Time{}
}

func (b *Backoff) bounds() (base, ceiling time.Duration) {
	base, ceiling = b.Base, b.Max
	if base <= 0 {
		base = DefaultBaseDelay
	}
	if ceiling <= 0 {
		ceiling = DefaultMaxDelay
	}
	if ceiling < base {
		ceiling = base
	}
	return base, ceiling
}
