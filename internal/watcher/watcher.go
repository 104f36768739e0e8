// Package watcher keeps the previous and current sample of a value across
// polling ticks.
package watcher

// Pair holds two consecutive samples of a value.
type Pair[T comparable] struct {
	Old     T
	Current T
}

// Changed reports whether the value differs between the two samples.
func (p Pair[T]) Changed() bool {
	return p.Old != p.Current
}

// Transitioned reports whether the value moved from exactly from to exactly to.
func (p Pair[T]) Transitioned(from, to T) bool {
	return p.Old == from && p.Current == to
}

// Watcher tracks one sampled field. Its Pair becomes available only after
// the second Update, so every decision compares exactly one tick of change.
type Watcher[T comparable] struct {
	prev    T
	last    T
	samples int
}

// Update shifts the current sample into old and installs v as current.
func (w *Watcher[T]) Update(v T) {
	if w.samples < 2 {
		w.samples++
	}
	w.prev, w.last = w.last, v
}

// Pair returns the old and current samples. ok is false until Update has
// been called at least twice.
func (w *Watcher[T]) Pair() (p Pair[T], ok bool) {
	if w.samples < 2 {
		return p, false
	}
	return Pair[T]{Old: w.prev, Current: w.last}, true
}

// Reset forgets every sample.
func (w *Watcher[T]) Reset() {
	*w = Watcher[T]{}
}
