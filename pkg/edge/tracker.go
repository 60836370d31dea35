// Package edge detects transitions of watched values across synchronization
// cycles. Remote actors only signal completion implicitly, by a
// server-reported field going back to its cleared state, so observers must
// react to edges between consecutive observations rather than to levels.
package edge

// Tracker records the last N observations of a value. It is not safe for
// concurrent use; callers feed it from a single ordered observation stream.
type Tracker[T comparable] struct {
	buf  []T
	size int
}

// NewTracker creates a tracker keeping up to n past observations. n is
// clamped to a minimum of 2, the smallest window that can hold an edge.
func NewTracker[T comparable](n int) *Tracker[T] {
	if n < 2 {
		n = 2
	}
	return &Tracker[T]{size: n}
}

// Observe appends a value, evicting the oldest once the window is full.
func (t *Tracker[T]) Observe(v T) {
	t.buf = append(t.buf, v)
	if len(t.buf) > t.size {
		t.buf = t.buf[1:]
	}
}

// Current returns the most recent observation.
func (t *Tracker[T]) Current() (T, bool) {
	if len(t.buf) == 0 {
		var zero T
		return zero, false
	}
	return t.buf[len(t.buf)-1], true
}

// Previous returns the observation before the current one.
func (t *Tracker[T]) Previous() (T, bool) {
	if len(t.buf) < 2 {
		var zero T
		return zero, false
	}
	return t.buf[len(t.buf)-2], true
}

// Changed reports whether the last observation differs from the one before
// it. It is false until two observations exist.
func (t *Tracker[T]) Changed() bool {
	prev, ok := t.Previous()
	if !ok {
		return false
	}
	cur, _ := t.Current()
	return prev != cur
}

// Left reports the edge "previous value was in set, current value is not".
// A same-to-same observation never counts as an edge.
func (t *Tracker[T]) Left(set ...T) bool {
	prev, ok := t.Previous()
	if !ok {
		return false
	}
	cur, _ := t.Current()
	return contains(set, prev) && !contains(set, cur)
}

func contains[T comparable](set []T, v T) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
