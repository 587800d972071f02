// Package clock provides the monotonic millisecond counter that paces the
// whole engine. The counter is a uint32 and is allowed to wrap; elapsed
// time must always be computed with Diff, never with raw subtraction.
package clock

import "time"

// Ticks is a count of milliseconds since boot. It wraps around after
// roughly 49.7 days, which Diff handles transparently.
type Ticks uint32

// Diff returns the elapsed milliseconds from b to a as a signed value.
// The subtraction is done in uint32 space so a counter wrap between b
// and a still yields the correct small positive difference.
func Diff(a, b Ticks) int32 {
	return int32(uint32(a) - uint32(b))
}

// Clock produces the current tick count.
type Clock interface {
	Now() Ticks
}

// Wall is a Clock backed by the process monotonic clock.
type Wall struct {
	start time.Time
}

// NewWall creates a wall clock whose zero tick is the moment of creation.
func NewWall() *Wall {
	return &Wall{start: time.Now()}
}

// Now returns milliseconds elapsed since the clock was created.
func (w *Wall) Now() Ticks {
	return Ticks(time.Since(w.start) / time.Millisecond)
}

// Manual is a hand-advanced Clock for tests.
type Manual struct {
	now Ticks
}

// NewManual creates a manual clock starting at the given tick.
func NewManual(start Ticks) *Manual {
	return &Manual{now: start}
}

// Now returns the current manual tick.
func (m *Manual) Now() Ticks {
	return m.now
}

// Advance moves the clock forward by ms milliseconds.
func (m *Manual) Advance(ms int) {
	m.now += Ticks(uint32(ms))
}

// Set jumps the clock to an absolute tick value.
func (m *Manual) Set(t Ticks) {
	m.now = t
}
