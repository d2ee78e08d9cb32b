// Package stopwatch provides a caller-owned elapsed-time measure for
// batch operations. Each Stopwatch carries its own start instant, so its
// lifecycle is scoped to whoever created it — there is no process-wide
// clock state to reset or race on.
package stopwatch

import "time"

// Stopwatch measures elapsed wall time from its last Start (or creation).
type Stopwatch struct {
	start time.Time
}

// New returns a stopwatch already running from the moment of creation.
func New() *Stopwatch {
	return &Stopwatch{start: time.Now()}
}

// Start resets the stopwatch to the current instant.
func (s *Stopwatch) Start() {
	s.start = time.Now()
}

// Elapsed returns the wall time since the last Start (or New).
func (s *Stopwatch) Elapsed() time.Duration {
	return time.Since(s.start)
}
