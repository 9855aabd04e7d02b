package game

import "time"

// Clock reports monotonic milliseconds since the run started.
type Clock interface {
	ElapsedMs() int64
}

// RealClock measures wall time from its creation.
type RealClock struct {
	start time.Time
}

// NewRealClock starts a wall clock now.
func NewRealClock() *RealClock {
	return &RealClock{start: time.Now()}
}

// ElapsedMs implements Clock.
func (c *RealClock) ElapsedMs() int64 {
	return time.Since(c.start).Milliseconds()
}

// ManualClock only moves when told to. The headless harness advances it by
// one frame period per step.
type ManualClock struct {
	now int64
}

// ElapsedMs implements Clock.
func (c *ManualClock) ElapsedMs() int64 {
	return c.now
}

// Advance moves the clock forward by ms.
func (c *ManualClock) Advance(ms int64) {
	c.now += ms
}
