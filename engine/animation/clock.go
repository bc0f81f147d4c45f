package animation

import (
	"sync"
	"time"
)

// Clock measures frame deltas for driving mixers.
type Clock struct {
	mu *sync.Mutex

	now     func() time.Time
	start   time.Time
	last    time.Time
	started bool
}

// NewClock creates a clock reading the wall time. The clock starts on the first Delta call.
//
// Parameters:
//   - now: the time source, or nil for time.Now
//
// Returns:
//   - *Clock: the clock
func NewClock(now func() time.Time) *Clock {
	if now == nil {
		now = time.Now
	}
	return &Clock{mu: &sync.Mutex{}, now: now}
}

// Delta returns the seconds elapsed since the previous Delta call. The first call
// starts the clock and returns 0.
//
// Returns:
//   - float32: elapsed seconds
func (c *Clock) Delta() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	if !c.started {
		c.started = true
		c.start = now
		c.last = now
		return 0
	}
	d := now.Sub(c.last)
	c.last = now
	return float32(d.Seconds())
}

// Elapsed returns the seconds since the clock started, or 0 if it has not started.
//
// Returns:
//   - float32: elapsed seconds
func (c *Clock) Elapsed() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.started {
		return 0
	}
	return float32(c.now().Sub(c.start).Seconds())
}
