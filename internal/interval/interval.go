// Package interval provides a pausable wall-clock gate.
//
// An Interval reports Elapsed once its duration has passed and re-arms
// itself from that moment. Pausing freezes the accumulated time; Unpause
// continues from the frozen point rather than restarting.
package interval

import (
	"sync"
	"time"
)

// Clock supplies the current time. Inject a ManualClock in tests.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the real monotonic clock.
type SystemClock struct{}

// Now returns time.Now().
func (SystemClock) Now() time.Time {
	return time.Now()
}

// ManualClock is a Clock that only moves when told to.
type ManualClock struct {
	mu  sync.Mutex
	now time.Time
}

// NewManualClock creates a manual clock starting at start.
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

// Now returns the clock's current time.
func (c *ManualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward by d.
func (c *ManualClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// Interval fires once per duration of unpaused time.
type Interval struct {
	clock    Clock
	duration time.Duration
	start    time.Time
	pausedAt time.Time
	paused   bool
}

// New creates an interval armed from the clock's current time.
func New(clock Clock, duration time.Duration) *Interval {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Interval{
		clock:    clock,
		duration: duration,
		start:    clock.Now(),
	}
}

// Elapsed reports whether the period has passed. When it has, the interval
// re-arms from now. A paused interval never elapses.
func (i *Interval) Elapsed() bool {
	if i.paused {
		return false
	}
	now := i.clock.Now()
	if now.Sub(i.start) >= i.duration {
		i.start = now
		return true
	}
	return false
}

// Remaining returns the unpaused time left before the next Elapsed.
func (i *Interval) Remaining() time.Duration {
	now := i.clock.Now()
	if i.paused {
		now = i.pausedAt
	}
	left := i.duration - now.Sub(i.start)
	if left < 0 {
		return 0
	}
	return left
}

// Pause freezes the interval. Pausing twice is a no-op.
func (i *Interval) Pause() {
	if i.paused {
		return
	}
	i.paused = true
	i.pausedAt = i.clock.Now()
}

// Unpause resumes from where Pause froze the interval.
func (i *Interval) Unpause() {
	if !i.paused {
		return
	}
	i.start = i.start.Add(i.clock.Now().Sub(i.pausedAt))
	i.paused = false
}

// Paused reports whether the interval is frozen.
func (i *Interval) Paused() bool {
	return i.paused
}
