package engine

import (
	"sync"
	"time"

	"github.com/lixenwraith/wildhunt/parameter"
)

// TimeSource supplies wall clock readings
type TimeSource interface {
	Now() time.Time
}

// SystemTime reads the real clock
type SystemTime struct{}

func (SystemTime) Now() time.Time {
	return time.Now()
}

// Clock converts wall time into capped tick deltas and stops advancing while paused
type Clock struct {
	mu     sync.Mutex
	source TimeSource
	last   time.Time
	paused bool
}

// NewClock starts measuring from the current reading of source
func NewClock(source TimeSource) *Clock {
	return &Clock{
		source: source,
		last:   source.Now(),
	}
}

// Step returns seconds elapsed since the previous step, capped at MaxTickDelta
// Paused clocks return 0
func (c *Clock) Step() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.source.Now()
	elapsed := now.Sub(c.last).Seconds()
	c.last = now

	if c.paused || elapsed < 0 {
		return 0
	}
	if elapsed > parameter.MaxTickDelta {
		return parameter.MaxTickDelta
	}
	return elapsed
}

func (c *Clock) Pause() {
	c.mu.Lock()
	c.paused = true
	c.mu.Unlock()
}

// Resume restarts measurement so the paused interval is not replayed
func (c *Clock) Resume() {
	c.mu.Lock()
	c.paused = false
	c.last = c.source.Now()
	c.mu.Unlock()
}

// Toggle flips the pause state and reports the new state
func (c *Clock) Toggle() bool {
	if c.Paused() {
		c.Resume()
		return false
	}
	c.Pause()
	return true
}

func (c *Clock) Paused() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.paused
}
