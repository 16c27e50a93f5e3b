package parameter

import "time"

// Game Loop Timing
const (
	// TickInterval is the default simulation cadence (~60 Hz)
	TickInterval = 16 * time.Millisecond

	// MaxTickDelta caps seconds-based dt after host stalls
	MaxTickDelta = 0.1
)

// EventQueueSize is the initial capacity of the event queue
const EventQueueSize = 256

// EventBufferMask is EventQueueSize-1 for ring indexing; size must stay a power of two
const EventBufferMask = EventQueueSize - 1
