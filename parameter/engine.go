package parameter

import "time"

// Simulation clock
const (
	// TicksPerSecond is the reference simulation rate, one step per rendered frame
	TicksPerSecond = 60

	// TickInterval is the wall-clock interval of one simulation step at TicksPerSecond
	TickInterval = time.Second / TicksPerSecond
)

// Event queue limits
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 256

	// EventBufferMask is the bitmask for fast modulo operations (256 - 1)
	EventBufferMask = 255
)
