package parameter

import "time"

// Simulation Loop Timing
const (
	// FrameUpdateInterval is the viewer redraw interval (~30 FPS)
	FrameUpdateInterval = 33 * time.Millisecond

	// SimUpdateInterval is the wall-clock simulation tick interval
	SimUpdateInterval = 16 * time.Millisecond

	// MinTickDelta and MaxTickDelta bound the scaled dt handed to systems
	MinTickDelta = 100 * time.Microsecond
	MaxTickDelta = time.Second
)

// ECS & Resources Limits
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 2048

	// EventBufferMask is the bitmask for fast modulo operations (2048 - 1)
	EventBufferMask = 2047

	// EventDispatchRounds bounds follow-up dispatch of events emitted by handlers
	EventDispatchRounds = 4
)

// Neighbor Index
const (
	// SpatialCellSize is the bucket edge length of the entity neighbor grid (world units)
	SpatialCellSize = 25.0

	// SpatialStaticRebuildInterval is the rebuild cadence for food and spawner grids
	SpatialStaticRebuildInterval = 500 * time.Millisecond
)

// Worker fan-out for per-agent phases
const (
	// NavWorkers caps the goroutines used by drift and navigation
	NavWorkers = 4

	// NavParallelThreshold is the agent count below which phases run inline
	NavParallelThreshold = 256
)

// DefaultSeed seeds the simulation RNG when none is configured
const DefaultSeed uint64 = 0x5EED_A17C
