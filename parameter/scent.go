package parameter

import "time"

// Scent Field
const (
	// ScentDecayRate is subtracted from every cell on each maintenance pass
	ScentDecayRate = 2.5

	// ScentSmellRadius is the query radius for scent-guided targets (world units)
	ScentSmellRadius = 10.0

	// ScentStartingStrength is the per-emission deposit
	ScentStartingStrength = 50.0

	// ScentMaxStrength caps accumulated strength per cell
	ScentMaxStrength = 150.0

	// ScentMaintainInterval is the decay/cull/reindex cadence
	ScentMaintainInterval = 500 * time.Millisecond

	// ScentEmitInterval is the per-ant deposit cadence
	ScentEmitInterval = 250 * time.Millisecond
)
