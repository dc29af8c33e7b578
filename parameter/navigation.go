package parameter

import "math"

// Steering
const (
	// NavSnapFactor is the arrival multiplier: distance <= desired*NavSnapFactor snaps to target
	NavSnapFactor = 2.0

	// AntMaxSpeed is linear speed in world units per second
	AntMaxSpeed = 5.0

	// AntMaxTurnRate is one full rotation every 5 seconds
	AntMaxTurnRate = 2 * math.Pi / 5
)

// Separation / Drift
const (
	// DriftStrength scales inverse-square repulsion, in units/s per second at unit distance
	DriftStrength = 25.0

	// DriftMaxMagnitude clamps the accumulated drift and each contribution rate
	// Kept at half AntMaxSpeed so separation never outruns steering
	DriftMaxMagnitude = 2.5

	// DriftNeighborRadius is the repulsion range (world units)
	DriftNeighborRadius = 25.0

	// DriftApplyThreshold is the magnitude below which drift is not applied
	DriftApplyThreshold = 0.01

	// DriftApplyCap limits the per-second displacement speed
	DriftApplyCap = 2.5

	// DriftOvershoot is the residual decay multiplier (>1 prevents oscillation)
	DriftOvershoot = 1.5

	// DriftCoincidentEpsilon excludes neighbors at the agent's own position
	DriftCoincidentEpsilon = 1e-6
)
