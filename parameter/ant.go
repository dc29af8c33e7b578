package parameter

import "time"

// Ant
const (
	// AntLifespan is the age in seconds at which an ant dies
	AntLifespan = 240.0

	// AntCarryCapacity is food units a forager can hold
	AntCarryCapacity = 5
)

// Behavior
const (
	// IdleHomeRadius is the distance beyond which idle ants head home
	IdleHomeRadius = 30.0

	// NursemaidHomeRadius is the distance beyond which nursemaids head home
	NursemaidHomeRadius = 45.0

	// WanderDistance is the radius of a random wander target
	WanderDistance = 10.0

	// BearingStep is the base distance toward a destination for bearing-biased targets
	BearingStep = 20.0

	// BearingJitterMin and BearingJitterMax bound the random sidestep around the base point
	BearingJitterMin = 5.0
	BearingJitterMax = 10.0

	// BearingJitterFloor keeps the jitter range non-empty for short distances
	BearingJitterFloor = 5.1

	// BearingFallbackStep is the straight-ahead step when the jittered point regresses
	BearingFallbackStep = 7.0

	// ScentProjection is the distance past a homeward/trail centroid along its bearing
	ScentProjection = 10.0

	// TrailProjection is the outbound projection past a food-trail centroid
	TrailProjection = 20.0

	// ScentOvershoot is the extra distance past the projected point
	ScentOvershoot = 5.0

	// ExploreDistance is how far an ant moves away from a plain ant-smell centroid
	ExploreDistance = 30.0
)

// Forager
const (
	// ForagerSightRadius is the food detection range
	ForagerSightRadius = 60.0

	// ForagerHomeSightRadius is the range at which a returning forager targets home directly
	ForagerHomeSightRadius = 60.0

	// ForagerDropOffRadius is the distance at which carried food is delivered
	ForagerDropOffRadius = 3.0

	// ForagerSeekTimeout sends a fruitless seeker home empty
	ForagerSeekTimeout = 120 * time.Second
)

// Vagrancy
const (
	// VagrancyInterval is the rehome check cadence
	VagrancyInterval = 250 * time.Millisecond

	// VagrancyDistance is the distance from home beyond which an ant is vagrant
	VagrancyDistance = 120.0

	// VagrancyRehomeRadius is the search radius for a new home spawner
	VagrancyRehomeRadius = 60.0
)
