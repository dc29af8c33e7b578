package parameter

// System Execution Priorities (lower runs first)
const (
	PriorityLifespan      = 5 // Dead ants leave before labor counts
	PriorityLabor         = 10
	PriorityVagrancy      = 20
	PriorityBehavior      = 30
	PriorityLarva         = 40
	PrioritySpawn         = 45
	PriorityFood          = 50
	PriorityDrift         = 60  // Before navigation, shifts targets with the agent
	PriorityNavigation    = 70
	PriorityScentEmit     = 80  // After movement, deposits at the new position
	PriorityScentMaintain = 90  // Exclusive phase, no queries in flight
	PrioritySpatial       = 100 // Snapshot for next tick's neighbor queries
	PriorityDebug         = 900 // Side channel, after all simulation state settled
	PriorityAudio         = 950
	PriorityDiagnostics   = 1000
)
