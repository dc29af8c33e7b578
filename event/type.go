package event

// EventType represents the type of simulation event
type EventType int

const (
	// EventWorldClear requests removal of every entity
	// Trigger: Reset | Consumer: Sim | Payload: nil
	EventWorldClear EventType = iota

	// EventSoundRequest requests audio playback
	// Trigger: Systems with audible outcomes
	// Consumer: AudioSystem | Payload: *SoundRequestPayload
	EventSoundRequest

	// EventFoodTransfer moves food between two holders (chunk, ant, colony)
	// Trigger: Forager pickup and drop-off decisions
	// Consumer: FoodSystem | Payload: *FoodTransferPayload
	EventFoodTransfer

	// EventSpawnAnt requests a new idle ant at a colony
	// Trigger: Larva hatch, spawner start-up
	// Consumer: SpawnSystem | Payload: *SpawnAntPayload
	EventSpawnAnt

	// EventRoleChange reassigns an ant's labor role
	// Trigger: LaborSystem apply step
	// Consumer: LaborSystem | Payload: *RoleChangePayload
	EventRoleChange

	// EventAntDied reports an ant removed from the world
	// Trigger: LifespanSystem | Consumer: Colony bookkeeping | Payload: *AntDiedPayload
	EventAntDied

	// EventFoodEmpty reports a harvested-out chunk
	// Trigger: FoodSystem | Consumer: FoodSystem cull | Payload: *FoodEmptyPayload
	EventFoodEmpty

	// EventTickRateChange changes simulation speed
	// Trigger: Viewer input | Consumer: Scheduler | Payload: *TickRatePayload
	EventTickRateChange

	// EventSystemToggle enables or disables a system by name
	// Trigger: Viewer input | Consumer: named system | Payload: *SystemTogglePayload
	EventSystemToggle
)

// GameEvent is a typed event with an optional payload
type GameEvent struct {
	Type    EventType
	Payload any
}
