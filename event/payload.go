package event

import (
	"github.com/lixenwraith/ant-colony/behavior"
	"github.com/lixenwraith/ant-colony/core"
	"github.com/lixenwraith/ant-colony/vmath"
)

// SoundRequestPayload carries a sound cue
type SoundRequestPayload struct {
	Sound core.SoundType
}

// FoodTransferPayload requests moving up to Requested units From -> To
// Either side may be a food chunk, an ant carrying food, or a colony store
type FoodTransferPayload struct {
	From      core.Entity
	To        core.Entity
	Requested int
}

// SpawnAntPayload requests an ant at Position, homed to Colony
type SpawnAntPayload struct {
	Colony   core.Entity
	Position vmath.Vec2
}

// RoleChangePayload assigns Role to Entity
type RoleChangePayload struct {
	Entity core.Entity
	Role   behavior.Role
}

// AntDiedPayload reports a removed ant
type AntDiedPayload struct {
	Entity core.Entity
	Colony core.Entity
}

// FoodEmptyPayload reports an emptied chunk
type FoodEmptyPayload struct {
	Entity core.Entity
}

// TickRatePayload carries the requested speed multiplier (0 pauses)
type TickRatePayload struct {
	Multiplier int
}

// SystemTogglePayload enables or disables the named system
type SystemTogglePayload struct {
	SystemName string
	Enabled    bool
}
