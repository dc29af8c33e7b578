// Package behavior holds the per-role decision functions that pick an ant's next navigation
// target from scent and food sightings. Decisions never move the agent; they return a Decision
// that the caller applies
package behavior

import (
	"github.com/lixenwraith/ant-colony/parameter"
	"github.com/lixenwraith/ant-colony/scent"
	"github.com/lixenwraith/ant-colony/vmath"
)

// Role is an ant's labor assignment
type Role uint8

const (
	RoleIdle Role = iota
	RoleForager
	RoleNursemaid

	RoleCount
)

func (r Role) String() string {
	switch r {
	case RoleIdle:
		return "idle"
	case RoleForager:
		return "forager"
	case RoleNursemaid:
		return "nursemaid"
	default:
		return "unknown"
	}
}

// ForagerState is the forager state machine position
type ForagerState uint8

const (
	Seeking ForagerState = iota
	FollowingTrail
	BringingHomeFood
	GoingHomeEmpty
)

func (s ForagerState) String() string {
	switch s {
	case Seeking:
		return "seeking"
	case FollowingTrail:
		return "following"
	case BringingHomeFood:
		return "bringing"
	case GoingHomeEmpty:
		return "returning"
	default:
		return "unknown"
	}
}

// Scent is the read side of the scent field used by decisions
type Scent interface {
	WeightedTarget(c scent.Category, w scent.Weighting, radius float64, pos vmath.Vec2) (vmath.Vec2, bool)
}

// Agent is the read-only view of an ant a decision needs
type Agent struct {
	Position vmath.Vec2
	Facing   vmath.Vec2 // Unit heading
	Home     vmath.Vec2
}

// FoodSighting is a food chunk within sight of a forager
type FoodSighting struct {
	Position    vmath.Vec2
	Interaction float64 // Pickup range
}

// IntentKind classifies a food transfer requested by a decision
type IntentKind uint8

const (
	IntentNone IntentKind = iota
	IntentPickup
	IntentDropOff
)

// Intent asks the food collaborator to move a quantity
// Food indexes the sightings slice passed to the decision for pickups
type Intent struct {
	Kind   IntentKind
	Food   int
	Amount int
}

// Decision is the outcome of one decision call
type Decision struct {
	Target    vmath.Vec2
	HasTarget bool
	State     ForagerState // Forager only
	Intent    Intent
}

func target(t vmath.Vec2) Decision {
	return Decision{Target: t, HasTarget: true}
}

// Params holds decision tuning
type Params struct {
	IdleHomeRadius      float64
	NursemaidHomeRadius float64
	SmellRadius         float64
	SightRadius         float64
	HomeSightRadius     float64
	DropOffRadius       float64
	CarryCapacity       int
}

// DefaultParams returns stock decision tuning
func DefaultParams() Params {
	return Params{
		IdleHomeRadius:      parameter.IdleHomeRadius,
		NursemaidHomeRadius: parameter.NursemaidHomeRadius,
		SmellRadius:         parameter.ScentSmellRadius,
		SightRadius:         parameter.ForagerSightRadius,
		HomeSightRadius:     parameter.ForagerHomeSightRadius,
		DropOffRadius:       parameter.ForagerDropOffRadius,
		CarryCapacity:       parameter.AntCarryCapacity,
	}
}

// Decide dispatches on role; foragers go through DecideForager instead since they need sightings
func Decide(role Role, a Agent, sc Scent, p *Params, rng *vmath.FastRand) Decision {
	switch role {
	case RoleNursemaid:
		return DecideNursemaid(a, sc, p, rng)
	default:
		return DecideIdle(a, sc, p, rng)
	}
}

// DecideIdle wanders near home, or follows ant scent back when beyond IdleHomeRadius
func DecideIdle(a Agent, sc Scent, p *Params, rng *vmath.FastRand) Decision {
	return stayNearHome(a, p.IdleHomeRadius, sc, p, rng)
}

// DecideNursemaid is DecideIdle with the wider nursemaid leash
func DecideNursemaid(a Agent, sc Scent, p *Params, rng *vmath.FastRand) Decision {
	return stayNearHome(a, p.NursemaidHomeRadius, sc, p, rng)
}

func stayNearHome(a Agent, radius float64, sc Scent, p *Params, rng *vmath.FastRand) Decision {
	if vmath.V2Dist(a.Position, a.Home) >= radius {
		if dest, ok := HomewardScent(a, sc, p.SmellRadius); ok {
			return target(dest)
		}
		return target(AlongBearing(a, a.Home, rng))
	}
	return target(Wander(a, rng))
}
