package behavior

import (
	"github.com/lixenwraith/ant-colony/vmath"
)

// ForagerInput is the per-decision forager context
type ForagerInput struct {
	State       ForagerState
	SeekExpired bool // Seek timer ran out while Seeking
	Carrying    int
	Food        []FoodSighting
}

// DecideForager advances the forager state machine and picks the next target
//
//	Seeking --food in range--> BringingHomeFood (pickup)
//	Seeking --food visible--> FollowingTrail (nearest chunk)
//	Seeking --food scent--> FollowingTrail (along gradient)
//	Seeking --nothing, timer expired--> GoingHomeEmpty
//	FollowingTrail --nothing--> Seeking
//	BringingHomeFood --home--> Seeking (drop-off)
//	GoingHomeEmpty --food visible--> BringingHomeFood | FollowingTrail
func DecideForager(a Agent, in ForagerInput, sc Scent, p *Params, rng *vmath.FastRand) Decision {
	foodVisible := len(in.Food) > 0

	switch {
	case in.State == BringingHomeFood, in.State == GoingHomeEmpty && !foodVisible:
		return returnHome(a, in, sc, p, rng)
	case foodVisible:
		return approachFood(a, in, p)
	default:
		return seek(a, in, sc, p, rng)
	}
}

func returnHome(a Agent, in ForagerInput, sc Scent, p *Params, rng *vmath.FastRand) Decision {
	homeDist := vmath.V2Dist(a.Position, a.Home)

	if homeDist <= p.DropOffRadius {
		d := target(Wander(a, rng))
		d.State = Seeking
		if in.Carrying > 0 {
			d.Intent = Intent{Kind: IntentDropOff, Amount: in.Carrying}
		}
		return d
	}

	d := Decision{State: in.State, HasTarget: true}
	switch {
	case homeDist <= p.HomeSightRadius:
		d.Target = a.Home
	default:
		if dest, ok := HomewardScent(a, sc, p.SmellRadius); ok {
			d.Target = dest
		} else {
			d.Target = AlongBearing(a, a.Home, rng)
		}
	}
	return d
}

func approachFood(a Agent, in ForagerInput, p *Params) Decision {
	nearest := -1
	nearestDist := 0.0
	for i, f := range in.Food {
		dist := vmath.V2Dist(a.Position, f.Position)
		if dist <= f.Interaction {
			return Decision{
				Target:    a.Home,
				HasTarget: true,
				State:     BringingHomeFood,
				Intent:    Intent{Kind: IntentPickup, Food: i, Amount: p.CarryCapacity},
			}
		}
		if nearest < 0 || dist < nearestDist {
			nearest = i
			nearestDist = dist
		}
	}
	return Decision{
		Target:    in.Food[nearest].Position,
		HasTarget: true,
		State:     FollowingTrail,
	}
}

func seek(a Agent, in ForagerInput, sc Scent, p *Params, rng *vmath.FastRand) Decision {
	if dest, ok := OutboundScent(a, sc, p.SmellRadius); ok {
		d := target(dest)
		d.State = FollowingTrail
		return d
	}

	if in.State == Seeking && in.SeekExpired {
		d := target(AlongBearing(a, a.Home, rng))
		d.State = GoingHomeEmpty
		return d
	}

	d := Decision{State: Seeking, HasTarget: true}
	if dest, ok := Explore(a, sc, p.SmellRadius); ok {
		d.Target = dest
		return d
	}
	d.Target = Ahead(a, rng)
	return d
}
