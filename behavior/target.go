package behavior

import (
	"github.com/lixenwraith/ant-colony/parameter"
	"github.com/lixenwraith/ant-colony/scent"
	"github.com/lixenwraith/ant-colony/vmath"
)

// Wander returns a point WanderDistance from the agent in a random direction
func Wander(a Agent, rng *vmath.FastRand) vmath.Vec2 {
	return vmath.V2Add(a.Position, vmath.V2Scale(rng.Direction(), parameter.WanderDistance))
}

// AlongBearing returns a jittered point part of the way toward dest
// Falls back to a short step straight ahead when the jitter would lose ground
func AlongBearing(a Agent, dest vmath.Vec2, rng *vmath.FastRand) vmath.Vec2 {
	me := a.Position
	dist := vmath.V2Dist(me, dest)

	base := vmath.V2Towards(me, dest, parameter.BearingStep)
	if dist < parameter.BearingStep || vmath.V2Dist(base, dest) > dist {
		base = dest
	}

	upper := vmath.GuardFloat(vmath.Clamp(dist, parameter.BearingJitterFloor, parameter.BearingJitterMax), parameter.BearingJitterFloor)
	jitter := rng.Range(parameter.BearingJitterMin, upper)
	candidate := vmath.V2Add(base, vmath.V2Scale(rng.Direction(), jitter))

	if vmath.V2Dist(candidate, dest) > dist {
		candidate = vmath.V2Add(me, vmath.V2Scale(vmath.V2Normalize(a.Facing), parameter.BearingFallbackStep))
	}
	return vmath.GuardVec(candidate, me)
}

// Ahead returns a bearing-biased point in the agent's facing direction
func Ahead(a Agent, rng *vmath.FastRand) vmath.Vec2 {
	facing := vmath.V2Normalize(a.Facing)
	if facing == (vmath.Vec2{}) {
		return Wander(a, rng)
	}
	far := vmath.V2Add(a.Position, vmath.V2Scale(facing, 2*parameter.BearingStep))
	return AlongBearing(a, far, rng)
}

// overshoot extends the line from the agent through p by ScentOvershoot
func overshoot(me, p vmath.Vec2) vmath.Vec2 {
	dir := vmath.V2Normalize(vmath.V2Sub(p, me))
	return vmath.V2Add(me, vmath.V2Scale(dir, vmath.V2Dist(me, p)+parameter.ScentOvershoot))
}

// HomewardScent follows the ant-smell centroid closer to home, projected further homeward
// Rejected unless the resulting point is nearer home than the agent
func HomewardScent(a Agent, sc Scent, radius float64) (vmath.Vec2, bool) {
	hb, ok := sc.WeightedTarget(scent.AntSmell, scent.CloserTo(a.Home), radius, a.Position)
	if !ok {
		return vmath.Vec2{}, false
	}
	projected := vmath.V2Towards(hb, a.Home, parameter.ScentProjection)
	dest := overshoot(a.Position, projected)
	if !dest.IsFinite() || vmath.V2Dist(dest, a.Home) >= vmath.V2Dist(a.Position, a.Home) {
		return vmath.Vec2{}, false
	}
	return dest, true
}

// OutboundScent follows the found-food centroid further from home, projected outward
func OutboundScent(a Agent, sc Scent, radius float64) (vmath.Vec2, bool) {
	ob, ok := sc.WeightedTarget(scent.FoundFoodSmell, scent.FurtherFrom(a.Home), radius, a.Position)
	if !ok {
		return vmath.Vec2{}, false
	}
	outward := vmath.V2Normalize(vmath.V2Sub(ob, a.Home))
	projected := vmath.V2Add(ob, vmath.V2Scale(outward, parameter.TrailProjection))
	dest := overshoot(a.Position, projected)
	if !dest.IsFinite() {
		return vmath.Vec2{}, false
	}
	return dest, true
}

// Explore moves away from the local ant-smell centroid toward unscented ground
func Explore(a Agent, sc Scent, radius float64) (vmath.Vec2, bool) {
	crowd, ok := sc.WeightedTarget(scent.AntSmell, scent.Unweighted(), radius, a.Position)
	if !ok {
		return vmath.Vec2{}, false
	}
	away := vmath.V2Normalize(vmath.V2Sub(a.Position, crowd))
	if away == (vmath.Vec2{}) {
		return vmath.Vec2{}, false
	}
	return vmath.V2Add(a.Position, vmath.V2Scale(away, parameter.ExploreDistance)), true
}
