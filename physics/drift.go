package physics

import (
	"math"

	"github.com/lixenwraith/ant-colony/parameter"
	"github.com/lixenwraith/ant-colony/vmath"
)

// Drift is the residual separation force carried between ticks
type Drift struct {
	Direction vmath.Vec2 // Unit vector, zero when at rest
	Magnitude float64
}

// Vector returns the drift as a plain vector
func (d Drift) Vector() vmath.Vec2 {
	return vmath.V2Scale(d.Direction, d.Magnitude)
}

// DriftProfile holds separation tuning
type DriftProfile struct {
	Strength     float64 // Inverse-square numerator
	MaxMagnitude float64 // Per-contribution rate and accumulated clamp
	Radius       float64 // Neighbor range
	Threshold    float64 // Magnitude below which Apply is a no-op
	Cap          float64 // Max displacement speed
	Overshoot    float64 // Residual decay per applied unit, > 1
}

// DefaultDrift is the stock separation profile
var DefaultDrift = DriftProfile{
	Strength:     parameter.DriftStrength,
	MaxMagnitude: parameter.DriftMaxMagnitude,
	Radius:       parameter.DriftNeighborRadius,
	Threshold:    parameter.DriftApplyThreshold,
	Cap:          parameter.DriftApplyCap,
	Overshoot:    parameter.DriftOvershoot,
}

// Accumulate adds dt seconds of inverse-square repulsion from neighbors within Radius to the
// residual drift. Neighbors at pos itself are skipped; a non-finite result leaves the residual unchanged
// Against ApplyDrift decay the residual settles at the summed push over Overshoot at any dt
func Accumulate(d *Drift, pos vmath.Vec2, neighbors []vmath.Vec2, p *DriftProfile, dt float64) {
	dt = math.Max(vmath.GuardFloat(dt, 0), 0)
	if !pos.IsFinite() || dt == 0 {
		return
	}
	radiusSq := p.Radius * p.Radius
	epsSq := parameter.DriftCoincidentEpsilon * parameter.DriftCoincidentEpsilon

	var sum vmath.Vec2
	for _, n := range neighbors {
		off := vmath.V2Sub(pos, n)
		distSq := vmath.V2MagSq(off)
		if !(distSq > epsSq) || distSq > radiusSq {
			continue
		}
		push := vmath.V2Scale(vmath.V2Normalize(off), p.Strength/distSq)
		sum = vmath.V2Add(sum, vmath.V2ClampMag(push, p.MaxMagnitude))
	}
	sum = vmath.V2Scale(sum, dt)

	blended := vmath.V2Add(d.Vector(), sum)
	if !blended.IsFinite() {
		return
	}
	mag := vmath.V2Mag(blended)
	if mag == 0 {
		d.Direction = vmath.Vec2{}
		d.Magnitude = 0
		return
	}
	d.Direction = vmath.V2Scale(blended, 1/mag)
	d.Magnitude = math.Min(mag, p.MaxMagnitude)
}

// ApplyDrift displaces the agent, and its target when set, by the residual drift
// The residual decays by Overshoot times the applied distance; returns the displacement
func ApplyDrift(d *Drift, s *Steering, p *DriftProfile, dt float64) vmath.Vec2 {
	dt = math.Max(vmath.GuardFloat(dt, 0), 0)
	if !(d.Magnitude > p.Threshold) || dt == 0 {
		return vmath.Vec2{}
	}

	applied := math.Min(d.Magnitude, p.Cap) * dt
	disp := vmath.GuardVec(vmath.V2Scale(d.Direction, applied), vmath.Vec2{})
	if disp == (vmath.Vec2{}) {
		return disp
	}

	s.Position = vmath.V2Add(s.Position, disp)
	if s.HasTarget {
		s.Target = vmath.V2Add(s.Target, disp)
	}

	d.Magnitude = math.Max(d.Magnitude-applied*p.Overshoot, 0)
	if d.Magnitude == 0 {
		d.Direction = vmath.Vec2{}
	}
	return disp
}
