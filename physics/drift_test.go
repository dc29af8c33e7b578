package physics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/ant-colony/parameter"
	"github.com/lixenwraith/ant-colony/vmath"
)

func TestAccumulateRepelsFromNeighbor(t *testing.T) {
	var d Drift
	p := DefaultDrift
	Accumulate(&d, vmath.V2(0, 0), []vmath.Vec2{vmath.V2(5, 0)}, &p, 1)

	assert.InDelta(t, -1.0, d.Direction.X, 1e-12)
	assert.InDelta(t, 0.0, d.Direction.Y, 1e-12)
	// 25 / 5^2
	assert.InDelta(t, 1.0, d.Magnitude, 1e-12)
}

func TestAccumulateScalesByDt(t *testing.T) {
	p := DefaultDrift
	neighbors := []vmath.Vec2{vmath.V2(5, 0)}

	var half, whole Drift
	Accumulate(&half, vmath.V2(0, 0), neighbors, &p, 0.25)
	Accumulate(&half, vmath.V2(0, 0), neighbors, &p, 0.25)
	Accumulate(&whole, vmath.V2(0, 0), neighbors, &p, 0.5)
	assert.InDelta(t, 0.5, whole.Magnitude, 1e-12)
	assert.InDelta(t, whole.Magnitude, half.Magnitude, 1e-12)

	var idle Drift
	Accumulate(&idle, vmath.V2(0, 0), neighbors, &p, 0)
	Accumulate(&idle, vmath.V2(0, 0), neighbors, &p, math.NaN())
	Accumulate(&idle, vmath.V2(0, 0), neighbors, &p, -1)
	assert.Equal(t, Drift{}, idle)
}

func TestAccumulateSkipsSelfAndFar(t *testing.T) {
	var d Drift
	p := DefaultDrift
	Accumulate(&d, vmath.V2(5, 5), []vmath.Vec2{vmath.V2(5, 5), vmath.V2(100, 5)}, &p, 1)
	assert.Equal(t, 0.0, d.Magnitude)
	assert.Equal(t, vmath.Vec2{}, d.Direction)
}

func TestAccumulateClampsContributionAndTotal(t *testing.T) {
	p := DefaultDrift
	var one Drift
	Accumulate(&one, vmath.V2(0, 0), []vmath.Vec2{vmath.V2(0.01, 0)}, &p, 0.1)
	assert.InDelta(t, p.MaxMagnitude*0.1, one.Magnitude, 1e-12)

	var d Drift
	neighbors := []vmath.Vec2{vmath.V2(0.01, 0), vmath.V2(0.02, 0), vmath.V2(0.03, 0)}
	Accumulate(&d, vmath.V2(0, 0), neighbors, &p, 1)
	assert.Equal(t, p.MaxMagnitude, d.Magnitude)
	assert.InDelta(t, -1.0, d.Direction.X, 1e-12)
}

func TestAccumulateBlendsResidual(t *testing.T) {
	d := Drift{Direction: vmath.V2(0, 1), Magnitude: 1}
	p := DefaultDrift
	Accumulate(&d, vmath.V2(0, 0), []vmath.Vec2{vmath.V2(5, 0)}, &p, 1)

	// (0, 1) + (-1, 0)
	assert.InDelta(t, math.Sqrt2, d.Magnitude, 1e-9)
	assert.InDelta(t, -math.Sqrt2/2, d.Direction.X, 1e-9)
	assert.InDelta(t, math.Sqrt2/2, d.Direction.Y, 1e-9)
}

func TestAccumulateCancellingNeighbors(t *testing.T) {
	var d Drift
	p := DefaultDrift
	Accumulate(&d, vmath.V2(0, 0), []vmath.Vec2{vmath.V2(2, 0), vmath.V2(-2, 0)}, &p, 1)
	assert.Equal(t, 0.0, d.Magnitude)
}

func TestAccumulateNaNLeavesResidual(t *testing.T) {
	d := Drift{Direction: vmath.V2(1, 0), Magnitude: 2}
	p := DefaultDrift
	Accumulate(&d, vmath.V2(math.NaN(), 0), []vmath.Vec2{vmath.V2(1, 0)}, &p, 1)
	assert.Equal(t, 2.0, d.Magnitude)

	Accumulate(&d, vmath.V2(0, 0), []vmath.Vec2{vmath.V2(math.NaN(), 0)}, &p, 1)
	assert.Equal(t, 2.0, d.Magnitude)
}

func TestApplyDriftMovesAgentAndTarget(t *testing.T) {
	d := Drift{Direction: vmath.V2(1, 0), Magnitude: 2}
	s := &Steering{Position: vmath.V2(0, 0)}
	s.SetTarget(vmath.V2(20, 20))
	p := DefaultDrift

	disp := ApplyDrift(&d, s, &p, 0.5)
	assert.InDelta(t, 1.0, disp.X, 1e-12)
	assert.InDelta(t, 1.0, s.Position.X, 1e-12)
	assert.InDelta(t, 21.0, s.Target.X, 1e-12)
	assert.InDelta(t, 20.0, s.Target.Y, 1e-12)
	// 2 - 1.0*1.5
	assert.InDelta(t, 0.5, d.Magnitude, 1e-12)
}

func TestApplyDriftBelowThreshold(t *testing.T) {
	d := Drift{Direction: vmath.V2(1, 0), Magnitude: 0.001}
	s := &Steering{Position: vmath.V2(4, 4)}
	p := DefaultDrift

	disp := ApplyDrift(&d, s, &p, 1)
	assert.Equal(t, vmath.Vec2{}, disp)
	assert.Equal(t, vmath.V2(4, 4), s.Position)
	assert.False(t, s.HasTarget)
}

func TestApplyDriftExhausts(t *testing.T) {
	p := DefaultDrift
	d := Drift{Direction: vmath.V2(0, 1), Magnitude: p.MaxMagnitude}
	s := &Steering{}

	var total float64
	for i := 0; i < 1000 && d.Magnitude > p.Threshold; i++ {
		total += ApplyDrift(&d, s, &p, 0.05).Y
	}
	assert.LessOrEqual(t, d.Magnitude, p.Threshold)
	// Overshoot > 1 bounds the total displacement below the initial magnitude
	assert.Less(t, total, p.MaxMagnitude)
	assert.Greater(t, total, 0.0)
}

func TestApplyDriftCappedBelowSteeringSpeed(t *testing.T) {
	p := DefaultDrift
	assert.Less(t, p.Cap, parameter.AntMaxSpeed)
	assert.Less(t, p.MaxMagnitude, parameter.AntMaxSpeed)

	d := Drift{Direction: vmath.V2(1, 0), Magnitude: 100}
	s := &Steering{}
	disp := ApplyDrift(&d, s, &p, 0.1)
	assert.InDelta(t, p.Cap*0.1, disp.X, 1e-12)
}

// forageLoop steers an agent at dt from the origin to food at (11, 0), with two agents ahead
// at (24, +-4) pushing back through drift, retargeting the food on every arrival
// It returns the closest approach, the arrival count and the final drift speed
func forageLoop(dt float64) (closest float64, arrivals int, speed float64) {
	p := DefaultDrift
	food := vmath.V2(11, 0)
	neighbors := []vmath.Vec2{vmath.V2(24, 4), vmath.V2(24, -4)}

	s := newAnt(vmath.V2(0, 0), 0)
	s.SetTarget(food)
	var d Drift

	closest = math.Inf(1)
	n := int(math.Round(60 / dt))
	for i := 0; i < n; i++ {
		Accumulate(&d, s.Position, neighbors, &p, dt)
		disp := ApplyDrift(&d, s, &p, dt)
		speed = vmath.V2Mag(disp) / dt

		if Advance(s, dt) == SteerArrived {
			arrivals++
			s.SetTarget(food)
		}
		closest = math.Min(closest, vmath.V2Dist(s.Position, food))
	}
	return closest, arrivals, speed
}

func TestDriftSteeringReachesTargetAtAnyTickRate(t *testing.T) {
	p := DefaultDrift
	neighbors := []vmath.Vec2{vmath.V2(24, 4), vmath.V2(24, -4)}
	var push Drift
	Accumulate(&push, vmath.V2(11, 0), neighbors, &p, 1)
	// Residual settles where accumulated push equals Overshoot decay
	settled := push.Magnitude / p.Overshoot
	require.Less(t, settled, parameter.AntMaxSpeed/10)

	for _, hz := range []float64{10, 30, 60, 120} {
		dt := 1 / hz
		closest, arrivals, speed := forageLoop(dt)
		assert.Less(t, closest, 0.05, "closest approach at %v Hz", hz)
		assert.Greater(t, arrivals, 0, "arrivals at %v Hz", hz)
		assert.InDelta(t, settled, speed, 0.01, "drift speed at %v Hz", hz)
	}
}
