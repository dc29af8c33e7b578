package physics

import (
	"math"

	"github.com/lixenwraith/ant-colony/parameter"
	"github.com/lixenwraith/ant-colony/vmath"
)

// Steering is the pose, limits and optional target of a steerable agent
type Steering struct {
	Position vmath.Vec2
	Heading  float64 // Radians, facing = (cos h, sin h)

	Target    vmath.Vec2
	HasTarget bool

	MaxSpeed    float64 // World units per second
	MaxTurnRate float64 // Radians per second
}

// SteerResult reports what one Advance call did
type SteerResult uint8

const (
	SteerIdle    SteerResult = iota // No target, pose untouched
	SteerMoving                     // Turned and/or moved toward target
	SteerArrived                    // Snapped onto target, target cleared
	SteerInvalid                    // Non-finite target discarded
)

func (r SteerResult) String() string {
	switch r {
	case SteerIdle:
		return "idle"
	case SteerMoving:
		return "moving"
	case SteerArrived:
		return "arrived"
	case SteerInvalid:
		return "invalid"
	default:
		return "unknown"
	}
}

// SetTarget assigns a navigation target
func (s *Steering) SetTarget(t vmath.Vec2) {
	s.Target = t
	s.HasTarget = true
}

// ClearTarget drops the navigation target
func (s *Steering) ClearTarget() {
	s.Target = vmath.Vec2{}
	s.HasTarget = false
}

// Facing returns the unit heading vector
func (s *Steering) Facing() vmath.Vec2 {
	return vmath.V2FromAngle(vmath.GuardFloat(s.Heading, 0))
}

// TurnRadius is the radius of the tightest circle traced at full speed
// Zero when the agent cannot turn
func (s *Steering) TurnRadius() float64 {
	if !(s.MaxTurnRate > 0) || !(s.MaxSpeed > 0) {
		return 0
	}
	return vmath.GuardFloat(s.MaxSpeed/s.MaxTurnRate, 0)
}

// Advance turns the agent toward its target by at most MaxTurnRate*dt, then moves it along
// the new facing by at most MaxSpeed*dt
// Arrival snaps the agent onto the target within one call; targets inside the turning circle
// are approached at the reduced speed whose circle passes through them
func Advance(s *Steering, dt float64) SteerResult {
	if !s.HasTarget {
		return SteerIdle
	}
	if !s.Target.IsFinite() {
		s.ClearTarget()
		return SteerInvalid
	}

	dt = math.Max(vmath.GuardFloat(dt, 0), 0)
	maxSpeed := math.Max(vmath.GuardFloat(s.MaxSpeed, 0), 0)
	maxTurn := math.Max(vmath.GuardFloat(s.MaxTurnRate, 0), 0)
	s.Position = vmath.GuardVec(s.Position, vmath.Vec2{})
	heading := vmath.GuardFloat(s.Heading, 0)

	toTarget := vmath.V2Sub(s.Target, s.Position)
	distance := vmath.V2Mag(toTarget)
	step := maxSpeed * dt
	desired := vmath.Clamp(step, 0, distance)

	facing := vmath.V2FromAngle(heading)
	angleDelta := vmath.SignedAngle(facing, toTarget)

	maxRot := maxTurn * dt
	rot := angleDelta
	if math.Abs(rot) > maxRot {
		rot = vmath.Sign(angleDelta) * maxRot
	}

	if distance <= desired*parameter.NavSnapFactor {
		s.Position = s.Target
		s.Heading = vmath.WrapAngle(heading + rot)
		s.ClearTarget()
		return SteerArrived
	}

	// Dead zone: a target inside either turning circle cannot be reached at full speed
	if r := s.TurnRadius(); r > 0 {
		normal := vmath.V2Scale(vmath.V2Perp(facing), r)
		left := vmath.V2Add(s.Position, normal)
		right := vmath.V2Sub(s.Position, normal)
		rSq := r * r
		if vmath.V2DistSq(s.Target, left) < rSq || vmath.V2DistSq(s.Target, right) < rSq {
			sinA := math.Abs(math.Sin(angleDelta))
			// Chord of length distance subtending 2*angleDelta on a circle of radius v/maxTurn
			v := vmath.GuardFloat(maxTurn*distance/(2*sinA), 0)
			desired = vmath.Clamp(v*dt, 0, math.Min(step, distance))
		}
	}

	heading = vmath.WrapAngle(heading + rot)
	s.Heading = heading
	move := vmath.V2Scale(vmath.V2FromAngle(heading), desired)
	s.Position = vmath.GuardVec(vmath.V2Add(s.Position, move), s.Position)
	return SteerMoving
}
