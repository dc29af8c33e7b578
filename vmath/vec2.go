package vmath

import (
	"math"
)

// Vec2 is a float64 2D vector in world units
type Vec2 struct {
	X, Y float64
}

// V2 is shorthand for Vec2{x, y}
func V2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

func V2Add(a, b Vec2) Vec2 {
	return Vec2{a.X + b.X, a.Y + b.Y}
}

func V2Sub(a, b Vec2) Vec2 {
	return Vec2{a.X - b.X, a.Y - b.Y}
}

func V2Scale(v Vec2, s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

func V2Dot(a, b Vec2) float64 {
	return a.X*b.X + a.Y*b.Y
}

// V2Cross returns the z component of the 3D cross product (a.x, a.y, 0) x (b.x, b.y, 0)
// Positive when b is counter-clockwise from a
func V2Cross(a, b Vec2) float64 {
	return a.X*b.Y - a.Y*b.X
}

func V2MagSq(v Vec2) float64 {
	return v.X*v.X + v.Y*v.Y
}

func V2Mag(v Vec2) float64 {
	return math.Sqrt(V2MagSq(v))
}

func V2DistSq(a, b Vec2) float64 {
	return V2MagSq(V2Sub(a, b))
}

func V2Dist(a, b Vec2) float64 {
	return math.Sqrt(V2DistSq(a, b))
}

// V2Normalize returns the unit vector, or zero for zero/NaN input
func V2Normalize(v Vec2) Vec2 {
	mag := V2Mag(v)
	if mag == 0 || math.IsNaN(mag) || math.IsInf(mag, 0) {
		return Vec2{}
	}
	inv := 1.0 / mag
	return Vec2{v.X * inv, v.Y * inv}
}

// V2Perp rotates v by +90 degrees
func V2Perp(v Vec2) Vec2 {
	return Vec2{-v.Y, v.X}
}

// V2Rotate rotates v counter-clockwise by angle radians
func V2Rotate(v Vec2, angle float64) Vec2 {
	s, c := math.Sincos(angle)
	return Vec2{v.X*c - v.Y*s, v.X*s + v.Y*c}
}

// V2FromAngle returns the unit vector for heading angle (0 = +X, Pi/2 = +Y)
func V2FromAngle(angle float64) Vec2 {
	s, c := math.Sincos(angle)
	return Vec2{c, s}
}

// V2Angle returns the heading of v in (-Pi, Pi]
func V2Angle(v Vec2) float64 {
	return math.Atan2(v.Y, v.X)
}

// V2ClampMag limits the magnitude of v to max
func V2ClampMag(v Vec2, max float64) Vec2 {
	magSq := V2MagSq(v)
	if magSq <= max*max || magSq == 0 {
		return v
	}
	return V2Scale(v, max/math.Sqrt(magSq))
}

// V2Towards returns the point at distance d from origin in the direction of target
// Returns origin unchanged when the two coincide
func V2Towards(origin, target Vec2, d float64) Vec2 {
	dir := V2Normalize(V2Sub(target, origin))
	return V2Add(origin, V2Scale(dir, d))
}

// IsNaN reports whether either component is NaN
func (v Vec2) IsNaN() bool {
	return math.IsNaN(v.X) || math.IsNaN(v.Y)
}

// IsFinite reports whether both components are finite numbers
func (v Vec2) IsFinite() bool {
	return !math.IsNaN(v.X) && !math.IsNaN(v.Y) && !math.IsInf(v.X, 0) && !math.IsInf(v.Y, 0)
}

// Cell is an integer grid coordinate derived from a world position
type Cell struct {
	X, Y int
}

// CellOf truncates a world position to its grid cell (toward zero)
func CellOf(v Vec2) Cell {
	return Cell{X: int(v.X), Y: int(v.Y)}
}

// Vec returns the cell coordinate as a world vector
func (c Cell) Vec() Vec2 {
	return Vec2{float64(c.X), float64(c.Y)}
}
