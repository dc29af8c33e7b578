package vmath

import "math"

// Tau is a full turn in radians
const Tau = 2 * math.Pi

// Clamp limits v to [lo, hi]; NaN passes through
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// GuardFloat returns fallback when v is NaN or infinite
func GuardFloat(v, fallback float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fallback
	}
	return v
}

// GuardVec returns fallback when either component is not finite
func GuardVec(v, fallback Vec2) Vec2 {
	if !v.IsFinite() {
		return fallback
	}
	return v
}

// WrapAngle normalizes an angle to (-Pi, Pi]
func WrapAngle(a float64) float64 {
	if math.IsNaN(a) || math.IsInf(a, 0) {
		return 0
	}
	a = math.Mod(a+math.Pi, Tau)
	if a <= 0 {
		a += Tau
	}
	return a - math.Pi
}

// SignedAngle returns the rotation in (-Pi, Pi] that turns a onto b
// Zero when either vector is zero
func SignedAngle(a, b Vec2) float64 {
	if V2MagSq(a) == 0 || V2MagSq(b) == 0 {
		return 0
	}
	return GuardFloat(math.Atan2(V2Cross(a, b), V2Dot(a, b)), 0)
}

// Sign returns -1, 0, or 1
func Sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
