package vmath

import "math"

// FastRand is a xorshift64 generator; deterministic for a given seed and call order
// Not safe for concurrent use
type FastRand struct {
	state uint64
}

func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 1
	}
	return &FastRand{state: seed}
}

func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

func (r *FastRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// IntRange returns an int in [lo, hi)
func (r *FastRand) IntRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.Intn(hi-lo)
}

// Float64 returns a value in [0, 1)
func (r *FastRand) Float64() float64 {
	return float64(r.Next()>>11) / (1 << 53)
}

// Range returns a value in [lo, hi); lo when the range is empty or invalid
func (r *FastRand) Range(lo, hi float64) float64 {
	if !(hi > lo) {
		return lo
	}
	return lo + r.Float64()*(hi-lo)
}

// Angle returns a heading in [0, Tau)
func (r *FastRand) Angle() float64 {
	return r.Float64() * Tau
}

// Direction returns a random unit vector
func (r *FastRand) Direction() Vec2 {
	return V2FromAngle(r.Angle())
}

// Chance returns true with probability p
func (r *FastRand) Chance(p float64) bool {
	if math.IsNaN(p) {
		return false
	}
	return r.Float64() < p
}

// Split derives an independent generator, used to hand child streams to workers
func (r *FastRand) Split() *FastRand {
	return NewFastRand(r.Next() ^ 0x9E3779B97F4A7C15)
}
