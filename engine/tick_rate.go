package engine

import (
	"fmt"
	"time"

	"github.com/lixenwraith/ant-colony/parameter"
)

// TickRate scales real elapsed time into simulation time
type TickRate int

const (
	RatePaused TickRate = 0
	RateNormal TickRate = 1
	RateDouble TickRate = 2
	RateQuad   TickRate = 4
)

// ParseTickRate accepts the supported multipliers 0, 1, 2 and 4
func ParseTickRate(n int) (TickRate, error) {
	switch TickRate(n) {
	case RatePaused, RateNormal, RateDouble, RateQuad:
		return TickRate(n), nil
	}
	return RateNormal, fmt.Errorf("unsupported speed %d, want 0, 1, 2 or 4", n)
}

func (r TickRate) String() string {
	if r == RatePaused {
		return "paused"
	}
	return fmt.Sprintf("%dx", int(r))
}

// Next cycles 1x -> 2x -> 4x -> 1x, resuming from pause at 1x
func (r TickRate) Next() TickRate {
	switch r {
	case RateNormal:
		return RateDouble
	case RateDouble:
		return RateQuad
	default:
		return RateNormal
	}
}

// ScaledDelta multiplies d by the rate and clamps to [MinTickDelta, MaxTickDelta]
// Paused or non-positive input returns zero
func ScaledDelta(r TickRate, d time.Duration) time.Duration {
	if r <= RatePaused || d <= 0 {
		return 0
	}
	scaled := d * time.Duration(r)
	if scaled < parameter.MinTickDelta {
		return parameter.MinTickDelta
	}
	if scaled > parameter.MaxTickDelta {
		return parameter.MaxTickDelta
	}
	return scaled
}
