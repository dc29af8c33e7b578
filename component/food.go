package component

import (
	"github.com/lixenwraith/ant-colony/parameter"
	"github.com/lixenwraith/ant-colony/vmath"
)

// FoodComponent is a free food chunk on the ground
type FoodComponent struct {
	Position vmath.Vec2
	Quantity int
}

// ExclusionDistance is the keep-out radius other chunks spawn outside of
func (f FoodComponent) ExclusionDistance() float64 {
	return ExclusionFor(f.Quantity)
}

// InteractionDistance is the pickup range
func (f FoodComponent) InteractionDistance() float64 {
	d := f.ExclusionDistance() * 0.5
	if d < parameter.FoodMinInteraction {
		return parameter.FoodMinInteraction
	}
	return d
}

// ExclusionFor maps a quantity to an exclusion radius in whole chunk units
func ExclusionFor(quantity int) float64 {
	return parameter.FoodExclusionPerUnit * float64(quantity/parameter.FoodChunkUnit)
}

// TakeFood removes up to requested, returning the amount taken
func TakeFood(have *int, requested int) int {
	if requested <= 0 || *have <= 0 {
		return 0
	}
	n := requested
	if n > *have {
		n = *have
	}
	*have -= n
	return n
}
