package component

import (
	"github.com/lixenwraith/ant-colony/physics"
	"github.com/lixenwraith/ant-colony/vmath"
)

// NavigationComponent carries pose, speed limits and target for steering
type NavigationComponent struct {
	physics.Steering

	// Last steering outcome, for debug draw
	LastResult physics.SteerResult
}

// DriftComponent carries the residual separation force
type DriftComponent struct {
	physics.Drift

	// Displacement applied this tick, for debug draw
	LastDisplacement vmath.Vec2
}
