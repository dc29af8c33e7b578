package component

import (
	"github.com/lixenwraith/ant-colony/behavior"
	"github.com/lixenwraith/ant-colony/core"
	"github.com/lixenwraith/ant-colony/vmath"
)

// AntComponent is the colony membership and labor state of an ant
type AntComponent struct {
	Colony core.Entity
	Home   vmath.Vec2
	Role   behavior.Role

	// Age in simulation seconds
	Age float64

	// Carried food, only foragers fill this
	Carrying      int
	CarryCapacity int
}

// ForagerComponent tracks forager state; present only while Role is RoleForager
type ForagerComponent struct {
	State     behavior.ForagerState
	SeekTimer SimTimer
}
