package component

import (
	"github.com/lixenwraith/ant-colony/behavior"
	"github.com/lixenwraith/ant-colony/core"
	"github.com/lixenwraith/ant-colony/vmath"
)

// LaborData is requested versus active head count for one role
type LaborData struct {
	Requested int
	Active    int
}

// Vacancy is the unfilled requested count, negative when over-staffed
func (l LaborData) Vacancy() int {
	return l.Requested - l.Active
}

// ColonyComponent is the bookkeeping of one colony
type ColonyComponent struct {
	Home vmath.Vec2

	Food        int
	AntCapacity int
	Population  int

	Labor [behavior.RoleCount]LaborData

	LarvaTarget int
	LarvaCount  int
}

// SpawnerComponent is a nest entrance ants can call home
type SpawnerComponent struct {
	Colony       core.Entity
	Position     vmath.Vec2
	StartingAnts int
}

// LarvaComponent is a growing larva attached to a colony
type LarvaComponent struct {
	Colony      core.Entity
	Ticks       int
	TicksToGrow int
	Growth      SimTimer
}

// Progress returns growth in [0, 1]
func (l LarvaComponent) Progress() float64 {
	if l.TicksToGrow <= 0 {
		return 1
	}
	p := float64(l.Ticks) / float64(l.TicksToGrow)
	if p > 1 {
		return 1
	}
	return p
}
