package system

import (
	"sync/atomic"

	"github.com/lixenwraith/ant-colony/behavior"
	"github.com/lixenwraith/ant-colony/component"
	"github.com/lixenwraith/ant-colony/engine"
	"github.com/lixenwraith/ant-colony/event"
	"github.com/lixenwraith/ant-colony/parameter"
	"github.com/lixenwraith/ant-colony/scent"
	"github.com/lixenwraith/ant-colony/status"
)

// ScentEmitSystem deposits trail scent at every ant on a fixed cadence
// All ants lay AntSmell; foragers bringing food home also lay FoundFoodSmell
type ScentEmitSystem struct {
	engine.SystemBase

	timer component.SimTimer

	enabled bool
}

// NewScentEmitSystem creates a new scent emission system
func NewScentEmitSystem(world *engine.World) engine.System {
	s := &ScentEmitSystem{
		SystemBase: engine.NewSystemBase(world, "scent_emit"),
	}
	s.Init()
	return s
}

func (s *ScentEmitSystem) Init() {
	s.timer = component.NewRepeatingTimer(s.Resource.Config.Scent.EmitInterval.Duration)
	s.enabled = true
}

func (s *ScentEmitSystem) Name() string {
	return "scent_emit"
}

func (s *ScentEmitSystem) Priority() int {
	return parameter.PriorityScentEmit
}

func (s *ScentEmitSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventSystemToggle}
}

func (s *ScentEmitSystem) HandleEvent(ev event.GameEvent) {
	if enabled, ok := engine.ToggleFor(s.Name(), ev); ok {
		s.enabled = enabled
	}
}

func (s *ScentEmitSystem) Update() {
	if !s.enabled || s.timer.Tick(s.Resource.Time.DeltaTime) == 0 {
		return
	}
	cfg := s.Resource.Config.Scent
	field := s.Resource.Scent

	for _, e := range s.Component.Nav.All() {
		if !s.Component.Ant.Has(e) {
			continue
		}
		nav, ok := s.Component.Nav.Get(e)
		if !ok {
			continue
		}
		field.Deposit(scent.AntSmell, nav.Position, cfg.StartingStrength, cfg.MaxStrength)

		if f, ok := s.Component.Forager.Get(e); ok && f.State == behavior.BringingHomeFood {
			field.Deposit(scent.FoundFoodSmell, nav.Position, cfg.StartingStrength, cfg.MaxStrength)
		}
	}
}

// ScentMaintainSystem decays, culls and reindexes the scent field on its own cadence
// Runs as an exclusive phase after every query and deposit of the tick
type ScentMaintainSystem struct {
	engine.SystemBase

	timer component.SimTimer

	statAnt  *atomic.Int64
	statFood *atomic.Int64

	enabled bool
}

// NewScentMaintainSystem creates a new scent maintenance system
func NewScentMaintainSystem(world *engine.World) engine.System {
	s := &ScentMaintainSystem{
		SystemBase: engine.NewSystemBase(world, "scent_maintain"),
	}
	s.statAnt = s.Resource.Status.Ints.Get(status.KeyScentAnt)
	s.statFood = s.Resource.Status.Ints.Get(status.KeyScentFood)
	s.Init()
	return s
}

func (s *ScentMaintainSystem) Init() {
	s.timer = component.NewRepeatingTimer(s.Resource.Config.Scent.MaintainInterval.Duration)
	s.statAnt.Store(0)
	s.statFood.Store(0)
	s.enabled = true
}

func (s *ScentMaintainSystem) Name() string {
	return "scent_maintain"
}

func (s *ScentMaintainSystem) Priority() int {
	return parameter.PriorityScentMaintain
}

func (s *ScentMaintainSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventSystemToggle}
}

func (s *ScentMaintainSystem) HandleEvent(ev event.GameEvent) {
	if enabled, ok := engine.ToggleFor(s.Name(), ev); ok {
		s.enabled = enabled
	}
}

func (s *ScentMaintainSystem) Update() {
	if !s.enabled {
		return
	}
	fired := s.timer.Tick(s.Resource.Time.DeltaTime)
	if fired == 0 {
		return
	}

	field := s.Resource.Scent
	// Catch-up passes collapse into one maintain at the combined rate
	field.Maintain(s.Resource.Config.Scent.DecayRate * float64(fired))

	s.statAnt.Store(int64(field.Len(scent.AntSmell)))
	s.statFood.Store(int64(field.Len(scent.FoundFoodSmell)))
}
