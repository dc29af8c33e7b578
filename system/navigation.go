package system

import (
	"sync/atomic"

	"github.com/lixenwraith/ant-colony/core"
	"github.com/lixenwraith/ant-colony/engine"
	"github.com/lixenwraith/ant-colony/event"
	"github.com/lixenwraith/ant-colony/parameter"
	"github.com/lixenwraith/ant-colony/physics"
	"github.com/lixenwraith/ant-colony/status"
)

// NavigationSystem advances every steering agent toward its target
type NavigationSystem struct {
	engine.SystemBase

	statArrivals  *atomic.Int64
	statDiscarded *atomic.Int64

	enabled bool
}

// NewNavigationSystem creates a new navigation system
func NewNavigationSystem(world *engine.World) engine.System {
	s := &NavigationSystem{
		SystemBase: engine.NewSystemBase(world, "navigation"),
	}
	s.statArrivals = s.Resource.Status.Ints.Get(status.KeyNavArrivals)
	s.statDiscarded = s.Resource.Status.Ints.Get(status.KeyNavDiscarded)
	s.Init()
	return s
}

func (s *NavigationSystem) Init() {
	s.statArrivals.Store(0)
	s.statDiscarded.Store(0)
	s.enabled = true
}

func (s *NavigationSystem) Name() string {
	return "navigation"
}

func (s *NavigationSystem) Priority() int {
	return parameter.PriorityNavigation
}

func (s *NavigationSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventSystemToggle}
}

func (s *NavigationSystem) HandleEvent(ev event.GameEvent) {
	if enabled, ok := engine.ToggleFor(s.Name(), ev); ok {
		s.enabled = enabled
	}
}

func (s *NavigationSystem) Update() {
	if !s.enabled {
		return
	}
	dt := s.Resource.Time.Delta

	forEachAgent(s.Component.Nav.All(), func(e core.Entity) {
		nav, ok := s.Component.Nav.Get(e)
		if !ok {
			return
		}
		nav.LastResult = physics.Advance(&nav.Steering, dt)
		switch nav.LastResult {
		case physics.SteerArrived:
			s.statArrivals.Add(1)
		case physics.SteerInvalid:
			s.statDiscarded.Add(1)
		}
		s.Component.Nav.Set(e, nav)
	})
}
