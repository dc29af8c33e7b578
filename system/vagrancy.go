package system

import (
	"github.com/lixenwraith/ant-colony/component"
	"github.com/lixenwraith/ant-colony/engine"
	"github.com/lixenwraith/ant-colony/event"
	"github.com/lixenwraith/ant-colony/parameter"
	"github.com/lixenwraith/ant-colony/vmath"
)

// VagrancySystem re-homes ants that strayed far from home to a nearby spawner
type VagrancySystem struct {
	engine.SystemBase

	timer component.SimTimer

	enabled bool
}

// NewVagrancySystem creates a new vagrancy system
func NewVagrancySystem(world *engine.World) engine.System {
	s := &VagrancySystem{
		SystemBase: engine.NewSystemBase(world, "vagrancy"),
	}
	s.Init()
	return s
}

func (s *VagrancySystem) Init() {
	s.timer = component.NewRepeatingTimer(parameter.VagrancyInterval)
	s.enabled = true
}

func (s *VagrancySystem) Name() string {
	return "vagrancy"
}

func (s *VagrancySystem) Priority() int {
	return parameter.PriorityVagrancy
}

func (s *VagrancySystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventSystemToggle}
}

func (s *VagrancySystem) HandleEvent(ev event.GameEvent) {
	if enabled, ok := engine.ToggleFor(s.Name(), ev); ok {
		s.enabled = enabled
	}
}

func (s *VagrancySystem) Update() {
	if !s.enabled || s.timer.Tick(s.Resource.Time.DeltaTime) == 0 {
		return
	}

	spawners := s.Resource.Spatial.Spawners
	for _, e := range s.Component.Ant.All() {
		ant, ok := s.Component.Ant.Get(e)
		if !ok {
			continue
		}
		nav, ok := s.Component.Nav.Get(e)
		if !ok || vmath.V2Dist(nav.Position, ant.Home) <= parameter.VagrancyDistance {
			continue
		}

		near, found := spawners.Nearest(nav.Position, parameter.VagrancyRehomeRadius, 0)
		if !found {
			continue
		}
		sp, ok := s.Component.Spawner.Get(near.Entity)
		if !ok || sp.Position == ant.Home {
			continue
		}

		if sp.Colony != ant.Colony {
			s.Component.Colony.Update(ant.Colony, func(c *component.ColonyComponent) {
				if c.Population > 0 {
					c.Population--
				}
			})
			s.Component.Colony.Update(sp.Colony, func(c *component.ColonyComponent) {
				c.Population++
			})
		}
		ant.Colony = sp.Colony
		ant.Home = sp.Position
		s.Component.Ant.Set(e, ant)
		s.Log.Debug("ant re-homed", "entity", e, "colony", sp.Colony)
	}
}
