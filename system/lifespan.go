package system

import (
	"sync/atomic"

	"github.com/lixenwraith/ant-colony/component"
	"github.com/lixenwraith/ant-colony/core"
	"github.com/lixenwraith/ant-colony/engine"
	"github.com/lixenwraith/ant-colony/event"
	"github.com/lixenwraith/ant-colony/parameter"
	"github.com/lixenwraith/ant-colony/status"
)

// LifespanSystem ages ants and removes those past the configured lifespan
type LifespanSystem struct {
	engine.SystemBase

	dead []core.Entity

	statDied *atomic.Int64

	enabled bool
}

// NewLifespanSystem creates a new lifespan system
func NewLifespanSystem(world *engine.World) engine.System {
	s := &LifespanSystem{
		SystemBase: engine.NewSystemBase(world, "lifespan"),
	}
	s.statDied = s.Resource.Status.Ints.Get(status.KeyAntsDied)
	s.Init()
	return s
}

func (s *LifespanSystem) Init() {
	s.dead = s.dead[:0]
	s.statDied.Store(0)
	s.enabled = true
}

func (s *LifespanSystem) Name() string {
	return "lifespan"
}

func (s *LifespanSystem) Priority() int {
	return parameter.PriorityLifespan
}

func (s *LifespanSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventSystemToggle}
}

func (s *LifespanSystem) HandleEvent(ev event.GameEvent) {
	if enabled, ok := engine.ToggleFor(s.Name(), ev); ok {
		s.enabled = enabled
	}
}

func (s *LifespanSystem) Update() {
	if !s.enabled {
		return
	}

	dt := s.Resource.Time.Delta
	lifespan := s.Resource.Config.Ant.Lifespan
	s.dead = s.dead[:0]

	for _, e := range s.Component.Ant.All() {
		var age float64
		var colony core.Entity
		s.Component.Ant.Update(e, func(a *component.AntComponent) {
			a.Age += dt
			age, colony = a.Age, a.Colony
		})
		if lifespan > 0 && age >= lifespan {
			s.dead = append(s.dead, e)
			s.Resource.Event.Emit(event.EventAntDied, &event.AntDiedPayload{Entity: e, Colony: colony})
		}
	}

	for _, e := range s.dead {
		ant, _ := s.Component.Ant.Get(e)
		s.Component.Colony.Update(ant.Colony, func(c *component.ColonyComponent) {
			if c.Population > 0 {
				c.Population--
			}
		})
		s.World.DestroyEntity(e)
	}

	if n := len(s.dead); n > 0 {
		s.statDied.Add(int64(n))
		s.Resource.Event.Emit(event.EventSoundRequest, &event.SoundRequestPayload{Sound: core.SoundAntDeath})
		s.Log.Debug("ants died of old age", "count", n)
	}
}
