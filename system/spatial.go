package system

import (
	"github.com/lixenwraith/ant-colony/component"
	"github.com/lixenwraith/ant-colony/engine"
	"github.com/lixenwraith/ant-colony/event"
	"github.com/lixenwraith/ant-colony/parameter"
)

// SpatialSystem rebuilds the neighbor grids used by next tick's queries
// Ants rebuild every tick; food and spawners on a slower timer or when their count changes
type SpatialSystem struct {
	engine.SystemBase

	staticTimer  component.SimTimer
	lastFood     int
	lastSpawners int

	enabled bool
}

// NewSpatialSystem creates a new spatial index system
func NewSpatialSystem(world *engine.World) engine.System {
	s := &SpatialSystem{
		SystemBase: engine.NewSystemBase(world, "spatial"),
	}
	s.Init()
	return s
}

func (s *SpatialSystem) Init() {
	s.staticTimer = component.NewRepeatingTimer(parameter.SpatialStaticRebuildInterval)
	s.lastFood = -1
	s.lastSpawners = -1
	s.enabled = true
}

func (s *SpatialSystem) Name() string {
	return "spatial"
}

func (s *SpatialSystem) Priority() int {
	return parameter.PrioritySpatial
}

func (s *SpatialSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventSystemToggle}
}

func (s *SpatialSystem) HandleEvent(ev event.GameEvent) {
	if enabled, ok := engine.ToggleFor(s.Name(), ev); ok {
		s.enabled = enabled
	}
}

func (s *SpatialSystem) Update() {
	if !s.enabled {
		return
	}
	grids := s.Resource.Spatial

	grids.Ants.Clear()
	for _, e := range s.Component.Ant.All() {
		if nav, ok := s.Component.Nav.Get(e); ok {
			grids.Ants.Insert(e, nav.Position)
		}
	}

	fired := s.staticTimer.Tick(s.Resource.Time.DeltaTime) > 0
	foodCount := s.Component.Food.Count()
	spawnerCount := s.Component.Spawner.Count()
	if !fired && foodCount == s.lastFood && spawnerCount == s.lastSpawners {
		return
	}
	s.lastFood = foodCount
	s.lastSpawners = spawnerCount

	grids.Food.Clear()
	for _, e := range s.Component.Food.All() {
		if f, ok := s.Component.Food.Get(e); ok && f.Quantity > 0 {
			grids.Food.Insert(e, f.Position)
		}
	}
	grids.Spawners.Clear()
	for _, e := range s.Component.Spawner.All() {
		if sp, ok := s.Component.Spawner.Get(e); ok {
			grids.Spawners.Insert(e, sp.Position)
		}
	}
	grids.StaticSince = s.Resource.Time.SimTime
}
