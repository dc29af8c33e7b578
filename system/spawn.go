package system

import (
	"sync/atomic"

	"github.com/lixenwraith/ant-colony/behavior"
	"github.com/lixenwraith/ant-colony/component"
	"github.com/lixenwraith/ant-colony/core"
	"github.com/lixenwraith/ant-colony/engine"
	"github.com/lixenwraith/ant-colony/event"
	"github.com/lixenwraith/ant-colony/parameter"
	"github.com/lixenwraith/ant-colony/physics"
	"github.com/lixenwraith/ant-colony/status"
	"github.com/lixenwraith/ant-colony/vmath"
)

// SpawnSystem creates ants: the starting ring around each spawner, then one per SpawnAnt event
type SpawnSystem struct {
	engine.SystemBase

	statBorn *atomic.Int64

	enabled bool
}

// NewSpawnSystem creates a new spawn system
func NewSpawnSystem(world *engine.World) engine.System {
	s := &SpawnSystem{
		SystemBase: engine.NewSystemBase(world, "spawn"),
	}
	s.statBorn = s.Resource.Status.Ints.Get(status.KeyAntsBorn)
	s.Init()
	return s
}

func (s *SpawnSystem) Init() {
	s.statBorn.Store(0)
	s.enabled = true
}

func (s *SpawnSystem) Name() string {
	return "spawn"
}

func (s *SpawnSystem) Priority() int {
	return parameter.PrioritySpawn
}

func (s *SpawnSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventSpawnAnt,
		event.EventSystemToggle,
	}
}

func (s *SpawnSystem) HandleEvent(ev event.GameEvent) {
	if enabled, ok := engine.ToggleFor(s.Name(), ev); ok {
		s.enabled = enabled
		return
	}
	if !s.enabled || ev.Type != event.EventSpawnAnt {
		return
	}

	p, ok := ev.Payload.(*event.SpawnAntPayload)
	if !ok {
		return
	}
	colony, ok := s.Component.Colony.Get(p.Colony)
	if !ok {
		s.Log.Debug("spawn for unknown colony", "colony", p.Colony)
		return
	}
	if colony.Population >= colony.AntCapacity {
		s.Log.Debug("spawn rejected, colony full", "colony", p.Colony, "population", colony.Population)
		return
	}

	e := s.spawnAnt(p.Colony, colony.Home, p.Position, 0)
	s.Log.Debug("ant hatched", "entity", e, "colony", p.Colony)
}

// Update places the starting ants of each spawner once
func (s *SpawnSystem) Update() {
	if !s.enabled {
		return
	}

	rng := s.Resource.Rand
	lifespan := s.Resource.Config.Ant.Lifespan
	for _, se := range s.Component.Spawner.All() {
		sp, ok := s.Component.Spawner.Get(se)
		if !ok || sp.StartingAnts <= 0 {
			continue
		}
		colony, ok := s.Component.Colony.Get(sp.Colony)
		if !ok {
			continue
		}

		for i := 0; i < sp.StartingAnts; i++ {
			pos := vmath.V2Add(sp.Position, vmath.V2Scale(rng.Direction(), rng.Range(parameter.SpawnerRingMin, parameter.SpawnerRingMax)))
			// Staggered ages so the founding generation does not die at once
			s.spawnAnt(sp.Colony, colony.Home, pos, rng.Range(0, lifespan/2))
		}
		s.Log.Info("spawner seeded", "spawner", se, "colony", sp.Colony, "ants", sp.StartingAnts)
		sp.StartingAnts = 0
		s.Component.Spawner.Set(se, sp)
	}
}

func (s *SpawnSystem) spawnAnt(colonyEntity core.Entity, home, pos vmath.Vec2, age float64) core.Entity {
	cfg := s.Resource.Config
	e := s.World.CreateEntity()

	s.Component.Ant.Set(e, component.AntComponent{
		Colony:        colonyEntity,
		Home:          home,
		Role:          behavior.RoleIdle,
		Age:           age,
		CarryCapacity: cfg.Ant.CarryCapacity,
	})
	s.Component.Nav.Set(e, component.NavigationComponent{
		Steering: physics.Steering{
			Position:    pos,
			Heading:     s.Resource.Rand.Angle(),
			MaxSpeed:    cfg.Ant.MaxSpeed,
			MaxTurnRate: cfg.Ant.MaxTurnRate,
		},
	})
	s.Component.Drift.Set(e, component.DriftComponent{})
	s.Component.Debug.Set(e, component.VisualDebugComponent{})

	s.Component.Colony.Update(colonyEntity, func(c *component.ColonyComponent) {
		c.Population++
	})
	s.statBorn.Add(1)
	s.Resource.Event.Emit(event.EventSoundRequest, &event.SoundRequestPayload{Sound: core.SoundAntBorn})
	return e
}
