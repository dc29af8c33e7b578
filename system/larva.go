package system

import (
	"sort"
	"sync/atomic"

	"github.com/lixenwraith/ant-colony/behavior"
	"github.com/lixenwraith/ant-colony/component"
	"github.com/lixenwraith/ant-colony/core"
	"github.com/lixenwraith/ant-colony/engine"
	"github.com/lixenwraith/ant-colony/event"
	"github.com/lixenwraith/ant-colony/parameter"
	"github.com/lixenwraith/ant-colony/status"
)

// LarvaSystem keeps each colony's larva count at its nursemaid-derived target and grows
// larvae on colony food until they hatch
type LarvaSystem struct {
	engine.SystemBase

	byColony map[core.Entity][]core.Entity

	statLarva *atomic.Int64

	enabled bool
}

// NewLarvaSystem creates a new larva system
func NewLarvaSystem(world *engine.World) engine.System {
	s := &LarvaSystem{
		SystemBase: engine.NewSystemBase(world, "larva"),
		byColony:   make(map[core.Entity][]core.Entity),
	}
	s.statLarva = s.Resource.Status.Ints.Get(status.KeyLarvaCount)
	s.Init()
	return s
}

func (s *LarvaSystem) Init() {
	clear(s.byColony)
	s.statLarva.Store(0)
	s.enabled = true
}

func (s *LarvaSystem) Name() string {
	return "larva"
}

func (s *LarvaSystem) Priority() int {
	return parameter.PriorityLarva
}

func (s *LarvaSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventSystemToggle}
}

func (s *LarvaSystem) HandleEvent(ev event.GameEvent) {
	if enabled, ok := engine.ToggleFor(s.Name(), ev); ok {
		s.enabled = enabled
	}
}

func (s *LarvaSystem) Update() {
	if !s.enabled {
		return
	}
	cfg := s.Resource.Config.Larva

	for k, v := range s.byColony {
		s.byColony[k] = v[:0]
	}
	for _, le := range s.Component.Larva.All() {
		if l, ok := s.Component.Larva.Get(le); ok {
			s.byColony[l.Colony] = append(s.byColony[l.Colony], le)
		}
	}

	total := 0
	for _, ce := range s.Component.Colony.All() {
		colony, ok := s.Component.Colony.Get(ce)
		if !ok {
			continue
		}
		colony.LarvaTarget = 0
		if cfg.NursemaidsPerLarva > 0 {
			colony.LarvaTarget = colony.Labor[behavior.RoleNursemaid].Active / cfg.NursemaidsPerLarva
		}

		larvae := s.resize(ce, s.byColony[ce], colony.LarvaTarget)
		larvae = s.grow(ce, &colony, larvae)
		colony.LarvaCount = len(larvae)
		total += len(larvae)
		s.Component.Colony.Set(ce, colony)
	}
	s.statLarva.Store(int64(total))
}

// resize adds larvae up to target or removes the least grown beyond it
func (s *LarvaSystem) resize(ce core.Entity, larvae []core.Entity, target int) []core.Entity {
	cfg := s.Resource.Config.Larva
	for len(larvae) < target {
		e := s.World.CreateEntity()
		s.Component.Larva.Set(e, component.LarvaComponent{
			Colony:      ce,
			TicksToGrow: cfg.TicksToGrow,
			Growth:      component.NewRepeatingTimer(cfg.GrowthInterval.Duration),
		})
		larvae = append(larvae, e)
	}
	if len(larvae) <= target {
		return larvae
	}

	sort.SliceStable(larvae, func(i, j int) bool {
		a, _ := s.Component.Larva.Get(larvae[i])
		b, _ := s.Component.Larva.Get(larvae[j])
		return a.Progress() < b.Progress()
	})
	surplus := len(larvae) - target
	s.Component.Larva.RemoveBatch(larvae[:surplus])
	return larvae[surplus:]
}

// grow advances growth timers; each growth tick is paid from the colony store
func (s *LarvaSystem) grow(ce core.Entity, colony *component.ColonyComponent, larvae []core.Entity) []core.Entity {
	cfg := s.Resource.Config.Larva
	dt := s.Resource.Time.DeltaTime
	kept := larvae[:0]

	for _, le := range larvae {
		l, ok := s.Component.Larva.Get(le)
		if !ok {
			continue
		}
		for fired := l.Growth.Tick(dt); fired > 0; fired-- {
			if colony.Food <= cfg.FoodPerTick || colony.Population >= colony.AntCapacity {
				break
			}
			colony.Food -= cfg.FoodPerTick
			l.Ticks++
		}

		if l.Progress() >= 1 {
			s.Component.Larva.Remove(le)
			s.Resource.Event.Emit(event.EventSpawnAnt, &event.SpawnAntPayload{Colony: ce, Position: colony.Home})
			s.Log.Debug("larva hatched", "colony", ce)
			continue
		}
		s.Component.Larva.Set(le, l)
		kept = append(kept, le)
	}
	return kept
}
