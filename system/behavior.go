package system

import (
	"github.com/lixenwraith/ant-colony/behavior"
	"github.com/lixenwraith/ant-colony/component"
	"github.com/lixenwraith/ant-colony/core"
	"github.com/lixenwraith/ant-colony/engine"
	"github.com/lixenwraith/ant-colony/event"
	"github.com/lixenwraith/ant-colony/parameter"
	"github.com/lixenwraith/ant-colony/spatial"
)

// BehaviorSystem runs role decisions for ants without a navigation target
// Decisions only set targets and forager state; food moves through FoodTransfer events
type BehaviorSystem struct {
	engine.SystemBase

	params behavior.Params

	// Scratch, reused across ants
	entries   []spatial.Entry
	sightings []behavior.FoodSighting
	sighted   []core.Entity

	enabled bool
}

// NewBehaviorSystem creates a new behavior system
func NewBehaviorSystem(world *engine.World) engine.System {
	s := &BehaviorSystem{
		SystemBase: engine.NewSystemBase(world, "behavior"),
	}
	s.Init()
	return s
}

func (s *BehaviorSystem) Init() {
	cfg := s.Resource.Config
	s.params = behavior.DefaultParams()
	s.params.SmellRadius = cfg.Scent.SmellRadius
	s.params.SightRadius = cfg.Forager.SightRadius
	s.params.HomeSightRadius = cfg.Forager.HomeRadius
	s.params.DropOffRadius = cfg.Forager.DropOff
	s.params.CarryCapacity = cfg.Ant.CarryCapacity
	s.enabled = true
}

func (s *BehaviorSystem) Name() string {
	return "behavior"
}

func (s *BehaviorSystem) Priority() int {
	return parameter.PriorityBehavior
}

func (s *BehaviorSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventSystemToggle}
}

func (s *BehaviorSystem) HandleEvent(ev event.GameEvent) {
	if enabled, ok := engine.ToggleFor(s.Name(), ev); ok {
		s.enabled = enabled
	}
}

func (s *BehaviorSystem) Update() {
	if !s.enabled {
		return
	}

	s.tickSeekTimers()

	for _, e := range s.Component.Ant.All() {
		nav, ok := s.Component.Nav.Get(e)
		if !ok || nav.HasTarget {
			continue
		}
		ant, ok := s.Component.Ant.Get(e)
		if !ok {
			continue
		}

		agent := behavior.Agent{
			Position: nav.Position,
			Facing:   nav.Facing(),
			Home:     ant.Home,
		}

		var d behavior.Decision
		if ant.Role == behavior.RoleForager {
			d = s.decideForager(e, ant, agent)
		} else {
			d = behavior.Decide(ant.Role, agent, s.Resource.Scent, &s.params, s.Resource.Rand)
		}

		if d.HasTarget {
			nav.SetTarget(d.Target)
			s.Component.Nav.Set(e, nav)
		}
	}
}

// tickSeekTimers advances the seek timer of Seeking foragers and rewinds every other forager's
func (s *BehaviorSystem) tickSeekTimers() {
	dt := s.Resource.Time.DeltaTime
	for _, e := range s.Component.Forager.All() {
		s.Component.Forager.Update(e, func(f *component.ForagerComponent) {
			if f.State == behavior.Seeking {
				f.SeekTimer.Tick(dt)
			} else {
				f.SeekTimer.Reset()
			}
		})
	}
}

func (s *BehaviorSystem) decideForager(e core.Entity, ant component.AntComponent, agent behavior.Agent) behavior.Decision {
	forager, ok := s.Component.Forager.Get(e)
	if !ok {
		forager = component.ForagerComponent{
			State:     behavior.Seeking,
			SeekTimer: component.NewOnceTimer(s.Resource.Config.Forager.SeekTimeout.Duration),
		}
	}

	s.collectSightings(agent)
	d := behavior.DecideForager(agent, behavior.ForagerInput{
		State:       forager.State,
		SeekExpired: forager.SeekTimer.Finished(),
		Carrying:    ant.Carrying,
		Food:        s.sightings,
	}, s.Resource.Scent, &s.params, s.Resource.Rand)

	if d.State != forager.State {
		s.Log.Debug("forager state", "entity", e, "from", forager.State, "to", d.State)
	}
	forager.State = d.State
	if d.State != behavior.Seeking {
		forager.SeekTimer.Reset()
	}
	s.Component.Forager.Set(e, forager)

	switch d.Intent.Kind {
	case behavior.IntentPickup:
		if d.Intent.Food >= 0 && d.Intent.Food < len(s.sighted) {
			s.Resource.Event.Emit(event.EventFoodTransfer, &event.FoodTransferPayload{
				From:      s.sighted[d.Intent.Food],
				To:        e,
				Requested: d.Intent.Amount,
			})
		}
	case behavior.IntentDropOff:
		s.Resource.Event.Emit(event.EventFoodTransfer, &event.FoodTransferPayload{
			From:      e,
			To:        ant.Colony,
			Requested: d.Intent.Amount,
		})
	}
	return d
}

// collectSightings fills the scratch sightings with live chunks within sight
func (s *BehaviorSystem) collectSightings(agent behavior.Agent) {
	s.entries = s.Resource.Spatial.Food.QueryRadius(s.entries[:0], agent.Position, s.params.SightRadius)
	s.sightings = s.sightings[:0]
	s.sighted = s.sighted[:0]
	for _, en := range s.entries {
		food, ok := s.Component.Food.Get(en.Entity)
		if !ok || food.Quantity <= 0 {
			continue
		}
		s.sightings = append(s.sightings, behavior.FoodSighting{
			Position:    food.Position,
			Interaction: food.InteractionDistance(),
		})
		s.sighted = append(s.sighted, en.Entity)
	}
}
