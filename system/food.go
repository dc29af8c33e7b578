package system

import (
	"math"
	"sync/atomic"

	"github.com/lixenwraith/ant-colony/component"
	"github.com/lixenwraith/ant-colony/core"
	"github.com/lixenwraith/ant-colony/engine"
	"github.com/lixenwraith/ant-colony/event"
	"github.com/lixenwraith/ant-colony/parameter"
	"github.com/lixenwraith/ant-colony/status"
	"github.com/lixenwraith/ant-colony/vmath"
)

// FoodSystem owns food quantities: transfers between holders, emptied chunk removal and
// free chunk spawning
type FoodSystem struct {
	engine.SystemBase

	spawnTimer  component.SimTimer
	seededFirst bool

	statChunks    *atomic.Int64
	statGround    *atomic.Int64
	statDelivered *atomic.Int64

	enabled bool
}

// NewFoodSystem creates a new food system
func NewFoodSystem(world *engine.World) engine.System {
	s := &FoodSystem{
		SystemBase: engine.NewSystemBase(world, "food"),
	}
	s.statChunks = s.Resource.Status.Ints.Get(status.KeyFoodChunks)
	s.statGround = s.Resource.Status.Ints.Get(status.KeyFoodGround)
	s.statDelivered = s.Resource.Status.Ints.Get(status.KeyFoodDelivered)
	s.Init()
	return s
}

func (s *FoodSystem) Init() {
	s.spawnTimer = component.NewRepeatingTimer(s.Resource.Config.Food.SpawnInterval.Duration)
	s.seededFirst = false
	s.statChunks.Store(0)
	s.statGround.Store(0)
	s.statDelivered.Store(0)
	s.enabled = true
}

func (s *FoodSystem) Name() string {
	return "food"
}

func (s *FoodSystem) Priority() int {
	return parameter.PriorityFood
}

func (s *FoodSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventFoodTransfer,
		event.EventFoodEmpty,
		event.EventSystemToggle,
	}
}

func (s *FoodSystem) HandleEvent(ev event.GameEvent) {
	if enabled, ok := engine.ToggleFor(s.Name(), ev); ok {
		s.enabled = enabled
		return
	}

	switch ev.Type {
	case event.EventFoodTransfer:
		if p, ok := ev.Payload.(*event.FoodTransferPayload); ok {
			s.Transfer(p.From, p.To, p.Requested)
		}
	case event.EventFoodEmpty:
		if p, ok := ev.Payload.(*event.FoodEmptyPayload); ok {
			if food, ok := s.Component.Food.Get(p.Entity); ok && food.Quantity <= 0 {
				s.World.DestroyEntity(p.Entity)
				s.Resource.Event.Emit(event.EventSoundRequest, &event.SoundRequestPayload{Sound: core.SoundFoodEmpty})
				s.Log.Debug("food chunk exhausted", "entity", p.Entity)
			}
		}
	}
}

// Transfer moves min(requested, available, headroom) from one holder to another and returns it
// Holders are chunks, ants (bounded by carry capacity) or colonies
func (s *FoodSystem) Transfer(from, to core.Entity, requested int) int {
	if requested <= 0 || from == to {
		return 0
	}
	amount := min(requested, s.available(from), s.headroom(to))
	if amount <= 0 {
		return 0
	}

	s.take(from, amount)
	s.give(to, amount)
	if s.Component.Ant.Has(from) && s.Component.Colony.Has(to) {
		s.statDelivered.Add(int64(amount))
	}
	return amount
}

func (s *FoodSystem) available(e core.Entity) int {
	if f, ok := s.Component.Food.Get(e); ok {
		return f.Quantity
	}
	if a, ok := s.Component.Ant.Get(e); ok {
		return a.Carrying
	}
	if c, ok := s.Component.Colony.Get(e); ok {
		return c.Food
	}
	return 0
}

func (s *FoodSystem) headroom(e core.Entity) int {
	if a, ok := s.Component.Ant.Get(e); ok {
		return max(0, a.CarryCapacity-a.Carrying)
	}
	if s.Component.Colony.Has(e) || s.Component.Food.Has(e) {
		return math.MaxInt
	}
	return 0
}

func (s *FoodSystem) take(e core.Entity, amount int) {
	emptied := false
	if s.Component.Food.Update(e, func(f *component.FoodComponent) {
		component.TakeFood(&f.Quantity, amount)
		emptied = f.Quantity <= 0
	}) {
		if emptied {
			s.Resource.Event.Emit(event.EventFoodEmpty, &event.FoodEmptyPayload{Entity: e})
		}
		return
	}
	if s.Component.Ant.Update(e, func(a *component.AntComponent) {
		component.TakeFood(&a.Carrying, amount)
	}) {
		return
	}
	s.Component.Colony.Update(e, func(c *component.ColonyComponent) {
		component.TakeFood(&c.Food, amount)
	})
}

func (s *FoodSystem) give(e core.Entity, amount int) {
	if s.Component.Ant.Update(e, func(a *component.AntComponent) { a.Carrying += amount }) {
		return
	}
	if s.Component.Colony.Update(e, func(c *component.ColonyComponent) { c.Food += amount }) {
		return
	}
	s.Component.Food.Update(e, func(f *component.FoodComponent) { f.Quantity += amount })
}

func (s *FoodSystem) Update() {
	if !s.enabled {
		return
	}
	cfg := s.Resource.Config.Food

	if !s.seededFirst {
		s.seededFirst = true
		if cfg.FirstChunk > 0 {
			s.spawnChunk(vmath.V2Scale(s.Resource.Rand.Direction(), cfg.MinDist), cfg.FirstChunk)
		}
	}

	for fired := s.spawnTimer.Tick(s.Resource.Time.DeltaTime); fired > 0; fired-- {
		s.SpawnFree()
	}

	var ground int64
	for _, e := range s.Component.Food.All() {
		if f, ok := s.Component.Food.Get(e); ok {
			ground += int64(f.Quantity)
		}
	}
	s.statChunks.Store(int64(s.Component.Food.Count()))
	s.statGround.Store(ground)
}

// SpawnFree places one random chunk outside every exclusion zone, returning false when the
// cap is reached or no free spot was found
func (s *FoodSystem) SpawnFree() bool {
	cfg := s.Resource.Config.Food
	if s.Component.Food.Count() >= cfg.MaxChunks {
		return false
	}

	rng := s.Resource.Rand
	quantity := rng.IntRange(parameter.FoodSpawnAmountMin, parameter.FoodSpawnAmountMax) * parameter.FoodSpawnAmountStep
	exclusion := component.ExclusionFor(quantity)

	for attempt := 0; attempt < parameter.FoodSpawnAttempts; attempt++ {
		pos := vmath.V2Scale(rng.Direction(), rng.Range(cfg.MinDist, cfg.MaxDist))
		if s.isClear(pos, exclusion) {
			s.spawnChunk(pos, quantity)
			return true
		}
	}
	return false
}

func (s *FoodSystem) isClear(pos vmath.Vec2, exclusion float64) bool {
	for _, e := range s.Component.Food.All() {
		f, ok := s.Component.Food.Get(e)
		if !ok {
			continue
		}
		if vmath.V2Dist(pos, f.Position) < max(exclusion, f.ExclusionDistance()) {
			return false
		}
	}
	return true
}

func (s *FoodSystem) spawnChunk(pos vmath.Vec2, quantity int) core.Entity {
	e := s.World.CreateEntity()
	s.Component.Food.Set(e, component.FoodComponent{Position: pos, Quantity: quantity})
	s.Resource.Spatial.Food.Insert(e, pos)
	s.Resource.Event.Emit(event.EventSoundRequest, &event.SoundRequestPayload{Sound: core.SoundFoodSpawn})
	s.Log.Debug("food spawned", "entity", e, "quantity", quantity, "x", pos.X, "y", pos.Y)
	return e
}
