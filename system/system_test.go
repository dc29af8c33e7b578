package system_test

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/ant-colony/behavior"
	"github.com/lixenwraith/ant-colony/component"
	"github.com/lixenwraith/ant-colony/config"
	"github.com/lixenwraith/ant-colony/core"
	"github.com/lixenwraith/ant-colony/engine"
	"github.com/lixenwraith/ant-colony/event"
	"github.com/lixenwraith/ant-colony/physics"
	"github.com/lixenwraith/ant-colony/scent"
	"github.com/lixenwraith/ant-colony/sim"
	"github.com/lixenwraith/ant-colony/system"
	"github.com/lixenwraith/ant-colony/vmath"
)

// quietSim is a single empty colony at the origin: no starting ants, no food
func quietSim(t *testing.T) (*sim.Sim, core.Entity) {
	t.Helper()
	cfg := config.Default()
	cfg.Colony.StartingAnts = 0
	cfg.Food.FirstChunk = 0
	s, err := sim.New(cfg, sim.Options{})
	require.NoError(t, err)
	colonies := s.World.Components.Colony.All()
	require.Len(t, colonies, 1)
	return s, colonies[0]
}

// bareWorld is a world running only the given systems
func bareWorld(t *testing.T, build ...func(*engine.World) engine.System) (*engine.World, *engine.Scheduler) {
	t.Helper()
	w := engine.NewWorld(engine.NewResource(config.Default(), nil))
	for _, b := range build {
		w.AddSystem(b(w))
	}
	return w, engine.NewScheduler(w, engine.NewMockClock(time.Unix(0, 0)), time.Millisecond)
}

func addAnt(w *engine.World, colony core.Entity, role behavior.Role, pos vmath.Vec2, heading float64) core.Entity {
	e := w.CreateEntity()
	w.Components.Ant.Set(e, component.AntComponent{Colony: colony, Role: role, CarryCapacity: 5})
	w.Components.Nav.Set(e, component.NavigationComponent{Steering: physics.Steering{
		Position:    pos,
		Heading:     heading,
		MaxSpeed:    5,
		MaxTurnRate: 2 * math.Pi / 5,
	}})
	w.Components.Drift.Set(e, component.DriftComponent{})
	w.Components.Debug.Set(e, component.VisualDebugComponent{})
	if role == behavior.RoleForager {
		w.Components.Forager.Set(e, component.ForagerComponent{
			State:     behavior.Seeking,
			SeekTimer: component.NewOnceTimer(time.Minute),
		})
	}
	return e
}

func addFood(w *engine.World, pos vmath.Vec2, quantity int) core.Entity {
	e := w.CreateEntity()
	w.Components.Food.Set(e, component.FoodComponent{Position: pos, Quantity: quantity})
	w.Resources.Spatial.Food.Insert(e, pos)
	return e
}

func TestForagerRoundTrip(t *testing.T) {
	s, colony := quietSim(t)
	w := s.World
	ant := addAnt(w, colony, behavior.RoleForager, vmath.V2(20, 0), math.Pi)
	chunk := addFood(w, vmath.V2(21, 0), 100)

	s.StepN(2)
	a, _ := w.Components.Ant.Get(ant)
	assert.Equal(t, 5, a.Carrying)
	f, _ := w.Components.Food.Get(chunk)
	assert.Equal(t, 95, f.Quantity)
	fc, _ := w.Components.Forager.Get(ant)
	assert.Equal(t, behavior.BringingHomeFood, fc.State)

	// 20 units at 5/s, plus the decision and transfer ticks
	s.StepN(400)
	c, _ := w.Components.Colony.Get(colony)
	assert.GreaterOrEqual(t, c.Food, 5)
}

func TestFoodTransferClampsToHeadroom(t *testing.T) {
	w, _ := bareWorld(t)
	food := system.NewFoodSystem(w).(*system.FoodSystem)

	colony := w.CreateEntity()
	w.Components.Colony.Set(colony, component.ColonyComponent{})
	ant := addAnt(w, colony, behavior.RoleForager, vmath.Vec2{}, 0)
	w.Components.Ant.Update(ant, func(a *component.AntComponent) { a.Carrying = 3 })
	chunk := addFood(w, vmath.V2(1, 1), 10)

	assert.Equal(t, 2, food.Transfer(chunk, ant, 10))
	assert.Equal(t, 0, food.Transfer(chunk, ant, 10))
	assert.Equal(t, 5, food.Transfer(ant, colony, 99))
	assert.Equal(t, 8, food.Transfer(chunk, colony, 99))
	assert.Equal(t, 0, food.Transfer(chunk, colony, 1))
	assert.Equal(t, 0, food.Transfer(colony, colony, 1))

	c, _ := w.Components.Colony.Get(colony)
	assert.Equal(t, 13, c.Food)

	// The emptied chunk is culled on dispatch
	w.AddSystem(food)
	w.DispatchEvents()
	assert.False(t, w.Components.Food.Has(chunk))
}

func TestFoodSpawnRespectsExclusion(t *testing.T) {
	w, sched := bareWorld(t, system.NewFoodSystem)
	sched.Step(time.Millisecond)
	require.Equal(t, 1, w.Components.Food.Count())

	food := w.Systems()[0].(*system.FoodSystem)
	for i := 0; i < 50; i++ {
		food.SpawnFree()
	}

	var chunks []component.FoodComponent
	for _, e := range w.Components.Food.All() {
		f, _ := w.Components.Food.Get(e)
		chunks = append(chunks, f)
		d := vmath.V2Mag(f.Position)
		assert.GreaterOrEqual(t, d, 80.0-1e-9)
		assert.LessOrEqual(t, d, 600.0)
	}
	for i := range chunks {
		for j := i + 1; j < len(chunks); j++ {
			minDist := math.Max(chunks[i].ExclusionDistance(), chunks[j].ExclusionDistance())
			assert.GreaterOrEqual(t, vmath.V2Dist(chunks[i].Position, chunks[j].Position), minDist)
		}
	}
}

func TestLarvaGrowsAndHatches(t *testing.T) {
	w, sched := bareWorld(t, system.NewLarvaSystem)
	cfg := w.Resources.Config
	cfg.Larva.TicksToGrow = 2
	cfg.Larva.GrowthInterval = config.Duration{Duration: time.Second}

	colony := w.CreateEntity()
	var labor [behavior.RoleCount]component.LaborData
	labor[behavior.RoleNursemaid].Active = 5
	w.Components.Colony.Set(colony, component.ColonyComponent{Food: 10, AntCapacity: 20, Labor: labor})

	sched.Step(time.Second)
	c, _ := w.Components.Colony.Get(colony)
	assert.Equal(t, 1, c.LarvaTarget)
	assert.Equal(t, 1, c.LarvaCount)
	assert.Equal(t, 9, c.Food)

	sched.Step(time.Second)
	c, _ = w.Components.Colony.Get(colony)
	assert.Equal(t, 8, c.Food)

	var spawned int
	for _, ev := range w.Resources.Event.Consume() {
		if ev.Type == event.EventSpawnAnt {
			spawned++
		}
	}
	assert.Equal(t, 1, spawned)
}

func TestLarvaStarvesWithoutFood(t *testing.T) {
	w, sched := bareWorld(t, system.NewLarvaSystem)
	w.Resources.Config.Larva.GrowthInterval = config.Duration{Duration: time.Second}

	colony := w.CreateEntity()
	var labor [behavior.RoleCount]component.LaborData
	labor[behavior.RoleNursemaid].Active = 10
	w.Components.Colony.Set(colony, component.ColonyComponent{Food: 1, AntCapacity: 20, Labor: labor})

	for i := 0; i < 5; i++ {
		sched.Step(time.Second)
	}
	for _, e := range w.Components.Larva.All() {
		l, _ := w.Components.Larva.Get(e)
		assert.Zero(t, l.Ticks)
	}
	assert.Equal(t, 2, w.Components.Larva.Count())
}

func TestSpawnRespectsCapacity(t *testing.T) {
	s, colony := quietSim(t)
	s.World.Components.Colony.Update(colony, func(c *component.ColonyComponent) { c.AntCapacity = 2 })

	for i := 0; i < 4; i++ {
		s.Emit(event.EventSpawnAnt, &event.SpawnAntPayload{Colony: colony})
	}
	s.StepN(1)

	assert.Equal(t, 2, s.World.Components.Ant.Count())
	c, _ := s.World.Components.Colony.Get(colony)
	assert.Equal(t, 2, c.Population)
}

func TestLifespanRemovesOldAnts(t *testing.T) {
	s, colony := quietSim(t)
	w := s.World
	old := addAnt(w, colony, behavior.RoleIdle, vmath.Vec2{}, 0)
	young := addAnt(w, colony, behavior.RoleIdle, vmath.V2(1, 0), 0)
	w.Components.Ant.Update(old, func(a *component.AntComponent) { a.Age = s.Settings.Ant.Lifespan })
	w.Components.Colony.Update(colony, func(c *component.ColonyComponent) { c.Population = 2 })

	s.StepN(1)
	assert.False(t, w.Components.Ant.Has(old))
	assert.False(t, w.Components.Nav.Has(old))
	assert.True(t, w.Components.Ant.Has(young))
	c, _ := w.Components.Colony.Get(colony)
	assert.Equal(t, 1, c.Population)
}

func TestScentEmission(t *testing.T) {
	w, sched := bareWorld(t, system.NewScentEmitSystem)
	colony := w.CreateEntity()
	carrier := addAnt(w, colony, behavior.RoleForager, vmath.V2(5.5, 5.5), 0)
	w.Components.Forager.Update(carrier, func(f *component.ForagerComponent) { f.State = behavior.BringingHomeFood })
	addAnt(w, colony, behavior.RoleIdle, vmath.V2(-3.2, 8.9), 0)

	sched.Step(100 * time.Millisecond)
	assert.Zero(t, w.Resources.Scent.Len(scent.AntSmell))

	sched.Step(200 * time.Millisecond)
	field := w.Resources.Scent
	v, ok := field.Value(scent.AntSmell, vmath.Cell{X: 5, Y: 5})
	require.True(t, ok)
	assert.Equal(t, 50.0, v)
	_, ok = field.Value(scent.AntSmell, vmath.Cell{X: -3, Y: 8})
	assert.True(t, ok)

	assert.Equal(t, 1, field.Len(scent.FoundFoodSmell))
}

func TestScentMaintainDecays(t *testing.T) {
	w, sched := bareWorld(t, system.NewScentMaintainSystem)
	field := w.Resources.Scent
	field.Deposit(scent.AntSmell, vmath.V2(1, 1), 2, 150)
	field.Deposit(scent.AntSmell, vmath.V2(9, 1), 100, 150)

	sched.Step(500 * time.Millisecond)
	assert.Equal(t, 1, field.Len(scent.AntSmell))
	assert.Equal(t, 1, field.IndexedLen(scent.AntSmell))
	v, _ := field.Value(scent.AntSmell, vmath.Cell{X: 9, Y: 1})
	assert.Equal(t, 97.5, v)
}

func TestNavigationParallelMovesEveryAgent(t *testing.T) {
	w, sched := bareWorld(t, system.NewNavigationSystem)
	var ants []core.Entity
	for i := 0; i < 600; i++ {
		e := addAnt(w, 0, behavior.RoleIdle, vmath.V2(float64(i), 0), math.Pi/2)
		w.Components.Nav.Update(e, func(n *component.NavigationComponent) {
			n.SetTarget(vmath.V2(float64(i), 100))
		})
		ants = append(ants, e)
	}

	sched.Step(100 * time.Millisecond)
	for i, e := range ants {
		n, _ := w.Components.Nav.Get(e)
		require.InDelta(t, float64(i), n.Position.X, 1e-9)
		require.InDelta(t, 0.5, n.Position.Y, 1e-9)
		require.Equal(t, physics.SteerMoving, n.LastResult)
	}
}

func TestDriftSeparatesCrowdedAnts(t *testing.T) {
	w, sched := bareWorld(t, system.NewDriftSystem, system.NewSpatialSystem)
	a := addAnt(w, 0, behavior.RoleIdle, vmath.V2(0, 0), 0)
	b := addAnt(w, 0, behavior.RoleIdle, vmath.V2(1, 0), 0)

	// First tick builds the grid, second applies repulsion
	sched.Step(10 * time.Millisecond)
	sched.Step(10 * time.Millisecond)

	na, _ := w.Components.Nav.Get(a)
	nb, _ := w.Components.Nav.Get(b)
	assert.Less(t, na.Position.X, 0.0)
	assert.Greater(t, nb.Position.X, 1.0)
	assert.Greater(t, vmath.V2Dist(na.Position, nb.Position), 1.0)
}

func TestVagrantRehomes(t *testing.T) {
	s, colony := quietSim(t)
	w := s.World
	other := s.AddColony(vmath.V2(200, 0))
	s.StepN(1)

	stray := addAnt(w, colony, behavior.RoleIdle, vmath.V2(190, 0), 0)
	w.Components.Colony.Update(colony, func(c *component.ColonyComponent) { c.Population = 1 })

	s.StepN(20)
	a, _ := w.Components.Ant.Get(stray)
	assert.Equal(t, other, a.Colony)
	assert.Equal(t, vmath.V2(200, 0), a.Home)
	c, _ := w.Components.Colony.Get(colony)
	assert.Equal(t, 0, c.Population)
}

func TestDebugDrawToggle(t *testing.T) {
	s, colony := quietSim(t)
	e := addAnt(s.World, colony, behavior.RoleForager, vmath.V2(3, 3), 0)

	s.StepN(1)
	d, _ := s.World.Components.Debug.Get(e)
	assert.Empty(t, d.Ops)

	s.Emit(event.EventSystemToggle, &event.SystemTogglePayload{SystemName: "debug", Enabled: true})
	s.StepN(1)
	d, _ = s.World.Components.Debug.Get(e)
	assert.NotEmpty(t, d.Ops)
	assert.Equal(t, component.DrawCircle, d.Ops[0].Kind)
}

type countingPlayer struct {
	played map[core.SoundType]int
}

func (p *countingPlayer) Play(st core.SoundType) {
	p.played[st]++
}

func TestAudioSystemPlaysRequests(t *testing.T) {
	p := &countingPlayer{played: make(map[core.SoundType]int)}
	w, _ := bareWorld(t, func(w *engine.World) engine.System { return system.NewAudioSystem(w, p) })

	w.Resources.Event.Emit(event.EventSoundRequest, &event.SoundRequestPayload{Sound: core.SoundAntBorn})
	w.Resources.Event.Emit(event.EventSystemToggle, &event.SystemTogglePayload{SystemName: "audio", Enabled: false})
	w.Resources.Event.Emit(event.EventSoundRequest, &event.SoundRequestPayload{Sound: core.SoundAntBorn})
	w.DispatchEvents()

	assert.Equal(t, 1, p.played[core.SoundAntBorn])
}
