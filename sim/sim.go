// Package sim assembles the world, resources and systems of one colony simulation
package sim

import (
	"context"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/charmbracelet/log"

	"github.com/lixenwraith/ant-colony/component"
	"github.com/lixenwraith/ant-colony/config"
	"github.com/lixenwraith/ant-colony/core"
	"github.com/lixenwraith/ant-colony/engine"
	"github.com/lixenwraith/ant-colony/event"
	"github.com/lixenwraith/ant-colony/system"
	"github.com/lixenwraith/ant-colony/vmath"
)

// ColonySpacing is the ring radius extra colonies are placed on around the origin
const ColonySpacing = 300.0

// Sim is one simulation instance; everything it owns hangs off World.Resources
type Sim struct {
	World     *engine.World
	Scheduler *engine.Scheduler
	Settings  *config.Settings

	log *log.Logger
}

// Options are the optional collaborators of a simulation
type Options struct {
	Logger *log.Logger
	Player system.SoundPlayer // nil plays nothing
	Clock  engine.Clock       // nil uses the system clock
}

// New validates settings and builds a seeded, ready-to-step simulation
func New(settings *config.Settings, opts Options) (*Sim, error) {
	if settings == nil {
		settings = config.Default()
	}
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("sim settings: %w", err)
	}
	rate, err := engine.ParseTickRate(settings.Sim.Speed)
	if err != nil {
		return nil, fmt.Errorf("sim settings: %w", err)
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	res := engine.NewResource(settings, logger)
	world := engine.NewWorld(res)

	s := &Sim{
		World:    world,
		Settings: settings,
		log:      logger,
	}

	for _, sys := range []engine.System{
		system.NewLifespanSystem(world),
		system.NewLaborSystem(world),
		system.NewVagrancySystem(world),
		system.NewBehaviorSystem(world),
		system.NewLarvaSystem(world),
		system.NewSpawnSystem(world),
		system.NewFoodSystem(world),
		system.NewDriftSystem(world),
		system.NewNavigationSystem(world),
		system.NewScentEmitSystem(world),
		system.NewScentMaintainSystem(world),
		system.NewSpatialSystem(world),
		system.NewDebugSystem(world),
		system.NewAudioSystem(world, opts.Player),
		system.NewDiagnosticsSystem(world),
	} {
		world.AddSystem(sys)
	}
	world.AddHandler(s)

	s.Scheduler = engine.NewScheduler(world, opts.Clock, settings.Sim.TickInterval.Duration)
	s.Scheduler.SetRate(rate)

	s.seed()
	logger.Info("simulation ready",
		"seed", settings.Sim.Seed,
		"colonies", settings.Sim.Colonies,
		"speed", rate,
		"systems", len(world.Systems()),
	)
	return s, nil
}

// seed creates colonies and their spawners; ants and food follow on the first tick
func (s *Sim) seed() {
	n := s.Settings.Sim.Colonies
	for i := 0; i < n; i++ {
		home := vmath.Vec2{}
		if i > 0 {
			home = vmath.V2Scale(vmath.V2FromAngle(vmath.Tau*float64(i-1)/float64(max(1, n-1))), ColonySpacing)
		}
		s.AddColony(home)
	}
}

// AddColony creates a colony with a spawner at home and returns the colony entity
func (s *Sim) AddColony(home vmath.Vec2) core.Entity {
	cfg := s.Settings.Colony
	w := s.World

	ce := w.CreateEntity()
	w.Components.Colony.Set(ce, component.ColonyComponent{
		Home:        home,
		Food:        cfg.StartingFood,
		AntCapacity: cfg.AntCapacity,
	})

	se := w.CreateEntity()
	w.Components.Spawner.Set(se, component.SpawnerComponent{
		Colony:       ce,
		Position:     home,
		StartingAnts: cfg.StartingAnts,
	})
	w.Resources.Spatial.Spawners.Insert(se, home)
	return ce
}

// EventTypes implements engine.EventHandler
func (s *Sim) EventTypes() []event.EventType {
	return []event.EventType{event.EventWorldClear}
}

// HandleEvent resets the world and reseeds colonies
func (s *Sim) HandleEvent(ev event.GameEvent) {
	if ev.Type != event.EventWorldClear {
		return
	}
	s.World.Reset()
	s.seed()
	s.log.Info("world reset")
}

// Emit queues an event for the next tick
func (s *Sim) Emit(t event.EventType, payload any) {
	s.World.Resources.Event.Emit(t, payload)
}

// Step advances by real elapsed time, scaled by the current rate
func (s *Sim) Step(elapsed time.Duration) bool {
	return s.Scheduler.Step(elapsed)
}

// StepN runs n ticks of the configured interval, returning simulated time
func (s *Sim) StepN(n int) time.Duration {
	start := s.World.Resources.Time.SimTime
	for i := 0; i < n; i++ {
		s.Step(s.Settings.Sim.TickInterval.Duration)
	}
	return s.World.Resources.Time.SimTime - start
}

// Run ticks on the wall clock until ctx is done
func (s *Sim) Run(ctx context.Context) error {
	return s.Scheduler.Run(ctx)
}

// Bounds returns the axis-aligned box around every ant and food chunk, for viewer framing
func (s *Sim) Bounds() (lo, hi vmath.Vec2) {
	lo = vmath.V2(math.Inf(1), math.Inf(1))
	hi = vmath.V2(math.Inf(-1), math.Inf(-1))
	grow := func(p vmath.Vec2) {
		lo = vmath.V2(math.Min(lo.X, p.X), math.Min(lo.Y, p.Y))
		hi = vmath.V2(math.Max(hi.X, p.X), math.Max(hi.Y, p.Y))
	}
	c := &s.World.Components
	for _, e := range c.Nav.All() {
		if n, ok := c.Nav.Get(e); ok {
			grow(n.Position)
		}
	}
	for _, e := range c.Food.All() {
		if f, ok := c.Food.Get(e); ok {
			grow(f.Position)
		}
	}
	if lo.X > hi.X {
		return vmath.Vec2{}, vmath.Vec2{}
	}
	return lo, hi
}
