package system

import (
	"github.com/lixenwraith/ant-colony/core"
	"github.com/lixenwraith/ant-colony/engine"
	"github.com/lixenwraith/ant-colony/event"
	"github.com/lixenwraith/ant-colony/parameter"
	"github.com/lixenwraith/ant-colony/physics"
	"github.com/lixenwraith/ant-colony/spatial"
	"github.com/lixenwraith/ant-colony/vmath"
)

// DriftSystem accumulates separation from neighbors and applies the residual drift
// Neighbor positions come from the previous tick's ant grid, so agents never read each
// other's in-flight state
type DriftSystem struct {
	engine.SystemBase

	profile physics.DriftProfile

	enabled bool
}

// NewDriftSystem creates a new drift system
func NewDriftSystem(world *engine.World) engine.System {
	s := &DriftSystem{
		SystemBase: engine.NewSystemBase(world, "drift"),
	}
	s.Init()
	return s
}

func (s *DriftSystem) Init() {
	cfg := s.Resource.Config.Drift
	s.profile = physics.DriftProfile{
		Strength:     cfg.Strength,
		MaxMagnitude: cfg.MaxMagnitude,
		Radius:       cfg.NeighborRadius,
		Threshold:    cfg.ApplyThreshold,
		Cap:          cfg.ApplyCap,
		Overshoot:    cfg.Overshoot,
	}
	s.enabled = true
}

func (s *DriftSystem) Name() string {
	return "drift"
}

func (s *DriftSystem) Priority() int {
	return parameter.PriorityDrift
}

func (s *DriftSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventSystemToggle}
}

func (s *DriftSystem) HandleEvent(ev event.GameEvent) {
	if enabled, ok := engine.ToggleFor(s.Name(), ev); ok {
		s.enabled = enabled
	}
}

func (s *DriftSystem) Update() {
	if !s.enabled {
		return
	}
	dt := s.Resource.Time.Delta
	grid := s.Resource.Spatial.Ants

	forEachAgent(s.Component.Drift.All(), func(e core.Entity) {
		nav, ok := s.Component.Nav.Get(e)
		if !ok {
			return
		}
		drift, ok := s.Component.Drift.Get(e)
		if !ok {
			return
		}

		entries := grid.QueryRadius(nil, nav.Position, s.profile.Radius)
		physics.Accumulate(&drift.Drift, nav.Position, neighborPositions(entries, e), &s.profile, dt)
		drift.LastDisplacement = physics.ApplyDrift(&drift.Drift, &nav.Steering, &s.profile, dt)

		s.Component.Drift.Set(e, drift)
		if drift.LastDisplacement != (vmath.Vec2{}) {
			s.Component.Nav.Set(e, nav)
		}
	})
}

func neighborPositions(entries []spatial.Entry, self core.Entity) []vmath.Vec2 {
	out := make([]vmath.Vec2, 0, len(entries))
	for _, en := range entries {
		if en.Entity != self {
			out = append(out, en.Position)
		}
	}
	return out
}
