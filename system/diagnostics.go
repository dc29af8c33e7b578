package system

import (
	"sync/atomic"
	"time"

	"github.com/lixenwraith/ant-colony/behavior"
	"github.com/lixenwraith/ant-colony/engine"
	"github.com/lixenwraith/ant-colony/event"
	"github.com/lixenwraith/ant-colony/parameter"
	"github.com/lixenwraith/ant-colony/status"
)

const diagnosticsLogInterval = 10 * time.Second

// DiagnosticsSystem publishes population and food metrics and logs a periodic summary
type DiagnosticsSystem struct {
	engine.SystemBase

	lastLog time.Duration

	statTotal  *atomic.Int64
	statRole   [behavior.RoleCount]*atomic.Int64
	statColony *atomic.Int64
	statDied   *atomic.Int64
	statChunks *atomic.Int64
	statScentA *atomic.Int64
	statLarvae *atomic.Int64

	enabled bool
}

// NewDiagnosticsSystem creates a new diagnostics system
func NewDiagnosticsSystem(world *engine.World) engine.System {
	s := &DiagnosticsSystem{
		SystemBase: engine.NewSystemBase(world, "diagnostics"),
	}
	ints := s.Resource.Status.Ints
	s.statTotal = ints.Get(status.KeyAntsTotal)
	s.statRole[behavior.RoleIdle] = ints.Get(status.KeyAntsIdle)
	s.statRole[behavior.RoleForager] = ints.Get(status.KeyAntsForager)
	s.statRole[behavior.RoleNursemaid] = ints.Get(status.KeyAntsNurse)
	s.statColony = ints.Get(status.KeyFoodColony)
	s.statDied = ints.Get(status.KeyAntsDied)
	s.statChunks = ints.Get(status.KeyFoodChunks)
	s.statScentA = ints.Get(status.KeyScentAnt)
	s.statLarvae = ints.Get(status.KeyLarvaCount)
	s.Init()
	return s
}

func (s *DiagnosticsSystem) Init() {
	s.lastLog = 0
	s.enabled = true
}

func (s *DiagnosticsSystem) Name() string {
	return "diagnostics"
}

func (s *DiagnosticsSystem) Priority() int {
	return parameter.PriorityDiagnostics
}

func (s *DiagnosticsSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventAntDied,
		event.EventSystemToggle,
	}
}

func (s *DiagnosticsSystem) HandleEvent(ev event.GameEvent) {
	if enabled, ok := engine.ToggleFor(s.Name(), ev); ok {
		s.enabled = enabled
		return
	}
	if p, ok := ev.Payload.(*event.AntDiedPayload); ok && s.enabled {
		s.Log.Debug("ant died", "entity", p.Entity, "colony", p.Colony)
	}
}

func (s *DiagnosticsSystem) Update() {
	if !s.enabled {
		return
	}

	var roles [behavior.RoleCount]int64
	ants := s.Component.Ant.All()
	for _, e := range ants {
		if a, ok := s.Component.Ant.Get(e); ok && a.Role < behavior.RoleCount {
			roles[a.Role]++
		}
	}
	s.statTotal.Store(int64(len(ants)))
	for r := range roles {
		s.statRole[r].Store(roles[r])
	}

	var food int64
	for _, ce := range s.Component.Colony.All() {
		if c, ok := s.Component.Colony.Get(ce); ok {
			food += int64(c.Food)
		}
	}
	s.statColony.Store(food)

	now := s.Resource.Time.SimTime
	if now-s.lastLog < diagnosticsLogInterval {
		return
	}
	s.lastLog = now
	s.Log.Info("colony status",
		"t", now.Truncate(time.Second),
		"ants", len(ants),
		"foragers", roles[behavior.RoleForager],
		"nursemaids", roles[behavior.RoleNursemaid],
		"idle", roles[behavior.RoleIdle],
		"food", food,
		"chunks", s.statChunks.Load(),
		"larvae", s.statLarvae.Load(),
		"ant_scent", s.statScentA.Load(),
		"died", s.statDied.Load(),
	)
}
