package system

import (
	"math"

	"github.com/lixenwraith/ant-colony/behavior"
	"github.com/lixenwraith/ant-colony/component"
	"github.com/lixenwraith/ant-colony/core"
	"github.com/lixenwraith/ant-colony/engine"
	"github.com/lixenwraith/ant-colony/event"
	"github.com/lixenwraith/ant-colony/parameter"
)

// laborView is the slice of ant state labor planning reads
type laborView struct {
	Entity core.Entity
	Colony core.Entity
	Role   behavior.Role
	State  behavior.ForagerState // Meaningful for foragers only
}

// planLabor computes role changes that move each colony toward its requested head counts
// Surplus foragers only release when not carrying or trailing food; surplus nursemaids go idle;
// idle ants fill nursemaid vacancies before forager vacancies
func planLabor(ants []laborView, labor map[core.Entity]*[behavior.RoleCount]component.LaborData) []event.RoleChangePayload {
	vacancy := make(map[core.Entity]*[behavior.RoleCount]int, len(labor))
	for c, l := range labor {
		v := &[behavior.RoleCount]int{}
		for r := range l {
			v[r] = l[r].Vacancy()
		}
		vacancy[c] = v
	}

	var changes []event.RoleChangePayload
	changed := make(map[core.Entity]bool)
	assign := func(a laborView, v *[behavior.RoleCount]int, to behavior.Role) {
		v[a.Role]++
		v[to]--
		changed[a.Entity] = true
		changes = append(changes, event.RoleChangePayload{Entity: a.Entity, Role: to})
	}

	for _, a := range ants {
		v, ok := vacancy[a.Colony]
		if !ok {
			continue
		}
		switch a.Role {
		case behavior.RoleForager:
			if v[behavior.RoleForager] >= 0 {
				continue
			}
			if a.State != behavior.Seeking && a.State != behavior.GoingHomeEmpty {
				continue
			}
			if v[behavior.RoleNursemaid] > 0 {
				assign(a, v, behavior.RoleNursemaid)
			} else {
				assign(a, v, behavior.RoleIdle)
			}
		case behavior.RoleNursemaid:
			if v[behavior.RoleNursemaid] < 0 {
				assign(a, v, behavior.RoleIdle)
			}
		}
	}

	for _, a := range ants {
		v, ok := vacancy[a.Colony]
		if !ok || a.Role != behavior.RoleIdle || changed[a.Entity] {
			continue
		}
		switch {
		case v[behavior.RoleNursemaid] > 0:
			assign(a, v, behavior.RoleNursemaid)
		case v[behavior.RoleForager] > 0:
			assign(a, v, behavior.RoleForager)
		}
	}
	return changes
}

// requestedLabor splits colony capacity by the configured shares, idle takes the remainder
func requestedLabor(capacity int, foragerShare, nursemaidShare float64) [behavior.RoleCount]int {
	var req [behavior.RoleCount]int
	req[behavior.RoleForager] = int(math.Round(float64(capacity) * foragerShare))
	req[behavior.RoleNursemaid] = int(math.Round(float64(capacity) * nursemaidShare))
	req[behavior.RoleIdle] = max(0, capacity-req[behavior.RoleForager]-req[behavior.RoleNursemaid])
	return req
}

// LaborSystem reads role counts, decides reassignments and applies them as RoleChange events
type LaborSystem struct {
	engine.SystemBase

	views []laborView

	enabled bool
}

// NewLaborSystem creates a new labor system
func NewLaborSystem(world *engine.World) engine.System {
	s := &LaborSystem{
		SystemBase: engine.NewSystemBase(world, "labor"),
	}
	s.Init()
	return s
}

func (s *LaborSystem) Init() {
	s.views = s.views[:0]
	s.enabled = true
}

func (s *LaborSystem) Name() string {
	return "labor"
}

func (s *LaborSystem) Priority() int {
	return parameter.PriorityLabor
}

func (s *LaborSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventRoleChange,
		event.EventSystemToggle,
	}
}

// HandleEvent applies role changes; external requests are honored even while planning is disabled
func (s *LaborSystem) HandleEvent(ev event.GameEvent) {
	if enabled, ok := engine.ToggleFor(s.Name(), ev); ok {
		s.enabled = enabled
		return
	}
	if ev.Type != event.EventRoleChange {
		return
	}
	if p, ok := ev.Payload.(*event.RoleChangePayload); ok {
		s.apply(p.Entity, p.Role)
	}
}

func (s *LaborSystem) apply(e core.Entity, role behavior.Role) {
	if role >= behavior.RoleCount {
		return
	}
	var prev behavior.Role
	if !s.Component.Ant.Update(e, func(a *component.AntComponent) {
		prev = a.Role
		a.Role = role
	}) || prev == role {
		return
	}

	if role == behavior.RoleForager {
		s.Component.Forager.Set(e, component.ForagerComponent{
			State:     behavior.Seeking,
			SeekTimer: component.NewOnceTimer(s.Resource.Config.Forager.SeekTimeout.Duration),
		})
	} else {
		s.Component.Forager.Remove(e)
	}

	// New role decides from scratch
	s.Component.Nav.Update(e, func(n *component.NavigationComponent) {
		n.ClearTarget()
	})
	s.Log.Debug("role changed", "entity", e, "from", prev, "to", role)
}

func (s *LaborSystem) Update() {
	if !s.enabled {
		return
	}
	cfg := s.Resource.Config.Colony

	// Read
	labor := make(map[core.Entity]*[behavior.RoleCount]component.LaborData)
	for _, ce := range s.Component.Colony.All() {
		colony, _ := s.Component.Colony.Get(ce)
		req := requestedLabor(colony.AntCapacity, cfg.ForagerShare, cfg.NursemaidShare)
		l := &[behavior.RoleCount]component.LaborData{}
		for r := range l {
			l[r].Requested = req[r]
		}
		labor[ce] = l
	}

	s.views = s.views[:0]
	for _, e := range s.Component.Ant.All() {
		ant, ok := s.Component.Ant.Get(e)
		if !ok {
			continue
		}
		v := laborView{Entity: e, Colony: ant.Colony, Role: ant.Role}
		if f, ok := s.Component.Forager.Get(e); ok {
			v.State = f.State
		}
		if l, ok := labor[ant.Colony]; ok && ant.Role < behavior.RoleCount {
			l[ant.Role].Active++
		}
		s.views = append(s.views, v)
	}

	for ce, l := range labor {
		s.Component.Colony.Update(ce, func(c *component.ColonyComponent) {
			c.Labor = *l
		})
	}

	// Decide, then apply through the queue
	for _, ch := range planLabor(s.views, labor) {
		s.Resource.Event.Emit(event.EventRoleChange, &event.RoleChangePayload{Entity: ch.Entity, Role: ch.Role})
	}
}
