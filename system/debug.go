package system

import (
	"github.com/lixenwraith/ant-colony/behavior"
	"github.com/lixenwraith/ant-colony/component"
	"github.com/lixenwraith/ant-colony/engine"
	"github.com/lixenwraith/ant-colony/event"
	"github.com/lixenwraith/ant-colony/parameter"
	"github.com/lixenwraith/ant-colony/vmath"
)

// DebugSystemName is the toggle name of the debug draw system
const DebugSystemName = "debug"

// DebugSystem records per-ant draw ops: role, forager state, seek progress, navigation
// target line and drift vector
// Disabled by default; the viewer toggles it. Nothing in the simulation reads the ops
type DebugSystem struct {
	engine.SystemBase

	enabled bool
}

// NewDebugSystem creates a new debug draw system
func NewDebugSystem(world *engine.World) engine.System {
	s := &DebugSystem{
		SystemBase: engine.NewSystemBase(world, DebugSystemName),
	}
	s.Init()
	return s
}

func (s *DebugSystem) Init() {
	s.enabled = false
}

func (s *DebugSystem) Name() string {
	return DebugSystemName
}

func (s *DebugSystem) Priority() int {
	return parameter.PriorityDebug
}

func (s *DebugSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventSystemToggle}
}

func (s *DebugSystem) HandleEvent(ev event.GameEvent) {
	if enabled, ok := engine.ToggleFor(s.Name(), ev); ok {
		s.enabled = enabled
		if !enabled {
			s.clearAll()
		}
	}
}

// Enabled reports whether draw ops are being recorded
func (s *DebugSystem) Enabled() bool {
	return s.enabled
}

func (s *DebugSystem) clearAll() {
	for _, e := range s.Component.Debug.All() {
		s.Component.Debug.Update(e, func(v *component.VisualDebugComponent) { v.Clear() })
	}
}

func roleColor(r behavior.Role) component.DebugColor {
	switch r {
	case behavior.RoleForager:
		return component.ColorOrange
	case behavior.RoleNursemaid:
		return component.ColorPink
	default:
		return component.ColorGray
	}
}

func stateColor(st behavior.ForagerState) component.DebugColor {
	switch st {
	case behavior.FollowingTrail:
		return component.ColorYellow
	case behavior.BringingHomeFood:
		return component.ColorGreen
	case behavior.GoingHomeEmpty:
		return component.ColorRed
	default:
		return component.ColorBlue
	}
}

func (s *DebugSystem) Update() {
	if !s.enabled {
		return
	}

	for _, e := range s.Component.Debug.All() {
		ant, ok := s.Component.Ant.Get(e)
		if !ok {
			continue
		}
		nav, ok := s.Component.Nav.Get(e)
		if !ok {
			continue
		}
		drift, _ := s.Component.Drift.Get(e)
		forager, isForager := s.Component.Forager.Get(e)

		s.Component.Debug.Update(e, func(v *component.VisualDebugComponent) {
			v.Clear()
			v.Circle(nav.Position, 1, roleColor(ant.Role))

			if isForager {
				v.Circle(nav.Position, 2, stateColor(forager.State))
				if forager.State == behavior.Seeking {
					// Bar grows with seek time
					w := 4 * forager.SeekTimer.Fraction()
					base := vmath.V2Add(nav.Position, vmath.V2(-2, 3))
					v.Rect(base, vmath.V2Add(base, vmath.V2(w, 0.5)), component.ColorPurple)
				}
			}
			if nav.HasTarget {
				v.Line(nav.Position, nav.Target, component.ColorWhite)
			}
			if drift.Magnitude > 0 {
				v.Line(nav.Position, vmath.V2Add(nav.Position, drift.Vector()), component.ColorRed)
			}
		})
	}
}
