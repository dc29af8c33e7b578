package engine

import (
	"github.com/charmbracelet/log"

	"github.com/lixenwraith/ant-colony/event"
)

// System is one phase of the tick, run in ascending Priority order
type System interface {
	// Init resets internal state; called on registration and on world reset
	Init()
	Name() string
	Priority() int
	Update()
}

// EventHandler processes routed events; systems implementing it are registered with the router
type EventHandler interface {
	EventTypes() []event.EventType

	// HandleEvent is called synchronously during dispatch, before systems update
	HandleEvent(ev event.GameEvent)
}

// SystemBase provides the common dependencies of a system
// Embed in the system struct and build with NewSystemBase in its constructor
type SystemBase struct {
	World     *World
	Resource  *Resource
	Component *ComponentStore
	Log       *log.Logger
}

// NewSystemBase initializes base dependencies from world
func NewSystemBase(w *World, name string) SystemBase {
	return SystemBase{
		World:     w,
		Resource:  w.Resources,
		Component: &w.Components,
		Log:       w.Resources.Log.With("system", name),
	}
}

// ToggleFor reports the requested enabled state when ev is a toggle addressed to name
func ToggleFor(name string, ev event.GameEvent) (enabled, ok bool) {
	if ev.Type != event.EventSystemToggle {
		return false, false
	}
	p, isToggle := ev.Payload.(*event.SystemTogglePayload)
	if !isToggle || p.SystemName != name {
		return false, false
	}
	return p.Enabled, true
}
