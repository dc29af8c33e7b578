package engine

import (
	"sort"
	"sync"
	"sync/atomic"

	"github.com/lixenwraith/ant-colony/core"
)

// World contains all entities and their components using typed stores
type World struct {
	mu     sync.RWMutex
	lastID atomic.Uint64

	Components ComponentStore
	Resources  *Resource

	allStores []AnyStore
	systems   []System
	router    *EventRouter
}

// NewWorld creates a world over the given resources
func NewWorld(res *Resource) *World {
	if res == nil {
		res = NewResource(nil, nil)
	}
	w := &World{
		Resources: res,
		router:    NewEventRouter(res.Event),
	}
	initComponentStores(w)
	return w
}

// CreateEntity reserves a new entity ID, never zero
// Lock-free so systems can create entities while the tick holds the world lock
func (w *World) CreateEntity() core.Entity {
	return core.Entity(w.lastID.Add(1))
}

// DestroyEntity removes all components associated with an entity
func (w *World) DestroyEntity(e core.Entity) {
	for _, s := range w.allStores {
		s.Remove(e)
	}
}

// EntityCount returns the number of distinct entities holding any component
func (w *World) EntityCount() int {
	seen := make(map[core.Entity]struct{})
	for _, e := range w.Components.Ant.All() {
		seen[e] = struct{}{}
	}
	for _, e := range w.Components.Food.All() {
		seen[e] = struct{}{}
	}
	for _, e := range w.Components.Colony.All() {
		seen[e] = struct{}{}
	}
	for _, e := range w.Components.Spawner.All() {
		seen[e] = struct{}{}
	}
	for _, e := range w.Components.Larva.All() {
		seen[e] = struct{}{}
	}
	return len(seen)
}

// Clear removes every component and resets the scent field
func (w *World) Clear() {
	for _, s := range w.allStores {
		s.Clear()
	}
	w.Resources.Scent.Clear()
	w.Resources.Spatial.Ants.Clear()
	w.Resources.Spatial.Food.Clear()
	w.Resources.Spatial.Spawners.Clear()
}

// AddSystem registers a system, keeping the list sorted by priority
// Systems that also implement EventHandler are registered with the router
// Constructors are expected to have called Init already
func (w *World) AddSystem(s System) {
	w.systems = append(w.systems, s)
	sort.SliceStable(w.systems, func(i, j int) bool {
		return w.systems[i].Priority() < w.systems[j].Priority()
	})
	if h, ok := s.(EventHandler); ok {
		w.router.Register(h)
	}
}

// AddHandler registers a non-system event handler
func (w *World) AddHandler(h EventHandler) {
	w.router.Register(h)
}

// Systems returns the registered systems in run order
func (w *World) Systems() []System {
	out := make([]System, len(w.systems))
	copy(out, w.systems)
	return out
}

// Router exposes the event router
func (w *World) Router() *EventRouter {
	return w.router
}

// DispatchEvents routes pending events to handlers without advancing time
func (w *World) DispatchEvents() int {
	return w.router.DispatchAll()
}

// Update runs every system once in priority order
// Caller holds the world lock; see Lock and RunSafe
func (w *World) Update() {
	for _, s := range w.systems {
		s.Update()
	}
}

// Reset clears the world and re-initializes every system
func (w *World) Reset() {
	w.Clear()
	for _, s := range w.systems {
		s.Init()
	}
}

// Lock and Unlock guard a full tick against concurrent readers
func (w *World) Lock()   { w.mu.Lock() }
func (w *World) Unlock() { w.mu.Unlock() }

// RunSafe runs fn under the world read lock, used by the viewer between ticks
func (w *World) RunSafe(fn func()) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	fn()
}
