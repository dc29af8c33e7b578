package engine

import (
	"github.com/lixenwraith/ant-colony/event"
	"github.com/lixenwraith/ant-colony/parameter"
)

// EventRouter dispatches queued events to registered handlers
//
// Dispatch is single threaded and runs before systems update. Handlers run in registration
// order; events emitted by handlers are dispatched in a follow-up round, up to
// parameter.EventDispatchRounds, and anything left waits for the next tick
type EventRouter struct {
	handlers map[event.EventType][]EventHandler
	queue    *event.EventQueue
}

// NewEventRouter creates a router attached to the given queue
func NewEventRouter(queue *event.EventQueue) *EventRouter {
	return &EventRouter{
		handlers: make(map[event.EventType][]EventHandler),
		queue:    queue,
	}
}

// Register adds a handler for each of its declared event types
func (r *EventRouter) Register(handler EventHandler) {
	for _, t := range handler.EventTypes() {
		r.handlers[t] = append(r.handlers[t], handler)
	}
}

// DispatchAll drains the queue in FIFO order, returning the number of events handled
func (r *EventRouter) DispatchAll() int {
	n := 0
	for round := 0; round < parameter.EventDispatchRounds; round++ {
		events := r.queue.Consume()
		if len(events) == 0 {
			break
		}
		for _, ev := range events {
			for _, h := range r.handlers[ev.Type] {
				h.HandleEvent(ev)
			}
		}
		n += len(events)
	}
	return n
}

// HandlerCount returns the number of handlers registered for the given type
func (r *EventRouter) HandlerCount(t event.EventType) int {
	return len(r.handlers[t])
}
