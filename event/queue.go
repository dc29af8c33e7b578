package event

import (
	"sync/atomic"

	"github.com/lixenwraith/ant-colony/parameter"
)

// EventQueue is a lock-free MPSC ring buffer
// Any goroutine may Push; only the tick loop calls Consume
// When full, the oldest unread events are overwritten and counted in Dropped
type EventQueue struct {
	slots [parameter.EventQueueSize]GameEvent
	ready [parameter.EventQueueSize]atomic.Bool // Slot fully written
	head  atomic.Uint64                         // Next read
	tail  atomic.Uint64                         // Next write

	dropped atomic.Uint64
}

func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

// Push claims a slot by CAS on tail, writes it, then publishes
func (q *EventQueue) Push(ev GameEvent) {
	for {
		tail := q.tail.Load()
		if !q.tail.CompareAndSwap(tail, tail+1) {
			continue
		}

		idx := tail & parameter.EventBufferMask
		q.slots[idx] = ev
		q.ready[idx].Store(true)

		head := q.head.Load()
		if tail+1-head > parameter.EventQueueSize {
			if q.head.CompareAndSwap(head, tail+1-parameter.EventQueueSize) {
				q.dropped.Add(tail + 1 - parameter.EventQueueSize - head)
			}
		}
		return
	}
}

// Emit is shorthand for Push with a payload
func (q *EventQueue) Emit(t EventType, payload any) {
	q.Push(GameEvent{Type: t, Payload: payload})
}

// Consume returns pending events in FIFO order
// Stops at the first slot whose writer has not published yet; the rest arrive next call
func (q *EventQueue) Consume() []GameEvent {
	for {
		head := q.head.Load()
		tail := q.tail.Load()
		if tail == head {
			return nil
		}

		n := tail - head
		if n > parameter.EventQueueSize {
			n = parameter.EventQueueSize
			head = tail - parameter.EventQueueSize
		}

		out := make([]GameEvent, 0, n)
		for i := uint64(0); i < n; i++ {
			idx := (head + i) & parameter.EventBufferMask
			if !q.ready[idx].Load() {
				break
			}
			out = append(out, q.slots[idx])
			q.ready[idx].Store(false)
		}

		if q.head.CompareAndSwap(head, head+uint64(len(out))) {
			if len(out) == 0 {
				return nil
			}
			return out
		}
	}
}

// Len returns the approximate pending count
func (q *EventQueue) Len() int {
	head := q.head.Load()
	tail := q.tail.Load()
	if tail <= head {
		return 0
	}
	if d := tail - head; d < parameter.EventQueueSize {
		return int(d)
	}
	return parameter.EventQueueSize
}

// Dropped returns the number of events overwritten before being consumed
func (q *EventQueue) Dropped() uint64 {
	return q.dropped.Load()
}
