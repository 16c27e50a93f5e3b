package event

import (
	"sync/atomic"

	"github.com/lixenwraith/wildhunt/parameter"
)

// EventQueue is a lock-free ring buffer of game events
// Push is safe for concurrent producers; Consume has a single consumer (UI collaborator)
// Published flags keep the consumer from reading partially written slots
//
// Overflow: oldest events are overwritten when full
type EventQueue struct {
	events    [parameter.EventQueueSize]GameEvent
	published [parameter.EventQueueSize]atomic.Bool
	head      atomic.Uint64 // read index
	tail      atomic.Uint64 // write index
	dropped   atomic.Uint64
}

// NewEventQueue creates an empty queue
func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

// Push appends an event
func (q *EventQueue) Push(ev GameEvent) {
	for {
		tail := q.tail.Load()
		next := tail + 1
		if !q.tail.CompareAndSwap(tail, next) {
			continue
		}
		idx := tail & parameter.EventBufferMask
		q.events[idx] = ev
		q.published[idx].Store(true)

		head := q.head.Load()
		if next-head > parameter.EventQueueSize {
			if q.head.CompareAndSwap(head, next-parameter.EventQueueSize) {
				q.dropped.Add(next - parameter.EventQueueSize - head)
			}
		}
		return
	}
}

// Emit is a convenience wrapper for Push
func (q *EventQueue) Emit(t EventType, payload any, tick int64) {
	q.Push(GameEvent{Type: t, Payload: payload, Tick: tick})
}

// Consume drains pending events in FIFO order
func (q *EventQueue) Consume() []GameEvent {
	for {
		head := q.head.Load()
		tail := q.tail.Load()
		if tail == head {
			return nil
		}

		avail := tail - head
		if avail > parameter.EventQueueSize {
			avail = parameter.EventQueueSize
			head = tail - parameter.EventQueueSize
		}

		out := make([]GameEvent, 0, avail)
		for i := uint64(0); i < avail; i++ {
			idx := (head + i) & parameter.EventBufferMask
			if !q.published[idx].Load() {
				break
			}
			out = append(out, q.events[idx])
			q.published[idx].Store(false)
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
	n := int(tail - head)
	if n > parameter.EventQueueSize {
		return parameter.EventQueueSize
	}
	return n
}

// Dropped returns how many events were overwritten before being consumed
func (q *EventQueue) Dropped() uint64 {
	return q.dropped.Load()
}

// Reset discards all pending events
func (q *EventQueue) Reset() {
	q.Consume()
}
