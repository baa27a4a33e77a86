package event

import (
	"sync"

	"github.com/lixenwraith/rollaball/parameter"
)

// EventQueue is a bounded FIFO of game events filled and drained within a tick
// When full the oldest event is dropped
type EventQueue struct {
	mu     sync.Mutex
	events [parameter.EventQueueSize]GameEvent
	head   int // Index of the oldest pending event
	size   int
}

func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

// Push appends an event, overwriting the oldest when full
func (eq *EventQueue) Push(ev GameEvent) {
	eq.mu.Lock()
	defer eq.mu.Unlock()

	if eq.size == len(eq.events) {
		eq.events[eq.head] = ev
		eq.head = (eq.head + 1) % len(eq.events)
		return
	}
	eq.events[(eq.head+eq.size)%len(eq.events)] = ev
	eq.size++
}

// Consume returns all pending events in FIFO order and empties the queue
func (eq *EventQueue) Consume() []GameEvent {
	eq.mu.Lock()
	defer eq.mu.Unlock()

	if eq.size == 0 {
		return nil
	}
	out := make([]GameEvent, eq.size)
	for i := range out {
		idx := (eq.head + i) % len(eq.events)
		out[i] = eq.events[idx]
		eq.events[idx] = GameEvent{}
	}
	eq.head, eq.size = 0, 0
	return out
}

// Len returns the number of pending events
func (eq *EventQueue) Len() int {
	eq.mu.Lock()
	defer eq.mu.Unlock()
	return eq.size
}
