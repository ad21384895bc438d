package event

import (
	"sync"
	"sync/atomic"

	"github.com/lixenwraith/minigold/parameter"
)

// EventQueue is a bounded multi-producer queue drained once per tick by the simulation thread
// Producers (input goroutine, systems) append under a short lock
// When full the oldest pending event is discarded and counted in Dropped
type EventQueue struct {
	mu      sync.Mutex
	pending []GameEvent
	start   int // index of oldest live event in pending
	dropped atomic.Uint64
}

func NewEventQueue() *EventQueue {
	return &EventQueue{
		pending: make([]GameEvent, 0, parameter.EventQueueSize),
	}
}

// Push appends an event, evicting the oldest one at capacity
func (eq *EventQueue) Push(ev GameEvent) {
	eq.mu.Lock()
	if len(eq.pending)-eq.start >= parameter.EventQueueSize {
		eq.start++
		eq.dropped.Add(1)
		// Compact once the evicted prefix is as large as the live window
		if eq.start >= parameter.EventQueueSize {
			n := copy(eq.pending, eq.pending[eq.start:])
			eq.pending = eq.pending[:n]
			eq.start = 0
		}
	}
	eq.pending = append(eq.pending, ev)
	eq.mu.Unlock()
}

// Consume returns all pending events in FIFO order, nil when empty
func (eq *EventQueue) Consume() []GameEvent {
	eq.mu.Lock()
	defer eq.mu.Unlock()

	if len(eq.pending) == eq.start {
		eq.pending = eq.pending[:0]
		eq.start = 0
		return nil
	}

	out := make([]GameEvent, len(eq.pending)-eq.start)
	copy(out, eq.pending[eq.start:])
	eq.pending = eq.pending[:0]
	eq.start = 0
	return out
}

// Len returns the pending event count
func (eq *EventQueue) Len() int {
	eq.mu.Lock()
	n := len(eq.pending) - eq.start
	eq.mu.Unlock()
	return n
}

// Dropped returns how many events were evicted by overflow since creation
func (eq *EventQueue) Dropped() uint64 {
	return eq.dropped.Load()
}
