package engine

import (
	"github.com/lixenwraith/minigold/event"
)

// EventHandler receives routed events during the dispatch phase of a step
type EventHandler interface {
	HandleEvent(ev event.GameEvent)
	EventTypes() []event.EventType
}

// EventRouter fans queued events out to subscribed handlers on the simulation thread
// Handlers of one type run in registration order; events pushed while dispatching are delivered next step
type EventRouter struct {
	queue  *event.EventQueue
	routes map[event.EventType][]EventHandler
}

func NewEventRouter(queue *event.EventQueue) *EventRouter {
	return &EventRouter{
		queue:  queue,
		routes: make(map[event.EventType][]EventHandler),
	}
}

// Register subscribes handler to every type it declares
func (r *EventRouter) Register(handler EventHandler) {
	for _, t := range handler.EventTypes() {
		r.routes[t] = append(r.routes[t], handler)
	}
}

// DispatchAll drains the queue once and returns the number of events routed
func (r *EventRouter) DispatchAll() int {
	batch := r.queue.Consume()
	for i := range batch {
		for _, h := range r.routes[batch[i].Type] {
			h.HandleEvent(batch[i])
		}
	}
	return len(batch)
}
