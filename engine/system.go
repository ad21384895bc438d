package engine

import (
	"github.com/lixenwraith/minigold/event"
)

// System is a unit of per-tick simulation logic
// Systems run in ascending Priority order after event dispatch
type System interface {
	// Init resets system state; called on registration and on game reset
	Init()
	Name() string
	Priority() int

	// EventTypes returns the event types routed to HandleEvent
	EventTypes() []event.EventType
	HandleEvent(ev event.GameEvent)

	Update()
}
