package system_test

import (
	"testing"
	"time"

	"github.com/lixenwraith/minigold/engine"
	"github.com/lixenwraith/minigold/event"
	"github.com/lixenwraith/minigold/system"
)

const tick = 16 * time.Millisecond

// newWorld creates a world with every gameplay system installed
func newWorld(t *testing.T, opts ...engine.Option) (*engine.World, *system.Set) {
	t.Helper()
	w := engine.NewWorld(opts...)
	return w, system.Install(w)
}

// drain returns and clears pending notifications
func drain(w *engine.World) []event.GameEvent {
	return w.Resources.Event.Queue.Consume()
}

// ofType filters events by type
func ofType(events []event.GameEvent, et event.EventType) []event.GameEvent {
	var out []event.GameEvent
	for _, ev := range events {
		if ev.Type == et {
			out = append(out, ev)
		}
	}
	return out
}

func stepN(w *engine.World, n int, dt time.Duration) {
	for i := 0; i < n; i++ {
		w.Step(dt)
	}
}
