package engine

import (
	"sync"
	"testing"
	"time"

	"github.com/lixenwraith/minigold/event"
)

// TestConcurrentPushEventDuringStep pushes input from another goroutine while the world steps
// Run with -race to verify frame stamping needs no update lock
func TestConcurrentPushEventDuringStep(t *testing.T) {
	w := NewWorld()
	const iterations = 1000

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < iterations; i++ {
			w.PushEvent(event.EventShipFireRequest, &event.ShipFireRequestPayload{Ship: 1})
			_ = w.FrameNumber()
		}
	}()

	for i := 0; i < iterations; i++ {
		w.Step(time.Millisecond)
	}
	wg.Wait()
	w.DispatchEvents()

	if w.FrameNumber() != iterations {
		t.Errorf("Expected frame %d, got %d", iterations, w.FrameNumber())
	}
}

// TestEventFramesNeverExceedCurrent checks stamps pushed concurrently stay within stepped frames
func TestEventFramesNeverExceedCurrent(t *testing.T) {
	w := NewWorld()
	var log []string
	sys := &recordingSystem{name: "sys", log: &log}
	w.AddSystem(sys)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 200; i++ {
			w.PushEvent(event.EventShipFired, &event.ShipFiredPayload{})
		}
	}()
	for i := 0; i < 200; i++ {
		w.Step(time.Millisecond)
	}
	<-done
	w.Step(time.Millisecond)

	if len(sys.events) != 200 {
		t.Fatalf("Expected 200 events delivered, got %d", len(sys.events))
	}
	for _, ev := range sys.events {
		if ev.Frame < 0 || ev.Frame > 201 {
			t.Errorf("Expected frame within [0, 201], got %d", ev.Frame)
		}
	}
}
