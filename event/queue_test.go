package event

import (
	"sync"
	"testing"

	"github.com/lixenwraith/minigold/parameter"
)

func TestEventQueue_FIFO(t *testing.T) {
	q := NewEventQueue()
	for i := 0; i < 5; i++ {
		q.Push(GameEvent{Type: EventShipFired, Frame: int64(i)})
	}
	if q.Len() != 5 {
		t.Errorf("Expected 5 pending, got %d", q.Len())
	}

	events := q.Consume()
	if len(events) != 5 {
		t.Fatalf("Expected 5 events, got %d", len(events))
	}
	for i, ev := range events {
		if ev.Frame != int64(i) {
			t.Errorf("Expected frame %d at %d, got %d", i, i, ev.Frame)
		}
	}
	if q.Consume() != nil {
		t.Error("Expected empty queue after consume")
	}
}

func TestEventQueue_OverflowDropsOldest(t *testing.T) {
	q := NewEventQueue()
	total := parameter.EventQueueSize + 10
	for i := 0; i < total; i++ {
		q.Push(GameEvent{Frame: int64(i)})
	}

	events := q.Consume()
	if len(events) != parameter.EventQueueSize {
		t.Fatalf("Expected %d events, got %d", parameter.EventQueueSize, len(events))
	}
	if events[0].Frame != 10 {
		t.Errorf("Expected oldest surviving frame 10, got %d", events[0].Frame)
	}
}

func TestEventQueue_ConcurrentProducers(t *testing.T) {
	q := NewEventQueue()
	var wg sync.WaitGroup
	for p := 0; p < 4; p++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				q.Push(GameEvent{Type: EventShipInput})
			}
		}()
	}
	wg.Wait()

	if n := len(q.Consume()); n != 400 {
		t.Errorf("Expected 400 events, got %d", n)
	}
}

func TestRegistry_Names(t *testing.T) {
	if got := EventShipHealthChanged.String(); got != "EventShipHealthChanged" {
		t.Errorf("Expected registered name, got %q", got)
	}
	if got := EventType(999).String(); got != "EventUnknown" {
		t.Errorf("Expected EventUnknown, got %q", got)
	}
}

func TestEventQueue_DroppedCount(t *testing.T) {
	q := NewEventQueue()
	for i := 0; i < parameter.EventQueueSize*3; i++ {
		q.Push(GameEvent{Frame: int64(i)})
	}
	if got := q.Dropped(); got != uint64(parameter.EventQueueSize*2) {
		t.Errorf("Expected %d dropped, got %d", parameter.EventQueueSize*2, got)
	}
	if q.Len() != parameter.EventQueueSize {
		t.Errorf("Expected full window, got %d", q.Len())
	}
	events := q.Consume()
	if events[len(events)-1].Frame != int64(parameter.EventQueueSize*3-1) {
		t.Errorf("Expected newest event last, got frame %d", events[len(events)-1].Frame)
	}
}
