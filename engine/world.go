package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/minigold/core"
	"github.com/lixenwraith/minigold/event"
	"github.com/lixenwraith/minigold/parameter"
	"github.com/lixenwraith/minigold/status"
)

// World contains all entities and their components using typed stores
// All simulation state is mutated on a single thread holding the update lock
type World struct {
	mu           sync.RWMutex
	nextEntityID core.Entity

	Resources  *Resource
	Components ComponentStore
	Scheduler  *Scheduler

	stores []AnyStore
	router *EventRouter

	systems     []System
	updateMutex sync.Mutex

	// Mirrors Resources.Time.FrameNumber for readers outside the update lock
	frame atomic.Int64
}

// NewWorld creates a world with default tuning, a fresh status registry and a no-op logger
func NewWorld(opts ...Option) *World {
	tuning := parameter.DefaultTuning()
	res := &Resource{
		Time:   &TimeResource{},
		Event:  &EventQueueResource{Queue: event.NewEventQueue()},
		Tuning: &tuning,
		Status: status.NewRegistry(),
		Log:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(res)
	}

	w := &World{
		nextEntityID: 1,
		Resources:    res,
		Scheduler:    NewScheduler(),
		systems:      make([]System, 0),
	}
	w.router = NewEventRouter(res.Event.Queue)
	initComponentStores(w)

	return w
}

// CreateEntity reserves a new entity ID
func (w *World) CreateEntity() core.Entity {
	w.mu.Lock()
	defer w.mu.Unlock()

	id := w.nextEntityID
	w.nextEntityID++
	return id
}

// DestroyEntity removes all components of an entity and cancels its scheduled tasks
func (w *World) DestroyEntity(e core.Entity) {
	if !e.Valid() {
		return
	}
	for _, s := range w.stores {
		s.RemoveEntity(e)
	}
	w.Scheduler.CancelOwner(e)
}

// Alive reports whether any store still holds a component for the entity
func (w *World) Alive(e core.Entity) bool {
	if !e.Valid() {
		return false
	}
	for _, s := range w.stores {
		if s.HasEntity(e) {
			return true
		}
	}
	return false
}

// Clear removes all entities, components and pending tasks
// Entity IDs are not reused across a clear
func (w *World) Clear() {
	for _, s := range w.stores {
		s.ClearAllComponents()
	}
	w.Scheduler.Clear()
	w.Resources.Time.Update(0, 0, 0)
	w.frame.Store(0)
}

// Reset delivers pending notifications, clears the world and re-initializes every system
// Events pushed by handlers during that final dispatch are dropped
// EventGameReset is queued for observers once the world is empty
func (w *World) Reset() {
	w.router.DispatchAll()
	_ = w.Resources.Event.Queue.Consume()
	w.Clear()
	for _, s := range w.Systems() {
		s.Init()
	}
	w.PushEvent(event.EventGameReset, nil)
}

// AddSystem registers a system, initializes it and routes its event types
// Systems are kept sorted by priority; equal priorities keep registration order
func (w *World) AddSystem(system System) {
	w.mu.Lock()
	w.systems = append(w.systems, system)
	for i := len(w.systems) - 1; i > 0; i-- {
		if w.systems[i-1].Priority() <= w.systems[i].Priority() {
			break
		}
		w.systems[i-1], w.systems[i] = w.systems[i], w.systems[i-1]
	}
	w.mu.Unlock()

	system.Init()
	w.router.Register(system)
}

// Systems returns a copy of all registered systems in run order
func (w *World) Systems() []System {
	w.mu.RLock()
	defer w.mu.RUnlock()
	result := make([]System, len(w.systems))
	copy(result, w.systems)
	return result
}

// RunSafe executes a function while holding the world's update lock
func (w *World) RunSafe(fn func()) {
	w.updateMutex.Lock()
	defer w.updateMutex.Unlock()
	fn()
}

// Lock acquires the world's update mutex
func (w *World) Lock() {
	w.updateMutex.Lock()
}

// Unlock releases the update mutex
func (w *World) Unlock() {
	w.updateMutex.Unlock()
}

// Step advances the simulation by one tick under the update lock
func (w *World) Step(dt time.Duration) {
	w.RunSafe(func() {
		w.StepLocked(dt)
	})
}

// StepLocked advances the simulation assuming the caller holds the update lock
// Order: time resource, event dispatch, due scheduled tasks, systems by priority
// Notifications pushed by tasks or systems are dispatched on the next step
func (w *World) StepLocked(dt time.Duration) {
	if dt < 0 {
		dt = 0
	}
	tr := w.Resources.Time
	tr.Update(tr.Elapsed+dt, dt, tr.FrameNumber+1)
	w.frame.Store(tr.FrameNumber)

	w.router.DispatchAll()
	w.Scheduler.Advance(dt)

	for _, system := range w.Systems() {
		system.Update()
	}
}

// DispatchEvents routes all pending events without advancing time
func (w *World) DispatchEvents() {
	w.router.DispatchAll()
}

// FrameNumber returns the current tick index
// Safe to call from any goroutine
func (w *World) FrameNumber() int64 {
	return w.frame.Load()
}

// PushEvent emits a game event stamped with the current frame
// Safe to call from any goroutine
func (w *World) PushEvent(eventType event.EventType, payload any) {
	w.Resources.Event.Queue.Push(event.GameEvent{
		Type:    eventType,
		Payload: payload,
		Frame:   w.frame.Load(),
	})
}
