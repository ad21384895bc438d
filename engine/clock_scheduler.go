package engine

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/minigold/core"
	"github.com/lixenwraith/minigold/parameter"
	"github.com/lixenwraith/minigold/status"
)

// ClockScheduler drives World.Step on a fixed real-time tick
// Each tick advances simulation by exactly tickInterval; drift is corrected against a deadline
type ClockScheduler struct {
	world        *World
	tickInterval time.Duration

	paused    atomic.Bool
	tickCount atomic.Uint64

	// Control channels
	stopChan  chan struct{}
	stopOnce  sync.Once
	wg        sync.WaitGroup
	running   atomic.Bool
	resetChan chan struct{}

	// Optional per-tick notification for the front end, never blocks
	tickDone chan struct{}

	// Runs under the world lock right after a requested reset
	onReset func()

	// Cached metric pointers
	statTicks  *atomic.Int64
	statTickMs *status.Gauge
}

// NewClockScheduler creates a scheduler for the world with the given tick interval
// Non-positive interval falls back to parameter.TickInterval
func NewClockScheduler(world *World, tickInterval time.Duration) *ClockScheduler {
	if tickInterval <= 0 {
		tickInterval = parameter.TickInterval
	}
	reg := world.Resources.Status
	return &ClockScheduler{
		world:        world,
		tickInterval: tickInterval,
		stopChan:     make(chan struct{}),
		resetChan:    make(chan struct{}, 1),
		tickDone:     make(chan struct{}, 1),
		statTicks:    reg.Ints.Get(status.KeyEngineTicks),
		statTickMs:   reg.Floats.Get(status.KeyTickDuration),
	}
}

// TickDone returns a channel signalled after each processed tick
func (cs *ClockScheduler) TickDone() <-chan struct{} {
	return cs.tickDone
}

// OnReset sets a hook run under the world lock after each requested reset, before the next tick
// Must be set before Start
func (cs *ClockScheduler) OnReset(fn func()) {
	cs.onReset = fn
}

// Start begins the scheduler loop; cancelling ctx stops it like Stop
func (cs *ClockScheduler) Start(ctx context.Context) {
	if cs.running.CompareAndSwap(false, true) {
		cs.wg.Add(1)
		core.Go(func() { cs.schedulerLoop(ctx) })
	}
}

// Stop halts the scheduler loop and waits for the current tick to finish
func (cs *ClockScheduler) Stop() {
	cs.stopOnce.Do(func() {
		close(cs.stopChan)
		cs.wg.Wait()
		cs.running.Store(false)
	})
}

// Pause suspends ticking; the world keeps its state
func (cs *ClockScheduler) Pause() {
	cs.paused.Store(true)
}

// Resume continues ticking after Pause
func (cs *ClockScheduler) Resume() {
	cs.paused.Store(false)
}

// IsPaused returns current pause state
func (cs *ClockScheduler) IsPaused() bool {
	return cs.paused.Load()
}

// RequestReset asks the loop to reset the world before its next tick
func (cs *ClockScheduler) RequestReset() {
	select {
	case cs.resetChan <- struct{}{}:
	default:
	}
}

// Ticks returns the number of ticks processed since start or last reset
func (cs *ClockScheduler) Ticks() uint64 {
	return cs.tickCount.Load()
}

// schedulerLoop runs the main scheduling loop with pause awareness
func (cs *ClockScheduler) schedulerLoop(ctx context.Context) {
	defer cs.wg.Done()

	timer := time.NewTimer(cs.tickInterval)
	defer timer.Stop()
	deadline := time.Now().Add(cs.tickInterval)

	for {
		select {
		case <-cs.stopChan:
			return
		case <-ctx.Done():
			return
		case <-cs.resetChan:
			cs.world.RunSafe(func() {
				cs.world.Reset()
				if cs.onReset != nil {
					cs.onReset()
				}
			})
			cs.tickCount.Store(0)
			deadline = time.Now().Add(cs.tickInterval)
			continue
		case <-timer.C:
		}

		now := time.Now()
		if !cs.paused.Load() {
			cs.processTick()
		}

		deadline = deadline.Add(cs.tickInterval)
		// Drop missed ticks rather than spiral
		if now.Sub(deadline) > cs.tickInterval*2 {
			deadline = now.Add(cs.tickInterval)
		}
		sleep := time.Until(deadline)
		if sleep < 0 {
			sleep = 0
		}
		timer.Reset(sleep)
	}
}

// processTick executes one clock cycle
func (cs *ClockScheduler) processTick() {
	start := time.Now()
	cs.world.Step(cs.tickInterval)
	cs.statTickMs.Set(float64(time.Since(start).Microseconds()) / 1000)

	ticks := cs.tickCount.Add(1)
	cs.statTicks.Store(int64(ticks))

	select {
	case cs.tickDone <- struct{}{}:
	default:
	}
}
