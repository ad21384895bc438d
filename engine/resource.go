package engine

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/minigold/event"
	"github.com/lixenwraith/minigold/parameter"
	"github.com/lixenwraith/minigold/status"
)

// Resource holds singleton world resources, accessed via World.Resources
type Resource struct {
	Time   *TimeResource
	Event  *EventQueueResource
	Tuning *parameter.Tuning

	// Telemetry
	Status *status.Registry
	Log    zerolog.Logger

	// Collaborators, nil-safe at call sites
	Sweeper Sweeper
	Audio   AudioPlayer
}

// TimeResource wraps simulated time for systems
// Updated by World.Step at the start of each tick
type TimeResource struct {
	// Elapsed is total simulated time since world creation or reset
	Elapsed time.Duration

	// DeltaTime is the duration of the current tick
	DeltaTime time.Duration

	// FrameNumber is the current tick count
	FrameNumber int64
}

// Update modifies TimeResource fields in-place
// Must be called under world lock to prevent races with systems reads
func (tr *TimeResource) Update(elapsed, deltaTime time.Duration, frameNumber int64) {
	tr.Elapsed = elapsed
	tr.DeltaTime = deltaTime
	tr.FrameNumber = frameNumber
}

// DeltaSeconds returns DeltaTime in seconds
func (tr *TimeResource) DeltaSeconds() float64 {
	return tr.DeltaTime.Seconds()
}

// EventQueueResource wraps the event queue for systems access
type EventQueueResource struct {
	Queue *event.EventQueue
}

// Option configures the world's resources at construction
type Option func(*Resource)

// WithLogger sets the world logger
func WithLogger(l zerolog.Logger) Option {
	return func(r *Resource) { r.Log = l }
}

// WithTuning replaces the default tuning
func WithTuning(t parameter.Tuning) Option {
	return func(r *Resource) {
		tc := t
		r.Tuning = &tc
	}
}

// WithSweeper installs the swept-move collaborator
func WithSweeper(s Sweeper) Option {
	return func(r *Resource) { r.Sweeper = s }
}

// WithAudio installs the positional audio collaborator
func WithAudio(a AudioPlayer) Option {
	return func(r *Resource) { r.Audio = a }
}
