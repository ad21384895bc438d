package recorder

import (
	"encoding/json"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/lixenwraith/minigold/config"
	"github.com/lixenwraith/minigold/core"
	"github.com/lixenwraith/minigold/engine"
	"github.com/lixenwraith/minigold/event"
	"github.com/lixenwraith/minigold/parameter"
	"github.com/lixenwraith/minigold/status"
	"github.com/lixenwraith/minigold/vmath"
)

// Recorder persists gameplay notifications as a write-only combat log
// Rows are buffered on the simulation thread and written in batches
type Recorder struct {
	world *engine.World
	db    *gorm.DB
	log   zerolog.Logger
	now   func() time.Time

	pawn       string
	match      Match
	pending    []CombatEvent
	flushEvery int
	batchSize  int
	ticks      int

	// Telemetry
	statWritten *atomic.Int64
	statErrors  *atomic.Int64

	enabled bool
}

// New creates a recorder and opens the first match for pawn
func New(world *engine.World, db *gorm.DB, cfg config.RecorderConfig, pawn string) (*Recorder, error) {
	r := &Recorder{
		world:       world,
		db:          db,
		log:         world.Resources.Log.With().Str("system", "recorder").Logger(),
		now:         time.Now,
		pawn:        pawn,
		flushEvery:  cfg.FlushEvery,
		batchSize:   batchSize(cfg),
		statWritten: world.Resources.Status.Ints.Get(status.KeyRecorderWritten),
		statErrors:  world.Resources.Status.Ints.Get(status.KeyRecorderErrors),
	}
	if r.flushEvery <= 0 {
		r.flushEvery = 1
	}
	if err := r.startMatch(); err != nil {
		return nil, err
	}
	r.enabled = true
	return r, nil
}

func (r *Recorder) Init() {
	r.ticks = 0
	r.enabled = true
}

func (r *Recorder) Name() string { return "recorder" }

func (r *Recorder) Priority() int { return parameter.PriorityRecorder }

func (r *Recorder) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventGameReset,
		event.EventShipFired,
		event.EventShipHealthChanged,
		event.EventShipDestroyed,
		event.EventProjectileHit,
		event.EventProjectileExpired,
		event.EventImpulseApplied,
		event.EventMetaSystemCommandRequest,
	}
}

func (r *Recorder) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventMetaSystemCommandRequest:
		if payload, ok := ev.Payload.(*event.MetaSystemCommandPayload); ok {
			if payload.SystemName == r.Name() {
				r.enabled = payload.Enabled
			}
		}
		return

	case event.EventGameReset:
		r.rollMatch()
		return
	}

	if !r.enabled {
		return
	}
	if row, ok := r.toRow(ev); ok {
		r.pending = append(r.pending, row)
	}
}

func (r *Recorder) Update() {
	r.ticks++
	if r.ticks < r.flushEvery {
		return
	}
	r.ticks = 0
	if err := r.Flush(); err != nil {
		r.log.Error().Err(err).Msg("Recorder flush failed")
	}
}

// Flush writes buffered rows; rows are dropped on failure so a dead database cannot grow the buffer
func (r *Recorder) Flush() error {
	if len(r.pending) == 0 {
		return nil
	}
	rows := r.pending
	r.pending = nil

	if err := r.db.CreateInBatches(&rows, r.batchSize).Error; err != nil {
		r.statErrors.Add(1)
		return fmt.Errorf("error writing %d combat events: %w", len(rows), err)
	}
	r.statWritten.Add(int64(len(rows)))
	return nil
}

// Pending returns the number of buffered rows
func (r *Recorder) Pending() int {
	return len(r.pending)
}

// MatchID returns the current match id
func (r *Recorder) MatchID() uuid.UUID {
	return r.match.ID
}

// Close flushes buffered rows and closes the current match
func (r *Recorder) Close() error {
	flushErr := r.Flush()
	if err := r.endMatch(); err != nil {
		return err
	}
	return flushErr
}

func (r *Recorder) startMatch() error {
	r.match = Match{
		ID:        uuid.New(),
		Pawn:      r.pawn,
		StartedAt: r.now().UTC(),
	}
	if err := r.db.Create(&r.match).Error; err != nil {
		return fmt.Errorf("error creating match: %w", err)
	}
	r.log.Info().Str("match", r.match.ID.String()).Str("pawn", r.pawn).Msg("Match started")
	return nil
}

func (r *Recorder) endMatch() error {
	ended := r.now().UTC()
	r.match.EndedAt = &ended
	if err := r.db.Model(&r.match).Update("ended_at", ended).Error; err != nil {
		return fmt.Errorf("error closing match: %w", err)
	}
	return nil
}

// rollMatch closes the current match and opens a new one on world reset
func (r *Recorder) rollMatch() {
	if err := r.Close(); err != nil {
		r.log.Error().Err(err).Msg("Recorder failed to close match")
	}
	if err := r.startMatch(); err != nil {
		r.statErrors.Add(1)
		r.log.Error().Err(err).Msg("Recorder failed to start match")
	}
}

func (r *Recorder) toRow(ev event.GameEvent) (CombatEvent, bool) {
	row := CombatEvent{
		MatchID:    r.match.ID,
		Frame:      ev.Frame,
		Kind:       ev.Type.String(),
		RecordedAt: r.now().UTC(),
	}

	switch p := ev.Payload.(type) {
	case *event.ShipFiredPayload:
		row.Entity, row.Other, row.Value = id(p.Ship), id(p.Projectile), p.Yaw
	case *event.ShipHealthChangedPayload:
		row.Entity, row.Other, row.Value = id(p.Ship), id(p.Instigator), float64(p.Health)
	case *event.ShipDestroyedPayload:
		row.Entity = id(p.Ship)
	case *event.ProjectileHitPayload:
		row.Entity, row.Other = id(p.Projectile), id(p.Other)
		if p.Damaged {
			row.Value = 1
		}
	case *event.ProjectileExpiredPayload:
		row.Entity, row.Other = id(p.Projectile), id(p.Owner)
	case *event.ImpulseAppliedPayload:
		row.Entity, row.Other, row.Value = id(p.Target), id(p.Source), vmath.V3FMag(p.Impulse)
	default:
		return CombatEvent{}, false
	}

	detail, err := json.Marshal(ev.Payload)
	if err != nil {
		r.log.Warn().Err(err).Str("kind", row.Kind).Msg("Recorder could not encode payload")
		detail = []byte("{}")
	}
	row.Detail = datatypes.JSON(detail)
	return row, true
}

func id(e core.Entity) uint64 {
	return uint64(e)
}
