package system

import (
	"math"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/minigold/core"
	"github.com/lixenwraith/minigold/engine"
	"github.com/lixenwraith/minigold/event"
	"github.com/lixenwraith/minigold/parameter"
)

// CombatSystem applies damage to entities carrying health
// Damage is synchronous; death is resolved by ShipSystem's per-tick check
type CombatSystem struct {
	world *engine.World
	log   zerolog.Logger

	enabled bool
}

// NewCombatSystem creates the combat system
func NewCombatSystem(world *engine.World) *CombatSystem {
	s := &CombatSystem{
		world: world,
		log:   world.Resources.Log.With().Str("system", "combat").Logger(),
	}
	s.Init()
	return s
}

func (s *CombatSystem) Init() {
	s.enabled = true
}

func (s *CombatSystem) Name() string { return "combat" }

func (s *CombatSystem) Priority() int { return parameter.PriorityCombat }

func (s *CombatSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventMetaSystemCommandRequest,
	}
}

func (s *CombatSystem) HandleEvent(ev event.GameEvent) {
	if payload, ok := ev.Payload.(*event.MetaSystemCommandPayload); ok {
		if payload.SystemName == s.Name() {
			s.enabled = payload.Enabled
		}
	}
}

func (s *CombatSystem) Update() {}

// TakeDamage subtracts amount from target's health only when health >= amount
// The amount is truncated toward zero before subtraction, so fractional damage below 1 changes nothing
// Health never goes negative; a rejected subtraction leaves it unchanged
// Returns the resulting health and whether the call was accepted
func (s *CombatSystem) TakeDamage(target core.Entity, amount float64, instigator core.Entity) (uint32, bool) {
	health, ok := s.world.Components.Health.GetComponent(target)
	if !ok {
		return 0, false
	}
	if !s.enabled || amount < 0 || math.IsNaN(amount) {
		return health.Health, false
	}

	previous := health.Health
	if float64(previous) >= amount {
		health.Health -= uint32(amount)
	}
	s.world.Components.Health.SetComponent(target, health)

	s.log.Debug().
		Uint64("target", uint64(target)).
		Uint64("instigator", uint64(instigator)).
		Float64("amount", amount).
		Uint32("previous", previous).
		Uint32("health", health.Health).
		Msg("damage")

	s.world.PushEvent(event.EventShipHealthChanged, &event.ShipHealthChangedPayload{
		Ship:       target,
		Instigator: instigator,
		Amount:     amount,
		Previous:   previous,
		Health:     health.Health,
	})
	return health.Health, true
}
