package event

// EventType represents the type of game event
type EventType int

const (
	// EventNone is the zero type, never emitted
	EventNone EventType = iota

	// === Engine Event ===

	// EventGameReset clears all ships and projectiles and re-runs system Init
	// Trigger: Front end restart key
	// Consumer: All systems | Payload: nil
	EventGameReset

	// EventMetaSystemCommandRequest enables or disables a system by name
	// Trigger: Front end debug keys
	// Consumer: Systems matching SystemName | Payload: *MetaSystemCommandPayload
	EventMetaSystemCommandRequest

	// === Input Event ===

	// EventShipInput updates a ship's axis values
	// Trigger: Front end input sampling
	// Consumer: ShipSystem, FloatingSystem | Payload: *ShipInputPayload
	EventShipInput

	// EventShipFireRequest requests a main gun shot on the ship's next update
	// Trigger: Front end FireCannons action
	// Consumer: ShipSystem, FloatingSystem | Payload: *ShipFireRequestPayload
	EventShipFireRequest

	// === Notification Event ===

	// EventShipFired signals a projectile was spawned by a ship
	// Trigger: ShipSystem.Fire
	// Consumer: Telemetry, Recorder | Payload: *ShipFiredPayload
	EventShipFired

	// EventShipHealthChanged signals an accepted damage call
	// Trigger: CombatSystem.TakeDamage
	// Consumer: Telemetry, Recorder, UI | Payload: *ShipHealthChangedPayload
	EventShipHealthChanged

	// EventShipDestroyed signals a ship was removed at zero health
	// Trigger: ShipSystem death check
	// Consumer: Telemetry, Recorder | Payload: *ShipDestroyedPayload
	EventShipDestroyed

	// EventProjectileHit signals a projectile resolved a collision and was destroyed
	// Trigger: ProjectileSystem.OnHit
	// Consumer: Telemetry, Recorder | Payload: *ProjectileHitPayload
	EventProjectileHit

	// EventProjectileExpired signals a projectile reached its lifespan without hitting
	// Trigger: ProjectileSystem lifespan task
	// Consumer: Telemetry, Recorder | Payload: *ProjectileExpiredPayload
	EventProjectileExpired

	// EventImpulseApplied signals an impulse delivered to an entity
	// Trigger: BodySystem.ApplyImpulse
	// Consumer: Telemetry, Recorder | Payload: *ImpulseAppliedPayload
	EventImpulseApplied

	// EventFloatingFireIgnored signals a fire press on a pawn without a gun
	// Trigger: FloatingSystem
	// Consumer: Telemetry | Payload: *ShipFireRequestPayload
	EventFloatingFireIgnored
)

// GameEvent represents a single game event with metadata
type GameEvent struct {
	Type    EventType
	Payload any
	Frame   int64
}
