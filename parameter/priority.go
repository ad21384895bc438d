package parameter

// System Execution Priorities (lower runs first)
const (
	PriorityShip       = 10 // Death check, motion, fire
	PriorityFloating   = 20 // Simple pawn variant
	PriorityProjectile = 30 // After ships so fresh shots travel this tick
	PriorityCombat     = 35 // Damage is applied synchronously; no per-tick work
	PriorityBody       = 40 // After projectiles, integrates impulses applied this tick
	PriorityRecorder   = 900
	PriorityTelemetry  = 1000 // After all others, telemetry collection
)
