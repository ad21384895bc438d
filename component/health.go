package component

// HealthComponent is the hull integrity of a ship
// Health only decreases after creation; 0 marks the entity for destruction on its next tick
type HealthComponent struct {
	Health uint32
	Max    uint32
}
