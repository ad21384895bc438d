package component

// ColliderComponent gives an entity a collision sphere
type ColliderComponent struct {
	Radius float64

	// Blocking colliders stop other movers; non-blocking ones are ignored by sweeps
	Blocking bool
}
