package component

// ShipComponent tags a controllable ship hull and carries its motion tuning
type ShipComponent struct {
	// MoveSpeed is translation speed in units/sec at full forward input
	MoveSpeed float64

	// TurnRate is yaw speed in degrees/sec at full turn input
	TurnRate float64
}

// ShipInputComponent holds the latest sampled control state for a ship
type ShipInputComponent struct {
	// Forward and Turn are axis values in [-1, 1], kept until replaced
	Forward float64
	Turn    float64

	// FirePressed is a pending fire press, consumed by the next ship update
	FirePressed bool
}
