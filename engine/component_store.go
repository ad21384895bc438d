package engine

import (
	"github.com/lixenwraith/minigold/component"
)

// ComponentStore provides cached pointers to typed component stores
// Built once by NewWorld; pointers remain valid for the world's lifetime
type ComponentStore struct {
	// Spatial
	Transform *Store[component.TransformComponent]
	Kinetic   *Store[component.KineticComponent]
	Collider  *Store[component.ColliderComponent]
	Wall      *Store[component.WallComponent]

	// Ship
	Ship     *Store[component.ShipComponent]
	Input    *Store[component.ShipInputComponent]
	Weapon   *Store[component.WeaponComponent]
	Health   *Store[component.HealthComponent]
	Floating *Store[component.FloatingMovementComponent]

	// Ordnance and props
	Projectile *Store[component.ProjectileComponent]
	Body       *Store[component.BodyComponent]
}

// registerStore creates a store and tracks it for entity destruction
func registerStore[T any](w *World) *Store[T] {
	s := NewStore[T]()
	w.stores = append(w.stores, s)
	return s
}

func initComponentStores(w *World) {
	w.Components = ComponentStore{
		Transform: registerStore[component.TransformComponent](w),
		Kinetic:   registerStore[component.KineticComponent](w),
		Collider:  registerStore[component.ColliderComponent](w),
		Wall:      registerStore[component.WallComponent](w),

		Ship:     registerStore[component.ShipComponent](w),
		Input:    registerStore[component.ShipInputComponent](w),
		Weapon:   registerStore[component.WeaponComponent](w),
		Health:   registerStore[component.HealthComponent](w),
		Floating: registerStore[component.FloatingMovementComponent](w),

		Projectile: registerStore[component.ProjectileComponent](w),
		Body:       registerStore[component.BodyComponent](w),
	}
}
