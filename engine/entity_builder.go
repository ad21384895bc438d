package engine

import "github.com/lixenwraith/minigold/core"

// EntityBuilder provides a fluent, type-safe interface for constructing entities with components
// The entity ID is reserved upfront; components are written as they are added
//
// Example usage:
//
//	ship := engine.With(
//		engine.With(w.NewEntity(), w.Components.Transform, transform),
//		w.Components.Health, health,
//	).Build()
type EntityBuilder struct {
	world  *World
	entity core.Entity
	built  bool
}

// NewEntity creates a new EntityBuilder with a reserved entity ID
func (w *World) NewEntity() *EntityBuilder {
	return &EntityBuilder{
		world:  w,
		entity: w.CreateEntity(),
	}
}

// With adds a component of type T to the entity being built
// Panics if called after Build()
func With[T any](eb *EntityBuilder, store *Store[T], component T) *EntityBuilder {
	if eb.built {
		panic("entity already built - cannot add components after Build()")
	}
	store.SetComponent(eb.entity, component)
	return eb
}

// Entity returns the reserved ID without finalizing
func (eb *EntityBuilder) Entity() core.Entity {
	return eb.entity
}

// Build finalizes entity construction and returns the entity ID
func (eb *EntityBuilder) Build() core.Entity {
	eb.built = true
	return eb.entity
}
