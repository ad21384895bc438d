package core

// Entity is an opaque handle into the world, 0 is never a live entity
type Entity uint64

// NoEntity is the null handle, used where a collision or owner is absent
const NoEntity Entity = 0

// Valid reports whether the handle can refer to a live entity
func (e Entity) Valid() bool {
	return e != NoEntity
}

// TaskID identifies a deferred callback in the simulation scheduler, 0 means none
type TaskID uint64
