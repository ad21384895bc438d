package engine

import (
	"slices"
	"sync"

	"github.com/lixenwraith/minigold/core"
)

// AnyStore is the type-erased view World uses to destroy entities and reset
type AnyStore interface {
	RemoveEntity(e core.Entity)
	HasEntity(e core.Entity) bool
	CountEntities() int
	ClearAllComponents()
}

var _ AnyStore = (*Store[struct{}])(nil)

// Store holds one component type in dense parallel slices
// Iteration order is insertion order, which keeps system updates deterministic
type Store[T any] struct {
	mu     sync.RWMutex
	index  map[core.Entity]int
	owners []core.Entity
	values []T
}

func NewStore[T any]() *Store[T] {
	return &Store[T]{index: make(map[core.Entity]int)}
}

// SetComponent inserts or overwrites the component of e
func (s *Store[T]) SetComponent(e core.Entity, val T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i, ok := s.index[e]; ok {
		s.values[i] = val
		return
	}
	s.index[e] = len(s.owners)
	s.owners = append(s.owners, e)
	s.values = append(s.values, val)
}

// GetComponent returns a copy of the component of e
func (s *Store[T]) GetComponent(e core.Entity) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.index[e]
	if !ok {
		var zero T
		return zero, false
	}
	return s.values[i], true
}

func (s *Store[T]) RemoveEntity(e core.Entity) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[e]
	if !ok {
		return
	}
	delete(s.index, e)
	s.owners = slices.Delete(s.owners, i, i+1)
	s.values = slices.Delete(s.values, i, i+1)
	for j := i; j < len(s.owners); j++ {
		s.index[s.owners[j]] = j
	}
}

func (s *Store[T]) HasEntity(e core.Entity) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.index[e]
	return ok
}

// GetAllEntities returns a snapshot of owners, safe to iterate while mutating the store
func (s *Store[T]) GetAllEntities() []core.Entity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.owners)
}

func (s *Store[T]) CountEntities() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.owners)
}

func (s *Store[T]) ClearAllComponents() {
	s.mu.Lock()
	defer s.mu.Unlock()
	clear(s.index)
	s.owners = nil
	s.values = nil
}
