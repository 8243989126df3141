package engine

import "github.com/lixenwraith/spacegame/core"

// Store is a typed sparse set for component type T
// sparse maps an entity index to dense position+1; dense and entities stay packed
type Store[T any] struct {
	sparse   []int32
	dense    []T
	entities []core.Entity
}

// NewStore creates a new component store for type T
func NewStore[T any]() *Store[T] {
	return &Store[T]{
		dense:    make([]T, 0, 64),
		entities: make([]core.Entity, 0, 64),
	}
}

// slot returns the dense position of e, -1 when absent or stale
func (s *Store[T]) slot(e core.Entity) int {
	idx := int(e.Index())
	if idx >= len(s.sparse) {
		return -1
	}
	pos := int(s.sparse[idx]) - 1
	if pos < 0 || s.entities[pos] != e {
		return -1
	}
	return pos
}

// Set inserts or replaces the component of e
// A stale occupant of the same index is overwritten
func (s *Store[T]) Set(e core.Entity, val T) {
	idx := int(e.Index())
	if idx >= len(s.sparse) {
		grown := make([]int32, idx+1, max(idx+1, 2*len(s.sparse)))
		copy(grown, s.sparse)
		s.sparse = grown[:cap(grown)]
	}

	if pos := int(s.sparse[idx]) - 1; pos >= 0 {
		s.dense[pos] = val
		s.entities[pos] = e
		return
	}

	s.dense = append(s.dense, val)
	s.entities = append(s.entities, e)
	s.sparse[idx] = int32(len(s.dense))
}

// Get returns a copy of the component of e
func (s *Store[T]) Get(e core.Entity) (T, bool) {
	if pos := s.slot(e); pos >= 0 {
		return s.dense[pos], true
	}
	var zero T
	return zero, false
}

// Ptr returns a pointer into dense storage for in-place mutation
// Valid until the next Set or Remove on this store
func (s *Store[T]) Ptr(e core.Entity) (*T, bool) {
	if pos := s.slot(e); pos >= 0 {
		return &s.dense[pos], true
	}
	return nil, false
}

// Remove deletes the component of e by swapping the last element into its slot
func (s *Store[T]) Remove(e core.Entity) {
	pos := s.slot(e)
	if pos < 0 {
		return
	}

	last := len(s.dense) - 1
	if pos != last {
		s.dense[pos] = s.dense[last]
		s.entities[pos] = s.entities[last]
		s.sparse[s.entities[pos].Index()] = int32(pos + 1)
	}

	var zero T
	s.dense[last] = zero
	s.dense = s.dense[:last]
	s.entities = s.entities[:last]
	s.sparse[e.Index()] = 0
}

// Has checks if e holds this component
func (s *Store[T]) Has(e core.Entity) bool {
	return s.slot(e) >= 0
}

// All returns a copy of the entities holding this component
func (s *Store[T]) All() []core.Entity {
	out := make([]core.Entity, len(s.entities))
	copy(out, s.entities)
	return out
}

// Count returns number of entities with this component
func (s *Store[T]) Count() int {
	return len(s.entities)
}

// Clear removes every component, keeping allocated capacity
func (s *Store[T]) Clear() {
	clear(s.sparse)
	clear(s.dense)
	s.dense = s.dense[:0]
	s.entities = s.entities[:0]
}
