package ecs

import "github.com/younwookim/platformer/internal/domain/entity"

// Store is an insertion-ordered arena keyed by entity ID. Iteration order is
// the order of Add, so every frame visits entities in the same sequence.
type Store[T any] struct {
	ids   []entity.EntityID
	items map[entity.EntityID]T
}

// NewStore creates an empty store.
func NewStore[T any]() *Store[T] {
	return &Store[T]{items: make(map[entity.EntityID]T)}
}

// Add inserts or replaces the value for id.
func (s *Store[T]) Add(id entity.EntityID, v T) {
	if _, ok := s.items[id]; !ok {
		s.ids = append(s.ids, id)
	}
	s.items[id] = v
}

// Get returns the value for id.
func (s *Store[T]) Get(id entity.EntityID) (T, bool) {
	v, ok := s.items[id]
	return v, ok
}

// Has reports whether id is stored.
func (s *Store[T]) Has(id entity.EntityID) bool {
	_, ok := s.items[id]
	return ok
}

// Remove deletes id, keeping the order of the rest.
func (s *Store[T]) Remove(id entity.EntityID) {
	if _, ok := s.items[id]; !ok {
		return
	}
	delete(s.items, id)
	for i, v := range s.ids {
		if v == id {
			s.ids = append(s.ids[:i], s.ids[i+1:]...)
			break
		}
	}
}

// Len returns the number of stored values.
func (s *Store[T]) Len() int {
	return len(s.ids)
}

// Each calls fn for every value in order until fn returns false.
// fn must not add or remove entries.
func (s *Store[T]) Each(fn func(id entity.EntityID, v T) bool) {
	for _, id := range s.ids {
		if !fn(id, s.items[id]) {
			return
		}
	}
}

// Values returns the values in order.
func (s *Store[T]) Values() []T {
	out := make([]T, 0, len(s.ids))
	for _, id := range s.ids {
		out = append(out, s.items[id])
	}
	return out
}
