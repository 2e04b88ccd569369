// Package memory provides process-local repository implementations.
package memory

import "sync"

// Store is a keyed collection that remembers insertion order.
// Values are copied on the way in and on the way out, so callers never
// hold a live handle into the collection.
type Store[T any] struct {
	mu    sync.RWMutex
	items map[string]T
	order []string
	clone func(T) T
}

// NewStore creates an empty store. clone deep-copies values that carry
// reference types; nil means a plain value copy is enough.
func NewStore[T any](clone func(T) T) *Store[T] {
	if clone == nil {
		clone = func(v T) T { return v }
	}
	return &Store[T]{
		items: make(map[string]T),
		clone: clone,
	}
}

// Get returns a copy of the value stored under id.
func (s *Store[T]) Get(id string) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.items[id]
	if !ok {
		var zero T
		return zero, false
	}
	return s.clone(v), true
}

// Put inserts or overwrites the value under id. An overwritten id keeps its position.
func (s *Store[T]) Put(id string, v T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[id]; !ok {
		s.order = append(s.order, id)
	}
	s.items[id] = s.clone(v)
}

// Update runs fn against the stored value and saves the result.
// It returns false without calling fn when id is absent.
func (s *Store[T]) Update(id string, fn func(*T)) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.items[id]
	if !ok {
		var zero T
		return zero, false
	}
	v = s.clone(v)
	fn(&v)
	s.items[id] = v
	return s.clone(v), true
}

// Delete removes id and reports whether it was present.
func (s *Store[T]) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[id]; !ok {
		return false
	}
	delete(s.items, id)
	for i, key := range s.order {
		if key == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

// Values returns copies of all values in insertion order.
func (s *Store[T]) Values() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]T, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.clone(s.items[id]))
	}
	return out
}

// Len returns the number of stored values.
func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Reset drops every value.
func (s *Store[T]) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = make(map[string]T)
	s.order = nil
}
