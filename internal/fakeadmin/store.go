package fakeadmin

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

var (
	errEmptyID = errors.New("id cannot be empty")
	errExists  = errors.New("already exists")
	errMissing = errors.New("not found")
)

// store keeps values by id in memory, listing them in id order.
type store[T any] struct {
	mu    sync.RWMutex
	items map[string]T
	kind  string
}

func newStore[T any](kind string) *store[T] {
	return &store[T]{items: make(map[string]T), kind: kind}
}

func (s *store[T]) create(id string, v T) error {
	if id == "" {
		return fmt.Errorf("%s %w", s.kind, errEmptyID)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[id]; ok {
		return fmt.Errorf("%s with ID %s %w", s.kind, id, errExists)
	}
	s.items[id] = v
	return nil
}

func (s *store[T]) get(id string) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.items[id]
	return v, ok
}

func (s *store[T]) update(id string, v T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[id]; !ok {
		return fmt.Errorf("%s %w: %s", s.kind, errMissing, id)
	}
	s.items[id] = v
	return nil
}

func (s *store[T]) delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[id]; !ok {
		return false
	}
	delete(s.items, id)
	return true
}

func (s *store[T]) list(keep func(T) bool) []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]string, 0, len(s.items))
	for id := range s.items {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	out := make([]T, 0, len(ids))
	for _, id := range ids {
		if v := s.items[id]; keep == nil || keep(v) {
			out = append(out, v)
		}
	}
	return out
}
