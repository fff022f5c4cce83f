// Package memory provides map-backed implementations of driven port
// interfaces. Contents live only as long as the process.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/Itterum/ts-app/internal/core/domain"
	"github.com/Itterum/ts-app/internal/core/ports/driven"
)

// Ensure EntityStore implements the interface.
var _ driven.EntityStore[domain.User] = (*EntityStore[domain.User])(nil)

// EntityStore is an in-memory implementation of driven.EntityStore.
type EntityStore[T domain.Entity] struct {
	mu       sync.RWMutex
	entities map[string]T
}

// NewEntityStore creates a new, empty in-memory entity store.
func NewEntityStore[T domain.Entity]() *EntityStore[T] {
	return &EntityStore[T]{
		entities: make(map[string]T),
	}
}

// Create stores or overwrites an entity.
func (s *EntityStore[T]) Create(_ context.Context, entity T) (domain.Confirmation, error) {
	id := entity.GetID()
	if id == "" {
		return domain.Confirmation{}, domain.ErrMissingIdentifier
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.entities[id] = entity
	return domain.Confirmation{Operation: domain.OpCreate, ID: id}, nil
}

// Read retrieves an entity by ID.
func (s *EntityStore[T]) Read(_ context.Context, id string) (T, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entity, ok := s.entities[id]
	return entity, ok, nil
}

// Update merges patch into the stored entity.
func (s *EntityStore[T]) Update(_ context.Context, id string, patch domain.Patch) (domain.Confirmation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.entities[id]
	if !ok {
		return domain.Confirmation{}, &domain.NotFoundError{ID: id}
	}

	merged, err := domain.Merge(current, patch)
	if err != nil {
		return domain.Confirmation{}, err
	}
	s.entities[id] = merged
	return domain.Confirmation{Operation: domain.OpUpdate, ID: id}, nil
}

// Delete removes an entity.
func (s *EntityStore[T]) Delete(_ context.Context, id string) (domain.Confirmation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.entities[id]; !ok {
		return domain.Confirmation{}, &domain.NotFoundError{ID: id}
	}
	delete(s.entities, id)
	return domain.Confirmation{Operation: domain.OpDelete, ID: id}, nil
}

// List returns all stored entities sorted by ID.
func (s *EntityStore[T]) List(_ context.Context) ([]T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.entities))
	for id := range s.entities {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	result := make([]T, 0, len(ids))
	for _, id := range ids {
		result = append(result, s.entities[id])
	}
	return result, nil
}
