package services

import (
	"context"

	"github.com/Itterum/ts-app/internal/core/domain"
	"github.com/Itterum/ts-app/internal/core/ports/driven"
	"github.com/Itterum/ts-app/internal/core/ports/driving"
	"github.com/Itterum/ts-app/internal/logger"
)

// Ensure Gateway implements the interface.
var _ driving.EntityGateway[domain.User] = (*Gateway[domain.User])(nil)

// Gateway forwards entity operations to a store. Store failures never
// escape unwrapped: each is returned as a *domain.OperationError.
type Gateway[T domain.Entity] struct {
	store driven.EntityStore[T]
	log   logger.Scoped
}

// NewGateway creates a gateway over store. kind names the entity type in logs.
func NewGateway[T domain.Entity](kind string, store driven.EntityStore[T]) *Gateway[T] {
	return &Gateway[T]{
		store: store,
		log:   logger.For(kind),
	}
}

// Create stores a new entity.
func (g *Gateway[T]) Create(ctx context.Context, entity T) (domain.Confirmation, error) {
	if g.store == nil {
		return domain.Confirmation{}, g.fail(domain.OpCreate, domain.ErrNotConfigured)
	}
	conf, err := g.store.Create(ctx, entity)
	if err != nil {
		return domain.Confirmation{}, g.fail(domain.OpCreate, err)
	}
	g.log.Debug("created %s", conf.ID)
	return conf, nil
}

// Read retrieves an entity by id.
func (g *Gateway[T]) Read(ctx context.Context, id string) (T, bool, error) {
	var zero T
	if g.store == nil {
		return zero, false, g.fail(domain.OpRead, domain.ErrNotConfigured)
	}
	entity, ok, err := g.store.Read(ctx, id)
	if err != nil {
		return zero, false, g.fail(domain.OpRead, err)
	}
	g.log.Debug("read %s (found=%t)", id, ok)
	return entity, ok, nil
}

// Update overlays patch onto an existing entity.
func (g *Gateway[T]) Update(ctx context.Context, id string, patch domain.Patch) (domain.Confirmation, error) {
	if g.store == nil {
		return domain.Confirmation{}, g.fail(domain.OpUpdate, domain.ErrNotConfigured)
	}
	conf, err := g.store.Update(ctx, id, patch)
	if err != nil {
		return domain.Confirmation{}, g.fail(domain.OpUpdate, err)
	}
	g.log.Debug("updated %s (%d fields)", id, len(patch))
	return conf, nil
}

// Delete removes an entity.
func (g *Gateway[T]) Delete(ctx context.Context, id string) (domain.Confirmation, error) {
	if g.store == nil {
		return domain.Confirmation{}, g.fail(domain.OpDelete, domain.ErrNotConfigured)
	}
	conf, err := g.store.Delete(ctx, id)
	if err != nil {
		return domain.Confirmation{}, g.fail(domain.OpDelete, err)
	}
	g.log.Debug("deleted %s", id)
	return conf, nil
}

// List returns all entities ordered by id.
func (g *Gateway[T]) List(ctx context.Context) ([]T, error) {
	if g.store == nil {
		return nil, g.fail(domain.OpList, domain.ErrNotConfigured)
	}
	entities, err := g.store.List(ctx)
	if err != nil {
		return nil, g.fail(domain.OpList, err)
	}
	g.log.Debug("listed %d", len(entities))
	return entities, nil
}

func (g *Gateway[T]) fail(op domain.Operation, err error) error {
	opErr := domain.NewOperationError(op, err)
	g.log.Warn("%s", opErr.Error())
	return opErr
}
