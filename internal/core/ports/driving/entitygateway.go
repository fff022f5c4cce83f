package driving

import (
	"context"

	"github.com/Itterum/ts-app/internal/core/domain"
)

// EntityGateway exposes entity operations to callers. Every failure is
// reported as a *domain.OperationError naming the attempted operation.
type EntityGateway[T domain.Entity] interface {
	// Create stores a new entity.
	Create(ctx context.Context, entity T) (domain.Confirmation, error)

	// Read retrieves an entity by id. Absence is not a failure.
	Read(ctx context.Context, id string) (T, bool, error)

	// Update overlays patch onto an existing entity.
	Update(ctx context.Context, id string, patch domain.Patch) (domain.Confirmation, error)

	// Delete removes an entity.
	Delete(ctx context.Context, id string) (domain.Confirmation, error)

	// List returns all entities ordered by id.
	List(ctx context.Context) ([]T, error)
}
