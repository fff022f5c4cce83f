package driven

import (
	"context"

	"github.com/Itterum/ts-app/internal/core/domain"
)

// EntityStore is the authoritative keyed storage for one entity type.
// A failing operation leaves the stored entities unchanged.
type EntityStore[T domain.Entity] interface {
	// Create stores the entity under its id, overwriting any previous value.
	// Returns domain.ErrMissingIdentifier if the id is empty.
	Create(ctx context.Context, entity T) (domain.Confirmation, error)

	// Read retrieves an entity by id. A missing entity is reported by the
	// boolean, not by an error.
	Read(ctx context.Context, id string) (T, bool, error)

	// Update overlays patch onto the stored entity.
	// Returns a *domain.NotFoundError if nothing is stored under id.
	Update(ctx context.Context, id string, patch domain.Patch) (domain.Confirmation, error)

	// Delete removes an entity.
	// Returns a *domain.NotFoundError if nothing is stored under id.
	Delete(ctx context.Context, id string) (domain.Confirmation, error)

	// List returns all stored entities ordered by id.
	List(ctx context.Context) ([]T, error)
}
