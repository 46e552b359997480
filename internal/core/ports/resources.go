package ports

import "context"

// OwnedEntity is any record owned by exactly one principal.
type OwnedEntity interface {
	EntityID() int64
	EntityOwner() int64
}

// ResourceRepository is the authoritative store for one entity kind.
// Implementations map sql.ErrNoRows to ErrNotFound; every other fault
// propagates as a hard error.
type ResourceRepository[T OwnedEntity] interface {
	FindAllByOwner(ctx context.Context, ownerID int64) ([]T, error)
	FindByID(ctx context.Context, id int64) (T, error)
	Create(ctx context.Context, e T) (T, error)
	Update(ctx context.Context, e T) (T, error)
	Delete(ctx context.Context, id int64) error
}
