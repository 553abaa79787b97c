package ports

import "context"

// CrudRepository is the persistence contract shared by all plain catalog
// entities (animals, habitats, avis, horaires, contacts, passages, comptes
// rendus, services). Lookups return domain.ErrNotFound on a miss; Delete
// returns it when no row matched.
type CrudRepository[T any] interface {
	Create(ctx context.Context, entity *T) error
	FindByID(ctx context.Context, id uint) (*T, error)
	FindAll(ctx context.Context) ([]T, error)
	Update(ctx context.Context, entity *T) error
	Delete(ctx context.Context, id uint) error
}
