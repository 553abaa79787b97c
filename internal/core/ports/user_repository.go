package ports

import (
	"context"

	"github.com/arcadia-zoo/zoo-api/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
// FindByToken must match the stored token exactly (case-sensitive, no
// transformation); both lookups return domain.ErrUserNotFound on a miss.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByToken(ctx context.Context, token string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id uint) error
}
