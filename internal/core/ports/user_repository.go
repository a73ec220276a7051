package ports

import (
	"context"

	"github.com/divami/cadence/internal/core/domain"
)

// UserRepository defines account persistence. Implementations must exclude
// soft-deleted rows from every lookup and enforce email/username uniqueness
// atomically (unique index), since the service-level pre-checks alone cannot
// prevent a concurrent duplicate insert.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindAll(ctx context.Context) ([]domain.User, error)
	Update(ctx context.Context, user *domain.User) (*domain.User, error)
	SoftDelete(ctx context.Context, id string) error
}
