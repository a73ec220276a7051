package ports

import (
	"context"

	"github.com/divami/cadence/internal/core/domain"
)

// UpdateUserInput carries the mutable account fields.
type UpdateUserInput struct {
	Name  string
	Email string
}

// UserService exposes account CRUD. Accounts are only created through
// AuthService.Register so the password always goes through the hasher.
type UserService interface {
	ListUsers(ctx context.Context) ([]domain.User, error)
	GetUser(ctx context.Context, id string) (*domain.User, error)
	UpdateUser(ctx context.Context, id string, input UpdateUserInput) (*domain.User, error)
	DeleteUser(ctx context.Context, id string) error
}
