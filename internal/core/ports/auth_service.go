package ports

import (
	"context"

	"github.com/divami/cadence/internal/core/domain"
)

// AuthResult is returned by both register and login: a bearer token plus the
// public view of the account it was issued for.
type AuthResult struct {
	Token string
	User  *domain.User
}

// AuthService orchestrates credential verification and token issuance.
type AuthService interface {
	Register(ctx context.Context, name, email, username, password string) (*AuthResult, error)
	Login(ctx context.Context, identifier, password string) (*AuthResult, error)
}
