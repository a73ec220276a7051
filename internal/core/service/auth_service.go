package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/divami/cadence/internal/core/auth"
	"github.com/divami/cadence/internal/core/domain"
	"github.com/divami/cadence/internal/core/ports"
)

// AuthService implements registration and login. Each call is atomic and
// independent; the only persisted side effect is the account row created by
// Register.
type AuthService struct {
	users  ports.UserRepository
	tokens *auth.TokenService
	logger zerolog.Logger
}

func NewAuthService(users ports.UserRepository, tokens *auth.TokenService, logger zerolog.Logger) *AuthService {
	return &AuthService{users: users, tokens: tokens, logger: logger}
}

// Register creates an account with role USER and issues a token for it.
// The email and username pre-checks give precise conflict errors; the unique
// indexes in the repository are what actually guarantee uniqueness under
// concurrent registration.
func (s *AuthService) Register(ctx context.Context, name, email, username, password string) (*ports.AuthResult, error) {
	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return nil, domain.ErrEmailExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	if _, err := s.users.FindByUsername(ctx, username); err == nil {
		return nil, domain.ErrUsernameExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Name:         name,
		Email:        email,
		Username:     username,
		PasswordHash: hash,
		Role:         domain.RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	token, err := s.tokens.Issue(created.Username)
	if err != nil {
		s.logger.Error().Err(err).Str("username", created.Username).Msg("token issuance failed after registration")
		return nil, err
	}

	s.logger.Info().Str("username", created.Username).Msg("user registered")
	return &ports.AuthResult{Token: token, User: created}, nil
}

// Login resolves the identifier as a username first, then as an email, and
// verifies the password against the stored hash. Both an unknown identifier
// and a wrong password surface as the same ErrInvalidCredentials so the
// response does not reveal which part failed.
func (s *AuthService) Login(ctx context.Context, identifier, password string) (*ports.AuthResult, error) {
	if strings.TrimSpace(identifier) == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByUsername(ctx, identifier)
	if errors.Is(err, domain.ErrUserNotFound) {
		user, err = s.users.FindByEmail(ctx, identifier)
	}
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(password, user.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.Username)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("username", user.Username).Msg("user logged in")
	return &ports.AuthResult{Token: token, User: user}, nil
}
