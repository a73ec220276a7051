package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/divami/cadence/internal/core/auth"
	"github.com/divami/cadence/internal/core/domain"
)

func newTestAuthService(t *testing.T, users *stubUserRepository) *AuthService {
	t.Helper()
	tokens, err := auth.NewTokenService([]byte("test-secret"), time.Hour)
	if err != nil {
		t.Fatalf("NewTokenService returned error: %v", err)
	}
	return NewAuthService(users, tokens, zerolog.Nop())
}

func TestRegisterSuccess(t *testing.T) {
	var stored *domain.User
	users := &stubUserRepository{
		createFn: func(_ context.Context, user *domain.User) (*domain.User, error) {
			user.ID = "u1"
			stored = user
			return user, nil
		},
	}
	svc := newTestAuthService(t, users)

	result, err := svc.Register(context.Background(), "Alice", "alice@example.com", "alice", "s3cret-pass")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	if result.Token == "" {
		t.Error("expected a token to be issued")
	}
	if result.User.Role != domain.RoleUser {
		t.Errorf("role = %q, want %q", result.User.Role, domain.RoleUser)
	}
	if stored == nil {
		t.Fatal("expected the user to be persisted")
	}
	if stored.PasswordHash == "s3cret-pass" {
		t.Error("password must be stored hashed, not in plaintext")
	}
	if !auth.CheckPassword("s3cret-pass", stored.PasswordHash) {
		t.Error("stored hash should verify against the original password")
	}
	if stored.DeletedAt != nil {
		t.Error("new accounts must not carry a deletion stamp")
	}
}

func TestRegisterEmailConflict(t *testing.T) {
	users := &stubUserRepository{
		findByEmailFn: func(_ context.Context, email string) (*domain.User, error) {
			return &domain.User{ID: "u1", Email: email}, nil
		},
	}
	svc := newTestAuthService(t, users)

	_, err := svc.Register(context.Background(), "Bob", "taken@example.com", "bob", "s3cret-pass")
	if !errors.Is(err, domain.ErrEmailExists) {
		t.Errorf("err = %v, want ErrEmailExists", err)
	}
}

func TestRegisterEmailConflictWinsOverUsername(t *testing.T) {
	// Both the email and the username collide; the email check runs first.
	users := &stubUserRepository{
		findByEmailFn: func(_ context.Context, email string) (*domain.User, error) {
			return &domain.User{ID: "u1", Email: email}, nil
		},
		findByUsernameFn: func(_ context.Context, username string) (*domain.User, error) {
			return &domain.User{ID: "u2", Username: username}, nil
		},
	}
	svc := newTestAuthService(t, users)

	_, err := svc.Register(context.Background(), "Bob", "taken@example.com", "taken", "s3cret-pass")
	if !errors.Is(err, domain.ErrEmailExists) {
		t.Errorf("err = %v, want ErrEmailExists", err)
	}
}

func TestRegisterUsernameConflict(t *testing.T) {
	users := &stubUserRepository{
		findByUsernameFn: func(_ context.Context, username string) (*domain.User, error) {
			return &domain.User{ID: "u1", Username: username}, nil
		},
	}
	svc := newTestAuthService(t, users)

	_, err := svc.Register(context.Background(), "Bob", "bob@example.com", "taken", "s3cret-pass")
	if !errors.Is(err, domain.ErrUsernameExists) {
		t.Errorf("err = %v, want ErrUsernameExists", err)
	}
}

func TestRegisterPropagatesRepositoryFailure(t *testing.T) {
	repoErr := errors.New("connection reset")
	users := &stubUserRepository{
		findByEmailFn: func(_ context.Context, _ string) (*domain.User, error) {
			return nil, repoErr
		},
	}
	svc := newTestAuthService(t, users)

	_, err := svc.Register(context.Background(), "Bob", "bob@example.com", "bob", "s3cret-pass")
	if !errors.Is(err, repoErr) {
		t.Errorf("err = %v, want the repository failure", err)
	}
}

func loginFixture(t *testing.T) *stubUserRepository {
	t.Helper()
	hash, err := auth.HashPassword("correct-pass")
	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}
	account := &domain.User{
		ID:           "u1",
		Email:        "alice@example.com",
		Username:     "alice",
		PasswordHash: hash,
		Role:         domain.RoleUser,
	}
	return &stubUserRepository{
		findByUsernameFn: func(_ context.Context, username string) (*domain.User, error) {
			if username == account.Username {
				return account, nil
			}
			return nil, domain.ErrUserNotFound
		},
		findByEmailFn: func(_ context.Context, email string) (*domain.User, error) {
			if email == account.Email {
				return account, nil
			}
			return nil, domain.ErrUserNotFound
		},
	}
}

func TestLoginByUsername(t *testing.T) {
	svc := newTestAuthService(t, loginFixture(t))

	result, err := svc.Login(context.Background(), "alice", "correct-pass")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if result.Token == "" {
		t.Error("expected a token to be issued")
	}
	if result.User.Username != "alice" {
		t.Errorf("username = %q, want %q", result.User.Username, "alice")
	}
}

func TestLoginByEmail(t *testing.T) {
	svc := newTestAuthService(t, loginFixture(t))

	result, err := svc.Login(context.Background(), "alice@example.com", "correct-pass")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if result.User.ID != "u1" {
		t.Errorf("resolved user %q, want u1", result.User.ID)
	}
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	svc := newTestAuthService(t, loginFixture(t))

	_, wrongPass := svc.Login(context.Background(), "alice", "wrong-pass")
	_, unknownUser := svc.Login(context.Background(), "nobody", "correct-pass")

	if !errors.Is(wrongPass, domain.ErrInvalidCredentials) {
		t.Errorf("wrong password: err = %v, want ErrInvalidCredentials", wrongPass)
	}
	if !errors.Is(unknownUser, domain.ErrInvalidCredentials) {
		t.Errorf("unknown identifier: err = %v, want ErrInvalidCredentials", unknownUser)
	}
	if wrongPass.Error() != unknownUser.Error() {
		t.Error("both failure modes must produce the same error message")
	}
}

func TestLoginRejectsEmptyInputs(t *testing.T) {
	svc := newTestAuthService(t, loginFixture(t))

	for _, tc := range []struct{ identifier, password string }{
		{"", "correct-pass"},
		{"alice", ""},
		{"   ", "correct-pass"},
	} {
		if _, err := svc.Login(context.Background(), tc.identifier, tc.password); !errors.Is(err, domain.ErrInvalidCredentials) {
			t.Errorf("Login(%q, %q) = %v, want ErrInvalidCredentials", tc.identifier, tc.password, err)
		}
	}
}
