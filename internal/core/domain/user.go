package domain

import (
	"errors"
	"time"
)

// Role is the coarse authorization tier attached to every account.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// IsValid reports whether the role is one of the known tiers.
func (r Role) IsValid() bool {
	return r == RoleUser || r == RoleAdmin
}

var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")
var ErrEmailExists = errors.New("email already registered")
var ErrUsernameExists = errors.New("username already taken")
var ErrInvalidCredentials = errors.New("invalid credentials")

// User models an account in the system. Email and username are each unique
// among non-deleted accounts; DeletedAt marks a soft delete — the record
// persists but is excluded from normal lookups.
type User struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	Username     string     `json:"username"`
	PasswordHash string     `json:"-"`
	Role         Role       `json:"role"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	DeletedAt    *time.Time `json:"deleted_at,omitempty"`
}

// Identity is the request-scoped authenticated principal. It is constructed
// fresh for every request by the identity middleware and discarded at request
// end; it is never shared across requests.
type Identity struct {
	Subject string
	Role    Role
}
