package auth

import (
	"crypto/rand"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const defaultTTL = time.Hour

// ErrTokenInvalid covers every validation failure: bad signature, expired,
// malformed encoding, or wrong signing method. Callers get no finer detail.
var ErrTokenInvalid = errors.New("invalid token")

// TokenService issues and validates stateless HS256 bearer tokens. Validity
// is purely a function of the signature and the embedded expiry, so a token
// cannot be revoked before it expires.
//
// The signing secret lives for the lifetime of the service instance. When no
// secret is configured one is generated at construction, which means tokens
// do not survive a process restart; supply JWT_SECRET to keep them valid
// across restarts.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenService builds a TokenService with the given secret and token
// lifetime. An empty secret is replaced with 32 random bytes; a failure to
// read entropy is fatal for startup. A non-positive ttl falls back to 1 hour.
func NewTokenService(secret []byte, ttl time.Duration) (*TokenService, error) {
	if len(secret) == 0 {
		secret = make([]byte, 32)
		if _, err := rand.Read(secret); err != nil {
			return nil, fmt.Errorf("generate signing secret: %w", err)
		}
	}
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &TokenService{secret: secret, ttl: ttl}, nil
}

// Issue signs a token for the subject with issued-at now and expiry now+ttl.
func (s *TokenService) Issue(subject string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Validate parses the token and returns the embedded subject. Any failure —
// signature mismatch, elapsed expiry, malformed input — yields ErrTokenInvalid.
// Expiry is strict wall-clock; no leeway is granted.
func (s *TokenService) Validate(token string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid || claims.Subject == "" {
		return "", ErrTokenInvalid
	}
	return claims.Subject, nil
}

// IsValidFor reports whether the token validates and was issued for exactly
// the expected subject (case-sensitive comparison).
func (s *TokenService) IsValidFor(token, subject string) bool {
	got, err := s.Validate(token)
	return err == nil && got == subject
}
