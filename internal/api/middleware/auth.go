package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/divami/cadence/internal/api/metrics"
	"github.com/divami/cadence/internal/core/auth"
	"github.com/divami/cadence/internal/core/domain"
	"github.com/divami/cadence/internal/core/ports"
)

// identityKey is where the request-scoped identity lives in the echo context.
const identityKey = "identity"

// IdentityConfig configures the identity middleware.
type IdentityConfig struct {
	// Skipper bypasses identity resolution entirely for public paths
	// (login and register never carry a token worth resolving).
	Skipper func(c echo.Context) bool
	Tokens  *auth.TokenService
	Users   ports.UserRepository
}

// Identity resolves the bearer token, if any, into a request-scoped identity.
//
// A missing or malformed Authorization header is not an error here: the
// request simply proceeds anonymous and the route policy decides whether that
// is acceptable. An invalid or expired token is treated the same way. The one
// hard failure is a valid token whose account no longer exists — the token
// outlived a deletion — which is rejected with 401 immediately.
func Identity(cfg IdentityConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if cfg.Skipper != nil && cfg.Skipper(c) {
				return next(c)
			}

			token, ok := bearerToken(c.Request().Header.Get("Authorization"))
			if !ok {
				return next(c)
			}

			subject, err := cfg.Tokens.Validate(token)
			if err != nil {
				metrics.TokenValidationsTotal.WithLabelValues("invalid").Inc()
				return next(c)
			}

			user, err := cfg.Users.FindByUsername(c.Request().Context(), subject)
			if err != nil {
				if errors.Is(err, domain.ErrUserNotFound) {
					metrics.TokenValidationsTotal.WithLabelValues("orphaned").Inc()
					return echo.NewHTTPError(http.StatusUnauthorized, "account no longer exists")
				}
				return err
			}

			// A mangled role in the store must not produce a half-trusted
			// identity; the request proceeds anonymous instead.
			if !user.Role.IsValid() {
				metrics.TokenValidationsTotal.WithLabelValues("invalid").Inc()
				return next(c)
			}

			metrics.TokenValidationsTotal.WithLabelValues("valid").Inc()
			c.Set(identityKey, domain.Identity{Subject: user.Username, Role: user.Role})
			return next(c)
		}
	}
}

// IdentityFromContext returns the identity attached by the Identity
// middleware, or ok=false when the request is anonymous.
func IdentityFromContext(c echo.Context) (domain.Identity, bool) {
	identity, ok := c.Get(identityKey).(domain.Identity)
	return identity, ok
}

// bearerToken extracts the token from an "Authorization: Bearer <token>"
// header. Anything else — empty header, other scheme, missing token — is
// reported as absent.
func bearerToken(header string) (string, bool) {
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}
