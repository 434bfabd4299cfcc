package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/surojitbera2/inventory/internal/core/domain"
)

// UserContextKey is the echo context key the authenticated user is stored
// under.
const UserContextKey = "user"

// Authenticator resolves a bearer token to a stored identity.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*domain.User, error)
}

// Auth verifies the bearer token on every request and injects the resolved
// user into the context. Verification includes resolving the token subject
// against the user store, so a deleted account is rejected even while its
// token is still within the TTL.
func Auth(auth Authenticator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			user, err := auth.Authenticate(c.Request().Context(), parts[1])
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set(UserContextKey, user)
			return next(c)
		}
	}
}
