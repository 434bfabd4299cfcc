package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/surojitbera2/inventory/internal/core/domain"
)

// RequireRole gates a route on the authenticated user's role tier. The role
// set is a closed enumeration, so the check is a direct comparison rather
// than a lookup in an open-ended role table.
func RequireRole(role domain.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, ok := c.Get(UserContextKey).(*domain.User)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
			}
			if user.Role != role {
				return c.JSON(http.StatusForbidden, map[string]string{"error": domain.ErrForbidden.Error()})
			}
			return next(c)
		}
	}
}
