package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/surojitbera2/inventory/internal/api/middleware"
	"github.com/surojitbera2/inventory/internal/core/domain"
)

// currentUser extracts the identity injected by the Auth middleware.
// Presence proves the middleware ran; a missing user on a protected route
// means the route was wired without it, which reads as unauthorized.
func currentUser(c echo.Context) (*domain.User, error) {
	user, ok := c.Get(middleware.UserContextKey).(*domain.User)
	if !ok || user == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return user, nil
}
