package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/surojitbera2/inventory/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"error": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Known domain errors map to deterministic HTTP codes. Reference and stock
	// errors keep their wrapped message so the missing entity is named.
	switch {
	case errors.Is(err, domain.ErrUserExists):
		return http.StatusConflict, domain.ErrUserExists.Error()
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "invalid credentials"
	case errors.Is(err, domain.ErrInvalidRole):
		return http.StatusBadRequest, domain.ErrInvalidRole.Error()
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, domain.ErrForbidden.Error()
	case errors.Is(err, domain.ErrInvalidReference):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrInsufficientStock):
		return http.StatusConflict, err.Error()
	case errors.Is(err, domain.ErrVendorNotFound):
		return http.StatusNotFound, domain.ErrVendorNotFound.Error()
	case errors.Is(err, domain.ErrCustomerNotFound):
		return http.StatusNotFound, domain.ErrCustomerNotFound.Error()
	case errors.Is(err, domain.ErrProductNotFound):
		return http.StatusNotFound, domain.ErrProductNotFound.Error()
	case errors.Is(err, domain.ErrSaleNotFound):
		return http.StatusNotFound, domain.ErrSaleNotFound.Error()
	case errors.Is(err, domain.ErrCompanyNotFound):
		return http.StatusNotFound, domain.ErrCompanyNotFound.Error()
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
