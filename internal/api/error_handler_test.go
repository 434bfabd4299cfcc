package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/surojitbera2/inventory/internal/core/domain"
)

func handleError(t *testing.T, err error) (*httptest.ResponseRecorder, map[string]string) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json body: %v", err)
	}
	return rec, body
}

func TestHTTPErrorHandler_DomainErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"user exists", domain.ErrUserExists, http.StatusConflict},
		{"invalid credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{"invalid role", domain.ErrInvalidRole, http.StatusBadRequest},
		{"forbidden", domain.ErrForbidden, http.StatusForbidden},
		{"vendor not found", domain.ErrVendorNotFound, http.StatusNotFound},
		{"customer not found", domain.ErrCustomerNotFound, http.StatusNotFound},
		{"product not found", domain.ErrProductNotFound, http.StatusNotFound},
		{"sale not found", domain.ErrSaleNotFound, http.StatusNotFound},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec, body := handleError(t, tc.err)
			if rec.Code != tc.code {
				t.Fatalf("expected %d, got %d", tc.code, rec.Code)
			}
			if body["error"] == "" {
				t.Fatalf("expected error message in envelope")
			}
		})
	}
}

func TestHTTPErrorHandler_WrappedReference(t *testing.T) {
	err := fmt.Errorf("vendor v42: %w", domain.ErrInvalidReference)

	rec, body := handleError(t, err)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	// The wrapped message names the broken reference.
	if body["error"] != err.Error() {
		t.Fatalf("expected %q, got %q", err.Error(), body["error"])
	}
}

func TestHTTPErrorHandler_WrappedStock(t *testing.T) {
	err := fmt.Errorf("product Widget: %w", domain.ErrInsufficientStock)

	rec, body := handleError(t, err)
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
	if body["error"] != err.Error() {
		t.Fatalf("expected %q, got %q", err.Error(), body["error"])
	}
}

func TestHTTPErrorHandler_EchoError(t *testing.T) {
	rec, body := handleError(t, echo.NewHTTPError(http.StatusUnprocessableEntity, "name is required"))
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
	if body["error"] != "name is required" {
		t.Fatalf("unexpected message %q", body["error"])
	}
}

func TestHTTPErrorHandler_Unknown(t *testing.T) {
	rec, body := handleError(t, errors.New("connection reset"))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	// Internal causes are logged, not leaked.
	if body["error"] != "internal server error" {
		t.Fatalf("unexpected message %q", body["error"])
	}
}
