package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/surojitbera2/inventory/internal/api/middleware"
	"github.com/surojitbera2/inventory/internal/core/domain"
	"github.com/surojitbera2/inventory/internal/core/ports"
)

type stubAuthService struct {
	registerFn func(ctx context.Context, in ports.RegisterInput) (*domain.User, error)
	loginFn    func(ctx context.Context, username, password string) (string, *domain.User, error)
}

func (s *stubAuthService) Register(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
	return s.registerFn(ctx, in)
}

func (s *stubAuthService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	return s.loginFn(ctx, username, password)
}

func (s *stubAuthService) Authenticate(context.Context, string) (*domain.User, error) {
	return nil, domain.ErrInvalidCredentials
}

func newTestContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Register_Success(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(_ context.Context, in ports.RegisterInput) (*domain.User, error) {
			if in.Username != "alice" || in.Role != "admin" {
				t.Fatalf("unexpected input: %+v", in)
			}
			return &domain.User{ID: "u1", Username: in.Username, Email: in.Email, Role: domain.RoleAdmin}, nil
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/auth/register",
		`{"username":"alice","email":"alice@example.com","password":"secret1","role":"admin"}`)

	if err := handler.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var user map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &user); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if user["username"] != "alice" || user["role"] != "admin" {
		t.Fatalf("unexpected payload: %+v", user)
	}
	if _, leaked := user["password"]; leaked {
		t.Fatalf("password leaked in response")
	}
}

func TestAuthHandler_Register_ShortPassword(t *testing.T) {
	handler := NewAuthHandler(&stubAuthService{
		registerFn: func(context.Context, ports.RegisterInput) (*domain.User, error) {
			t.Fatalf("service should not be called")
			return nil, nil
		},
	})

	c, _ := newTestContext(t, http.MethodPost, "/auth/register",
		`{"username":"bob","email":"bob@example.com","password":"abc"}`)

	err := handler.Register(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 validation error, got %v", err)
	}
}

func TestAuthHandler_Register_Duplicate(t *testing.T) {
	handler := NewAuthHandler(&stubAuthService{
		registerFn: func(context.Context, ports.RegisterInput) (*domain.User, error) {
			return nil, domain.ErrUserExists
		},
	})

	c, _ := newTestContext(t, http.MethodPost, "/auth/register",
		`{"username":"bob","email":"bob@example.com","password":"secret1"}`)

	if err := handler.Register(c); err != domain.ErrUserExists {
		t.Fatalf("expected ErrUserExists passed through, got %v", err)
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	handler := NewAuthHandler(&stubAuthService{
		loginFn: func(_ context.Context, username, password string) (string, *domain.User, error) {
			if username != "carol" || password != "s3cret" {
				t.Fatalf("unexpected credentials: %s %s", username, password)
			}
			return "signed-token", &domain.User{Username: "carol", Role: domain.RoleUser}, nil
		},
	})

	c, rec := newTestContext(t, http.MethodPost, "/auth/login",
		`{"username":"carol","password":"s3cret"}`)

	if err := handler.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["access_token"] != "signed-token" || resp["token_type"] != "bearer" {
		t.Fatalf("unexpected token payload: %+v", resp)
	}
}

func TestAuthHandler_Login_BadCredentials(t *testing.T) {
	handler := NewAuthHandler(&stubAuthService{
		loginFn: func(context.Context, string, string) (string, *domain.User, error) {
			return "", nil, domain.ErrInvalidCredentials
		},
	})

	c, _ := newTestContext(t, http.MethodPost, "/auth/login",
		`{"username":"carol","password":"wrong"}`)

	if err := handler.Login(c); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials passed through, got %v", err)
	}
}

func TestAuthHandler_Me(t *testing.T) {
	handler := NewAuthHandler(&stubAuthService{})

	c, rec := newTestContext(t, http.MethodGet, "/auth/me", "")
	c.Set(middleware.UserContextKey, &domain.User{Username: "dave", Role: domain.RoleUser})

	if err := handler.Me(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"dave"`) {
		t.Fatalf("expected user in body, got %s", rec.Body.String())
	}
}

func TestAuthHandler_Me_NoUser(t *testing.T) {
	handler := NewAuthHandler(&stubAuthService{})

	c, _ := newTestContext(t, http.MethodGet, "/auth/me", "")

	err := handler.Me(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}
