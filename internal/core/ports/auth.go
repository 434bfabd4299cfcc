package ports

import (
	"context"

	"github.com/surojitbera2/inventory/internal/core/domain"
)

// UserRepository defines persistence for authenticated identities.
type UserRepository interface {
	// Insert stores a new user including its password hash. Returns
	// domain.ErrUserExists when the unique indexes reject the document.
	Insert(ctx context.Context, user *domain.User) error
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	// ExistsByUsernameOrEmail reports whether any user already holds either
	// unique field.
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)
}

// RegisterInput carries the fields needed to create an identity.
type RegisterInput struct {
	Username string
	Email    string
	Password string
	Role     string
}

// AuthService implements registration, login and token verification.
type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*domain.User, error)
	// Login returns a signed session token and the authenticated user.
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
	// Authenticate verifies a session token and resolves its subject to a
	// stored identity. Any failure surfaces as domain.ErrInvalidCredentials.
	Authenticate(ctx context.Context, token string) (*domain.User, error)
}
