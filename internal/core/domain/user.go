package domain

import "time"

// Role is the closed set of authorization tiers. Admin is the elevated
// tier allowed to delete catalog entities and rewrite the company profile;
// everything else a valid session can do, a standard user can do.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// ParseRole maps a wire value onto the closed enumeration. An empty value
// defaults to the standard tier.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin:
		return RoleAdmin, nil
	case RoleUser, Role(""):
		return RoleUser, nil
	default:
		return "", ErrInvalidRole
	}
}

// User models an authenticated actor in the system. The password hash is
// carried only between the auth service and the user repository and is
// excluded from every serialized view.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	Role         Role      `json:"role"`
	PasswordHash string    `json:"-" bson:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
