package helpers

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the caller context resolved by the auth middleware. It is
// passed by value into services so nothing downstream can mutate the
// caller's identity mid-request.
type Claims struct {
	Role  string `json:"role"`
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// UserID returns the subject claim, which carries the caller's user id.
func (c Claims) UserID() string {
	return c.Subject
}

func (c Claims) IsAdmin() bool {
	return c.Role == "admin"
}

func (c Claims) IsOrganizer() bool {
	return c.Role == "organizer"
}

func (c Claims) HasRole(role string) bool {
	return c.Role == role
}

func (c Claims) IsOwner(userID string) bool {
	return c.Subject == userID
}

func (c Claims) SafeRole() string {
	if c.Role == "" {
		return "user"
	}
	return c.Role
}
