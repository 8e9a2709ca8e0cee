package types

import (
	"github.com/google/uuid"
)

// Role identifies which kind of principal a token was issued to.
type Role string

const (
	RoleUser Role = "user"
	RoleChef Role = "chef"
)

// Valid reports whether the role is one the API knows about.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleChef
}

// TokenClaims is the verified payload of a JWT token. It is never stored
// server-side; every request carries it in full.
type TokenClaims struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Role  Role      `json:"role"`
}
