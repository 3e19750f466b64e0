package domain

import (
	"errors"
	"time"
)

// Role is the access level of a principal.
type Role string

const (
	RoleUser  Role = "user"
	RoleChef  Role = "chef"
	RoleAdmin Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleChef || r == RoleAdmin
}

// Elevated reports whether r is a role a user may request promotion to.
func (r Role) Elevated() bool {
	return r == RoleChef || r == RoleAdmin
}

// AccountStatus marks whether a principal is in good standing.
type AccountStatus string

const (
	StatusActive AccountStatus = "active"
	StatusFraud  AccountStatus = "fraud"
)

var (
	ErrPrincipalNotFound  = errors.New("principal not found")
	ErrPrincipalExists    = errors.New("principal already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidRole        = errors.New("invalid requested role")
	ErrForbidden          = errors.New("access forbidden")
)

// Principal is a registered identity with an associated role and status.
// The email is the natural key; role and chef_id are mutated only by the
// elevation workflow, status only by the admin fraud flag.
type Principal struct {
	ID           string        `json:"id"`
	Email        string        `json:"email"`
	Name         string        `json:"name,omitempty"`
	PasswordHash string        `json:"-"`
	Role         Role          `json:"role"`
	Status       AccountStatus `json:"status"`
	ChefID       string        `json:"chef_id,omitempty"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}
