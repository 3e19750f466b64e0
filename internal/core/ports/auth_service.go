package ports

import (
	"context"

	"github.com/local-bazaar/bazaar-api/internal/core/domain"
)

// RegisterInput carries the data needed to register a principal.
type RegisterInput struct {
	Email    string
	Name     string
	Password string
}

// RegisterResult is returned by Register. AlreadyExisted is true when the
// email was previously registered; registration is then a no-op.
type RegisterResult struct {
	Principal      *domain.Principal
	AlreadyExisted bool
}

// AuthService implements registration and token issuance.
type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*RegisterResult, error)
	Login(ctx context.Context, email, password string) (string, *domain.Principal, error)
}
