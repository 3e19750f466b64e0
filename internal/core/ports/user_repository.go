package ports

import (
	"context"

	"github.com/local-bazaar/bazaar-api/internal/core/domain"
)

// UserRepository defines persistence operations for principals.
type UserRepository interface {
	// Create inserts a new principal. Returns domain.ErrPrincipalExists when
	// a principal with the same email is already registered.
	Create(ctx context.Context, p *domain.Principal) (*domain.Principal, error)
	FindByEmail(ctx context.Context, email string) (*domain.Principal, error)
	// UpdateRole sets the principal's role and, when non-empty, its chef id.
	UpdateRole(ctx context.Context, email string, role domain.Role, chefID string) error
	SetStatus(ctx context.Context, email string, status domain.AccountStatus) error
	// NextChefSequence atomically increments and returns the chef id counter.
	NextChefSequence(ctx context.Context) (int64, error)
}
