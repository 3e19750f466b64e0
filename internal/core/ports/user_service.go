package ports

import (
	"context"

	"github.com/local-bazaar/bazaar-api/internal/core/domain"
)

// UserService exposes role lookups and the admin fraud flag.
type UserService interface {
	// GetRole returns the principal's current role.
	GetRole(ctx context.Context, email string) (domain.Role, error)
	// Access returns the role and account status used by the authorization
	// gate. Reads through the role cache; the store remains authoritative.
	Access(ctx context.Context, email string) (domain.Role, domain.AccountStatus, error)
	// FlagFraud marks the principal's account status as fraud.
	FlagFraud(ctx context.Context, email, actorEmail string) error
}
