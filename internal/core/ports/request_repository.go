package ports

import (
	"context"

	"github.com/local-bazaar/bazaar-api/internal/core/domain"
)

// RequestRepository defines persistence operations for elevation requests.
//
// The store is the authority for the at-most-one-pending invariant: Insert
// relies on a unique index over (email, requested_role) filtered to pending
// requests, and TransitionStatus is an atomic compare-and-swap on the status
// field, so concurrent submits or approvals cannot race past an
// application-level check.
type RequestRepository interface {
	// Insert persists a new pending request. Returns domain.ErrDuplicatePending
	// when a pending request for the same (email, requested role) exists.
	Insert(ctx context.Context, r *domain.ElevationRequest) (*domain.ElevationRequest, error)
	FindByID(ctx context.Context, id string) (*domain.ElevationRequest, error)
	// List returns all requests ordered by requested_at descending.
	List(ctx context.Context) ([]*domain.ElevationRequest, error)
	// TransitionStatus atomically moves the request from status `from` to `to`
	// and returns the updated record. Returns domain.ErrRequestTerminal when no
	// document matched, i.e. the request was concurrently decided.
	TransitionStatus(ctx context.Context, id string, from, to domain.RequestStatus) (*domain.ElevationRequest, error)
}
