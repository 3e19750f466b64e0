package ports

import (
	"context"

	"github.com/local-bazaar/bazaar-api/internal/core/domain"
)

// SubmitRequestInput carries a user's request for promotion.
// CallerEmail is the identity verified from the bearer token; RequesterEmail
// is the identity named in the request body. They must match.
type SubmitRequestInput struct {
	CallerEmail    string
	RequesterEmail string
	RequestedRole  domain.Role
}

// SubmitRequestResult is returned by Submit. Duplicate is true when a pending
// request for the same (email, role) already existed; no record was created.
type SubmitRequestResult struct {
	Request   *domain.ElevationRequest
	Duplicate bool
}

// ElevationService defines the role-elevation workflow use cases.
type ElevationService interface {
	Submit(ctx context.Context, in SubmitRequestInput) (*SubmitRequestResult, error)
	List(ctx context.Context) ([]*domain.ElevationRequest, error)
	// Approve moves the request to approved and applies the role mutation to
	// the requesting principal. ActorEmail is the admin taking the decision.
	Approve(ctx context.Context, id, actorEmail string) (*domain.ElevationRequest, error)
	Reject(ctx context.Context, id, actorEmail string) (*domain.ElevationRequest, error)
}
