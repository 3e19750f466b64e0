package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/local-bazaar/bazaar-api/internal/api/metrics"
	"github.com/local-bazaar/bazaar-api/internal/core/domain"
	"github.com/local-bazaar/bazaar-api/internal/core/ports"
)

// AuditSink accepts audit records for asynchronous persistence.
type AuditSink interface {
	Enqueue(a domain.RoleAudit)
}

type elevationService struct {
	requests ports.RequestRepository
	users    ports.UserRepository
	cache    RoleCache
	audit    AuditSink
	log      zerolog.Logger
}

// NewElevationService returns an ElevationService implementation.
func NewElevationService(
	requests ports.RequestRepository,
	users ports.UserRepository,
	cache RoleCache,
	audit AuditSink,
	log zerolog.Logger,
) ports.ElevationService {
	return &elevationService{
		requests: requests,
		users:    users,
		cache:    cache,
		audit:    audit,
		log:      log,
	}
}

// Submit creates a pending elevation request for the caller. A pending
// request already covering the same (email, role) pair makes Submit an
// idempotent no-op: the Duplicate flag is set and no record is created.
// Uniqueness is enforced by the store's partial unique index, so two
// concurrent submits cannot both insert.
func (s *elevationService) Submit(ctx context.Context, in ports.SubmitRequestInput) (*ports.SubmitRequestResult, error) {
	if in.CallerEmail == "" || in.CallerEmail != in.RequesterEmail {
		return nil, domain.ErrForbidden
	}
	if !in.RequestedRole.Elevated() {
		return nil, domain.ErrInvalidRole
	}

	principal, err := s.users.FindByEmail(ctx, in.RequesterEmail)
	if err != nil {
		return nil, err
	}
	if principal.Status == domain.StatusFraud {
		return nil, domain.ErrForbidden
	}

	req := &domain.ElevationRequest{
		Email:         in.RequesterEmail,
		RequestedRole: in.RequestedRole,
		Status:        domain.RequestPending,
		RequestedAt:   time.Now().UTC(),
	}

	created, err := s.requests.Insert(ctx, req)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicatePending) {
			metrics.ElevationDuplicatesTotal.Inc()
			s.log.Info().Str("email", in.RequesterEmail).Str("role", string(in.RequestedRole)).Msg("duplicate pending request, no-op")
			return &ports.SubmitRequestResult{Duplicate: true}, nil
		}
		return nil, err
	}

	metrics.ElevationSubmittedTotal.WithLabelValues(string(in.RequestedRole)).Inc()
	s.log.Info().Str("email", in.RequesterEmail).Str("role", string(in.RequestedRole)).Msg("elevation request submitted")

	return &ports.SubmitRequestResult{Request: created}, nil
}

// List returns all elevation requests, most recent first.
func (s *elevationService) List(ctx context.Context) ([]*domain.ElevationRequest, error) {
	return s.requests.List(ctx)
}

// Approve transitions the request to approved and applies the role mutation.
// The transition is a compare-and-swap on status=pending: of two concurrent
// approvals exactly one wins, the other observes ErrRequestTerminal. When the
// principal mutation fails the request is compensated back to pending so the
// decision can be retried.
func (s *elevationService) Approve(ctx context.Context, id, actorEmail string) (*domain.ElevationRequest, error) {
	req, err := s.requests.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Status.Terminal() {
		return nil, domain.ErrRequestTerminal
	}

	updated, err := s.requests.TransitionStatus(ctx, id, domain.RequestPending, domain.RequestApproved)
	if err != nil {
		return nil, err
	}

	chefID := ""
	if req.RequestedRole == domain.RoleChef {
		seq, seqErr := s.users.NextChefSequence(ctx)
		if seqErr != nil {
			s.compensate(ctx, id)
			return nil, fmt.Errorf("approve: chef sequence: %w", seqErr)
		}
		chefID = fmt.Sprintf("chef-%04d", seq)
	}

	if err := s.users.UpdateRole(ctx, req.Email, req.RequestedRole, chefID); err != nil {
		s.compensate(ctx, id)
		return nil, fmt.Errorf("approve: update role: %w", err)
	}

	s.invalidate(ctx, req.Email)
	s.audit.Enqueue(domain.RoleAudit{
		Actor:     actorEmail,
		Subject:   req.Email,
		Action:    domain.AuditApproved,
		RequestID: id,
		At:        time.Now().UTC(),
	})
	metrics.ElevationDecisionsTotal.WithLabelValues("approved").Inc()

	s.log.Info().
		Str("request_id", id).
		Str("email", req.Email).
		Str("role", string(req.RequestedRole)).
		Str("actor", actorEmail).
		Msg("elevation request approved")

	return updated, nil
}

// Reject transitions the request to rejected. No principal mutation.
func (s *elevationService) Reject(ctx context.Context, id, actorEmail string) (*domain.ElevationRequest, error) {
	req, err := s.requests.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Status.Terminal() {
		return nil, domain.ErrRequestTerminal
	}

	updated, err := s.requests.TransitionStatus(ctx, id, domain.RequestPending, domain.RequestRejected)
	if err != nil {
		return nil, err
	}

	s.audit.Enqueue(domain.RoleAudit{
		Actor:     actorEmail,
		Subject:   req.Email,
		Action:    domain.AuditRejected,
		RequestID: id,
		At:        time.Now().UTC(),
	})
	metrics.ElevationDecisionsTotal.WithLabelValues("rejected").Inc()

	s.log.Info().
		Str("request_id", id).
		Str("email", req.Email).
		Str("actor", actorEmail).
		Msg("elevation request rejected")

	return updated, nil
}

// compensate reverts an approved request back to pending after a failed role
// mutation, leaving the system in a retryable state.
func (s *elevationService) compensate(ctx context.Context, id string) {
	if _, err := s.requests.TransitionStatus(ctx, id, domain.RequestApproved, domain.RequestPending); err != nil {
		s.log.Error().Err(err).Str("request_id", id).Msg("failed to revert request after role mutation failure")
	}
}

// invalidate drops the cached role entry. Cache failures are non-fatal: the
// entry expires by TTL anyway.
func (s *elevationService) invalidate(ctx context.Context, email string) {
	if err := s.cache.Invalidate(ctx, email); err != nil {
		s.log.Warn().Err(err).Str("email", email).Msg("failed to invalidate role cache")
	}
}
