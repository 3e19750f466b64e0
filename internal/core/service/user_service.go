package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/local-bazaar/bazaar-api/internal/api/metrics"
	"github.com/local-bazaar/bazaar-api/internal/core/domain"
	"github.com/local-bazaar/bazaar-api/internal/core/ports"
)

// RoleCache abstracts the role cache (Redis).
type RoleCache interface {
	// Get returns the cached role/status for email; ok is false on a miss.
	Get(ctx context.Context, email string) (role domain.Role, status domain.AccountStatus, ok bool, err error)
	Set(ctx context.Context, email string, role domain.Role, status domain.AccountStatus) error
	Invalidate(ctx context.Context, email string) error
}

type userService struct {
	users ports.UserRepository
	cache RoleCache
	audit AuditSink
	log   zerolog.Logger
}

// NewUserService returns a UserService implementation.
func NewUserService(users ports.UserRepository, cache RoleCache, audit AuditSink, log zerolog.Logger) ports.UserService {
	return &userService{users: users, cache: cache, audit: audit, log: log}
}

func (s *userService) GetRole(ctx context.Context, email string) (domain.Role, error) {
	role, _, err := s.Access(ctx, email)
	return role, err
}

// Access reads through the cache. A cache read failure is degraded to a miss
// so the store stays reachable when Redis is down.
func (s *userService) Access(ctx context.Context, email string) (domain.Role, domain.AccountStatus, error) {
	role, status, ok, err := s.cache.Get(ctx, email)
	if err != nil {
		s.log.Warn().Err(err).Str("email", email).Msg("role cache read failed")
	} else if ok {
		metrics.RoleCacheTotal.WithLabelValues("hit").Inc()
		return role, status, nil
	}
	metrics.RoleCacheTotal.WithLabelValues("miss").Inc()

	principal, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return "", "", err
	}

	if err := s.cache.Set(ctx, email, principal.Role, principal.Status); err != nil {
		s.log.Warn().Err(err).Str("email", email).Msg("failed to set role cache")
	}

	return principal.Role, principal.Status, nil
}

func (s *userService) FlagFraud(ctx context.Context, email, actorEmail string) error {
	if _, err := s.users.FindByEmail(ctx, email); err != nil {
		return err
	}

	if err := s.users.SetStatus(ctx, email, domain.StatusFraud); err != nil {
		return err
	}

	if err := s.cache.Invalidate(ctx, email); err != nil {
		s.log.Warn().Err(err).Str("email", email).Msg("failed to invalidate role cache")
	}

	s.audit.Enqueue(domain.RoleAudit{
		Actor:   actorEmail,
		Subject: email,
		Action:  domain.AuditFraudFlag,
		At:      time.Now().UTC(),
	})
	metrics.FraudFlagsTotal.Inc()

	s.log.Info().Str("email", email).Str("actor", actorEmail).Msg("principal flagged as fraud")
	return nil
}
