package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/local-bazaar/bazaar-api/internal/core/domain"
)

func newUserFixture() (*stubUserRepo, *stubRoleCache, *stubAuditSink, *userService) {
	users := newStubUserRepo()
	cache := newStubRoleCache()
	audit := &stubAuditSink{}
	svc := NewUserService(users, cache, audit, zerolog.Nop()).(*userService)
	return users, cache, audit, svc
}

func TestUserService_Access_CacheMissThenHit(t *testing.T) {
	users, _, _, svc := newUserFixture()
	chef := activeUser("chef@example.com")
	chef.Role = domain.RoleChef
	users.addPrincipal(chef)

	role, status, err := svc.Access(context.Background(), "chef@example.com")
	if err != nil {
		t.Fatalf("Access returned error: %v", err)
	}
	if role != domain.RoleChef || status != domain.StatusActive {
		t.Fatalf("unexpected role/status: %s/%s", role, status)
	}
	if users.findCalls != 1 {
		t.Fatalf("expected 1 store lookup, got %d", users.findCalls)
	}

	// second lookup is served from the cache
	if _, _, err := svc.Access(context.Background(), "chef@example.com"); err != nil {
		t.Fatalf("cached Access returned error: %v", err)
	}
	if users.findCalls != 1 {
		t.Fatalf("expected cache hit, store lookups: %d", users.findCalls)
	}
}

func TestUserService_Access_CacheErrorFallsThrough(t *testing.T) {
	users, cache, _, svc := newUserFixture()
	users.addPrincipal(activeUser("user@example.com"))
	cache.getErr = errors.New("redis down")

	role, _, err := svc.Access(context.Background(), "user@example.com")
	if err != nil {
		t.Fatalf("Access should degrade to a store read, got %v", err)
	}
	if role != domain.RoleUser {
		t.Fatalf("unexpected role: %s", role)
	}
}

func TestUserService_GetRole_NotFound(t *testing.T) {
	_, _, _, svc := newUserFixture()

	if _, err := svc.GetRole(context.Background(), "ghost@example.com"); !errors.Is(err, domain.ErrPrincipalNotFound) {
		t.Fatalf("expected ErrPrincipalNotFound, got %v", err)
	}
}

func TestUserService_FlagFraud(t *testing.T) {
	users, cache, audit, svc := newUserFixture()
	users.addPrincipal(activeUser("bad@example.com"))

	// warm the cache so invalidation is observable
	if _, _, err := svc.Access(context.Background(), "bad@example.com"); err != nil {
		t.Fatalf("warm-up Access failed: %v", err)
	}

	if err := svc.FlagFraud(context.Background(), "bad@example.com", "admin@example.com"); err != nil {
		t.Fatalf("FlagFraud returned error: %v", err)
	}

	p := users.principal(t, "bad@example.com")
	if p.Status != domain.StatusFraud {
		t.Fatalf("expected status fraud, got %s", p.Status)
	}
	if len(cache.invalidated) == 0 {
		t.Fatalf("expected role cache invalidation")
	}
	if audit.len() != 1 {
		t.Fatalf("expected 1 audit record, got %d", audit.len())
	}

	// the gate now sees the fraud status
	_, status, err := svc.Access(context.Background(), "bad@example.com")
	if err != nil {
		t.Fatalf("Access after flag failed: %v", err)
	}
	if status != domain.StatusFraud {
		t.Fatalf("expected fraud status from store, got %s", status)
	}
}

func TestUserService_FlagFraud_NotFound(t *testing.T) {
	_, _, _, svc := newUserFixture()

	if err := svc.FlagFraud(context.Background(), "ghost@example.com", "admin@example.com"); !errors.Is(err, domain.ErrPrincipalNotFound) {
		t.Fatalf("expected ErrPrincipalNotFound, got %v", err)
	}
}
