package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/local-bazaar/bazaar-api/internal/core/domain"
)

type stubUserService struct {
	getRoleFn   func(ctx context.Context, email string) (domain.Role, error)
	flagFraudFn func(ctx context.Context, email, actor string) error
}

func (s *stubUserService) GetRole(ctx context.Context, email string) (domain.Role, error) {
	return s.getRoleFn(ctx, email)
}

func (s *stubUserService) Access(_ context.Context, _ string) (domain.Role, domain.AccountStatus, error) {
	return "", "", nil
}

func (s *stubUserService) FlagFraud(ctx context.Context, email, actor string) error {
	return s.flagFraudFn(ctx, email, actor)
}

func TestUserHandler_GetRole(t *testing.T) {
	svc := &stubUserService{
		getRoleFn: func(_ context.Context, email string) (domain.Role, error) {
			if email != "chef@example.com" {
				t.Fatalf("unexpected email: %q", email)
			}
			return domain.RoleChef, nil
		},
	}
	h := NewUserHandler(svc)

	c, rec := newJSONContext(t, http.MethodGet, "/v1/users/role/chef@example.com", "")
	c.SetParamNames("email")
	c.SetParamValues("chef@example.com")

	if err := h.GetRole(c); err != nil {
		t.Fatalf("GetRole returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp roleResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Role != "chef" {
		t.Fatalf("unexpected role: %q", resp.Role)
	}
}

func TestUserHandler_GetRole_NotFound(t *testing.T) {
	svc := &stubUserService{
		getRoleFn: func(_ context.Context, _ string) (domain.Role, error) {
			return "", domain.ErrPrincipalNotFound
		},
	}
	h := NewUserHandler(svc)

	c, _ := newJSONContext(t, http.MethodGet, "/v1/users/role/ghost@example.com", "")
	c.SetParamNames("email")
	c.SetParamValues("ghost@example.com")

	if err := h.GetRole(c); !errors.Is(err, domain.ErrPrincipalNotFound) {
		t.Fatalf("expected ErrPrincipalNotFound, got %v", err)
	}
}

func TestUserHandler_FlagFraud(t *testing.T) {
	var gotEmail, gotActor string
	svc := &stubUserService{
		flagFraudFn: func(_ context.Context, email, actor string) error {
			gotEmail, gotActor = email, actor
			return nil
		},
	}
	h := NewUserHandler(svc)

	c, rec := newJSONContext(t, http.MethodPatch, "/v1/users/fraud/bad@example.com", "")
	c.SetParamNames("email")
	c.SetParamValues("bad@example.com")
	c.Set("email", "admin@example.com")

	if err := h.FlagFraud(c); err != nil {
		t.Fatalf("FlagFraud returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if gotEmail != "bad@example.com" || gotActor != "admin@example.com" {
		t.Fatalf("unexpected call: email=%q actor=%q", gotEmail, gotActor)
	}
}
