package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/local-bazaar/bazaar-api/internal/core/domain"
)

type stubRoleDirectory struct {
	role   domain.Role
	status domain.AccountStatus
	err    error
}

func (s *stubRoleDirectory) Access(_ context.Context, _ string) (domain.Role, domain.AccountStatus, error) {
	return s.role, s.status, s.err
}

func invokeAdminOnly(t *testing.T, email string, dir RoleDirectory) error {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if email != "" {
		c.Set("email", email)
	}

	h := AdminOnly(dir)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	return h(c)
}

func TestAdminOnly_AdminPasses(t *testing.T) {
	dir := &stubRoleDirectory{role: domain.RoleAdmin, status: domain.StatusActive}
	if err := invokeAdminOnly(t, "admin@example.com", dir); err != nil {
		t.Fatalf("expected admin to pass, got %v", err)
	}
}

func TestAdminOnly_NonAdminForbidden(t *testing.T) {
	for _, role := range []domain.Role{domain.RoleUser, domain.RoleChef} {
		dir := &stubRoleDirectory{role: role, status: domain.StatusActive}
		err := invokeAdminOnly(t, "someone@example.com", dir)
		assertHTTPStatus(t, err, http.StatusForbidden)
	}
}

func TestAdminOnly_FraudAdminForbidden(t *testing.T) {
	dir := &stubRoleDirectory{role: domain.RoleAdmin, status: domain.StatusFraud}
	err := invokeAdminOnly(t, "admin@example.com", dir)
	assertHTTPStatus(t, err, http.StatusForbidden)
}

func TestAdminOnly_UnknownPrincipalForbidden(t *testing.T) {
	dir := &stubRoleDirectory{err: domain.ErrPrincipalNotFound}
	err := invokeAdminOnly(t, "ghost@example.com", dir)
	assertHTTPStatus(t, err, http.StatusForbidden)
}

func TestAdminOnly_MissingIdentity(t *testing.T) {
	dir := &stubRoleDirectory{role: domain.RoleAdmin, status: domain.StatusActive}
	err := invokeAdminOnly(t, "", dir)
	assertHTTPStatus(t, err, http.StatusUnauthorized)
}

func TestAdminOnly_StoreErrorPropagates(t *testing.T) {
	storeErr := errors.New("mongo unavailable")
	dir := &stubRoleDirectory{err: storeErr}
	if err := invokeAdminOnly(t, "admin@example.com", dir); !errors.Is(err, storeErr) {
		t.Fatalf("expected store error to propagate, got %v", err)
	}
}
