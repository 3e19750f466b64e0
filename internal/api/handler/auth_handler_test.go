package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/local-bazaar/bazaar-api/internal/core/domain"
	"github.com/local-bazaar/bazaar-api/internal/core/ports"
)

type stubAuthService struct {
	registerFn func(ctx context.Context, in ports.RegisterInput) (*ports.RegisterResult, error)
	loginFn    func(ctx context.Context, email, password string) (string, *domain.Principal, error)
}

func (s *stubAuthService) Register(ctx context.Context, in ports.RegisterInput) (*ports.RegisterResult, error) {
	return s.registerFn(ctx, in)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (string, *domain.Principal, error) {
	return s.loginFn(ctx, email, password)
}

func newJSONContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Register_Created(t *testing.T) {
	svc := &stubAuthService{
		registerFn: func(_ context.Context, in ports.RegisterInput) (*ports.RegisterResult, error) {
			return &ports.RegisterResult{
				Principal: &domain.Principal{Email: in.Email, Name: in.Name, Role: domain.RoleUser, Status: domain.StatusActive},
			}, nil
		},
	}
	h := NewAuthHandler(svc)

	c, rec := newJSONContext(t, http.MethodPost, "/auth/register",
		`{"email":"alice@example.com","name":"Alice","password":"pass123"}`)
	if err := h.Register(c); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp registerResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !resp.Inserted {
		t.Fatalf("expected inserted=true")
	}
	if resp.Principal == nil || resp.Principal.Email != "alice@example.com" {
		t.Fatalf("unexpected principal: %+v", resp.Principal)
	}
}

func TestAuthHandler_Register_Duplicate(t *testing.T) {
	svc := &stubAuthService{
		registerFn: func(_ context.Context, in ports.RegisterInput) (*ports.RegisterResult, error) {
			return &ports.RegisterResult{
				Principal:      &domain.Principal{Email: in.Email, Role: domain.RoleUser, Status: domain.StatusActive},
				AlreadyExisted: true,
			}, nil
		},
	}
	h := NewAuthHandler(svc)

	c, rec := newJSONContext(t, http.MethodPost, "/auth/register",
		`{"email":"alice@example.com","name":"Alice","password":"pass123"}`)
	if err := h.Register(c); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 on duplicate, got %d", rec.Code)
	}

	var resp registerResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Inserted {
		t.Fatalf("expected inserted=false on duplicate")
	}
}

func TestAuthHandler_Register_ValidationFailure(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	cases := []string{
		`{"email":"not-an-email","name":"Alice","password":"pass123"}`,
		`{"email":"alice@example.com","name":"Alice","password":"short"}`,
		`{"email":"alice@example.com","password":"pass123"}`,
	}
	for _, body := range cases {
		c, _ := newJSONContext(t, http.MethodPost, "/auth/register", body)
		err := h.Register(c)
		httpErr, ok := err.(*echo.HTTPError)
		if !ok || httpErr.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422 for body %s, got %v", body, err)
		}
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	svc := &stubAuthService{
		loginFn: func(_ context.Context, email, _ string) (string, *domain.Principal, error) {
			return "signed-token", &domain.Principal{Email: email, Role: domain.RoleUser}, nil
		},
	}
	h := NewAuthHandler(svc)

	c, rec := newJSONContext(t, http.MethodPost, "/auth/login",
		`{"email":"alice@example.com","password":"pass123"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp authResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Token != "signed-token" {
		t.Fatalf("unexpected token: %q", resp.Token)
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	svc := &stubAuthService{
		loginFn: func(_ context.Context, _, _ string) (string, *domain.Principal, error) {
			return "", nil, domain.ErrInvalidCredentials
		},
	}
	h := NewAuthHandler(svc)

	c, _ := newJSONContext(t, http.MethodPost, "/auth/login",
		`{"email":"alice@example.com","password":"wrong1"}`)
	if err := h.Login(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}
