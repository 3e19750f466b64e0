package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const testSecret = "test-secret"

func signToken(t *testing.T, claims jwt.MapClaims, secret string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return signed
}

func invokeAuth(t *testing.T, authHeader string) (*httptest.ResponseRecorder, echo.Context, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := Auth(testSecret)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	return rec, c, h(c)
}

func TestAuth_ValidToken(t *testing.T) {
	token := signToken(t, jwt.MapClaims{
		"email": "alice@example.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	}, testSecret)

	rec, c, err := invokeAuth(t, "Bearer "+token)
	if err != nil {
		t.Fatalf("expected request to pass, got %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got, _ := c.Get("email").(string); got != "alice@example.com" {
		t.Fatalf("expected email in context, got %q", got)
	}
}

func TestAuth_MissingHeader(t *testing.T) {
	_, _, err := invokeAuth(t, "")
	assertHTTPStatus(t, err, http.StatusUnauthorized)
}

func TestAuth_BadScheme(t *testing.T) {
	_, _, err := invokeAuth(t, "Basic abc123")
	assertHTTPStatus(t, err, http.StatusUnauthorized)
}

func TestAuth_InvalidToken(t *testing.T) {
	token := signToken(t, jwt.MapClaims{
		"email": "alice@example.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	}, "wrong-secret")

	_, _, err := invokeAuth(t, "Bearer "+token)
	assertHTTPStatus(t, err, http.StatusUnauthorized)
}

func TestAuth_ExpiredToken(t *testing.T) {
	token := signToken(t, jwt.MapClaims{
		"email": "alice@example.com",
		"exp":   time.Now().Add(-time.Hour).Unix(),
	}, testSecret)

	_, _, err := invokeAuth(t, "Bearer "+token)
	assertHTTPStatus(t, err, http.StatusUnauthorized)
}

func TestAuth_TokenWithoutIdentity(t *testing.T) {
	token := signToken(t, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	}, testSecret)

	_, _, err := invokeAuth(t, "Bearer "+token)
	assertHTTPStatus(t, err, http.StatusUnauthorized)
}

func assertHTTPStatus(t *testing.T, err error, want int) {
	t.Helper()
	httpErr, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected *echo.HTTPError, got %v", err)
	}
	if httpErr.Code != want {
		t.Fatalf("expected status %d, got %d", want, httpErr.Code)
	}
}
