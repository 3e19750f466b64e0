package middleware

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/local-bazaar/bazaar-api/internal/core/domain"
)

// RoleDirectory resolves the current role/status of a verified identity.
// The role store is the authority here, not the token: a promotion or fraud
// flag takes effect without waiting for the token to expire.
type RoleDirectory interface {
	Access(ctx context.Context, email string) (domain.Role, domain.AccountStatus, error)
}

// AdminOnly enforces the admin authorization gate. It must be composed after
// Auth: the verified email is read from the request context.
func AdminOnly(dir RoleDirectory) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			email, _ := c.Get("email").(string)
			if email == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
			}

			role, status, err := dir.Access(c.Request().Context(), email)
			if err != nil {
				if err == domain.ErrPrincipalNotFound {
					return echo.NewHTTPError(http.StatusForbidden, "forbidden")
				}
				return err
			}
			if role != domain.RoleAdmin || status == domain.StatusFraud {
				return echo.NewHTTPError(http.StatusForbidden, "forbidden")
			}

			return next(c)
		}
	}
}
