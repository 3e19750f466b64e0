package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/local-bazaar/bazaar-api/internal/core/domain"
	"github.com/local-bazaar/bazaar-api/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type registerRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Name     string `json:"name"     validate:"required"`
	Password string `json:"password" validate:"required,min=6"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type registerResponse struct {
	Principal *domain.Principal `json:"principal"`
	Inserted  bool              `json:"inserted"`
	Message   string            `json:"message,omitempty"`
}

type authResponse struct {
	Token     string            `json:"token,omitempty"`
	Principal *domain.Principal `json:"principal,omitempty"`
}

// Register creates a new principal with role=user.
//
// Registration is idempotent: posting an already registered email returns
// 200 with inserted=false and mutates nothing.
//
// @Summary      Register a new principal
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      201   {object}  registerResponse
// @Success      200   {object}  registerResponse
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	result, err := h.authService.Register(c.Request().Context(), ports.RegisterInput{
		Email:    req.Email,
		Name:     req.Name,
		Password: req.Password,
	})
	if err != nil {
		return err
	}

	if result.AlreadyExisted {
		return c.JSON(http.StatusOK, registerResponse{
			Principal: result.Principal,
			Inserted:  false,
			Message:   "principal already exists",
		})
	}
	return c.JSON(http.StatusCreated, registerResponse{Principal: result.Principal, Inserted: true})
}

// Login authenticates a principal and returns a JWT token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  authResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	token, principal, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, authResponse{Token: token, Principal: principal})
}
