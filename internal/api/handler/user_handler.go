package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/local-bazaar/bazaar-api/internal/core/ports"
)

// UserHandler handles role lookups and the admin fraud flag.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

type roleResponse struct {
	Role string `json:"role"`
}

type fraudResponse struct {
	Message string `json:"message"`
}

// GetRole handles GET /v1/users/role/:email. No auth required.
//
// @Summary      Get a principal's role
// @Tags         users
// @Produce      json
// @Param        email  path      string  true  "Principal email"
// @Success      200    {object}  roleResponse
// @Failure      404    {object}  errorResponse
// @Router       /v1/users/role/{email} [get]
func (h *UserHandler) GetRole(c echo.Context) error {
	role, err := h.service.GetRole(c.Request().Context(), c.Param("email"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, roleResponse{Role: string(role)})
}

// FlagFraud handles PATCH /v1/users/fraud/:email (admin only).
//
// @Summary      Flag a principal as fraud
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        email  path      string  true  "Principal email"
// @Success      200    {object}  fraudResponse
// @Failure      401    {object}  errorResponse
// @Failure      403    {object}  errorResponse
// @Failure      404    {object}  errorResponse
// @Router       /v1/users/fraud/{email} [patch]
func (h *UserHandler) FlagFraud(c echo.Context) error {
	actor, err := ctxEmail(c)
	if err != nil {
		return err
	}

	if err := h.service.FlagFraud(c.Request().Context(), c.Param("email"), actor); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, fraudResponse{Message: "principal flagged as fraud"})
}
