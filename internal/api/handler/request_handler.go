package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/local-bazaar/bazaar-api/internal/core/domain"
	"github.com/local-bazaar/bazaar-api/internal/core/ports"
)

// RequestHandler handles HTTP requests for the elevation workflow.
type RequestHandler struct {
	service ports.ElevationService
}

func NewRequestHandler(service ports.ElevationService) *RequestHandler {
	return &RequestHandler{service: service}
}

// Submit handles POST /v1/requests.
//
// @Summary      Submit an elevation request
// @Tags         requests
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      submitRequest  true  "Requested promotion"
// @Success      201   {object}  submitResponse
// @Success      200   {object}  submitResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/requests [post]
func (h *RequestHandler) Submit(c echo.Context) error {
	var req submitRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	caller, err := ctxEmail(c)
	if err != nil {
		return err
	}

	result, err := h.service.Submit(c.Request().Context(), ports.SubmitRequestInput{
		CallerEmail:    caller,
		RequesterEmail: req.RequesterEmail,
		RequestedRole:  domain.Role(req.RequestedRole),
	})
	if err != nil {
		return err
	}

	if result.Duplicate {
		return c.JSON(http.StatusOK, submitResponse{
			Duplicate: true,
			Message:   "pending request already exists",
		})
	}
	return c.JSON(http.StatusCreated, submitResponse{Request: toRequestResponse(result.Request)})
}

// List handles GET /v1/requests (admin only).
//
// @Summary      List elevation requests, most recent first
// @Tags         requests
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listRequestsResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /v1/requests [get]
func (h *RequestHandler) List(c echo.Context) error {
	requests, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toListResponse(requests))
}

// Approve handles PATCH /v1/requests/approve/:id (admin only).
//
// @Summary      Approve an elevation request
// @Tags         requests
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Request id"
// @Success      200  {object}  decisionResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      409  {object}  errorResponse
// @Router       /v1/requests/approve/{id} [patch]
func (h *RequestHandler) Approve(c echo.Context) error {
	actor, err := ctxEmail(c)
	if err != nil {
		return err
	}

	updated, err := h.service.Approve(c.Request().Context(), c.Param("id"), actor)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, decisionResponse{
		Message: "request approved",
		Request: toRequestResponse(updated),
	})
}

// Reject handles PATCH /v1/requests/reject/:id (admin only).
//
// @Summary      Reject an elevation request
// @Tags         requests
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Request id"
// @Success      200  {object}  decisionResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      409  {object}  errorResponse
// @Router       /v1/requests/reject/{id} [patch]
func (h *RequestHandler) Reject(c echo.Context) error {
	actor, err := ctxEmail(c)
	if err != nil {
		return err
	}

	updated, err := h.service.Reject(c.Request().Context(), c.Param("id"), actor)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, decisionResponse{
		Message: "request rejected",
		Request: toRequestResponse(updated),
	})
}
