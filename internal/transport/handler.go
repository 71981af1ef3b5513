// Package transport wires the planning engine to an HTTP transport. It
// holds request/response shaping and rate limiting; it contains no
// planning logic of its own (spec.md §6, "Transport layer").
package transport

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/Alexey-Stp/race-day-nutrition-planner/internal/models"
)

// PlannerService is the contract the handler depends on, matching this
// codebase's convention of depending on a narrow interface rather than a
// concrete service type.
type PlannerService interface {
	GeneratePlan(race models.RaceProfile, athlete models.AthleteProfile, products []models.Product, caffeineEnabled bool) (models.PlanResult, error)
}

// PlanRequest is the wire request body for POST /v1/plans.
type PlanRequest struct {
	Race            models.RaceProfile    `json:"race" validate:"required"`
	Athlete         models.AthleteProfile `json:"athlete" validate:"required"`
	Products        []models.Product      `json:"products" validate:"required,min=1,dive"`
	CaffeineEnabled bool                  `json:"caffeine_enabled"`
}

// PlanResponse is the wire response body for POST /v1/plans.
type PlanResponse struct {
	Status string           `json:"status"`
	Plan   models.PlanResult `json:"plan"`
}

// ErrorResponse is the wire shape for a rejected request.
type ErrorResponse struct {
	Status string `json:"status"`
	Error  string `json:"error"`
}

type Handler struct {
	service   PlannerService
	validator *validator.Validate
}

func NewHandler(service PlannerService) *Handler {
	return &Handler{
		service:   service,
		validator: validator.New(),
	}
}

// CreatePlan handles POST /v1/plans.
func (h *Handler) CreatePlan(c echo.Context) error {
	var req PlanRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Status: "error", Error: "malformed request body"})
	}

	if err := h.validator.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Status: "error", Error: err.Error()})
	}

	plan, err := h.service.GeneratePlan(req.Race, req.Athlete, req.Products, req.CaffeineEnabled)
	if err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Status: "error", Error: err.Error()})
	}

	return c.JSON(http.StatusOK, PlanResponse{Status: "success", Plan: plan})
}

// HealthCheck handles GET /healthz.
func (h *Handler) HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// RegisterRoutes wires this handler's endpoints onto an Echo instance.
// planGuards are applied only to POST /v1/plans (bearer-token auth, the
// per-caller rate limiter) — /healthz stays open so orchestrators can
// probe it without a token.
func RegisterRoutes(e *echo.Echo, h *Handler, planGuards ...echo.MiddlewareFunc) {
	e.GET("/healthz", h.HealthCheck)
	e.POST("/v1/plans", h.CreatePlan, planGuards...)
}
