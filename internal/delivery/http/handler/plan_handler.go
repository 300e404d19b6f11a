package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/inspection-planner/internal/pkg/errors"
	"github.com/inspection-planner/internal/pkg/utils"
	"github.com/inspection-planner/internal/pkg/validator"
	"github.com/inspection-planner/internal/usecase"
	"github.com/inspection-planner/internal/usecase/dto"
)

// PlanHandler serves the planning endpoints.
type PlanHandler struct {
	planUC *usecase.PlanUseCase
	logger *zap.Logger
}

func NewPlanHandler(planUC *usecase.PlanUseCase, logger *zap.Logger) *PlanHandler {
	return &PlanHandler{
		planUC: planUC,
		logger: logger,
	}
}

// CreatePlan godoc
// @Summary Build a multi-day inspection plan
// @Description Plans a multi-day driving route over the eligible sites of the requested provinces, respecting the daily return-home deadline. Identical requests are served from cache.
// @Tags Plans
// @Accept json
// @Produce json
// @Param request body dto.PlanRequest true "Planning request"
// @Success 200 {object} utils.SuccessResponse{data=dto.PlanResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/plans [post]
func (h *PlanHandler) CreatePlan(c *fiber.Ctx) error {
	var req dto.PlanRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"validation": err.Error(),
		}))
	}

	result, err := h.planUC.BuildPlan(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: result.Plan.ScheduledSites,
	})
}

// PreviewPlan godoc
// @Summary Preview a plan without caching it
// @Description Plans the same way as POST /plans but the result is not assigned an ID and is not cached.
// @Tags Plans
// @Accept json
// @Produce json
// @Param request body dto.PlanRequest true "Planning request"
// @Success 200 {object} utils.SuccessResponse{data=dto.PlanResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/plans/preview [post]
func (h *PlanHandler) PreviewPlan(c *fiber.Ctx) error {
	var req dto.PlanRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"validation": err.Error(),
		}))
	}

	result, err := h.planUC.PreviewPlan(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

// GetPlan godoc
// @Summary Fetch a previously built plan
// @Tags Plans
// @Produce json
// @Param id path string true "Plan ID"
// @Success 200 {object} utils.SuccessResponse{data=dto.PlanResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/plans/{id} [get]
func (h *PlanHandler) GetPlan(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"id": c.Params("id"),
		}))
	}

	result, err := h.planUC.GetPlan(c.Context(), id)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

// NearSites godoc
// @Summary List eligible sites near a location
// @Description Returns the eligible sites within the given radius of a point, nearest first, each with its straight-line distance in kilometres.
// @Tags Sites
// @Accept json
// @Produce json
// @Param request body dto.NearSitesRequest true "Query point with optional radius and limit"
// @Success 200 {object} utils.SuccessResponse{data=dto.NearSitesResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/sites/near [post]
func (h *PlanHandler) NearSites(c *fiber.Ctx) error {
	var req dto.NearSitesRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"validation": err.Error(),
		}))
	}

	result, err := h.planUC.ListNearSites(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: len(result.Sites),
	})
}

// EvaluateRoute godoc
// @Summary Score an already-ordered route
// @Description Evaluates a caller-supplied site order against the baseline for the same site set and returns the 0-100 efficiency score with its verdict.
// @Tags Routes
// @Accept json
// @Produce json
// @Param request body dto.EvaluateRouteRequest true "Ordered sites and optional home override"
// @Success 200 {object} utils.SuccessResponse{data=dto.EvaluateRouteResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/routes/evaluate [post]
func (h *PlanHandler) EvaluateRoute(c *fiber.Ctx) error {
	var req dto.EvaluateRouteRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"validation": err.Error(),
		}))
	}

	result, err := h.planUC.EvaluateRoute(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: result.SiteCount,
	})
}
