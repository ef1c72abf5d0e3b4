package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/study-planner-api/internal/dto"
	"github.com/noah-isme/study-planner-api/internal/models"
	"github.com/noah-isme/study-planner-api/internal/service"
	appErrors "github.com/noah-isme/study-planner-api/pkg/errors"
	"github.com/noah-isme/study-planner-api/pkg/response"
)

type planner interface {
	Generate(ctx context.Context, req dto.GeneratePlanRequest) (*dto.GeneratePlanResponse, error)
	Save(ctx context.Context, req dto.SavePlanRequest) (*models.StudyPlan, error)
	FindPlan(ctx context.Context, planID string) (*models.StudyPlan, error)
	ListPlans(ctx context.Context, userID string) ([]models.StudyPlan, error)
	DeletePlan(ctx context.Context, planID string) error
	Rebalance(ctx context.Context, planID string) (*dto.RebalanceResponse, error)
}

// PlanHandler exposes plan lifecycle endpoints.
type PlanHandler struct {
	service planner
}

// NewPlanHandler constructs the handler.
func NewPlanHandler(svc *service.PlannerService) *PlanHandler {
	return &PlanHandler{service: svc}
}

// Generate godoc
// @Summary Generate a study plan proposal
// @Description Builds a phased schedule for the chosen exam. The proposal is held in memory until saved.
// @Tags Plans
// @Accept json
// @Produce json
// @Param payload body dto.GeneratePlanRequest true "Generation payload"
// @Success 200 {object} response.Envelope
// @Router /plans/generate [post]
func (h *PlanHandler) Generate(c *gin.Context) {
	var req dto.GeneratePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid generate payload"))
		return
	}
	result, err := h.service.Generate(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result, nil)
}

// Save godoc
// @Summary Persist a generated plan proposal
// @Tags Plans
// @Accept json
// @Produce json
// @Param payload body dto.SavePlanRequest true "Save payload"
// @Success 201 {object} response.Envelope
// @Router /plans [post]
func (h *PlanHandler) Save(c *gin.Context) {
	var req dto.SavePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid save payload"))
		return
	}
	plan, err := h.service.Save(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, plan)
}

// Get godoc
// @Summary Get a saved study plan
// @Tags Plans
// @Produce json
// @Param id path string true "Plan ID"
// @Success 200 {object} response.Envelope
// @Router /plans/{id} [get]
func (h *PlanHandler) Get(c *gin.Context) {
	plan, err := h.service.FindPlan(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, plan, nil)
}

// List godoc
// @Summary List saved plans for a user
// @Tags Plans
// @Produce json
// @Param userId query string false "User ID"
// @Success 200 {object} response.Envelope
// @Router /plans [get]
func (h *PlanHandler) List(c *gin.Context) {
	plans, err := h.service.ListPlans(c.Request.Context(), c.Query("userId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, plans, nil)
}

// Delete godoc
// @Summary Delete a saved plan
// @Tags Plans
// @Param id path string true "Plan ID"
// @Success 204
// @Router /plans/{id} [delete]
func (h *PlanHandler) Delete(c *gin.Context) {
	if err := h.service.DeletePlan(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// Rebalance godoc
// @Summary Redistribute workload across the plan
// @Description Moves lower-priority tasks off overloaded days and persists the result.
// @Tags Plans
// @Produce json
// @Param id path string true "Plan ID"
// @Success 200 {object} response.Envelope
// @Router /plans/{id}/rebalance [post]
func (h *PlanHandler) Rebalance(c *gin.Context) {
	result, err := h.service.Rebalance(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result, nil)
}
