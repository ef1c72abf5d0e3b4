package dto

import "github.com/noah-isme/study-planner-api/internal/models"

// GeneratePlanRequest carries the study configuration for POST /plans/generate.
type GeneratePlanRequest struct {
	models.UserConfig
}

// GeneratePlanResponse returns the generated schedule together with the
// deterministic advisory payload.
type GeneratePlanResponse struct {
	PlanID          string                       `json:"planId"`
	Schedule        []models.Day                 `json:"schedule"`
	Recommendations []models.Recommendation      `json:"recommendations"`
	Prediction      models.PerformancePrediction `json:"performancePrediction"`
	Metadata        models.PlanMetadata          `json:"metadata"`
}

// SavePlanRequest persists a previously generated plan.
type SavePlanRequest struct {
	PlanID string `json:"planId" validate:"required"`
	UserID string `json:"userId"`
}

// RebalanceResponse reports the outcome of a redistribution pass.
type RebalanceResponse struct {
	Schedule   []models.Day `json:"schedule"`
	TasksMoved int          `json:"tasksMoved"`
}
