package dto

import "github.com/noah-isme/study-planner-api/internal/models"

// ScheduleQuery captures query parameters for GET /plans/:id/schedule.
type ScheduleQuery struct {
	Subject  string `form:"subject"`
	Type     string `form:"type"`
	Priority string `form:"priority"`
	Status   string `form:"status"`
	Search   string `form:"search"`
	From     string `form:"from"`
	To       string `form:"to"`
}

// ExportQuery captures query parameters for GET /plans/:id/export.
type ExportQuery struct {
	Format string `form:"format" validate:"required,oneof=json csv ical pdf"`
}

// TodayResponse is the payload for GET /plans/:id/today.
type TodayResponse struct {
	Date  string        `json:"date"`
	Day   *models.Day   `json:"day"`
	Tasks []models.Task `json:"tasks"`
}

// UpcomingResponse is the payload for GET /plans/:id/upcoming.
type UpcomingResponse struct {
	Tasks []models.UpcomingTask `json:"tasks"`
}

// OverdueResponse is the payload for GET /plans/:id/overdue.
type OverdueResponse struct {
	Tasks []models.OverdueTask `json:"tasks"`
}
