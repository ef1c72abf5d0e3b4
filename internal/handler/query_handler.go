package handler

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/study-planner-api/internal/dto"
	"github.com/noah-isme/study-planner-api/internal/models"
	"github.com/noah-isme/study-planner-api/internal/service"
	"github.com/noah-isme/study-planner-api/pkg/response"
)

const defaultUpcomingCount = 5

type scheduleReader interface {
	Schedule(ctx context.Context, planID string, filter models.TaskFilter) ([]models.Day, error)
	TasksForDate(ctx context.Context, planID, date string) ([]models.Task, error)
	Today(ctx context.Context, planID string) (string, *models.Day, error)
	Upcoming(ctx context.Context, planID string, count int) ([]models.UpcomingTask, error)
	Overdue(ctx context.Context, planID string) ([]models.OverdueTask, error)
	Stats(ctx context.Context, planID string) (models.ScheduleStats, error)
}

// QueryHandler exposes read-only schedule views.
type QueryHandler struct {
	service scheduleReader
}

// NewQueryHandler constructs the handler.
func NewQueryHandler(svc *service.QueryService) *QueryHandler {
	return &QueryHandler{service: svc}
}

// Schedule godoc
// @Summary Get the filtered schedule of a plan
// @Description Supports comma-separated values for subject, type, priority and status filters.
// @Tags Queries
// @Produce json
// @Param id path string true "Plan ID"
// @Param subject query string false "Subject filter"
// @Param type query string false "Task type filter"
// @Param priority query string false "Priority filter"
// @Param status query string false "Status filter (pending|completed)"
// @Param search query string false "Substring search over title, subject and description"
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date (YYYY-MM-DD)"
// @Success 200 {object} response.Envelope
// @Router /plans/{id}/schedule [get]
func (h *QueryHandler) Schedule(c *gin.Context) {
	var query dto.ScheduleQuery
	_ = c.ShouldBindQuery(&query)
	days, err := h.service.Schedule(c.Request.Context(), c.Param("id"), buildFilter(query))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, days, nil)
}

// Day godoc
// @Summary Get tasks scheduled on a specific date
// @Tags Queries
// @Produce json
// @Param id path string true "Plan ID"
// @Param date path string true "Date (YYYY-MM-DD)"
// @Success 200 {object} response.Envelope
// @Router /plans/{id}/days/{date} [get]
func (h *QueryHandler) Day(c *gin.Context) {
	tasks, err := h.service.TasksForDate(c.Request.Context(), c.Param("id"), c.Param("date"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, tasks, nil)
}

// Today godoc
// @Summary Get today's scheduled tasks
// @Tags Queries
// @Produce json
// @Param id path string true "Plan ID"
// @Success 200 {object} response.Envelope
// @Router /plans/{id}/today [get]
func (h *QueryHandler) Today(c *gin.Context) {
	date, day, err := h.service.Today(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	payload := dto.TodayResponse{Date: date, Day: day}
	if day != nil {
		payload.Tasks = day.Tasks
	}
	response.JSON(c, http.StatusOK, payload, nil)
}

// Upcoming godoc
// @Summary Get upcoming tasks across future days
// @Tags Queries
// @Produce json
// @Param id path string true "Plan ID"
// @Param count query int false "Maximum tasks to return (default 5)"
// @Success 200 {object} response.Envelope
// @Router /plans/{id}/upcoming [get]
func (h *QueryHandler) Upcoming(c *gin.Context) {
	count := defaultUpcomingCount
	if raw := c.Query("count"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			count = parsed
		}
	}
	tasks, err := h.service.Upcoming(c.Request.Context(), c.Param("id"), count)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, dto.UpcomingResponse{Tasks: tasks}, nil)
}

// Overdue godoc
// @Summary Get pending tasks whose date has passed
// @Tags Queries
// @Produce json
// @Param id path string true "Plan ID"
// @Success 200 {object} response.Envelope
// @Router /plans/{id}/overdue [get]
func (h *QueryHandler) Overdue(c *gin.Context) {
	tasks, err := h.service.Overdue(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, dto.OverdueResponse{Tasks: tasks}, nil)
}

// Stats godoc
// @Summary Get aggregate statistics for a plan
// @Tags Queries
// @Produce json
// @Param id path string true "Plan ID"
// @Success 200 {object} response.Envelope
// @Router /plans/{id}/stats [get]
func (h *QueryHandler) Stats(c *gin.Context) {
	stats, err := h.service.Stats(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, stats, nil)
}

func buildFilter(query dto.ScheduleQuery) models.TaskFilter {
	filter := models.TaskFilter{
		Subjects: splitList(query.Subject),
		Statuses: splitList(query.Status),
		Search:   strings.TrimSpace(query.Search),
		DateFrom: query.From,
		DateTo:   query.To,
	}
	for _, raw := range splitList(query.Type) {
		filter.Types = append(filter.Types, models.TaskType(raw))
	}
	for _, raw := range splitList(query.Priority) {
		filter.Priorities = append(filter.Priorities, models.TaskPriority(raw))
	}
	return filter
}

func splitList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
