package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/study-planner-api/internal/models"
)

type scheduleReaderMock struct {
	planID   string
	filter   models.TaskFilter
	count    int
	date     string
	today    *models.Day
	todayDay string
}

func (m *scheduleReaderMock) Schedule(ctx context.Context, planID string, filter models.TaskFilter) ([]models.Day, error) {
	m.planID, m.filter = planID, filter
	return []models.Day{{Date: "2024-01-10"}}, nil
}

func (m *scheduleReaderMock) TasksForDate(ctx context.Context, planID, date string) ([]models.Task, error) {
	m.planID, m.date = planID, date
	return []models.Task{{ID: "t1"}}, nil
}

func (m *scheduleReaderMock) Today(ctx context.Context, planID string) (string, *models.Day, error) {
	m.planID = planID
	return m.todayDay, m.today, nil
}

func (m *scheduleReaderMock) Upcoming(ctx context.Context, planID string, count int) ([]models.UpcomingTask, error) {
	m.planID, m.count = planID, count
	return nil, nil
}

func (m *scheduleReaderMock) Overdue(ctx context.Context, planID string) ([]models.OverdueTask, error) {
	m.planID = planID
	return nil, nil
}

func (m *scheduleReaderMock) Stats(ctx context.Context, planID string) (models.ScheduleStats, error) {
	m.planID = planID
	return models.ScheduleStats{TotalTasks: 12, CompletedTasks: 3}, nil
}

func newQueryRouter(mock *scheduleReaderMock) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := &QueryHandler{service: mock}
	router := gin.New()
	router.GET("/plans/:id/schedule", h.Schedule)
	router.GET("/plans/:id/days/:date", h.Day)
	router.GET("/plans/:id/today", h.Today)
	router.GET("/plans/:id/upcoming", h.Upcoming)
	router.GET("/plans/:id/overdue", h.Overdue)
	router.GET("/plans/:id/stats", h.Stats)
	return router
}

func TestQueryScheduleFilterParsing(t *testing.T) {
	mock := &scheduleReaderMock{}
	router := newQueryRouter(mock)
	target := "/plans/plan-1/schedule?subject=Physics,Chemistry&type=study&priority=high,medium&status=pending&search=mock&from=2024-01-01&to=2024-02-01"
	req, _ := http.NewRequest(http.MethodGet, target, nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "plan-1", mock.planID)
	require.Equal(t, []string{"Physics", "Chemistry"}, mock.filter.Subjects)
	require.Equal(t, []models.TaskType{models.TaskTypeStudy}, mock.filter.Types)
	require.Equal(t, []models.TaskPriority{models.PriorityHigh, models.PriorityMedium}, mock.filter.Priorities)
	require.Equal(t, []string{"pending"}, mock.filter.Statuses)
	require.Equal(t, "mock", mock.filter.Search)
	require.Equal(t, "2024-01-01", mock.filter.DateFrom)
	require.Equal(t, "2024-02-01", mock.filter.DateTo)
}

func TestQueryScheduleNoFilters(t *testing.T) {
	mock := &scheduleReaderMock{}
	router := newQueryRouter(mock)
	req, _ := http.NewRequest(http.MethodGet, "/plans/plan-1/schedule", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.True(t, mock.filter.IsZero())
}

func TestQueryDay(t *testing.T) {
	mock := &scheduleReaderMock{}
	router := newQueryRouter(mock)
	req, _ := http.NewRequest(http.MethodGet, "/plans/plan-1/days/2024-01-10", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "2024-01-10", mock.date)
}

func TestQueryTodayRestDay(t *testing.T) {
	mock := &scheduleReaderMock{todayDay: "2024-01-11"}
	router := newQueryRouter(mock)
	req, _ := http.NewRequest(http.MethodGet, "/plans/plan-1/today", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "\"date\":\"2024-01-11\"")
	require.Contains(t, w.Body.String(), "\"day\":null")
}

func TestQueryUpcomingCount(t *testing.T) {
	mock := &scheduleReaderMock{}
	router := newQueryRouter(mock)
	req, _ := http.NewRequest(http.MethodGet, "/plans/plan-1/upcoming?count=3", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, 3, mock.count)
}

func TestQueryUpcomingDefaultCount(t *testing.T) {
	mock := &scheduleReaderMock{}
	router := newQueryRouter(mock)
	req, _ := http.NewRequest(http.MethodGet, "/plans/plan-1/upcoming", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, defaultUpcomingCount, mock.count)
}

func TestQueryStats(t *testing.T) {
	mock := &scheduleReaderMock{}
	router := newQueryRouter(mock)
	req, _ := http.NewRequest(http.MethodGet, "/plans/plan-1/stats", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "\"totalTasks\":12")
}
