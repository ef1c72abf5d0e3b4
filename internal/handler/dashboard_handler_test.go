package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/study-planner-api/internal/models"
	appErrors "github.com/noah-isme/study-planner-api/pkg/errors"
)

type dashboardReaderMock struct {
	planID string
	err    error
}

func (m *dashboardReaderMock) Summary(ctx context.Context, planID string) (*models.DashboardSummary, error) {
	m.planID = planID
	if m.err != nil {
		return nil, m.err
	}
	return &models.DashboardSummary{
		Performance: models.DashboardPerformance{Efficiency: 72.5},
	}, nil
}

func newDashboardRouter(mock *dashboardReaderMock) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := &DashboardHandler{service: mock}
	router := gin.New()
	router.GET("/plans/:id/dashboard", h.Summary)
	return router
}

func TestDashboardSummary(t *testing.T) {
	mock := &dashboardReaderMock{}
	router := newDashboardRouter(mock)
	req, _ := http.NewRequest(http.MethodGet, "/plans/plan-1/dashboard", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "plan-1", mock.planID)
	require.Contains(t, w.Body.String(), "performanceMetrics")
}

func TestDashboardSummaryUnknownPlan(t *testing.T) {
	mock := &dashboardReaderMock{err: appErrors.Clone(appErrors.ErrNotFound, "plan ghost not found")}
	router := newDashboardRouter(mock)
	req, _ := http.NewRequest(http.MethodGet, "/plans/ghost/dashboard", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)
	require.Contains(t, w.Body.String(), appErrors.ErrNotFound.Code)
}
