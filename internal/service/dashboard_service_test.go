package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/noah-isme/study-planner-api/internal/models"
)

func newDashboardFixture(t *testing.T) (*DashboardService, *planRepoStub) {
	t.Helper()
	repo := newPlanRepoStub()
	service := NewDashboardService(repo, nil, zap.NewNop(), 0)
	return service, repo
}

func seedDashboardPlan(repo *planRepoStub) {
	cfg := models.UserConfig{
		ExamID:      "demo_exam",
		UserID:      "user-1",
		StartDate:   "2024-01-01",
		ExamDate:    "2024-01-31",
		TotalDays:   30,
		HoursPerDay: 5,
	}
	days := []models.Day{
		{
			Date:  "2024-01-14",
			Phase: models.PhaseConcept,
			Tasks: []models.Task{
				{ID: "t1", Type: models.TaskTypeStudy, Priority: models.PriorityHigh, Duration: 180, Completed: true},
				{ID: "t2", Type: models.TaskTypeStudy, Priority: models.PriorityHigh, Duration: 180},
			},
		},
		{
			Date:  "2024-01-15",
			Phase: models.PhasePractice,
			Tasks: []models.Task{
				{ID: "t3", Type: models.TaskTypePractice, Priority: models.PriorityMedium, Duration: 240, Completed: true},
			},
		},
		{
			Date:  "2024-01-16",
			Phase: models.PhaseMockTest,
			Tasks: []models.Task{
				{ID: "t4", Type: models.TaskTypeTest, Priority: models.PriorityVeryHigh, Duration: 180},
			},
		},
	}
	repo.plans["plan-1"] = storedPlan(days, cfg)
}

func TestDashboardSummaryMetrics(t *testing.T) {
	service, repo := newDashboardFixture(t)
	seedDashboardPlan(repo)
	service.now = fixedClock("2024-01-15")

	summary, err := service.Summary(context.Background(), "plan-1")
	require.NoError(t, err)

	// clock is 2024-01-15T10:00Z, exam on 2024-01-31: 16 days remain
	assert.Equal(t, 16, summary.TimeMetrics.DaysRemaining)
	assert.Equal(t, 14, summary.TimeMetrics.DaysCompleted)
	assert.InDelta(t, 46.67, summary.TimeMetrics.CompletionRate, 0.01)
	assert.InDelta(t, 70.0, summary.TimeMetrics.TotalStudyHours, 0.001)
	assert.InDelta(t, 80.0, summary.TimeMetrics.EstimatedRemainingHours, 0.001)

	assert.Equal(t, 4, summary.TaskMetrics.TotalTasks)
	assert.Equal(t, 2, summary.TaskMetrics.CompletedTasks)
	assert.Equal(t, 2, summary.TaskMetrics.PendingTasks)
	assert.InDelta(t, 50.0, summary.TaskMetrics.TaskCompletionRate, 0.001)
}

func TestDashboardPerformanceWeighting(t *testing.T) {
	service, repo := newDashboardFixture(t)
	seedDashboardPlan(repo)
	service.now = fixedClock("2024-01-15")

	summary, err := service.Summary(context.Background(), "plan-1")
	require.NoError(t, err)

	// weights: t1,t2 = 3, t3 = 2.4, t4 = 6; completed 3 + 2.4 of 14.4
	assert.InDelta(t, 37.5, summary.Performance.Score, 0.01)
	require.Len(t, summary.Performance.Last7Days, 7)
	assert.Equal(t, "2024-01-15", summary.Performance.Last7Days[6].Date)
	assert.True(t, summary.Performance.Last7Days[6].Completed)
	assert.InDelta(t, 100.0, summary.Performance.Last7Days[6].CompletionRate, 0.001)
	// 2024-01-09 has nothing scheduled
	assert.False(t, summary.Performance.Last7Days[0].Completed)
}

func TestDashboardRecommendationsUrgency(t *testing.T) {
	service, repo := newDashboardFixture(t)
	seedDashboardPlan(repo)
	service.now = fixedClock("2024-01-15")

	summary, err := service.Summary(context.Background(), "plan-1")
	require.NoError(t, err)

	types := make([]string, 0, len(summary.Recommendations))
	for _, rec := range summary.Recommendations {
		types = append(types, rec.Type)
	}
	// behind schedule with under 30 days left
	assert.Contains(t, types, "urgent")
	assert.Contains(t, types, "warning")
}

func TestDashboardPredictionBounds(t *testing.T) {
	service, repo := newDashboardFixture(t)
	seedDashboardPlan(repo)
	service.now = fixedClock("2024-01-15")

	summary, err := service.Summary(context.Background(), "plan-1")
	require.NoError(t, err)

	assert.GreaterOrEqual(t, summary.Prediction.PredictedScore, 40)
	assert.LessOrEqual(t, summary.Prediction.PredictedScore, 98)
	assert.LessOrEqual(t, summary.Prediction.Confidence, 95)
	assert.Greater(t, summary.Prediction.RequiredDailyHours, 0)
	assert.NotEmpty(t, summary.Prediction.StudySuggestions)
}

func TestDashboardOnTrackFallback(t *testing.T) {
	service, repo := newDashboardFixture(t)
	cfg := models.UserConfig{
		ExamID:      "demo_exam",
		StartDate:   "2024-01-01",
		ExamDate:    "2024-06-30",
		TotalDays:   180,
		HoursPerDay: 5,
	}
	var days []models.Day
	for i := 0; i < 7; i++ {
		date := "2024-01-0" + string(rune('1'+i))
		days = append(days, models.Day{
			Date:  date,
			Phase: models.PhaseConcept,
			Tasks: []models.Task{{ID: "d" + date, Type: models.TaskTypeStudy, Priority: models.PriorityHigh, Duration: 60, Completed: true}},
		})
	}
	repo.plans["plan-1"] = storedPlan(days, cfg)
	service.now = fixedClock("2024-01-07")

	summary, err := service.Summary(context.Background(), "plan-1")
	require.NoError(t, err)
	require.Len(t, summary.Recommendations, 1)
	assert.Equal(t, "success", summary.Recommendations[0].Type)
	assert.InDelta(t, 100.0, summary.Performance.Consistency, 0.001)
}
