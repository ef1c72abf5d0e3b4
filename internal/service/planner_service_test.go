package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/noah-isme/study-planner-api/internal/dto"
	"github.com/noah-isme/study-planner-api/internal/models"
	appErrors "github.com/noah-isme/study-planner-api/pkg/errors"
)

func newPlannerFixture(exams ...models.Exam) (*PlannerService, *planRepoStub) {
	registry := make(map[string]models.Exam, len(exams))
	for _, exam := range exams {
		registry[exam.ID] = exam
	}
	repo := newPlanRepoStub()
	service := NewPlannerService(
		&examProviderStub{exams: registry},
		repo,
		nil,
		nil,
		nil,
		zap.NewNop(),
		PlannerConfig{OverloadTolerance: 1.2, ProposalTTL: time.Minute},
	)
	return service, repo
}

func thirtyDayConfig(examID string) models.UserConfig {
	return models.UserConfig{
		ExamID:          examID,
		UserID:          "user-1",
		StartDate:       "2024-01-01",
		ExamDate:        "2024-01-31",
		TotalDays:       30,
		HoursPerDay:     5,
		IncludeWeekends: true,
	}
}

func TestGenerateSingleSubjectAllocation(t *testing.T) {
	service, _ := newPlannerFixture(singleSubjectExam())

	resp, err := service.Generate(context.Background(), dto.GeneratePlanRequest{
		UserConfig: thirtyDayConfig("demo_exam"),
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.PlanID)

	// 150 total hours, 60% concept: ceil(90/5) = 18 module days of 180 minutes.
	var conceptTasks []models.Task
	for _, day := range resp.Schedule {
		for _, task := range day.Tasks {
			if task.Type == models.TaskTypeStudy {
				conceptTasks = append(conceptTasks, task)
			}
		}
	}
	require.Len(t, conceptTasks, 18)
	for _, task := range conceptTasks {
		assert.Equal(t, 180, task.Duration)
		assert.Equal(t, models.PriorityHigh, task.Priority)
		assert.Equal(t, "Physics", task.Subject)
	}
	assert.Equal(t, "Physics - Module 1", conceptTasks[0].Title)

	assert.Equal(t, 30, resp.Metadata.EffectiveDays)
	assert.Equal(t, 150.0, resp.Metadata.TotalHours)
	assert.Equal(t, 90.0, resp.Metadata.ConceptHours)
	assert.Equal(t, 37.5, resp.Metadata.PracticeHours)
	assert.Equal(t, 22.5, resp.Metadata.RevisionHours)
}

func TestGenerateNoDuplicateDates(t *testing.T) {
	service, _ := newPlannerFixture(singleSubjectExam())

	resp, err := service.Generate(context.Background(), dto.GeneratePlanRequest{
		UserConfig: thirtyDayConfig("demo_exam"),
	})
	require.NoError(t, err)

	seen := make(map[string]bool)
	previous := ""
	for _, day := range resp.Schedule {
		assert.False(t, seen[day.Date], "duplicate date %s", day.Date)
		seen[day.Date] = true
		assert.True(t, day.Date > previous, "days out of order at %s", day.Date)
		previous = day.Date
	}
}

func TestGenerateWeightProportionality(t *testing.T) {
	service, _ := newPlannerFixture(twoSubjectExam())

	resp, err := service.Generate(context.Background(), dto.GeneratePlanRequest{
		UserConfig: thirtyDayConfig("weighted_exam"),
	})
	require.NoError(t, err)

	// conceptHours = 90; weights 100/300 and 200/300 give 30h and 60h,
	// so 6 module days for Minor and 12 for Major.
	counts := make(map[string]int)
	for _, day := range resp.Schedule {
		for _, task := range day.Tasks {
			if task.Type == models.TaskTypeStudy {
				counts[task.Subject]++
			}
		}
	}
	assert.Equal(t, 6, counts["Minor"])
	assert.Equal(t, 12, counts["Major"])
}

func TestGenerateWeekendExclusion(t *testing.T) {
	service, _ := newPlannerFixture(singleSubjectExam())

	cfg := thirtyDayConfig("demo_exam")
	cfg.IncludeWeekends = false
	resp, err := service.Generate(context.Background(), dto.GeneratePlanRequest{UserConfig: cfg})
	require.NoError(t, err)

	// 30 days: 4 full weeks keep 5 weekdays each, the 2-day remainder stays.
	assert.Equal(t, 22, resp.Metadata.EffectiveDays)
	assert.Equal(t, 110.0, resp.Metadata.TotalHours)
}

func TestGenerateRevisionMockCadence(t *testing.T) {
	service, _ := newPlannerFixture(singleSubjectExam())

	resp, err := service.Generate(context.Background(), dto.GeneratePlanRequest{
		UserConfig: thirtyDayConfig("demo_exam"),
	})
	require.NoError(t, err)

	var mocks, revisions int
	for _, day := range resp.Schedule {
		for _, task := range day.Tasks {
			switch task.Type {
			case models.TaskTypeTest:
				mocks++
				assert.Equal(t, 180, task.Duration)
				assert.Equal(t, models.PriorityVeryHigh, task.Priority)
				assert.Equal(t, "Full Syllabus", task.Subject)
			case models.TaskTypeRevision:
				revisions++
				assert.Equal(t, 210, task.Duration)
				assert.Equal(t, models.PriorityHigh, task.Priority)
			}
		}
	}
	// ceil(22.5/5) = 5 revision-phase days: indexes 0 and 3 are mock tests.
	assert.Equal(t, 2, mocks)
	assert.Equal(t, 3, revisions)
}

func TestGenerateInvalidConfig(t *testing.T) {
	service, _ := newPlannerFixture(singleSubjectExam())

	cases := []struct {
		name   string
		mutate func(*models.UserConfig)
	}{
		{"exam date before start", func(c *models.UserConfig) { c.ExamDate = "2023-12-01" }},
		{"too few days", func(c *models.UserConfig) { c.ExamDate = "2024-01-05"; c.TotalDays = 4 }},
		{"non-positive hours", func(c *models.UserConfig) { c.HoursPerDay = 0 }},
		{"bad start date", func(c *models.UserConfig) { c.StartDate = "01/01/2024" }},
		{"unknown difficulty", func(c *models.UserConfig) { c.Difficulty = "impossible" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := thirtyDayConfig("demo_exam")
			tc.mutate(&cfg)
			_, err := service.Generate(context.Background(), dto.GeneratePlanRequest{UserConfig: cfg})
			require.Error(t, err)
			if cfg.HoursPerDay != 0 {
				assert.Equal(t, appErrors.ErrInvalidConfig.Code, appErrors.FromError(err).Code)
			}
		})
	}
}

func TestGenerateUnknownExam(t *testing.T) {
	service, _ := newPlannerFixture(singleSubjectExam())

	_, err := service.Generate(context.Background(), dto.GeneratePlanRequest{
		UserConfig: thirtyDayConfig("missing_exam"),
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrSyllabusNotFound.Code, appErrors.FromError(err).Code)
}

func TestSavePersistsGeneratedPlan(t *testing.T) {
	service, repo := newPlannerFixture(singleSubjectExam())

	resp, err := service.Generate(context.Background(), dto.GeneratePlanRequest{
		UserConfig: thirtyDayConfig("demo_exam"),
	})
	require.NoError(t, err)

	plan, err := service.Save(context.Background(), dto.SavePlanRequest{PlanID: resp.PlanID})
	require.NoError(t, err)
	assert.Equal(t, resp.PlanID, plan.ID)
	assert.Equal(t, "demo_exam", plan.ExamID)
	assert.Equal(t, "user-1", plan.UserID)
	assert.Len(t, repo.plans, 1)

	// saving consumes the proposal
	_, err = service.Save(context.Background(), dto.SavePlanRequest{PlanID: resp.PlanID})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestSaveUnknownPlan(t *testing.T) {
	service, _ := newPlannerFixture(singleSubjectExam())

	_, err := service.Save(context.Background(), dto.SavePlanRequest{PlanID: "nope"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestRebalanceMovesOverloadedTasks(t *testing.T) {
	service, repo := newPlannerFixture(singleSubjectExam())

	cfg := thirtyDayConfig("demo_exam")
	days := []models.Day{
		{
			Date:  "2024-01-10",
			Phase: models.PhaseConcept,
			Tasks: []models.Task{
				{ID: "t1", Title: "A", Priority: models.PriorityHigh, Duration: 180},
				{ID: "t2", Title: "B", Priority: models.PriorityMedium, Duration: 150},
				{ID: "t3", Title: "C", Priority: models.PriorityLow, Duration: 150},
				{ID: "t4", Title: "D", Priority: models.PriorityMedium, Duration: 120},
			},
		},
	}
	repo.plans["plan-1"] = storedPlan(days, cfg)

	resp, err := service.Rebalance(context.Background(), "plan-1")
	require.NoError(t, err)
	assert.Greater(t, resp.TasksMoved, 0)

	// 600 minutes against a 300 minute budget and 360 trigger: at least one
	// low or medium task lands on the following date.
	next := resp.Schedule[dayIndexTest(resp.Schedule, "2024-01-11")]
	assert.Equal(t, models.PhaseBuffer, next.Phase)
	require.NotEmpty(t, next.Tasks)
	for _, task := range next.Tasks {
		assert.True(t, task.Priority.Movable())
	}
	origin := resp.Schedule[dayIndexTest(resp.Schedule, "2024-01-10")]
	assert.Less(t, origin.TotalDuration(), 600)
}

func TestBalanceLeavesResidualOverload(t *testing.T) {
	days := []models.Day{
		{
			Date:  "2024-01-10",
			Phase: models.PhaseConcept,
			Tasks: []models.Task{
				{ID: "t1", Priority: models.PriorityVeryHigh, Duration: 300},
				{ID: "t2", Priority: models.PriorityHigh, Duration: 300},
			},
		},
	}
	balanced, moved, overloaded := balanceLoad(days, 5, 1.2)
	assert.Zero(t, moved)
	assert.Equal(t, 1, overloaded)
	assert.Equal(t, 600, balanced[0].TotalDuration())
}

func TestPhaseForPosition(t *testing.T) {
	assert.Equal(t, models.PhaseConcept, PhaseForPosition(0))
	assert.Equal(t, models.PhaseConcept, PhaseForPosition(59.9))
	assert.Equal(t, models.PhasePractice, PhaseForPosition(60))
	assert.Equal(t, models.PhasePractice, PhaseForPosition(84.9))
	assert.Equal(t, models.PhaseRevision, PhaseForPosition(85))
	assert.Equal(t, models.PhaseRevision, PhaseForPosition(100))
}

func TestGenerateRecommendationsAndPrediction(t *testing.T) {
	service, _ := newPlannerFixture(singleSubjectExam())

	cfg := thirtyDayConfig("demo_exam")
	cfg.HoursPerDay = 3
	cfg.ExamDate = "2024-03-31"
	cfg.TotalDays = 90
	resp, err := service.Generate(context.Background(), dto.GeneratePlanRequest{UserConfig: cfg})
	require.NoError(t, err)

	titles := make([]string, 0, len(resp.Recommendations))
	for _, rec := range resp.Recommendations {
		titles = append(titles, rec.Title)
	}
	assert.Contains(t, titles, "Low Study Hours")
	assert.Contains(t, titles, "Spaced Repetition")

	assert.GreaterOrEqual(t, resp.Prediction.PredictedScore, 40)
	assert.LessOrEqual(t, resp.Prediction.PredictedScore, 95)
	assert.LessOrEqual(t, resp.Prediction.Confidence, 95)
	assert.Contains(t, resp.Prediction.ImprovementAreas, "Increase daily study hours")
}

func TestDeletePlan(t *testing.T) {
	service, repo := newPlannerFixture(singleSubjectExam())
	repo.plans["plan-1"] = storedPlan(nil, thirtyDayConfig("demo_exam"))

	require.NoError(t, service.DeletePlan(context.Background(), "plan-1"))
	assert.Empty(t, repo.plans)

	err := service.DeletePlan(context.Background(), "plan-1")
	require.Error(t, err)
}

func dayIndexTest(days []models.Day, date string) int {
	idx := dayIndex(days, date)
	if idx < 0 {
		panic("date not found: " + date)
	}
	return idx
}
