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

func newMutationFixture(t *testing.T) (*MutationService, *planRepoStub) {
	t.Helper()
	repo := newPlanRepoStub()
	service := NewMutationService(repo, nil, nil, zap.NewNop())
	return service, repo
}

func seedPlan(repo *planRepoStub) models.UserConfig {
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
			Date:  "2024-01-02",
			Phase: models.PhaseConcept,
			Tasks: []models.Task{
				{ID: "t1", Title: "Physics - Module 1", Subject: "Physics", Type: models.TaskTypeStudy, Priority: models.PriorityHigh, Duration: 180},
				{ID: "t2", Title: "Physics Practice Session", Subject: "Physics", Type: models.TaskTypePractice, Priority: models.PriorityMedium, Duration: 240},
			},
		},
		{
			Date:  "2024-01-05",
			Phase: models.PhaseConcept,
			Tasks: []models.Task{
				{ID: "t3", Title: "Chemistry - Module 1", Subject: "Chemistry", Type: models.TaskTypeStudy, Priority: models.PriorityHigh, Duration: 180},
			},
		},
	}
	repo.plans["plan-1"] = storedPlan(days, cfg)
	return cfg
}

func TestAddTaskCreatesDayWithDerivedPhase(t *testing.T) {
	service, repo := newMutationFixture(t)
	seedPlan(repo)

	resp, err := service.AddTask(context.Background(), "plan-1", dto.AddTaskRequest{
		Date:     "2024-01-28",
		ID:       "t4",
		Title:    "Extra Revision",
		Subject:  "Physics",
		Type:     models.TaskTypeRevision,
		Priority: models.PriorityLow,
		Duration: 60,
	})
	require.NoError(t, err)

	idx := dayIndexTest(resp.Schedule, "2024-01-28")
	// day 27 of 30 is past the 85% boundary
	assert.Equal(t, models.PhaseRevision, resp.Schedule[idx].Phase)
	require.Len(t, resp.Schedule[idx].Tasks, 1)
	assert.Equal(t, "t4", resp.Schedule[idx].Tasks[0].ID)

	// days stay sorted after insertion
	assert.Equal(t, "2024-01-02", resp.Schedule[0].Date)
	assert.Equal(t, "2024-01-28", resp.Schedule[len(resp.Schedule)-1].Date)
}

func TestAddTaskAppendsToExistingDay(t *testing.T) {
	service, repo := newMutationFixture(t)
	seedPlan(repo)

	resp, err := service.AddTask(context.Background(), "plan-1", dto.AddTaskRequest{
		Date:     "2024-01-02",
		Title:    "Untitled drill",
		Duration: 30,
	})
	require.NoError(t, err)

	idx := dayIndexTest(resp.Schedule, "2024-01-02")
	require.Len(t, resp.Schedule[idx].Tasks, 3)
	added := resp.Schedule[idx].Tasks[2]
	assert.NotEmpty(t, added.ID)
	assert.Equal(t, models.TaskTypeStudy, added.Type)
	assert.Equal(t, models.PriorityMedium, added.Priority)
}

func TestAddTaskDuplicateID(t *testing.T) {
	service, repo := newMutationFixture(t)
	seedPlan(repo)

	_, err := service.AddTask(context.Background(), "plan-1", dto.AddTaskRequest{
		Date:     "2024-01-09",
		ID:       "t1",
		Title:    "Colliding",
		Duration: 30,
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrDuplicateTask.Code, appErrors.FromError(err).Code)
}

func TestUpdateTaskMergesPatch(t *testing.T) {
	service, repo := newMutationFixture(t)
	seedPlan(repo)

	title := "Physics - Module 1 (revised)"
	duration := 90
	priority := models.PriorityLow
	resp, err := service.UpdateTask(context.Background(), "plan-1", "t1", dto.UpdateTaskRequest{
		Title:    &title,
		Duration: &duration,
		Priority: &priority,
	})
	require.NoError(t, err)

	idx := dayIndexTest(resp.Schedule, "2024-01-02")
	task := resp.Schedule[idx].Tasks[0]
	assert.Equal(t, title, task.Title)
	assert.Equal(t, 90, task.Duration)
	assert.Equal(t, models.PriorityLow, task.Priority)
	// untouched fields survive
	assert.Equal(t, "Physics", task.Subject)
	assert.Equal(t, models.TaskTypeStudy, task.Type)
}

func TestUpdateTaskNotFound(t *testing.T) {
	service, repo := newMutationFixture(t)
	seedPlan(repo)

	title := "whatever"
	_, err := service.UpdateTask(context.Background(), "plan-1", "ghost", dto.UpdateTaskRequest{Title: &title})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestDeleteTaskPrunesEmptyDay(t *testing.T) {
	service, repo := newMutationFixture(t)
	seedPlan(repo)

	resp, err := service.DeleteTask(context.Background(), "plan-1", "t3")
	require.NoError(t, err)

	assert.Equal(t, -1, dayIndex(resp.Schedule, "2024-01-05"))
	assert.Len(t, resp.Schedule, 1)
}

func TestMoveTaskPrunesSourceAndDerivesPhase(t *testing.T) {
	service, repo := newMutationFixture(t)
	seedPlan(repo)

	resp, err := service.MoveTask(context.Background(), "plan-1", "t3", dto.MoveTaskRequest{ToDate: "2024-01-20"})
	require.NoError(t, err)

	assert.Equal(t, -1, dayIndex(resp.Schedule, "2024-01-05"))
	idx := dayIndexTest(resp.Schedule, "2024-01-20")
	// day 19 of 30 lands between the 60% and 85% boundaries
	assert.Equal(t, models.PhasePractice, resp.Schedule[idx].Phase)
	require.Len(t, resp.Schedule[idx].Tasks, 1)
	assert.Equal(t, "t3", resp.Schedule[idx].Tasks[0].ID)
	assert.False(t, resp.Schedule[idx].Tasks[0].Completed)
}

func TestCompleteTaskIdempotent(t *testing.T) {
	service, repo := newMutationFixture(t)
	seedPlan(repo)
	service.now = fixedClock("2024-01-03")

	resp, err := service.CompleteTask(context.Background(), "plan-1", "t1", dto.CompleteTaskRequest{
		Notes:     "went well",
		TimeTaken: 150,
	})
	require.NoError(t, err)

	idx := dayIndexTest(resp.Schedule, "2024-01-02")
	task := resp.Schedule[idx].Tasks[0]
	require.True(t, task.Completed)
	require.NotNil(t, task.CompletedAt)
	first := *task.CompletedAt
	assert.Equal(t, "went well", task.CompletionNotes)
	assert.Equal(t, 150, task.TimeTaken)

	service.now = func() time.Time { return first.Add(2 * time.Hour) }
	resp, err = service.CompleteTask(context.Background(), "plan-1", "t1", dto.CompleteTaskRequest{})
	require.NoError(t, err)
	task = resp.Schedule[idx].Tasks[0]
	assert.True(t, task.Completed)
	require.NotNil(t, task.CompletedAt)
	assert.True(t, task.CompletedAt.After(first))
	// earlier feedback is kept when the new payload is empty
	assert.Equal(t, "went well", task.CompletionNotes)
	assert.Equal(t, 150, task.TimeTaken)
}

func TestMutationUnknownPlan(t *testing.T) {
	service, _ := newMutationFixture(t)

	_, err := service.DeleteTask(context.Background(), "nope", "t1")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}
