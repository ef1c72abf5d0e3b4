package repository

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/study-planner-api/internal/models"
	appErrors "github.com/noah-isme/study-planner-api/pkg/errors"
)

func newPlanRepoMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	sqlxDB := sqlx.NewDb(db, "postgres")
	return sqlxDB, mock, func() {
		sqlxDB.Close()
		db.Close()
	}
}

func samplePlan() *models.StudyPlan {
	now := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)
	return &models.StudyPlan{
		ID:     "plan-1",
		ExamID: "neet_ug",
		UserID: "user-1",
		Config: models.UserConfig{
			ExamID:          "neet_ug",
			UserID:          "user-1",
			StartDate:       "2024-01-01",
			ExamDate:        "2024-03-31",
			TotalDays:       90,
			HoursPerDay:     6,
			IncludeWeekends: true,
		},
		Days: []models.Day{
			{
				Date:  "2024-01-01",
				Phase: models.PhaseConcept,
				Tasks: []models.Task{{
					ID:       "task-1",
					Title:    "Physics - Module 1",
					Subject:  "Physics",
					Type:     models.TaskTypeStudy,
					Priority: models.PriorityHigh,
					Duration: 180,
				}},
			},
		},
		GeneratedAt: now,
		UpdatedAt:   now,
	}
}

func TestPlanRepositoryUpsert(t *testing.T) {
	db, mock, cleanup := newPlanRepoMock(t)
	defer cleanup()
	repo := NewPlanRepository(db)

	mock.ExpectExec("INSERT INTO study_plans").
		WithArgs("plan-1", "neet_ug", "user-1", sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, repo.Upsert(context.Background(), samplePlan()))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPlanRepositoryFindByID(t *testing.T) {
	db, mock, cleanup := newPlanRepoMock(t)
	defer cleanup()
	repo := NewPlanRepository(db)

	plan := samplePlan()
	config, err := json.Marshal(plan.Config)
	require.NoError(t, err)
	schedule, err := json.Marshal(plan.Days)
	require.NoError(t, err)

	rows := sqlmock.NewRows([]string{"id", "exam_id", "user_id", "config", "schedule", "generated_at", "updated_at"}).
		AddRow(plan.ID, plan.ExamID, plan.UserID, config, schedule, plan.GeneratedAt, plan.UpdatedAt)
	mock.ExpectQuery("SELECT id, exam_id, user_id").
		WithArgs("plan-1").
		WillReturnRows(rows)

	found, err := repo.FindByID(context.Background(), "plan-1")
	require.NoError(t, err)
	assert.Equal(t, plan.ExamID, found.ExamID)
	assert.Equal(t, plan.Config.HoursPerDay, found.Config.HoursPerDay)
	require.Len(t, found.Days, 1)
	assert.Equal(t, "task-1", found.Days[0].Tasks[0].ID)
}

func TestPlanRepositoryFindByIDNotFound(t *testing.T) {
	db, mock, cleanup := newPlanRepoMock(t)
	defer cleanup()
	repo := NewPlanRepository(db)

	mock.ExpectQuery("SELECT id, exam_id, user_id").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"id", "exam_id", "user_id", "config", "schedule", "generated_at", "updated_at"}))

	_, err := repo.FindByID(context.Background(), "missing")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestPlanRepositoryListByUser(t *testing.T) {
	db, mock, cleanup := newPlanRepoMock(t)
	defer cleanup()
	repo := NewPlanRepository(db)

	plan := samplePlan()
	config, err := json.Marshal(plan.Config)
	require.NoError(t, err)
	schedule, err := json.Marshal(plan.Days)
	require.NoError(t, err)

	rows := sqlmock.NewRows([]string{"id", "exam_id", "user_id", "config", "schedule", "generated_at", "updated_at"}).
		AddRow(plan.ID, plan.ExamID, plan.UserID, config, schedule, plan.GeneratedAt, plan.UpdatedAt)
	mock.ExpectQuery("SELECT id, exam_id, user_id").
		WithArgs("user-1").
		WillReturnRows(rows)

	plans, err := repo.ListByUser(context.Background(), "user-1")
	require.NoError(t, err)
	require.Len(t, plans, 1)
	assert.Equal(t, "plan-1", plans[0].ID)
}

func TestPlanRepositoryDelete(t *testing.T) {
	db, mock, cleanup := newPlanRepoMock(t)
	defer cleanup()
	repo := NewPlanRepository(db)

	mock.ExpectExec("DELETE FROM study_plans").
		WithArgs("plan-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.Delete(context.Background(), "plan-1"))

	mock.ExpectExec("DELETE FROM study_plans").
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))
	err := repo.Delete(context.Background(), "missing")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}
