package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/jmoiron/sqlx/types"

	"github.com/noah-isme/study-planner-api/internal/models"
	appErrors "github.com/noah-isme/study-planner-api/pkg/errors"
)

// PlanRepository persists study plans. The user configuration and the day
// list are stored as JSONB columns; the schedule column is exactly the JSON
// serialization used by the export surface.
type PlanRepository struct {
	db *sqlx.DB
}

// NewPlanRepository constructs the repository.
func NewPlanRepository(db *sqlx.DB) *PlanRepository {
	return &PlanRepository{db: db}
}

type planRow struct {
	ID          string         `db:"id"`
	ExamID      string         `db:"exam_id"`
	UserID      string         `db:"user_id"`
	Config      types.JSONText `db:"config"`
	Schedule    types.JSONText `db:"schedule"`
	GeneratedAt time.Time      `db:"generated_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

// Upsert inserts or replaces a study plan.
func (r *PlanRepository) Upsert(ctx context.Context, plan *models.StudyPlan) error {
	row, err := toRow(plan)
	if err != nil {
		return err
	}
	const query = `INSERT INTO study_plans (id, exam_id, user_id, config, schedule, generated_at, updated_at)
VALUES (:id, :exam_id, :user_id, :config, :schedule, :generated_at, :updated_at)
ON CONFLICT (id)
DO UPDATE SET exam_id = EXCLUDED.exam_id, user_id = EXCLUDED.user_id, config = EXCLUDED.config,
              schedule = EXCLUDED.schedule, updated_at = EXCLUDED.updated_at`
	if _, err := r.db.NamedExecContext(ctx, query, row); err != nil {
		return fmt.Errorf("upsert study plan: %w", err)
	}
	return nil
}

// FindByID fetches one study plan.
func (r *PlanRepository) FindByID(ctx context.Context, id string) (*models.StudyPlan, error) {
	const query = `SELECT id, exam_id, user_id, config, schedule, generated_at, updated_at
FROM study_plans WHERE id = $1`
	var row planRow
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "study plan "+id+" not found")
		}
		return nil, fmt.Errorf("find study plan: %w", err)
	}
	return fromRow(row)
}

// ListByUser returns every plan saved for one user, newest first.
func (r *PlanRepository) ListByUser(ctx context.Context, userID string) ([]models.StudyPlan, error) {
	const query = `SELECT id, exam_id, user_id, config, schedule, generated_at, updated_at
FROM study_plans WHERE user_id = $1 ORDER BY generated_at DESC`
	var rows []planRow
	if err := r.db.SelectContext(ctx, &rows, query, userID); err != nil {
		return nil, fmt.Errorf("list study plans: %w", err)
	}
	plans := make([]models.StudyPlan, 0, len(rows))
	for _, row := range rows {
		plan, err := fromRow(row)
		if err != nil {
			return nil, err
		}
		plans = append(plans, *plan)
	}
	return plans, nil
}

// Delete removes a study plan.
func (r *PlanRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM study_plans WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete study plan: %w", err)
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return appErrors.Clone(appErrors.ErrNotFound, "study plan "+id+" not found")
	}
	return nil
}

func toRow(plan *models.StudyPlan) (planRow, error) {
	config, err := json.Marshal(plan.Config)
	if err != nil {
		return planRow{}, fmt.Errorf("marshal plan config: %w", err)
	}
	schedule, err := json.Marshal(plan.Days)
	if err != nil {
		return planRow{}, fmt.Errorf("marshal plan schedule: %w", err)
	}
	return planRow{
		ID:          plan.ID,
		ExamID:      plan.ExamID,
		UserID:      plan.UserID,
		Config:      types.JSONText(config),
		Schedule:    types.JSONText(schedule),
		GeneratedAt: plan.GeneratedAt,
		UpdatedAt:   plan.UpdatedAt,
	}, nil
}

func fromRow(row planRow) (*models.StudyPlan, error) {
	plan := &models.StudyPlan{
		ID:          row.ID,
		ExamID:      row.ExamID,
		UserID:      row.UserID,
		GeneratedAt: row.GeneratedAt,
		UpdatedAt:   row.UpdatedAt,
	}
	if len(row.Config) > 0 {
		if err := json.Unmarshal(row.Config, &plan.Config); err != nil {
			return nil, fmt.Errorf("unmarshal plan config: %w", err)
		}
	}
	if len(row.Schedule) > 0 {
		if err := json.Unmarshal(row.Schedule, &plan.Days); err != nil {
			return nil, fmt.Errorf("unmarshal plan schedule: %w", err)
		}
	}
	return plan, nil
}
