package service

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/noah-isme/study-planner-api/internal/dto"
	"github.com/noah-isme/study-planner-api/internal/models"
	appErrors "github.com/noah-isme/study-planner-api/pkg/errors"
)

// MutationService applies task-level edits to persisted plans. Every edit is
// copy-on-write over the day list, so a failed persist leaves the stored
// plan untouched.
type MutationService struct {
	plans     planRepository
	cache     *CacheService
	validator *validator.Validate
	logger    *zap.Logger
	now       func() time.Time
}

// NewMutationService wires mutation dependencies.
func NewMutationService(plans planRepository, cache *CacheService, validate *validator.Validate, logger *zap.Logger) *MutationService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MutationService{
		plans:     plans,
		cache:     cache,
		validator: validate,
		logger:    logger,
		now:       time.Now,
	}
}

// AddTask inserts a task on the requested date, creating the day when it is
// not scheduled yet.
func (s *MutationService) AddTask(ctx context.Context, planID string, req dto.AddTaskRequest) (*dto.TaskMutationResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid task payload")
	}
	if _, err := time.Parse(models.DateLayout, req.Date); err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, "date must be a YYYY-MM-DD date")
	}
	task := models.Task{
		ID:       req.ID,
		Title:    req.Title,
		Subject:  req.Subject,
		Type:     req.Type,
		Priority: req.Priority,
		Duration: req.Duration,
		Topics:   req.Topics,
	}
	if task.ID == "" {
		task.ID = uuid.NewString()
	}
	if task.Type == "" {
		task.Type = models.TaskTypeStudy
	}
	if !task.Type.Valid() {
		return nil, appErrors.Clone(appErrors.ErrValidation, "unknown task type")
	}
	if task.Priority == "" {
		task.Priority = models.PriorityMedium
	}
	if !task.Priority.Valid() {
		return nil, appErrors.Clone(appErrors.ErrValidation, "unknown task priority")
	}

	return s.apply(ctx, planID, "task added", task.ID, func(plan *models.StudyPlan, days []models.Day) ([]models.Day, error) {
		return addTask(days, req.Date, task, plan.Config)
	})
}

// UpdateTask merges the patch into the matching task wherever it lives.
func (s *MutationService) UpdateTask(ctx context.Context, planID, taskID string, req dto.UpdateTaskRequest) (*dto.TaskMutationResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid task patch")
	}
	if req.Type != nil && !req.Type.Valid() {
		return nil, appErrors.Clone(appErrors.ErrValidation, "unknown task type")
	}
	if req.Priority != nil && !req.Priority.Valid() {
		return nil, appErrors.Clone(appErrors.ErrValidation, "unknown task priority")
	}
	return s.apply(ctx, planID, "task updated", taskID, func(_ *models.StudyPlan, days []models.Day) ([]models.Day, error) {
		return updateTask(days, taskID, req)
	})
}

// DeleteTask removes a task, pruning its day when it becomes empty.
func (s *MutationService) DeleteTask(ctx context.Context, planID, taskID string) (*dto.TaskMutationResponse, error) {
	return s.apply(ctx, planID, "task deleted", taskID, func(_ *models.StudyPlan, days []models.Day) ([]models.Day, error) {
		return deleteTask(days, taskID)
	})
}

// MoveTask relocates a task to another date. The source day is pruned if
// emptied; the target day is created with a span-derived phase if absent.
func (s *MutationService) MoveTask(ctx context.Context, planID, taskID string, req dto.MoveTaskRequest) (*dto.TaskMutationResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid move payload")
	}
	if _, err := time.Parse(models.DateLayout, req.ToDate); err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, "toDate must be a YYYY-MM-DD date")
	}
	return s.apply(ctx, planID, "task moved", taskID, func(plan *models.StudyPlan, days []models.Day) ([]models.Day, error) {
		return moveTask(days, taskID, req.ToDate, plan.Config)
	})
}

// CompleteTask marks a task done. Completing an already-completed task just
// refreshes the timestamp and feedback fields.
func (s *MutationService) CompleteTask(ctx context.Context, planID, taskID string, req dto.CompleteTaskRequest) (*dto.TaskMutationResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid completion payload")
	}
	completedAt := s.now().UTC()
	return s.apply(ctx, planID, "task completed", taskID, func(_ *models.StudyPlan, days []models.Day) ([]models.Day, error) {
		return completeTask(days, taskID, completedAt, req.Notes, req.TimeTaken)
	})
}

func (s *MutationService) apply(
	ctx context.Context,
	planID, action, taskID string,
	mutate func(plan *models.StudyPlan, days []models.Day) ([]models.Day, error),
) (*dto.TaskMutationResponse, error) {
	plan, err := s.plans.FindByID(ctx, planID)
	if err != nil {
		return nil, err
	}
	days, err := mutate(plan, models.CloneDays(plan.Days))
	if err != nil {
		return nil, err
	}
	plan.Days = days
	plan.UpdatedAt = s.now().UTC()
	if err := s.plans.Upsert(ctx, plan); err != nil {
		return nil, err
	}
	if err := s.cache.Invalidate(ctx, PlanCacheKey(planID, "*")); err != nil {
		s.logger.Warn("cache invalidation failed", zap.String("planId", planID), zap.Error(err))
	}
	s.logger.Info(action, zap.String("planId", planID), zap.String("taskId", taskID))
	return &dto.TaskMutationResponse{Schedule: days}, nil
}

func addTask(days []models.Day, date string, task models.Task, cfg models.UserConfig) ([]models.Day, error) {
	if _, _, ok := models.FindTask(days, task.ID); ok {
		return nil, appErrors.Clone(appErrors.ErrDuplicateTask, "task "+task.ID+" already exists")
	}
	if idx := dayIndex(days, date); idx >= 0 {
		days[idx].Tasks = append(days[idx].Tasks, task)
		return days, nil
	}
	days = append(days, models.Day{
		Date:  date,
		Phase: phaseForDate(date, cfg),
		Tasks: []models.Task{task},
	})
	models.SortDays(days)
	return days, nil
}

func updateTask(days []models.Day, taskID string, patch dto.UpdateTaskRequest) ([]models.Day, error) {
	dayIdx, taskIdx, ok := models.FindTask(days, taskID)
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "task "+taskID+" not found")
	}
	task := &days[dayIdx].Tasks[taskIdx]
	if patch.Title != nil {
		task.Title = *patch.Title
	}
	if patch.Subject != nil {
		task.Subject = *patch.Subject
	}
	if patch.Type != nil {
		task.Type = *patch.Type
	}
	if patch.Priority != nil {
		task.Priority = *patch.Priority
	}
	if patch.Duration != nil {
		task.Duration = *patch.Duration
	}
	if patch.Topics != nil {
		task.Topics = append([]string(nil), patch.Topics...)
	}
	return days, nil
}

func deleteTask(days []models.Day, taskID string) ([]models.Day, error) {
	dayIdx, taskIdx, ok := models.FindTask(days, taskID)
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "task "+taskID+" not found")
	}
	days[dayIdx].Tasks = append(days[dayIdx].Tasks[:taskIdx], days[dayIdx].Tasks[taskIdx+1:]...)
	if len(days[dayIdx].Tasks) == 0 {
		days = append(days[:dayIdx], days[dayIdx+1:]...)
	}
	return days, nil
}

func moveTask(days []models.Day, taskID, toDate string, cfg models.UserConfig) ([]models.Day, error) {
	dayIdx, taskIdx, ok := models.FindTask(days, taskID)
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "task "+taskID+" not found")
	}
	task := days[dayIdx].Tasks[taskIdx]
	days, err := deleteTask(days, taskID)
	if err != nil {
		return nil, err
	}
	return addTask(days, toDate, task, cfg)
}

func completeTask(days []models.Day, taskID string, at time.Time, notes string, timeTaken int) ([]models.Day, error) {
	dayIdx, taskIdx, ok := models.FindTask(days, taskID)
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "task "+taskID+" not found")
	}
	task := &days[dayIdx].Tasks[taskIdx]
	task.Completed = true
	task.CompletedAt = &at
	if notes != "" {
		task.CompletionNotes = notes
	}
	if timeTaken > 0 {
		task.TimeTaken = timeTaken
	}
	return days, nil
}

// phaseForDate places a date within the plan's configured span and maps the
// resulting percentage onto a phase. Dates outside the span clamp to the
// nearest endpoint.
func phaseForDate(date string, cfg models.UserConfig) models.Phase {
	start, err := cfg.Start()
	if err != nil {
		return models.PhaseBuffer
	}
	at, err := time.Parse(models.DateLayout, date)
	if err != nil {
		return models.PhaseBuffer
	}
	if cfg.TotalDays <= 0 {
		return models.PhaseBuffer
	}
	offset := at.Sub(start).Hours() / 24
	percent := offset / float64(cfg.TotalDays) * 100
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	return PhaseForPosition(percent)
}
