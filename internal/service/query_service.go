package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/study-planner-api/internal/models"
)

// QueryService answers read-only questions about persisted plans. Derived
// payloads such as stats are cached per plan and invalidated by mutations
// through the shared key prefix.
type QueryService struct {
	plans    planRepository
	cache    *CacheService
	logger   *zap.Logger
	statsTTL time.Duration
	now      func() time.Time
}

// NewQueryService wires query dependencies.
func NewQueryService(plans planRepository, cache *CacheService, logger *zap.Logger, statsTTL time.Duration) *QueryService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if statsTTL <= 0 {
		statsTTL = 10 * time.Minute
	}
	return &QueryService{
		plans:    plans,
		cache:    cache,
		logger:   logger,
		statsTTL: statsTTL,
		now:      time.Now,
	}
}

// PlanCacheKey builds the cache key prefix for one plan's derived payloads.
func PlanCacheKey(planID, kind string) string {
	return fmt.Sprintf("plan:%s:%s", planID, kind)
}

// Schedule returns the plan's day list with filters applied. Days left with
// zero tasks after filtering are dropped.
func (s *QueryService) Schedule(ctx context.Context, planID string, filter models.TaskFilter) ([]models.Day, error) {
	plan, err := s.plans.FindByID(ctx, planID)
	if err != nil {
		return nil, err
	}
	return applyFilter(plan.Days, filter), nil
}

// TasksForDate returns the tasks scheduled on one calendar date.
func (s *QueryService) TasksForDate(ctx context.Context, planID, date string) ([]models.Task, error) {
	plan, err := s.plans.FindByID(ctx, planID)
	if err != nil {
		return nil, err
	}
	return tasksForDate(plan.Days, date), nil
}

// Today returns the current date's day entry and its tasks.
func (s *QueryService) Today(ctx context.Context, planID string) (string, *models.Day, error) {
	plan, err := s.plans.FindByID(ctx, planID)
	if err != nil {
		return "", nil, err
	}
	today := s.now().UTC().Format(models.DateLayout)
	if idx := dayIndex(plan.Days, today); idx >= 0 {
		day := plan.Days[idx]
		return today, &day, nil
	}
	return today, nil, nil
}

// Upcoming lists incomplete tasks on or after today, chronological,
// truncated to count. A non-positive count means no truncation.
func (s *QueryService) Upcoming(ctx context.Context, planID string, count int) ([]models.UpcomingTask, error) {
	plan, err := s.plans.FindByID(ctx, planID)
	if err != nil {
		return nil, err
	}
	today := s.now().UTC().Format(models.DateLayout)
	return upcomingTasks(plan.Days, today, count), nil
}

// Overdue lists incomplete tasks on days strictly before today, annotated
// with how many days late they are.
func (s *QueryService) Overdue(ctx context.Context, planID string) ([]models.OverdueTask, error) {
	plan, err := s.plans.FindByID(ctx, planID)
	if err != nil {
		return nil, err
	}
	return overdueTasks(plan.Days, s.now().UTC()), nil
}

// Stats computes completion aggregates, served from cache when possible.
func (s *QueryService) Stats(ctx context.Context, planID string) (models.ScheduleStats, error) {
	key := PlanCacheKey(planID, "stats")
	var cached models.ScheduleStats
	if hit, _ := s.cache.Get(ctx, key, &cached); hit {
		return cached, nil
	}

	plan, err := s.plans.FindByID(ctx, planID)
	if err != nil {
		return models.ScheduleStats{}, err
	}
	stats := computeStats(plan.Days)
	if err := s.cache.Set(ctx, key, stats, s.statsTTL); err != nil {
		s.logger.Warn("stats cache write failed", zap.String("planId", planID), zap.Error(err))
	}
	return stats, nil
}

func applyFilter(days []models.Day, filter models.TaskFilter) []models.Day {
	if filter.IsZero() {
		return days
	}
	var filtered []models.Day
	for _, day := range days {
		if !filter.MatchesDate(day.Date) {
			continue
		}
		var tasks []models.Task
		for _, task := range day.Tasks {
			if filter.MatchesTask(task) {
				tasks = append(tasks, task)
			}
		}
		if len(tasks) == 0 {
			continue
		}
		day.Tasks = tasks
		filtered = append(filtered, day)
	}
	return filtered
}

func tasksForDate(days []models.Day, date string) []models.Task {
	if idx := dayIndex(days, date); idx >= 0 {
		return days[idx].Tasks
	}
	return nil
}

func upcomingTasks(days []models.Day, today string, count int) []models.UpcomingTask {
	var upcoming []models.UpcomingTask
	for _, day := range days {
		if day.Date < today {
			continue
		}
		for _, task := range day.Tasks {
			if task.Completed {
				continue
			}
			upcoming = append(upcoming, models.UpcomingTask{Task: task, Date: day.Date})
		}
	}
	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].Date < upcoming[j].Date
	})
	if count > 0 && len(upcoming) > count {
		upcoming = upcoming[:count]
	}
	return upcoming
}

func overdueTasks(days []models.Day, now time.Time) []models.OverdueTask {
	today := now.Format(models.DateLayout)
	var overdue []models.OverdueTask
	for _, day := range days {
		if day.Date >= today {
			continue
		}
		at, err := time.Parse(models.DateLayout, day.Date)
		if err != nil {
			continue
		}
		lateDays := int(now.Truncate(24*time.Hour).Sub(at).Hours() / 24)
		for _, task := range day.Tasks {
			if task.Completed {
				continue
			}
			overdue = append(overdue, models.OverdueTask{Task: task, Date: day.Date, DaysOverdue: lateDays})
		}
	}
	return overdue
}

func computeStats(days []models.Day) models.ScheduleStats {
	stats := models.ScheduleStats{DaysCount: len(days)}
	subjects := make(map[string]struct{})
	phases := make(map[models.Phase]struct{})
	for _, day := range days {
		phases[day.Phase] = struct{}{}
		for _, task := range day.Tasks {
			stats.TotalTasks++
			stats.TotalDurationMinutes += task.Duration
			if task.Completed {
				stats.CompletedTasks++
				stats.CompletedDurationMinutes += task.Duration
			}
			if task.Subject != "" {
				subjects[task.Subject] = struct{}{}
			}
		}
	}
	stats.PendingTasks = stats.TotalTasks - stats.CompletedTasks
	stats.PendingDurationMinutes = stats.TotalDurationMinutes - stats.CompletedDurationMinutes
	stats.SubjectsCount = len(subjects)
	stats.PhasesCount = len(phases)
	if stats.TotalTasks > 0 {
		stats.CompletionRate = float64(stats.CompletedTasks) / float64(stats.TotalTasks) * 100
	}
	return stats
}
