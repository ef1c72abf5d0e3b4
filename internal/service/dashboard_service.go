package service

import (
	"context"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/study-planner-api/internal/models"
)

var dashboardPriorityWeights = map[models.TaskPriority]float64{
	models.PriorityVeryHigh: 4,
	models.PriorityHigh:     3,
	models.PriorityMedium:   2,
	models.PriorityLow:      1,
}

var dashboardTypeWeights = map[models.TaskType]float64{
	models.TaskTypeTest:     1.5,
	models.TaskTypePractice: 1.2,
	models.TaskTypeStudy:    1,
	models.TaskTypeRevision: 0.8,
}

// DashboardService aggregates progress, consistency and prediction metrics
// for one plan. All derivations are deterministic functions of the plan and
// the clock.
type DashboardService struct {
	plans    planRepository
	cache    *CacheService
	logger   *zap.Logger
	cacheTTL time.Duration
	now      func() time.Time
}

// NewDashboardService wires dashboard dependencies.
func NewDashboardService(plans planRepository, cache *CacheService, logger *zap.Logger, cacheTTL time.Duration) *DashboardService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cacheTTL <= 0 {
		cacheTTL = 5 * time.Minute
	}
	return &DashboardService{
		plans:    plans,
		cache:    cache,
		logger:   logger,
		cacheTTL: cacheTTL,
		now:      time.Now,
	}
}

// Summary computes the aggregated dashboard payload, cached per plan.
func (s *DashboardService) Summary(ctx context.Context, planID string) (*models.DashboardSummary, error) {
	key := PlanCacheKey(planID, "dashboard")
	var cached models.DashboardSummary
	if hit, _ := s.cache.Get(ctx, key, &cached); hit {
		return &cached, nil
	}

	plan, err := s.plans.FindByID(ctx, planID)
	if err != nil {
		return nil, err
	}

	summary := s.calculateSummary(plan)
	if err := s.cache.Set(ctx, key, summary, s.cacheTTL); err != nil {
		s.logger.Warn("dashboard cache write failed", zap.String("planId", planID), zap.Error(err))
	}
	return summary, nil
}

func (s *DashboardService) calculateSummary(plan *models.StudyPlan) *models.DashboardSummary {
	now := s.now().UTC()
	cfg := plan.Config

	daysRemaining := 0
	if examDate, err := cfg.Exam(); err == nil {
		if diff := examDate.Sub(now).Hours() / 24; diff > 0 {
			daysRemaining = int(math.Ceil(diff))
		}
	}
	daysCompleted := cfg.TotalDays - daysRemaining
	if daysCompleted < 0 {
		daysCompleted = 0
	}
	completionRate := 0.0
	if cfg.TotalDays > 0 {
		completionRate = float64(daysCompleted) / float64(cfg.TotalDays) * 100
	}

	allTasks := models.AllTasks(plan.Days)
	completedTasks := 0
	for _, task := range allTasks {
		if task.Completed {
			completedTasks++
		}
	}
	totalTasks := len(allTasks)
	taskCompletionRate := 0.0
	if totalTasks > 0 {
		taskCompletionRate = float64(completedTasks) / float64(totalTasks) * 100
	}

	totalStudyHours := float64(daysCompleted) * cfg.HoursPerDay
	estimatedRemainingHours := float64(daysRemaining) * cfg.HoursPerDay
	dailyAverageHours := 0.0
	if daysCompleted > 0 {
		dailyAverageHours = totalStudyHours / float64(daysCompleted)
	}

	last7Days := lastSevenDays(plan.Days, now)
	consistentDays := 0
	for _, day := range last7Days {
		if day.Completed {
			consistentDays++
		}
	}
	consistency := float64(consistentDays) / 7 * 100

	perfScore := performanceScore(plan.Days)
	efficiency := taskCompletionRate*0.4 + consistency*0.3 + perfScore*0.3

	return &models.DashboardSummary{
		TimeMetrics: models.DashboardTimeMetrics{
			DaysRemaining:           daysRemaining,
			DaysCompleted:           daysCompleted,
			CompletionRate:          completionRate,
			TotalStudyHours:         totalStudyHours,
			EstimatedRemainingHours: estimatedRemainingHours,
			DailyAverageHours:       dailyAverageHours,
		},
		TaskMetrics: models.DashboardTaskMetrics{
			TotalTasks:         totalTasks,
			CompletedTasks:     completedTasks,
			PendingTasks:       totalTasks - completedTasks,
			TaskCompletionRate: taskCompletionRate,
		},
		Performance: models.DashboardPerformance{
			Score:       perfScore,
			Consistency: consistency,
			Efficiency:  efficiency,
			Last7Days:   last7Days,
		},
		Recommendations: progressRecommendations(completionRate, taskCompletionRate, consistency, daysRemaining),
		Prediction:      progressPrediction(completionRate, perfScore, efficiency, daysRemaining),
	}
}

// lastSevenDays builds the consistency strip for the trailing week. A day
// with no scheduled tasks counts as completed.
func lastSevenDays(days []models.Day, now time.Time) []models.DailyCompletion {
	strip := make([]models.DailyCompletion, 0, 7)
	for i := 6; i >= 0; i-- {
		date := now.AddDate(0, 0, -i).Format(models.DateLayout)
		idx := dayIndex(days, date)
		if idx < 0 {
			strip = append(strip, models.DailyCompletion{Date: date})
			continue
		}
		day := days[idx]
		completed := 0
		for _, task := range day.Tasks {
			if task.Completed {
				completed++
			}
		}
		rate := 0.0
		if len(day.Tasks) > 0 {
			rate = float64(completed) / float64(len(day.Tasks)) * 100
		}
		strip = append(strip, models.DailyCompletion{
			Date:           date,
			Completed:      completed > 0 || len(day.Tasks) == 0,
			CompletionRate: rate,
			TasksCompleted: completed,
		})
	}
	return strip
}

// performanceScore weighs completed tasks by priority and type against the
// maximum attainable score.
func performanceScore(days []models.Day) float64 {
	var total, max float64
	for _, day := range days {
		for _, task := range day.Tasks {
			weight := taskWeight(task)
			max += weight
			if task.Completed {
				total += weight
			}
		}
	}
	if max == 0 {
		return 0
	}
	return total / max * 100
}

func taskWeight(task models.Task) float64 {
	priority, ok := dashboardPriorityWeights[task.Priority]
	if !ok {
		priority = 1
	}
	kind, ok := dashboardTypeWeights[task.Type]
	if !ok {
		kind = 1
	}
	return priority * kind
}

func progressRecommendations(completionRate, taskCompletionRate, consistency float64, daysRemaining int) []models.Recommendation {
	var recs []models.Recommendation
	if completionRate < 50 && daysRemaining < 30 {
		recs = append(recs, models.Recommendation{
			Type:     "urgent",
			Title:    "Accelerate Study Pace",
			Message:  "You're falling behind schedule. Consider increasing daily study hours.",
			Priority: models.PriorityHigh,
		})
	}
	if taskCompletionRate < 70 {
		recs = append(recs, models.Recommendation{
			Type:     "warning",
			Title:    "Improve Task Completion",
			Message:  "Focus on completing scheduled tasks to stay on track.",
			Priority: models.PriorityMedium,
		})
	}
	if consistency < 70 {
		recs = append(recs, models.Recommendation{
			Type:     "suggestion",
			Title:    "Build Consistency",
			Message:  "Try to study every day, even if for shorter periods.",
			Priority: models.PriorityMedium,
		})
	}
	if daysRemaining < 7 {
		recs = append(recs, models.Recommendation{
			Type:     "tip",
			Title:    "Final Revision",
			Message:  "Focus on revision and mock tests in the final week.",
			Priority: models.PriorityHigh,
		})
	}
	if len(recs) == 0 {
		recs = append(recs, models.Recommendation{
			Type:     "success",
			Title:    "Great Progress!",
			Message:  "You're on track. Keep up the good work!",
			Priority: models.PriorityLow,
		})
	}
	return recs
}

func progressPrediction(completionRate, performanceScore, efficiency float64, daysRemaining int) models.DashboardPrediction {
	timeFactor := math.Min(1, completionRate/100)
	efficiencyFactor := efficiency / 100

	predicted := performanceScore * (0.7 + timeFactor*0.3) * (0.8 + efficiencyFactor*0.2)
	if daysRemaining > 0 {
		predicted *= 1 + float64(daysRemaining)/30*0.1
	}
	predicted = math.Min(98, math.Max(40, predicted))

	confidence := 75.0
	if completionRate > 80 {
		confidence += 10
	}
	if performanceScore > 80 {
		confidence += 10
	}
	if efficiency > 80 {
		confidence += 5
	}
	confidence = math.Min(95, confidence)

	return models.DashboardPrediction{
		PredictedScore:     int(math.Round(predicted)),
		Confidence:         int(math.Round(confidence)),
		RequiredDailyHours: requiredDailyHours(completionRate, daysRemaining),
		StudySuggestions:   studySuggestions(predicted),
	}
}

// requiredDailyHours converts the remaining progress percentage into study
// hours, assuming one percent of progress costs half an hour.
func requiredDailyHours(completionRate float64, daysRemaining int) int {
	if completionRate >= 100 {
		return 0
	}
	remaining := 100 - completionRate
	perDay := remaining / math.Max(1, float64(daysRemaining))
	return int(math.Ceil(perDay * 0.5))
}

func studySuggestions(predicted float64) []string {
	switch {
	case predicted < 70:
		return []string{
			"Focus on weak areas identified in analytics",
			"Increase mock test frequency",
			"Join study groups for difficult topics",
		}
	case predicted < 85:
		return []string{
			"Maintain current pace with regular revision",
			"Take full-length mock tests weekly",
			"Review error logs from practice sessions",
		}
	default:
		return []string{
			"Focus on speed and accuracy improvement",
			"Help peers in study groups",
			"Mentor junior students to reinforce concepts",
		}
	}
}
