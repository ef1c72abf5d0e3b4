package models

import "time"

// ScheduleStats aggregates completion progress over a schedule.
// CompletionRate is a percentage and is 0 for an empty schedule.
type ScheduleStats struct {
	TotalTasks               int     `json:"totalTasks"`
	CompletedTasks           int     `json:"completedTasks"`
	PendingTasks             int     `json:"pendingTasks"`
	CompletionRate           float64 `json:"completionRate"`
	TotalDurationMinutes     int     `json:"totalDurationMinutes"`
	CompletedDurationMinutes int     `json:"completedDurationMinutes"`
	PendingDurationMinutes   int     `json:"pendingDurationMinutes"`
	SubjectsCount            int     `json:"subjectsCount"`
	PhasesCount              int     `json:"phasesCount"`
	DaysCount                int     `json:"daysCount"`
}

// UpcomingTask is an incomplete task on or after today.
type UpcomingTask struct {
	Task
	Date string `json:"date"`
}

// OverdueTask is an incomplete task strictly before today, annotated with
// how many days late it is.
type OverdueTask struct {
	Task
	Date        string `json:"date"`
	DaysOverdue int    `json:"daysOverdue"`
}

// Recommendation is a deterministic heuristic hint produced alongside a
// generated plan.
type Recommendation struct {
	Type     string       `json:"type"`
	Title    string       `json:"title"`
	Message  string       `json:"message"`
	Priority TaskPriority `json:"priority"`
}

// PerformancePrediction estimates the achievable score for a configuration.
type PerformancePrediction struct {
	PredictedScore   int      `json:"predictedScore"`
	Confidence       int      `json:"confidence"`
	WeeklyTarget     int      `json:"weeklyTarget"`
	ImprovementAreas []string `json:"improvementAreas,omitempty"`
}

// PlanMetadata summarises a generation run.
type PlanMetadata struct {
	TotalDays      int     `json:"totalDays"`
	EffectiveDays  int     `json:"effectiveDays"`
	TotalHours     float64 `json:"totalHours"`
	ConceptHours   float64 `json:"conceptHours"`
	PracticeHours  float64 `json:"practiceHours"`
	RevisionHours  float64 `json:"revisionHours"`
	SubjectsCount  int     `json:"subjectsCount"`
	ModulesCount   int     `json:"modulesCount"`
	TasksMoved     int     `json:"tasksMoved"`
	OverloadedDays int     `json:"overloadedDays"`
}

// DashboardTimeMetrics covers calendar progress toward the exam.
type DashboardTimeMetrics struct {
	DaysRemaining           int     `json:"daysRemaining"`
	DaysCompleted           int     `json:"daysCompleted"`
	CompletionRate          float64 `json:"completionRate"`
	TotalStudyHours         float64 `json:"totalStudyHours"`
	EstimatedRemainingHours float64 `json:"estimatedRemainingHours"`
	DailyAverageHours       float64 `json:"dailyAverageHours"`
}

// DashboardTaskMetrics covers task throughput.
type DashboardTaskMetrics struct {
	TotalTasks         int     `json:"totalTasks"`
	CompletedTasks     int     `json:"completedTasks"`
	PendingTasks       int     `json:"pendingTasks"`
	TaskCompletionRate float64 `json:"taskCompletionRate"`
}

// DailyCompletion is one bar of the last-7-days consistency strip.
type DailyCompletion struct {
	Date           string  `json:"date"`
	Completed      bool    `json:"completed"`
	CompletionRate float64 `json:"completionRate"`
	TasksCompleted int     `json:"tasksCompleted"`
}

// DashboardPerformance covers weighted scoring metrics.
type DashboardPerformance struct {
	Score       float64           `json:"score"`
	Consistency float64           `json:"consistency"`
	Efficiency  float64           `json:"efficiency"`
	Last7Days   []DailyCompletion `json:"last7Days"`
}

// DashboardPrediction extrapolates the current trajectory.
type DashboardPrediction struct {
	PredictedScore     int      `json:"predictedScore"`
	Confidence         int      `json:"confidence"`
	RequiredDailyHours int      `json:"requiredDailyHours"`
	StudySuggestions   []string `json:"studySuggestions"`
}

// SystemMetrics is a lightweight operational snapshot for status endpoints.
type SystemMetrics struct {
	CacheHitRatio            float64   `json:"cacheHitRatio"`
	CacheHits                uint64    `json:"cacheHits"`
	CacheMisses              uint64    `json:"cacheMisses"`
	RequestsTotal            uint64    `json:"requestsTotal"`
	AverageRequestDurationMs float64   `json:"averageRequestDurationMs"`
	GenerationsTotal         uint64    `json:"generationsTotal"`
	TasksRedistributed       uint64    `json:"tasksRedistributed"`
	DBQueryCount             uint64    `json:"dbQueryCount"`
	AverageDBQueryDurationMs float64   `json:"averageDbQueryDurationMs"`
	Goroutines               int       `json:"goroutines"`
	GeneratedAt              time.Time `json:"generatedAt"`
}

// DashboardSummary is the aggregated dashboard payload.
type DashboardSummary struct {
	TimeMetrics     DashboardTimeMetrics `json:"timeMetrics"`
	TaskMetrics     DashboardTaskMetrics `json:"taskMetrics"`
	Performance     DashboardPerformance `json:"performanceMetrics"`
	Recommendations []Recommendation     `json:"recommendations"`
	Prediction      DashboardPrediction  `json:"predictions"`
}
