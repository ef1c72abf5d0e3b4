package models

import (
	"sort"
	"time"
)

// Phase labels the stage of preparation a day belongs to. Allocation keeps
// phase boundaries monotonic by date; the balancing pass may interleave
// tasks across the boundary when resolving overload.
type Phase string

const (
	PhaseConcept  Phase = "Concept Building"
	PhasePractice Phase = "Practice & Application"
	PhaseRevision Phase = "Revision"
	PhaseMockTest Phase = "Mock Tests"
	PhaseBuffer   Phase = "Buffer"
)

// Day holds the tasks scheduled for one calendar date. Dates are unique
// within a schedule; two entries for the same date must be merged.
type Day struct {
	Date  string `json:"date"`
	Phase Phase  `json:"phase"`
	Tasks []Task `json:"tasks"`
}

// TotalDuration sums task durations in minutes.
func (d Day) TotalDuration() int {
	total := 0
	for _, task := range d.Tasks {
		total += task.Duration
	}
	return total
}

// Time parses the day's date.
func (d Day) Time() (time.Time, error) {
	return time.Parse(DateLayout, d.Date)
}

// StudyPlan is the persisted aggregate: user configuration plus the
// generated day-partitioned schedule. The schedule column of the plans
// table is exactly the JSON serialization of Days.
type StudyPlan struct {
	ID          string     `json:"id"`
	ExamID      string     `json:"examId"`
	UserID      string     `json:"userId"`
	Config      UserConfig `json:"config"`
	Days        []Day      `json:"days"`
	GeneratedAt time.Time  `json:"generatedAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// SortDays orders days by date ascending in place. ISO dates compare
// correctly as strings.
func SortDays(days []Day) {
	sort.SliceStable(days, func(i, j int) bool {
		return days[i].Date < days[j].Date
	})
}

// CloneDays deep-copies a schedule so mutation operations can stay
// copy-on-write.
func CloneDays(days []Day) []Day {
	if days == nil {
		return nil
	}
	out := make([]Day, len(days))
	for i, day := range days {
		copied := day
		copied.Tasks = make([]Task, len(day.Tasks))
		copy(copied.Tasks, day.Tasks)
		for j, task := range copied.Tasks {
			if task.CompletedAt != nil {
				at := *task.CompletedAt
				copied.Tasks[j].CompletedAt = &at
			}
			copied.Tasks[j].Topics = append([]string(nil), task.Topics...)
			copied.Tasks[j].Resources = append([]string(nil), task.Resources...)
		}
		out[i] = copied
	}
	return out
}

// AllTasks flattens every task in date order.
func AllTasks(days []Day) []Task {
	var tasks []Task
	for _, day := range days {
		tasks = append(tasks, day.Tasks...)
	}
	return tasks
}

// FindTask locates a task by id and returns its day index and task index.
func FindTask(days []Day, taskID string) (dayIdx, taskIdx int, ok bool) {
	for i, day := range days {
		for j, task := range day.Tasks {
			if task.ID == taskID {
				return i, j, true
			}
		}
	}
	return 0, 0, false
}
