package models

import "time"

// TaskType categorises a scheduled task.
type TaskType string

const (
	TaskTypeStudy    TaskType = "study"
	TaskTypePractice TaskType = "practice"
	TaskTypeTest     TaskType = "test"
	TaskTypeRevision TaskType = "revision"
	TaskTypeCatchup  TaskType = "catchup"
	TaskTypeGroup    TaskType = "group"
)

// Valid reports whether the type is known.
func (t TaskType) Valid() bool {
	switch t {
	case TaskTypeStudy, TaskTypePractice, TaskTypeTest, TaskTypeRevision, TaskTypeCatchup, TaskTypeGroup:
		return true
	}
	return false
}

// TaskPriority orders tasks for display and redistribution.
type TaskPriority string

const (
	PriorityVeryHigh TaskPriority = "very-high"
	PriorityHigh     TaskPriority = "high"
	PriorityMedium   TaskPriority = "medium"
	PriorityLow      TaskPriority = "low"
)

// Rank returns the sort rank, lower is more urgent.
func (p TaskPriority) Rank() int {
	switch p {
	case PriorityVeryHigh:
		return 0
	case PriorityHigh:
		return 1
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 3
	}
	return 4
}

// Valid reports whether the priority is known.
func (p TaskPriority) Valid() bool {
	return p.Rank() < 4
}

// Movable reports whether the balancing pass may push the task to the next
// day. Only low and medium priority tasks are candidates.
func (p TaskPriority) Movable() bool {
	return p == PriorityLow || p == PriorityMedium
}

// Task is a single scheduled unit of study work. Duration is in minutes.
// The id stays stable across moves between days.
type Task struct {
	ID              string       `json:"id"`
	Title           string       `json:"title"`
	Subject         string       `json:"subject"`
	Type            TaskType     `json:"type"`
	Priority        TaskPriority `json:"priority"`
	Duration        int          `json:"duration"`
	Completed       bool         `json:"completed"`
	CompletedAt     *time.Time   `json:"completedAt,omitempty"`
	CompletionNotes string       `json:"completionNotes,omitempty"`
	TimeTaken       int          `json:"timeTaken,omitempty"`
	Description     string       `json:"description,omitempty"`
	Topics          []string     `json:"topics,omitempty"`
	Resources       []string     `json:"resources,omitempty"`
}
