package dto

import "github.com/noah-isme/study-planner-api/internal/models"

// AddTaskRequest inserts a new task on a given day.
type AddTaskRequest struct {
	Date     string              `json:"date" validate:"required"`
	ID       string              `json:"id"`
	Title    string              `json:"title" validate:"required"`
	Subject  string              `json:"subject"`
	Type     models.TaskType     `json:"type"`
	Priority models.TaskPriority `json:"priority"`
	Duration int                 `json:"duration" validate:"gt=0"`
	Topics   []string            `json:"topics,omitempty"`
}

// UpdateTaskRequest patches task fields. Nil means "leave unchanged".
type UpdateTaskRequest struct {
	Title    *string              `json:"title,omitempty"`
	Subject  *string              `json:"subject,omitempty"`
	Type     *models.TaskType     `json:"type,omitempty"`
	Priority *models.TaskPriority `json:"priority,omitempty"`
	Duration *int                 `json:"duration,omitempty" validate:"omitempty,gt=0"`
	Topics   []string             `json:"topics,omitempty"`
}

// MoveTaskRequest relocates a task to another day.
type MoveTaskRequest struct {
	ToDate string `json:"toDate" validate:"required"`
}

// CompleteTaskRequest marks a task done with optional feedback.
type CompleteTaskRequest struct {
	Notes     string `json:"notes,omitempty"`
	TimeTaken int    `json:"timeTaken,omitempty" validate:"omitempty,gte=0"`
}

// TaskMutationResponse returns the updated schedule after a mutation.
type TaskMutationResponse struct {
	Schedule []models.Day `json:"schedule"`
}
