package models

import "time"

// DateLayout is the wire format for calendar dates throughout the planner.
const DateLayout = "2006-01-02"

// Difficulty grades an exam or a user's self-assessed preparation level.
type Difficulty string

const (
	DifficultyEasy    Difficulty = "easy"
	DifficultyMedium  Difficulty = "medium"
	DifficultyHard    Difficulty = "hard"
	DifficultyExtreme Difficulty = "extreme"
)

// Valid reports whether the difficulty is a known grade.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard, DifficultyExtreme:
		return true
	}
	return false
}

// UserConfig captures the study parameters a user submits before plan
// generation. It is an immutable input: the engine never mutates it.
type UserConfig struct {
	ExamID          string     `json:"examId" validate:"required"`
	UserID          string     `json:"userId"`
	StartDate       string     `json:"startDate" validate:"required"`
	ExamDate        string     `json:"examDate" validate:"required"`
	TotalDays       int        `json:"totalDays"`
	HoursPerDay     float64    `json:"hoursPerDay" validate:"required"`
	Difficulty      Difficulty `json:"difficulty"`
	IncludeWeekends bool       `json:"includeWeekends"`
	TargetScore     int        `json:"targetScore" validate:"gte=0,lte=100"`
}

// Start parses the configured start date.
func (c UserConfig) Start() (time.Time, error) {
	return time.Parse(DateLayout, c.StartDate)
}

// Exam parses the configured exam date.
func (c UserConfig) Exam() (time.Time, error) {
	return time.Parse(DateLayout, c.ExamDate)
}

// Pagination describes list paging metadata.
type Pagination struct {
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	TotalItems int `json:"totalItems"`
	TotalPages int `json:"totalPages"`
}
