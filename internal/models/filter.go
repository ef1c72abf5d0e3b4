package models

import "strings"

// TaskFilter narrows schedule queries. Empty slices and strings mean
// "no restriction" for that dimension.
type TaskFilter struct {
	Subjects   []string       `json:"subjects,omitempty" form:"subject"`
	Types      []TaskType     `json:"types,omitempty" form:"type"`
	Priorities []TaskPriority `json:"priorities,omitempty" form:"priority"`
	Statuses   []string       `json:"statuses,omitempty" form:"status"`
	Search     string         `json:"search,omitempty" form:"search"`
	DateFrom   string         `json:"dateFrom,omitempty" form:"from"`
	DateTo     string         `json:"dateTo,omitempty" form:"to"`
}

// IsZero reports whether the filter imposes no restrictions.
func (f TaskFilter) IsZero() bool {
	return len(f.Subjects) == 0 && len(f.Types) == 0 && len(f.Priorities) == 0 &&
		len(f.Statuses) == 0 && f.Search == "" && f.DateFrom == "" && f.DateTo == ""
}

// MatchesDate reports whether a day date falls inside the filter range.
func (f TaskFilter) MatchesDate(date string) bool {
	if f.DateFrom != "" && date < f.DateFrom {
		return false
	}
	if f.DateTo != "" && date > f.DateTo {
		return false
	}
	return true
}

// MatchesTask reports whether a task passes every task-level dimension.
func (f TaskFilter) MatchesTask(t Task) bool {
	if len(f.Subjects) > 0 && !containsFold(f.Subjects, t.Subject) {
		return false
	}
	if len(f.Types) > 0 && !containsType(f.Types, t.Type) {
		return false
	}
	if len(f.Priorities) > 0 && !containsPriority(f.Priorities, t.Priority) {
		return false
	}
	if len(f.Statuses) > 0 {
		status := "pending"
		if t.Completed {
			status = "completed"
		}
		if !containsFold(f.Statuses, status) {
			return false
		}
	}
	if f.Search != "" {
		needle := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(t.Title), needle) &&
			!strings.Contains(strings.ToLower(t.Subject), needle) &&
			!strings.Contains(strings.ToLower(t.Description), needle) {
			return false
		}
	}
	return true
}

func containsFold(haystack []string, needle string) bool {
	for _, h := range haystack {
		if strings.EqualFold(h, needle) {
			return true
		}
	}
	return false
}

func containsType(haystack []TaskType, needle TaskType) bool {
	for _, h := range haystack {
		if h == needle {
			return true
		}
	}
	return false
}

func containsPriority(haystack []TaskPriority, needle TaskPriority) bool {
	for _, h := range haystack {
		if h == needle {
			return true
		}
	}
	return false
}
