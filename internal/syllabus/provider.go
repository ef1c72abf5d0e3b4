package syllabus

import (
	"sort"
	"strings"

	"github.com/noah-isme/study-planner-api/internal/models"
	"github.com/noah-isme/study-planner-api/pkg/errors"
)

// Provider serves read-only exam syllabus data from the built-in registry.
type Provider struct {
	exams map[string]models.Exam
}

// NewProvider returns a provider backed by the built-in exam database.
func NewProvider() *Provider {
	return &Provider{exams: examDatabase}
}

// FindByID resolves an exam by its identifier.
func (p *Provider) FindByID(id string) (models.Exam, error) {
	exam, ok := p.exams[id]
	if !ok {
		return models.Exam{}, errors.Clone(errors.ErrSyllabusNotFound, "exam "+id+" not found")
	}
	return exam, nil
}

// List returns all exams, optionally restricted to one category, ordered by
// popularity descending and then by id for a stable listing.
func (p *Provider) List(category string) []models.Exam {
	exams := make([]models.Exam, 0, len(p.exams))
	for _, exam := range p.exams {
		if category != "" && !strings.EqualFold(exam.Category, category) {
			continue
		}
		exams = append(exams, exam)
	}
	sort.Slice(exams, func(i, j int) bool {
		if exams[i].Popularity != exams[j].Popularity {
			return exams[i].Popularity > exams[j].Popularity
		}
		return exams[i].ID < exams[j].ID
	})
	return exams
}

// Search matches the query against exam labels, codes and subject names.
func (p *Provider) Search(query string) []models.Exam {
	needle := strings.ToLower(strings.TrimSpace(query))
	if needle == "" {
		return p.List("")
	}
	var matched []models.Exam
	for _, exam := range p.List("") {
		if p.matches(exam, needle) {
			matched = append(matched, exam)
		}
	}
	return matched
}

func (p *Provider) matches(exam models.Exam, needle string) bool {
	if strings.Contains(strings.ToLower(exam.Label), needle) ||
		strings.Contains(strings.ToLower(exam.ExamCode), needle) ||
		strings.Contains(strings.ToLower(exam.ID), needle) {
		return true
	}
	for _, subject := range exam.Subjects {
		if strings.Contains(strings.ToLower(subject.Name), needle) {
			return true
		}
	}
	return false
}

// Categories returns the category list with live exam counts.
func (p *Provider) Categories() []models.ExamCategory {
	counts := make(map[string]int, len(examCategories))
	for _, exam := range p.exams {
		counts[exam.Category]++
	}
	categories := make([]models.ExamCategory, 0, len(examCategories))
	for _, category := range examCategories {
		category.Count = counts[category.ID]
		categories = append(categories, category)
	}
	return categories
}
