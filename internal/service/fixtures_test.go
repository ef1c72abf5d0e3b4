package service

import (
	"context"
	"time"

	"github.com/noah-isme/study-planner-api/internal/models"
	appErrors "github.com/noah-isme/study-planner-api/pkg/errors"
)

type examProviderStub struct {
	exams map[string]models.Exam
}

func (s *examProviderStub) FindByID(id string) (models.Exam, error) {
	exam, ok := s.exams[id]
	if !ok {
		return models.Exam{}, appErrors.Clone(appErrors.ErrSyllabusNotFound, "exam "+id+" not found")
	}
	return exam, nil
}

type planRepoStub struct {
	plans   map[string]*models.StudyPlan
	saveErr error
}

func newPlanRepoStub() *planRepoStub {
	return &planRepoStub{plans: make(map[string]*models.StudyPlan)}
}

func (s *planRepoStub) Upsert(_ context.Context, plan *models.StudyPlan) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	stored := *plan
	stored.Days = models.CloneDays(plan.Days)
	s.plans[plan.ID] = &stored
	return nil
}

func (s *planRepoStub) FindByID(_ context.Context, id string) (*models.StudyPlan, error) {
	plan, ok := s.plans[id]
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "study plan "+id+" not found")
	}
	copied := *plan
	copied.Days = models.CloneDays(plan.Days)
	return &copied, nil
}

func (s *planRepoStub) Delete(_ context.Context, id string) error {
	if _, ok := s.plans[id]; !ok {
		return appErrors.Clone(appErrors.ErrNotFound, "study plan "+id+" not found")
	}
	delete(s.plans, id)
	return nil
}

func (s *planRepoStub) ListByUser(_ context.Context, userID string) ([]models.StudyPlan, error) {
	var plans []models.StudyPlan
	for _, plan := range s.plans {
		if plan.UserID == userID {
			plans = append(plans, *plan)
		}
	}
	return plans, nil
}

func singleSubjectExam() models.Exam {
	return models.Exam{
		ID:         "demo_exam",
		Label:      "Demo Exam",
		Category:   "engineering",
		ExamCode:   "DEMO",
		Difficulty: models.DifficultyMedium,
		Subjects: []models.Subject{
			{Name: "Physics", Weight: 100, TotalModules: 10, Topics: []string{"Mechanics", "Optics", "Waves"}},
		},
	}
}

func twoSubjectExam() models.Exam {
	return models.Exam{
		ID:       "weighted_exam",
		Label:    "Weighted Exam",
		Category: "engineering",
		ExamCode: "WEIGHTED",
		Subjects: []models.Subject{
			{Name: "Minor", Weight: 100, TotalModules: 8},
			{Name: "Major", Weight: 200, TotalModules: 16},
		},
	}
}

func storedPlan(days []models.Day, cfg models.UserConfig) *models.StudyPlan {
	now := time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)
	return &models.StudyPlan{
		ID:          "plan-1",
		ExamID:      cfg.ExamID,
		UserID:      cfg.UserID,
		Config:      cfg,
		Days:        days,
		GeneratedAt: now,
		UpdatedAt:   now,
	}
}

func fixedClock(date string) func() time.Time {
	at, err := time.Parse(models.DateLayout, date)
	if err != nil {
		panic(err)
	}
	return func() time.Time {
		return at.Add(10 * time.Hour)
	}
}
