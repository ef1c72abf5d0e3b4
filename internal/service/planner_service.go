package service

import (
	"context"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/noah-isme/study-planner-api/internal/dto"
	"github.com/noah-isme/study-planner-api/internal/models"
	appErrors "github.com/noah-isme/study-planner-api/pkg/errors"
)

type examProvider interface {
	FindByID(id string) (models.Exam, error)
}

type planRepository interface {
	Upsert(ctx context.Context, plan *models.StudyPlan) error
	FindByID(ctx context.Context, id string) (*models.StudyPlan, error)
	Delete(ctx context.Context, id string) error
	ListByUser(ctx context.Context, userID string) ([]models.StudyPlan, error)
}

type plannerMetrics interface {
	ObserveGeneration(examID string, seconds float64)
	AddTasksMoved(count int)
}

// PlannerService generates study plans, parks them for review and persists
// the ones the user keeps.
type PlannerService struct {
	syllabus  examProvider
	plans     planRepository
	cache     *CacheService
	metrics   plannerMetrics
	validator *validator.Validate
	logger    *zap.Logger
	store     *planStore
	tolerance float64
	now       func() time.Time
}

// PlannerConfig governs generation behaviour.
type PlannerConfig struct {
	OverloadTolerance float64
	ProposalTTL       time.Duration
}

// NewPlannerService wires planner dependencies.
func NewPlannerService(
	syllabus examProvider,
	plans planRepository,
	cache *CacheService,
	metrics plannerMetrics,
	validate *validator.Validate,
	logger *zap.Logger,
	cfg PlannerConfig,
) *PlannerService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.OverloadTolerance <= 0 {
		cfg.OverloadTolerance = 1.2
	}
	if cfg.ProposalTTL <= 0 {
		cfg.ProposalTTL = 30 * time.Minute
	}
	return &PlannerService{
		syllabus:  syllabus,
		plans:     plans,
		cache:     cache,
		metrics:   metrics,
		validator: validate,
		logger:    logger,
		store:     newPlanStore(cfg.ProposalTTL),
		tolerance: cfg.OverloadTolerance,
		now:       time.Now,
	}
}

// Generate runs the allocation pipeline and parks the result under a fresh
// plan id. Nothing is persisted until Save.
func (s *PlannerService) Generate(ctx context.Context, req dto.GeneratePlanRequest) (*dto.GeneratePlanResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid plan generation payload")
	}
	cfg, err := s.normalizeConfig(req.UserConfig)
	if err != nil {
		return nil, err
	}

	exam, err := s.syllabus.FindByID(cfg.ExamID)
	if err != nil {
		return nil, err
	}
	if len(exam.Subjects) == 0 {
		return nil, appErrors.Clone(appErrors.ErrSyllabusNotFound, "exam "+cfg.ExamID+" has no subjects")
	}

	started := s.now()
	result := buildSchedule(exam, cfg, s.tolerance)
	if s.metrics != nil {
		s.metrics.ObserveGeneration(cfg.ExamID, time.Since(started).Seconds())
		s.metrics.AddTasksMoved(result.Metadata.TasksMoved)
	}

	planID := uuid.NewString()
	response := &dto.GeneratePlanResponse{
		PlanID:          planID,
		Schedule:        result.Days,
		Recommendations: recommendationsFor(exam, cfg),
		Prediction:      predictPerformance(cfg),
		Metadata:        result.Metadata,
	}
	s.store.Save(planProposal{
		PlanID:      planID,
		Config:      cfg,
		Days:        result.Days,
		RequestedAt: s.now(),
	})

	s.logger.Info("study plan generated",
		zap.String("planId", planID),
		zap.String("examId", cfg.ExamID),
		zap.Int("days", len(result.Days)),
		zap.Int("tasksMoved", result.Metadata.TasksMoved),
	)
	return response, nil
}

// Save persists a previously generated plan. The proposal must still be in
// the store; expired proposals require regeneration.
func (s *PlannerService) Save(ctx context.Context, req dto.SavePlanRequest) (*models.StudyPlan, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid save payload")
	}
	proposal, ok := s.store.Get(req.PlanID)
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "generated plan "+req.PlanID+" not found or expired")
	}

	userID := req.UserID
	if userID == "" {
		userID = proposal.Config.UserID
	}
	now := s.now().UTC()
	plan := &models.StudyPlan{
		ID:          proposal.PlanID,
		ExamID:      proposal.Config.ExamID,
		UserID:      userID,
		Config:      proposal.Config,
		Days:        proposal.Days,
		GeneratedAt: proposal.RequestedAt.UTC(),
		UpdatedAt:   now,
	}
	if err := s.plans.Upsert(ctx, plan); err != nil {
		return nil, err
	}
	s.store.Delete(req.PlanID)

	s.logger.Info("study plan saved", zap.String("planId", plan.ID), zap.String("examId", plan.ExamID))
	return plan, nil
}

// FindPlan loads a persisted plan.
func (s *PlannerService) FindPlan(ctx context.Context, planID string) (*models.StudyPlan, error) {
	return s.plans.FindByID(ctx, planID)
}

// ListPlans returns every plan saved for a user.
func (s *PlannerService) ListPlans(ctx context.Context, userID string) ([]models.StudyPlan, error) {
	return s.plans.ListByUser(ctx, userID)
}

// DeletePlan removes a persisted plan and its cached payloads.
func (s *PlannerService) DeletePlan(ctx context.Context, planID string) error {
	if err := s.plans.Delete(ctx, planID); err != nil {
		return err
	}
	if err := s.cache.Invalidate(ctx, PlanCacheKey(planID, "*")); err != nil {
		s.logger.Warn("cache invalidation failed", zap.String("planId", planID), zap.Error(err))
	}
	s.logger.Info("study plan deleted", zap.String("planId", planID))
	return nil
}

// Rebalance re-runs the load-balancing pass over a persisted plan and
// stores the result.
func (s *PlannerService) Rebalance(ctx context.Context, planID string) (*dto.RebalanceResponse, error) {
	plan, err := s.plans.FindByID(ctx, planID)
	if err != nil {
		return nil, err
	}
	days := models.CloneDays(plan.Days)
	days, moved, _ := balanceLoad(days, plan.Config.HoursPerDay, s.tolerance)
	plan.Days = days
	plan.UpdatedAt = s.now().UTC()
	if err := s.plans.Upsert(ctx, plan); err != nil {
		return nil, err
	}
	if s.metrics != nil {
		s.metrics.AddTasksMoved(moved)
	}
	if err := s.cache.Invalidate(ctx, PlanCacheKey(planID, "*")); err != nil {
		s.logger.Warn("cache invalidation failed", zap.String("planId", planID), zap.Error(err))
	}
	s.logger.Info("study plan rebalanced", zap.String("planId", planID), zap.Int("tasksMoved", moved))
	return &dto.RebalanceResponse{Schedule: days, TasksMoved: moved}, nil
}

// normalizeConfig derives totalDays when omitted and rejects logically
// inconsistent configurations.
func (s *PlannerService) normalizeConfig(cfg models.UserConfig) (models.UserConfig, error) {
	start, err := cfg.Start()
	if err != nil {
		return cfg, appErrors.Clone(appErrors.ErrInvalidConfig, "startDate must be a YYYY-MM-DD date")
	}
	exam, err := cfg.Exam()
	if err != nil {
		return cfg, appErrors.Clone(appErrors.ErrInvalidConfig, "examDate must be a YYYY-MM-DD date")
	}
	if !exam.After(start) {
		return cfg, appErrors.Clone(appErrors.ErrInvalidConfig, "examDate must be after startDate")
	}
	if cfg.TotalDays == 0 {
		cfg.TotalDays = int(exam.Sub(start).Hours() / 24)
	}
	if cfg.TotalDays < 7 {
		return cfg, appErrors.Clone(appErrors.ErrInvalidConfig, "plans need at least 7 days of preparation")
	}
	if cfg.HoursPerDay <= 0 {
		return cfg, appErrors.Clone(appErrors.ErrInvalidConfig, "hoursPerDay must be positive")
	}
	if cfg.Difficulty != "" && !cfg.Difficulty.Valid() {
		return cfg, appErrors.Clone(appErrors.ErrInvalidConfig, "unknown difficulty grade")
	}
	return cfg, nil
}

type planProposal struct {
	PlanID      string
	Config      models.UserConfig
	Days        []models.Day
	RequestedAt time.Time
}

// planStore parks generated plans in memory until they are saved or expire.
type planStore struct {
	ttl   time.Duration
	mu    sync.RWMutex
	items map[string]planProposal
}

func newPlanStore(ttl time.Duration) *planStore {
	return &planStore{
		ttl:   ttl,
		items: make(map[string]planProposal),
	}
}

func (s *planStore) Save(proposal planProposal) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[proposal.PlanID] = proposal
}

func (s *planStore) Get(id string) (planProposal, bool) {
	s.mu.RLock()
	proposal, ok := s.items[id]
	s.mu.RUnlock()
	if !ok {
		return planProposal{}, false
	}
	if time.Since(proposal.RequestedAt) > s.ttl {
		s.Delete(id)
		return planProposal{}, false
	}
	return proposal, true
}

func (s *planStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, id)
}
