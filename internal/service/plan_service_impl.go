package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ainara-edu/teksplan/internal/domain"
	"github.com/ainara-edu/teksplan/internal/importer"
	"github.com/ainara-edu/teksplan/internal/repository"
	"github.com/ainara-edu/teksplan/internal/standards"
	"github.com/google/uuid"
)

type planService struct {
	plans  repository.PlanRepo
	loader StandardsLoader
}

func NewPlanService(plans repository.PlanRepo, loader StandardsLoader) PlanService {
	return &planService{plans: plans, loader: loader}
}

func (s *planService) Create(ctx context.Context, plan domain.LessonPlan) (*domain.PlanRecord, error) {
	now := time.Now().UTC()
	rec := &domain.PlanRecord{
		ID:        uuid.New().String(),
		Plan:      plan,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.plans.Create(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *planService) GetByID(ctx context.Context, id string) (*domain.PlanRecord, error) {
	return s.plans.GetByID(ctx, id)
}

func (s *planService) List(ctx context.Context) ([]*domain.PlanRecord, error) {
	return s.plans.List(ctx)
}

func (s *planService) Update(ctx context.Context, rec *domain.PlanRecord) error {
	rec.UpdatedAt = time.Now().UTC()
	return s.plans.Update(ctx, rec)
}

func (s *planService) Delete(ctx context.Context, id string) error {
	if _, err := s.plans.GetByID(ctx, id); err != nil {
		return err
	}
	return s.plans.Delete(ctx, id)
}

// Import parses and validates a lesson plan document, persisting it only
// when the document is fully valid. All validation problems are reported
// together rather than one at a time.
func (s *planService) Import(ctx context.Context, data []byte) (*domain.PlanRecord, error) {
	doc, err := importer.ParseDocument(data)
	if err != nil {
		return nil, fmt.Errorf("parsing plan document: %w", err)
	}
	if errs := importer.ValidateDocument(doc); len(errs) > 0 {
		return nil, fmt.Errorf("invalid plan document: %w", errors.Join(errs...))
	}
	return s.Create(ctx, doc.ToDomain())
}

func (s *planService) LoadExample(ctx context.Context) (*domain.PlanRecord, error) {
	plan, err := importer.ExamplePlan()
	if err != nil {
		return nil, err
	}
	return s.Create(ctx, plan)
}

func (s *planService) Export(ctx context.Context, id string) ([]byte, error) {
	rec, err := s.plans.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	data, err := json.MarshalIndent(rec.Plan, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding plan: %w", err)
	}
	return data, nil
}

// MissingStandards loads the standards database for the plan's subject and
// reports every referenced ID the database does not define. Advisory: an
// empty database is a valid load and simply reports everything missing.
func (s *planService) MissingStandards(ctx context.Context, id string) ([]string, standards.LoadResult, error) {
	rec, err := s.plans.GetByID(ctx, id)
	if err != nil {
		return nil, standards.LoadResult{}, err
	}
	result := s.loader.Load(rec.Plan.Subject)
	missing := standards.MissingReferences(&rec.Plan, result.DB)
	return missing, result, nil
}
