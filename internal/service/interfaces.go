package service

import (
	"context"

	"github.com/ainara-edu/teksplan/internal/domain"
	"github.com/ainara-edu/teksplan/internal/standards"
)

type PlanService interface {
	Create(ctx context.Context, plan domain.LessonPlan) (*domain.PlanRecord, error)
	GetByID(ctx context.Context, id string) (*domain.PlanRecord, error)
	List(ctx context.Context) ([]*domain.PlanRecord, error)
	Update(ctx context.Context, rec *domain.PlanRecord) error
	Delete(ctx context.Context, id string) error
	Import(ctx context.Context, data []byte) (*domain.PlanRecord, error)
	LoadExample(ctx context.Context) (*domain.PlanRecord, error)
	Export(ctx context.Context, id string) ([]byte, error)
	MissingStandards(ctx context.Context, id string) ([]string, standards.LoadResult, error)
}

// StandardsLoader resolves a subject to a standards database. Satisfied by
// *standards.FileSource.
type StandardsLoader interface {
	Load(subject string) standards.LoadResult
}
