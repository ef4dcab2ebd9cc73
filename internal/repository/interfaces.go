package repository

import (
	"context"

	"github.com/ainara-edu/teksplan/internal/domain"
)

// PlanRepo persists lesson plans.
type PlanRepo interface {
	Create(ctx context.Context, rec *domain.PlanRecord) error
	GetByID(ctx context.Context, id string) (*domain.PlanRecord, error)
	List(ctx context.Context) ([]*domain.PlanRecord, error)
	Update(ctx context.Context, rec *domain.PlanRecord) error
	Delete(ctx context.Context, id string) error
}
