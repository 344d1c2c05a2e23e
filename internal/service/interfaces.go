package service

import (
	"context"

	"github.com/imtheyoyo/plan-course/internal/domain"
)

// PlanService generates complete training plans from a validated request.
type PlanService interface {
	Generate(ctx context.Context, req domain.PlanRequest) (*domain.TrainingPlan, error)
}
