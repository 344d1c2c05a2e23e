package repository

import (
	"context"
	"errors"
	"time"

	"github.com/imtheyoyo/plan-course/internal/domain"
)

// ErrNotFound is returned when a plan id matches nothing.
var ErrNotFound = errors.New("plan not found")

// PlanSummary is the listing row for a stored plan.
type PlanSummary struct {
	ID             string
	RaceDate       time.Time
	RaceDistanceKm float64
	Level          domain.Level
	WeekCount      int
	CreatedAt      time.Time
}

// PlanRepo persists whole training plans. Save is transactional: a plan
// and all its weeks and sessions land together or not at all.
type PlanRepo interface {
	Save(ctx context.Context, plan *domain.TrainingPlan) error
	GetByID(ctx context.Context, id string) (*domain.TrainingPlan, error)
	Latest(ctx context.Context) (*domain.TrainingPlan, error)
	List(ctx context.Context) ([]PlanSummary, error)
	SaveWeek(ctx context.Context, planID string, week *domain.Week) error
	Delete(ctx context.Context, id string) error
}
