package testutil

import (
	"time"

	"github.com/google/uuid"

	"github.com/imtheyoyo/plan-course/internal/domain"
)

// PlanRequestOption mutates the default fixture request.
type PlanRequestOption func(*domain.PlanRequest)

func WithLevel(level domain.Level) PlanRequestOption {
	return func(r *domain.PlanRequest) {
		r.Level = level
	}
}

func WithRaceDistance(km float64) PlanRequestOption {
	return func(r *domain.PlanRequest) {
		r.RaceDistanceKm = km
	}
}

func WithTrainingDays(days ...domain.Weekday) PlanRequestOption {
	return func(r *domain.PlanRequest) {
		r.TrainingDays = days
	}
}

// NewPlanRequest returns a valid 16-week 10 km request: intermediate
// level, four training days, long run on Sunday, a known 10 km result.
func NewPlanRequest(opts ...PlanRequestOption) domain.PlanRequest {
	req := domain.PlanRequest{
		StartDate:       time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC),
		RaceDate:        time.Date(2026, 4, 25, 0, 0, 0, 0, time.UTC),
		RaceDistanceKm:  10,
		Level:           domain.LevelIntermediate,
		TrainingDays:    []domain.Weekday{domain.Tuesday, domain.Thursday, domain.Saturday, domain.Sunday},
		LongRunDay:      domain.Sunday,
		CurrentWeeklyKm: 30,
		Performance:     &domain.Performance{DistanceKm: 10, Duration: 41*time.Minute + 21*time.Second},
	}
	for _, opt := range opts {
		opt(&req)
	}
	return req
}

// NewTrainingPlan returns a small hand-built two-week plan suitable for
// persistence tests; it is structurally complete but not generated.
func NewTrainingPlan() *domain.TrainingPlan {
	req := NewPlanRequest()
	start := req.StartDate

	week1 := &domain.Week{
		Number:    1,
		PhaseName: "Base",
		PhaseType: domain.PhaseBase,
		StartDate: start,
		TotalKm:   30,
		TSS:       110,
		Sessions: []*domain.Session{
			{
				ID:        uuid.New().String(),
				Type:      "Tempo run",
				Category:  domain.CategoryThreshold,
				Intensity: 3,
				Structure: []domain.Segment{
					{Name: "warm-up", Text: "20 min easy"},
					{Name: "main set", Text: "20 min at threshold pace"},
				},
				Descriptor: &domain.WorkoutDescriptor{
					WarmupMin:      20,
					Reps:           1,
					RepDurationMin: 20,
					CooldownMin:    10,
					Zone:           domain.ZoneThreshold,
				},
				DistanceKm: 9,
				Day:        domain.Tuesday,
				FullDate:   start.AddDate(0, 0, 1),
			},
			{
				ID:         uuid.New().String(),
				Type:       "Easy run",
				Category:   domain.CategoryEasy,
				Intensity:  1,
				Structure:  []domain.Segment{{Name: "main set", Text: "8.0 km easy"}},
				DistanceKm: 8,
				Day:        domain.Thursday,
				FullDate:   start.AddDate(0, 0, 3),
			},
			{
				ID:         uuid.New().String(),
				Type:       "Long run",
				Category:   domain.CategoryLongRun,
				Intensity:  2,
				Structure:  []domain.Segment{{Name: "main set", Text: "13.0 km easy"}},
				DistanceKm: 13,
				Day:        domain.Sunday,
				FullDate:   start.AddDate(0, 0, 6),
			},
		},
	}

	week2 := &domain.Week{
		Number:    2,
		PhaseName: "Base",
		PhaseType: domain.PhaseBase,
		StartDate: start.AddDate(0, 0, 7),
		TotalKm:   22,
		TSS:       80,
		Sessions: []*domain.Session{
			{
				ID:         uuid.New().String(),
				Type:       "Easy run",
				Category:   domain.CategoryEasy,
				Intensity:  1,
				DistanceKm: 9,
				Day:        domain.Tuesday,
				FullDate:   start.AddDate(0, 0, 8),
			},
			{
				ID:         uuid.New().String(),
				Type:       "Long run",
				Category:   domain.CategoryLongRun,
				Intensity:  2,
				DistanceKm: 13,
				Day:        domain.Sunday,
				FullDate:   start.AddDate(0, 0, 13),
			},
		},
	}

	return &domain.TrainingPlan{
		ID:      uuid.New().String(),
		Request: req,
		Paces: domain.PaceSet{
			EasyLow:    360,
			EasyHigh:   320,
			Marathon:   276,
			Threshold:  255,
			Interval:   236,
			Repetition: 223,
			Race:       248,
		},
		Weeks:     []*domain.Week{week1, week2},
		CreatedAt: time.Date(2026, 1, 2, 12, 0, 0, 0, time.UTC),
	}
}
