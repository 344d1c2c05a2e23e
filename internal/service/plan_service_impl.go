package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/imtheyoyo/plan-course/internal/domain"
	"github.com/imtheyoyo/plan-course/internal/generator"
	"github.com/imtheyoyo/plan-course/internal/load"
	"github.com/imtheyoyo/plan-course/internal/pace"
	"github.com/imtheyoyo/plan-course/internal/periodization"
	"github.com/imtheyoyo/plan-course/internal/scheduler"
)

type planService struct {
	cfg      domain.Config
	observer UseCaseObserver
}

func NewPlanService(cfg domain.Config, observers ...UseCaseObserver) PlanService {
	return &planService{cfg: cfg, observer: useCaseObserverOrNoop(observers)}
}

func (s *planService) Generate(ctx context.Context, req domain.PlanRequest) (*domain.TrainingPlan, error) {
	started := time.Now()
	plan, err := s.generate(req)
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      "plan_generate",
		Duration:  time.Since(started),
		Success:   err == nil,
		Err:       err,
		StartedAt: started,
		Fields: map[string]any{
			"race_km": req.RaceDistanceKm,
			"level":   string(req.Level),
			"weeks":   req.TotalWeeks(),
		},
	})
	return plan, err
}

// generate runs the full pipeline synchronously: paces, phase split,
// mileage configs, then week by week session generation and placement.
// Weekly configs are built strictly in order because each week's mileage
// depends on the previous one.
func (s *planService) generate(req domain.PlanRequest) (*domain.TrainingPlan, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var warnings []string
	vdot, err := fitnessIndex(req)
	if err != nil {
		if !errors.Is(err, domain.ErrInvalidFitnessIndex) {
			return nil, err
		}
		// Never fatal: fall back to the default pace table and tell
		// the caller.
		warnings = append(warnings, fmt.Sprintf("%s; using default pace table", err))
		vdot = s.cfg.DefaultVDOT
	}
	paces, paceWarnings := pace.ForVDOT(vdot, req.RaceDistanceKm, s.cfg)

	totalWeeks := req.TotalWeeks()
	phases, err := periodization.SplitPhases(totalWeeks, req.RaceDistanceKm)
	if err != nil {
		return nil, err
	}
	configs := s.weekConfigs(req, vdot, phases, totalWeeks)

	strategy := scheduler.StrategyFor(s.cfg)
	weekStart := mondayOf(req.StartDate)

	weeks := make([]*domain.Week, 0, totalWeeks)
	for n := 1; n <= totalWeeks; n++ {
		phase, offset := periodization.PhaseForWeek(phases, n)
		in := generator.WeekInput{
			WeekNumber:  n,
			Phase:       phase,
			PhaseOffset: offset,
			Config:      configs[n-1],
			Request:     req,
			Paces:       paces,
		}

		var sessions []*domain.Session
		if n == totalWeeks {
			// The race week is generated pre-placed around the real race
			// weekday and skips the placement engine entirely.
			sessions = generator.RaceWeek(in, s.cfg)
		} else {
			sessions = generator.Sessions(in, s.cfg)
			if err := strategy.Place(sessions, req); err != nil {
				return nil, fmt.Errorf("week %d: %w", n, err)
			}
		}

		week := &domain.Week{
			Number:    n,
			PhaseName: phase.Name,
			PhaseType: phase.Type,
			StartDate: weekStart,
			Sessions:  sessions,
		}
		for _, sess := range sessions {
			week.TotalKm += sess.DistanceKm
			if sess.Day.Valid() {
				sess.FullDate = weekStart.AddDate(0, 0, int(sess.Day))
			}
		}
		week.SortByDay()
		week.TSS = load.WeekTSS(week, paces)

		weeks = append(weeks, week)
		weekStart = weekStart.AddDate(0, 0, 7)
	}

	for _, w := range paceWarnings {
		warnings = append(warnings, w.Error())
	}

	return &domain.TrainingPlan{
		ID:        uuid.New().String(),
		Request:   req,
		Paces:     paces,
		Weeks:     weeks,
		Warnings:  warnings,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// weekConfigs lays out the mileage for every week: a capped geometric
// build over the non-taper weeks, then the fixed taper reduction off the
// observed peak. The last taper entry belongs to the race week.
func (s *planService) weekConfigs(req domain.PlanRequest, vdot float64, phases []domain.Phase, totalWeeks int) []domain.WeekConfig {
	taperLen := phases[len(phases)-1].Weeks
	profile := periodization.ProfileFor(req.Level)
	target := periodization.TargetWeeklyKm(req.RaceDistanceKm, vdot, req.Level)

	configs := periodization.BuildWeeks(req.CurrentWeeklyKm, target, profile, totalWeeks-taperLen)
	peak := periodization.PeakKm(configs)
	return append(configs, periodization.TaperWeeks(peak, s.cfg.MinTaperKm, taperLen)...)
}

func fitnessIndex(req domain.PlanRequest) (float64, error) {
	if req.Performance != nil {
		return pace.FromPerformance(*req.Performance)
	}
	return pace.FromSixMinTest(req.SixMinTestKm)
}

// mondayOf returns midnight on the Monday of the week containing t.
// Week starts are Monday-aligned so that day indices map directly onto
// calendar dates.
func mondayOf(t time.Time) time.Time {
	t = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return t.AddDate(0, 0, -int(generator.CalendarWeekday(t)))
}
