package scheduler

import (
	"fmt"
	"sort"

	"github.com/imtheyoyo/plan-course/internal/domain"
)

// Strategy assigns days to a week's sessions in place. Implementations
// must leave a session's Day as Unassigned rather than invent a day when
// no available day remains; the caller treats that as a structural error.
type Strategy interface {
	Place(sessions []*domain.Session, req domain.PlanRequest) error
}

// StrategyFor returns the placement strategy selected by the config.
func StrategyFor(cfg domain.Config) Strategy {
	if cfg.Placement == domain.PlacementSimple {
		return SimplePlacer{}
	}
	return FatiguePlacer{}
}

// FatiguePlacer is the canonical strategy: the long run claims its
// designated day, hard sessions are placed one at a time on the
// best-scoring remaining day with fatigue recomputed between placements,
// easy sessions fill the freshest remaining days.
type FatiguePlacer struct{}

func (FatiguePlacer) Place(sessions []*domain.Session, req domain.PlanRequest) error {
	free := make(map[domain.Weekday]bool, len(req.TrainingDays))
	for _, d := range req.TrainingDays {
		free[d] = true
	}

	var hard, easy []*domain.Session
	for _, s := range sessions {
		switch {
		case s.Category == domain.CategoryLongRun:
			if !free[req.LongRunDay] {
				return fmt.Errorf("%w: long run day %s not free", domain.ErrUnplaceableSession, req.LongRunDay)
			}
			s.Day = req.LongRunDay
			delete(free, req.LongRunDay)
		case isHard(s):
			hard = append(hard, s)
		default:
			easy = append(easy, s)
		}
	}

	// Tests first, then by descending intensity.
	sort.SliceStable(hard, func(i, j int) bool {
		if hard[i].IsTest != hard[j].IsTest {
			return hard[i].IsTest
		}
		return hard[i].Intensity > hard[j].Intensity
	})

	for _, s := range hard {
		fatigue := Simulate(sessions, req)
		bestDay := domain.Unassigned
		bestScore := 0.0
		for day := domain.Monday; day <= domain.Sunday; day++ {
			if !free[day] {
				continue
			}
			if score := ScorePlacement(s, day, sessions, fatigue); bestDay == domain.Unassigned || score > bestScore {
				bestDay, bestScore = day, score
			}
		}
		if bestDay == domain.Unassigned {
			return fmt.Errorf("%w: %s", domain.ErrUnplaceableSession, s.Type)
		}
		s.Day = bestDay
		delete(free, bestDay)
	}

	return placeEasy(easy, free, sessions, req)
}

// placeEasy assigns easy sessions by descending distance to the remaining
// available days ordered by ascending fatigue.
func placeEasy(easy []*domain.Session, free map[domain.Weekday]bool, all []*domain.Session, req domain.PlanRequest) error {
	sort.SliceStable(easy, func(i, j int) bool {
		return easy[i].DistanceKm > easy[j].DistanceKm
	})

	fatigue := Simulate(all, req)
	days := make([]domain.Weekday, 0, len(free))
	for day := domain.Monday; day <= domain.Sunday; day++ {
		if free[day] {
			days = append(days, day)
		}
	}
	sort.SliceStable(days, func(i, j int) bool {
		return fatigue[days[i]] < fatigue[days[j]]
	})

	for i, s := range easy {
		if i >= len(days) {
			return fmt.Errorf("%w: %s", domain.ErrUnplaceableSession, s.Type)
		}
		s.Day = days[i]
	}
	return nil
}
