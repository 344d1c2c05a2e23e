package scheduler

import (
	"fmt"
	"sort"

	"github.com/imtheyoyo/plan-course/internal/domain"
)

// SimplePlacer is the reduced, non-fatigue-aware strategy: fixed
// day-preference lists with a two-then-one-day minimum spacing fallback,
// then forced placement on any free day.
type SimplePlacer struct{}

var simplePreferences = map[domain.SessionCategory][]domain.Weekday{
	domain.CategoryVMA:       {domain.Tuesday, domain.Wednesday, domain.Thursday, domain.Monday, domain.Friday},
	domain.CategoryThreshold: {domain.Thursday, domain.Wednesday, domain.Friday, domain.Tuesday, domain.Saturday},
	domain.CategoryTest:      {domain.Wednesday, domain.Thursday, domain.Tuesday, domain.Friday},
}

func (SimplePlacer) Place(sessions []*domain.Session, req domain.PlanRequest) error {
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

	sort.SliceStable(hard, func(i, j int) bool {
		if hard[i].IsTest != hard[j].IsTest {
			return hard[i].IsTest
		}
		return hard[i].Intensity > hard[j].Intensity
	})

	for _, s := range hard {
		day := pickSimpleDay(s, sessions, free)
		if day == domain.Unassigned {
			return fmt.Errorf("%w: %s", domain.ErrUnplaceableSession, s.Type)
		}
		s.Day = day
		delete(free, day)
	}

	// Easy sessions take remaining days in week order.
	days := make([]domain.Weekday, 0, len(free))
	for day := domain.Monday; day <= domain.Sunday; day++ {
		if free[day] {
			days = append(days, day)
		}
	}
	sort.SliceStable(easy, func(i, j int) bool {
		return easy[i].DistanceKm > easy[j].DistanceKm
	})
	for i, s := range easy {
		if i >= len(days) {
			return fmt.Errorf("%w: %s", domain.ErrUnplaceableSession, s.Type)
		}
		s.Day = days[i]
	}
	return nil
}

// pickSimpleDay walks the preference list demanding two rest days from
// other hard sessions, relaxes to one, then forces any free day.
func pickSimpleDay(s *domain.Session, placed []*domain.Session, free map[domain.Weekday]bool) domain.Weekday {
	prefs := simplePreferences[s.Category]
	if prefs == nil {
		prefs = simplePreferences[domain.CategoryThreshold]
	}

	for _, spacing := range []int{2, 1} {
		for _, day := range prefs {
			if free[day] && hardSpacingOK(day, placed, spacing) {
				return day
			}
		}
	}
	for day := domain.Monday; day <= domain.Sunday; day++ {
		if free[day] {
			return day
		}
	}
	return domain.Unassigned
}

func hardSpacingOK(day domain.Weekday, placed []*domain.Session, spacing int) bool {
	for _, other := range placed {
		if !other.Day.Valid() || !isHard(other) {
			continue
		}
		diff := int(day - other.Day)
		if diff < 0 {
			diff = -diff
		}
		if diff < spacing {
			return false
		}
	}
	return true
}
