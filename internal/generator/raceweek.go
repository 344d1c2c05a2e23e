package generator

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/imtheyoyo/plan-course/internal/domain"
	"github.com/imtheyoyo/plan-course/internal/pace"
)

// RaceWeek generates the final, already-placed week: the race on its real
// calendar weekday, then up to three pre-race sessions (reminder,
// activation, easy) spread over the remaining available days. A race
// early in the week leaves room for at most a short activation; a race
// late in the week gets the full pre-race ladder.
func RaceWeek(in WeekInput, cfg domain.Config) []*domain.Session {
	raceDay := CalendarWeekday(in.Request.RaceDate)
	sessions := []*domain.Session{raceSession(in, raceDay)}

	var before []domain.Weekday
	for d := domain.Monday; d < raceDay; d++ {
		if in.Request.HasTrainingDay(d) {
			before = append(before, d)
		}
	}
	if len(before) == 0 {
		return sessions
	}

	if raceDay >= domain.Thursday {
		// Late-week race: reminder early, activation the day closest to
		// the race, an easy run in between when a third day exists.
		sessions = append(sessions, reminderSession(in, before[0]))
		last := before[len(before)-1]
		if last != before[0] {
			sessions = append(sessions, activationSession(in, last))
		}
		if len(before) >= 3 {
			sessions = append(sessions, easyShakeout(in, before[len(before)/2]))
		}
	} else {
		// Early-week race: only an activation on the closest free day,
		// preceded by an easy run when one more day is available.
		last := before[len(before)-1]
		sessions = append(sessions, activationSession(in, last))
		if len(before) >= 2 {
			sessions = append(sessions, easyShakeout(in, before[0]))
		}
	}
	return sessions
}

// CalendarWeekday converts a calendar date to the Monday-first index.
func CalendarWeekday(t time.Time) domain.Weekday {
	return domain.Weekday((int(t.Weekday()) + 6) % 7)
}

func raceSession(in WeekInput, day domain.Weekday) *domain.Session {
	return &domain.Session{
		ID:        uuid.New().String(),
		Type:      fmt.Sprintf("Race %s", formatRaceDistance(in.Request.RaceDistanceKm)),
		Category:  domain.CategoryRace,
		Intensity: 4,
		Structure: []domain.Segment{{
			Name: "main set",
			Text: fmt.Sprintf("%s at race pace (%s)", formatRaceDistance(in.Request.RaceDistanceKm), pace.Format(in.Paces.Race)),
		}},
		DistanceKm: in.Request.RaceDistanceKm,
		Day:        day,
	}
}

func reminderSession(in WeekInput, day domain.Weekday) *domain.Session {
	return &domain.Session{
		ID:        uuid.New().String(),
		Type:      "Race-pace reminder",
		Category:  domain.CategoryThreshold,
		Intensity: 3,
		Structure: []domain.Segment{
			{Name: "warm-up", Text: fmt.Sprintf("15 min easy (%s)", pace.Format(in.Paces.EasyLow))},
			{Name: "main set", Text: fmt.Sprintf("2 x 1km at race pace (%s)", pace.Format(in.Paces.Race))},
			{Name: "recovery", Text: "300m jog between reps"},
			{Name: "cool-down", Text: "10 min easy"},
		},
		DistanceKm: 6,
		Day:        day,
	}
}

func activationSession(in WeekInput, day domain.Weekday) *domain.Session {
	return &domain.Session{
		ID:        uuid.New().String(),
		Type:      "Activation",
		Category:  domain.CategoryEasy,
		Intensity: 2,
		Structure: []domain.Segment{
			{Name: "main set", Text: fmt.Sprintf("20 min easy (%s)", pace.Format(in.Paces.EasyLow))},
			{Name: "strides", Text: fmt.Sprintf("4 x 100m relaxed strides (%s)", pace.Format(in.Paces.Repetition))},
		},
		DistanceKm: 4,
		Day:        day,
	}
}

func easyShakeout(in WeekInput, day domain.Weekday) *domain.Session {
	km := math.Max(round1(minutesToKm(30, in.Paces.EasyLow)), 3)
	return &domain.Session{
		ID:        uuid.New().String(),
		Type:      "Easy run",
		Category:  domain.CategoryEasy,
		Intensity: 1,
		Structure: []domain.Segment{{
			Name: "main set",
			Text: fmt.Sprintf("%.1f km easy (%s)", km, pace.Format(in.Paces.EasyLow)),
		}},
		DistanceKm: km,
		Day:        day,
	}
}

func formatRaceDistance(km float64) string {
	switch {
	case math.Abs(km-42.195) < 0.5:
		return "marathon"
	case math.Abs(km-21.0975) < 0.5:
		return "half marathon"
	case km == math.Trunc(km):
		return fmt.Sprintf("%d km", int(km))
	default:
		return fmt.Sprintf("%.1f km", km)
	}
}
