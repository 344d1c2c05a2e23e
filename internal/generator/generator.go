// Package generator turns a week's mileage target into a concrete set of
// unplaced sessions: quality work from the template catalog, one long run
// and easy runs absorbing the remaining mileage.
package generator

import (
	"fmt"
	"math"

	"github.com/google/uuid"
	"github.com/imtheyoyo/plan-course/internal/domain"
	"github.com/imtheyoyo/plan-course/internal/library"
	"github.com/imtheyoyo/plan-course/internal/pace"
)

// WeekInput carries everything needed to generate one week's sessions.
type WeekInput struct {
	WeekNumber  int // 1-based across the plan
	Phase       domain.Phase
	PhaseOffset int // 0-based week index within the phase
	Config      domain.WeekConfig
	Request     domain.PlanRequest
	Paces       domain.PaceSet
}

// Quality sessions per week by phase, before level scaling.
var baseQualityCount = map[domain.PhaseType]int{
	domain.PhaseBase:    1,
	domain.PhaseQuality: 2,
	domain.PhasePeak:    2,
	domain.PhaseTaper:   1,
}

// Long run share of weekly mileage by training-day count: fewer days
// concentrate more of the week into the long run.
var longRunShare = map[int]float64{
	3: 0.40,
	4: 0.35,
	5: 0.32,
}

const longRunShareManyDays = 0.28

// Easy-run mileage split by slot count.
var easySplit = map[int][]float64{
	1: {1.0},
	2: {0.55, 0.45},
	3: {0.40, 0.33, 0.27},
	4: {0.30, 0.27, 0.23, 0.20},
	5: {0.25, 0.22, 0.20, 0.18, 0.15},
}

// Sessions generates the full unplaced session set for one week.
func Sessions(in WeekInput, cfg domain.Config) []*domain.Session {
	var sessions []*domain.Session

	long := longRun(in, cfg)
	sessions = append(sessions, long)

	if in.Config.Test {
		sessions = append(sessions, fieldTest(in, cfg))
	}

	progression := progressionIndex(in.PhaseOffset, in.Phase.Weeks)
	for k := 0; k < qualityCount(in); k++ {
		templates := library.TemplatesFor(in.Phase.Type)
		if len(templates) == 0 {
			break
		}
		tmpl := templates[(in.WeekNumber+k)%len(templates)]
		sessions = append(sessions, library.Instantiate(tmpl, in.Paces, progression, in.Request.Level, cfg))
	}

	sessions = append(sessions, easyRuns(in, sessions, cfg)...)
	return sessions
}

// qualityCount derives the number of quality sessions from phase type,
// available days and level; recovery weeks always force zero.
func qualityCount(in WeekInput) int {
	if in.Config.Recovery {
		return 0
	}
	count := int(math.Round(float64(baseQualityCount[in.Phase.Type]) * qualityLevelFactor(in.Request.Level)))
	// Keep room for the long run and at least one easy run; the test
	// occupies a day of its own and replaces one quality session.
	limit := len(in.Request.TrainingDays) - 2
	if in.Config.Test {
		count--
		limit--
	}
	if count > limit {
		count = limit
	}
	if count < 0 {
		count = 0
	}
	return count
}

func qualityLevelFactor(level domain.Level) float64 {
	switch level {
	case domain.LevelBeginner:
		return 0.5
	case domain.LevelAdvanced:
		return 1.5
	default:
		return 1.0
	}
}

// progressionIndex divides a phase into thirds to step up template load.
func progressionIndex(offset, phaseWeeks int) int {
	if phaseWeeks <= 0 {
		return 0
	}
	idx := offset * 3 / phaseWeeks
	if idx > 2 {
		idx = 2
	}
	return idx
}

// longRun builds the week's single long run: a share of weekly mileage
// capped by a slowly growing, distance-class-dependent ceiling. Peak
// weeks get a race-pace finish; every third quality-phase week becomes a
// progressive run; recovery weeks shrink the result 20%.
func longRun(in WeekInput, cfg domain.Config) *domain.Session {
	share, ok := longRunShare[len(in.Request.TrainingDays)]
	if !ok {
		share = longRunShareManyDays
	}
	km := in.Config.TargetKm * share
	if ceiling := longRunCeiling(in.Request.RaceDistanceKm, in.WeekNumber); km > ceiling {
		km = ceiling
	}
	if in.Config.Recovery {
		km *= 0.8
	}
	km = math.Max(round1(km), cfg.MinSessionKm)

	label := "Long run"
	segments := []domain.Segment{{
		Name: "main set",
		Text: fmt.Sprintf("%.1f km at easy pace (%s)", km, pace.Format(in.Paces.EasyHigh)),
	}}
	intensity := 2

	switch {
	case in.Phase.Type == domain.PhasePeak:
		label = "Specific long run"
		finish := round1(km * 0.25)
		segments = []domain.Segment{
			{Name: "main set", Text: fmt.Sprintf("%.1f km at easy pace (%s)", round1(km-finish), pace.Format(in.Paces.EasyHigh))},
			{Name: "finish", Text: fmt.Sprintf("last %.1f km at race pace (%s)", finish, pace.Format(in.Paces.Race))},
		}
		intensity = 3
	case in.Phase.Type == domain.PhaseQuality && in.PhaseOffset%3 == 2:
		label = "Progressive long run"
		third := round1(km / 3)
		segments = []domain.Segment{
			{Name: "main set", Text: fmt.Sprintf("%.1f km easy (%s), %.1f km steady (%s), %.1f km at marathon pace (%s)",
				third, pace.Format(in.Paces.EasyLow), third, pace.Format(in.Paces.EasyHigh), round1(km-2*third), pace.Format(in.Paces.Marathon))},
		}
	}

	return &domain.Session{
		ID:         uuid.New().String(),
		Type:       label,
		Category:   domain.CategoryLongRun,
		Intensity:  intensity,
		Structure:  segments,
		DistanceKm: km,
		Day:        domain.Unassigned,
	}
}

func longRunCeiling(raceDistanceKm float64, week int) float64 {
	var base float64
	switch {
	case raceDistanceKm >= 40:
		base = 22
	case raceDistanceKm >= 20:
		base = 18
	case raceDistanceKm >= 10:
		base = 14
	default:
		base = 12
	}
	return base + 0.25*float64(week)
}

// fieldTest creates the scheduled test: a 5 km time trial for the longer
// race distances, otherwise a 6-minute maximal-effort test.
func fieldTest(in WeekInput, cfg domain.Config) *domain.Session {
	if in.Request.RaceDistanceKm >= 10 {
		return &domain.Session{
			ID:        uuid.New().String(),
			Type:      "5 km time trial",
			Category:  domain.CategoryTest,
			Intensity: 4,
			Structure: []domain.Segment{
				{Name: "warm-up", Text: fmt.Sprintf("20 min easy (%s)", pace.Format(in.Paces.EasyLow))},
				{Name: "main set", Text: "5 km all-out, record the time"},
				{Name: "cool-down", Text: "10 min easy"},
			},
			DistanceKm: round1(5 + minutesToKm(30, in.Paces.EasyLow)),
			Day:        domain.Unassigned,
			IsTest:     true,
		}
	}
	return &domain.Session{
		ID:        uuid.New().String(),
		Type:      "6-minute test",
		Category:  domain.CategoryTest,
		Intensity: 4,
		Structure: []domain.Segment{
			{Name: "warm-up", Text: fmt.Sprintf("20 min easy (%s)", pace.Format(in.Paces.EasyLow))},
			{Name: "main set", Text: "6 min maximal effort, record the distance"},
			{Name: "cool-down", Text: "10 min easy"},
		},
		DistanceKm: math.Max(round1(2+minutesToKm(30, in.Paces.EasyLow)), cfg.MinSessionKm),
		Day:        domain.Unassigned,
		IsTest:     true,
	}
}

// easyRuns spreads the mileage left after the long run, quality sessions
// and any field test across easy sessions using the fixed split table.
// An oversized first slot is clipped against the long run and its excess
// redistributed.
func easyRuns(in WeekInput, placed []*domain.Session, cfg domain.Config) []*domain.Session {
	var used float64
	var longKm float64
	for _, s := range placed {
		used += s.DistanceKm
		if s.Category == domain.CategoryLongRun {
			longKm = s.DistanceKm
		}
	}
	remaining := in.Config.TargetKm - used
	if remaining < cfg.MinSessionKm {
		return nil
	}

	slots := len(in.Request.TrainingDays) - len(placed)
	if slots < 1 {
		return nil
	}
	if slots > 5 {
		slots = 5
	}

	split := easySplit[slots]
	distances := make([]float64, slots)
	for i, pct := range split {
		distances[i] = remaining * pct
	}

	// Clip an easy run that rivals the long run.
	if longKm > 0 && distances[0] > 0.85*longKm {
		excess := distances[0] - 0.70*longKm
		distances[0] = 0.70 * longKm
		if slots > 1 {
			var rest float64
			for _, d := range distances[1:] {
				rest += d
			}
			for i := 1; i < slots; i++ {
				if rest > 0 {
					distances[i] += excess * (distances[i] / rest)
				}
			}
		}
	}

	sessions := make([]*domain.Session, 0, slots)
	for _, km := range distances {
		km = math.Max(round1(km), cfg.MinSessionKm)
		sessions = append(sessions, &domain.Session{
			ID:        uuid.New().String(),
			Type:      "Easy run",
			Category:  domain.CategoryEasy,
			Intensity: 1,
			Structure: []domain.Segment{{
				Name: "main set",
				Text: fmt.Sprintf("%.1f km easy (%s to %s)", km, pace.Format(in.Paces.EasyLow), pace.Format(in.Paces.EasyHigh)),
			}},
			DistanceKm: km,
			Day:        domain.Unassigned,
		})
	}
	return sessions
}

func minutesToKm(minutes, secPerKm float64) float64 {
	if minutes <= 0 || secPerKm <= 0 {
		return 0
	}
	return minutes * 60 / secPerKm
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
