package periodization

import (
	"math"

	"github.com/imtheyoyo/plan-course/internal/domain"
)

// Profile holds the per-level build/recovery tuning.
type Profile struct {
	BuildRateMax     float64
	RecoveryFraction float64
}

// ProfileFor returns the build profile for a runner level.
func ProfileFor(level domain.Level) Profile {
	switch level {
	case domain.LevelBeginner:
		return Profile{BuildRateMax: 1.08, RecoveryFraction: 0.60}
	case domain.LevelAdvanced:
		return Profile{BuildRateMax: 1.12, RecoveryFraction: 0.70}
	default:
		return Profile{BuildRateMax: 1.10, RecoveryFraction: 0.65}
	}
}

// Weeks 1-3 of each meso-cycle drift up from the cycle base; the base
// itself advances geometrically once per cycle.
var cycleDrift = [3]float64{1.00, 1.02, 1.05}

// Test weeks replace a quality session with a field test: first at week 5,
// then every 6 weeks.
const (
	firstTestWeek    = 5
	testWeekInterval = 6
)

// BuildWeeks produces one WeekConfig per non-taper week using a 4-week
// meso-cycle: three build weeks then a recovery week at a fraction of the
// last build week. Mileage never overshoots targetKm.
func BuildWeeks(currentKm, targetKm float64, profile Profile, weeks int) []domain.WeekConfig {
	configs := make([]domain.WeekConfig, 0, weeks)
	cycleBase := currentKm
	lastBuild := currentKm

	for i := 0; i < weeks; i++ {
		week := i + 1
		pos := i % 4
		cfg := domain.WeekConfig{}

		if pos == 3 {
			cfg.Recovery = true
			cfg.TargetKm = round1(lastBuild * profile.RecoveryFraction)
			// Cycle base steps up once per completed cycle, capped by
			// the profile growth rate and the overall target.
			cycleBase = math.Min(cycleBase*profile.BuildRateMax, targetKm)
		} else {
			cfg.TargetKm = round1(math.Min(cycleBase*cycleDrift[pos], targetKm))
			lastBuild = cfg.TargetKm
		}

		if IsTestWeek(week) {
			cfg.Test = true
			cfg.Recovery = false
			if pos == 3 {
				cfg.TargetKm = lastBuild
			}
		}
		configs = append(configs, cfg)
	}
	return configs
}

// IsTestWeek reports whether a field test is scheduled for the 1-based
// week number.
func IsTestWeek(week int) bool {
	if week < firstTestWeek {
		return false
	}
	return (week-firstTestWeek)%testWeekInterval == 0
}

// Taper reduction off the observed peak mileage, keyed by taper length.
var taperCurves = map[int][]float64{
	3: {0.75, 0.55, 0.35},
	2: {0.65, 0.40},
	1: {0.55},
}

// TaperWeeks applies the fixed reduction schedule to peak mileage,
// floored at minKm.
func TaperWeeks(peakKm, minKm float64, taperLen int) []domain.WeekConfig {
	curve, ok := taperCurves[taperLen]
	if !ok {
		curve = taperCurves[1]
	}
	configs := make([]domain.WeekConfig, 0, len(curve))
	for _, pct := range curve {
		configs = append(configs, domain.WeekConfig{
			TargetKm: round1(math.Max(peakKm*pct, minKm)),
		})
	}
	return configs
}

// PeakKm returns the highest weekly mileage across configs.
func PeakKm(configs []domain.WeekConfig) float64 {
	var peak float64
	for _, c := range configs {
		if c.TargetKm > peak {
			peak = c.TargetKm
		}
	}
	return peak
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
