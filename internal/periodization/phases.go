// Package periodization splits a plan into phases and lays out the weekly
// mileage progression that the session generator fills in.
package periodization

import (
	"fmt"

	"github.com/imtheyoyo/plan-course/internal/domain"
)

// Phase proportions of the total plan length.
const (
	peakShare    = 0.22
	qualityShare = 0.38
	minPeakWeeks = 2
	minQualWeeks = 3
)

// Distance-class thresholds in kilometers.
const (
	marathonClassKm = 40.0
	halfClassKm     = 20.0
	tenClassKm      = 10.0
)

// SplitPhases divides the plan into base, quality, peak and taper blocks.
// Taper length is a step function of race distance; peak and quality are
// proportional with floors; base absorbs the remainder. A negative base
// means the plan is too short for the distance and is a fatal input error.
func SplitPhases(totalWeeks int, raceDistanceKm float64) ([]domain.Phase, error) {
	taper := taperWeeksFor(raceDistanceKm)
	peak := maxInt(minPeakWeeks, int(peakShare*float64(totalWeeks)))
	quality := maxInt(minQualWeeks, int(qualityShare*float64(totalWeeks)))
	base := totalWeeks - taper - peak - quality
	if base < 0 {
		return nil, fmt.Errorf("%w: %d weeks cannot hold taper %d + peak %d + quality %d",
			domain.ErrPlanTooShort, totalWeeks, taper, peak, quality)
	}
	return []domain.Phase{
		{Name: "Base", Type: domain.PhaseBase, Weeks: base},
		{Name: "Quality", Type: domain.PhaseQuality, Weeks: quality},
		{Name: "Peak", Type: domain.PhasePeak, Weeks: peak},
		{Name: "Taper", Type: domain.PhaseTaper, Weeks: taper},
	}, nil
}

// PhaseForWeek returns the phase containing the 1-based week number and
// the week's 0-based offset within that phase.
func PhaseForWeek(phases []domain.Phase, week int) (domain.Phase, int) {
	offset := week - 1
	for _, p := range phases {
		if offset < p.Weeks {
			return p, offset
		}
		offset -= p.Weeks
	}
	if len(phases) == 0 {
		return domain.Phase{}, 0
	}
	last := phases[len(phases)-1]
	return last, last.Weeks - 1
}

func taperWeeksFor(raceDistanceKm float64) int {
	switch {
	case raceDistanceKm >= marathonClassKm:
		return 3
	case raceDistanceKm >= halfClassKm:
		return 2
	default:
		return 1
	}
}

// TargetWeeklyKm is the mileage endpoint the build progression aims for,
// a step function of distance class and fitness band scaled by level.
func TargetWeeklyKm(raceDistanceKm, vdot float64, level domain.Level) float64 {
	bands := targetBands(raceDistanceKm)
	var target float64
	switch {
	case vdot < 40:
		target = bands[0]
	case vdot < 50:
		target = bands[1]
	case vdot < 60:
		target = bands[2]
	default:
		target = bands[3]
	}
	return target * levelMultiplier(level)
}

func targetBands(raceDistanceKm float64) [4]float64 {
	switch {
	case raceDistanceKm >= marathonClassKm:
		return [4]float64{55, 70, 85, 95}
	case raceDistanceKm >= halfClassKm:
		return [4]float64{45, 55, 70, 80}
	case raceDistanceKm >= tenClassKm:
		return [4]float64{35, 45, 55, 65}
	default:
		return [4]float64{30, 40, 50, 60}
	}
}

func levelMultiplier(level domain.Level) float64 {
	switch level {
	case domain.LevelBeginner:
		return 0.85
	case domain.LevelAdvanced:
		return 1.15
	default:
		return 1.0
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
