// Package load derives unitless training-stress scores from session
// distance and intensity. Scores feed reporting and validation only,
// never placement decisions.
package load

import (
	"math"

	"github.com/imtheyoyo/plan-course/internal/domain"
)

// Stress multiplier by session intensity 1-4.
var intensityFactor = [5]float64{0, 0.6, 0.75, 0.95, 1.15}

// SessionTSS estimates one session's stress: duration at the easy-low
// pace scaled by the intensity factor.
func SessionTSS(s *domain.Session, paces domain.PaceSet) float64 {
	if s == nil || s.DistanceKm <= 0 || paces.EasyLow <= 0 {
		return 0
	}
	durationMin := s.DistanceKm * paces.EasyLow / 60
	i := s.Intensity
	if i < 1 {
		i = 1
	}
	if i > 4 {
		i = 4
	}
	return durationMin * intensityFactor[i]
}

// WeekTSS sums and rounds the stress of a week's sessions.
func WeekTSS(w *domain.Week, paces domain.PaceSet) int {
	var total float64
	for _, s := range w.Sessions {
		total += SessionTSS(s, paces)
	}
	return int(math.Round(total))
}
