package load

import (
	"testing"

	"github.com/imtheyoyo/plan-course/internal/domain"
	"github.com/stretchr/testify/assert"
)

var testPaces = domain.PaceSet{EasyLow: 360, EasyHigh: 320, Threshold: 255, Interval: 236}

func TestSessionTSS_ScalesWithIntensity(t *testing.T) {
	easy := &domain.Session{DistanceKm: 10, Intensity: 1}
	hard := &domain.Session{DistanceKm: 10, Intensity: 4}

	assert.InDelta(t, 36, SessionTSS(easy, testPaces), 0.01, "60 min at factor 0.6")
	assert.InDelta(t, 69, SessionTSS(hard, testPaces), 0.01, "60 min at factor 1.15")
}

func TestSessionTSS_ZeroForDegenerateInput(t *testing.T) {
	assert.Zero(t, SessionTSS(nil, testPaces))
	assert.Zero(t, SessionTSS(&domain.Session{DistanceKm: 0, Intensity: 2}, testPaces))
	assert.Zero(t, SessionTSS(&domain.Session{DistanceKm: 10, Intensity: 2}, domain.PaceSet{}))
}

func TestWeekTSS_SumsAndRounds(t *testing.T) {
	week := &domain.Week{Sessions: []*domain.Session{
		{DistanceKm: 10, Intensity: 1},
		{DistanceKm: 10, Intensity: 4},
	}}

	assert.Equal(t, 105, WeekTSS(week, testPaces))
}
