package periodization

import (
	"testing"

	"github.com/imtheyoyo/plan-course/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitPhases_SixteenWeekTenK(t *testing.T) {
	phases, err := SplitPhases(16, 10)
	require.NoError(t, err)
	require.Len(t, phases, 4)

	assert.Equal(t, 6, phases[0].Weeks, "base")
	assert.Equal(t, 6, phases[1].Weeks, "quality")
	assert.Equal(t, 3, phases[2].Weeks, "peak")
	assert.Equal(t, 1, phases[3].Weeks, "taper")
}

func TestSplitPhases_WeeksAlwaysSumToTotal(t *testing.T) {
	distances := []float64{5, 10, 21.1, 42.2}
	for _, dist := range distances {
		for total := 8; total <= 30; total++ {
			phases, err := SplitPhases(total, dist)
			if err != nil {
				assert.ErrorIs(t, err, domain.ErrPlanTooShort)
				continue
			}
			sum := 0
			for _, p := range phases {
				sum += p.Weeks
			}
			assert.Equal(t, total, sum, "total=%d dist=%.1f", total, dist)
		}
	}
}

func TestSplitPhases_TaperStepFunction(t *testing.T) {
	marathon, err := SplitPhases(20, 42.2)
	require.NoError(t, err)
	assert.Equal(t, 3, marathon[3].Weeks)

	half, err := SplitPhases(20, 21.1)
	require.NoError(t, err)
	assert.Equal(t, 2, half[3].Weeks)

	tenK, err := SplitPhases(20, 10)
	require.NoError(t, err)
	assert.Equal(t, 1, tenK[3].Weeks)
}

func TestSplitPhases_TooShortIsFatal(t *testing.T) {
	_, err := SplitPhases(7, 42.2)
	assert.ErrorIs(t, err, domain.ErrPlanTooShort)
}

func TestPhaseForWeek(t *testing.T) {
	phases, err := SplitPhases(16, 10)
	require.NoError(t, err)

	first, offset := PhaseForWeek(phases, 1)
	assert.Equal(t, domain.PhaseBase, first.Type)
	assert.Equal(t, 0, offset)

	seventh, offset := PhaseForWeek(phases, 7)
	assert.Equal(t, domain.PhaseQuality, seventh.Type)
	assert.Equal(t, 0, offset)

	last, offset := PhaseForWeek(phases, 16)
	assert.Equal(t, domain.PhaseTaper, last.Type)
	assert.Equal(t, 0, offset)
}

func TestTargetWeeklyKm_LevelScaling(t *testing.T) {
	base := TargetWeeklyKm(10, 45, domain.LevelIntermediate)
	assert.Equal(t, 45.0, base)

	assert.InDelta(t, base*0.85, TargetWeeklyKm(10, 45, domain.LevelBeginner), 0.001)
	assert.InDelta(t, base*1.15, TargetWeeklyKm(10, 45, domain.LevelAdvanced), 0.001)
}

func TestTargetWeeklyKm_GrowsWithDistanceAndFitness(t *testing.T) {
	assert.Greater(t,
		TargetWeeklyKm(42.2, 45, domain.LevelIntermediate),
		TargetWeeklyKm(10, 45, domain.LevelIntermediate))
	assert.Greater(t,
		TargetWeeklyKm(10, 62, domain.LevelIntermediate),
		TargetWeeklyKm(10, 45, domain.LevelIntermediate))
}
