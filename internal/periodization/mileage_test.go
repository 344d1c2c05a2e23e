package periodization

import (
	"testing"

	"github.com/imtheyoyo/plan-course/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildWeeks_MesoCycleProgression(t *testing.T) {
	profile := Profile{BuildRateMax: 1.10, RecoveryFraction: 0.65}
	configs := BuildWeeks(30, 50, profile, 10)
	require.Len(t, configs, 10)

	// Within each cycle, build weeks strictly increase and the recovery
	// week drops strictly below the preceding build week.
	for i, cfg := range configs {
		pos := i % 4
		if pos == 0 {
			continue
		}
		prev := configs[i-1]
		if cfg.Recovery {
			assert.Less(t, cfg.TargetKm, prev.TargetKm, "week %d recovery below build", i+1)
			continue
		}
		if !prev.Recovery {
			assert.Greater(t, cfg.TargetKm, prev.TargetKm, "week %d builds on week %d", i+1, i)
		}
	}
}

func TestBuildWeeks_RecoveryEveryFourthWeek(t *testing.T) {
	configs := BuildWeeks(30, 50, ProfileFor(domain.LevelIntermediate), 12)
	for i, cfg := range configs {
		if (i+1)%4 == 0 {
			assert.True(t, cfg.Recovery, "week %d", i+1)
		} else {
			assert.False(t, cfg.Recovery, "week %d", i+1)
		}
	}
}

func TestBuildWeeks_NeverOvershootsTarget(t *testing.T) {
	configs := BuildWeeks(45, 50, ProfileFor(domain.LevelAdvanced), 24)
	for i, cfg := range configs {
		assert.LessOrEqual(t, cfg.TargetKm, 50.0, "week %d", i+1)
	}
}

func TestBuildWeeks_TestWeekSchedule(t *testing.T) {
	configs := BuildWeeks(30, 50, ProfileFor(domain.LevelIntermediate), 18)

	for i, cfg := range configs {
		week := i + 1
		wantTest := week == 5 || week == 11 || week == 17
		assert.Equal(t, wantTest, cfg.Test, "week %d", week)
		if cfg.Test {
			assert.False(t, cfg.Recovery, "test weeks are never recovery weeks")
		}
	}
}

func TestIsTestWeek(t *testing.T) {
	assert.False(t, IsTestWeek(4))
	assert.True(t, IsTestWeek(5))
	assert.False(t, IsTestWeek(6))
	assert.True(t, IsTestWeek(11))
	assert.True(t, IsTestWeek(17))
}

func TestTaperWeeks_CurvesByLength(t *testing.T) {
	three := TaperWeeks(80, 15, 3)
	require.Len(t, three, 3)
	assert.Equal(t, 60.0, three[0].TargetKm)
	assert.Equal(t, 44.0, three[1].TargetKm)
	assert.Equal(t, 28.0, three[2].TargetKm)

	one := TaperWeeks(40, 15, 1)
	require.Len(t, one, 1)
	assert.Equal(t, 22.0, one[0].TargetKm)
}

func TestTaperWeeks_FlooredAtMinimum(t *testing.T) {
	configs := TaperWeeks(24, 15, 3)
	for _, cfg := range configs {
		assert.GreaterOrEqual(t, cfg.TargetKm, 15.0)
	}
}

func TestPeakKm(t *testing.T) {
	configs := BuildWeeks(30, 50, ProfileFor(domain.LevelIntermediate), 12)
	peak := PeakKm(configs)
	assert.Greater(t, peak, 30.0)
	assert.LessOrEqual(t, peak, 50.0)
}
