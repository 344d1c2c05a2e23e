package scheduler

import (
	"testing"

	"github.com/imtheyoyo/plan-course/internal/domain"
	"github.com/stretchr/testify/assert"
)

func placementRequest(days ...domain.Weekday) domain.PlanRequest {
	return domain.PlanRequest{
		Level:        domain.LevelIntermediate,
		TrainingDays: days,
		LongRunDay:   days[len(days)-1],
	}
}

func placedSession(day domain.Weekday, cat domain.SessionCategory, intensity int) *domain.Session {
	return &domain.Session{
		ID: string(rune('a' + int(day))), Type: string(cat),
		Category: cat, Intensity: intensity, Day: day,
	}
}

func TestSimulate_EmptyWeekIsFresh(t *testing.T) {
	state := Simulate(nil, placementRequest(domain.Tuesday, domain.Thursday, domain.Sunday))
	for day := domain.Monday; day <= domain.Sunday; day++ {
		assert.Zero(t, state[day])
	}
}

func TestSimulate_SessionsAccumulateByIntensity(t *testing.T) {
	req := placementRequest(domain.Monday, domain.Tuesday, domain.Sunday)
	sessions := []*domain.Session{
		placedSession(domain.Monday, domain.CategoryVMA, 4),
		placedSession(domain.Tuesday, domain.CategoryThreshold, 3),
	}

	state := Simulate(sessions, req)

	assert.Equal(t, 45.0, state[domain.Monday], "50 points minus daily decay")
	assert.Greater(t, state[domain.Tuesday], state[domain.Monday])
}

func TestSimulate_TiredDaysAmplifyLoad(t *testing.T) {
	req := placementRequest(domain.Monday, domain.Tuesday, domain.Wednesday, domain.Sunday)
	backToBack := []*domain.Session{
		placedSession(domain.Monday, domain.CategoryVMA, 4),
		placedSession(domain.Tuesday, domain.CategoryVMA, 4),
		placedSession(domain.Wednesday, domain.CategoryThreshold, 3),
	}

	state := Simulate(backToBack, req)

	// Monday 45, Tuesday 45+50-5=90 (> tired), so Wednesday's 35 points
	// are amplified 20%.
	assert.Equal(t, 90.0, state[domain.Tuesday])
	assert.Equal(t, 90+35*1.2-5, state[domain.Wednesday])
}

func TestSimulate_RestDaysRecover(t *testing.T) {
	req := placementRequest(domain.Monday, domain.Wednesday, domain.Sunday)
	sessions := []*domain.Session{
		placedSession(domain.Monday, domain.CategoryVMA, 4),
	}

	state := Simulate(sessions, req)

	// Tuesday is outside the available days: bigger recovery than the
	// available-but-unused Wednesday would get.
	assert.Equal(t, 45.0-offDayRecovery-dailyDecay, state[domain.Tuesday])
	assert.Less(t, state[domain.Tuesday], state[domain.Monday])
}

func TestSimulate_NeverNegative(t *testing.T) {
	state := Simulate(nil, placementRequest(domain.Tuesday, domain.Thursday, domain.Sunday))
	for day := domain.Monday; day <= domain.Sunday; day++ {
		assert.GreaterOrEqual(t, state[day], 0.0)
	}
}

func TestSimulate_IgnoresUnplacedSessions(t *testing.T) {
	req := placementRequest(domain.Tuesday, domain.Thursday, domain.Sunday)
	sessions := []*domain.Session{
		{ID: "x", Category: domain.CategoryVMA, Intensity: 4, Day: domain.Unassigned},
	}
	state := Simulate(sessions, req)
	for day := domain.Monday; day <= domain.Sunday; day++ {
		assert.Zero(t, state[day])
	}
}
