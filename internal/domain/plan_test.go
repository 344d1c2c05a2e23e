package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRequest() PlanRequest {
	return PlanRequest{
		StartDate:       time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC),
		RaceDate:        time.Date(2026, 4, 25, 0, 0, 0, 0, time.UTC),
		RaceDistanceKm:  10,
		Level:           LevelIntermediate,
		TrainingDays:    []Weekday{Tuesday, Thursday, Saturday, Sunday},
		LongRunDay:      Sunday,
		CurrentWeeklyKm: 30,
		SixMinTestKm:    1.55,
	}
}

func testWeek() *Week {
	start := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	return &Week{
		Number:    1,
		PhaseName: "Base",
		PhaseType: PhaseBase,
		StartDate: start,
		Sessions: []*Session{
			{ID: "a", Type: "Tempo run", Category: CategoryThreshold, Day: Tuesday, FullDate: start.AddDate(0, 0, 1)},
			{ID: "b", Type: "Easy run", Category: CategoryEasy, Day: Thursday, FullDate: start.AddDate(0, 0, 3)},
			{ID: "c", Type: "Long run", Category: CategoryLongRun, Day: Sunday, FullDate: start.AddDate(0, 0, 6)},
		},
	}
}

func TestPlanRequestValidate(t *testing.T) {
	require.NoError(t, validRequest().Validate())

	cases := []struct {
		name   string
		mutate func(*PlanRequest)
	}{
		{"unknown level", func(r *PlanRequest) { r.Level = "elite" }},
		{"too few days", func(r *PlanRequest) { r.TrainingDays = []Weekday{Tuesday, Thursday} }},
		{"invalid day", func(r *PlanRequest) { r.TrainingDays = []Weekday{Tuesday, Thursday, Weekday(9)} }},
		{"duplicate day", func(r *PlanRequest) { r.TrainingDays = []Weekday{Tuesday, Tuesday, Sunday} }},
		{"long run off schedule", func(r *PlanRequest) { r.LongRunDay = Monday }},
		{"zero mileage", func(r *PlanRequest) { r.CurrentWeeklyKm = 0 }},
		{"zero distance", func(r *PlanRequest) { r.RaceDistanceKm = 0 }},
		{"race before start", func(r *PlanRequest) { r.RaceDate = r.StartDate.AddDate(0, 0, -1) }},
		{"no fitness input", func(r *PlanRequest) { r.SixMinTestKm = 0 }},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			req := validRequest()
			c.mutate(&req)
			assert.ErrorIs(t, req.Validate(), ErrInvalidRequest)
		})
	}
}

func TestTotalWeeks(t *testing.T) {
	req := validRequest()
	// 110 days out, race week included.
	assert.Equal(t, 16, req.TotalWeeks())

	req.RaceDate = req.StartDate.AddDate(0, 0, 6)
	assert.Equal(t, 1, req.TotalWeeks())

	req.RaceDate = req.StartDate.AddDate(0, 0, 7)
	assert.Equal(t, 2, req.TotalWeeks())
}

func TestTotalWeeksMidWeekStart(t *testing.T) {
	req := validRequest()
	// Wednesday start: the count runs from the Monday of the start week,
	// so the race date always lands inside the last week.
	req.StartDate = time.Date(2026, 1, 7, 0, 0, 0, 0, time.UTC)
	req.RaceDate = time.Date(2026, 4, 21, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 16, req.TotalWeeks())

	// Race on the Monday after a Wednesday start opens a second week row.
	req.RaceDate = req.StartDate.AddDate(0, 0, 5)
	assert.Equal(t, 2, req.TotalWeeks())
}

func TestMoveSession(t *testing.T) {
	w := testWeek()

	require.NoError(t, w.MoveSession("b", Friday))

	moved := w.SessionByID("b")
	assert.Equal(t, Friday, moved.Day)
	assert.Equal(t, w.StartDate.AddDate(0, 0, 4), moved.FullDate)
	assert.Nil(t, w.SessionOn(Thursday))

	// Sessions stay sorted by day after the move.
	days := make([]Weekday, 0, len(w.Sessions))
	for _, s := range w.Sessions {
		days = append(days, s.Day)
	}
	assert.Equal(t, []Weekday{Tuesday, Friday, Sunday}, days)
}

func TestMoveSessionRejectsOccupiedDay(t *testing.T) {
	w := testWeek()
	assert.Error(t, w.MoveSession("a", Sunday))
	// Moving onto its own day is a no-op, not a conflict.
	assert.NoError(t, w.MoveSession("a", Tuesday))
}

func TestMoveSessionRejectsInvalidInput(t *testing.T) {
	w := testWeek()
	assert.Error(t, w.MoveSession("a", Unassigned))
	assert.Error(t, w.MoveSession("ghost", Friday))
}

func TestSwapSessions(t *testing.T) {
	w := testWeek()

	require.NoError(t, w.SwapSessions("a", "c"))

	assert.Equal(t, Sunday, w.SessionByID("a").Day)
	assert.Equal(t, Tuesday, w.SessionByID("c").Day)
	assert.Equal(t, w.StartDate.AddDate(0, 0, 6), w.SessionByID("a").FullDate)
	assert.Equal(t, w.StartDate.AddDate(0, 0, 1), w.SessionByID("c").FullDate)
	assert.Equal(t, "c", w.Sessions[0].ID)

	assert.Error(t, w.SwapSessions("a", "ghost"))
}

func TestSortByDayPutsUnplacedLast(t *testing.T) {
	w := testWeek()
	w.Sessions[0].Day = Unassigned
	w.SortByDay()
	assert.Equal(t, "a", w.Sessions[len(w.Sessions)-1].ID)
}

func TestWeekdayString(t *testing.T) {
	assert.Equal(t, "Monday", Monday.String())
	assert.Equal(t, "Sunday", Sunday.String())
	assert.Equal(t, "Unassigned", Unassigned.String())
	assert.False(t, Unassigned.Valid())
	assert.True(t, Saturday.Valid())
}

func TestPaceSetForZone(t *testing.T) {
	p := PaceSet{EasyLow: 360, Threshold: 276, Race: 248}
	assert.Equal(t, 360.0, p.ForZone(ZoneEasyLow))
	assert.Equal(t, 276.0, p.ForZone(ZoneThreshold))
	assert.Equal(t, 248.0, p.ForZone(ZoneRace))
	assert.Equal(t, 0.0, p.ForZone(Zone("tempo")))
}
