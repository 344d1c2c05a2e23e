package exchange

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imtheyoyo/plan-course/internal/domain"
	"github.com/imtheyoyo/plan-course/internal/service"
)

func generatedPlan(t *testing.T) *domain.TrainingPlan {
	t.Helper()
	svc := service.NewPlanService(domain.DefaultConfig())
	plan, err := svc.Generate(context.Background(), domain.PlanRequest{
		StartDate:       time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC),
		RaceDate:        time.Date(2026, 4, 25, 0, 0, 0, 0, time.UTC),
		RaceDistanceKm:  10,
		Level:           domain.LevelIntermediate,
		TrainingDays:    []domain.Weekday{domain.Tuesday, domain.Thursday, domain.Saturday, domain.Sunday},
		LongRunDay:      domain.Sunday,
		CurrentWeeklyKm: 30,
		Performance:     &domain.Performance{DistanceKm: 10, Duration: 41*time.Minute + 21*time.Second},
	})
	require.NoError(t, err)
	return plan
}

func TestExportImport_RoundTrip(t *testing.T) {
	plan := generatedPlan(t)

	doc := Export(plan)
	require.Empty(t, ValidateDocument(doc))

	back, err := Import(doc)
	require.NoError(t, err)

	require.Len(t, back.Weeks, len(plan.Weeks))
	for i, week := range plan.Weeks {
		got := back.Weeks[i]
		assert.True(t, got.StartDate.Equal(week.StartDate), "week %d start date", week.Number)
		require.Len(t, got.Sessions, len(week.Sessions))
		for j, s := range week.Sessions {
			assert.Equal(t, s.Day, got.Sessions[j].Day)
			assert.Equal(t, s.DistanceKm, got.Sessions[j].DistanceKm)
			assert.Equal(t, s.Type, got.Sessions[j].Type)
		}
	}
	assert.Equal(t, plan.Paces, back.Paces)
	assert.Equal(t, plan.Request.RaceDistanceKm, back.Request.RaceDistanceKm)
	assert.Equal(t, plan.Request.TrainingDays, back.Request.TrainingDays)
}

func TestSaveLoadDocument(t *testing.T) {
	plan := generatedPlan(t)
	doc := Export(plan)
	path := filepath.Join(t.TempDir(), "plan.json")

	require.NoError(t, SaveDocument(path, doc))

	loaded, err := LoadDocument(path)
	require.NoError(t, err)
	assert.Equal(t, doc.Version, loaded.Version)
	require.Len(t, loaded.Weeks, len(doc.Weeks))
	assert.Equal(t, doc.Weeks[0].Sessions, loaded.Weeks[0].Sessions)
}

func TestImport_RebuildsFullDates(t *testing.T) {
	plan := generatedPlan(t)
	doc := Export(plan)

	back, err := Import(doc)
	require.NoError(t, err)

	for _, week := range back.Weeks {
		for _, s := range week.Sessions {
			if s.Day.Valid() {
				assert.True(t, s.FullDate.Equal(week.StartDate.AddDate(0, 0, int(s.Day))))
			}
		}
	}
}
