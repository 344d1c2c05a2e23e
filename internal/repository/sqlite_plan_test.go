package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imtheyoyo/plan-course/internal/domain"
	"github.com/imtheyoyo/plan-course/internal/repository"
	"github.com/imtheyoyo/plan-course/internal/testutil"
)

func TestPlanRepo_SaveAndGet(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLitePlanRepo(database)
	ctx := context.Background()
	plan := testutil.NewTrainingPlan()

	require.NoError(t, repo.Save(ctx, plan))

	got, err := repo.GetByID(ctx, plan.ID)
	require.NoError(t, err)

	assert.Equal(t, plan.ID, got.ID)
	assert.Equal(t, plan.Request.Level, got.Request.Level)
	assert.Equal(t, plan.Request.TrainingDays, got.Request.TrainingDays)
	require.NotNil(t, got.Request.Performance)
	assert.Equal(t, plan.Request.Performance.Duration, got.Request.Performance.Duration)
	assert.Equal(t, plan.Paces, got.Paces)
	assert.True(t, got.CreatedAt.Equal(plan.CreatedAt))

	require.Len(t, got.Weeks, 2)
	week := got.Weeks[0]
	assert.Equal(t, "Base", week.PhaseName)
	assert.Equal(t, 110, week.TSS)
	require.Len(t, week.Sessions, 3)

	tempo := week.SessionOn(domain.Tuesday)
	require.NotNil(t, tempo)
	assert.Equal(t, "Tempo run", tempo.Type)
	require.NotNil(t, tempo.Descriptor)
	assert.Equal(t, domain.ZoneThreshold, tempo.Descriptor.Zone)
	require.Len(t, tempo.Structure, 2)
	assert.True(t, tempo.FullDate.Equal(week.StartDate.AddDate(0, 0, 1)))
}

func TestPlanRepo_SaveReplacesExistingID(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLitePlanRepo(database)
	ctx := context.Background()
	plan := testutil.NewTrainingPlan()

	require.NoError(t, repo.Save(ctx, plan))
	plan.Weeks = plan.Weeks[:1]
	require.NoError(t, repo.Save(ctx, plan))

	got, err := repo.GetByID(ctx, plan.ID)
	require.NoError(t, err)
	assert.Len(t, got.Weeks, 1)
}

func TestPlanRepo_GetMissing(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLitePlanRepo(database)

	_, err := repo.GetByID(context.Background(), "nope")

	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestPlanRepo_LatestAndList(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLitePlanRepo(database)
	ctx := context.Background()

	older := testutil.NewTrainingPlan()
	older.CreatedAt = time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC)
	newer := testutil.NewTrainingPlan()
	newer.CreatedAt = time.Date(2026, 1, 3, 8, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Save(ctx, older))
	require.NoError(t, repo.Save(ctx, newer))

	latest, err := repo.Latest(ctx)
	require.NoError(t, err)
	assert.Equal(t, newer.ID, latest.ID)

	summaries, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, summaries, 2)
	assert.Equal(t, newer.ID, summaries[0].ID)
	assert.Equal(t, 2, summaries[0].WeekCount)
	assert.Equal(t, domain.LevelIntermediate, summaries[0].Level)
}

func TestPlanRepo_LatestEmpty(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLitePlanRepo(database)

	_, err := repo.Latest(context.Background())

	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestPlanRepo_SaveWeekPersistsMove(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLitePlanRepo(database)
	ctx := context.Background()
	plan := testutil.NewTrainingPlan()
	require.NoError(t, repo.Save(ctx, plan))

	week := plan.Weeks[0]
	moved := week.SessionOn(domain.Thursday)
	require.NoError(t, week.MoveSession(moved.ID, domain.Friday))
	require.NoError(t, repo.SaveWeek(ctx, plan.ID, week))

	got, err := repo.GetByID(ctx, plan.ID)
	require.NoError(t, err)
	reloaded := got.Weeks[0].SessionByID(moved.ID)
	require.NotNil(t, reloaded)
	assert.Equal(t, domain.Friday, reloaded.Day)
	assert.True(t, reloaded.FullDate.Equal(week.StartDate.AddDate(0, 0, int(domain.Friday))))
}

func TestPlanRepo_SaveWeekUnknownWeek(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLitePlanRepo(database)
	ctx := context.Background()
	plan := testutil.NewTrainingPlan()
	require.NoError(t, repo.Save(ctx, plan))

	err := repo.SaveWeek(ctx, plan.ID, &domain.Week{Number: 99})

	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestPlanRepo_Delete(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLitePlanRepo(database)
	ctx := context.Background()
	plan := testutil.NewTrainingPlan()
	require.NoError(t, repo.Save(ctx, plan))

	require.NoError(t, repo.Delete(ctx, plan.ID))

	_, err := repo.GetByID(ctx, plan.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, plan.ID), repository.ErrNotFound)

	// Cascade removed the child rows too.
	var sessions int
	require.NoError(t, database.QueryRow(`SELECT COUNT(*) FROM sessions`).Scan(&sessions))
	assert.Zero(t, sessions)
}

func TestPlanRepo_SaveRollsBackOnFailure(t *testing.T) {
	database := testutil.NewTestDB(t)
	injected := errors.New("disk full")
	// Exec 1 clears, 2 inserts the plan, 3 the first week; fail on the
	// first session insert.
	uow := &testutil.FailOnNthExecUoW{DB: database, FailOn: 4, Err: injected}
	repo := repository.NewSQLitePlanRepoWithUoW(database, uow)
	plan := testutil.NewTrainingPlan()

	err := repo.Save(context.Background(), plan)
	require.Error(t, err)
	assert.ErrorIs(t, err, injected)

	var plans int
	require.NoError(t, database.QueryRow(`SELECT COUNT(*) FROM plans`).Scan(&plans))
	assert.Zero(t, plans, "plan row survived a failed save")
}
