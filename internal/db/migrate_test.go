package db_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imtheyoyo/plan-course/internal/db"
)

func TestMigrate_CreatesSchema(t *testing.T) {
	database, err := db.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	for _, table := range []string{"plans", "weeks", "sessions"} {
		var name string
		err := database.QueryRow(
			`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table).Scan(&name)
		require.NoError(t, err, "table %s missing", table)
		assert.Equal(t, table, name)
	}
}

func TestMigrate_Idempotent(t *testing.T) {
	database, err := db.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	assert.NoError(t, db.Migrate(database))
	assert.NoError(t, db.Migrate(database))
}

func TestMigrate_EnforcesCategoryCheck(t *testing.T) {
	database, err := db.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	_, err = database.Exec(`INSERT INTO plans (id, start_date, race_date, race_distance_km, level,
		training_days, long_run_day, current_weekly_km, six_min_test_km,
		easy_low, easy_high, marathon, threshold, interval, repetition, race, created_at)
		VALUES ('p1','2026-01-05','2026-04-25',10,'pro','1,3,5,6',6,30,0,360,320,276,255,236,223,248,'2026-01-02T12:00:00Z')`)

	require.Error(t, err, "unknown level must be rejected by CHECK")
}
