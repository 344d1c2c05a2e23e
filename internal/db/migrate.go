package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Statements are idempotent; ALTER
// TABLE additions tolerate re-runs via the duplicate-column check.
func Migrate(database *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := database.Exec(stmt); err != nil {
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS plans (
		id                TEXT PRIMARY KEY,
		start_date        TEXT NOT NULL,
		race_date         TEXT NOT NULL,
		race_distance_km  REAL NOT NULL,
		level             TEXT NOT NULL
		                  CHECK(level IN ('beginner','intermediate','advanced')),
		training_days     TEXT NOT NULL,
		long_run_day      INTEGER NOT NULL,
		current_weekly_km REAL NOT NULL,
		perf_distance_km  REAL,
		perf_time_sec     INTEGER,
		six_min_test_km   REAL NOT NULL DEFAULT 0,
		easy_low          REAL NOT NULL,
		easy_high         REAL NOT NULL,
		marathon          REAL NOT NULL,
		threshold         REAL NOT NULL,
		interval          REAL NOT NULL,
		repetition        REAL NOT NULL,
		race              REAL NOT NULL,
		warnings          TEXT NOT NULL DEFAULT '[]',
		created_at        TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS weeks (
		plan_id    TEXT NOT NULL REFERENCES plans(id) ON DELETE CASCADE,
		number     INTEGER NOT NULL CHECK(number > 0),
		phase_name TEXT NOT NULL,
		phase_type TEXT NOT NULL
		           CHECK(phase_type IN ('base','quality','peak','taper')),
		start_date TEXT NOT NULL,
		total_km   REAL NOT NULL,
		tss        INTEGER NOT NULL DEFAULT 0,
		PRIMARY KEY (plan_id, number)
	)`,

	`CREATE TABLE IF NOT EXISTS sessions (
		id          TEXT PRIMARY KEY,
		plan_id     TEXT NOT NULL REFERENCES plans(id) ON DELETE CASCADE,
		week_number INTEGER NOT NULL,
		type        TEXT NOT NULL,
		category    TEXT NOT NULL
		            CHECK(category IN ('vma','threshold','test','long_run','easy','race')),
		intensity   INTEGER NOT NULL DEFAULT 1,
		day         INTEGER NOT NULL DEFAULT -1,
		date        TEXT,
		distance_km REAL NOT NULL,
		is_test     INTEGER NOT NULL DEFAULT 0,
		structure   TEXT NOT NULL DEFAULT '[]',
		descriptor  TEXT
	)`,

	`CREATE INDEX IF NOT EXISTS idx_weeks_plan ON weeks(plan_id)`,
	`CREATE INDEX IF NOT EXISTS idx_sessions_plan_week ON sessions(plan_id, week_number)`,
}
