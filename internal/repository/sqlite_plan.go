package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/imtheyoyo/plan-course/internal/db"
	"github.com/imtheyoyo/plan-course/internal/domain"
)

const dateLayout = "2006-01-02"

// SQLitePlanRepo implements PlanRepo using a SQLite database.
type SQLitePlanRepo struct {
	database *sql.DB
	uow      db.UnitOfWork
}

// NewSQLitePlanRepo creates a new SQLitePlanRepo.
func NewSQLitePlanRepo(database *sql.DB) *SQLitePlanRepo {
	return &SQLitePlanRepo{database: database, uow: db.NewSQLiteUnitOfWork(database)}
}

// NewSQLitePlanRepoWithUoW creates a repo with an injected unit of work,
// used by rollback tests to fail mid-transaction.
func NewSQLitePlanRepoWithUoW(database *sql.DB, uow db.UnitOfWork) *SQLitePlanRepo {
	return &SQLitePlanRepo{database: database, uow: uow}
}

func (r *SQLitePlanRepo) Save(ctx context.Context, plan *domain.TrainingPlan) error {
	return r.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		// Re-saving an existing id replaces the whole plan; the weeks and
		// sessions cascade away with the old row.
		if _, err := tx.ExecContext(ctx, `DELETE FROM plans WHERE id = ?`, plan.ID); err != nil {
			return fmt.Errorf("clearing existing plan: %w", err)
		}
		if err := insertPlan(ctx, tx, plan); err != nil {
			return err
		}
		for _, week := range plan.Weeks {
			if err := insertWeek(ctx, tx, plan.ID, week); err != nil {
				return err
			}
			for _, s := range week.Sessions {
				if err := insertSession(ctx, tx, plan.ID, week.Number, s); err != nil {
					return err
				}
			}
		}
		return nil
	})
}

func insertPlan(ctx context.Context, tx db.DBTX, plan *domain.TrainingPlan) error {
	warnings, err := json.Marshal(plan.Warnings)
	if err != nil {
		return fmt.Errorf("encoding warnings: %w", err)
	}

	var perfDistance, perfTimeSec any
	if p := plan.Request.Performance; p != nil {
		perfDistance = p.DistanceKm
		perfTimeSec = int(p.Duration / time.Second)
	}

	query := `INSERT INTO plans (
		id, start_date, race_date, race_distance_km, level, training_days,
		long_run_day, current_weekly_km, perf_distance_km, perf_time_sec,
		six_min_test_km, easy_low, easy_high, marathon, threshold, interval,
		repetition, race, warnings, created_at
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = tx.ExecContext(ctx, query,
		plan.ID,
		plan.Request.StartDate.Format(dateLayout),
		plan.Request.RaceDate.Format(dateLayout),
		plan.Request.RaceDistanceKm,
		string(plan.Request.Level),
		daysToCSV(plan.Request.TrainingDays),
		int(plan.Request.LongRunDay),
		plan.Request.CurrentWeeklyKm,
		perfDistance,
		perfTimeSec,
		plan.Request.SixMinTestKm,
		plan.Paces.EasyLow,
		plan.Paces.EasyHigh,
		plan.Paces.Marathon,
		plan.Paces.Threshold,
		plan.Paces.Interval,
		plan.Paces.Repetition,
		plan.Paces.Race,
		string(warnings),
		plan.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting plan: %w", err)
	}
	return nil
}

func insertWeek(ctx context.Context, tx db.DBTX, planID string, week *domain.Week) error {
	query := `INSERT INTO weeks (plan_id, number, phase_name, phase_type, start_date, total_km, tss)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := tx.ExecContext(ctx, query,
		planID,
		week.Number,
		week.PhaseName,
		string(week.PhaseType),
		week.StartDate.Format(dateLayout),
		week.TotalKm,
		week.TSS,
	)
	if err != nil {
		return fmt.Errorf("inserting week %d: %w", week.Number, err)
	}
	return nil
}

func insertSession(ctx context.Context, tx db.DBTX, planID string, weekNumber int, s *domain.Session) error {
	structure, err := json.Marshal(s.Structure)
	if err != nil {
		return fmt.Errorf("encoding session structure: %w", err)
	}
	var descriptor any
	if s.Descriptor != nil {
		data, err := json.Marshal(s.Descriptor)
		if err != nil {
			return fmt.Errorf("encoding session descriptor: %w", err)
		}
		descriptor = string(data)
	}
	var date any
	if !s.FullDate.IsZero() {
		date = s.FullDate.Format(dateLayout)
	}

	query := `INSERT INTO sessions (id, plan_id, week_number, type, category, intensity, day, date, distance_km, is_test, structure, descriptor)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = tx.ExecContext(ctx, query,
		s.ID,
		planID,
		weekNumber,
		s.Type,
		string(s.Category),
		s.Intensity,
		int(s.Day),
		date,
		s.DistanceKm,
		boolToInt(s.IsTest),
		string(structure),
		descriptor,
	)
	if err != nil {
		return fmt.Errorf("inserting session %s: %w", s.ID, err)
	}
	return nil
}

func (r *SQLitePlanRepo) GetByID(ctx context.Context, id string) (*domain.TrainingPlan, error) {
	plan, err := r.scanPlan(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := r.loadWeeks(ctx, plan); err != nil {
		return nil, err
	}
	return plan, nil
}

func (r *SQLitePlanRepo) Latest(ctx context.Context) (*domain.TrainingPlan, error) {
	var id string
	err := r.database.QueryRowContext(ctx,
		`SELECT id FROM plans ORDER BY created_at DESC, id DESC LIMIT 1`).Scan(&id)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("finding latest plan: %w", err)
	}
	return r.GetByID(ctx, id)
}

func (r *SQLitePlanRepo) List(ctx context.Context) ([]PlanSummary, error) {
	query := `SELECT p.id, p.race_date, p.race_distance_km, p.level, p.created_at, COUNT(w.number)
		FROM plans p
		LEFT JOIN weeks w ON w.plan_id = p.id
		GROUP BY p.id
		ORDER BY p.created_at DESC`
	rows, err := r.database.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing plans: %w", err)
	}
	defer rows.Close()

	var summaries []PlanSummary
	for rows.Next() {
		var s PlanSummary
		var raceDateStr, levelStr, createdAtStr string
		if err := rows.Scan(&s.ID, &raceDateStr, &s.RaceDistanceKm, &levelStr, &createdAtStr, &s.WeekCount); err != nil {
			return nil, fmt.Errorf("scanning plan summary: %w", err)
		}
		s.Level = domain.Level(levelStr)
		if s.RaceDate, err = time.Parse(dateLayout, raceDateStr); err != nil {
			return nil, fmt.Errorf("parsing race_date: %w", err)
		}
		if s.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr); err != nil {
			return nil, fmt.Errorf("parsing created_at: %w", err)
		}
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating plans: %w", err)
	}
	return summaries, nil
}

// SaveWeek persists the placement state of one week after a move or swap:
// session days and dates plus the week totals, in one transaction.
func (r *SQLitePlanRepo) SaveWeek(ctx context.Context, planID string, week *domain.Week) error {
	return r.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		res, err := tx.ExecContext(ctx,
			`UPDATE weeks SET total_km = ?, tss = ? WHERE plan_id = ? AND number = ?`,
			week.TotalKm, week.TSS, planID, week.Number)
		if err != nil {
			return fmt.Errorf("updating week %d: %w", week.Number, err)
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return fmt.Errorf("week %d: %w", week.Number, ErrNotFound)
		}
		for _, s := range week.Sessions {
			var date any
			if !s.FullDate.IsZero() {
				date = s.FullDate.Format(dateLayout)
			}
			if _, err := tx.ExecContext(ctx,
				`UPDATE sessions SET day = ?, date = ? WHERE id = ? AND plan_id = ?`,
				int(s.Day), date, s.ID, planID); err != nil {
				return fmt.Errorf("updating session %s: %w", s.ID, err)
			}
		}
		return nil
	})
}

func (r *SQLitePlanRepo) Delete(ctx context.Context, id string) error {
	res, err := r.database.ExecContext(ctx, `DELETE FROM plans WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting plan: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *SQLitePlanRepo) scanPlan(ctx context.Context, id string) (*domain.TrainingPlan, error) {
	query := `SELECT id, start_date, race_date, race_distance_km, level, training_days,
		long_run_day, current_weekly_km, perf_distance_km, perf_time_sec, six_min_test_km,
		easy_low, easy_high, marathon, threshold, interval, repetition, race,
		warnings, created_at
		FROM plans WHERE id = ?`
	row := r.database.QueryRowContext(ctx, query, id)

	var plan domain.TrainingPlan
	var startStr, raceStr, levelStr, daysStr, warningsStr, createdStr string
	var longRunDay int
	var perfDistance sql.NullFloat64
	var perfTimeSec sql.NullInt64

	err := row.Scan(
		&plan.ID, &startStr, &raceStr, &plan.Request.RaceDistanceKm, &levelStr, &daysStr,
		&longRunDay, &plan.Request.CurrentWeeklyKm, &perfDistance, &perfTimeSec,
		&plan.Request.SixMinTestKm,
		&plan.Paces.EasyLow, &plan.Paces.EasyHigh, &plan.Paces.Marathon,
		&plan.Paces.Threshold, &plan.Paces.Interval, &plan.Paces.Repetition, &plan.Paces.Race,
		&warningsStr, &createdStr,
	)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scanning plan: %w", err)
	}

	plan.Request.Level = domain.Level(levelStr)
	plan.Request.TrainingDays = daysFromCSV(daysStr)
	plan.Request.LongRunDay = domain.Weekday(longRunDay)
	if perfDistance.Valid {
		plan.Request.Performance = &domain.Performance{
			DistanceKm: perfDistance.Float64,
			Duration:   time.Duration(perfTimeSec.Int64) * time.Second,
		}
	}

	if plan.Request.StartDate, err = time.Parse(dateLayout, startStr); err != nil {
		return nil, fmt.Errorf("parsing start_date: %w", err)
	}
	if plan.Request.RaceDate, err = time.Parse(dateLayout, raceStr); err != nil {
		return nil, fmt.Errorf("parsing race_date: %w", err)
	}
	if plan.CreatedAt, err = time.Parse(time.RFC3339, createdStr); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	if err := json.Unmarshal([]byte(warningsStr), &plan.Warnings); err != nil {
		return nil, fmt.Errorf("decoding warnings: %w", err)
	}

	return &plan, nil
}

func (r *SQLitePlanRepo) loadWeeks(ctx context.Context, plan *domain.TrainingPlan) error {
	rows, err := r.database.QueryContext(ctx,
		`SELECT number, phase_name, phase_type, start_date, total_km, tss
		 FROM weeks WHERE plan_id = ? ORDER BY number`, plan.ID)
	if err != nil {
		return fmt.Errorf("listing weeks: %w", err)
	}
	defer rows.Close()

	byNumber := map[int]*domain.Week{}
	for rows.Next() {
		var w domain.Week
		var phaseTypeStr, startStr string
		if err := rows.Scan(&w.Number, &w.PhaseName, &phaseTypeStr, &startStr, &w.TotalKm, &w.TSS); err != nil {
			return fmt.Errorf("scanning week: %w", err)
		}
		w.PhaseType = domain.PhaseType(phaseTypeStr)
		if w.StartDate, err = time.Parse(dateLayout, startStr); err != nil {
			return fmt.Errorf("parsing week start_date: %w", err)
		}
		plan.Weeks = append(plan.Weeks, &w)
		byNumber[w.Number] = &w
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating weeks: %w", err)
	}

	return r.loadSessions(ctx, plan.ID, byNumber)
}

func (r *SQLitePlanRepo) loadSessions(ctx context.Context, planID string, weeks map[int]*domain.Week) error {
	rows, err := r.database.QueryContext(ctx,
		`SELECT id, week_number, type, category, intensity, day, date, distance_km, is_test, structure, descriptor
		 FROM sessions WHERE plan_id = ? ORDER BY week_number, day`, planID)
	if err != nil {
		return fmt.Errorf("listing sessions: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var s domain.Session
		var weekNumber, day, isTest int
		var categoryStr, structureStr string
		var dateStr, descriptorStr sql.NullString

		if err := rows.Scan(&s.ID, &weekNumber, &s.Type, &categoryStr, &s.Intensity,
			&day, &dateStr, &s.DistanceKm, &isTest, &structureStr, &descriptorStr); err != nil {
			return fmt.Errorf("scanning session: %w", err)
		}
		s.Category = domain.SessionCategory(categoryStr)
		s.Day = domain.Weekday(day)
		s.IsTest = intToBool(isTest)
		if dateStr.Valid && dateStr.String != "" {
			if s.FullDate, err = time.Parse(dateLayout, dateStr.String); err != nil {
				return fmt.Errorf("parsing session date: %w", err)
			}
		}
		if err := json.Unmarshal([]byte(structureStr), &s.Structure); err != nil {
			return fmt.Errorf("decoding session structure: %w", err)
		}
		if descriptorStr.Valid && descriptorStr.String != "" {
			s.Descriptor = &domain.WorkoutDescriptor{}
			if err := json.Unmarshal([]byte(descriptorStr.String), s.Descriptor); err != nil {
				return fmt.Errorf("decoding session descriptor: %w", err)
			}
		}

		week, ok := weeks[weekNumber]
		if !ok {
			return fmt.Errorf("session %s references missing week %d", s.ID, weekNumber)
		}
		week.Sessions = append(week.Sessions, &s)
	}
	return rows.Err()
}
