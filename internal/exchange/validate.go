package exchange

import (
	"fmt"
	"time"

	"github.com/imtheyoyo/plan-course/internal/domain"
)

var validPhaseTypes = map[string]bool{"base": true, "quality": true, "peak": true, "taper": true}

// ValidateDocument checks a plan document for structural errors before
// conversion. Returns every validation error found, not just the first.
func ValidateDocument(doc *PlanDocument) []error {
	var errs []error

	if doc.Version != DocumentVersion {
		errs = append(errs, fmt.Errorf("unsupported document version %d (expected %d)", doc.Version, DocumentVersion))
	}

	errs = append(errs, validateRequest(&doc.Request)...)

	if len(doc.Weeks) == 0 {
		errs = append(errs, fmt.Errorf("weeks: at least one week is required"))
	}
	for i, w := range doc.Weeks {
		errs = append(errs, validateWeek(i, &w)...)
	}

	return errs
}

func validateRequest(r *RequestExport) []error {
	var errs []error

	if _, err := time.Parse(dateLayout, r.StartDate); err != nil {
		errs = append(errs, fmt.Errorf("request.start_date: invalid date %q (expected YYYY-MM-DD)", r.StartDate))
	}
	if _, err := time.Parse(dateLayout, r.RaceDate); err != nil {
		errs = append(errs, fmt.Errorf("request.race_date: invalid date %q (expected YYYY-MM-DD)", r.RaceDate))
	}
	if r.RaceDistanceKm <= 0 {
		errs = append(errs, fmt.Errorf("request.race_distance_km must be positive"))
	}
	if !domain.ValidLevels[r.Level] {
		errs = append(errs, fmt.Errorf("request.level: invalid value %q", r.Level))
	}
	if len(r.TrainingDays) < 3 {
		errs = append(errs, fmt.Errorf("request.training_days: at least 3 required"))
	}
	for _, d := range r.TrainingDays {
		if !domain.Weekday(d).Valid() {
			errs = append(errs, fmt.Errorf("request.training_days: invalid day index %d", d))
		}
	}
	if !domain.Weekday(r.LongRunDay).Valid() {
		errs = append(errs, fmt.Errorf("request.long_run_day: invalid day index %d", r.LongRunDay))
	}

	return errs
}

func validateWeek(i int, w *WeekExport) []error {
	var errs []error

	if w.Number <= 0 {
		errs = append(errs, fmt.Errorf("weeks[%d].number must be positive", i))
	}
	if _, err := time.Parse(dateLayout, w.StartDate); err != nil {
		errs = append(errs, fmt.Errorf("weeks[%d].start_date: invalid date %q (expected YYYY-MM-DD)", i, w.StartDate))
	}
	if w.PhaseType != "" && !validPhaseTypes[w.PhaseType] {
		errs = append(errs, fmt.Errorf("weeks[%d].phase_type: invalid value %q", i, w.PhaseType))
	}

	seen := map[int]bool{}
	for j, s := range w.Sessions {
		if s.Type == "" {
			errs = append(errs, fmt.Errorf("weeks[%d].sessions[%d].type is required", i, j))
		}
		if s.DistanceKm < 0 {
			errs = append(errs, fmt.Errorf("weeks[%d].sessions[%d].distance_km must not be negative", i, j))
		}
		day := domain.Weekday(s.Day)
		if !day.Valid() && day != domain.Unassigned {
			errs = append(errs, fmt.Errorf("weeks[%d].sessions[%d].day: invalid day index %d", i, j, s.Day))
		}
		if day.Valid() {
			if seen[s.Day] {
				errs = append(errs, fmt.Errorf("weeks[%d]: two sessions on day %d", i, s.Day))
			}
			seen[s.Day] = true
		}
	}

	return errs
}
