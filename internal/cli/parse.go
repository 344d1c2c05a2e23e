package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/imtheyoyo/plan-course/internal/domain"
)

var weekdayNames = map[string]domain.Weekday{
	"mon": domain.Monday, "monday": domain.Monday,
	"tue": domain.Tuesday, "tuesday": domain.Tuesday,
	"wed": domain.Wednesday, "wednesday": domain.Wednesday,
	"thu": domain.Thursday, "thursday": domain.Thursday,
	"fri": domain.Friday, "friday": domain.Friday,
	"sat": domain.Saturday, "saturday": domain.Saturday,
	"sun": domain.Sunday, "sunday": domain.Sunday,
}

// parseWeekday accepts a day name ("sun", "sunday") or a Monday-first
// index ("6").
func parseWeekday(s string) (domain.Weekday, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if d, ok := weekdayNames[key]; ok {
		return d, nil
	}
	if n, err := strconv.Atoi(key); err == nil {
		d := domain.Weekday(n)
		if d.Valid() {
			return d, nil
		}
	}
	return domain.Unassigned, fmt.Errorf("invalid weekday %q", s)
}

// parseWeekdays parses a comma-separated day list such as "tue,thu,sat,sun".
func parseWeekdays(s string) ([]domain.Weekday, error) {
	if s == "" {
		return nil, fmt.Errorf("no training days given")
	}
	var days []domain.Weekday
	for _, part := range strings.Split(s, ",") {
		d, err := parseWeekday(part)
		if err != nil {
			return nil, err
		}
		days = append(days, d)
	}
	return days, nil
}

// parseRaceDistance accepts kilometers ("10", "21.1") or a race name.
func parseRaceDistance(s string) (float64, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "marathon":
		return 42.195, nil
	case "half", "half-marathon", "semi":
		return 21.0975, nil
	case "10k":
		return 10, nil
	case "5k":
		return 5, nil
	}
	km, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || km <= 0 {
		return 0, fmt.Errorf("invalid race distance %q", s)
	}
	return km, nil
}

// parseRaceTime parses "mm:ss" or "h:mm:ss".
func parseRaceTime(s string) (time.Duration, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, fmt.Errorf("invalid time %q (expected mm:ss or h:mm:ss)", s)
	}
	var total time.Duration
	for _, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 {
			return 0, fmt.Errorf("invalid time %q (expected mm:ss or h:mm:ss)", s)
		}
		total = total*60 + time.Duration(n)*time.Second
	}
	if total <= 0 {
		return 0, fmt.Errorf("invalid time %q: must be positive", s)
	}
	return total, nil
}

func parseDate(s string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", s)
	}
	return t, nil
}
