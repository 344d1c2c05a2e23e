package repository

import (
	"strconv"
	"strings"

	"github.com/imtheyoyo/plan-course/internal/domain"
)

// daysToCSV serializes weekday indices as a comma-separated list.
func daysToCSV(days []domain.Weekday) string {
	parts := make([]string, 0, len(days))
	for _, d := range days {
		parts = append(parts, strconv.Itoa(int(d)))
	}
	return strings.Join(parts, ",")
}

// daysFromCSV parses a comma-separated weekday list; malformed entries
// are skipped.
func daysFromCSV(s string) []domain.Weekday {
	if s == "" {
		return nil
	}
	var days []domain.Weekday
	for _, part := range strings.Split(s, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			continue
		}
		days = append(days, domain.Weekday(n))
	}
	return days
}

// boolToInt converts a Go bool to an integer (0 or 1) for SQLite storage.
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// intToBool converts a SQLite integer (0 or 1) to a Go bool.
func intToBool(i int) bool {
	return i != 0
}
