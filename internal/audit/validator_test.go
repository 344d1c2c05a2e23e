package audit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imtheyoyo/plan-course/internal/domain"
)

func auditRequest(level domain.Level) domain.PlanRequest {
	return domain.PlanRequest{
		Level:        level,
		TrainingDays: []domain.Weekday{domain.Tuesday, domain.Thursday, domain.Saturday, domain.Sunday},
		LongRunDay:   domain.Sunday,
	}
}

func placed(day domain.Weekday, cat domain.SessionCategory, intensity int, km float64) *domain.Session {
	return &domain.Session{
		ID:         string(cat) + "-" + day.String(),
		Type:       string(cat),
		Category:   cat,
		Intensity:  intensity,
		DistanceKm: km,
		Day:        day,
	}
}

func weekOf(sessions ...*domain.Session) *domain.Week {
	w := &domain.Week{Number: 1, Sessions: sessions}
	for _, s := range sessions {
		w.TotalKm += s.DistanceKm
	}
	return w
}

func TestAuditWeek_CleanWeekScoresFull(t *testing.T) {
	week := weekOf(
		placed(domain.Tuesday, domain.CategoryVMA, 4, 9),
		placed(domain.Wednesday, domain.CategoryEasy, 1, 6),
		placed(domain.Thursday, domain.CategoryThreshold, 3, 10),
		placed(domain.Saturday, domain.CategoryEasy, 1, 8),
		placed(domain.Sunday, domain.CategoryLongRun, 2, 14),
	)

	report := AuditWeek(week, auditRequest(domain.LevelIntermediate))

	assert.Empty(t, report.Errors)
	assert.Empty(t, report.Warnings)
	assert.Empty(t, report.Recommendations)
	assert.Equal(t, 100, report.Score)
}

func TestAuditWeek_QualitySpacingTooTight(t *testing.T) {
	week := weekOf(
		placed(domain.Tuesday, domain.CategoryVMA, 4, 9),
		placed(domain.Wednesday, domain.CategoryThreshold, 3, 10),
		placed(domain.Sunday, domain.CategoryLongRun, 2, 14),
	)

	report := AuditWeek(week, auditRequest(domain.LevelIntermediate))

	require.Len(t, report.Errors, 1)
	assert.Equal(t, CodeQualitySpacing, report.Errors[0].Code)
}

func TestAuditWeek_HardDayAfterLongRun(t *testing.T) {
	week := weekOf(
		placed(domain.Wednesday, domain.CategoryLongRun, 2, 14),
		placed(domain.Thursday, domain.CategoryVMA, 4, 9),
	)

	report := AuditWeek(week, auditRequest(domain.LevelAdvanced))

	codes := findingCodes(report.Errors)
	assert.Contains(t, codes, CodeNoRestAfterLong)
}

func TestAuditWeek_BeginnerQualityVolume(t *testing.T) {
	week := weekOf(
		placed(domain.Tuesday, domain.CategoryVMA, 3, 8),
		placed(domain.Friday, domain.CategoryThreshold, 3, 9),
		placed(domain.Sunday, domain.CategoryLongRun, 2, 12),
	)

	report := AuditWeek(week, auditRequest(domain.LevelBeginner))

	codes := findingCodes(report.Errors)
	assert.Contains(t, codes, CodeTooMuchQuality)
}

func TestAuditWeek_ConsecutiveDaysAndRest(t *testing.T) {
	week := weekOf(
		placed(domain.Monday, domain.CategoryEasy, 1, 6),
		placed(domain.Tuesday, domain.CategoryEasy, 1, 6),
		placed(domain.Wednesday, domain.CategoryEasy, 1, 6),
		placed(domain.Thursday, domain.CategoryEasy, 1, 6),
		placed(domain.Friday, domain.CategoryEasy, 1, 6),
		placed(domain.Saturday, domain.CategoryEasy, 1, 6),
		placed(domain.Sunday, domain.CategoryLongRun, 2, 14),
	)

	report := AuditWeek(week, auditRequest(domain.LevelIntermediate))

	codes := findingCodes(report.Errors)
	assert.Contains(t, codes, CodeConsecutiveDays)
	assert.Contains(t, codes, CodeInsufficientRest)
}

func TestAuditWeek_MondayQualitySundayLongRun(t *testing.T) {
	week := weekOf(
		placed(domain.Monday, domain.CategoryVMA, 4, 9),
		placed(domain.Thursday, domain.CategoryEasy, 1, 8),
		placed(domain.Sunday, domain.CategoryLongRun, 2, 14),
	)

	report := AuditWeek(week, auditRequest(domain.LevelIntermediate))

	codes := findingCodes(report.Warnings)
	assert.Contains(t, codes, CodeMondayAfterSunday)
}

func TestAuditWeek_RestDaySandwichedBetweenHardDays(t *testing.T) {
	week := weekOf(
		placed(domain.Wednesday, domain.CategoryVMA, 4, 9),
		placed(domain.Friday, domain.CategoryThreshold, 3, 10),
	)

	report := AuditWeek(week, auditRequest(domain.LevelIntermediate))

	assert.Empty(t, report.Errors, "48h spacing is legal for intermediates")
	codes := findingCodes(report.Warnings)
	assert.Contains(t, codes, CodeSandwichedRest)
}

func TestAuditWeek_Recommendations(t *testing.T) {
	week := weekOf(
		placed(domain.Saturday, domain.CategoryThreshold, 3, 10),
		placed(domain.Wednesday, domain.CategoryLongRun, 2, 14),
	)

	report := AuditWeek(week, auditRequest(domain.LevelIntermediate))

	codes := findingCodes(report.Recommendations)
	assert.Contains(t, codes, CodeQualityDayChoice)
	assert.Contains(t, codes, CodeLongRunDayChoice)
	assert.Contains(t, codes, CodeExcessRest)
	assert.Contains(t, codes, CodeLoadImbalance)
}

func TestAuditWeek_ScoreFloorsAtZero(t *testing.T) {
	week := weekOf(
		placed(domain.Monday, domain.CategoryVMA, 4, 9),
		placed(domain.Tuesday, domain.CategoryVMA, 4, 9),
		placed(domain.Wednesday, domain.CategoryThreshold, 3, 10),
		placed(domain.Thursday, domain.CategoryThreshold, 3, 10),
		placed(domain.Friday, domain.CategoryEasy, 1, 6),
		placed(domain.Saturday, domain.CategoryEasy, 1, 6),
		placed(domain.Sunday, domain.CategoryLongRun, 2, 14),
	)

	report := AuditWeek(week, auditRequest(domain.LevelBeginner))

	assert.NotEmpty(t, report.Errors)
	assert.Equal(t, 0, report.Score)
}

func TestAuditWeek_Idempotent(t *testing.T) {
	week := weekOf(
		placed(domain.Monday, domain.CategoryVMA, 4, 9),
		placed(domain.Wednesday, domain.CategoryThreshold, 3, 10),
		placed(domain.Sunday, domain.CategoryLongRun, 2, 14),
	)
	req := auditRequest(domain.LevelIntermediate)

	first := AuditWeek(week, req)
	second := AuditWeek(week, req)

	assert.Equal(t, first, second)
}

func findingCodes(findings []Finding) []FindingCode {
	codes := make([]FindingCode, 0, len(findings))
	for _, f := range findings {
		codes = append(codes, f.Code)
	}
	return codes
}
