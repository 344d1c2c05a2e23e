// Package audit re-derives expert-rule findings from a finished week.
// It is a purely advisory layer: it never mutates the plan and the same
// week always yields the same report.
package audit

import (
	"fmt"

	"github.com/imtheyoyo/plan-course/internal/domain"
)

type FindingCode string

const (
	CodeQualitySpacing    FindingCode = "QUALITY_SPACING"
	CodeNoRestAfterLong   FindingCode = "NO_REST_AFTER_LONG_RUN"
	CodeConsecutiveDays   FindingCode = "TOO_MANY_CONSECUTIVE_DAYS"
	CodeInsufficientRest  FindingCode = "INSUFFICIENT_REST_DAYS"
	CodeTooMuchQuality    FindingCode = "TOO_MANY_QUALITY_SESSIONS"
	CodeMondayAfterSunday FindingCode = "QUALITY_MONDAY_LONG_SUNDAY"
	CodeLongAfterQuality  FindingCode = "LONG_RUN_AFTER_QUALITY"
	CodeSandwichedRest    FindingCode = "REST_BETWEEN_HARD_DAYS"
	CodeQualityDayChoice  FindingCode = "NON_IDEAL_QUALITY_DAY"
	CodeLongRunDayChoice  FindingCode = "LONG_RUN_OFF_IDEAL_DAY"
	CodeLoadImbalance     FindingCode = "LOAD_IMBALANCE"
	CodeExcessRest        FindingCode = "EXCESS_REST_DAYS"
)

type Finding struct {
	Code    FindingCode
	Message string
}

// Report is the advisory audit of one week.
type Report struct {
	WeekNumber      int
	Errors          []Finding
	Warnings        []Finding
	Recommendations []Finding
	Score           int
}

// Per-level expert thresholds.
type levelRules struct {
	MinQualityGapHours int
	MaxConsecutiveDays int
	MinRestDays        int
	MaxQualitySessions int
}

func rulesFor(level domain.Level) levelRules {
	switch level {
	case domain.LevelBeginner:
		return levelRules{MinQualityGapHours: 72, MaxConsecutiveDays: 3, MinRestDays: 2, MaxQualitySessions: 1}
	case domain.LevelAdvanced:
		return levelRules{MinQualityGapHours: 36, MaxConsecutiveDays: 5, MinRestDays: 1, MaxQualitySessions: 3}
	default:
		return levelRules{MinQualityGapHours: 48, MaxConsecutiveDays: 4, MinRestDays: 2, MaxQualitySessions: 2}
	}
}

// Ideal quality days for the recommendation heuristics.
var idealQualityDays = map[domain.Weekday]bool{
	domain.Tuesday: true, domain.Wednesday: true, domain.Thursday: true,
}

// AuditWeek scores an assembled week against the expert rules for the
// request's level.
func AuditWeek(week *domain.Week, req domain.PlanRequest) Report {
	report := Report{WeekNumber: week.Number}
	rules := rulesFor(req.Level)

	var byDay [7]*domain.Session
	for _, s := range week.Sessions {
		if s.Day.Valid() {
			byDay[s.Day] = s
		}
	}

	report.Errors = append(report.Errors, blockingFindings(byDay, rules)...)
	report.Warnings = append(report.Warnings, warningFindings(byDay)...)
	report.Recommendations = append(report.Recommendations, recommendationFindings(byDay, week, req)...)
	report.Score = score(report)
	return report
}

// AuditPlan audits every week of a finished plan in order.
func AuditPlan(plan *domain.TrainingPlan) []Report {
	reports := make([]Report, 0, len(plan.Weeks))
	for _, w := range plan.Weeks {
		reports = append(reports, AuditWeek(w, plan.Request))
	}
	return reports
}

func blockingFindings(byDay [7]*domain.Session, rules levelRules) []Finding {
	var findings []Finding

	// Quality spacing below the level threshold.
	lastHard := domain.Unassigned
	for day := domain.Monday; day <= domain.Sunday; day++ {
		s := byDay[day]
		if s == nil || !hard(s) {
			continue
		}
		if lastHard.Valid() {
			hours := int(day-lastHard) * 24
			if hours < rules.MinQualityGapHours {
				findings = append(findings, Finding{
					Code:    CodeQualitySpacing,
					Message: fmt.Sprintf("only %dh between quality sessions on %s and %s (minimum %dh)", hours, lastHard, day, rules.MinQualityGapHours),
				})
			}
		}
		lastHard = day
	}

	// No easy or rest day after the long run.
	for day := domain.Monday; day < domain.Sunday; day++ {
		s := byDay[day]
		next := byDay[day+1]
		if s != nil && s.Category == domain.CategoryLongRun && next != nil && hard(next) {
			findings = append(findings, Finding{
				Code:    CodeNoRestAfterLong,
				Message: fmt.Sprintf("hard session on %s right after the %s long run", day+1, day),
			})
		}
	}

	// Consecutive training days.
	consecutive, maxConsecutive := 0, 0
	for day := domain.Monday; day <= domain.Sunday; day++ {
		if byDay[day] != nil {
			consecutive++
			if consecutive > maxConsecutive {
				maxConsecutive = consecutive
			}
		} else {
			consecutive = 0
		}
	}
	if maxConsecutive > rules.MaxConsecutiveDays {
		findings = append(findings, Finding{
			Code:    CodeConsecutiveDays,
			Message: fmt.Sprintf("%d consecutive training days (maximum %d)", maxConsecutive, rules.MaxConsecutiveDays),
		})
	}

	// Total rest days.
	rest := 0
	for day := domain.Monday; day <= domain.Sunday; day++ {
		if byDay[day] == nil {
			rest++
		}
	}
	if rest < rules.MinRestDays {
		findings = append(findings, Finding{
			Code:    CodeInsufficientRest,
			Message: fmt.Sprintf("%d rest days (minimum %d)", rest, rules.MinRestDays),
		})
	}

	// Quality volume for the level.
	quality := 0
	for day := domain.Monday; day <= domain.Sunday; day++ {
		if s := byDay[day]; s != nil && hard(s) && s.Category != domain.CategoryRace {
			quality++
		}
	}
	if quality > rules.MaxQualitySessions {
		findings = append(findings, Finding{
			Code:    CodeTooMuchQuality,
			Message: fmt.Sprintf("%d quality sessions (maximum %d for this level)", quality, rules.MaxQualitySessions),
		})
	}

	return findings
}

func warningFindings(byDay [7]*domain.Session) []Finding {
	var findings []Finding

	// Monday quality with a Sunday long run: the weekly pattern leaves
	// no recovery across the week boundary.
	if mon, sun := byDay[domain.Monday], byDay[domain.Sunday]; mon != nil && sun != nil &&
		hard(mon) && sun.Category == domain.CategoryLongRun {
		findings = append(findings, Finding{
			Code:    CodeMondayAfterSunday,
			Message: "quality on Monday with the long run on Sunday leaves no recovery between weeks",
		})
	}

	// Long run the day after a quality session.
	for day := domain.Tuesday; day <= domain.Sunday; day++ {
		s, prev := byDay[day], byDay[day-1]
		if s != nil && s.Category == domain.CategoryLongRun && prev != nil && hard(prev) {
			findings = append(findings, Finding{
				Code:    CodeLongAfterQuality,
				Message: fmt.Sprintf("long run on %s directly follows quality work", day),
			})
		}
	}

	// A single rest day wedged between two hard days.
	for day := domain.Tuesday; day < domain.Sunday; day++ {
		if byDay[day] != nil {
			continue
		}
		prev, next := byDay[day-1], byDay[day+1]
		if prev != nil && next != nil && hard(prev) && hard(next) {
			findings = append(findings, Finding{
				Code:    CodeSandwichedRest,
				Message: fmt.Sprintf("%s is a lone rest day between two hard days", day),
			})
		}
	}

	return findings
}

func recommendationFindings(byDay [7]*domain.Session, week *domain.Week, req domain.PlanRequest) []Finding {
	var findings []Finding

	for day := domain.Monday; day <= domain.Sunday; day++ {
		s := byDay[day]
		if s == nil || !hard(s) || s.Category == domain.CategoryRace || s.Category == domain.CategoryLongRun {
			continue
		}
		if !idealQualityDays[day] {
			findings = append(findings, Finding{
				Code:    CodeQualityDayChoice,
				Message: fmt.Sprintf("%s on %s; quality work usually sits Tuesday-Thursday", s.Type, day),
			})
		}
	}

	for day := domain.Monday; day <= domain.Sunday; day++ {
		s := byDay[day]
		if s != nil && s.Category == domain.CategoryLongRun && day != req.LongRunDay {
			findings = append(findings, Finding{
				Code:    CodeLongRunDayChoice,
				Message: fmt.Sprintf("long run on %s instead of the preferred %s", day, req.LongRunDay),
			})
		}
	}

	if week.TotalKm > 0 {
		for day := domain.Monday; day <= domain.Sunday; day++ {
			if s := byDay[day]; s != nil && s.DistanceKm > week.TotalKm*0.5 && s.Category != domain.CategoryRace {
				findings = append(findings, Finding{
					Code:    CodeLoadImbalance,
					Message: fmt.Sprintf("%s carries more than half the week's mileage", day),
				})
			}
		}
	}

	rest := 0
	for day := domain.Monday; day <= domain.Sunday; day++ {
		if byDay[day] == nil {
			rest++
		}
	}
	if rest >= 5 {
		findings = append(findings, Finding{
			Code:    CodeExcessRest,
			Message: fmt.Sprintf("%d full rest days; the week is very light", rest),
		})
	}

	return findings
}

func score(report Report) int {
	s := 100
	s -= 25 * len(report.Errors)
	s -= 10 * len(report.Warnings)
	if len(report.Recommendations) == 0 {
		s += 10
	} else {
		s -= 3 * len(report.Recommendations)
	}
	if s < 0 {
		s = 0
	}
	if s > 100 {
		s = 100
	}
	return s
}

func hard(s *domain.Session) bool {
	return s.Intensity >= 3 || s.IsTest
}
