package formatter

import (
	"fmt"
	"math"
	"strings"

	"github.com/imtheyoyo/plan-course/internal/audit"
	"github.com/imtheyoyo/plan-course/internal/domain"
	"github.com/imtheyoyo/plan-course/internal/pace"
)

// RenderPlanSummary renders the plan header plus the week-by-week table.
func RenderPlanSummary(plan *domain.TrainingPlan) string {
	var b strings.Builder
	req := plan.Request

	b.WriteString(Header("Training plan"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s on %s\n",
		Bold(RaceLabel(req.RaceDistanceKm)),
		req.RaceDate.Format("Monday 2 January 2006")))
	b.WriteString(Dim(fmt.Sprintf("%d weeks · %.0f km total · %s level · plan %s\n",
		len(plan.Weeks), plan.TotalKm(), req.Level, shortID(plan.ID))))
	for _, w := range plan.Warnings {
		b.WriteString(StyleYellow.Render("! "+w) + "\n")
	}
	b.WriteString("\n")
	b.WriteString(RenderWeeks(plan))
	return b.String()
}

// RenderWeeks renders one row per week.
func RenderWeeks(plan *domain.TrainingPlan) string {
	headers := []string{"WEEK", "PHASE", "START", "KM", "TSS", "SESSIONS"}
	rows := make([][]string, 0, len(plan.Weeks))
	for _, w := range plan.Weeks {
		rows = append(rows, []string{
			fmt.Sprintf("%d", w.Number),
			PhaseStyle(w.PhaseType).Render(w.PhaseName),
			w.StartDate.Format("02 Jan"),
			fmt.Sprintf("%.1f", w.TotalKm),
			fmt.Sprintf("%d", w.TSS),
			fmt.Sprintf("%d", len(w.Sessions)),
		})
	}
	return RenderTable(headers, rows)
}

// RenderWeekDetail renders every session of one week with its structure.
func RenderWeekDetail(week *domain.Week) string {
	var b strings.Builder
	title := fmt.Sprintf("Week %d — %s", week.Number, week.PhaseName)
	b.WriteString(Header(title))
	b.WriteString("\n")
	b.WriteString(Dim(fmt.Sprintf("starts %s · %.1f km · TSS %d\n\n",
		week.StartDate.Format("Monday 2 January"), week.TotalKm, week.TSS)))

	for _, s := range week.Sessions {
		day := s.Day.String()
		if !s.Day.Valid() {
			day = StyleRed.Render("unplaced")
		}
		b.WriteString(fmt.Sprintf("%s  %s  %s  %s\n",
			Bold(day),
			StyleFg.Render(s.Type),
			Dim(fmt.Sprintf("%.1f km", s.DistanceKm)),
			IntensityDots(s.Intensity)))
		for _, seg := range s.Structure {
			b.WriteString(fmt.Sprintf("    %s %s\n", Dim(seg.Name+":"), seg.Text))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// RenderPaces renders the derived pace table.
func RenderPaces(paces domain.PaceSet) string {
	rows := [][]string{
		{"Easy (low)", pace.Format(paces.EasyLow)},
		{"Easy (high)", pace.Format(paces.EasyHigh)},
		{"Marathon", pace.Format(paces.Marathon)},
		{"Threshold", pace.Format(paces.Threshold)},
		{"Interval", pace.Format(paces.Interval)},
		{"Repetition", pace.Format(paces.Repetition)},
		{"Race", pace.Format(paces.Race)},
	}
	return Header("Training paces") + "\n" + RenderTable([]string{"ZONE", "PACE"}, rows)
}

// RenderAuditReports renders per-week audit findings and scores.
func RenderAuditReports(reports []audit.Report) string {
	var b strings.Builder
	b.WriteString(Header("Schedule audit"))
	b.WriteString("\n")

	for _, r := range reports {
		score := ScoreStyle(r.Score).Render(fmt.Sprintf("%3d/100", r.Score))
		b.WriteString(fmt.Sprintf("%s  %s\n", Bold(fmt.Sprintf("Week %d", r.WeekNumber)), score))
		for _, f := range r.Errors {
			b.WriteString("    " + StyleRed.Render("error") + "  " + f.Message + "\n")
		}
		for _, f := range r.Warnings {
			b.WriteString("    " + StyleYellow.Render("warn") + "   " + f.Message + "\n")
		}
		for _, f := range r.Recommendations {
			b.WriteString("    " + Dim("hint") + "   " + f.Message + "\n")
		}
	}
	return b.String()
}

// RaceLabel names a race distance the way runners do.
func RaceLabel(km float64) string {
	switch {
	case math.Abs(km-42.195) < 0.5:
		return "Marathon"
	case math.Abs(km-21.0975) < 0.5:
		return "Half marathon"
	case km == math.Trunc(km):
		return fmt.Sprintf("%d km", int(km))
	default:
		return fmt.Sprintf("%.1f km", km)
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
