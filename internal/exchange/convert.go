package exchange

import (
	"time"

	"github.com/imtheyoyo/plan-course/internal/domain"
)

// Export flattens a plan into its document form. Dates are formatted as
// calendar days; everything else is copied verbatim so that an
// export/import cycle reproduces the plan exactly.
func Export(plan *domain.TrainingPlan) *PlanDocument {
	doc := &PlanDocument{
		Version:   DocumentVersion,
		ID:        plan.ID,
		CreatedAt: plan.CreatedAt.Format(time.RFC3339),
		Request:   exportRequest(plan.Request),
		Paces: PacesExport{
			EasyLow:    plan.Paces.EasyLow,
			EasyHigh:   plan.Paces.EasyHigh,
			Marathon:   plan.Paces.Marathon,
			Threshold:  plan.Paces.Threshold,
			Interval:   plan.Paces.Interval,
			Repetition: plan.Paces.Repetition,
			Race:       plan.Paces.Race,
		},
		Warnings: plan.Warnings,
	}
	for _, w := range plan.Weeks {
		doc.Weeks = append(doc.Weeks, exportWeek(w))
	}
	return doc
}

func exportRequest(req domain.PlanRequest) RequestExport {
	out := RequestExport{
		StartDate:       req.StartDate.Format(dateLayout),
		RaceDate:        req.RaceDate.Format(dateLayout),
		RaceDistanceKm:  req.RaceDistanceKm,
		Level:           string(req.Level),
		LongRunDay:      int(req.LongRunDay),
		CurrentWeeklyKm: req.CurrentWeeklyKm,
		SixMinTestKm:    req.SixMinTestKm,
	}
	for _, d := range req.TrainingDays {
		out.TrainingDays = append(out.TrainingDays, int(d))
	}
	if req.Performance != nil {
		out.Performance = &PerformanceExport{
			DistanceKm: req.Performance.DistanceKm,
			TimeSec:    int(req.Performance.Duration / time.Second),
		}
	}
	return out
}

func exportWeek(w *domain.Week) WeekExport {
	out := WeekExport{
		Number:    w.Number,
		Phase:     w.PhaseName,
		PhaseType: string(w.PhaseType),
		StartDate: w.StartDate.Format(dateLayout),
		TotalKm:   w.TotalKm,
		TSS:       w.TSS,
	}
	for _, s := range w.Sessions {
		out.Sessions = append(out.Sessions, exportSession(s))
	}
	return out
}

func exportSession(s *domain.Session) SessionExport {
	out := SessionExport{
		ID:         s.ID,
		Type:       s.Type,
		Category:   string(s.Category),
		Intensity:  s.Intensity,
		Day:        int(s.Day),
		DistanceKm: s.DistanceKm,
		IsTest:     s.IsTest,
	}
	if !s.FullDate.IsZero() {
		out.Date = s.FullDate.Format(dateLayout)
	}
	for _, seg := range s.Structure {
		out.Structure = append(out.Structure, SegmentExport{Name: seg.Name, Text: seg.Text})
	}
	if s.Descriptor != nil {
		out.Descriptor = &DescriptorExport{
			WarmupMin:      s.Descriptor.WarmupMin,
			Reps:           s.Descriptor.Reps,
			RepDistanceKm:  s.Descriptor.RepDistanceKm,
			RepDurationMin: s.Descriptor.RepDurationMin,
			RecoveryKm:     s.Descriptor.RecoveryKm,
			RecoveryMin:    s.Descriptor.RecoveryMin,
			CooldownMin:    s.Descriptor.CooldownMin,
			Zone:           string(s.Descriptor.Zone),
		}
	}
	return out
}

// Import rebuilds a plan from a validated document. Call ValidateDocument
// first; Import assumes the document is structurally sound.
func Import(doc *PlanDocument) (*domain.TrainingPlan, error) {
	req, err := importRequest(doc.Request)
	if err != nil {
		return nil, err
	}

	plan := &domain.TrainingPlan{
		ID:      doc.ID,
		Request: req,
		Paces: domain.PaceSet{
			EasyLow:    doc.Paces.EasyLow,
			EasyHigh:   doc.Paces.EasyHigh,
			Marathon:   doc.Paces.Marathon,
			Threshold:  doc.Paces.Threshold,
			Interval:   doc.Paces.Interval,
			Repetition: doc.Paces.Repetition,
			Race:       doc.Paces.Race,
		},
		Warnings: doc.Warnings,
	}
	if doc.CreatedAt != "" {
		if ts, err := time.Parse(time.RFC3339, doc.CreatedAt); err == nil {
			plan.CreatedAt = ts
		}
	}

	for _, we := range doc.Weeks {
		week, err := importWeek(we)
		if err != nil {
			return nil, err
		}
		plan.Weeks = append(plan.Weeks, week)
	}
	return plan, nil
}

func importRequest(in RequestExport) (domain.PlanRequest, error) {
	start, err := time.Parse(dateLayout, in.StartDate)
	if err != nil {
		return domain.PlanRequest{}, err
	}
	race, err := time.Parse(dateLayout, in.RaceDate)
	if err != nil {
		return domain.PlanRequest{}, err
	}

	req := domain.PlanRequest{
		StartDate:       start,
		RaceDate:        race,
		RaceDistanceKm:  in.RaceDistanceKm,
		Level:           domain.Level(in.Level),
		LongRunDay:      domain.Weekday(in.LongRunDay),
		CurrentWeeklyKm: in.CurrentWeeklyKm,
		SixMinTestKm:    in.SixMinTestKm,
	}
	for _, d := range in.TrainingDays {
		req.TrainingDays = append(req.TrainingDays, domain.Weekday(d))
	}
	if in.Performance != nil {
		req.Performance = &domain.Performance{
			DistanceKm: in.Performance.DistanceKm,
			Duration:   time.Duration(in.Performance.TimeSec) * time.Second,
		}
	}
	return req, nil
}

func importWeek(in WeekExport) (*domain.Week, error) {
	start, err := time.Parse(dateLayout, in.StartDate)
	if err != nil {
		return nil, err
	}
	week := &domain.Week{
		Number:    in.Number,
		PhaseName: in.Phase,
		PhaseType: domain.PhaseType(in.PhaseType),
		StartDate: start,
		TotalKm:   in.TotalKm,
		TSS:       in.TSS,
	}
	for _, se := range in.Sessions {
		week.Sessions = append(week.Sessions, importSession(se, start))
	}
	return week, nil
}

func importSession(in SessionExport, weekStart time.Time) *domain.Session {
	s := &domain.Session{
		ID:         in.ID,
		Type:       in.Type,
		Category:   domain.SessionCategory(in.Category),
		Intensity:  in.Intensity,
		DistanceKm: in.DistanceKm,
		Day:        domain.Weekday(in.Day),
		IsTest:     in.IsTest,
	}
	if s.Day.Valid() {
		s.FullDate = weekStart.AddDate(0, 0, int(s.Day))
	}
	for _, seg := range in.Structure {
		s.Structure = append(s.Structure, domain.Segment{Name: seg.Name, Text: seg.Text})
	}
	if in.Descriptor != nil {
		s.Descriptor = &domain.WorkoutDescriptor{
			WarmupMin:      in.Descriptor.WarmupMin,
			Reps:           in.Descriptor.Reps,
			RepDistanceKm:  in.Descriptor.RepDistanceKm,
			RepDurationMin: in.Descriptor.RepDurationMin,
			RecoveryKm:     in.Descriptor.RecoveryKm,
			RecoveryMin:    in.Descriptor.RecoveryMin,
			CooldownMin:    in.Descriptor.CooldownMin,
			Zone:           domain.Zone(in.Descriptor.Zone),
		}
	}
	return s
}
