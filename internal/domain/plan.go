package domain

import (
	"fmt"
	"sort"
	"time"
)

// PaceSet holds training paces in seconds per kilometer, derived once per
// plan from a single fitness index and immutable thereafter. A zero pace
// means the zone could not be computed and renders as "N/A".
type PaceSet struct {
	EasyLow    float64
	EasyHigh   float64
	Marathon   float64
	Threshold  float64
	Interval   float64
	Repetition float64
	Race       float64
}

// ForZone returns the pace for the given zone, 0 for unknown zones.
func (p PaceSet) ForZone(z Zone) float64 {
	switch z {
	case ZoneEasyLow:
		return p.EasyLow
	case ZoneEasyHigh:
		return p.EasyHigh
	case ZoneMarathon:
		return p.Marathon
	case ZoneThreshold:
		return p.Threshold
	case ZoneInterval:
		return p.Interval
	case ZoneRepetition:
		return p.Repetition
	case ZoneRace:
		return p.Race
	}
	return 0
}

// Phase is one periodization block. Week counts across the ordered phase
// sequence sum exactly to the plan length.
type Phase struct {
	Name  string
	Type  PhaseType
	Weeks int
}

// WeekConfig is the mileage-level plan for one week, produced before any
// session content exists.
type WeekConfig struct {
	TargetKm float64
	Recovery bool
	Test     bool
}

// WorkoutDescriptor is the structured form of a session's content. The
// human-readable structure text is derived from it at generation time and
// never parsed back.
type WorkoutDescriptor struct {
	WarmupMin      int
	Reps           int
	RepDistanceKm  float64
	RepDurationMin float64
	RecoveryKm     float64
	RecoveryMin    float64
	CooldownMin    int
	Zone           Zone
}

// Segment is one named, human-readable block of a session.
type Segment struct {
	Name string
	Text string
}

// Session is a single dated workout. Day is Unassigned until the placement
// engine runs; FullDate is derived from the owning week's start date.
type Session struct {
	ID         string
	Type       string
	Category   SessionCategory
	Intensity  int
	Structure  []Segment
	Descriptor *WorkoutDescriptor
	DistanceKm float64
	Day        Weekday
	IsTest     bool
	FullDate   time.Time
}

// Week owns its sessions exclusively, ordered by day after placement.
type Week struct {
	Number    int
	PhaseName string
	PhaseType PhaseType
	StartDate time.Time
	TotalKm   float64
	Sessions  []*Session
	TSS       int
}

// SessionOn returns the session placed on the given day, or nil.
func (w *Week) SessionOn(day Weekday) *Session {
	for _, s := range w.Sessions {
		if s.Day == day {
			return s
		}
	}
	return nil
}

// SessionByID returns the session with the given ID, or nil.
func (w *Week) SessionByID(id string) *Session {
	for _, s := range w.Sessions {
		if s.ID == id {
			return s
		}
	}
	return nil
}

// SortByDay orders sessions by day, unassigned last.
func (w *Week) SortByDay() {
	sort.SliceStable(w.Sessions, func(i, j int) bool {
		a, b := w.Sessions[i].Day, w.Sessions[j].Day
		if a.Valid() != b.Valid() {
			return a.Valid()
		}
		return a < b
	})
}

// MoveSession moves one session to another day as an atomic single-week
// mutation: it updates the day, recomputes the full date and re-sorts the
// list. Moving onto an occupied day is rejected.
func (w *Week) MoveSession(sessionID string, day Weekday) error {
	if !day.Valid() {
		return fmt.Errorf("move session: invalid day %d", day)
	}
	s := w.SessionByID(sessionID)
	if s == nil {
		return fmt.Errorf("move session: no session %q in week %d", sessionID, w.Number)
	}
	if occ := w.SessionOn(day); occ != nil && occ.ID != sessionID {
		return fmt.Errorf("move session: day %s already holds %q", day, occ.Type)
	}
	s.Day = day
	s.FullDate = w.StartDate.AddDate(0, 0, int(day))
	w.SortByDay()
	return nil
}

// SwapSessions exchanges the days of two sessions in the same week.
func (w *Week) SwapSessions(idA, idB string) error {
	a, b := w.SessionByID(idA), w.SessionByID(idB)
	if a == nil || b == nil {
		return fmt.Errorf("swap sessions: unknown session in week %d", w.Number)
	}
	a.Day, b.Day = b.Day, a.Day
	a.FullDate = w.StartDate.AddDate(0, 0, int(a.Day))
	b.FullDate = w.StartDate.AddDate(0, 0, int(b.Day))
	w.SortByDay()
	return nil
}

// Performance is a known race result used to derive the fitness index.
type Performance struct {
	DistanceKm float64
	Duration   time.Duration
}

// PlanRequest is the validated generation request. Exactly one of
// Performance or SixMinTestKm carries the fitness input.
type PlanRequest struct {
	StartDate       time.Time
	RaceDate        time.Time
	RaceDistanceKm  float64
	Level           Level
	TrainingDays    []Weekday
	LongRunDay      Weekday
	CurrentWeeklyKm float64
	Performance     *Performance
	SixMinTestKm    float64
}

// TotalWeeks returns the number of plan weeks between start and race,
// race week included. Weeks run Monday to Sunday, so the count is taken
// from the Monday of the start week; otherwise a mid-week start would
// leave the race date past the last week row.
func (r PlanRequest) TotalWeeks() int {
	days := int(r.RaceDate.Sub(r.StartDate).Hours() / 24)
	if days < 0 {
		return 0
	}
	days += (int(r.StartDate.Weekday()) + 6) % 7
	return days/7 + 1
}

// HasTrainingDay reports whether day is one of the user's available days.
func (r PlanRequest) HasTrainingDay(day Weekday) bool {
	for _, d := range r.TrainingDays {
		if d == day {
			return true
		}
	}
	return false
}

// Validate checks the structural constraints the form layer is expected to
// enforce; the core still rejects broken requests defensively.
func (r PlanRequest) Validate() error {
	if !ValidLevels[string(r.Level)] {
		return fmt.Errorf("%w: unknown level %q", ErrInvalidRequest, r.Level)
	}
	if len(r.TrainingDays) < 3 {
		return fmt.Errorf("%w: at least 3 training days required, got %d", ErrInvalidRequest, len(r.TrainingDays))
	}
	seen := map[Weekday]bool{}
	for _, d := range r.TrainingDays {
		if !d.Valid() {
			return fmt.Errorf("%w: invalid training day %d", ErrInvalidRequest, d)
		}
		if seen[d] {
			return fmt.Errorf("%w: duplicate training day %s", ErrInvalidRequest, d)
		}
		seen[d] = true
	}
	if !r.HasTrainingDay(r.LongRunDay) {
		return fmt.Errorf("%w: long run day %s is not a training day", ErrInvalidRequest, r.LongRunDay)
	}
	if r.CurrentWeeklyKm <= 0 {
		return fmt.Errorf("%w: current weekly mileage must be positive", ErrInvalidRequest)
	}
	if r.RaceDistanceKm <= 0 {
		return fmt.Errorf("%w: race distance must be positive", ErrInvalidRequest)
	}
	if !r.RaceDate.After(r.StartDate) {
		return fmt.Errorf("%w: race date must be after start date", ErrInvalidRequest)
	}
	if r.Performance == nil && r.SixMinTestKm <= 0 {
		return fmt.Errorf("%w: a performance or a 6-min test distance is required", ErrInvalidRequest)
	}
	return nil
}

// TrainingPlan is the top-level artifact returned by the generator and the
// only value that survives past generation.
type TrainingPlan struct {
	ID        string
	Request   PlanRequest
	Paces     PaceSet
	Weeks     []*Week
	Warnings  []string
	CreatedAt time.Time
}

// TotalKm sums weekly mileage across the plan.
func (p *TrainingPlan) TotalKm() float64 {
	var total float64
	for _, w := range p.Weeks {
		total += w.TotalKm
	}
	return total
}

// FatigueState maps day index (Monday-first) to a non-negative fatigue
// score. It is a pure function of the current placement, never persisted.
type FatigueState [7]float64
