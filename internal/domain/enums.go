package domain

// Weekday indexes days Monday-first: 0=Monday ... 6=Sunday.
// All day arithmetic in the planner uses this origin; conversion to
// time.Weekday (Sunday-first) happens only at the calendar boundary.
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

// Unassigned marks a session that has not been placed on a day yet.
const Unassigned Weekday = -1

func (d Weekday) String() string {
	names := [...]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}
	if d < Monday || d > Sunday {
		return "Unassigned"
	}
	return names[d]
}

// Valid reports whether d is a real weekday (not Unassigned).
func (d Weekday) Valid() bool {
	return d >= Monday && d <= Sunday
}

type PhaseType string

const (
	PhaseBase    PhaseType = "base"
	PhaseQuality PhaseType = "quality"
	PhasePeak    PhaseType = "peak"
	PhaseTaper   PhaseType = "taper"
)

type Level string

const (
	LevelBeginner     Level = "beginner"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
)

// ValidLevels is the canonical set of accepted runner level strings.
var ValidLevels = map[string]bool{
	"beginner": true, "intermediate": true, "advanced": true,
}

// Zone is a named training intensity with a characteristic pace.
type Zone string

const (
	ZoneEasyLow    Zone = "easy_low"
	ZoneEasyHigh   Zone = "easy_high"
	ZoneMarathon   Zone = "marathon"
	ZoneThreshold  Zone = "threshold"
	ZoneInterval   Zone = "interval"
	ZoneRepetition Zone = "repetition"
	ZoneRace       Zone = "race"
)

// SessionCategory classifies a session for spacing rules.
type SessionCategory string

const (
	CategoryVMA       SessionCategory = "vma"
	CategoryThreshold SessionCategory = "threshold"
	CategoryTest      SessionCategory = "test"
	CategoryLongRun   SessionCategory = "long_run"
	CategoryEasy      SessionCategory = "easy"
	CategoryRace      SessionCategory = "race"
)
