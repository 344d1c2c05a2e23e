package domain

// PlacementMode selects the placement strategy.
type PlacementMode string

const (
	PlacementFatigue PlacementMode = "fatigue"
	PlacementSimple  PlacementMode = "simple"
)

// Config carries all generation tunables as an explicit immutable value
// threaded through calls. There is no ambient singleton.
type Config struct {
	// Placement selects the day-assignment strategy.
	Placement PlacementMode

	// RecoveryFallbackKm is the recovery distance assumed between
	// repetitions when a workout descriptor omits it.
	RecoveryFallbackKm float64

	// MinSessionKm floors any estimated session distance.
	MinSessionKm float64

	// MinTaperKm floors taper-week mileage.
	MinTaperKm float64

	// DefaultVDOT feeds the fallback pace table when the fitness input
	// is out of range or non-computable.
	DefaultVDOT float64
}

// DefaultConfig returns the canonical tunables.
func DefaultConfig() Config {
	return Config{
		Placement:          PlacementFatigue,
		RecoveryFallbackKm: 0.25,
		MinSessionKm:       1.0,
		MinTaperKm:         15.0,
		DefaultVDOT:        38.0,
	}
}
