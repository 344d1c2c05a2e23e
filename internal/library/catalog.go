// Package library is the workout template catalog: ordered variants per
// periodization phase, scaled by a per-level difficulty table instead of
// separate per-level catalogs.
package library

import "github.com/imtheyoyo/plan-course/internal/domain"

// SessionTemplate is a static catalog entry. Reps holds one count per
// progression index (phase thirds); exactly one of RepDistanceKm or
// RepDurationMin describes the work bout, and at most one of RecoveryKm
// or RecoveryMin the recovery between bouts.
type SessionTemplate struct {
	Label          string
	Category       domain.SessionCategory
	Zone           domain.Zone
	Intensity      int
	WarmupMin      int
	CooldownMin    int
	Reps           [3]int
	RepDistanceKm  float64
	RepDurationMin float64
	RecoveryKm     float64
	RecoveryMin    float64
}

var catalog = map[domain.PhaseType][]SessionTemplate{
	domain.PhaseBase: {
		{
			Label: "Strides", Category: domain.CategoryVMA, Zone: domain.ZoneRepetition,
			Intensity: 3, WarmupMin: 15, CooldownMin: 10,
			Reps: [3]int{8, 10, 12}, RepDistanceKm: 0.1, RecoveryKm: 0.1,
		},
		{
			Label: "Tempo run", Category: domain.CategoryThreshold, Zone: domain.ZoneThreshold,
			Intensity: 3, WarmupMin: 15, CooldownMin: 10,
			Reps: [3]int{1, 1, 1}, RepDurationMin: 15,
		},
		{
			Label: "Hill repeats", Category: domain.CategoryVMA, Zone: domain.ZoneInterval,
			Intensity: 3, WarmupMin: 15, CooldownMin: 10,
			Reps: [3]int{6, 8, 10}, RepDurationMin: 0.75, RecoveryMin: 1.5,
		},
	},
	domain.PhaseQuality: {
		{
			Label: "Short intervals", Category: domain.CategoryVMA, Zone: domain.ZoneInterval,
			Intensity: 4, WarmupMin: 20, CooldownMin: 10,
			Reps: [3]int{8, 10, 12}, RepDistanceKm: 0.3, RecoveryKm: 0.2,
		},
		{
			Label: "Threshold intervals", Category: domain.CategoryThreshold, Zone: domain.ZoneThreshold,
			Intensity: 3, WarmupMin: 20, CooldownMin: 10,
			Reps: [3]int{2, 3, 3}, RepDurationMin: 8, RecoveryMin: 2,
		},
		{
			Label: "Long intervals", Category: domain.CategoryVMA, Zone: domain.ZoneInterval,
			Intensity: 4, WarmupMin: 20, CooldownMin: 10,
			Reps: [3]int{4, 5, 6}, RepDistanceKm: 0.8, RecoveryKm: 0.4,
		},
	},
	domain.PhasePeak: {
		{
			Label: "Race-pace intervals", Category: domain.CategoryThreshold, Zone: domain.ZoneRace,
			Intensity: 3, WarmupMin: 20, CooldownMin: 10,
			Reps: [3]int{3, 4, 5}, RepDistanceKm: 2, RecoveryKm: 0.4,
		},
		{
			Label: "Threshold blocks", Category: domain.CategoryThreshold, Zone: domain.ZoneThreshold,
			Intensity: 3, WarmupMin: 20, CooldownMin: 10,
			Reps: [3]int{2, 2, 3}, RepDurationMin: 10, RecoveryMin: 2,
		},
		{
			Label: "Mixed VMA", Category: domain.CategoryVMA, Zone: domain.ZoneInterval,
			Intensity: 4, WarmupMin: 20, CooldownMin: 10,
			Reps: [3]int{6, 8, 10}, RepDistanceKm: 0.4, RecoveryKm: 0.2,
		},
	},
	domain.PhaseTaper: {
		{
			Label: "Sharpener", Category: domain.CategoryVMA, Zone: domain.ZoneInterval,
			Intensity: 3, WarmupMin: 15, CooldownMin: 10,
			Reps: [3]int{6, 6, 6}, RepDistanceKm: 0.2, RecoveryKm: 0.2,
		},
		{
			Label: "Race-pace reminder", Category: domain.CategoryThreshold, Zone: domain.ZoneRace,
			Intensity: 3, WarmupMin: 15, CooldownMin: 10,
			Reps: [3]int{2, 2, 2}, RepDistanceKm: 1, RecoveryKm: 0.3,
		},
	},
}

// TemplatesFor returns the ordered template variants for a phase.
func TemplatesFor(phase domain.PhaseType) []SessionTemplate {
	return catalog[phase]
}

// levelScale adjusts template difficulty per runner level; this single
// table replaces per-level catalog copies.
type levelScale struct {
	RepFactor    float64
	IntensityCap int
}

func scaleFor(level domain.Level) levelScale {
	switch level {
	case domain.LevelBeginner:
		return levelScale{RepFactor: 0.8, IntensityCap: 3}
	case domain.LevelAdvanced:
		return levelScale{RepFactor: 1.2, IntensityCap: 4}
	default:
		return levelScale{RepFactor: 1.0, IntensityCap: 4}
	}
}
