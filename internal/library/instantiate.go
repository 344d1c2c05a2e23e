package library

import (
	"fmt"
	"math"

	"github.com/google/uuid"
	"github.com/imtheyoyo/plan-course/internal/domain"
	"github.com/imtheyoyo/plan-course/internal/pace"
)

// Instantiate turns a template into a concrete, unplaced session for a
// progression index (0-2) and runner level. The structured descriptor is
// the source of truth; the segment text is derived from it once here.
func Instantiate(tmpl SessionTemplate, paces domain.PaceSet, progression int, level domain.Level, cfg domain.Config) *domain.Session {
	if progression < 0 {
		progression = 0
	}
	if progression > 2 {
		progression = 2
	}
	scale := scaleFor(level)

	reps := int(math.Round(float64(tmpl.Reps[progression]) * scale.RepFactor))
	if reps < 1 {
		reps = 1
	}
	intensity := tmpl.Intensity
	if intensity > scale.IntensityCap {
		intensity = scale.IntensityCap
	}

	desc := &domain.WorkoutDescriptor{
		WarmupMin:      tmpl.WarmupMin,
		Reps:           reps,
		RepDistanceKm:  tmpl.RepDistanceKm,
		RepDurationMin: tmpl.RepDurationMin,
		RecoveryKm:     tmpl.RecoveryKm,
		RecoveryMin:    tmpl.RecoveryMin,
		CooldownMin:    tmpl.CooldownMin,
		Zone:           tmpl.Zone,
	}

	return &domain.Session{
		ID:         uuid.New().String(),
		Type:       tmpl.Label,
		Category:   tmpl.Category,
		Intensity:  intensity,
		Structure:  RenderStructure(desc, paces),
		Descriptor: desc,
		DistanceKm: EstimateDistance(desc, paces, cfg),
		Day:        domain.Unassigned,
	}
}

// RenderStructure produces the human-readable segments for a descriptor.
// The text is display-only and never parsed back.
func RenderStructure(desc *domain.WorkoutDescriptor, paces domain.PaceSet) []domain.Segment {
	var segments []domain.Segment
	if desc.WarmupMin > 0 {
		segments = append(segments, domain.Segment{
			Name: "warm-up",
			Text: fmt.Sprintf("%d min easy (%s)", desc.WarmupMin, pace.Format(paces.EasyLow)),
		})
	}

	zonePace := paces.ForZone(desc.Zone)
	var main string
	switch {
	case desc.RepDistanceKm > 0 && desc.Reps > 1:
		main = fmt.Sprintf("%d x %s at %s", desc.Reps, formatKm(desc.RepDistanceKm), pace.Format(zonePace))
	case desc.RepDistanceKm > 0:
		main = fmt.Sprintf("%s at %s", formatKm(desc.RepDistanceKm), pace.Format(zonePace))
	case desc.RepDurationMin > 0 && desc.Reps > 1:
		main = fmt.Sprintf("%d x %s at %s", desc.Reps, formatMin(desc.RepDurationMin), pace.Format(zonePace))
	case desc.RepDurationMin > 0:
		main = fmt.Sprintf("%s at %s", formatMin(desc.RepDurationMin), pace.Format(zonePace))
	}
	if main != "" {
		segments = append(segments, domain.Segment{Name: "main set", Text: main})
	}

	if desc.Reps > 1 {
		switch {
		case desc.RecoveryKm > 0:
			segments = append(segments, domain.Segment{
				Name: "recovery",
				Text: fmt.Sprintf("%s jog between reps", formatKm(desc.RecoveryKm)),
			})
		case desc.RecoveryMin > 0:
			segments = append(segments, domain.Segment{
				Name: "recovery",
				Text: fmt.Sprintf("%s jog between reps", formatMin(desc.RecoveryMin)),
			})
		}
	}

	if desc.CooldownMin > 0 {
		segments = append(segments, domain.Segment{
			Name: "cool-down",
			Text: fmt.Sprintf("%d min easy (%s)", desc.CooldownMin, pace.Format(paces.EasyLow)),
		})
	}
	return segments
}

// EstimateDistance computes a session's distance from its descriptor:
// warm-up and cool-down minutes via the easy-low pace, work bouts via the
// descriptor zone's pace, recovery jogs via the easy-high pace or the
// configured fallback distance. The result is floored at cfg.MinSessionKm
// so an empty descriptor still renders something.
func EstimateDistance(desc *domain.WorkoutDescriptor, paces domain.PaceSet, cfg domain.Config) float64 {
	var km float64

	km += minutesToKm(float64(desc.WarmupMin), paces.EasyLow)
	km += minutesToKm(float64(desc.CooldownMin), paces.EasyLow)

	reps := desc.Reps
	if reps < 1 {
		reps = 1
	}
	switch {
	case desc.RepDistanceKm > 0:
		km += float64(reps) * desc.RepDistanceKm
	case desc.RepDurationMin > 0:
		km += float64(reps) * minutesToKm(desc.RepDurationMin, paces.ForZone(desc.Zone))
	}

	if reps > 1 {
		switch {
		case desc.RecoveryKm > 0:
			km += float64(reps-1) * desc.RecoveryKm
		case desc.RecoveryMin > 0:
			km += float64(reps-1) * minutesToKm(desc.RecoveryMin, paces.EasyHigh)
		default:
			km += float64(reps-1) * cfg.RecoveryFallbackKm
		}
	}

	if km < cfg.MinSessionKm {
		km = cfg.MinSessionKm
	}
	return math.Round(km*10) / 10
}

func minutesToKm(minutes, secPerKm float64) float64 {
	if minutes <= 0 || secPerKm <= 0 {
		return 0
	}
	return minutes * 60 / secPerKm
}

func formatKm(km float64) string {
	if km < 1 {
		return fmt.Sprintf("%dm", int(math.Round(km*1000)))
	}
	if km == math.Trunc(km) {
		return fmt.Sprintf("%dkm", int(km))
	}
	return fmt.Sprintf("%.1fkm", km)
}

func formatMin(minutes float64) string {
	if minutes < 1 {
		return fmt.Sprintf("%ds", int(math.Round(minutes*60)))
	}
	if minutes == math.Trunc(minutes) {
		return fmt.Sprintf("%d min", int(minutes))
	}
	return fmt.Sprintf("%.1f min", minutes)
}
