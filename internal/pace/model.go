// Package pace converts a single fitness index (VDOT) into training paces
// and race predictions using the Daniels–Gilbert oxygen-uptake model.
package pace

import (
	"fmt"
	"math"
	"time"

	"github.com/imtheyoyo/plan-course/internal/domain"
)

// Supported fitness index range. Outside it the model substitutes the
// default pace table rather than failing.
const (
	MinVDOT = 20.0
	MaxVDOT = 90.0
)

// Fraction of VO2max sustained in each training zone.
var zoneFractions = map[domain.Zone]float64{
	domain.ZoneEasyLow:   0.62,
	domain.ZoneEasyHigh:  0.70,
	domain.ZoneMarathon:  0.81,
	domain.ZoneThreshold: 0.88,
	domain.ZoneInterval:  0.97,
}

// Daniels–Gilbert quadratic: VO2(v) = qc + qb·v + qa·v², v in m/min.
const (
	qa = 0.000104
	qb = 0.182258
	qc = -4.60
)

// Duration-dependent fraction of VO2max sustainable for t minutes.
const (
	fBase  = 0.8
	fSlowA = 0.1894393
	fSlowK = 0.012778
	fFastA = 0.2989558
	fFastK = 0.1932605
)

// Cubic race-time model fitted at VDOT 50 (minutes as a function of km),
// scaled linearly by 50/vdot for other fitness levels.
const (
	ct3 = -0.000581
	ct2 = 0.03672
	ct1 = 3.631
)

// Repetition pace runs 6% faster than interval pace at the velocity level.
const repetitionVelocityGain = 1.06

// ForVDOT derives the full pace set for a fitness index. An out-of-range
// index is replaced by cfg.DefaultVDOT; the substitution is reported as a
// warning wrapping domain.ErrInvalidFitnessIndex, never as a failure.
func ForVDOT(vdot, raceDistanceKm float64, cfg domain.Config) (domain.PaceSet, []error) {
	var warnings []error
	if vdot < MinVDOT || vdot > MaxVDOT || math.IsNaN(vdot) {
		warnings = append(warnings,
			fmt.Errorf("%w: %.1f not in [%.0f, %.0f], using default table", domain.ErrInvalidFitnessIndex, vdot, MinVDOT, MaxVDOT))
		vdot = cfg.DefaultVDOT
	}

	set := domain.PaceSet{
		EasyLow:   zonePace(vdot, domain.ZoneEasyLow),
		EasyHigh:  zonePace(vdot, domain.ZoneEasyHigh),
		Marathon:  zonePace(vdot, domain.ZoneMarathon),
		Threshold: zonePace(vdot, domain.ZoneThreshold),
		Interval:  zonePace(vdot, domain.ZoneInterval),
	}
	set.Repetition = scaleVelocity(set.Interval, repetitionVelocityGain)
	set.Race = RacePace(vdot, raceDistanceKm)

	warnings = append(warnings, Validate(set)...)
	return set, warnings
}

// FromPerformance computes the fitness index from a known race result,
// clamped into the supported range.
func FromPerformance(p domain.Performance) (float64, error) {
	if p.DistanceKm <= 0 || p.Duration <= 0 {
		return 0, fmt.Errorf("%w: non-computable performance %.2f km in %s", domain.ErrInvalidFitnessIndex, p.DistanceKm, p.Duration)
	}
	minutes := p.Duration.Minutes()
	velocity := p.DistanceKm * 1000 / minutes
	vo2 := qc + qb*velocity + qa*velocity*velocity
	frac := durationFraction(minutes)
	if frac <= 0 {
		return 0, fmt.Errorf("%w: degenerate duration fraction", domain.ErrInvalidFitnessIndex)
	}
	return clamp(vo2/frac, MinVDOT, MaxVDOT), nil
}

// FromSixMinTest derives the fitness index from the distance covered in a
// 6-minute maximal-effort test.
func FromSixMinTest(distanceKm float64) (float64, error) {
	return FromPerformance(domain.Performance{DistanceKm: distanceKm, Duration: 6 * time.Minute})
}

// RacePace predicts the per-kilometer race pace for a distance: estimate
// the finish time with the cubic model, derive the sustainable VO2
// fraction for that duration, invert to velocity.
func RacePace(vdot, distanceKm float64) float64 {
	if vdot <= 0 || distanceKm <= 0 {
		return 0
	}
	minutes := PredictTime(vdot, distanceKm).Minutes()
	target := vdot * durationFraction(minutes)
	v := velocityForVO2(target)
	if v <= 0 {
		return 0
	}
	return 60000 / v
}

// PredictTime estimates the finishing time for a distance at a fitness
// level using the cubic time model.
func PredictTime(vdot, distanceKm float64) time.Duration {
	if vdot <= 0 || distanceKm <= 0 {
		return 0
	}
	t50 := ct3*math.Pow(distanceKm, 3) + ct2*distanceKm*distanceKm + ct1*distanceKm
	minutes := t50 * 50 / vdot
	return time.Duration(minutes * float64(time.Minute))
}

// Validate checks the monotonic pace ordering the rest of the planner
// assumes: repetition < interval < threshold < marathon < easy-high <
// easy-low (seconds per km, smaller is faster). Violations are a quality
// signal, not a blocking error.
func Validate(set domain.PaceSet) []error {
	ordered := []struct {
		name string
		pace float64
	}{
		{"repetition", set.Repetition},
		{"interval", set.Interval},
		{"threshold", set.Threshold},
		{"marathon", set.Marathon},
		{"easy-high", set.EasyHigh},
		{"easy-low", set.EasyLow},
	}
	var violations []error
	for i := 1; i < len(ordered); i++ {
		prev, cur := ordered[i-1], ordered[i]
		if prev.pace == 0 || cur.pace == 0 {
			continue
		}
		if prev.pace >= cur.pace {
			violations = append(violations,
				fmt.Errorf("pace ordering violated: %s (%.0f s/km) should be faster than %s (%.0f s/km)",
					prev.name, prev.pace, cur.name, cur.pace))
		}
	}
	return violations
}

// Format renders a pace in m:ss per km, or "N/A" for a zero pace.
func Format(secPerKm float64) string {
	if secPerKm <= 0 {
		return "N/A"
	}
	total := int(math.Round(secPerKm))
	return fmt.Sprintf("%d:%02d/km", total/60, total%60)
}

func zonePace(vdot float64, zone domain.Zone) float64 {
	v := velocityForVO2(vdot * zoneFractions[zone])
	if v <= 0 {
		return 0
	}
	return 60000 / v
}

// velocityForVO2 inverts the quadratic VO2/velocity relation. A negative
// discriminant resolves to zero velocity, propagated as an N/A pace.
func velocityForVO2(vo2 float64) float64 {
	disc := qb*qb - 4*qa*(qc-vo2)
	if disc < 0 {
		return 0
	}
	return (-qb + math.Sqrt(disc)) / (2 * qa)
}

// scaleVelocity speeds up a pace by a velocity factor, reconverting
// through the underlying velocity.
func scaleVelocity(secPerKm, factor float64) float64 {
	if secPerKm <= 0 || factor <= 0 {
		return 0
	}
	return secPerKm / factor
}

func durationFraction(minutes float64) float64 {
	if minutes <= 0 {
		return 0
	}
	return fBase + fSlowA*math.Exp(-fSlowK*minutes) + fFastA*math.Exp(-fFastK*minutes)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
