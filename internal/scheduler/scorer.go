package scheduler

import (
	"math"

	"github.com/imtheyoyo/plan-course/internal/domain"
)

// Minimum rest days between ordered pairs of hard-session categories.
// Lookups fall back to one day for uncatalogued pairs.
var minGapDays = map[[2]domain.SessionCategory]int{
	{domain.CategoryVMA, domain.CategoryVMA}:             2,
	{domain.CategoryVMA, domain.CategoryThreshold}:       1,
	{domain.CategoryThreshold, domain.CategoryVMA}:       1,
	{domain.CategoryThreshold, domain.CategoryThreshold}: 1,
}

const testMinGap = 2

// minGap returns the minimum day gap required between a placed session of
// category a and a new session of category b. Tests demand two days on
// either side.
func minGap(a, b domain.SessionCategory) int {
	if a == domain.CategoryTest || b == domain.CategoryTest {
		return testMinGap
	}
	if gap, ok := minGapDays[[2]domain.SessionCategory{a, b}]; ok {
		return gap
	}
	return 1
}

// Preferred days by category: VMA work early in the week, threshold work
// midweek.
var preferredDays = map[domain.SessionCategory][]domain.Weekday{
	domain.CategoryVMA:       {domain.Tuesday, domain.Wednesday},
	domain.CategoryThreshold: {domain.Wednesday, domain.Thursday},
}

// ScorePlacement rates putting session s on day given the sessions placed
// so far and the current fatigue state. Higher is better; the caller
// breaks ties by day iteration order.
func ScorePlacement(s *domain.Session, day domain.Weekday, placed []*domain.Session, fatigue domain.FatigueState) float64 {
	score := 100.0
	hard := isHard(s)

	if hard {
		switch f := fatigue[day]; {
		case f >= ExhaustedThreshold:
			score -= 40
		case f >= TiredThreshold:
			score -= 20
		case f < FreshThreshold:
			score += 10
		}
	}

	if prev := lastHardBefore(placed, day); prev != nil && hard {
		gap := int(day - prev.Day)
		switch need := minGap(prev.Category, s.Category); {
		case gap < need:
			score -= 30
		case gap == need:
			score -= 10
		default:
			score += 5
		}
	}

	if hard {
		for _, other := range placed {
			if !other.Day.Valid() || !isHard(other) {
				continue
			}
			if other.Day == day-1 || other.Day == day+1 {
				score -= 25
			}
		}
	}

	if s.Category == domain.CategoryTest {
		if day == domain.Wednesday || day == domain.Thursday {
			score += 15
		}
		if prev := sessionOn(placed, day-1); prev != nil && prev.Category == domain.CategoryLongRun {
			score -= 20
		}
	}

	for _, d := range preferredDays[s.Category] {
		if d == day {
			score += 10
		}
	}

	if hard && day == domain.Monday {
		score -= 5
	}

	if gapVarianceIncrease(placed, day) > 2 {
		score -= 10
	}

	return score
}

func isHard(s *domain.Session) bool {
	return s.Intensity >= 3 || s.IsTest
}

func lastHardBefore(placed []*domain.Session, day domain.Weekday) *domain.Session {
	var last *domain.Session
	for _, s := range placed {
		if !s.Day.Valid() || s.Day >= day || !isHard(s) {
			continue
		}
		if last == nil || s.Day > last.Day {
			last = s
		}
	}
	return last
}

func sessionOn(placed []*domain.Session, day domain.Weekday) *domain.Session {
	// day can be Unassigned when the caller probes day-1 off Monday;
	// that must never match an unplaced session.
	if !day.Valid() {
		return nil
	}
	for _, s := range placed {
		if s.Day == day {
			return s
		}
	}
	return nil
}

// gapVarianceIncrease measures how much adding a session on day would
// unbalance the spacing between training days, relative to the current
// placement.
func gapVarianceIncrease(placed []*domain.Session, day domain.Weekday) float64 {
	var days []int
	for _, s := range placed {
		if s.Day.Valid() {
			days = append(days, int(s.Day))
		}
	}
	before := gapVariance(days)
	after := gapVariance(append(days, int(day)))
	return after - before
}

func gapVariance(days []int) float64 {
	if len(days) < 3 {
		return 0
	}
	sorted := make([]int, len(days))
	copy(sorted, days)
	for i := 1; i < len(sorted); i++ {
		for j := i; j > 0 && sorted[j] < sorted[j-1]; j-- {
			sorted[j], sorted[j-1] = sorted[j-1], sorted[j]
		}
	}
	gaps := make([]float64, 0, len(sorted)-1)
	var mean float64
	for i := 1; i < len(sorted); i++ {
		g := float64(sorted[i] - sorted[i-1])
		gaps = append(gaps, g)
		mean += g
	}
	mean /= float64(len(gaps))
	var variance float64
	for _, g := range gaps {
		variance += math.Pow(g-mean, 2)
	}
	return variance / float64(len(gaps))
}
