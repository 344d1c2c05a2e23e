// Package scheduler assigns a week's generated sessions to weekdays under
// recovery-spacing rules, guided by a simulated day-by-day fatigue score.
package scheduler

import "github.com/imtheyoyo/plan-course/internal/domain"

// Fatigue thresholds on the simulated scale.
const (
	FreshThreshold     = 30.0
	TiredThreshold     = 60.0
	ExhaustedThreshold = 100.0
)

// Fatigue points added by a session of intensity 1-4.
var intensityPoints = [5]float64{0, 10, 15, 35, 50}

// Amplification applied when load lands on an already-tired day.
const tiredAmplification = 1.2

// Recovery per day without a session; a day outside the user's available
// days recovers more than an available-but-unused rest day.
const (
	offDayRecovery  = 20.0
	restDayRecovery = 12.0
	dailyDecay      = 5.0
)

// Simulate recomputes the week's fatigue state from scratch for the
// currently placed sessions. It is a pure function of the placement:
// unplaced sessions do not contribute.
func Simulate(sessions []*domain.Session, req domain.PlanRequest) domain.FatigueState {
	var state domain.FatigueState
	byDay := make(map[domain.Weekday]*domain.Session, len(sessions))
	for _, s := range sessions {
		if s.Day.Valid() {
			byDay[s.Day] = s
		}
	}

	var fatigue float64
	for day := domain.Monday; day <= domain.Sunday; day++ {
		if s, ok := byDay[day]; ok {
			points := intensityPoints[clampIntensity(s.Intensity)]
			if fatigue > TiredThreshold {
				points *= tiredAmplification
			}
			fatigue += points
		} else if req.HasTrainingDay(day) {
			fatigue -= restDayRecovery
		} else {
			fatigue -= offDayRecovery
		}
		fatigue -= dailyDecay
		if fatigue < 0 {
			fatigue = 0
		}
		state[day] = fatigue
	}
	return state
}

func clampIntensity(i int) int {
	if i < 1 {
		return 1
	}
	if i > 4 {
		return 4
	}
	return i
}
