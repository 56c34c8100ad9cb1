// Package risk scores recent check-in history into a LOW/MEDIUM/HIGH
// early-warning classification.
//
// The scoring is a heuristic, not a clinical diagnosis: it looks for a
// declining mood trend paired with rising cravings, a neglected routine,
// and late-night activity. The point values and cutoffs are tunable
// configuration constants with no clinical derivation.
package risk

import (
	"time"

	"silentvoices/internal/types"
)

// Config holds the scoring constants. All values are plain heuristics;
// DefaultConfig matches the shipped behavior.
type Config struct {
	// Points added per fired signal.
	MoodCravingPoints int `yaml:"mood_craving_points"`
	RoutinePoints     int `yaml:"routine_points"`
	LateHourPoints    int `yaml:"late_hour_points"`

	// Classification cutoffs applied to the summed points.
	HighCutoff   int `yaml:"high_cutoff"`
	MediumCutoff int `yaml:"medium_cutoff"`

	// RoutineCompletionCutoff is the completed fraction below which the
	// routine-neglect signal fires.
	RoutineCompletionCutoff float64 `yaml:"routine_completion_cutoff"`

	// The late-night window: hour >= NightStartHour or hour <= NightEndHour.
	NightStartHour int `yaml:"night_start_hour"`
	NightEndHour   int `yaml:"night_end_hour"`

	// MinCheckIns is the history size below which assessment always
	// returns LOW. Window is how many recent check-ins are sampled.
	MinCheckIns int `yaml:"min_check_ins"`
	Window      int `yaml:"window"`
}

// DefaultConfig returns the shipped scoring constants.
func DefaultConfig() Config {
	return Config{
		MoodCravingPoints:       40,
		RoutinePoints:           30,
		LateHourPoints:          20,
		HighCutoff:              70,
		MediumCutoff:            40,
		RoutineCompletionCutoff: 0.5,
		NightStartHour:          23,
		NightEndHour:            4,
		MinCheckIns:             3,
		Window:                  5,
	}
}

// Assess classifies the current risk level from the check-in history
// (newest first, as the ledger stores it), the routine checklist, and
// the wall-clock time. Pure: no state is read or written beyond the
// arguments.
//
// Fewer than MinCheckIns check-ins always classifies LOW regardless of
// content.
func (c Config) Assess(checkIns []types.CheckIn, routine []types.RoutineItem, now time.Time) types.RiskLevel {
	if len(checkIns) < c.MinCheckIns {
		return types.RiskLow
	}

	points := 0

	// Sample the most recent check-ins and view them oldest to newest.
	window := checkIns
	if len(window) > c.Window {
		window = window[:c.Window]
	}
	oldest := window[len(window)-1]
	newest := window[0]

	moodDeclining := oldest.Mood > newest.Mood
	cravingsRising := oldest.Cravings.Score() < newest.Cravings.Score()
	if moodDeclining && cravingsRising {
		points += c.MoodCravingPoints
	}

	if completionRate(routine) < c.RoutineCompletionCutoff {
		points += c.RoutinePoints
	}

	hour := now.Hour()
	if hour >= c.NightStartHour || hour <= c.NightEndHour {
		points += c.LateHourPoints
	}

	switch {
	case points >= c.HighCutoff:
		return types.RiskHigh
	case points >= c.MediumCutoff:
		return types.RiskMedium
	default:
		return types.RiskLow
	}
}

// Assess classifies with the default configuration.
func Assess(checkIns []types.CheckIn, routine []types.RoutineItem, now time.Time) types.RiskLevel {
	return DefaultConfig().Assess(checkIns, routine, now)
}

// completionRate treats an empty checklist as fully complete: the
// neglect signal needs items to neglect.
func completionRate(routine []types.RoutineItem) float64 {
	if len(routine) == 0 {
		return 1
	}
	done := 0
	for _, item := range routine {
		if item.Completed {
			done++
		}
	}
	return float64(done) / float64(len(routine))
}
