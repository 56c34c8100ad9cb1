// Package content holds the static reference catalogs: the default
// routine checklist, the recovery milestone list, journal prompts,
// affirmations, lesson paths, and the resource library. Nothing here is
// user-mutable; the engine and the CLI read these as fixed data.
package content

import "silentvoices/internal/types"

// DefaultRoutine returns a fresh copy of the fixed routine catalog
// seeded on first run. Callers own the returned slice.
func DefaultRoutine() []types.RoutineItem {
	return []types.RoutineItem{
		{ID: "1", Name: "Meditate", Category: types.CategoryMind},
		{ID: "2", Name: "Go for a walk", Category: types.CategoryBody},
		{ID: "3", Name: "Drink water", Category: types.CategoryBody},
		{ID: "4", Name: "Read recovery text", Category: types.CategoryMind},
		{ID: "5", Name: "Help someone", Category: types.CategoryConnection},
		{ID: "6", Name: "Cold shower", Category: types.CategoryBody},
		{ID: "7", Name: "Call a friend", Category: types.CategoryConnection},
		{ID: "8", Name: "Daily reflection", Category: types.CategoryMind},
	}
}

// Milestones is the fixed ascending catalog of sober-day thresholds.
// Consulted by the milestone detector; never user-mutable.
var Milestones = []types.Milestone{
	{
		Day:     1,
		Title:   "The Courageous Leap",
		Science: "Blood levels of substances are dropping to zero. Dehydration is actively reversing.",
		Message: "You made the hardest choice a human can make: the choice to change. Today isn't about the next year; it's about the next hour. You are already winning.",
		Reward:  "Unlock: Emergency Safety Net widget",
		Icon:    "🚀",
	},
	{
		Day:     7,
		Title:   "The Physical Turning Point",
		Science: "Most physical withdrawal symptoms peak and recede. Liver enzymes stabilize, and REM sleep begins to normalize.",
		Message: "A full week. Your body is officially in 'Repair Mode.' If you're feeling foggy, that's your brain recalibrating dopamine levels. It's a sign of healing.",
		Reward:  "Unlock: Foundation Badge & Safe Place Finder",
		Icon:    "🧬",
	},
	{
		Day:     14,
		Title:   "The Clarity Window",
		Science: "The 'Brain Fog' begins to lift. Cognitive functions like focus and short-term memory show measurable improvement. Cortisol declines.",
		Message: "Two weeks in. The 'fog' is lifting. You might notice colors seem brighter or coffee tastes better. Enjoy these sensory wins—your reward system is coming back online.",
		Reward:  "Unlock: Pattern Spotting Dashboard",
		Icon:    "🌤️",
	},
	{
		Day:     30,
		Title:   "The New Baseline",
		Science: "A major psychological milestone. Your brain strengthens goal-directed pathways over impulse-driven ones.",
		Message: "One month. You've built a foundation. You are no longer just 'not using'; you are 'in recovery.' This month proves you have the tools for the hard days.",
		Reward:  "Eligibility: Lighthouse Peer Mentor & Digital Coin",
		Icon:    "⚓",
	},
}

// Affirmations is the local fallback pool used when the advisory
// service cannot generate one.
var Affirmations = []string{
	"I am worthy of a life filled with peace and health.",
	"One day at a time, I am building a future I can be proud of.",
	"My progress is not defined by perfection, but by persistence.",
	"I have the strength to navigate today's challenges.",
	"I am not my past; I am my possibilities.",
	"Taking care of myself is the best way to care for my loved ones.",
}

// ReasonsForRole returns the role-seeded default reasons-to-stay-sober.
// The user may edit these after profile creation.
func ReasonsForRole(role types.Role) []string {
	if role == types.RoleAddiction {
		return []string{
			"My family deserves the real me",
			"I want to wake up without guilt",
			"I have so much more to give",
		}
	}
	return []string{
		"I deserve my own peace",
		"I am choosing to respond, not react",
	}
}

// BaselinesForRole returns the default daily-spend and daily-hours
// baselines captured at onboarding. Non-zero only for the addiction role.
func BaselinesForRole(role types.Role) (spend, hours float64) {
	if role == types.RoleAddiction {
		return 25, 5
	}
	return 0, 0
}

// RoleLabel returns the display name for a role.
func RoleLabel(role types.Role) string {
	switch role {
	case types.RoleAddiction:
		return "Person in Addiction"
	case types.RoleRecovery:
		return "Person in Recovery"
	case types.RoleFamilyFriend:
		return "Family or Friend"
	default:
		return string(role)
	}
}

// JournalPrompts returns the reflective prompts for a role.
func JournalPrompts(role types.Role) []string {
	switch role {
	case types.RoleAddiction:
		return []string{
			"What felt heavy today that you managed to carry anyway?",
			"Identify one trigger you noticed and how it felt in your body.",
			"What is one small win you can celebrate tonight?",
		}
	case types.RoleRecovery:
		return []string{
			"How does your body feel today compared to when you were using?",
			"Write a thank-you note to the version of you from last month.",
			"Which part of your new routine is bringing you the most peace?",
		}
	default:
		return []string{
			"Identify one thing your loved one did today that was independent of your help.",
			"What are you doing today specifically for your own peace of mind?",
			"Describe a boundary you maintained today and how it felt.",
		}
	}
}

// HealthMilestone is a physiological recovery marker shown alongside
// the sober-day count.
type HealthMilestone struct {
	Days  int
	Label string
}

// HealthMilestones lists physiological markers in ascending day order.
var HealthMilestones = []HealthMilestone{
	{Days: 3, Label: "Blood sugar levels begin to stabilize"},
	{Days: 7, Label: "Sleep cycles start to normalize"},
	{Days: 14, Label: "Neural pathways begin basic recalibration"},
	{Days: 30, Label: "Liver enzyme stabilization window opens"},
	{Days: 90, Label: "Dopamine receptors show significant recovery"},
}
