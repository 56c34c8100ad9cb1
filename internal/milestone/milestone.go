// Package milestone detects when a sober-day count lands exactly on a
// celebrated threshold.
package milestone

import (
	"silentvoices/internal/content"
	"silentvoices/internal/types"
)

// Detect returns the milestone reached by moving from previousDays to
// newDays, or nil if none. At most one milestone fires per transition:
// the catalog entry whose day exactly equals newDays. Firing is a
// one-shot event; the caller presents and dismisses it exactly once.
//
// Roles that do not accrue sober days never reach a milestone.
func Detect(role types.Role, previousDays, newDays int) *types.Milestone {
	return DetectIn(content.Milestones, role, previousDays, newDays)
}

// DetectIn is Detect against an explicit catalog.
func DetectIn(catalog []types.Milestone, role types.Role, previousDays, newDays int) *types.Milestone {
	if !role.AccruesSoberDays() {
		return nil
	}
	if newDays <= previousDays {
		return nil
	}
	for i := range catalog {
		if catalog[i].Day == newDays {
			m := catalog[i]
			return &m
		}
	}
	return nil
}

// Next returns the first catalog milestone strictly above the current
// sober-day count, for "days to go" display. ok is false past the last
// threshold.
func Next(soberDays int) (types.Milestone, bool) {
	for _, m := range content.Milestones {
		if m.Day > soberDays {
			return m, true
		}
	}
	return types.Milestone{}, false
}
