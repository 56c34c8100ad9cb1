package engine

import "silentvoices/internal/types"

// Read-only views. Each returns a copy so callers cannot reach into the
// engine's state; all derived fields change only inside mutations.

// Profile returns a copy of the current profile, if one exists.
func (e *Engine) Profile() (types.UserProfile, bool) {
	if e.profile == nil {
		return types.UserProfile{}, false
	}
	return *e.profile, true
}

// CheckIns returns the check-in history, newest first.
func (e *Engine) CheckIns() []types.CheckIn {
	out := make([]types.CheckIn, len(e.checkIns))
	copy(out, e.checkIns)
	return out
}

// Journals returns the journal history, newest first.
func (e *Engine) Journals() []types.JournalEntry {
	out := make([]types.JournalEntry, len(e.journals))
	copy(out, e.journals)
	return out
}

// Routine returns the routine checklist in catalog order.
func (e *Engine) Routine() []types.RoutineItem {
	out := make([]types.RoutineItem, len(e.routine))
	copy(out, e.routine)
	return out
}

// RoutineCompletion returns completed and total item counts.
func (e *Engine) RoutineCompletion() (done, total int) {
	for _, item := range e.routine {
		if item.Completed {
			done++
		}
	}
	return done, len(e.routine)
}
