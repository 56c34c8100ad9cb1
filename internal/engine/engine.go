// Package engine is the recovery state engine: it owns the user profile,
// the check-in and journal ledgers, and the routine checklist, and it is
// the only writer of the derived fields (resilience score, risk level,
// lighthouse eligibility).
//
// Every mutation runs to completion as a single atomic reaction to one
// user action: apply the change, recompute the derived fields, run risk
// assessment (and milestone detection on check-ins), then persist every
// record whose value changed. Reads never mutate.
//
// Persistence failures do not fail mutations: the in-memory state stays
// authoritative for the session and the failure is logged.
package engine

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"silentvoices/internal/content"
	"silentvoices/internal/milestone"
	"silentvoices/internal/notify"
	"silentvoices/internal/risk"
	"silentvoices/internal/store"
	"silentvoices/internal/types"
)

// User-facing messages raised by mutations.
const (
	msgRedStatus       = "Trust Bubble notified: Support is on standby."
	msgLessonComplete  = "Lesson Completed! Resilience +5"
	msgSelfCareLogged  = "Self-Care Logged. Your stability is your strength."
	msgJournalSaved    = "Reflection Saved to the Vault."
	welcomeBackGapDays = 2
)

// CheckInInput carries the user-entered fields of a check-in submission.
// The engine assigns id and timestamp.
type CheckInInput struct {
	Mood               int
	Notes              string
	Cravings           types.Craving
	Triggers           []string
	FocusArea          types.FocusArea
	BoundaryMaintained *bool
	InteractionQuality types.InteractionQuality
	SelfCareCompleted  *bool
}

// Engine owns the four records and applies all mutations.
type Engine struct {
	store    *store.RecordStore
	notifier *notify.Dispatcher
	logger   *zap.Logger
	riskCfg  risk.Config
	now      func() time.Time
	newID    func() string

	profile  *types.UserProfile
	checkIns []types.CheckIn // newest first
	journals []types.JournalEntry
	routine  []types.RoutineItem
}

// Option customizes an Engine; used by tests to pin time and ids.
type Option func(*Engine)

// WithClock overrides the wall clock.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithIDSource overrides id generation.
func WithIDSource(newID func() string) Option {
	return func(e *Engine) { e.newID = newID }
}

// WithRiskConfig overrides the risk scoring constants.
func WithRiskConfig(cfg risk.Config) Option {
	return func(e *Engine) { e.riskCfg = cfg }
}

// New builds an engine over the given store and notifier. Call Load
// before using it.
func New(st *store.RecordStore, notifier *notify.Dispatcher, logger *zap.Logger, opts ...Option) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	if notifier == nil {
		notifier = notify.NewDispatcher(notify.DefaultTTL)
	}
	e := &Engine{
		store:    st,
		notifier: notifier,
		logger:   logger,
		riskCfg:  risk.DefaultConfig(),
		now:      time.Now,
		newID:    uuid.NewString,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Load restores state from the record store. Each record is restored
// independently; an absent or corrupt record falls back to its default
// (empty ledgers, freshly seeded routine, no profile) without touching
// the others. The routine seed is persisted immediately so the catalog
// exists from first run onward.
func (e *Engine) Load() {
	snap := e.store.Load()
	e.profile = snap.Profile
	e.checkIns = snap.CheckIns
	e.journals = snap.Journals

	if snap.Routine != nil {
		e.routine = snap.Routine
	} else {
		e.routine = content.DefaultRoutine()
		e.persist(store.RecordRoutine, e.routine)
	}

	if e.profile != nil {
		e.refreshRisk()
		e.maybeWelcomeBack()
	}
}

// maybeWelcomeBack raises an encouragement when an established user
// returns after a gap of more than two days.
func (e *Engine) maybeWelcomeBack() {
	if len(e.checkIns) == 0 || e.profile.TotalSoberDays <= 10 {
		return
	}
	gap := e.now().Sub(e.checkIns[0].CreatedAt)
	if gap > welcomeBackGapDays*24*time.Hour {
		e.notifier.Show(fmt.Sprintf(
			"Welcome back, %s. Remember: your %d wins haven't gone away. Resilience is built on returning.",
			e.profile.Name, e.profile.TotalSoberDays))
	}
}

// HasProfile reports whether onboarding has produced a profile.
func (e *Engine) HasProfile() bool {
	return e.profile != nil
}

// CreateProfile seeds a new profile for the given role: resilience 100,
// zero counters, green status, LOW risk, and role-dependent reasons and
// spend/hours baselines. Replaces any existing profile.
func (e *Engine) CreateProfile(role types.Role, name string) types.UserProfile {
	spend, hours := content.BaselinesForRole(role)
	p := &types.UserProfile{
		ID:                  e.newID(),
		Role:                role,
		Name:                name,
		OnboardingCompleted: true,
		JoinDate:            e.now(),
		ResilienceScore:     100,
		CurrentStatus:       types.StatusGreen,
		RiskLevel:           types.RiskLow,
		DailySpend:          spend,
		DailyHours:          hours,
		ReasonsToStaySober:  content.ReasonsForRole(role),
		IsVaultLocked:       true,
		Connections:         []types.TrustConnection{},
		CompletedLessons:    []string{},
	}
	e.profile = p
	e.persist(store.RecordProfile, e.profile)
	e.logger.Info("profile created",
		zap.String("role", string(role)), zap.String("id", p.ID))
	return *p
}

// RecordCheckIn appends a check-in and updates the profile: check-in
// days +1, sober days +1 for accruing roles, resilience recomputed,
// lighthouse eligibility (sticky at 30 sober days), milestone detection,
// and a fresh risk assessment. Returns the updated profile and the
// milestone reached, if any. The milestone fires once; the caller
// presents and dismisses it.
func (e *Engine) RecordCheckIn(in CheckInInput) (types.UserProfile, *types.Milestone) {
	now := e.now()
	ci := types.CheckIn{
		ID:                 e.newID(),
		CreatedAt:          now,
		Mood:               in.Mood,
		Notes:              in.Notes,
		Cravings:           in.Cravings,
		Triggers:           in.Triggers,
		FocusArea:          in.FocusArea,
		BoundaryMaintained: in.BoundaryMaintained,
		InteractionQuality: in.InteractionQuality,
		SelfCareCompleted:  in.SelfCareCompleted,
	}
	e.checkIns = append([]types.CheckIn{ci}, e.checkIns...)
	e.persist(store.RecordCheckIns, e.checkIns)

	if e.profile == nil {
		return types.UserProfile{}, nil
	}

	p := e.profile
	p.TotalCheckInDays++

	var reached *types.Milestone
	previous := p.TotalSoberDays
	if p.Role.AccruesSoberDays() {
		p.TotalSoberDays++
		reached = milestone.Detect(p.Role, previous, p.TotalSoberDays)
	}

	p.ResilienceScore = resilienceScore(p.TotalSoberDays, p.JoinDate, now)
	if p.TotalSoberDays >= 30 {
		p.IsLighthouse = true
	}
	p.RiskLevel = e.riskCfg.Assess(e.checkIns, e.routine, now)
	e.persist(store.RecordProfile, e.profile)

	if !p.Role.AccruesSoberDays() {
		e.notifier.Show(msgSelfCareLogged)
	}
	return *p, reached
}

// AddJournalEntry appends an immutable journal entry, newest first.
func (e *Engine) AddJournalEntry(text string, tags []string) types.JournalEntry {
	entry := types.JournalEntry{
		ID:        e.newID(),
		CreatedAt: e.now(),
		Content:   text,
		Tags:      tags,
	}
	e.journals = append([]types.JournalEntry{entry}, e.journals...)
	e.persist(store.RecordJournals, e.journals)
	e.notifier.Show(msgJournalSaved)
	return entry
}

// ToggleRoutine flips the completed flag of the item with the given id;
// unknown ids are a silent no-op. Risk is reassessed because routine
// adherence feeds the score.
func (e *Engine) ToggleRoutine(id string) {
	found := false
	for i := range e.routine {
		if e.routine[i].ID == id {
			e.routine[i].Completed = !e.routine[i].Completed
			found = true
			break
		}
	}
	if !found {
		return
	}
	e.persist(store.RecordRoutine, e.routine)
	e.refreshRisk()
}

// SetStatus overwrites the self-reported traffic-light status. A red
// status raises the standby-support notification.
func (e *Engine) SetStatus(s types.Status) {
	if e.profile == nil || !s.IsValid() {
		return
	}
	e.profile.CurrentStatus = s
	e.persist(store.RecordProfile, e.profile)
	if s == types.StatusRed {
		e.notifier.Show(msgRedStatus)
	}
}

// CompleteLesson records a finished lesson id. Already-completed ids
// are a silent no-op with no notification.
func (e *Engine) CompleteLesson(id string) {
	if e.profile == nil || e.profile.HasCompletedLesson(id) {
		return
	}
	e.profile.CompletedLessons = append(e.profile.CompletedLessons, id)
	e.persist(store.RecordProfile, e.profile)
	e.notifier.Show(msgLessonComplete)
}

// Reset erases the journey: all four records are deleted, in-memory
// state is cleared, and a fresh routine catalog is reseeded so the next
// session starts from first-run conditions.
func (e *Engine) Reset() error {
	keys := []string{
		store.RecordProfile,
		store.RecordCheckIns,
		store.RecordJournals,
		store.RecordRoutine,
	}
	for _, key := range keys {
		if err := e.store.Delete(key); err != nil {
			return fmt.Errorf("failed to reset record %s: %w", key, err)
		}
	}
	e.profile = nil
	e.checkIns = nil
	e.journals = nil
	e.routine = content.DefaultRoutine()
	e.persist(store.RecordRoutine, e.routine)
	e.notifier.Clear()
	e.logger.Info("journey reset")
	return nil
}

// refreshRisk reassesses risk and persists the profile if the level
// changed.
func (e *Engine) refreshRisk() {
	if e.profile == nil {
		return
	}
	level := e.riskCfg.Assess(e.checkIns, e.routine, e.now())
	if level != e.profile.RiskLevel {
		e.profile.RiskLevel = level
		e.persist(store.RecordProfile, e.profile)
	}
}

// persist writes one record, logging instead of failing: the in-memory
// state remains the source of truth for the session.
func (e *Engine) persist(key string, value interface{}) {
	if err := e.store.Save(key, value); err != nil {
		e.logger.Error("failed to persist record",
			zap.String("key", key), zap.Error(err))
	}
}

// resilienceScore computes min(100, round(soberDays/daysSinceJoin*100))
// with daysSinceJoin floored at one whole day.
func resilienceScore(soberDays int, joinDate, now time.Time) int {
	days := int(now.Sub(joinDate).Hours() / 24)
	if days < 1 {
		days = 1
	}
	score := int(float64(soberDays)/float64(days)*100 + 0.5)
	if score > 100 {
		score = 100
	}
	return score
}
