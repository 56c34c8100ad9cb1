// Package types holds the shared domain model for SilentVoices: the user
// profile, check-in and journal records, the routine checklist, and the
// enumerations they share. JSON tags define the on-disk record shapes used
// by the store package.
package types

import (
	"fmt"
	"strings"
	"time"
)

// =============================================================================
// ENUMERATIONS
// =============================================================================

// Role identifies which recovery path the user is on.
type Role string

const (
	RoleAddiction    Role = "addiction"
	RoleRecovery     Role = "recovery"
	RoleFamilyFriend Role = "family_friend"
)

// IsValid reports whether r is a known role.
func (r Role) IsValid() bool {
	switch r {
	case RoleAddiction, RoleRecovery, RoleFamilyFriend:
		return true
	default:
		return false
	}
}

// AccruesSoberDays reports whether check-ins by this role add to the
// sober-day count. Supporters log self-care, not sobriety.
func (r Role) AccruesSoberDays() bool {
	return r != RoleFamilyFriend
}

// ParseRole normalizes user input into a Role.
func ParseRole(input string) (Role, error) {
	r := Role(strings.TrimSpace(strings.ToLower(input)))
	if !r.IsValid() {
		return "", fmt.Errorf("invalid role: %q", input)
	}
	return r, nil
}

// Status is the traffic-light status the user self-reports.
type Status string

const (
	StatusGreen Status = "green"
	StatusAmber Status = "amber"
	StatusRed   Status = "red"
)

// IsValid reports whether s is a known status.
func (s Status) IsValid() bool {
	switch s {
	case StatusGreen, StatusAmber, StatusRed:
		return true
	default:
		return false
	}
}

// ParseStatus normalizes user input into a Status.
func ParseStatus(input string) (Status, error) {
	s := Status(strings.TrimSpace(strings.ToLower(input)))
	if !s.IsValid() {
		return "", fmt.Errorf("invalid status: %q", input)
	}
	return s, nil
}

// RiskLevel is the heuristic early-warning classification derived from
// recent check-ins, routine adherence, and time of day. It is not a
// clinical diagnosis.
type RiskLevel string

const (
	RiskLow    RiskLevel = "LOW"
	RiskMedium RiskLevel = "MEDIUM"
	RiskHigh   RiskLevel = "HIGH"
)

// Craving is the optional craving intensity reported on a check-in.
// The zero value means the field was not reported.
type Craving string

const (
	CravingNone   Craving = "none"
	CravingMild   Craving = "mild"
	CravingStrong Craving = "strong"
)

// Score maps a craving to a numeric intensity. This is a total function:
// an unreported or unknown craving scores the same as "none".
func (c Craving) Score() int {
	switch c {
	case CravingMild:
		return 1
	case CravingStrong:
		return 2
	default:
		return 0
	}
}

// FocusArea records where a supporter's attention went during the day.
type FocusArea string

const (
	FocusMostlyMe   FocusArea = "mostly_me"
	FocusHalfHalf   FocusArea = "half_half"
	FocusMostlyThem FocusArea = "mostly_them"
)

// InteractionQuality records how an interaction with the loved one went.
type InteractionQuality string

const (
	InteractionPositive InteractionQuality = "positive"
	InteractionNeutral  InteractionQuality = "neutral"
	InteractionTense    InteractionQuality = "tense"
	InteractionNone     InteractionQuality = "none"
)

// RoutineCategory groups routine items for display.
type RoutineCategory string

const (
	CategoryMind       RoutineCategory = "mind"
	CategoryBody       RoutineCategory = "body"
	CategoryConnection RoutineCategory = "connection"
	CategoryRoutine    RoutineCategory = "routine"
)

// =============================================================================
// AGGREGATES
// =============================================================================

// TrustPermissions controls what a trust connection may see.
type TrustPermissions struct {
	ShareStatus     bool `json:"share_status"`
	ShareMilestones bool `json:"share_milestones"`
	ShareRoutine    bool `json:"share_routine"`
	ShareInsights   bool `json:"share_insights"`
}

// TrustConnection is a peer relationship with configurable sharing
// permissions. The engine stores these on the profile but exposes no
// operations on them beyond presence.
type TrustConnection struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Role        Role             `json:"role"`
	Permissions TrustPermissions `json:"permissions"`
	Status      Status           `json:"status"`
	RiskLevel   RiskLevel        `json:"risk_level,omitempty"`
}

// UserProfile is the single per-installation profile aggregate.
//
// ResilienceScore and RiskLevel are derived fields: they are recomputed
// inside engine mutations and must never be set directly by callers.
type UserProfile struct {
	ID                  string            `json:"id"`
	Role                Role              `json:"role"`
	Name                string            `json:"name"`
	IsPremium           bool              `json:"is_premium"`
	OnboardingCompleted bool              `json:"onboarding_completed"`
	JoinDate            time.Time         `json:"join_date"`
	ResilienceScore     int               `json:"resilience_score"`
	TotalSoberDays      int               `json:"total_sober_days"`
	TotalCheckInDays    int               `json:"total_check_in_days"`
	CurrentStatus       Status            `json:"current_status"`
	RiskLevel           RiskLevel         `json:"risk_level"`
	DailySpend          float64           `json:"daily_spend,omitempty"`
	DailyHours          float64           `json:"daily_hours,omitempty"`
	ReasonsToStaySober  []string          `json:"reasons_to_stay_sober"`
	IsLighthouse        bool              `json:"is_lighthouse"`
	IsVaultLocked       bool              `json:"is_vault_locked"`
	Connections         []TrustConnection `json:"connections"`
	CompletedLessons    []string          `json:"completed_lessons"`
}

// HasCompletedLesson reports whether the lesson id is already recorded.
func (p *UserProfile) HasCompletedLesson(id string) bool {
	for _, l := range p.CompletedLessons {
		if l == id {
			return true
		}
	}
	return false
}

// CheckIn is one daily check-in record. Immutable once created; the
// ledger keeps them newest first and never reorders or deletes.
//
// Mood is the only required signal. The remaining fields are optional
// and role-dependent; pointers distinguish "not reported" from a
// reported false.
type CheckIn struct {
	ID                 string             `json:"id"`
	CreatedAt          time.Time          `json:"created_at"`
	Mood               int                `json:"mood"`
	Notes              string             `json:"notes"`
	Cravings           Craving            `json:"cravings,omitempty"`
	Triggers           []string           `json:"triggers,omitempty"`
	FocusArea          FocusArea          `json:"focus_area,omitempty"`
	BoundaryMaintained *bool              `json:"boundary_maintained,omitempty"`
	InteractionQuality InteractionQuality `json:"interaction_quality,omitempty"`
	SelfCareCompleted  *bool              `json:"self_care_completed,omitempty"`
}

// JournalEntry is one free-text reflection. Same append-only,
// newest-first contract as CheckIn.
type JournalEntry struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Content   string    `json:"content"`
	Tags      []string  `json:"tags,omitempty"`
}

// RoutineItem is one entry in the fixed daily routine checklist. The
// catalog is seeded once at first run; only Completed ever changes.
type RoutineItem struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Category  RoutineCategory `json:"category"`
	Completed bool            `json:"completed"`
}

// Milestone is a static catalog entry describing a sober-day threshold
// worth celebrating. Read-only reference data.
type Milestone struct {
	Day     int    `json:"day"`
	Title   string `json:"title"`
	Science string `json:"science"`
	Message string `json:"message"`
	Reward  string `json:"reward"`
	Icon    string `json:"icon"`
}
