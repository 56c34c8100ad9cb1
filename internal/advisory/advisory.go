// Package advisory is the best-effort generative companion: pattern
// insight, deep guidance, affirmations, healing imagery, and spoken
// encouragement. Every operation has a deterministic local fallback and
// never returns an error — the core engine's correctness must not
// depend on this service in any way.
package advisory

import (
	"context"
	"math/rand"

	"silentvoices/internal/content"
	"silentvoices/internal/types"
)

// Insight is the result of pattern analysis. An empty Action means the
// service had no suggestion.
type Insight struct {
	Insight string `json:"insight"`
	Action  string `json:"action,omitempty"`
	Target  string `json:"target,omitempty"`
}

// SearchResult carries a grounded answer with its source URLs.
type SearchResult struct {
	Text    string
	Sources []string
}

// Service is the advisory capability consumed by the presentation layer.
// Implementations must be fire-and-forget safe: no call may block the
// mutation path or surface an error to the user.
type Service interface {
	// AnalyzePatterns looks for correlations in recent history. Degrades
	// to a fixed empathetic default below three check-ins and one
	// journal entry, and to a different fixed default on failure.
	AnalyzePatterns(ctx context.Context, checkIns []types.CheckIn, journals []types.JournalEntry) Insight

	// GetGuidance answers a free-form query in a role-aware way.
	GetGuidance(ctx context.Context, query string, role types.Role) string

	// GenerateAffirmation produces a short affirmation for the role,
	// falling back to a random local pick.
	GenerateAffirmation(ctx context.Context, role types.Role) string

	// GenerateImage returns encoded image bytes, or nil on failure.
	// There is no fallback content; callers must handle absence.
	GenerateImage(ctx context.Context, prompt, aspectRatio string) []byte

	// GenerateSpeech returns raw audio bytes, or nil on failure.
	GenerateSpeech(ctx context.Context, text string) []byte

	// SearchSupport runs a search-grounded query for support resources.
	SearchSupport(ctx context.Context, query string) SearchResult
}

// Fixed fallback values, one per operation.
const (
	lowDataInsight = "Continue logging your journey. As you share more, I'll help you spot the hidden rhythms in your recovery."

	failureInsight = "Every day you log is a data point for your future self. Keep showing up."
	failureAction  = "Review your reasons for staying sober in the Vault."
	failureTarget  = "wellness"

	failureGuidance = "Let's focus on one small, safe action you can take right now."

	failureSearch = "I couldn't reach the search network. Try checking the Recovery Phone Book."
)

func lowDataFallback() Insight {
	return Insight{Insight: lowDataInsight}
}

func failureFallback() Insight {
	return Insight{Insight: failureInsight, Action: failureAction, Target: failureTarget}
}

func localAffirmation(pick func(n int) int) string {
	return content.Affirmations[pick(len(content.Affirmations))]
}

// Offline is the Service used when no API key is configured: every call
// returns its local fallback immediately.
type Offline struct{}

// NewOffline returns the always-fallback service.
func NewOffline() Offline { return Offline{} }

func (Offline) AnalyzePatterns(_ context.Context, checkIns []types.CheckIn, journals []types.JournalEntry) Insight {
	if len(checkIns) < 3 && len(journals) < 1 {
		return lowDataFallback()
	}
	return failureFallback()
}

func (Offline) GetGuidance(context.Context, string, types.Role) string {
	return failureGuidance
}

func (Offline) GenerateAffirmation(context.Context, types.Role) string {
	return localAffirmation(rand.Intn)
}

func (Offline) GenerateImage(context.Context, string, string) []byte { return nil }

func (Offline) GenerateSpeech(context.Context, string) []byte { return nil }

func (Offline) SearchSupport(context.Context, string) SearchResult {
	return SearchResult{Text: failureSearch}
}
