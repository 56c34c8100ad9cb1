package advisory

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"google.golang.org/genai"

	"silentvoices/internal/content"
	"silentvoices/internal/types"
)

// failingGenerator simulates a transport/service failure on every call.
type failingGenerator struct{}

func (failingGenerator) GenerateContent(context.Context, string, []*genai.Content, *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	return nil, errors.New("quota exceeded")
}

// cannedGenerator returns a fixed text response.
type cannedGenerator struct {
	text string
}

func (g cannedGenerator) GenerateContent(context.Context, string, []*genai.Content, *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Parts: []*genai.Part{{Text: g.text}}},
		}},
	}, nil
}

func testGemini(gen contentGenerator) *Gemini {
	return &Gemini{
		gen:    gen,
		models: DefaultModels(),
		logger: zap.NewNop(),
		pick:   func(n int) int { return 0 },
	}
}

func someHistory() ([]types.CheckIn, []types.JournalEntry) {
	checkIns := []types.CheckIn{{Mood: 5}, {Mood: 6}, {Mood: 7}}
	journals := []types.JournalEntry{{Content: "a reflection"}}
	return checkIns, journals
}

func TestAnalyzePatternsLowDataDefault(t *testing.T) {
	g := testGemini(failingGenerator{})

	// Below three check-ins and one journal entry the service is never
	// consulted; the low-data default comes back even though the
	// generator would fail.
	res := g.AnalyzePatterns(context.Background(), []types.CheckIn{{Mood: 5}}, nil)
	assert.Equal(t, lowDataInsight, res.Insight)
	assert.Empty(t, res.Action)
}

func TestAnalyzePatternsFailureDefault(t *testing.T) {
	g := testGemini(failingGenerator{})
	checkIns, journals := someHistory()

	res := g.AnalyzePatterns(context.Background(), checkIns, journals)
	assert.Equal(t, failureInsight, res.Insight)
	assert.Equal(t, failureAction, res.Action)
	assert.Equal(t, failureTarget, res.Target)
}

func TestAnalyzePatternsParsesResponse(t *testing.T) {
	g := testGemini(cannedGenerator{text: `{"insight":"Mondays are hard","suggestion":"Call a friend","actionType":"home"}`})
	checkIns, journals := someHistory()

	res := g.AnalyzePatterns(context.Background(), checkIns, journals)
	assert.Equal(t, "Mondays are hard", res.Insight)
	assert.Equal(t, "Call a friend", res.Action)
	assert.Equal(t, "home", res.Target)
}

func TestAnalyzePatternsMalformedResponseFallsBack(t *testing.T) {
	g := testGemini(cannedGenerator{text: "not json at all"})
	checkIns, journals := someHistory()

	res := g.AnalyzePatterns(context.Background(), checkIns, journals)
	assert.Equal(t, failureInsight, res.Insight)
}

func TestGetGuidanceFallsBack(t *testing.T) {
	g := testGemini(failingGenerator{})
	got := g.GetGuidance(context.Background(), "how do I handle tonight", types.RoleAddiction)
	assert.Equal(t, failureGuidance, got)
}

func TestGetGuidancePassesThrough(t *testing.T) {
	g := testGemini(cannedGenerator{text: "Start with one safe step."})
	got := g.GetGuidance(context.Background(), "q", types.RoleRecovery)
	assert.Equal(t, "Start with one safe step.", got)
}

func TestGenerateAffirmationFallsBackToLocalPool(t *testing.T) {
	g := testGemini(failingGenerator{})
	got := g.GenerateAffirmation(context.Background(), types.RoleRecovery)
	assert.Contains(t, content.Affirmations, got)
}

func TestGenerateImageReturnsNilOnFailure(t *testing.T) {
	g := testGemini(failingGenerator{})
	assert.Nil(t, g.GenerateImage(context.Background(), "a quiet shoreline", "1:1"))
}

func TestGenerateSpeechReturnsNilOnFailure(t *testing.T) {
	g := testGemini(failingGenerator{})
	assert.Nil(t, g.GenerateSpeech(context.Background(), "you are doing well"))
}

func TestSearchSupportFallsBack(t *testing.T) {
	g := testGemini(failingGenerator{})
	res := g.SearchSupport(context.Background(), "meetings near me")
	assert.Equal(t, failureSearch, res.Text)
	assert.Empty(t, res.Sources)
}

func TestOfflineServiceAlwaysFallsBack(t *testing.T) {
	svc := NewOffline()
	ctx := context.Background()

	res := svc.AnalyzePatterns(ctx, nil, nil)
	assert.Equal(t, lowDataInsight, res.Insight)

	checkIns, journals := someHistory()
	res = svc.AnalyzePatterns(ctx, checkIns, journals)
	assert.Equal(t, failureInsight, res.Insight)

	assert.Equal(t, failureGuidance, svc.GetGuidance(ctx, "q", types.RoleAddiction))
	assert.Contains(t, content.Affirmations, svc.GenerateAffirmation(ctx, types.RoleAddiction))
	assert.Nil(t, svc.GenerateImage(ctx, "p", "1:1"))
	assert.Nil(t, svc.GenerateSpeech(ctx, "t"))
	assert.Equal(t, failureSearch, svc.SearchSupport(ctx, "q").Text)
}

func TestModelsWithDefaults(t *testing.T) {
	m := Models{Pro: "custom-pro"}.withDefaults()
	require.Equal(t, "custom-pro", m.Pro)
	assert.Equal(t, DefaultModels().Flash, m.Flash)
	assert.Equal(t, DefaultModels().Voice, m.Voice)
}
