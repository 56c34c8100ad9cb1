package advisory

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"strings"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"silentvoices/internal/content"
	"silentvoices/internal/types"
)

// Models names the Gemini model per operation. Zero fields fall back to
// the defaults below.
type Models struct {
	Flash string `yaml:"flash"` // pattern analysis, search
	Pro   string `yaml:"pro"`   // deep guidance
	Lite  string `yaml:"lite"`  // affirmations
	Image string `yaml:"image"`
	TTS   string `yaml:"tts"`
	Voice string `yaml:"voice"`
}

// DefaultModels returns the shipped model selection.
func DefaultModels() Models {
	return Models{
		Flash: "gemini-3-flash-preview",
		Pro:   "gemini-3-pro-preview",
		Lite:  "gemini-flash-lite-latest",
		Image: "gemini-3-pro-image-preview",
		TTS:   "gemini-2.5-flash-preview-tts",
		Voice: "Kore",
	}
}

func (m Models) withDefaults() Models {
	d := DefaultModels()
	if m.Flash == "" {
		m.Flash = d.Flash
	}
	if m.Pro == "" {
		m.Pro = d.Pro
	}
	if m.Lite == "" {
		m.Lite = d.Lite
	}
	if m.Image == "" {
		m.Image = d.Image
	}
	if m.TTS == "" {
		m.TTS = d.TTS
	}
	if m.Voice == "" {
		m.Voice = d.Voice
	}
	return m
}

// contentGenerator is the slice of the genai client the advisory uses.
// Tests substitute a stub to exercise the fallback paths offline.
type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Gemini implements Service against the Gemini API.
type Gemini struct {
	gen    contentGenerator
	models Models
	logger *zap.Logger
	pick   func(n int) int
}

// NewGemini creates the Gemini-backed advisory service.
func NewGemini(ctx context.Context, apiKey string, models Models, logger *zap.Logger) (*Gemini, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("Gemini API key is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &Gemini{
		gen:    client.Models,
		models: models.withDefaults(),
		logger: logger,
		pick:   rand.Intn,
	}, nil
}

// AnalyzePatterns asks for one insight and one proactive suggestion over
// the ten most recent check-ins and five most recent journal entries.
func (g *Gemini) AnalyzePatterns(ctx context.Context, checkIns []types.CheckIn, journals []types.JournalEntry) Insight {
	if len(checkIns) < 3 && len(journals) < 1 {
		return lowDataFallback()
	}

	prompt := fmt.Sprintf(`
Analyze this recovery data for patterns.
Check-ins: %s
Journals: %s

Rules:
1. Identify correlations between days of the week, activities, mood, and cravings.
2. Provide one clear insight and one specific proactive suggestion (e.g., visiting a coffee shop, calling a friend, or breathing exercises).
3. Be empathetic, non-medical, and concise.
`, historyString(checkIns), journalString(journals))

	cfg := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"insight":    {Type: genai.TypeString, Description: "A compassionate analysis of patterns found."},
				"suggestion": {Type: genai.TypeString, Description: "A specific action the user can take."},
				"actionType": {Type: genai.TypeString, Description: "The screen to navigate to if relevant (home, wellness, routine, support)."},
			},
			Required: []string{"insight", "suggestion"},
		},
	}

	resp, err := g.gen.GenerateContent(ctx, g.models.Flash, genai.Text(prompt), cfg)
	if err != nil {
		g.logger.Warn("pattern analysis failed, using fallback", zap.Error(err))
		return failureFallback()
	}

	var parsed struct {
		Insight    string `json:"insight"`
		Suggestion string `json:"suggestion"`
		ActionType string `json:"actionType"`
	}
	if err := json.Unmarshal([]byte(resp.Text()), &parsed); err != nil || parsed.Insight == "" {
		g.logger.Warn("pattern analysis returned malformed response", zap.Error(err))
		return failureFallback()
	}
	return Insight{Insight: parsed.Insight, Action: parsed.Suggestion, Target: parsed.ActionType}
}

// GetGuidance runs the deep-guidance model with an extended thinking
// budget and a recovery-companion system instruction.
func (g *Gemini) GetGuidance(ctx context.Context, query string, role types.Role) string {
	cfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(
			"You are a senior compassionate recovery companion. Provide deep, structured, non-medical advice. Focus on psychological resilience, connection, and boundaries.",
			genai.RoleUser),
		ThinkingConfig: &genai.ThinkingConfig{ThinkingBudget: genai.Ptr(int32(32768))},
	}
	prompt := fmt.Sprintf("User Role: %s. Query: %s", role, query)

	resp, err := g.gen.GenerateContent(ctx, g.models.Pro, genai.Text(prompt), cfg)
	if err != nil || strings.TrimSpace(resp.Text()) == "" {
		g.logger.Warn("guidance request failed, using fallback", zap.Error(err))
		return failureGuidance
	}
	return resp.Text()
}

// GenerateAffirmation asks the lite model for a short affirmation,
// falling back to the local pool.
func (g *Gemini) GenerateAffirmation(ctx context.Context, role types.Role) string {
	prompt := fmt.Sprintf("Compassionate recovery affirmation for role: %s. Under 12 words.", role)
	resp, err := g.gen.GenerateContent(ctx, g.models.Lite, genai.Text(prompt), nil)
	if err != nil {
		g.logger.Debug("affirmation request failed, using local pool", zap.Error(err))
		return localAffirmation(g.pick)
	}
	if text := strings.TrimSpace(resp.Text()); text != "" {
		return text
	}
	return content.Affirmations[0]
}

// GenerateImage renders a calming image and returns its encoded bytes,
// or nil on any failure.
func (g *Gemini) GenerateImage(ctx context.Context, prompt, aspectRatio string) []byte {
	if aspectRatio == "" {
		aspectRatio = "1:1"
	}
	cfg := &genai.GenerateContentConfig{
		ImageConfig: &genai.ImageConfig{AspectRatio: aspectRatio},
	}
	resp, err := g.gen.GenerateContent(ctx, g.models.Image,
		genai.Text("A calming, healing image: "+prompt), cfg)
	if err != nil {
		g.logger.Warn("image generation failed", zap.Error(err))
		return nil
	}
	return firstInlineData(resp)
}

// GenerateSpeech synthesizes warm speech audio, or nil on failure.
func (g *Gemini) GenerateSpeech(ctx context.Context, text string) []byte {
	cfg := &genai.GenerateContentConfig{
		ResponseModalities: []string{"AUDIO"},
		SpeechConfig: &genai.SpeechConfig{
			VoiceConfig: &genai.VoiceConfig{
				PrebuiltVoiceConfig: &genai.PrebuiltVoiceConfig{VoiceName: g.models.Voice},
			},
		},
	}
	resp, err := g.gen.GenerateContent(ctx, g.models.TTS,
		genai.Text("Speak warmly: "+text), cfg)
	if err != nil {
		g.logger.Warn("speech generation failed", zap.Error(err))
		return nil
	}
	return firstInlineData(resp)
}

// SearchSupport answers with Google Search grounding and returns the
// source URLs alongside the text.
func (g *Gemini) SearchSupport(ctx context.Context, query string) SearchResult {
	cfg := &genai.GenerateContentConfig{
		Tools: []*genai.Tool{{GoogleSearch: &genai.GoogleSearch{}}},
	}
	resp, err := g.gen.GenerateContent(ctx, g.models.Flash, genai.Text(query), cfg)
	if err != nil || strings.TrimSpace(resp.Text()) == "" {
		g.logger.Warn("support search failed, using fallback", zap.Error(err))
		return SearchResult{Text: failureSearch}
	}
	return SearchResult{Text: resp.Text(), Sources: groundingSources(resp)}
}

func firstInlineData(resp *genai.GenerateContentResponse) []byte {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil
	}
	for _, part := range resp.Candidates[0].Content.Parts {
		if part.InlineData != nil && len(part.InlineData.Data) > 0 {
			return part.InlineData.Data
		}
	}
	return nil
}

func groundingSources(resp *genai.GenerateContentResponse) []string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].GroundingMetadata == nil {
		return nil
	}
	var sources []string
	for _, chunk := range resp.Candidates[0].GroundingMetadata.GroundingChunks {
		if chunk.Web != nil && chunk.Web.URI != "" {
			sources = append(sources, chunk.Web.URI)
		}
	}
	return sources
}

// historyString flattens the ten most recent check-ins for the prompt.
func historyString(checkIns []types.CheckIn) string {
	if len(checkIns) > 10 {
		checkIns = checkIns[:10]
	}
	parts := make([]string, 0, len(checkIns))
	for _, c := range checkIns {
		cravings := c.Cravings
		if cravings == "" {
			cravings = types.CravingNone
		}
		parts = append(parts, fmt.Sprintf("Date: %s, Mood: %d, Cravings: %s, Notes: %s",
			c.CreatedAt.Weekday(), c.Mood, cravings, c.Notes))
	}
	return strings.Join(parts, " | ")
}

// journalString flattens the five most recent journal entries.
func journalString(journals []types.JournalEntry) string {
	if len(journals) > 5 {
		journals = journals[:5]
	}
	parts := make([]string, 0, len(journals))
	for _, j := range journals {
		parts = append(parts, fmt.Sprintf("Date: %s, Content: %s", j.CreatedAt.Weekday(), j.Content))
	}
	return strings.Join(parts, " | ")
}
