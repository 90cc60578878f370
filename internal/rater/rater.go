package rater

import (
	"context"
	"fmt"
	"math"

	"github.com/eeatgrader/eeatgrader/internal/model"
)

// Provider defines the interface for advisory AI raters
type Provider interface {
	// Name returns the provider name
	Name() string

	// Rate evaluates soft quality signals the rule checkers cannot
	// capture: lived experience, overconfidence, helpful framing
	Rate(ctx context.Context, req Request) (*Result, error)

	// IsAvailable checks if the provider is properly configured and accessible
	IsAvailable(ctx context.Context) bool
}

// excerptLimit caps how much body text is sent to the model
const excerptLimit = 6000

// Request contains the page context sent to the model
type Request struct {
	Title     string
	Author    string
	Risk      model.RiskLevel
	Preset    model.ContentPreset
	WordCount int

	// Excerpt is the page body, pre-truncated to excerptLimit
	Excerpt string
}

// Result holds the model's advisory assessment of all four dimensions.
// Advisory means exactly that: a nil Result never blocks an analysis.
type Result struct {
	Experience        model.DimensionScore
	Expertise         model.DimensionScore
	Authoritativeness model.DimensionScore
	Trust             model.DimensionScore

	// Model is the model that generated the response
	Model string

	// TokensUsed tracks token consumption
	TokensUsed int
}

// NewRequest builds a Request from extracted content and its
// classification, truncating the body excerpt
func NewRequest(content *model.Content, risk model.RiskLevel, preset model.ContentPreset) Request {
	title := content.Title
	if title == "" {
		title = "(untitled)"
	}
	author := content.Author.Name
	if author == "" {
		author = "(no author found)"
	}
	excerpt := content.PlainText
	if runes := []rune(excerpt); len(runes) > excerptLimit {
		excerpt = string(runes[:excerptLimit])
	}
	return Request{
		Title:     title,
		Author:    author,
		Risk:      risk,
		Preset:    preset,
		WordCount: content.WordCount,
		Excerpt:   excerpt,
	}
}

const systemPrompt = `You are an expert content quality rater trained on Google's Search Quality Rater Guidelines.
Your job is to evaluate web content for E-E-A-T signals (Experience, Expertise, Authoritativeness, Trust).

You MUST return valid JSON only. No markdown, no commentary outside the JSON.
`

// BuildPrompt constructs the rating prompt for a request
func BuildPrompt(req Request) string {
	return fmt.Sprintf(`Evaluate the following content for E-E-A-T quality signals.

CONTENT TITLE: %s
AUTHOR: %s
TOPIC RISK: %s (YMYL level)
CONTENT TYPE: %s
WORD COUNT: %d

--- CONTENT (first 6000 chars) ---
%s
--- END CONTENT ---

For each of the 4 E-E-A-T dimensions, provide 2-3 soft-check signals.
Each signal should have:
- "signal": a short name for what you checked
- "found": true/false
- "points": 0.0 to 4.0 (how strong the signal is)
- "quote": exact quote from the content that supports your judgment (or "" if not found)
- "explanation": 1-2 sentences explaining your rating

Return this exact JSON structure:
{
  "experience": {
    "signals": [...],
    "summary": "1-2 sentence overall experience assessment"
  },
  "expertise": {
    "signals": [...],
    "summary": "1-2 sentence overall expertise assessment"
  },
  "authoritativeness": {
    "signals": [...],
    "summary": "1-2 sentence overall authoritativeness assessment"
  },
  "trust": {
    "signals": [...],
    "summary": "1-2 sentence overall trust assessment"
  }
}

Focus on:
- Experience: Does this read like someone who actually did this? Look for lived detail, real caveats, workflow descriptions.
- Expertise: Is the information accurate, well-scoped, and appropriately nuanced? Does it handle edge cases?
- Authoritativeness: Does the author/site appear to be a recognized source on this topic?
- Trust: Is the content honest, well-sourced, and careful with sensitive claims? Does it avoid harmful overconfidence?

For %s-risk content, apply stricter standards for Trust and Expertise.
`, req.Title, req.Author, req.Risk, req.Preset, req.WordCount, req.Excerpt, req.Risk)
}

// Config holds rater provider configuration
type Config struct {
	// APIKey for the model endpoint; empty disables the rater
	APIKey string

	// Model name (provider-specific)
	Model string

	// BaseURL for custom endpoints
	BaseURL string

	// Timeout for API requests, in seconds
	Timeout int

	// MaxTokens for response generation
	MaxTokens int
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Model:     "gpt-4o",
		Timeout:   30,
		MaxTokens: 2000,
	}
}

// rawSignal mirrors the JSON signal shape the model is asked to return
type rawSignal struct {
	Signal      string  `json:"signal"`
	Found       bool    `json:"found"`
	Points      float64 `json:"points"`
	Quote       string  `json:"quote"`
	Explanation string  `json:"explanation"`
}

// rawDimension mirrors one dimension block in the model response
type rawDimension struct {
	Signals []rawSignal `json:"signals"`
	Summary string      `json:"summary"`
}

// rawResponse mirrors the full model response
type rawResponse struct {
	Experience        rawDimension `json:"experience"`
	Expertise         rawDimension `json:"expertise"`
	Authoritativeness rawDimension `json:"authoritativeness"`
	Trust             rawDimension `json:"trust"`
}

// convertDimension normalizes one raw dimension block: points are
// capped at 4.0 per signal, quotes at 300 chars, and the dimension
// score scales the raw sum against a 4-points-per-signal ceiling.
// A block with no signals scores zero. Points are taken as reported
// even when found is false; only the rule checkers zero unfound
// signals.
func convertDimension(name string, raw rawDimension) model.DimensionScore {
	signals := make([]model.SignalEvidence, 0, len(raw.Signals))
	rawPts := 0.0
	for _, s := range raw.Signals {
		pts := math.Min(4.0, s.Points)
		quote := s.Quote
		if runes := []rune(quote); len(runes) > 300 {
			quote = string(runes[:300])
		}
		signals = append(signals, model.SignalEvidence{
			Signal:      s.Signal,
			Found:       s.Found,
			Points:      pts,
			Quote:       quote,
			Explanation: s.Explanation,
		})
		rawPts += pts
	}

	score := 0.0
	if len(signals) > 0 {
		score = math.Min(25.0, rawPts/(float64(len(signals))*4.0)*25.0)
	}
	score = math.Round(score*10) / 10

	return model.DimensionScore{
		Name:     name,
		Score:    score,
		MaxScore: 25.0,
		Signals:  signals,
		Summary:  raw.Summary,
	}
}

// convertResponse maps a parsed model response into a Result
func convertResponse(raw rawResponse) *Result {
	return &Result{
		Experience:        convertDimension("Experience", raw.Experience),
		Expertise:         convertDimension("Expertise", raw.Expertise),
		Authoritativeness: convertDimension("Authoritativeness", raw.Authoritativeness),
		Trust:             convertDimension("Trust", raw.Trust),
	}
}
