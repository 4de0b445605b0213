package llm

import "strings"

// ModelCost is USD per million tokens.
type ModelCost struct {
	InputPerMTok  float64
	OutputPerMTok float64
}

// Cost returns the USD cost of the given token counts.
func (c ModelCost) Cost(inputTokens, outputTokens int) float64 {
	return float64(inputTokens)*c.InputPerMTok/1_000_000 +
		float64(outputTokens)*c.OutputPerMTok/1_000_000
}

// LookupCost returns pricing for a model ID. OpenRouter-style
// "vendor/model" IDs are matched on the model part.
func LookupCost(modelID string) (ModelCost, bool) {
	if c, ok := modelCosts[modelID]; ok {
		return c, true
	}
	if _, model, ok := strings.Cut(modelID, "/"); ok {
		c, ok := modelCosts[model]
		return c, ok
	}
	return ModelCost{}, false
}

// EstimateCost prices u for modelID.
func EstimateCost(modelID string, u Usage) (float64, bool) {
	c, ok := LookupCost(modelID)
	if !ok {
		return 0, false
	}
	return c.Cost(u.InputTokens, u.OutputTokens), true
}

// modelCosts covers the models reachable through the configured aliases
// plus a few common direct IDs.
var modelCosts = map[string]ModelCost{
	// Anthropic
	"claude-haiku-4-5":           {1, 5},
	"claude-haiku-4-5-20251001":  {1, 5},
	"claude-sonnet-4-5":          {3, 15},
	"claude-sonnet-4-5-20250929": {3, 15},
	"claude-sonnet-4-20250514":   {3, 15},
	"claude-opus-4-5":            {5, 25},

	// OpenAI
	"gpt-4o":       {2.5, 10},
	"gpt-4o-mini":  {0.15, 0.6},
	"gpt-4.1":      {2, 8},
	"gpt-4.1-mini": {0.4, 1.6},
	"gpt-4.1-nano": {0.1, 0.4},
	"gpt-5-mini":   {0.25, 2},
	"gpt-5-nano":   {0.05, 0.4},

	// Google
	"gemini-2.0-flash":      {0.1, 0.4},
	"gemini-2.0-flash-001":  {0.1, 0.4},
	"gemini-2.5-flash":      {0.3, 2.5},
	"gemini-2.5-flash-lite": {0.1, 0.4},
	"gemini-2.5-pro":        {1.25, 10},
}
