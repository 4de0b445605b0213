package conceptgen

import (
	"context"
	"errors"
	"fmt"

	"github.com/abhisek/conceptsort/internal/activity"
	"github.com/abhisek/conceptsort/internal/llm"
	"github.com/abhisek/conceptsort/internal/logging"
)

// LLMGenerator implements Generator using an LLM provider.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
}

// New creates an LLMGenerator with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMGenerator {
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	if cfg.ConceptsPerGroup <= 0 {
		cfg.ConceptsPerGroup = DefaultConfig().ConceptsPerGroup
	}
	return &LLMGenerator{provider: provider, config: cfg}
}

// Generate asks the model for an activity, regenerating while validation
// fails with a retryable error.
func (g *LLMGenerator) Generate(ctx context.Context, input Input) (activity.Activity, error) {
	if input.Topic == "" {
		return activity.Activity{}, fmt.Errorf("topic is required")
	}
	perGroup := input.ConceptsPerGroup
	if perGroup <= 0 {
		perGroup = g.config.ConceptsPerGroup
	}
	if perGroup < MinConcepts || perGroup > MaxConcepts {
		return activity.Activity{}, fmt.Errorf("concepts per group must be between %d and %d, got %d", MinConcepts, MaxConcepts, perGroup)
	}

	ctx = llm.WithPurpose(ctx, llm.PurposeConceptGen)
	log := logging.FromContext(ctx)

	var rejected []string
	var lastErr error
	for attempt := 1; attempt <= g.config.MaxAttempts; attempt++ {
		a, err := g.generateOnce(ctx, input, perGroup, rejected)
		if err == nil {
			return a, nil
		}
		lastErr = err

		var verr *ValidationError
		if !errors.As(err, &verr) || !verr.Retryable {
			return activity.Activity{}, err
		}
		log.Debug().Str("topic", input.Topic).Int("attempt", attempt).Str("reason", verr.Message).
			Msg("generated activity rejected")
		rejected = append(rejected, verr.Message)
	}
	return activity.Activity{}, fmt.Errorf("no valid activity after %d attempts: %w", g.config.MaxAttempts, lastErr)
}

func (g *LLMGenerator) generateOnce(ctx context.Context, input Input, perGroup int, rejected []string) (activity.Activity, error) {
	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(input, perGroup, rejected)},
		},
		Schema:      ActivitySchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return activity.Activity{}, fmt.Errorf("LLM generation failed: %w", err)
	}

	var raw activity.Activity
	if err := resp.Decode(&raw); err != nil {
		return activity.Activity{}, fmt.Errorf("failed to parse LLM response: %w", err)
	}
	a := raw.Normalize()

	for _, v := range g.config.Validators {
		if verr := v.Validate(a, input); verr != nil {
			return activity.Activity{}, verr
		}
	}
	return a, nil
}
