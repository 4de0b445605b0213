package conceptgen

import (
	"context"

	"github.com/abhisek/conceptsort/internal/activity"
)

// Generator produces sorting activities using an LLM provider.
type Generator interface {
	// Generate produces one activity for the input topic. Every configured
	// validator has passed on the returned activity.
	Generate(ctx context.Context, input Input) (activity.Activity, error)
}

// Input describes the activity to generate.
type Input struct {
	// Topic is the subject the two groups are drawn from, e.g.
	// "renewable vs non-renewable energy".
	Topic string

	// ConceptsPerGroup is the number of concepts requested for each
	// group. Zero uses Config.ConceptsPerGroup.
	ConceptsPerGroup int

	// Avoid lists activity titles already in the quiz so the model picks
	// a different angle.
	Avoid []string
}
