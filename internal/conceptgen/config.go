package conceptgen

// Config controls the behavior of the LLMGenerator.
type Config struct {
	// Validators run in order on every generated activity; the first
	// failure stops the pipeline.
	Validators []Validator

	// MaxTokens is the token budget for the LLM response.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64

	// MaxAttempts bounds regeneration after retryable validation
	// failures.
	MaxAttempts int

	// ConceptsPerGroup is the default group size.
	ConceptsPerGroup int
}

// Limits on group size accepted from the model.
const (
	MinConcepts = 2
	MaxConcepts = 20
)

// DefaultConfig returns a Config with the standard validator chain.
func DefaultConfig() Config {
	return Config{
		Validators: []Validator{
			&StructuralValidator{},
			&DistinctValidator{},
		},
		MaxTokens:        1024,
		Temperature:      0.7,
		MaxAttempts:      3,
		ConceptsPerGroup: 5,
	}
}
