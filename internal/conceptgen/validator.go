package conceptgen

import (
	"fmt"

	"github.com/abhisek/conceptsort/internal/activity"
)

// Validator checks a generated activity.
type Validator interface {
	// Name identifies the validator in errors and logs.
	Name() string

	// Validate returns nil when a passes.
	Validate(a activity.Activity, input Input) *ValidationError
}

// ValidationError describes why an activity failed validation.
type ValidationError struct {
	Validator string
	Message   string
	Retryable bool // whether regenerating is likely to fix it
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validator %q: %s", e.Validator, e.Message)
}
