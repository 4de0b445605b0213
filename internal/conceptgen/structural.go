package conceptgen

import (
	"fmt"

	"github.com/abhisek/conceptsort/internal/activity"
)

// StructuralValidator checks that the title and group names are present
// and each group holds between MinConcepts and MaxConcepts non-blank
// concepts.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(a activity.Activity, _ Input) *ValidationError {
	if a.Title == "" {
		return v.fail("title is empty")
	}
	for _, g := range []struct {
		key   string
		group activity.Group
	}{
		{"groupA", a.Groups.GroupA},
		{"groupB", a.Groups.GroupB},
	} {
		if g.group.Name == "" {
			return v.fail(fmt.Sprintf("%s name is empty", g.key))
		}
		n := len(g.group.CorrectConcepts)
		if n < MinConcepts || n > MaxConcepts {
			return v.fail(fmt.Sprintf("%s has %d concepts, want %d to %d", g.key, n, MinConcepts, MaxConcepts))
		}
		for i, c := range g.group.CorrectConcepts {
			if c == "" {
				return v.fail(fmt.Sprintf("%s concept %d is blank", g.key, i+1))
			}
		}
	}
	return nil
}

func (v *StructuralValidator) fail(msg string) *ValidationError {
	return &ValidationError{Validator: v.Name(), Message: msg, Retryable: true}
}
