package conceptgen

import (
	"fmt"
	"strings"

	"github.com/abhisek/conceptsort/internal/activity"
)

// DistinctValidator rejects activities where a concept repeats, within a
// group or across both. Comparison ignores case.
type DistinctValidator struct{}

func (v *DistinctValidator) Name() string { return "distinct" }

func (v *DistinctValidator) Validate(a activity.Activity, _ Input) *ValidationError {
	seen := make(map[string]string)
	check := func(group string, concepts []string) *ValidationError {
		for _, c := range concepts {
			key := strings.ToLower(c)
			if prev, ok := seen[key]; ok {
				msg := fmt.Sprintf("%q appears twice in %s", c, group)
				if prev != group {
					msg = fmt.Sprintf("%q appears in both %s and %s", c, prev, group)
				}
				return &ValidationError{Validator: v.Name(), Message: msg, Retryable: true}
			}
			seen[key] = group
		}
		return nil
	}
	if err := check("groupA", a.Groups.GroupA.CorrectConcepts); err != nil {
		return err
	}
	return check("groupB", a.Groups.GroupB.CorrectConcepts)
}
