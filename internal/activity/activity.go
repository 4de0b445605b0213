package activity

import "strings"

// Group is one of the two semantic buckets of an activity.
type Group struct {
	Name            string   `json:"name" yaml:"name"`
	CorrectConcepts []string `json:"correctConcepts" yaml:"correctConcepts"`
}

// Groups holds the two buckets the learner sorts concepts into.
type Groups struct {
	GroupA Group `json:"groupA" yaml:"groupA"`
	GroupB Group `json:"groupB" yaml:"groupB"`
}

// Activity is a single sorting question.
type Activity struct {
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	Groups      Groups `json:"groups" yaml:"groups"`
}

// ConceptCount returns the number of concepts across both groups.
func (a Activity) ConceptCount() int {
	return len(a.Groups.GroupA.CorrectConcepts) + len(a.Groups.GroupB.CorrectConcepts)
}

// Normalize trims surrounding whitespace from every text field.
func (a Activity) Normalize() Activity {
	out := Activity{
		Title:       strings.TrimSpace(a.Title),
		Description: strings.TrimSpace(a.Description),
		Groups: Groups{
			GroupA: normalizeGroup(a.Groups.GroupA),
			GroupB: normalizeGroup(a.Groups.GroupB),
		},
	}
	return out
}

func normalizeGroup(g Group) Group {
	concepts := make([]string, len(g.CorrectConcepts))
	for i, c := range g.CorrectConcepts {
		concepts[i] = strings.TrimSpace(c)
	}
	return Group{Name: strings.TrimSpace(g.Name), CorrectConcepts: concepts}
}
