package conceptgen

import "github.com/abhisek/conceptsort/internal/llm"

func groupSchema(description string) map[string]any {
	return map[string]any{
		"type":        "object",
		"description": description,
		"properties": map[string]any{
			"name": map[string]any{
				"type":        "string",
				"description": "Short label shown on the group's drop zone",
			},
			"correctConcepts": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Concepts that belong in this group, each a short phrase",
			},
		},
		"required":             []any{"name", "correctConcepts"},
		"additionalProperties": false,
	}
}

// ActivitySchema is the structured output requested from the model.
var ActivitySchema = &llm.Schema{
	Name:        "concept-activity",
	Description: "A two-group concept sorting activity",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title": map[string]any{
				"type":        "string",
				"description": "Activity title shown above the board",
			},
			"description": map[string]any{
				"type":        "string",
				"description": "One sentence telling the learner what to sort",
			},
			"groups": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"groupA": groupSchema("The first group"),
					"groupB": groupSchema("The second group"),
				},
				"required":             []any{"groupA", "groupB"},
				"additionalProperties": false,
			},
		},
		"required":             []any{"title", "description", "groups"},
		"additionalProperties": false,
	},
}
