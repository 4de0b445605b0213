package conceptgen

import (
	"fmt"
	"strings"
)

const systemPrompt = `You design concept sorting activities for students.

Rules:
- Produce exactly two groups that split the topic into clearly distinct categories.
- Each concept is a short phrase (1 to 5 words) that belongs unambiguously to one group.
- Never repeat a concept, and never place the same concept in both groups.
- Group names are short labels (1 to 4 words).
- The description tells the learner, in one sentence, what to sort and by which criterion.
- Write in the language of the topic.`

func buildUserMessage(input Input, perGroup int, rejected []string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Topic: %s\n", input.Topic)
	fmt.Fprintf(&b, "Concepts per group: %d\n", perGroup)

	if len(input.Avoid) > 0 {
		b.WriteString("\nActivities already in this quiz:\n")
		for i, title := range input.Avoid {
			fmt.Fprintf(&b, "%d. %s\n", i+1, title)
		}
	}

	if len(rejected) > 0 {
		b.WriteString("\nPrevious attempts were rejected:\n")
		for _, r := range rejected {
			fmt.Fprintf(&b, "- %s\n", r)
		}
	}

	return strings.TrimRight(b.String(), "\n")
}
