package sorting

import (
	"fmt"

	"github.com/abhisek/conceptsort/internal/activity"
)

// Group is the bucket a concept belongs to.
type Group string

const (
	GroupA Group = "A"
	GroupB Group = "B"
)

// Item is one draggable concept. Items are immutable for the round.
type Item struct {
	ID      string
	Label   string
	Correct Group
}

// ItemsFor builds the item set for an activity. Group A concepts get ids
// a1..aN and group B concepts b1..bN, in source order.
func ItemsFor(a activity.Activity) []Item {
	items := make([]Item, 0, a.ConceptCount())
	for i, c := range a.Groups.GroupA.CorrectConcepts {
		items = append(items, Item{ID: fmt.Sprintf("a%d", i+1), Label: c, Correct: GroupA})
	}
	for i, c := range a.Groups.GroupB.CorrectConcepts {
		items = append(items, Item{ID: fmt.Sprintf("b%d", i+1), Label: c, Correct: GroupB})
	}
	return items
}
