package conceptgen

import (
	"context"
	"fmt"

	"github.com/abhisek/conceptsort/internal/activity"
)

// Source adapts a Generator to activity.Source so generated activities
// load alongside files and URLs.
type Source struct {
	Gen   Generator
	Input Input
}

// NewSource returns a source generating an activity about topic.
func NewSource(gen Generator, topic string, perGroup int) Source {
	return Source{Gen: gen, Input: Input{Topic: topic, ConceptsPerGroup: perGroup}}
}

func (s Source) Name() string { return activity.TopicPrefix + s.Input.Topic }

func (s Source) Fetch(ctx context.Context) (activity.Activity, error) {
	a, err := s.Gen.Generate(ctx, s.Input)
	if err != nil {
		return activity.Activity{}, fmt.Errorf("generate %q: %w", s.Input.Topic, err)
	}
	return a, nil
}

// TopicHook returns a function suitable for activity.Resolver.Topic.
func TopicHook(gen Generator, perGroup int) func(string) (activity.Source, error) {
	return func(topic string) (activity.Source, error) {
		return NewSource(gen, topic, perGroup), nil
	}
}
