package conceptgen

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/conceptsort/internal/activity"
	"github.com/abhisek/conceptsort/internal/llm"
)

func energyJSON() json.RawMessage {
	return json.RawMessage(`{
		"title": "Energy sources",
		"description": "Sort each source by whether it replenishes naturally.",
		"groups": {
			"groupA": {"name": "Renewable", "correctConcepts": [" Solar ", "Wind", "Hydro"]},
			"groupB": {"name": "Non-renewable", "correctConcepts": ["Coal", "Oil", "Natural gas"]}
		}
	}`)
}

func duplicateJSON() json.RawMessage {
	return json.RawMessage(`{
		"title": "Energy sources",
		"description": "Sort them.",
		"groups": {
			"groupA": {"name": "Renewable", "correctConcepts": ["Solar", "Wind"]},
			"groupB": {"name": "Non-renewable", "correctConcepts": ["Coal", "solar"]}
		}
	}`)
}

func TestGenerate_HappyPath(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: energyJSON()})
	gen := New(mock, DefaultConfig())

	a, err := gen.Generate(context.Background(), Input{Topic: "energy", ConceptsPerGroup: 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Title != "Energy sources" {
		t.Errorf("title = %q", a.Title)
	}
	if a.Groups.GroupA.CorrectConcepts[0] != "Solar" {
		t.Errorf("concepts not normalized: %q", a.Groups.GroupA.CorrectConcepts)
	}
	if a.ConceptCount() != 6 {
		t.Errorf("ConceptCount = %d", a.ConceptCount())
	}

	req := mock.Calls[0]
	if req.Schema != ActivitySchema {
		t.Error("expected activity schema on request")
	}
	if !strings.Contains(req.Messages[0].Content, "Topic: energy") ||
		!strings.Contains(req.Messages[0].Content, "Concepts per group: 3") {
		t.Errorf("unexpected user message: %q", req.Messages[0].Content)
	}
}

func TestGenerate_RetriesRejected(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: duplicateJSON()},
		llm.MockResponse{Content: energyJSON()},
	)
	gen := New(mock, DefaultConfig())

	a, err := gen.Generate(context.Background(), Input{Topic: "energy"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Title != "Energy sources" {
		t.Errorf("title = %q", a.Title)
	}
	if mock.CallCount() != 2 {
		t.Fatalf("calls = %d, want 2", mock.CallCount())
	}
	if !strings.Contains(mock.Calls[1].Messages[0].Content, "appears in both groupA and groupB") {
		t.Errorf("retry prompt lacks rejection reason: %q", mock.Calls[1].Messages[0].Content)
	}
}

func TestGenerate_GivesUp(t *testing.T) {
	mock := llm.NewMockProvider()
	mock.Fallback = func(llm.Request) llm.MockResponse { return llm.MockResponse{Content: duplicateJSON()} }

	cfg := DefaultConfig()
	cfg.MaxAttempts = 2
	_, err := New(mock, cfg).Generate(context.Background(), Input{Topic: "energy"})

	var verr *ValidationError
	if !errors.As(err, &verr) || verr.Validator != "distinct" {
		t.Fatalf("expected distinct ValidationError, got %v", err)
	}
	if mock.CallCount() != 2 {
		t.Errorf("calls = %d, want 2", mock.CallCount())
	}
}

func TestGenerate_ProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	_, err := New(mock, DefaultConfig()).Generate(context.Background(), Input{Topic: "energy"})

	var unavail *llm.ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable, got %v", err)
	}
	if mock.CallCount() != 1 {
		t.Errorf("provider errors are not regenerated here, calls = %d", mock.CallCount())
	}
}

func TestGenerate_InputChecks(t *testing.T) {
	gen := New(llm.NewMockProvider(), DefaultConfig())
	tests := []struct {
		name  string
		input Input
	}{
		{"no topic", Input{}},
		{"too few", Input{Topic: "x", ConceptsPerGroup: 1}},
		{"too many", Input{Topic: "x", ConceptsPerGroup: 21}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := gen.Generate(context.Background(), tt.input); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestGenerate_AvoidTitles(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: energyJSON()})
	_, err := New(mock, DefaultConfig()).Generate(context.Background(), Input{
		Topic: "energy",
		Avoid: []string{"Fossil fuels"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(mock.Calls[0].Messages[0].Content, "1. Fossil fuels") {
		t.Errorf("avoid list missing: %q", mock.Calls[0].Messages[0].Content)
	}
}

func TestSource(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: energyJSON()})
	hook := TopicHook(New(mock, DefaultConfig()), 3)

	r := activity.Resolver{Topic: hook}
	src, err := r.Resolve("llm: energy")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if src.Name() != "llm:energy" {
		t.Errorf("Name = %q", src.Name())
	}

	acts, err := activity.LoadAll(context.Background(), []activity.Source{src})
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	if acts[0].Groups.GroupB.Name != "Non-renewable" {
		t.Errorf("unexpected activity: %+v", acts[0])
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	names := []string{"structural", "distinct"}
	if len(cfg.Validators) != len(names) {
		t.Fatalf("validators = %d", len(cfg.Validators))
	}
	for i, v := range cfg.Validators {
		if v.Name() != names[i] {
			t.Errorf("validator %d = %q, want %q", i, v.Name(), names[i])
		}
	}
	if cfg.MaxAttempts != 3 || cfg.ConceptsPerGroup != 5 {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}
