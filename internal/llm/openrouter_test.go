package llm

import "testing"

func TestNewOpenRouterProvider(t *testing.T) {
	tests := []struct {
		name      string
		cfg       OpenRouterConfig
		wantErr   bool
		wantModel string
	}{
		{"empty key", OpenRouterConfig{Model: "google/gemini-2.0-flash-001"}, true, ""},
		{"default base url", OpenRouterConfig{APIKey: "sk-or", Model: "google/gemini-2.0-flash-001"}, false, "google/gemini-2.0-flash-001"},
		{"model passes through unmapped", OpenRouterConfig{APIKey: "sk-or", Model: "claude-haiku"}, false, "claude-haiku"},
		{"custom base url", OpenRouterConfig{APIKey: "sk-or", Model: "meta-llama/llama-3-8b", BaseURL: "https://or.example/v1"}, false, "meta-llama/llama-3-8b"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewOpenRouterProvider(tt.cfg)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && p.ModelID() != tt.wantModel {
				t.Errorf("ModelID = %q, want %q", p.ModelID(), tt.wantModel)
			}
		})
	}
}
