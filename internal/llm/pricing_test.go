package llm

import (
	"math"
	"testing"
)

func TestLookupCost(t *testing.T) {
	tests := []struct {
		model string
		found bool
		input float64
	}{
		{"claude-haiku-4-5-20251001", true, 1},
		{"gpt-4o-mini", true, 0.15},
		{"google/gemini-2.0-flash-001", true, 0.1},
		{"openai/gpt-4.1-mini", true, 0.4},
		{"mystery-model", false, 0},
		{"vendor/mystery", false, 0},
	}
	for _, tt := range tests {
		t.Run(tt.model, func(t *testing.T) {
			c, ok := LookupCost(tt.model)
			if ok != tt.found {
				t.Fatalf("found = %v, want %v", ok, tt.found)
			}
			if c.InputPerMTok != tt.input {
				t.Errorf("InputPerMTok = %v, want %v", c.InputPerMTok, tt.input)
			}
		})
	}
}

func TestEstimateCost(t *testing.T) {
	usd, ok := EstimateCost("claude-sonnet-4-5", Usage{InputTokens: 1_000_000, OutputTokens: 200_000})
	if !ok {
		t.Fatal("expected a price")
	}
	if math.Abs(usd-6.0) > 1e-9 {
		t.Errorf("cost = %v, want 6.0", usd)
	}

	if _, ok := EstimateCost("mock", Usage{InputTokens: 10}); ok {
		t.Error("mock should have no price")
	}
}

func TestClassifyStatus(t *testing.T) {
	base := errTest("boom")
	tests := []struct {
		status    int
		retryable bool
	}{
		{429, true},
		{500, true},
		{503, true},
		{400, false},
		{401, false},
		{403, false},
		{0, true},
	}
	for _, tt := range tests {
		err := classifyStatus(tt.status, base)
		if got := retryable(err, false); got != tt.retryable {
			t.Errorf("status %d: retryable = %v, want %v (%v)", tt.status, got, tt.retryable, err)
		}
	}
}

type errTest string

func (e errTest) Error() string { return string(e) }
