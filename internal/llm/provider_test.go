package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
)

func TestMockProvider_ReplaysInOrder(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"title":"Planets"}`), Usage: Usage{InputTokens: 12, OutputTokens: 4, TotalTokens: 16}},
		MockResponse{Content: json.RawMessage(`{"title":"Rocks"}`)},
	)

	first, err := mock.Generate(context.Background(), Request{Messages: []Message{{Role: RoleUser, Content: "planets"}}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(first.Content) != `{"title":"Planets"}` {
		t.Fatalf("first content = %s", first.Content)
	}
	if first.Usage.TotalTokens != 16 || first.StopReason != "end" {
		t.Fatalf("unexpected response metadata: %+v", first)
	}

	second, err := mock.Generate(context.Background(), Request{Messages: []Message{{Role: RoleUser, Content: "rocks"}}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(second.Content) != `{"title":"Rocks"}` {
		t.Fatalf("second content = %s", second.Content)
	}
	if mock.CallCount() != 2 || mock.Calls[1].Messages[0].Content != "rocks" {
		t.Fatalf("calls not recorded: %+v", mock.Calls)
	}
}

func TestMockProvider_Drained(t *testing.T) {
	mock := NewMockProvider()
	_, err := mock.Generate(context.Background(), Request{})
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable, got %T (%v)", err, err)
	}
}

func TestMockProvider_Fallback(t *testing.T) {
	mock := NewMockProvider()
	mock.Fallback = func(req Request) MockResponse {
		return MockResponse{Content: json.RawMessage(`{"echo":"` + req.System + `"}`)}
	}

	resp, err := mock.Generate(context.Background(), Request{System: "hi"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != `{"echo":"hi"}` {
		t.Fatalf("content = %s", resp.Content)
	}
}

func TestMockProvider_ValidatesAgainstSchema(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`{"name":"Zed"}`)})
	_, err := mock.Generate(context.Background(), Request{Schema: testSchema()})
	var inv *ErrInvalidResponse
	if !errors.As(err, &inv) {
		t.Fatalf("expected ErrInvalidResponse, got %T (%v)", err, err)
	}
}

func TestMockProvider_QueuedError(t *testing.T) {
	mock := NewMockProvider()
	mock.AddResponse(MockResponse{Err: &ErrRateLimit{}})

	_, err := mock.Generate(context.Background(), Request{})
	var rl *ErrRateLimit
	if !errors.As(err, &rl) {
		t.Fatalf("expected ErrRateLimit, got %T", err)
	}
	if mock.ModelID() != "mock" {
		t.Errorf("ModelID = %q", mock.ModelID())
	}
}

func TestResponseDecode(t *testing.T) {
	var out struct {
		Title string `json:"title"`
	}
	ok := &Response{Content: json.RawMessage(`{"title":"Mammals"}`)}
	if err := ok.Decode(&out); err != nil || out.Title != "Mammals" {
		t.Fatalf("Decode = %v, title %q", err, out.Title)
	}

	bad := &Response{Content: json.RawMessage(`[1,2`)}
	var inv *ErrInvalidResponse
	if err := bad.Decode(&out); !errors.As(err, &inv) {
		t.Fatalf("expected ErrInvalidResponse, got %T", err)
	}
}

func TestPurposeContext(t *testing.T) {
	ctx := context.Background()
	if p := PurposeFrom(ctx); p != PurposeUnknown {
		t.Fatalf("PurposeFrom(empty) = %q", p)
	}
	ctx = WithPurpose(ctx, PurposeConceptGen)
	if p := PurposeFrom(ctx); p != PurposeConceptGen {
		t.Fatalf("PurposeFrom = %q, want %q", p, PurposeConceptGen)
	}
}
