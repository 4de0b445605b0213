package notify

import (
	"testing"
	"time"
)

func TestForScore(t *testing.T) {
	tests := []struct {
		correct, total int
		level          Level
		text           string
	}{
		{10, 10, LevelSuccess, "Perfect! Every concept is in the right group."},
		{0, 10, LevelError, "No concept is in the right place. Try again!"},
		{7, 10, LevelInfo, "You got 7 of 10 concepts right."},
		{1, 6, LevelInfo, "You got 1 of 6 concepts right."},
		{0, 0, LevelError, "No concept is in the right place. Try again!"},
	}
	for _, tt := range tests {
		n := ForScore(tt.correct, tt.total)
		if n.Level != tt.level || n.Text != tt.text {
			t.Errorf("ForScore(%d, %d) = %v %q, want %v %q", tt.correct, tt.total, n.Level, n.Text, tt.level, tt.text)
		}
	}
}

func TestQueue(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	var q Queue

	if _, ok := q.Current(now); ok {
		t.Fatal("empty queue should show nothing")
	}

	q.Push(Notice{Level: LevelInfo, Text: "first"}, now)
	if n, ok := q.Current(now.Add(time.Second)); !ok || n.Text != "first" {
		t.Fatalf("Current = %v %v", n, ok)
	}

	q.Push(Notice{Level: LevelError, Text: "second"}, now.Add(2*time.Second))
	if n, ok := q.Current(now.Add(4 * time.Second)); !ok || n.Text != "second" {
		t.Fatalf("replacement not shown: %v %v", n, ok)
	}
	if _, ok := q.Current(now.Add(5 * time.Second)); ok {
		t.Fatal("notice should have expired")
	}

	q.Push(Notice{Text: "third"}, now)
	q.Clear()
	if _, ok := q.Current(now); ok {
		t.Fatal("cleared queue should show nothing")
	}
}

func TestQueue_CustomTTL(t *testing.T) {
	now := time.Now()
	q := Queue{TTL: 10 * time.Second}
	q.Push(Notice{Text: "x"}, now)
	if _, ok := q.Current(now.Add(9 * time.Second)); !ok {
		t.Fatal("expected notice within TTL")
	}
}

func TestLevelString(t *testing.T) {
	if LevelSuccess.String() != "success" || LevelError.String() != "error" || LevelInfo.String() != "info" {
		t.Fatal("unexpected level names")
	}
}
