package layout

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
)

func TestIsTooSmall(t *testing.T) {
	tests := []struct {
		w, h int
		want bool
	}{
		{80, 24, false},
		{79, 24, true},
		{80, 23, true},
		{120, 40, false},
	}
	for _, tt := range tests {
		if got := IsTooSmall(tt.w, tt.h); got != tt.want {
			t.Errorf("IsTooSmall(%d, %d) = %v, want %v", tt.w, tt.h, got, tt.want)
		}
	}
}

func TestRenderHeader(t *testing.T) {
	h := RenderHeader("Board", "Question 2/3", 100)
	if !strings.Contains(h, "ConceptSort") || !strings.Contains(h, "Board") || !strings.Contains(h, "Question 2/3") {
		t.Errorf("header missing parts:\n%s", h)
	}
	if lipgloss.Height(h) != HeaderHeight {
		t.Errorf("header height = %d, want %d", lipgloss.Height(h), HeaderHeight)
	}
}

func TestRenderFooter(t *testing.T) {
	f := RenderFooter([]KeyHint{{Key: "Space", Description: "Pick up"}, {Key: "Enter", Description: "Drop"}}, 100)
	if !strings.Contains(f, "Pick up") || !strings.Contains(f, "Drop") {
		t.Errorf("footer missing hints:\n%s", f)
	}
}

func TestRenderFrame(t *testing.T) {
	frame := RenderFrame("head", "body", "foot", 80, 24)
	if lipgloss.Height(frame) != 24 {
		t.Errorf("frame height = %d, want 24", lipgloss.Height(frame))
	}
}

func TestRenderFooter_DropsHintsThatDoNotFit(t *testing.T) {
	hints := []KeyHint{
		{Key: "←→↑↓", Description: "Move"},
		{Key: "Space", Description: "Pick up"},
		{Key: "1-3", Description: "Send"},
		{Key: "C", Description: "Check"},
		{Key: "R", Description: "Reset"},
		{Key: "N", Description: "Finish"},
	}
	wide := RenderFooter(hints, 120)
	if !strings.Contains(wide, "Finish") {
		t.Errorf("wide footer should show every hint:\n%s", wide)
	}

	narrow := RenderFooter(hints, 40)
	if strings.Contains(narrow, "Finish") || !strings.Contains(narrow, "Move") {
		t.Errorf("narrow footer should keep the first hints only:\n%s", narrow)
	}
	if lipgloss.Height(narrow) != FooterHeight {
		t.Errorf("footer height = %d, want %d", lipgloss.Height(narrow), FooterHeight)
	}
}

func TestRenderMinSizeMessage(t *testing.T) {
	msg := RenderMinSizeMessage(60, 20)
	if !strings.Contains(msg, "80 x 24") || !strings.Contains(msg, "now 60 x 20") {
		t.Errorf("unexpected message:\n%s", msg)
	}
}
