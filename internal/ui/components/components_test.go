package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/conceptsort/internal/notify"
	"github.com/abhisek/conceptsort/internal/ui/theme"
)

type pickedMsg string

func testMenu() Menu {
	pick := func(s string) func() tea.Cmd {
		return func() tea.Cmd { return func() tea.Msg { return pickedMsg(s) } }
	}
	return NewMenu([]MenuItem{
		{Label: "Start", Action: pick("start")},
		{Label: "Generate", Disabled: true},
		{Label: "Quit", Action: pick("quit")},
	})
}

func TestMenu_SkipsDisabled(t *testing.T) {
	m := testMenu()
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if m.Selected != 2 {
		t.Fatalf("Selected = %d, want 2", m.Selected)
	}
	m, _ = m.Update(tea.KeyPressMsg{Code: 'k', Text: "k"})
	if m.Selected != 0 {
		t.Fatalf("Selected = %d, want 0", m.Selected)
	}
}

func TestMenu_Select(t *testing.T) {
	m := testMenu()
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command")
	}
	if got := cmd(); got != pickedMsg("quit") {
		t.Errorf("picked %v", got)
	}
}

func TestMenu_View(t *testing.T) {
	v := testMenu().View()
	if !strings.Contains(v, "▸ Start") || !strings.Contains(v, "Quit") {
		t.Errorf("unexpected view:\n%s", v)
	}
}

func TestProgressBar(t *testing.T) {
	p := ProgressBar{Label: "Sorted", Done: 3, Total: 10, Width: 40}
	if p.Percent() != 0.3 {
		t.Errorf("Percent = %v", p.Percent())
	}
	if !strings.Contains(p.View(), "3/10") {
		t.Errorf("view lacks count: %q", p.View())
	}
	if (ProgressBar{}).Percent() != 0 {
		t.Error("empty bar should be 0")
	}
}

func TestTextInput(t *testing.T) {
	ti := NewTextInput("topic", 80, 40)
	ti.Model.SetValue("  volcanoes ")
	if ti.Value() != "volcanoes" {
		t.Errorf("Value = %q", ti.Value())
	}
	ti.SetError("required")
	if !strings.Contains(ti.View(), "required") {
		t.Error("error not rendered")
	}
	ti, _ = ti.Update(tea.KeyPressMsg{Code: 'x', Text: "x"})
	if strings.Contains(ti.View(), "required") {
		t.Error("error should clear on key press")
	}
}

func TestToastAndButtons(t *testing.T) {
	if v := Toast(notify.ForScore(7, 10)); !strings.Contains(v, "7 of 10") {
		t.Errorf("toast = %q", v)
	}
	row := ButtonRow(theme.Success, Button{Label: "Check", Key: "c", Enabled: true}, Button{Label: "Next", Key: "n"})
	if !strings.Contains(row, "[c] Check") || !strings.Contains(row, "[n] Next") {
		t.Errorf("row = %q", row)
	}
}
