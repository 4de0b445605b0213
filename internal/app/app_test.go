package app

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/conceptsort/internal/activity"
	"github.com/abhisek/conceptsort/internal/router"
	"github.com/abhisek/conceptsort/internal/screen"
	"github.com/abhisek/conceptsort/internal/screens/board"
	"github.com/abhisek/conceptsort/internal/screens/home"
	"github.com/abhisek/conceptsort/internal/ui/layout"
)

type capturingScreen struct {
	capture bool
	got     []string
}

func (s *capturingScreen) Init() tea.Cmd        { return nil }
func (s *capturingScreen) View(int, int) string { return "capturing" }
func (s *capturingScreen) Title() string        { return "Capture" }
func (s *capturingScreen) Status() string       { return "Question 1/3" }
func (s *capturingScreen) CapturesEscape() bool { return s.capture }
func (s *capturingScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{{Key: "Z", Description: "Zap"}}
}
func (s *capturingScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if k, ok := msg.(tea.KeyPressMsg); ok {
		s.got = append(s.got, k.String())
	}
	return s, nil
}

type staticSource struct{}

func (staticSource) Name() string { return "static" }
func (staticSource) Fetch(context.Context) (activity.Activity, error) {
	return activity.Activity{}, nil
}

func newModelWith(s screen.Screen) AppModel {
	m := newAppModel(Options{})
	m.router.Push(s)
	return m
}

func escape() tea.KeyPressMsg { return tea.KeyPressMsg{Code: tea.KeyEscape} }

func TestApp_EscPopsWhenNotCaptured(t *testing.T) {
	s := &capturingScreen{}
	m := newModelWith(s)

	_, cmd := m.Update(escape())
	if cmd == nil {
		t.Fatal("expected a pop command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg")
	}
	if len(s.got) != 0 {
		t.Error("esc should not reach the screen")
	}
}

func TestApp_EscForwardedWhenCaptured(t *testing.T) {
	s := &capturingScreen{capture: true}
	m := newModelWith(s)

	_, cmd := m.Update(escape())
	if cmd != nil {
		t.Error("captured esc should not navigate")
	}
	if len(s.got) != 1 || s.got[0] != "esc" {
		t.Errorf("screen got %v, want [esc]", s.got)
	}
}

func TestApp_EscOnHomeIsNoop(t *testing.T) {
	m := newAppModel(Options{})
	_, cmd := m.Update(escape())
	if cmd != nil {
		t.Error("esc on the root screen should do nothing")
	}
}

func TestApp_ViewUsesStatusAndHints(t *testing.T) {
	m := newModelWith(&capturingScreen{})
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = updated.(AppModel)

	view := m.View()
	s, ok := view.Content.(interface{ String() string })
	if !ok {
		t.Fatalf("view content %T has no String method", view.Content)
	}
	content := s.String()
	for _, want := range []string{"Capture", "Question 1/3", "Zap"} {
		if !strings.Contains(content, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestApp_HomeStartsBoard(t *testing.T) {
	m := newAppModel(Options{Home: home.Options{
		Board: board.Config{Sources: []activity.Source{staticSource{}}},
	}})

	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a push command")
	}
	m.Update(cmd())
	b, ok := m.router.Active().(*board.BoardScreen)
	if !ok {
		t.Fatalf("active screen is %T, want board", m.router.Active())
	}
	defer b.Dispose()
	if m.router.Depth() != 2 {
		t.Errorf("depth = %d, want 2", m.router.Depth())
	}
}
