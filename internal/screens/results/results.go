package results

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/conceptsort/internal/quiz"
	"github.com/abhisek/conceptsort/internal/router"
	"github.com/abhisek/conceptsort/internal/screen"
	"github.com/abhisek/conceptsort/internal/ui/layout"
	"github.com/abhisek/conceptsort/internal/ui/theme"
)

// ResultsScreen shows one line per answered question.
type ResultsScreen struct {
	entries []quiz.Entry
	done    key.Binding
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// New creates a ResultsScreen for a finished quiz.
func New(entries []quiz.Entry) *ResultsScreen {
	return &ResultsScreen{
		entries: entries,
		done:    key.NewBinding(key.WithKeys("enter", "esc", "q")),
	}
}

func (s *ResultsScreen) Init() tea.Cmd { return nil }

func (s *ResultsScreen) Title() string { return "Results" }

func (s *ResultsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Home"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok && key.Matches(kmsg, s.done) {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return s, nil
}

// Line formats one entry as "title  score/10  seconds  regret".
func Line(e quiz.Entry) string {
	return fmt.Sprintf("%-32s  %4.1f/10  %4ds  regret %d",
		truncate(e.Title, 32), e.Result.Score, e.Result.ElapsedSeconds(), e.Result.RegretFactor)
}

// Average is the mean score across entries, 0 when there are none.
func Average(entries []quiz.Entry) float64 {
	if len(entries) == 0 {
		return 0
	}
	var sum float64
	for _, e := range entries {
		sum += e.Result.Score
	}
	return sum / float64(len(entries))
}

func (s *ResultsScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(layout.Center(theme.Title.Render("Quiz complete!"), width))
	b.WriteString("\n\n")
	b.WriteString(layout.Center(theme.Subtitle.Render(
		fmt.Sprintf("%d question(s)   average %.1f/10", len(s.entries), Average(s.entries))), width))
	b.WriteString("\n\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(min(width-8, 64), 0)))
	b.WriteString(layout.Center(divider, width))
	b.WriteString("\n\n")

	for i, e := range s.entries {
		style := lipgloss.NewStyle().Foreground(theme.Text)
		switch {
		case e.Result.Score == 10:
			style = style.Foreground(theme.Success)
		case e.Result.Score == 0:
			style = style.Foreground(theme.Error)
		}
		b.WriteString(layout.Center(style.Render(fmt.Sprintf("%d. %s", i+1, Line(e))), width))
		b.WriteString("\n")
	}
	return b.String()
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
