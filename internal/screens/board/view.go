package board

import (
	"fmt"
	"image/color"
	"strings"
	"time"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/conceptsort/internal/activity"
	"github.com/abhisek/conceptsort/internal/quiz"
	"github.com/abhisek/conceptsort/internal/sorting"
	"github.com/abhisek/conceptsort/internal/ui/components"
	"github.com/abhisek/conceptsort/internal/ui/layout"
	"github.com/abhisek/conceptsort/internal/ui/theme"
)

func (b *BoardScreen) View(width, height int) string {
	switch b.session.Phase() {
	case quiz.PhaseLoading:
		return b.renderLoading(width, height)
	case quiz.PhaseLoadFailed:
		return b.renderFailed(width, height)
	case quiz.PhaseInProgress:
		return b.renderBoard(width)
	}
	return ""
}

func (b *BoardScreen) renderLoading(width, height int) string {
	msg := b.spinner.View() + " " + lipgloss.NewStyle().Foreground(theme.TextDim).
		Render(fmt.Sprintf("Loading %d question(s)...", len(b.cfg.Sources)))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, msg)
}

func (b *BoardScreen) renderFailed(width, height int) string {
	text := "Could not load the quiz."
	if err := b.session.LoadErr(); err != nil {
		text += "\n\n" + err.Error()
	}
	body := lipgloss.NewStyle().
		Foreground(theme.Error).
		Width(min(width-8, 72)).
		Align(lipgloss.Center).
		Render(text)
	hint := theme.Hint.Render("Press R to retry or Esc to go back.")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body+"\n\n"+hint)
}

func (b *BoardScreen) renderBoard(width int) string {
	a, _ := b.session.Current()
	round := b.session.Round()
	accent := theme.QuestionAccent(b.session.Index())

	var sb strings.Builder

	sb.WriteString(layout.Center(lipgloss.NewStyle().Foreground(accent).Bold(true).Render(a.Title), width))
	sb.WriteString("\n")
	if a.Description != "" {
		sb.WriteString(layout.Center(theme.Subtitle.Render(a.Description), width))
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
	sb.WriteString(layout.Center(b.renderStats(round, width), width))
	sb.WriteString("\n\n")

	colWidth := max((width-8)/len(sorting.Zones), 16)
	cols := make([]string, 0, len(sorting.Zones))
	for i, z := range sorting.Zones {
		cols = append(cols, b.renderZone(i, z, zoneTitle(a, z), colWidth, accent))
	}
	sb.WriteString(layout.Center(lipgloss.JoinHorizontal(lipgloss.Top, cols...), width))
	sb.WriteString("\n\n")

	next := "Next"
	if b.session.IsLastQuestion() {
		next = "Finish"
	}
	sb.WriteString(layout.Center(components.ButtonRow(accent,
		components.Button{Label: "Check", Key: "c", Enabled: true},
		components.Button{Label: "Reset", Key: "r", Enabled: true},
		components.Button{Label: next, Key: "n", Enabled: b.session.CanAdvance()},
	), width))

	if n, ok := b.toasts.Current(b.cfg.Now()); ok {
		sb.WriteString("\n")
		sb.WriteString(layout.Center(components.Toast(n), width))
	}
	return sb.String()
}

func (b *BoardScreen) renderStats(round *sorting.Round, width int) string {
	sorted := round.Total() - round.Unsorted()
	bar := components.ProgressBar{Label: "Sorted", Done: sorted, Total: round.Total(), Width: min(width/3, 36)}

	dim := lipgloss.NewStyle().Foreground(theme.TextDim)
	parts := []string{
		bar.View(),
		dim.Render("Regret ") + lipgloss.NewStyle().Foreground(theme.Accent).Render(fmt.Sprint(round.Regret())),
		dim.Render("Time ") + lipgloss.NewStyle().Foreground(theme.Text).Render(formatClock(round.Running())),
	}
	if b.checked {
		parts = append(parts, dim.Render("Score ")+theme.Correct.Render(fmt.Sprintf("%.1f/10", round.Score())))
	}
	sep := "    "
	if layout.IsCompactWidth(width) {
		sep = "  "
	}
	return strings.Join(parts, sep)
}

func (b *BoardScreen) renderZone(col int, z sorting.Zone, title string, width int, accent color.Color) string {
	round := b.session.Round()
	focused := col == b.col && b.held == ""
	targeted := b.held != "" && b.target == z

	border := theme.Border
	switch {
	case targeted:
		border = theme.Accent
	case focused:
		border = accent
	}

	heading := lipgloss.NewStyle().Foreground(zoneColor(z)).Bold(true).Render(title)
	if targeted {
		heading += lipgloss.NewStyle().Foreground(theme.Accent).Render("  ◂ drop")
	}

	lines := []string{heading, ""}
	for row, id := range round.Zones().In(z) {
		it, ok := round.Item(id)
		if !ok {
			b.log.Warn().Str("item", id).Str("zone", string(z)).Msg("zone references unknown item")
			continue
		}
		lines = append(lines, b.renderItem(it, focused && row == b.row))
	}
	if len(lines) == 2 {
		lines = append(lines, theme.Hint.Render("empty"))
	}

	return theme.Zone.
		BorderForeground(border).
		Width(width).
		Render(strings.Join(lines, "\n"))
}

func (b *BoardScreen) renderItem(it sorting.Item, cursor bool) string {
	switch {
	case it.ID == b.held:
		return theme.Held.Render("✥ " + it.Label)
	case cursor:
		return theme.Selected.Render("▸ " + it.Label)
	}
	return theme.Unselected.Render("  " + it.Label)
}

func zoneTitle(a activity.Activity, z sorting.Zone) string {
	switch z {
	case sorting.ZoneGroupA:
		return "1 " + a.Groups.GroupA.Name
	case sorting.ZoneGroupB:
		return "2 " + a.Groups.GroupB.Name
	}
	return "3 To sort"
}

func zoneColor(z sorting.Zone) color.Color {
	switch z {
	case sorting.ZoneGroupA:
		return theme.ZoneA
	case sorting.ZoneGroupB:
		return theme.ZoneB
	}
	return theme.ZoneUnsorted
}

func formatClock(d time.Duration) string {
	secs := int(d.Round(time.Second).Seconds())
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}
