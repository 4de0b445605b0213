package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/conceptsort/internal/ui/theme"
)

const titleFull = `┌─┐┌─┐┌┐┌┌─┐┌─┐┌─┐┌┬┐┌─┐┌─┐┬─┐┌┬┐
│  │ ││││├  ├┤ ├─┘ │ └─┐│ │├┬┘ │
└─┘└─┘┘└┘└─┘└─┘┴   ┴ └─┘└─┘┴└─ ┴`

const titleCompact = "C O N C E P T S O R T"

// contentWidth returns the inner width shared by every section.
func contentWidth(frameWidth int) int {
	return min(max(frameWidth-6, 20), 60)
}

func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	art := titleFull
	if compact {
		art = titleCompact
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(style.Render(art))
}

// renderStatsBar shows what the quiz will load and whether generation is
// available.
func renderStatsBar(quizTitle string, questions int, provider string, cw int) string {
	qStyle := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)

	var left string
	switch {
	case quizTitle != "":
		left = qStyle.Render(fmt.Sprintf("▣ %s (%d)", quizTitle, questions))
	case questions > 0:
		left = qStyle.Render(fmt.Sprintf("▣ %d QUESTION(S)", questions))
	default:
		left = dim.Render("▣ NO QUESTIONS")
	}

	right := dim.Render("✦ LLM OFF")
	if provider != "" {
		right = lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render("✦ " + strings.ToUpper(provider))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Secondary).
		Width(cw-2).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(left + "   " + right)
}

const buttonWidth = 26

// renderMenu draws each menu label as a fixed-width button.
func renderMenu(items []string, selected int, disabled map[int]bool, cw int) string {
	base := lipgloss.NewStyle().
		Width(buttonWidth).
		Align(lipgloss.Center).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1)

	var buttons []string
	for i, label := range items {
		switch {
		case disabled[i]:
			buttons = append(buttons, base.Foreground(theme.TextDim).Render(label))
		case i == selected:
			buttons = append(buttons, base.
				Bold(true).
				Foreground(theme.BgDark).
				Background(theme.Primary).
				BorderForeground(theme.Primary).
				Render("▸ "+label))
		default:
			buttons = append(buttons, base.Foreground(theme.Text).Render(label))
		}
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(buttons, "\n"))
}

// renderNote renders a one-line dim note under the menu.
func renderNote(text string, cw int) string {
	return lipgloss.NewStyle().
		Foreground(theme.Accent).
		Width(cw).
		Align(lipgloss.Center).
		Render(text)
}

// renderFrame wraps content in a double border centered in the area.
func renderFrame(content string, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Width(width-2).
		Height(height-2).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}
