package components

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/conceptsort/internal/ui/theme"
)

// Button is a labelled action with its shortcut key.
type Button struct {
	Label   string
	Key     string
	Enabled bool
}

// View renders the button in accent when enabled and dimmed otherwise.
func (b Button) View(accent color.Color) string {
	label := "[" + b.Key + "] " + b.Label
	if !b.Enabled {
		return lipgloss.NewStyle().
			Foreground(theme.Border).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 2).
			Render(label)
	}
	return lipgloss.NewStyle().
		Foreground(theme.BgDark).
		Background(accent).
		Bold(true).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accent).
		Padding(0, 2).
		Render(label)
}

// ButtonRow renders buttons side by side.
func ButtonRow(accent color.Color, buttons ...Button) string {
	views := make([]string, 0, 2*len(buttons))
	for i, b := range buttons {
		if i > 0 {
			views = append(views, "  ")
		}
		views = append(views, b.View(accent))
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, views...)
}
