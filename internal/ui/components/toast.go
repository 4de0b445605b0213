package components

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/conceptsort/internal/notify"
	"github.com/abhisek/conceptsort/internal/ui/theme"
)

func levelColor(l notify.Level) color.Color {
	switch l {
	case notify.LevelSuccess:
		return theme.Success
	case notify.LevelError:
		return theme.Error
	}
	return theme.Info
}

func levelIcon(l notify.Level) string {
	switch l {
	case notify.LevelSuccess:
		return "✓"
	case notify.LevelError:
		return "✗"
	}
	return "i"
}

// Toast renders a notice as a bordered banner.
func Toast(n notify.Notice) string {
	c := levelColor(n.Level)
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(c).
		Foreground(c).
		Bold(true).
		Padding(0, 2).
		Render(levelIcon(n.Level) + " " + n.Text)
}
