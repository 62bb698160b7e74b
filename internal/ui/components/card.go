package components

import (
	"charm.land/lipgloss/v2"

	"github.com/adaptive-learning/studybuddy/internal/ui/theme"
)

// ContentWidth returns the inner width used for cards in a content area
// of frameWidth columns.
func ContentWidth(frameWidth int) int {
	return min(max(frameWidth-6, 20), 72)
}

// Card wraps content in a rounded border with an optional bold title
// line. cw is the outer width.
func Card(title, content string, cw int) string {
	if title != "" {
		content = theme.Title.Render(title) + "\n\n" + content
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(cw-2).
		Padding(0, 1).
		Render(content)
}

// Dialog renders a centered confirmation box.
func Dialog(message string, width, height int) string {
	box := lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Error).
		Width(min(width-4, 60)).
		Padding(1, 2).
		Render(message + "\n\n" + theme.Hint.Render("y: confirm   n: cancel"))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
