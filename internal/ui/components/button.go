package components

import (
	"github.com/adaptive-learning/studybuddy/internal/ui/theme"
)

// Button renders a labelled button, highlighted when active.
func Button(label string, active bool) string {
	if active {
		return theme.ButtonActive.Render("▸ " + label)
	}
	return theme.ButtonInactive.Render(label)
}
