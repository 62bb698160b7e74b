package components

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/adaptive-learning/studybuddy/internal/ui/theme"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// SpinnerTickMsg advances every Spinner.
type SpinnerTickMsg time.Time

// SpinnerTick schedules the next frame.
func SpinnerTick() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return SpinnerTickMsg(t)
	})
}

// Spinner is a braille loading indicator.
type Spinner struct {
	frame int
}

func (s *Spinner) Advance() { s.frame = (s.frame + 1) % len(spinnerFrames) }

func (s Spinner) View(label string) string {
	return theme.Selected.Render(spinnerFrames[s.frame]) + " " + theme.Hint.Render(label)
}
