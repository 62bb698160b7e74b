package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/adaptive-learning/studybuddy/internal/ui/theme"
)

// Selector picks one of a fixed set of options with left/right.
type Selector struct {
	Label   string
	Options []string
	Index   int
}

// NewSelector starts on the option equal to current, or the first one.
func NewSelector(label string, options []string, current string) Selector {
	s := Selector{Label: label, Options: options}
	for i, o := range options {
		if o == current {
			s.Index = i
		}
	}
	return s
}

// Value returns the chosen option.
func (s Selector) Value() string {
	if len(s.Options) == 0 {
		return ""
	}
	return s.Options[s.Index]
}

// Update moves the selection on left/right (h/l). changed reports
// whether the value moved.
func (s Selector) Update(msg tea.Msg) (sel Selector, changed bool) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok || len(s.Options) == 0 {
		return s, false
	}
	switch kmsg.String() {
	case "left", "h":
		s.Index = (s.Index - 1 + len(s.Options)) % len(s.Options)
		return s, true
	case "right", "l":
		s.Index = (s.Index + 1) % len(s.Options)
		return s, true
	}
	return s, false
}

// View renders the label and every option, highlighting the chosen one.
func (s Selector) View(focused bool) string {
	label := theme.Body.Render(s.Label)
	if focused {
		label = theme.Selected.Render("▸ " + s.Label)
	}
	opts := make([]string, len(s.Options))
	for i, o := range s.Options {
		if i == s.Index {
			opts[i] = theme.ButtonActive.Render(o)
		} else {
			opts[i] = lipgloss.NewStyle().Foreground(theme.TextDim).Padding(0, 2).Render(o)
		}
	}
	return label + "\n" + strings.Join(opts, " ")
}
