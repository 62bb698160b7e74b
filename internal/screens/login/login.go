// Package login is the sign-in view: a name, a learning goal and a
// learning style.
package login

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/adaptive-learning/studybuddy/internal/catalog"
	"github.com/adaptive-learning/studybuddy/internal/screen"
	"github.com/adaptive-learning/studybuddy/internal/state"
	"github.com/adaptive-learning/studybuddy/internal/ui/components"
	"github.com/adaptive-learning/studybuddy/internal/ui/layout"
	"github.com/adaptive-learning/studybuddy/internal/ui/theme"
)

// DefaultName prefills the name field.
const DefaultName = "Katabo"

const (
	fieldName = iota
	fieldGoal
	fieldStyle
	fieldSubmit
	fieldCount
)

// LoginScreen collects the learner profile.
type LoginScreen struct {
	state *state.State
	name  components.TextInput
	goal  components.Selector
	style components.Selector
	focus int
	err   string
}

var _ screen.Screen = (*LoginScreen)(nil)
var _ screen.KeyHintProvider = (*LoginScreen)(nil)
var _ screen.TextCapturer = (*LoginScreen)(nil)

func New(deps screen.Deps) *LoginScreen {
	goals := make([]string, 0, len(catalog.AllGoals()))
	for _, g := range catalog.AllGoals() {
		goals = append(goals, string(g))
	}
	styles := make([]string, 0, len(catalog.AllStyles()))
	for _, s := range catalog.AllStyles() {
		styles = append(styles, string(s))
	}
	return &LoginScreen{
		state: deps.State,
		name:  components.NewTextInput("Your name", DefaultName, 40),
		goal:  components.NewSelector("Learning goal", goals, string(catalog.GoalMath)),
		style: components.NewSelector("Learning style", styles, string(catalog.StyleVisual)),
	}
}

func (s *LoginScreen) Init() tea.Cmd { return s.name.Init() }

func (s *LoginScreen) Title() string { return "Welcome" }

func (s *LoginScreen) CapturingText() bool { return s.focus == fieldName }

func (s *LoginScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Field"},
		{Key: "←→", Description: "Change"},
		{Key: "Enter", Description: "Start learning"},
	}
}

func (s *LoginScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		if s.focus == fieldName {
			var cmd tea.Cmd
			s.name, cmd = s.name.Update(msg)
			return s, cmd
		}
		return s, nil
	}

	switch kmsg.String() {
	case "up", "shift+tab":
		return s, s.move(-1)
	case "down":
		return s, s.move(1)
	case "enter":
		if s.focus < fieldSubmit && s.focus != fieldName {
			return s, s.move(1)
		}
		s.submit()
		return s, nil
	}

	switch s.focus {
	case fieldName:
		var cmd tea.Cmd
		s.name, cmd = s.name.Update(msg)
		s.err = ""
		return s, cmd
	case fieldGoal:
		s.goal, _ = s.goal.Update(msg)
	case fieldStyle:
		s.style, _ = s.style.Update(msg)
	}
	return s, nil
}

func (s *LoginScreen) move(delta int) tea.Cmd {
	s.focus = (s.focus + delta + fieldCount) % fieldCount
	if s.focus == fieldName {
		return s.name.Focus()
	}
	s.name.Blur()
	return nil
}

// submit signs in. A blank name keeps the screen up with a message.
func (s *LoginScreen) submit() {
	name := strings.TrimSpace(s.name.Value())
	if name == "" {
		s.err = "Please enter your name."
		return
	}
	goal, _ := catalog.ParseGoal(s.goal.Value())
	style, _ := catalog.ParseStyle(s.style.Value())
	s.state.Login(name, goal, style)
}

func (s *LoginScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var b strings.Builder
	b.WriteString(theme.Subtitle.Render("Your personalized learning journey starts here.") + "\n\n")
	b.WriteString(theme.Body.Render("Name") + "\n")
	b.WriteString(s.name.View() + "\n\n")
	b.WriteString(s.goal.View(s.focus == fieldGoal) + "\n\n")
	b.WriteString(s.style.View(s.focus == fieldStyle) + "\n\n")
	b.WriteString(components.Button("Start Learning", s.focus == fieldSubmit))
	if s.err != "" {
		b.WriteString("\n\n" + theme.Incorrect.Render(s.err))
	}

	card := components.Card("Welcome to StudyBuddy", b.String(), cw)
	if height >= bannerMinHeight {
		card = lipgloss.JoinVertical(lipgloss.Center, renderBanner(width), "", card)
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
