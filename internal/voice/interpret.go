package voice

import (
	"fmt"
	"strings"
	"time"

	"github.com/adaptive-learning/studybuddy/internal/catalog"
	"github.com/adaptive-learning/studybuddy/internal/state"
)

// Controller is the part of the session state voice commands drive.
type Controller interface {
	SetView(v state.View)
	StartQuiz(t catalog.QuizType)
	DarkMode() bool
	ToggleDarkMode()
	Logout()
	ShowToast(msg string, d time.Duration)
}

type Action int

const (
	ActionUnrecognized Action = iota
	ActionNavigate
	ActionStartQuiz
	ActionDarkModeOn
	ActionDarkModeOff
	ActionLogout
)

// Command is the interpretation of one utterance.
type Command struct {
	Action    Action
	View      state.View
	Toast     string
	Utterance string
}

type rule struct {
	phrases []string
	cmd     Command
}

// rules are evaluated in order; the first phrase contained in the
// utterance wins.
var rules = []rule{
	{[]string{"go to home", "go to dashboard"}, Command{Action: ActionNavigate, View: state.ViewDashboard, Toast: "Navigating to Dashboard"}},
	{[]string{"go to recommendations"}, Command{Action: ActionNavigate, View: state.ViewRecommendations, Toast: "Navigating to Recommendations"}},
	{[]string{"go to insights"}, Command{Action: ActionNavigate, View: state.ViewInsights, Toast: "Navigating to Insights"}},
	{[]string{"go to settings"}, Command{Action: ActionNavigate, View: state.ViewSettings, Toast: "Navigating to Settings"}},
	{[]string{"start quiz"}, Command{Action: ActionStartQuiz, Toast: "Starting a new practice quiz"}},
	{[]string{"open study buddy"}, Command{Action: ActionNavigate, View: state.ViewAIStudy, Toast: "Opening AI Study Buddy"}},
	{[]string{"dark mode on", "enable dark mode"}, Command{Action: ActionDarkModeOn}},
	{[]string{"dark mode off", "disable dark mode"}, Command{Action: ActionDarkModeOff}},
	{[]string{"log out", "sign out"}, Command{Action: ActionLogout, Toast: "Logging out..."}},
}

// Interpret maps a normalized utterance to a command. It has no side
// effects.
func Interpret(utterance string) Command {
	for _, r := range rules {
		for _, p := range r.phrases {
			if strings.Contains(utterance, p) {
				cmd := r.cmd
				cmd.Utterance = utterance
				return cmd
			}
		}
	}
	return Command{
		Action:    ActionUnrecognized,
		Toast:     fmt.Sprintf("Command not recognized: \"%s\"", utterance),
		Utterance: utterance,
	}
}

// Normalize lower-cases and trims a transcript.
func Normalize(transcript string) string {
	return strings.ToLower(strings.TrimSpace(transcript))
}

// Execute applies cmd to ctrl. Dark mode commands only toggle when the
// flag differs from the request.
func Execute(cmd Command, ctrl Controller) {
	switch cmd.Action {
	case ActionNavigate:
		ctrl.SetView(cmd.View)
	case ActionStartQuiz:
		ctrl.StartQuiz(catalog.QuizPractice)
	case ActionDarkModeOn:
		if ctrl.DarkMode() {
			cmd.Toast = "Dark Mode is already on."
		} else {
			ctrl.ToggleDarkMode()
			cmd.Toast = "Dark Mode enabled."
		}
	case ActionDarkModeOff:
		if !ctrl.DarkMode() {
			cmd.Toast = "Dark Mode is already off."
		} else {
			ctrl.ToggleDarkMode()
			cmd.Toast = "Dark Mode disabled."
		}
	case ActionLogout:
		ctrl.Logout()
	}
	ctrl.ShowToast(cmd.Toast, 0)
}
