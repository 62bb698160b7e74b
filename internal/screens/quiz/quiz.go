// Package quiz is the quiz view. It owns one quiz session built for the
// learner's goal and the requested quiz type.
package quiz

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/adaptive-learning/studybuddy/internal/catalog"
	sess "github.com/adaptive-learning/studybuddy/internal/quiz"
	"github.com/adaptive-learning/studybuddy/internal/screen"
	"github.com/adaptive-learning/studybuddy/internal/state"
	"github.com/adaptive-learning/studybuddy/internal/ui/components"
	"github.com/adaptive-learning/studybuddy/internal/ui/layout"
	"github.com/adaptive-learning/studybuddy/internal/ui/theme"
)

var errNoHints = errors.New("hints unavailable")

// QuizScreen implements screen.Screen for a quiz run.
type QuizScreen struct {
	deps    screen.Deps
	learner string
	session *sess.Session
	cursor  int
	spinner components.Spinner
	saveErr error
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

func New(deps screen.Deps) *QuizScreen {
	s := &QuizScreen{deps: deps}
	snap := deps.State.Snapshot()
	s.rebuild(snap)
	return s
}

// rebuild discards the current session and samples a new one.
func (s *QuizScreen) rebuild(snap state.Snapshot) {
	goal := catalog.GoalMath
	if snap.User != nil {
		goal = snap.User.Goal
		s.learner = snap.User.Name
	}
	s.session = sess.New(goal, snap.QuizType, s.deps.Rand(), s.deps.State)
	s.cursor = 0
	s.saveErr = nil
}

func (s *QuizScreen) Init() tea.Cmd { return nil }

func (s *QuizScreen) Title() string {
	return fmt.Sprintf("%s Quiz", titleCase(string(s.session.Type())))
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	switch s.session.Phase() {
	case sess.PhaseNotStarted:
		return []layout.KeyHint{{Key: "Enter", Description: "Start"}, {Key: "Esc", Description: "Dashboard"}}
	case sess.PhaseUnanswered:
		return []layout.KeyHint{
			{Key: "↑↓/1-4", Description: "Choose"},
			{Key: "Enter", Description: "Submit"},
			{Key: "H", Description: "Hint"},
			{Key: "S", Description: "Skip"},
		}
	case sess.PhaseSubmitted:
		return []layout.KeyHint{{Key: "Enter", Description: s.nextLabel()}}
	default:
		return []layout.KeyHint{{Key: "Enter", Description: "Back to Dashboard"}, {Key: "R", Description: "Retake"}}
	}
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case screen.StateChangedMsg:
		snap := msg.Snapshot
		if snap.User != nil && (snap.User.Goal != s.session.Goal() || snap.QuizType != s.session.Type()) {
			s.rebuild(snap)
		}
		return s, nil

	case hintMsg:
		s.session.ApplyHint(msg.index, msg.text, msg.err)
		return s, nil

	case components.SpinnerTickMsg:
		if !s.session.HintLoading() {
			return s, nil
		}
		s.spinner.Advance()
		return s, components.SpinnerTick()

	case resultStoredMsg:
		s.saveErr = msg.err
		return s, nil

	case tea.KeyPressMsg:
		return s, s.handleKey(msg.String())
	}
	return s, nil
}

func (s *QuizScreen) handleKey(key string) tea.Cmd {
	switch s.session.Phase() {
	case sess.PhaseNotStarted:
		if key == "enter" || key == "space" {
			s.session.Start()
			return s.finishCmd()
		}

	case sess.PhaseUnanswered:
		q, _ := s.session.Current()
		switch key {
		case "up", "k":
			if s.cursor > 0 {
				s.cursor--
			}
		case "down", "j":
			if s.cursor < len(q.Answers)-1 {
				s.cursor++
			}
		case "1", "2", "3", "4", "5", "6":
			i := int(key[0] - '1')
			if s.session.Select(i) {
				s.cursor = i
			}
		case "space":
			s.session.Select(s.cursor)
		case "enter":
			if s.session.Selected() < 0 {
				s.session.Select(s.cursor)
			}
			s.session.Submit()
		case "h":
			return s.requestHint()
		case "s":
			s.session.Skip()
			s.cursor = 0
			return s.finishCmd()
		}

	case sess.PhaseSubmitted:
		if key == "enter" || key == "space" || key == "n" {
			s.session.Advance()
			s.cursor = 0
			return s.finishCmd()
		}

	case sess.PhaseFinished:
		switch key {
		case "enter":
			s.deps.State.SetView(state.ViewDashboard)
		case "r":
			s.rebuild(s.deps.State.Snapshot())
		}
	}
	return nil
}

// requestHint asks the hint source for the open question in the
// background. The reply is dropped if the learner has moved on.
func (s *QuizScreen) requestHint() tea.Cmd {
	prompt, idx, ok := s.session.BeginHint()
	if !ok {
		return nil
	}
	return tea.Batch(s.fetchHint(prompt, idx), components.SpinnerTick())
}

func (s *QuizScreen) fetchHint(prompt string, idx int) tea.Cmd {
	hints := s.deps.Hints
	return func() tea.Msg {
		if hints == nil {
			return hintMsg{index: idx, err: errNoHints}
		}
		text, err := hints.Hint(context.Background(), prompt)
		return hintMsg{index: idx, text: text, err: err}
	}
}

// finishCmd persists the result once the session has finished. The
// score itself already reached the session state through the publisher.
func (s *QuizScreen) finishCmd() tea.Cmd {
	if s.session.Phase() != sess.PhaseFinished || s.deps.Repo == nil {
		return nil
	}
	repo, log := s.deps.Repo, s.deps.Log
	data := s.session.Result().Record(s.learner)
	return func() tea.Msg {
		err := repo.AppendQuizResult(context.Background(), data)
		if err != nil {
			log.Warnw("storing quiz result failed", "error", err)
		}
		return resultStoredMsg{err: err}
	}
}

func (s *QuizScreen) nextLabel() string {
	if s.session.Index() == s.session.Len()-1 {
		return "Finish Quiz"
	}
	return "Next Question"
}

func (s *QuizScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	var body string
	switch s.session.Phase() {
	case sess.PhaseFinished:
		body = s.renderFinished(cw)
	default:
		body = s.renderQuestion(cw)
	}
	return lipgloss.NewStyle().Padding(1, 2).Render(body)
}

func (s *QuizScreen) renderQuestion(cw int) string {
	q, ok := s.session.Current()
	if !ok {
		return theme.Hint.Render(fmt.Sprintf("Loading %s quiz for %s...", s.session.Type(), s.session.Goal()))
	}

	var b strings.Builder
	header := fmt.Sprintf("%s Quiz: %s", titleCase(string(s.session.Type())), s.session.Goal())
	counter := fmt.Sprintf("%d of %d", s.session.Index()+1, s.session.Len())
	b.WriteString(theme.Subtitle.Render(header) + "   " + theme.Hint.Render(counter) + "\n\n")
	b.WriteString(theme.Title.Render("Topic: "+q.Topic) + "\n")
	if len(q.Tags) > 0 {
		b.WriteString(theme.Hint.Render("#"+strings.Join(q.Tags, "  #")) + "\n")
	}
	b.WriteString("\n")

	phase := s.session.Phase()
	mc := components.MultiChoice{
		Question:     q.Text,
		Options:      q.Answers,
		CorrectIndex: q.CorrectIndex,
		Cursor:       s.cursor,
		Chosen:       s.session.Selected(),
		Submitted:    phase == sess.PhaseSubmitted,
	}
	if phase == sess.PhaseNotStarted {
		mc.Cursor = -1
	}
	b.WriteString(mc.View())

	switch {
	case s.session.HintLoading():
		b.WriteString("\n" + s.spinner.View("Getting hint..."))
	case s.session.Hint() != "":
		b.WriteString("\n" + theme.Selected.Render("Hint: ") + theme.Body.Render(s.session.Hint()))
	}

	b.WriteString("\n\n")
	switch phase {
	case sess.PhaseNotStarted:
		b.WriteString(components.Button("Start", true))
	case sess.PhaseSubmitted:
		verdict := theme.Incorrect.Render("Incorrect.")
		if s.session.LastCorrect() {
			verdict = theme.Correct.Render("Correct!")
		}
		b.WriteString(verdict + "  " + components.Button(s.nextLabel(), true))
	default:
		b.WriteString(components.Button("Submit", s.session.Selected() >= 0) + " " +
			components.Button("Hint", false) + " " + components.Button("Skip", false))
	}
	return components.Card("", b.String(), cw)
}

func (s *QuizScreen) renderFinished(cw int) string {
	heading := "Quiz Complete!"
	if s.session.Type() == catalog.QuizFinal {
		heading = "Challenge Complete!"
	}
	sc := s.session.FinalScore()
	pct := s.session.Percentage()

	var b strings.Builder
	b.WriteString(theme.Title.Render("🏆 "+heading) + "\n")
	b.WriteString(theme.Subtitle.Render(fmt.Sprintf("You've finished the %s quiz on %s.", s.session.Type(), s.session.Goal())) + "\n\n")
	b.WriteString(theme.Body.Render("Your Score") + "\n")
	b.WriteString(theme.Title.Render(fmt.Sprintf("%d%%", pct)) + "\n")
	b.WriteString(theme.Hint.Render(fmt.Sprintf("%d out of %d correct", sc.Correct, sc.Total)) + "\n")
	b.WriteString(components.NewProgressBar("", float64(pct)/100, false, cw-8).View() + "\n\n")
	b.WriteString(components.Button("Back to Dashboard", true))
	if s.saveErr != nil {
		b.WriteString("\n\n" + theme.Hint.Render("Result could not be saved to your history."))
	}
	return components.Card("", b.String(), cw)
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
