package dashboard

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/adaptive-learning/studybuddy/internal/catalog"
	"github.com/adaptive-learning/studybuddy/internal/insights"
	"github.com/adaptive-learning/studybuddy/internal/screen"
	"github.com/adaptive-learning/studybuddy/internal/state"
	"github.com/adaptive-learning/studybuddy/internal/ui/components"
	"github.com/adaptive-learning/studybuddy/internal/ui/layout"
	"github.com/adaptive-learning/studybuddy/internal/ui/theme"
)

// NoScoreText is shown until a quiz has been finished this session.
const NoScoreText = "Take a quiz to see your score."

// masteryMsg carries the overall topic mastery loaded from the store.
type masteryMsg struct {
	percent int
	ok      bool
}

// DashboardScreen is the signed-in home view.
type DashboardScreen struct {
	deps    screen.Deps
	snap    state.Snapshot
	menu    components.Menu
	mastery *int
}

var _ screen.Screen = (*DashboardScreen)(nil)
var _ screen.KeyHintProvider = (*DashboardScreen)(nil)

func New(deps screen.Deps) *DashboardScreen {
	s := &DashboardScreen{deps: deps, snap: deps.State.Snapshot()}
	s.menu = components.NewMenu(s.menuItems())
	return s
}

func (s *DashboardScreen) menuItems() []components.MenuItem {
	style := ""
	if s.snap.User != nil {
		style = string(s.snap.User.LearningStyle)
	}
	voice := "Off"
	if s.snap.VoiceAssistant {
		voice = "On"
	}
	st := s.deps.State
	return []components.MenuItem{
		{Label: fmt.Sprintf("Start Practice Quiz (%s)", style), Action: func() tea.Cmd {
			st.StartQuiz(catalog.QuizPractice)
			return nil
		}},
		{Label: "Study Buddy Chat", Value: "Ask your AI tutor anything.", Action: func() tea.Cmd {
			st.SetView(state.ViewAIStudy)
			return nil
		}},
		{Label: "Voice Assistant", Value: voice, Action: func() tea.Cmd {
			st.ToggleVoiceAssistant()
			return nil
		}},
	}
}

func (s *DashboardScreen) Init() tea.Cmd {
	if s.deps.Repo == nil || s.snap.User == nil {
		return nil
	}
	repo, learner, now := s.deps.Repo, s.snap.User.Name, s.deps.Now()
	log := s.deps.Log
	return func() tea.Msg {
		in, err := insights.Load(context.Background(), repo, learner, now)
		if err != nil {
			log.Warnw("loading mastery failed", "error", err)
			return masteryMsg{}
		}
		correct, attempted := 0, 0
		for _, t := range in.Topics {
			correct += t.Correct
			attempted += t.Attempted
		}
		return masteryMsg{percent: state.Percent(correct, attempted), ok: attempted > 0}
	}
}

func (s *DashboardScreen) Title() string { return "Dashboard" }

func (s *DashboardScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
	}
}

func (s *DashboardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case screen.StateChangedMsg:
		s.snap = msg.Snapshot
		selected := s.menu.Selected
		s.menu = components.NewMenu(s.menuItems())
		s.menu.Selected = selected
		return s, nil
	case masteryMsg:
		if msg.ok {
			p := msg.percent
			s.mastery = &p
		}
		return s, nil
	}

	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *DashboardScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	name, goal := "", ""
	if s.snap.User != nil {
		name, goal = s.snap.User.Name, string(s.snap.User.Goal)
	}

	greeting := theme.Title.Render("Hi, " + name)
	learning := components.Card("Continue Learning", theme.Subtitle.Render(goal)+"\n\n"+s.menu.View(), cw)

	cards := []string{greeting, "", learning, s.lastQuizCard(cw)}
	if s.mastery != nil {
		bar := components.NewProgressBar("", float64(*s.mastery)/100, true, cw-20)
		cards = append(cards, components.Card("Progress Tracker", theme.Hint.Render("Your overall topic mastery.")+"\n"+bar.View(), cw))
	}
	return lipgloss.NewStyle().Padding(1, 2).Render(strings.Join(cards, "\n"))
}

func (s *DashboardScreen) lastQuizCard(cw int) string {
	sc := s.snap.LastScore
	if sc == nil {
		return components.Card("Last Quiz Performance", theme.Hint.Render(NoScoreText), cw)
	}
	pct := sc.Percentage()
	body := theme.Body.Render(fmt.Sprintf("Your Score  %d / %d correct", sc.Correct, sc.Total)) + "\n" +
		components.NewProgressBar("", float64(pct)/100, true, cw-20).View()
	return components.Card("Last Quiz Performance", body, cw)
}
