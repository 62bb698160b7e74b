// Package insights draws the learner's progress charts from stored quiz
// results.
package insights

import (
	"context"
	"fmt"
	"image/color"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/adaptive-learning/studybuddy/internal/catalog"
	data "github.com/adaptive-learning/studybuddy/internal/insights"
	"github.com/adaptive-learning/studybuddy/internal/screen"
	"github.com/adaptive-learning/studybuddy/internal/ui/components"
	"github.com/adaptive-learning/studybuddy/internal/ui/layout"
	"github.com/adaptive-learning/studybuddy/internal/ui/theme"
)

// EmptyText replaces the charts until a quiz has been recorded.
const EmptyText = "Take a quiz to see your insights."

// maxScorePoints bounds the scores chart to the most recent quizzes.
const maxScorePoints = 10

var heatGlyphs = []string{"·", "░", "▒", "█"}

type loadedMsg struct {
	insights data.Insights
	err      error
}

// InsightsScreen implements screen.Screen for the progress view.
type InsightsScreen struct {
	deps    screen.Deps
	goal    catalog.Goal
	learner string

	loading  bool
	insights data.Insights
	err      error
	spinner  components.Spinner
}

var _ screen.Screen = (*InsightsScreen)(nil)
var _ screen.KeyHintProvider = (*InsightsScreen)(nil)

func New(deps screen.Deps) *InsightsScreen {
	s := &InsightsScreen{deps: deps, goal: catalog.GoalMath}
	if u := deps.State.Snapshot().User; u != nil {
		s.goal, s.learner = u.Goal, u.Name
	}
	return s
}

func (s *InsightsScreen) Init() tea.Cmd {
	if s.deps.Repo == nil {
		return nil
	}
	s.loading = true
	repo, learner, now := s.deps.Repo, s.learner, s.deps.Now()
	load := func() tea.Msg {
		in, err := data.Load(context.Background(), repo, learner, now)
		return loadedMsg{insights: in, err: err}
	}
	return tea.Batch(load, components.SpinnerTick())
}

func (s *InsightsScreen) Title() string { return "Insights" }

func (s *InsightsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{{Key: "F", Description: "Take Final Quiz"}}
}

func (s *InsightsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		s.loading = false
		s.insights, s.err = msg.insights, msg.err
		if msg.err != nil {
			s.deps.Log.Warnw("loading insights failed", "error", msg.err)
		}
	case components.SpinnerTickMsg:
		if s.loading {
			s.spinner.Advance()
			return s, components.SpinnerTick()
		}
	case tea.KeyPressMsg:
		if k := msg.String(); k == "f" || k == "enter" {
			s.deps.State.StartQuiz(catalog.QuizFinal)
		}
	}
	return s, nil
}

func (s *InsightsScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	parts := []string{theme.Title.Render("Progress Insights")}

	switch {
	case s.loading:
		parts = append(parts, s.spinner.View("Loading your progress..."))
	case s.err != nil:
		parts = append(parts, theme.Incorrect.Render("Could not load your progress."))
	case s.insights.Empty():
		parts = append(parts, theme.Hint.Render(EmptyText))
	default:
		parts = append(parts,
			components.Card("📈 Scores Over Time", s.renderScores(cw), cw),
			components.Card("📊 Weak vs Strong Topics", s.renderTopics(cw), cw),
			components.Card("🗓️ Study Streak", s.renderStreak(), cw),
			components.Card("🥧 Coverage by Topic", s.renderCoverage(cw), cw),
		)
	}

	challenge := theme.Body.Render(fmt.Sprintf("Take the final quiz to test your overall knowledge on %s.", s.goal)) +
		"\n\n" + components.Button("Take Final Quiz", true)
	parts = append(parts, components.Card("Mastery Challenge", challenge, cw))

	return lipgloss.NewStyle().Padding(1, 2).Render(strings.Join(parts, "\n"))
}

func (s *InsightsScreen) renderScores(cw int) string {
	points := s.insights.Scores
	if len(points) > maxScorePoints {
		points = points[len(points)-maxScorePoints:]
	}
	lines := make([]string, len(points))
	for i, p := range points {
		lines[i] = components.NewProgressBar(fmt.Sprintf("%-6s", p.Label), float64(p.Percent)/100, true, cw-6).View()
	}
	return strings.Join(lines, "\n")
}

func (s *InsightsScreen) renderTopics(cw int) string {
	width := 0
	for _, t := range s.insights.Topics {
		width = max(width, lipgloss.Width(t.Topic))
	}
	lines := make([]string, len(s.insights.Topics))
	for i, t := range s.insights.Topics {
		bar := components.NewProgressBar(fmt.Sprintf("%-*s", width, t.Topic), float64(t.Percent)/100, true, cw-6)
		bar.Fill = bandColor(t.Band)
		lines[i] = bar.View()
	}
	return strings.Join(lines, "\n")
}

func bandColor(b data.Band) color.Color {
	switch b {
	case data.Strong:
		return theme.Success
	case data.Fair:
		return theme.Warning
	default:
		return theme.Error
	}
}

// renderStreak draws the day grid as weeks of seven cells, oldest first.
func (s *InsightsScreen) renderStreak() string {
	var b strings.Builder
	cell := lipgloss.NewStyle().Foreground(theme.Primary)
	for i, d := range s.insights.Streak {
		b.WriteString(cell.Render(heatGlyphs[min(d.Intensity, len(heatGlyphs)-1)]) + " ")
		if i%7 == 6 {
			b.WriteString("\n")
		}
	}
	days := "days"
	if s.insights.CurrentStreak == 1 {
		days = "day"
	}
	b.WriteString(theme.Hint.Render(fmt.Sprintf("Current streak: %d %s", s.insights.CurrentStreak, days)))
	return b.String()
}

func (s *InsightsScreen) renderCoverage(cw int) string {
	width := 0
	for _, c := range s.insights.Coverage {
		width = max(width, lipgloss.Width(c.Topic))
	}
	lines := make([]string, len(s.insights.Coverage))
	for i, c := range s.insights.Coverage {
		bar := components.NewProgressBar(fmt.Sprintf("%-*s", width, c.Topic), float64(c.Share)/100, true, cw-6)
		bar.Fill = theme.Accent
		lines[i] = bar.View()
	}
	return strings.Join(lines, "\n")
}
