// Package recommendations lists learning materials for the learner's
// goal with search, type filters and a model-backed fallback search.
package recommendations

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/adaptive-learning/studybuddy/internal/catalog"
	"github.com/adaptive-learning/studybuddy/internal/screen"
	"github.com/adaptive-learning/studybuddy/internal/search"
	"github.com/adaptive-learning/studybuddy/internal/ui/components"
	"github.com/adaptive-learning/studybuddy/internal/ui/layout"
	"github.com/adaptive-learning/studybuddy/internal/ui/theme"
)

const (
	focusSearch = iota
	focusFilter
	focusPractice
	focusStart
	focusCount
)

// dynamicMsg carries finder results for the search term of request seq.
type dynamicMsg struct {
	seq       int
	materials []catalog.Material
}

// RecommendationsScreen implements screen.Screen for the materials view.
type RecommendationsScreen struct {
	deps   screen.Deps
	goal   catalog.Goal
	static []catalog.Material

	input  components.TextInput
	filter components.Selector
	focus  int

	term      string
	dynamic   []catalog.Material
	searching bool
	seq       int
	spinner   components.Spinner

	practice bool
}

var _ screen.Screen = (*RecommendationsScreen)(nil)
var _ screen.KeyHintProvider = (*RecommendationsScreen)(nil)
var _ screen.TextCapturer = (*RecommendationsScreen)(nil)

func New(deps screen.Deps) *RecommendationsScreen {
	goal := catalog.GoalMath
	if u := deps.State.Snapshot().User; u != nil {
		goal = u.Goal
	}
	return &RecommendationsScreen{
		deps:   deps,
		goal:   goal,
		static: catalog.Materials(goal),
		input:  components.NewTextInput("Search by title, source, or video...", "", 120),
		filter: components.NewSelector("Type", search.Filters(goal), search.All),
	}
}

func (s *RecommendationsScreen) Init() tea.Cmd { return s.input.Init() }

func (s *RecommendationsScreen) Title() string { return "Recommendations" }

func (s *RecommendationsScreen) CapturingText() bool { return s.focus == focusSearch }

func (s *RecommendationsScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{{Key: "↑↓", Description: "Focus"}}
	switch s.focus {
	case focusSearch:
		hints = append(hints, layout.KeyHint{Key: "Enter", Description: "Search"})
	case focusFilter:
		hints = append(hints, layout.KeyHint{Key: "←→", Description: "Filter"})
	case focusPractice:
		hints = append(hints, layout.KeyHint{Key: "Space", Description: "Toggle"})
	case focusStart:
		hints = append(hints, layout.KeyHint{Key: "Enter", Description: "Start quiz"})
	}
	return hints
}

// Result is what the list currently shows.
func (s *RecommendationsScreen) Result() search.Result {
	return search.Resolve(s.static, s.dynamic, s.filter.Value(), s.term)
}

func (s *RecommendationsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case dynamicMsg:
		if msg.seq == s.seq {
			s.dynamic = msg.materials
			s.searching = false
		}
		return s, nil

	case components.SpinnerTickMsg:
		if !s.searching {
			return s, nil
		}
		s.spinner.Advance()
		return s, components.SpinnerTick()

	case tea.KeyPressMsg:
		return s, s.handleKey(msg)
	}

	if s.focus == focusSearch {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *RecommendationsScreen) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "up":
		return s.move(-1)
	case "down":
		return s.move(1)
	}

	switch s.focus {
	case focusSearch:
		if msg.String() == "enter" {
			return s.submit()
		}
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return cmd
	case focusFilter:
		s.filter, _ = s.filter.Update(msg)
	case focusPractice:
		if k := msg.String(); k == "space" || k == "enter" {
			s.practice = !s.practice
		}
	case focusStart:
		if msg.String() == "enter" && s.practice {
			s.deps.State.StartQuiz(catalog.QuizPractice)
		}
	}
	return nil
}

func (s *RecommendationsScreen) move(delta int) tea.Cmd {
	s.focus = (s.focus + delta + focusCount) % focusCount
	if s.focus == focusSearch {
		return s.input.Focus()
	}
	s.input.Blur()
	return nil
}

// submit applies the typed query. The finder runs only when no static
// material of any type matches.
func (s *RecommendationsScreen) submit() tea.Cmd {
	s.term = s.input.Value()
	s.dynamic = nil
	s.seq++
	s.searching = false

	if s.deps.Finder == nil || !search.NeedsDynamic(s.static, s.term) {
		return nil
	}

	s.searching = true
	seq, finder, term, goal := s.seq, s.deps.Finder, s.term, s.goal
	fetch := func() tea.Msg {
		return dynamicMsg{seq: seq, materials: finder.FindMaterials(context.Background(), term, goal)}
	}
	return tea.Batch(fetch, components.SpinnerTick())
}

func (s *RecommendationsScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	var b strings.Builder

	b.WriteString(theme.Title.Render("Recommendations") + "\n")
	b.WriteString(theme.Subtitle.Render("For your goal: "+string(s.goal)) + "\n\n")
	b.WriteString(s.input.View() + "\n")
	b.WriteString(s.filter.View(s.focus == focusFilter) + "\n\n")

	b.WriteString(s.renderList(cw))

	check := "[ ]"
	if s.practice {
		check = "[x]"
	}
	checkStyle := theme.Unselected
	if s.focus == focusPractice {
		checkStyle = theme.Selected
	}
	b.WriteString("\n" + checkStyle.Render(check+" Start a practice quiz on these topics") + "  ")
	b.WriteString(components.Button("Start", s.focus == focusStart && s.practice))

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}

func (s *RecommendationsScreen) renderList(cw int) string {
	if s.searching {
		return s.spinner.View("Searching for materials...") + "\n" +
			theme.Hint.Render("The AI is finding the best resources for you.") + "\n"
	}
	res := s.Result()
	if res.NoResults {
		return theme.Body.Render("No materials found.") + "\n" +
			theme.Hint.Render("Try adjusting your search or filter.") + "\n"
	}

	var b strings.Builder
	for _, m := range res.Materials {
		var item strings.Builder
		item.WriteString(theme.Hint.Render(fmt.Sprintf("[%s] ", m.Type)) + theme.Body.Bold(true).Render(m.Title) + "\n")
		item.WriteString(theme.Hint.Render(m.Source+"  "+m.URL))
		if len(m.Videos) > 0 {
			item.WriteString("\n" + theme.Subtitle.Render("Related Videos:"))
			for _, v := range m.Videos {
				item.WriteString("\n  ▶ " + v.Title + "  " + theme.Hint.Render(v.URL))
			}
		}
		b.WriteString(components.Card("", item.String(), cw) + "\n")
	}
	return b.String()
}
