package insights

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/adaptive-learning/studybuddy/internal/catalog"
	"github.com/adaptive-learning/studybuddy/internal/screen"
	"github.com/adaptive-learning/studybuddy/internal/state"
	"github.com/adaptive-learning/studybuddy/internal/store"
	"github.com/adaptive-learning/studybuddy/internal/ui/uitest"
)

type resultsRepo struct {
	store.EventRepo
	results []store.QuizResultRecord
	err     error
}

func (r *resultsRepo) QueryQuizResults(context.Context, store.QueryOpts) ([]store.QuizResultRecord, error) {
	return r.results, r.err
}

var now = time.Date(2026, 3, 7, 12, 0, 0, 0, time.UTC)

func newTestInsights(repo store.EventRepo) (*InsightsScreen, *state.State) {
	st := state.New()
	st.Login("Ada", catalog.GoalHistory, catalog.StyleVisual)
	deps := screen.Deps{State: st, Now: func() time.Time { return now }}
	if repo != nil {
		deps.Repo = repo
	}
	return New(deps.WithDefaults()), st
}

// load runs Init and feeds back the loaded message, skipping the spinner.
func load(t *testing.T, s *InsightsScreen) {
	t.Helper()
	cmd := s.Init()
	if cmd == nil {
		t.Fatal("expected load command")
	}
	batch, ok := cmd().(tea.BatchMsg)
	if !ok {
		t.Fatalf("expected batch, got %T", cmd())
	}
	s.Update(batch[0]())
}

func TestInsights_EmptyWithoutStore(t *testing.T) {
	s, _ := newTestInsights(nil)
	if s.Init() != nil {
		t.Fatal("no store, no load")
	}
	view := uitest.Plain(s.View(100, 60))
	if !strings.Contains(view, EmptyText) || !strings.Contains(view, "Learn History") {
		t.Errorf("view:\n%s", view)
	}
}

func TestInsights_RendersCharts(t *testing.T) {
	repo := &resultsRepo{results: []store.QuizResultRecord{
		{Timestamp: now.Add(-24 * time.Hour), QuizResultData: store.QuizResultData{
			Learner: "Ada", Correct: 1, Total: 2,
			Topics: []store.TopicTally{{Topic: "Ancient Rome", Correct: 1, Attempted: 2}},
		}},
		{Timestamp: now, QuizResultData: store.QuizResultData{
			Learner: "Ada", Correct: 2, Total: 2,
			Topics: []store.TopicTally{{Topic: "World Wars", Correct: 2, Attempted: 2}},
		}},
		{Timestamp: now, QuizResultData: store.QuizResultData{Learner: "Bob", Correct: 0, Total: 5}},
	}}
	s, _ := newTestInsights(repo)
	load(t, s)

	if len(s.insights.Scores) != 2 || s.insights.CurrentStreak != 2 {
		t.Fatalf("insights = %+v", s.insights)
	}
	view := uitest.Plain(s.View(100, 80))
	for _, want := range []string{"Scores Over Time", "Ancient Rome", "World Wars", "Current streak: 2 days", "Coverage by Topic"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestInsights_LoadError(t *testing.T) {
	s, _ := newTestInsights(&resultsRepo{err: errors.New("locked")})
	load(t, s)
	if !strings.Contains(uitest.Plain(s.View(100, 60)), "Could not load your progress.") {
		t.Error("expected error message")
	}
}

func TestInsights_FinalQuiz(t *testing.T) {
	s, st := newTestInsights(nil)
	s.Update(tea.KeyPressMsg{Code: 'f', Text: "f"})
	snap := st.Snapshot()
	if snap.View != state.ViewQuiz || snap.QuizType != catalog.QuizFinal {
		t.Errorf("view/type = %q/%q", snap.View, snap.QuizType)
	}
}
