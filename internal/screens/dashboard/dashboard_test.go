package dashboard

import (
	"context"
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

func signedIn() *state.State {
	st := state.New()
	st.Login("Ada", catalog.GoalScience, catalog.StyleAudio)
	return st
}

func TestDashboard_Greeting(t *testing.T) {
	s := New(screen.Deps{State: signedIn()}.WithDefaults())
	view := uitest.Plain(s.View(100, 40))
	for _, want := range []string{"Hi, Ada", "Master Science", "Start Practice Quiz (Audio)", NoScoreText} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestDashboard_StartPracticeQuiz(t *testing.T) {
	st := signedIn()
	s := New(screen.Deps{State: st}.WithDefaults())
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	snap := st.Snapshot()
	if snap.View != state.ViewQuiz || snap.QuizType != catalog.QuizPractice {
		t.Errorf("view/type = %q/%q", snap.View, snap.QuizType)
	}
}

func TestDashboard_VoiceToggleRefreshesMenu(t *testing.T) {
	st := signedIn()
	s := New(screen.Deps{State: st}.WithDefaults())
	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	if !st.Snapshot().VoiceAssistant {
		t.Fatal("expected voice assistant on")
	}
	s.Update(screen.StateChangedMsg{Snapshot: st.Snapshot()})
	if s.menu.Items[2].Value != "On" || s.menu.Selected != 2 {
		t.Errorf("menu = %+v", s.menu)
	}
}

func TestDashboard_LastScore(t *testing.T) {
	st := signedIn()
	st.SetLastQuizScore(&state.Score{Correct: 2, Total: 3})
	s := New(screen.Deps{State: st}.WithDefaults())

	view := uitest.Plain(s.View(100, 40))
	if !strings.Contains(view, "2 / 3 correct") || !strings.Contains(view, "67%") {
		t.Errorf("view missing score:\n%s", view)
	}
}

type resultsRepo struct {
	store.EventRepo
	results []store.QuizResultRecord
}

func (r *resultsRepo) QueryQuizResults(context.Context, store.QueryOpts) ([]store.QuizResultRecord, error) {
	return r.results, nil
}

func TestDashboard_MasteryFromStore(t *testing.T) {
	repo := &resultsRepo{results: []store.QuizResultRecord{{
		Timestamp: time.Now(),
		QuizResultData: store.QuizResultData{
			Learner: "Ada", Correct: 3, Total: 4,
			Topics: []store.TopicTally{{Topic: "Biology", Correct: 3, Attempted: 4}},
		},
	}}}
	s := New(screen.Deps{State: signedIn(), Repo: repo}.WithDefaults())

	cmd := s.Init()
	if cmd == nil {
		t.Fatal("expected a load command")
	}
	s.Update(cmd())
	if s.mastery == nil || *s.mastery != 75 {
		t.Fatalf("mastery = %v", s.mastery)
	}
	if !strings.Contains(uitest.Plain(s.View(100, 40)), "Progress Tracker") {
		t.Error("expected progress card")
	}
}
