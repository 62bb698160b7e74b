package quiz

import (
	"context"
	"errors"
	"math/rand/v2"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/adaptive-learning/studybuddy/internal/catalog"
	"github.com/adaptive-learning/studybuddy/internal/ui/uitest"
	sess "github.com/adaptive-learning/studybuddy/internal/quiz"
	"github.com/adaptive-learning/studybuddy/internal/screen"
	"github.com/adaptive-learning/studybuddy/internal/state"
	"github.com/adaptive-learning/studybuddy/internal/store"
)

type stubHints struct {
	text string
	err  error
}

func (h stubHints) Hint(context.Context, string) (string, error) { return h.text, h.err }

type quizRepo struct {
	store.EventRepo
	stored []store.QuizResultData
	err    error
}

func (r *quizRepo) AppendQuizResult(_ context.Context, data store.QuizResultData) error {
	r.stored = append(r.stored, data)
	return r.err
}

func newTestQuiz(t *testing.T, qt catalog.QuizType, deps screen.Deps) (*QuizScreen, *state.State) {
	t.Helper()
	st := state.New()
	st.Login("Ada", catalog.GoalMath, catalog.StyleVisual)
	st.StartQuiz(qt)
	deps.State = st
	deps.Rand = func() *rand.Rand { return rand.New(rand.NewPCG(1, 2)) }
	return New(deps.WithDefaults()), st
}

func key(k string) tea.KeyPressMsg {
	switch k {
	case "enter":
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case "down":
		return tea.KeyPressMsg{Code: tea.KeyDown}
	}
	r := []rune(k)[0]
	return tea.KeyPressMsg{Code: r, Text: k}
}

// run feeds keys and executes any returned command, feeding its message
// back like the program loop would.
func run(s *QuizScreen, keys ...string) {
	for _, k := range keys {
		_, cmd := s.Update(key(k))
		if cmd != nil {
			if msg := cmd(); msg != nil {
				s.Update(msg)
			}
		}
	}
}

func correctKey(s *QuizScreen) string {
	q, _ := s.session.Current()
	return string(rune('1' + q.CorrectIndex))
}

func TestQuiz_RequiresStart(t *testing.T) {
	s, _ := newTestQuiz(t, catalog.QuizPractice, screen.Deps{})
	if s.session.Phase() != sess.PhaseNotStarted {
		t.Fatalf("phase = %v", s.session.Phase())
	}
	run(s, "1")
	if s.session.Selected() != -1 {
		t.Error("selection before start should be ignored")
	}
	run(s, "enter")
	if s.session.Phase() != sess.PhaseUnanswered {
		t.Fatalf("phase = %v, want unanswered", s.session.Phase())
	}
}

func TestQuiz_FullRunPublishesAndStores(t *testing.T) {
	repo := &quizRepo{}
	s, st := newTestQuiz(t, catalog.QuizPractice, screen.Deps{Repo: repo})
	run(s, "enter")

	for s.session.Phase() != sess.PhaseFinished {
		run(s, correctKey(s), "enter", "enter")
	}

	sc := st.Snapshot().LastScore
	if sc == nil || sc.Correct != sess.PracticeSize || sc.Total != sess.PracticeSize {
		t.Fatalf("last score = %+v", sc)
	}
	if len(repo.stored) != 1 || repo.stored[0].Learner != "Ada" || repo.stored[0].Correct != sess.PracticeSize {
		t.Fatalf("stored = %+v", repo.stored)
	}
	if !strings.Contains(uitest.Plain(s.View(100, 40)), "Quiz Complete!") || !strings.Contains(uitest.Plain(s.View(100, 40)), "100%") {
		t.Error("expected completion view")
	}

	run(s, "enter")
	if st.Snapshot().View != state.ViewDashboard {
		t.Errorf("view = %q, want dashboard", st.Snapshot().View)
	}
}

func TestQuiz_SkipCountsNothing(t *testing.T) {
	s, st := newTestQuiz(t, catalog.QuizPractice, screen.Deps{})
	run(s, "enter")
	for s.session.Phase() != sess.PhaseFinished {
		run(s, "s")
	}
	if sc := st.Snapshot().LastScore; sc == nil || sc.Correct != 0 {
		t.Fatalf("last score = %+v", sc)
	}
}

func TestQuiz_FinalIsChallenge(t *testing.T) {
	s, _ := newTestQuiz(t, catalog.QuizFinal, screen.Deps{})
	if s.session.Len() != len(catalog.Questions(catalog.GoalMath)) {
		t.Fatalf("final quiz has %d questions", s.session.Len())
	}
	run(s, "enter")
	for s.session.Phase() != sess.PhaseFinished {
		run(s, "s")
	}
	if !strings.Contains(uitest.Plain(s.View(100, 40)), "Challenge Complete!") {
		t.Error("expected challenge heading")
	}
}

func TestQuiz_Hint(t *testing.T) {
	s, _ := newTestQuiz(t, catalog.QuizPractice, screen.Deps{Hints: stubHints{text: "Think of squares."}})
	run(s, "enter")

	_, cmd := s.Update(key("h"))
	if cmd == nil || !s.session.HintLoading() {
		t.Fatal("expected hint request in flight")
	}
	s.Update(hintMsg{index: s.session.Index(), text: "Think of squares."})
	if s.session.Hint() != "Think of squares." {
		t.Errorf("hint = %q", s.session.Hint())
	}
	if !strings.Contains(uitest.Plain(s.View(100, 40)), "Think of squares.") {
		t.Error("hint not rendered")
	}
}

func TestQuiz_HintFailureAndMissingSource(t *testing.T) {
	for name, deps := range map[string]screen.Deps{
		"error":     {Hints: stubHints{err: errors.New("boom")}},
		"no source": {},
	} {
		t.Run(name, func(t *testing.T) {
			s, _ := newTestQuiz(t, catalog.QuizPractice, deps)
			run(s, "enter")
			prompt, idx, ok := s.session.BeginHint()
			if !ok {
				t.Fatal("BeginHint refused")
			}
			s.Update(s.fetchHint(prompt, idx)())
			if s.session.Hint() != sess.HintFailureText {
				t.Errorf("hint = %q", s.session.Hint())
			}
		})
	}
}

func TestQuiz_RebuildsWhenTypeChanges(t *testing.T) {
	s, st := newTestQuiz(t, catalog.QuizPractice, screen.Deps{})
	run(s, "enter")

	st.StartQuiz(catalog.QuizFinal)
	s.Update(screen.StateChangedMsg{Snapshot: st.Snapshot()})

	if s.session.Type() != catalog.QuizFinal || s.session.Phase() != sess.PhaseNotStarted {
		t.Errorf("type/phase = %v/%v", s.session.Type(), s.session.Phase())
	}
}

func TestQuiz_StoreFailureStillFinishes(t *testing.T) {
	repo := &quizRepo{err: errors.New("disk full")}
	s, st := newTestQuiz(t, catalog.QuizPractice, screen.Deps{Repo: repo})
	run(s, "enter")
	for s.session.Phase() != sess.PhaseFinished {
		run(s, "s")
	}
	if st.Snapshot().LastScore == nil {
		t.Fatal("score should still be published")
	}
	if !strings.Contains(uitest.Plain(s.View(100, 40)), "could not be saved") {
		t.Error("expected save warning")
	}
}
