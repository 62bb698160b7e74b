package state

import (
	"testing"
	"time"

	"github.com/adaptive-learning/studybuddy/internal/catalog"
)

// fakeTimers collects scheduled callbacks so tests can fire them by hand.
type fakeTimers struct {
	pending []pendingTimer
}

type pendingTimer struct {
	d time.Duration
	f func()
}

func (ft *fakeTimers) schedule(d time.Duration, f func()) func() {
	ft.pending = append(ft.pending, pendingTimer{d: d, f: f})
	return func() {}
}

func (ft *fakeTimers) fire(i int) { ft.pending[i].f() }

func newTestState() (*State, *fakeTimers) {
	ft := &fakeTimers{}
	return New(WithScheduler(ft.schedule)), ft
}

func TestInitialSnapshot(t *testing.T) {
	s, _ := newTestState()
	snap := s.Snapshot()
	if snap.User != nil {
		t.Errorf("User = %+v, want nil", snap.User)
	}
	if snap.View != ViewLogin {
		t.Errorf("View = %q, want login", snap.View)
	}
	if snap.DarkMode || snap.VoiceAssistant {
		t.Error("flags should start false")
	}
	if snap.LastScore != nil {
		t.Error("LastScore should start nil")
	}
	if snap.QuizType != catalog.QuizPractice {
		t.Errorf("QuizType = %q, want practice", snap.QuizType)
	}
}

func TestLogin(t *testing.T) {
	s, _ := newTestState()
	s.Login("  Katabo ", catalog.GoalMath, catalog.StyleVisual)

	snap := s.Snapshot()
	if snap.User == nil {
		t.Fatal("expected user after login")
	}
	if snap.User.Name != "Katabo" {
		t.Errorf("Name = %q, want trimmed", snap.User.Name)
	}
	if snap.View != ViewDashboard {
		t.Errorf("View = %q, want dashboard", snap.View)
	}
}

func TestLogin_BlankNameIsNoop(t *testing.T) {
	s, _ := newTestState()
	calls := 0
	s.Subscribe(func(Snapshot) { calls++ })

	s.Login("   ", catalog.GoalMath, catalog.StyleVisual)

	if s.Snapshot().User != nil {
		t.Error("blank name should not sign in")
	}
	if calls != 0 {
		t.Errorf("subscribers notified %d times, want 0", calls)
	}
}

func TestLoginThenLogoutRestoresInitialState(t *testing.T) {
	for _, g := range catalog.AllGoals() {
		for _, st := range catalog.AllStyles() {
			s, _ := newTestState()
			initial := s.Snapshot()

			s.Login("Ada", g, st)
			s.Logout()

			got := s.Snapshot()
			if got.User != nil || got.View != initial.View || got.DarkMode || got.VoiceAssistant || got.LastScore != nil {
				t.Errorf("goal=%q style=%q: state after logout = %+v", g, st, got)
			}
		}
	}
}

func TestLogoutClearsFlagsAndScore(t *testing.T) {
	s, _ := newTestState()
	s.Login("Ada", catalog.GoalHistory, catalog.StyleAudio)
	s.ToggleDarkMode()
	s.ToggleVoiceAssistant()
	s.SetLastQuizScore(&Score{Correct: 3, Total: 5})

	s.Logout()

	snap := s.Snapshot()
	if snap.DarkMode || snap.VoiceAssistant || snap.LastScore != nil {
		t.Errorf("logout left state behind: %+v", snap)
	}
}

func TestViewForcedToLoginWithoutUser(t *testing.T) {
	s, _ := newTestState()
	s.SetView(ViewInsights)
	if got := s.Snapshot().View; got != ViewLogin {
		t.Errorf("View = %q, want login while signed out", got)
	}

	s.Login("Ada", catalog.GoalMath, catalog.StyleMixed)
	s.SetView(ViewInsights)
	if got := s.Snapshot().View; got != ViewInsights {
		t.Errorf("View = %q, want insights", got)
	}
}

func TestUpdateLearningStyle(t *testing.T) {
	s, _ := newTestState()
	s.UpdateLearningStyle(catalog.StyleAudio)
	if s.Snapshot().User != nil {
		t.Fatal("update without user should be a no-op")
	}

	s.Login("Ada", catalog.GoalScience, catalog.StyleVisual)
	s.UpdateLearningStyle(catalog.StyleMixed)

	u := s.Snapshot().User
	if u.LearningStyle != catalog.StyleMixed {
		t.Errorf("LearningStyle = %q, want Mixed", u.LearningStyle)
	}
	if u.Name != "Ada" || u.Goal != catalog.GoalScience {
		t.Errorf("name/goal changed: %+v", u)
	}
}

func TestStartQuiz(t *testing.T) {
	s, _ := newTestState()
	s.Login("Ada", catalog.GoalMath, catalog.StyleVisual)
	s.StartQuiz(catalog.QuizFinal)

	snap := s.Snapshot()
	if snap.QuizType != catalog.QuizFinal {
		t.Errorf("QuizType = %q, want final", snap.QuizType)
	}
	if snap.View != ViewQuiz {
		t.Errorf("View = %q, want quiz", snap.View)
	}
}

func TestToggles(t *testing.T) {
	s, _ := newTestState()
	s.ToggleDarkMode()
	if !s.DarkMode() {
		t.Error("dark mode should be on")
	}
	s.ToggleDarkMode()
	if s.DarkMode() {
		t.Error("dark mode should be off")
	}
	s.ToggleVoiceAssistant()
	if !s.Snapshot().VoiceAssistant {
		t.Error("voice assistant should be on")
	}
}

func TestSetLastQuizScore(t *testing.T) {
	s, _ := newTestState()
	sc := &Score{Correct: 7, Total: 10}
	s.SetLastQuizScore(sc)
	sc.Correct = 0

	got := s.Snapshot().LastScore
	if got == nil || got.Correct != 7 || got.Total != 10 {
		t.Fatalf("LastScore = %+v, want {7 10}", got)
	}

	s.SetLastQuizScore(nil)
	if s.Snapshot().LastScore != nil {
		t.Error("nil should clear the score")
	}
}

func TestShowToast_DefaultDuration(t *testing.T) {
	s, ft := newTestState()
	s.ShowToast("hello", 0)

	if got := s.Snapshot().ToastMessage(); got != "hello" {
		t.Fatalf("toast = %q", got)
	}
	if len(ft.pending) != 1 || ft.pending[0].d != DefaultToastDuration {
		t.Fatalf("scheduled %+v, want one timer of %v", ft.pending, DefaultToastDuration)
	}

	ft.fire(0)
	if got := s.Snapshot().Toast; got != nil {
		t.Errorf("toast not cleared: %+v", got)
	}
}

func TestShowToast_StaleClearKeepsNewerToast(t *testing.T) {
	s, ft := newTestState()
	s.ShowToast("first", time.Second)
	s.ShowToast("second", time.Second)

	ft.fire(0)
	if got := s.Snapshot().ToastMessage(); got != "second" {
		t.Fatalf("first toast's timer cleared the second: toast = %q", got)
	}

	ft.fire(1)
	if got := s.Snapshot().ToastMessage(); got != "" {
		t.Errorf("toast = %q, want cleared", got)
	}
}

func TestShowToast_SameMessageTwice(t *testing.T) {
	s, ft := newTestState()
	s.ShowToast("same", time.Second)
	s.ShowToast("same", time.Second)

	ft.fire(0)
	if got := s.Snapshot().ToastMessage(); got != "same" {
		t.Errorf("toast = %q, want the second toast to survive", got)
	}
}

func TestWithToastDuration(t *testing.T) {
	ft := &fakeTimers{}
	s := New(WithScheduler(ft.schedule), WithToastDuration(5*time.Second))
	s.ShowToast("x", 0)
	if ft.pending[0].d != 5*time.Second {
		t.Errorf("duration = %v, want 5s", ft.pending[0].d)
	}
}

func TestSubscribe(t *testing.T) {
	s, _ := newTestState()
	var got []View
	unsub := s.Subscribe(func(snap Snapshot) { got = append(got, snap.View) })

	s.Login("Ada", catalog.GoalMath, catalog.StyleVisual)
	s.SetView(ViewSettings)
	unsub()
	s.SetView(ViewInsights)

	want := []View{ViewDashboard, ViewSettings}
	if len(got) != len(want) {
		t.Fatalf("notifications = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("notification %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestSubscriberMayReenter(t *testing.T) {
	s, _ := newTestState()
	s.Subscribe(func(snap Snapshot) {
		if snap.View == ViewQuiz {
			s.SetView(ViewDashboard)
		}
	})
	s.Login("Ada", catalog.GoalMath, catalog.StyleVisual)
	s.StartQuiz(catalog.QuizPractice)

	if got := s.Snapshot().View; got != ViewDashboard {
		t.Errorf("View = %q, want dashboard", got)
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	s, _ := newTestState()
	s.Login("Ada", catalog.GoalMath, catalog.StyleVisual)
	snap := s.Snapshot()
	snap.User.Name = "Mallory"

	if got := s.Snapshot().User.Name; got != "Ada" {
		t.Errorf("Name = %q, snapshot mutation leaked", got)
	}
}

func TestPercent(t *testing.T) {
	tests := []struct {
		correct, total, want int
	}{
		{7, 10, 70},
		{0, 0, 0},
		{1, 3, 33},
		{2, 3, 67},
		{1, 8, 13},
		{5, 5, 100},
	}
	for _, tt := range tests {
		if got := (Score{Correct: tt.correct, Total: tt.total}).Percentage(); got != tt.want {
			t.Errorf("Percentage(%d/%d) = %d, want %d", tt.correct, tt.total, got, tt.want)
		}
	}
}

func TestParseView(t *testing.T) {
	for _, v := range AllViews() {
		got, err := ParseView(string(v))
		if err != nil || got != v {
			t.Errorf("ParseView(%q) = %q, %v", v, got, err)
		}
	}
	if _, err := ParseView("home"); err == nil {
		t.Error("ParseView accepted unknown view")
	}
}
