package login

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/adaptive-learning/studybuddy/internal/catalog"
	"github.com/adaptive-learning/studybuddy/internal/screen"
	"github.com/adaptive-learning/studybuddy/internal/state"
	"github.com/adaptive-learning/studybuddy/internal/ui/uitest"
)

func newTestLogin() (*LoginScreen, *state.State) {
	st := state.New()
	return New(screen.Deps{State: st}), st
}

func press(s *LoginScreen, keys ...tea.KeyPressMsg) {
	for _, k := range keys {
		s.Update(k)
	}
}

var (
	down  = tea.KeyPressMsg{Code: tea.KeyDown}
	right = tea.KeyPressMsg{Code: tea.KeyRight}
	enter = tea.KeyPressMsg{Code: tea.KeyEnter}
)

func TestLogin_DefaultsSignIn(t *testing.T) {
	s, st := newTestLogin()
	press(s, down, down, down, enter)

	snap := st.Snapshot()
	if !snap.LoggedIn() {
		t.Fatal("expected learner to be signed in")
	}
	if snap.User.Name != DefaultName || snap.User.Goal != catalog.GoalMath || snap.User.LearningStyle != catalog.StyleVisual {
		t.Errorf("user = %+v", *snap.User)
	}
	if snap.View != state.ViewDashboard {
		t.Errorf("view = %q, want dashboard", snap.View)
	}
}

func TestLogin_SelectorsChangeProfile(t *testing.T) {
	s, st := newTestLogin()
	// Enter on the style selector moves to the submit row; the second submits.
	press(s, down, right, down, right, right, enter, enter)

	u := st.Snapshot().User
	if u == nil {
		t.Fatal("expected learner to be signed in")
	}
	if u.Goal != catalog.GoalHistory || u.LearningStyle != catalog.StyleMixed {
		t.Errorf("goal/style = %q/%q", u.Goal, u.LearningStyle)
	}
}

func TestLogin_BlankNameRejected(t *testing.T) {
	s, st := newTestLogin()
	s.name.Model.SetValue("   ")
	press(s, enter)

	if st.Snapshot().LoggedIn() {
		t.Fatal("blank name must not sign in")
	}
	if !strings.Contains(uitest.Plain(s.View(100, 30)), "Please enter your name.") {
		t.Error("expected validation message")
	}
}

func TestLogin_CapturesTextOnlyOnNameField(t *testing.T) {
	s, _ := newTestLogin()
	if !s.CapturingText() {
		t.Error("name field should capture text")
	}
	press(s, down)
	if s.CapturingText() {
		t.Error("goal selector should not capture text")
	}
}

func TestLogin_BannerFitsTerminal(t *testing.T) {
	s, _ := newTestLogin()

	if v := uitest.Plain(s.View(100, 40)); !strings.Contains(v, "|___/") {
		t.Error("tall wide terminal should show the full banner")
	}
	if v := uitest.Plain(s.View(48, 40)); !strings.Contains(v, bannerCompact) {
		t.Error("narrow terminal should show the compact banner")
	}
	if v := uitest.Plain(s.View(100, 20)); strings.Contains(v, "|___/") || strings.Contains(v, bannerCompact) {
		t.Error("short terminal should leave the banner out")
	}
}
