package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/adaptive-learning/studybuddy/internal/screen"
	"github.com/adaptive-learning/studybuddy/internal/state"
)

// stubScreen is a minimal screen for testing.
type stubScreen struct {
	title   string
	initRan bool
	updates int
}

func (s *stubScreen) Init() tea.Cmd {
	s.initRan = true
	return nil
}
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { s.updates++; return s, nil }
func (s *stubScreen) View(int, int) string                    { return s.title }
func (s *stubScreen) Title() string                           { return s.title }

func newTestRouter() (*Router, *[]*stubScreen) {
	var mounted []*stubScreen
	r := New(func(v state.View) screen.Screen {
		s := &stubScreen{title: string(v)}
		mounted = append(mounted, s)
		return s
	})
	return r, &mounted
}

func TestSyncMountsOnce(t *testing.T) {
	r, mounted := newTestRouter()

	r.Sync(state.ViewDashboard)
	r.Sync(state.ViewDashboard)

	if len(*mounted) != 1 {
		t.Fatalf("mounted %d screens, want 1", len(*mounted))
	}
	if !(*mounted)[0].initRan {
		t.Error("expected Init() to run on mount")
	}
	if r.Current() != state.ViewDashboard || r.Active().Title() != string(state.ViewDashboard) {
		t.Errorf("active = %q", r.Active().Title())
	}
}

func TestSyncReplacesOnViewChange(t *testing.T) {
	r, mounted := newTestRouter()

	r.Sync(state.ViewDashboard)
	r.Sync(state.ViewInsights)
	r.Sync(state.ViewDashboard)

	if len(*mounted) != 3 {
		t.Fatalf("mounted %d screens, want 3", len(*mounted))
	}
	if (*mounted)[0] == (*mounted)[2] {
		t.Error("returning to a view should mount a fresh screen")
	}
}

func TestMountRemountsSameView(t *testing.T) {
	r, mounted := newTestRouter()
	r.Sync(state.ViewQuiz)
	r.Mount(state.ViewQuiz)
	if len(*mounted) != 2 {
		t.Fatalf("mounted %d screens, want 2", len(*mounted))
	}
}

func TestUpdateForwardsToActive(t *testing.T) {
	r, mounted := newTestRouter()
	if r.Update(nil) != nil || r.Render(10, 10) != "" {
		t.Fatal("empty router should be inert")
	}
	r.Sync(state.ViewSettings)
	r.Update(tea.KeyPressMsg{Code: 'x'})
	if (*mounted)[0].updates != 1 {
		t.Errorf("updates = %d, want 1", (*mounted)[0].updates)
	}
	if r.Render(10, 10) != string(state.ViewSettings) {
		t.Errorf("Render = %q", r.Render(10, 10))
	}
}
