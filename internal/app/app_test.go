package app

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adaptive-learning/studybuddy/internal/catalog"
	"github.com/adaptive-learning/studybuddy/internal/screen"
	"github.com/adaptive-learning/studybuddy/internal/state"
	"github.com/adaptive-learning/studybuddy/internal/ui/theme"
	"github.com/adaptive-learning/studybuddy/internal/ui/uitest"
	"github.com/adaptive-learning/studybuddy/internal/voice"
)

func keyPress(k string) tea.KeyPressMsg {
	switch k {
	case "enter":
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case "esc":
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	case "tab":
		return tea.KeyPressMsg{Code: tea.KeyTab}
	case "down":
		return tea.KeyPressMsg{Code: tea.KeyDown}
	case "ctrl+d":
		return tea.KeyPressMsg{Code: 'd', Mod: tea.ModCtrl}
	}
	r := []rune(k)[0]
	return tea.KeyPressMsg{Code: r, Text: k}
}

func newTestApp(typed *voice.TypedRecognizer) *AppModel {
	m := newAppModel(screen.Deps{State: state.New()}, typed)
	m.Init()
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return m
}

// settle delivers the pending state change the way the program loop
// would after a mutation.
func settle(m *AppModel) {
	select {
	case <-m.changes:
	default:
	}
	m.Update(stateChangedMsg{})
}

func signIn(t *testing.T, m *AppModel) {
	t.Helper()
	m.state.Login("Ada", catalog.GoalMath, catalog.StyleVisual)
	settle(m)
	require.Equal(t, state.ViewDashboard, m.router.Current())
}

func TestApp_StartsOnLogin(t *testing.T) {
	m := newTestApp(nil)
	assert.Equal(t, state.ViewLogin, m.router.Current())
	assert.Contains(t, uitest.Plain(m.render()), "Welcome to StudyBuddy")
	assert.NotContains(t, uitest.Plain(m.render()), "Recommends")
}

func TestApp_SubscribeSignalsWithoutBlocking(t *testing.T) {
	m := newAppModel(screen.Deps{State: state.New()}, nil)
	unsubscribe := m.subscribe()
	defer unsubscribe()

	m.state.ToggleDarkMode()
	m.state.ToggleDarkMode()
	m.state.ToggleDarkMode()

	assert.Len(t, m.changes, 1)
}

func TestApp_LoginShowsShell(t *testing.T) {
	m := newTestApp(nil)
	signIn(t, m)

	view := uitest.Plain(m.render())
	for _, want := range []string{"Home", "Recommends", "Insights", "Settings", "Logout", "Hi, Ada"} {
		assert.Contains(t, view, want)
	}
}

func TestApp_SidebarNavigation(t *testing.T) {
	m := newTestApp(nil)
	signIn(t, m)

	m.Update(keyPress("tab"))
	require.True(t, m.sidebarFocused)
	m.Update(keyPress("down"))
	m.Update(keyPress("down"))
	m.Update(keyPress("enter"))
	settle(m)

	assert.Equal(t, state.ViewInsights, m.router.Current())
	assert.False(t, m.sidebarFocused)
}

func TestApp_SidebarLogout(t *testing.T) {
	m := newTestApp(nil)
	signIn(t, m)

	m.Update(keyPress("tab"))
	for range navEntries {
		m.Update(keyPress("down"))
	}
	m.Update(keyPress("enter"))
	settle(m)

	assert.False(t, m.state.Snapshot().LoggedIn())
	assert.Equal(t, state.ViewLogin, m.router.Current())
}

func TestApp_EscReturnsToDashboard(t *testing.T) {
	m := newTestApp(nil)
	signIn(t, m)
	m.state.SetView(state.ViewSettings)
	settle(m)

	m.Update(keyPress("esc"))
	settle(m)
	assert.Equal(t, state.ViewDashboard, m.router.Current())
}

func TestApp_DarkModeRestyles(t *testing.T) {
	m := newTestApp(nil)
	signIn(t, m)
	defer theme.Apply(false)

	m.Update(keyPress("ctrl+d"))
	settle(m)
	assert.True(t, theme.IsDark())
	assert.True(t, m.state.Snapshot().DarkMode)
}

func runPalette(m *AppModel, utterance string) {
	m.Update(keyPress(":"))
	m.palette.Model.SetValue(utterance)
	m.Update(keyPress("enter"))
}

func TestApp_PaletteRunsCommandDirectly(t *testing.T) {
	m := newTestApp(nil)
	signIn(t, m)

	runPalette(m, "Go to Insights")
	settle(m)

	assert.False(t, m.paletteOpen)
	assert.Equal(t, state.ViewInsights, m.router.Current())
	assert.Equal(t, "Navigating to Insights", m.state.Snapshot().ToastMessage())
}

func TestApp_PaletteNeedsListeningSession(t *testing.T) {
	typed := voice.NewTypedRecognizer()
	m := newTestApp(typed)
	signIn(t, m)

	runPalette(m, "go to settings")
	settle(m)
	assert.Equal(t, state.ViewDashboard, m.router.Current())
	assert.Equal(t, voice.ToastOff, m.state.Snapshot().ToastMessage())
}

func TestApp_PaletteFeedsTypedRecognizer(t *testing.T) {
	typed := voice.NewTypedRecognizer()
	m := newTestApp(typed)
	signIn(t, m)

	stream, err := typed.Start(context.Background())
	require.NoError(t, err)
	defer stream.Stop()

	runPalette(m, "start quiz")
	ev := <-stream.Events()
	assert.Equal(t, "start quiz", ev.Transcript)
	assert.True(t, ev.Final)
}

func TestApp_ColonIsTextInChat(t *testing.T) {
	m := newTestApp(nil)
	signIn(t, m)
	m.state.SetView(state.ViewAIStudy)
	settle(m)

	m.Update(keyPress(":"))
	assert.False(t, m.paletteOpen)
}

func TestApp_TooSmall(t *testing.T) {
	m := newTestApp(nil)
	m.Update(tea.WindowSizeMsg{Width: 40, Height: 10})
	assert.True(t, strings.Contains(uitest.Plain(m.render()), "Terminal too small!"))
}

func TestApp_CompactWidthHidesSidebarUntilFocused(t *testing.T) {
	m := newTestApp(nil)
	signIn(t, m)
	m.Update(tea.WindowSizeMsg{Width: 90, Height: 40})

	assert.NotContains(t, uitest.Plain(m.render()), "Recommends")

	m.Update(keyPress("tab"))
	assert.Contains(t, uitest.Plain(m.render()), "Recommends")
}
