package app

import (
	"fmt"
	"os"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/adaptive-learning/studybuddy/internal/router"
	"github.com/adaptive-learning/studybuddy/internal/screen"
	"github.com/adaptive-learning/studybuddy/internal/screens/dashboard"
	"github.com/adaptive-learning/studybuddy/internal/screens/insights"
	"github.com/adaptive-learning/studybuddy/internal/screens/login"
	"github.com/adaptive-learning/studybuddy/internal/screens/quiz"
	"github.com/adaptive-learning/studybuddy/internal/screens/recommendations"
	"github.com/adaptive-learning/studybuddy/internal/screens/settings"
	"github.com/adaptive-learning/studybuddy/internal/screens/studybuddy"
	"github.com/adaptive-learning/studybuddy/internal/state"
	"github.com/adaptive-learning/studybuddy/internal/ui/components"
	"github.com/adaptive-learning/studybuddy/internal/ui/layout"
	"github.com/adaptive-learning/studybuddy/internal/ui/theme"
	"github.com/adaptive-learning/studybuddy/internal/voice"
)

// stateChangedMsg wakes the model after a state mutation.
type stateChangedMsg struct{}

type navEntry struct {
	label  string
	view   state.View
	logout bool
}

var navEntries = []navEntry{
	{label: "Home", view: state.ViewDashboard},
	{label: "Recommends", view: state.ViewRecommendations},
	{label: "Insights", view: state.ViewInsights},
	{label: "Settings", view: state.ViewSettings},
	{label: "Logout", logout: true},
}

// Options configures the TUI.
type Options struct {
	Deps screen.Deps

	// Recognizer backs the voice assistant. nil means unsupported.
	Recognizer voice.Recognizer

	// Typed, when set, receives utterances typed into the command
	// palette. Without it the palette runs commands directly.
	Typed *voice.TypedRecognizer
}

// AppModel is the root Bubble Tea model: the layout shell around the
// active view.
type AppModel struct {
	deps    screen.Deps
	state   *state.State
	router  *router.Router
	snap    state.Snapshot
	changes chan struct{}
	typed   *voice.TypedRecognizer

	sidebarFocused bool
	sidebarCursor  int

	paletteOpen bool
	palette     components.TextInput

	width  int
	height int
}

func newAppModel(deps screen.Deps, typed *voice.TypedRecognizer) *AppModel {
	deps = deps.WithDefaults()
	m := &AppModel{
		deps:    deps,
		state:   deps.State,
		changes: make(chan struct{}, 1),
		typed:   typed,
	}
	m.router = router.New(m.newScreen)
	m.snap = m.state.Snapshot()
	theme.Apply(m.snap.DarkMode)
	return m
}

func (m *AppModel) newScreen(v state.View) screen.Screen {
	switch v {
	case state.ViewLogin:
		return login.New(m.deps)
	case state.ViewDashboard:
		return dashboard.New(m.deps)
	case state.ViewQuiz:
		return quiz.New(m.deps)
	case state.ViewRecommendations:
		return recommendations.New(m.deps)
	case state.ViewInsights:
		return insights.New(m.deps)
	case state.ViewAIStudy:
		return studybuddy.New(m.deps)
	case state.ViewSettings:
		return settings.New(m.deps)
	}
	return dashboard.New(m.deps)
}

// subscribe forwards state mutations to the change channel without
// blocking the mutator.
func (m *AppModel) subscribe() (unsubscribe func()) {
	return m.state.Subscribe(func(state.Snapshot) {
		select {
		case m.changes <- struct{}{}:
		default:
		}
	})
}

func (m *AppModel) listen() tea.Cmd {
	return func() tea.Msg {
		<-m.changes
		return stateChangedMsg{}
	}
}

func (m *AppModel) Init() tea.Cmd {
	return tea.Batch(m.router.Sync(m.snap.View), m.listen())
}

func (m *AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, m.router.Update(msg)

	case stateChangedMsg:
		return m, tea.Batch(m.applySnapshot(), m.listen())

	case tea.KeyPressMsg:
		return m, m.handleKey(msg)
	}

	return m, m.router.Update(msg)
}

// applySnapshot re-reads the state, restyles, mounts the screen for the
// current view and tells the active screen what changed.
func (m *AppModel) applySnapshot() tea.Cmd {
	m.snap = m.state.Snapshot()
	theme.Apply(m.snap.DarkMode)
	if !m.snap.LoggedIn() {
		m.sidebarFocused = false
		m.closePalette()
	}
	mount := m.router.Sync(m.snap.View)
	return tea.Batch(mount, m.router.Update(screen.StateChangedMsg{Snapshot: m.snap}))
}

func (m *AppModel) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	key := msg.String()
	if key == "ctrl+c" {
		return tea.Quit
	}

	if m.paletteOpen {
		return m.handlePaletteKey(msg)
	}

	if !m.snap.LoggedIn() {
		return m.router.Update(msg)
	}

	switch key {
	case "tab":
		m.sidebarFocused = !m.sidebarFocused
		return nil
	case "ctrl+d":
		m.state.ToggleDarkMode()
		return nil
	}

	if m.sidebarFocused {
		return m.handleSidebarKey(key)
	}

	capturing := false
	if tc, ok := m.router.Active().(screen.TextCapturer); ok {
		capturing = tc.CapturingText()
	}

	switch key {
	case "esc":
		if m.snap.View != state.ViewDashboard {
			m.state.SetView(state.ViewDashboard)
			return nil
		}
	case ":":
		if !capturing {
			m.paletteOpen = true
			m.palette = components.NewTextInput("say a command, e.g. go to insights", "", 80)
			return m.palette.Init()
		}
	}
	return m.router.Update(msg)
}

func (m *AppModel) handleSidebarKey(key string) tea.Cmd {
	switch key {
	case "up", "k":
		if m.sidebarCursor > 0 {
			m.sidebarCursor--
		}
	case "down", "j":
		if m.sidebarCursor < len(navEntries)-1 {
			m.sidebarCursor++
		}
	case "enter", "space":
		e := navEntries[m.sidebarCursor]
		m.sidebarFocused = false
		if e.logout {
			m.state.Logout()
			return nil
		}
		m.state.SetView(e.view)
	case "esc":
		m.sidebarFocused = false
	}
	return nil
}

func (m *AppModel) handlePaletteKey(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		m.closePalette()
		return nil
	case "enter":
		utterance := strings.TrimSpace(m.palette.Value())
		m.closePalette()
		if utterance != "" {
			m.runUtterance(utterance)
		}
		return nil
	}
	var cmd tea.Cmd
	m.palette, cmd = m.palette.Update(msg)
	return cmd
}

func (m *AppModel) closePalette() {
	m.paletteOpen = false
	m.palette.Reset()
	m.palette.Blur()
}

// runUtterance hands a typed command to the listening recognizer, so it
// takes the same path as speech. Without a typed recognizer the command
// runs directly.
func (m *AppModel) runUtterance(u string) {
	if m.typed == nil {
		voice.Execute(voice.Interpret(voice.Normalize(u)), m.state)
		return
	}
	if !m.typed.Say(u) {
		m.state.ShowToast(voice.ToastOff, 0)
	}
}

func (m *AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true
	v.SetContent(m.render())
	return v
}

// render draws the whole frame for the current terminal size.
func (m *AppModel) render() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.headerRight(), m.width)
	footer := layout.RenderFooter(m.footerHints(), m.width)

	var bottom []string
	if t := m.snap.ToastMessage(); t != "" {
		bottom = append(bottom, layout.RenderToast(t, m.width))
	}
	if m.paletteOpen {
		bottom = append(bottom, theme.Selected.Render(" : ")+m.palette.View())
	}

	bodyHeight := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer)-len(bottom), 0)
	body := m.renderBody(bodyHeight)
	content := strings.Join(append([]string{body}, bottom...), "\n")

	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// renderBody draws the sidebar and the active screen. Compact terminals
// only show the sidebar while it has focus.
func (m *AppModel) renderBody(height int) string {
	if !m.snap.LoggedIn() {
		return m.router.Render(m.width, height)
	}
	if layout.IsCompactWidth(m.width) && !m.sidebarFocused {
		return m.router.Render(m.width, height)
	}

	items := make([]layout.NavItem, len(navEntries))
	for i, e := range navEntries {
		items[i] = layout.NavItem{Label: e.label, Active: !e.logout && e.view == m.snap.View}
	}
	sidebar := layout.RenderSidebar(items, m.sidebarCursor, m.sidebarFocused, height)
	contentWidth := max(m.width-lipgloss.Width(sidebar)-1, 0)
	main := lipgloss.NewStyle().
		Width(contentWidth).
		Height(height).
		Render(m.router.Render(contentWidth, height))
	return lipgloss.JoinHorizontal(lipgloss.Top, sidebar, " ", main)
}

func (m *AppModel) headerRight() string {
	if m.snap.User == nil {
		return ""
	}
	right := m.snap.User.Name + " · " + string(m.snap.User.Goal)
	if m.snap.VoiceAssistant {
		right = "● mic  " + right
	}
	return right + "  "
}

func (m *AppModel) footerHints() []layout.KeyHint {
	if m.paletteOpen {
		return []layout.KeyHint{{Key: "Enter", Description: "Run"}, {Key: "Esc", Description: "Cancel"}}
	}

	var hints []layout.KeyHint
	if kh, ok := m.router.Active().(screen.KeyHintProvider); ok {
		hints = append(hints, kh.KeyHints()...)
	}
	if m.snap.LoggedIn() {
		hints = append(hints,
			layout.KeyHint{Key: "Tab", Description: "Menu"},
			layout.KeyHint{Key: ":", Description: "Command"},
			layout.KeyHint{Key: "Ctrl+D", Description: "Theme"},
		)
	}
	return append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
}

// Run starts the Bubble Tea program with the voice adapter bound to the
// session state.
func Run(opts Options) error {
	m := newAppModel(opts.Deps, opts.Typed)

	adapter := voice.NewAdapter(opts.Recognizer, m.state, m.deps.Log)
	defer adapter.Close()
	unbind := adapter.Bind(m.state)
	defer unbind()

	unsubscribe := m.subscribe()
	defer unsubscribe()

	p := tea.NewProgram(m)
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
