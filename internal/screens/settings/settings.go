// Package settings is the preferences view: theme, voice input, learning
// style, progress export and clearing stored data.
package settings

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/adaptive-learning/studybuddy/internal/catalog"
	"github.com/adaptive-learning/studybuddy/internal/report"
	"github.com/adaptive-learning/studybuddy/internal/screen"
	"github.com/adaptive-learning/studybuddy/internal/state"
	"github.com/adaptive-learning/studybuddy/internal/ui/components"
	"github.com/adaptive-learning/studybuddy/internal/ui/layout"
	"github.com/adaptive-learning/studybuddy/internal/ui/theme"
)

// ClearDataPrompt is the confirmation shown before wiping data.
const ClearDataPrompt = "Are you sure you want to clear all your data? This action cannot be undone and will log you out."

// Toasts.
const (
	ToastExportFailed = "Could not export your progress report."
	ToastClearFailed  = "Could not clear stored data."
)

const (
	rowDarkMode = iota
	rowVoice
	rowStyle
	rowClear
	rowExport
	rowCount
)

type exportedMsg struct {
	path string
	err  error
}

type clearedMsg struct {
	err error
}

// SettingsScreen implements screen.Screen for the settings view.
type SettingsScreen struct {
	deps       screen.Deps
	snap       state.Snapshot
	style      components.Selector
	row        int
	confirming bool
	exporting  bool
}

var _ screen.Screen = (*SettingsScreen)(nil)
var _ screen.KeyHintProvider = (*SettingsScreen)(nil)

func New(deps screen.Deps) *SettingsScreen {
	s := &SettingsScreen{deps: deps, snap: deps.State.Snapshot()}
	styles := make([]string, 0, len(catalog.AllStyles()))
	for _, st := range catalog.AllStyles() {
		styles = append(styles, string(st))
	}
	current := ""
	if s.snap.User != nil {
		current = string(s.snap.User.LearningStyle)
	}
	s.style = components.NewSelector("Learning Style", styles, current)
	return s
}

func (s *SettingsScreen) Init() tea.Cmd { return nil }

func (s *SettingsScreen) Title() string { return "Settings" }

func (s *SettingsScreen) KeyHints() []layout.KeyHint {
	if s.confirming {
		return []layout.KeyHint{{Key: "Y", Description: "Clear data"}, {Key: "N", Description: "Cancel"}}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Toggle"},
		{Key: "←→", Description: "Style"},
	}
}

func (s *SettingsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case screen.StateChangedMsg:
		s.snap = msg.Snapshot
		return s, nil

	case exportedMsg:
		s.exporting = false
		if msg.err != nil {
			s.deps.Log.Errorw("export failed", "error", msg.err)
			s.deps.State.ShowToast(ToastExportFailed, 0)
			return s, nil
		}
		s.deps.Log.Infow("progress report exported", "path", msg.path)
		s.deps.State.ShowToast("Progress report saved to "+msg.path, 0)
		return s, nil

	case clearedMsg:
		if msg.err != nil {
			s.deps.Log.Errorw("clearing data failed", "error", msg.err)
			s.deps.State.ShowToast(ToastClearFailed, 0)
		}
		s.deps.State.Logout()
		return s, nil

	case tea.KeyPressMsg:
		return s, s.handleKey(msg)
	}
	return s, nil
}

func (s *SettingsScreen) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	key := msg.String()
	if s.confirming {
		switch key {
		case "y", "Y":
			s.confirming = false
			return s.clearData()
		case "n", "N", "esc":
			s.confirming = false
		}
		return nil
	}

	switch key {
	case "up", "k":
		s.row = (s.row - 1 + rowCount) % rowCount
		return nil
	case "down", "j":
		s.row = (s.row + 1) % rowCount
		return nil
	}

	if s.row == rowStyle {
		var changed bool
		s.style, changed = s.style.Update(msg)
		if changed {
			style, _ := catalog.ParseStyle(s.style.Value())
			s.deps.State.UpdateLearningStyle(style)
		}
		return nil
	}

	if key != "enter" && key != "space" {
		return nil
	}
	switch s.row {
	case rowDarkMode:
		s.deps.State.ToggleDarkMode()
	case rowVoice:
		s.deps.State.ToggleVoiceAssistant()
	case rowClear:
		s.confirming = true
	case rowExport:
		return s.export()
	}
	return nil
}

// export renders the progress report into the export directory.
func (s *SettingsScreen) export() tea.Cmd {
	if s.exporting || s.snap.User == nil {
		return nil
	}
	s.exporting = true
	profile, score := *s.snap.User, s.snap.LastScore
	dir, now := s.deps.ExportDir, s.deps.Now()
	return func() tea.Msg {
		r := report.Build(profile, score, now)
		path, err := report.Export(dir, r, profile.Name)
		return exportedMsg{path: path, err: err}
	}
}

// clearData wipes the event store. Logout follows whether or not the
// store could be cleared.
func (s *SettingsScreen) clearData() tea.Cmd {
	repo := s.deps.Repo
	return func() tea.Msg {
		if repo == nil {
			return clearedMsg{}
		}
		return clearedMsg{err: repo.Reset(context.Background())}
	}
}

func onOff(b bool) string {
	if b {
		return "On"
	}
	return "Off"
}

func (s *SettingsScreen) View(width, height int) string {
	if s.confirming {
		return components.Dialog(ClearDataPrompt, width, height)
	}

	cw := components.ContentWidth(width)
	row := func(i int, label, value string) string {
		style, prefix := theme.Unselected, "  "
		if i == s.row {
			style, prefix = theme.Selected, "▸ "
		}
		return style.Render(fmt.Sprintf("%s%-16s", prefix, label)) + " " + theme.Body.Render(value)
	}

	var b strings.Builder
	b.WriteString(row(rowDarkMode, "Dark Mode", onOff(s.snap.DarkMode)) + "\n")
	b.WriteString(row(rowVoice, "Voice Input", onOff(s.snap.VoiceAssistant)) + "\n")
	styleMark := "  "
	if s.row == rowStyle {
		styleMark = theme.Selected.Render("▸ ")
	}
	b.WriteString(styleMark + s.style.View(s.row == rowStyle) + "\n")
	b.WriteString(theme.Hint.Render(fmt.Sprintf("  %-16s English", "Language")) + "\n\n")

	b.WriteString(components.Button("Clear Data", s.row == rowClear) + "  ")
	exportLabel := "Export Progress"
	if s.exporting {
		exportLabel = "Exporting..."
	}
	b.WriteString(components.Button(exportLabel, s.row == rowExport))

	return lipgloss.NewStyle().Padding(1, 2).Render(
		theme.Title.Render("Settings") + "\n\n" + components.Card("", b.String(), cw))
}
