package settings

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adaptive-learning/studybuddy/internal/catalog"
	"github.com/adaptive-learning/studybuddy/internal/screen"
	"github.com/adaptive-learning/studybuddy/internal/state"
	"github.com/adaptive-learning/studybuddy/internal/store"
	"github.com/adaptive-learning/studybuddy/internal/ui/uitest"
)

type resetRepo struct {
	store.EventRepo
	resets int
	err    error
}

func (r *resetRepo) Reset(context.Context) error {
	r.resets++
	return r.err
}

var (
	enter = tea.KeyPressMsg{Code: tea.KeyEnter}
	down  = tea.KeyPressMsg{Code: tea.KeyDown}
	right = tea.KeyPressMsg{Code: tea.KeyRight}
	yes   = tea.KeyPressMsg{Code: 'y', Text: "y"}
	no    = tea.KeyPressMsg{Code: 'n', Text: "n"}
)

func newTestSettings(deps screen.Deps) (*SettingsScreen, *state.State) {
	st := state.New()
	st.Login("Ada Lovelace", catalog.GoalMath, catalog.StyleVisual)
	deps.State = st
	return New(deps.WithDefaults()), st
}

// press sends keys and runs any command, feeding its message back.
func press(s *SettingsScreen, keys ...tea.KeyPressMsg) {
	for _, k := range keys {
		_, cmd := s.Update(k)
		if cmd != nil {
			s.Update(cmd())
		}
	}
}

func TestSettings_Toggles(t *testing.T) {
	s, st := newTestSettings(screen.Deps{})
	press(s, enter, down, enter)

	snap := st.Snapshot()
	assert.True(t, snap.DarkMode)
	assert.True(t, snap.VoiceAssistant)

	s.Update(screen.StateChangedMsg{Snapshot: snap})
	view := uitest.Plain(s.View(100, 40))
	assert.Contains(t, view, "Dark Mode")
	assert.Contains(t, view, "On")
}

func TestSettings_LearningStyle(t *testing.T) {
	s, st := newTestSettings(screen.Deps{})
	press(s, down, down, right)
	assert.Equal(t, catalog.StyleAudio, st.Snapshot().User.LearningStyle)
}

func TestSettings_ClearDataConfirmation(t *testing.T) {
	repo := &resetRepo{}
	s, st := newTestSettings(screen.Deps{Repo: repo})

	press(s, down, down, down, enter)
	require.True(t, s.confirming)
	assert.Contains(t, uitest.Plain(s.View(100, 40)), "This action cannot be undone")

	press(s, no)
	assert.False(t, s.confirming)
	assert.Equal(t, 0, repo.resets)
	assert.True(t, st.Snapshot().LoggedIn())

	press(s, enter, yes)
	assert.Equal(t, 1, repo.resets)
	assert.False(t, st.Snapshot().LoggedIn())
}

func TestSettings_ClearDataFailureStillLogsOut(t *testing.T) {
	s, st := newTestSettings(screen.Deps{Repo: &resetRepo{err: errors.New("locked")}})
	press(s, down, down, down, enter, yes)

	snap := st.Snapshot()
	assert.False(t, snap.LoggedIn())
	assert.Equal(t, ToastClearFailed, snap.ToastMessage())
}

func TestSettings_Export(t *testing.T) {
	dir := t.TempDir()
	now := time.Date(2026, 3, 7, 9, 0, 0, 0, time.UTC)
	s, st := newTestSettings(screen.Deps{ExportDir: dir, Now: func() time.Time { return now }})
	st.SetLastQuizScore(&state.Score{Correct: 4, Total: 5})
	s.Update(screen.StateChangedMsg{Snapshot: st.Snapshot()})

	press(s, down, down, down, down, enter)

	path := filepath.Join(dir, "progress_report_Ada_Lovelace.pdf")
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "%PDF-"))
	assert.Equal(t, "Progress report saved to "+path, st.Snapshot().ToastMessage())
	assert.False(t, s.exporting)
}

func TestSettings_ExportFailure(t *testing.T) {
	file := filepath.Join(t.TempDir(), "not-a-dir")
	require.NoError(t, os.WriteFile(file, nil, 0o644))
	s, st := newTestSettings(screen.Deps{ExportDir: file})

	press(s, down, down, down, down, enter)
	assert.Equal(t, ToastExportFailed, st.Snapshot().ToastMessage())
}
