package screen

import (
	"math/rand/v2"
	"time"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/adaptive-learning/studybuddy/internal/chat"
	"github.com/adaptive-learning/studybuddy/internal/quiz"
	"github.com/adaptive-learning/studybuddy/internal/search"
	"github.com/adaptive-learning/studybuddy/internal/state"
	"github.com/adaptive-learning/studybuddy/internal/store"
	"github.com/adaptive-learning/studybuddy/internal/ui/layout"
)

// Screen defines the interface for all application screens.
type Screen interface {
	// Init returns an initial command when the screen is mounted.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header, sidebar and footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// TextCapturer is implemented by screens with a focused text field.
// While it reports true the shell forwards printable keys such as ":"
// to the screen instead of treating them as shortcuts.
type TextCapturer interface {
	CapturingText() bool
}

// Deps are the services screens act on. Optional fields may be nil.
type Deps struct {
	State  *state.State
	Tutor  chat.Tutor
	Hints  quiz.HintSource
	Finder search.MaterialFinder
	Repo   store.EventRepo

	ExportDir string
	Log       *zap.SugaredLogger

	Rand func() *rand.Rand
	Now  func() time.Time
}

// WithDefaults fills the clock, randomness and logger.
func (d Deps) WithDefaults() Deps {
	if d.Rand == nil {
		d.Rand = func() *rand.Rand { return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())) }
	}
	if d.Now == nil {
		d.Now = time.Now
	}
	if d.Log == nil {
		d.Log = zap.NewNop().Sugar()
	}
	if d.ExportDir == "" {
		d.ExportDir = "."
	}
	return d
}

// StateChangedMsg carries the latest session snapshot to the active
// screen after every state mutation.
type StateChangedMsg struct {
	Snapshot state.Snapshot
}
