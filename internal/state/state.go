// Package state holds the session state shared by every view: the
// signed-in learner, the active view, presentation flags, the last quiz
// score and the current toast.
package state

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/adaptive-learning/studybuddy/internal/catalog"
)

// DefaultToastDuration is used when ShowToast is called without a duration.
const DefaultToastDuration = 3000 * time.Millisecond

// Scheduler runs f once after d. It returns a function that cancels the
// pending call.
type Scheduler func(d time.Duration, f func()) (cancel func())

func afterFunc(d time.Duration, f func()) func() {
	t := time.AfterFunc(d, f)
	return func() { t.Stop() }
}

// Toast is a transient notification. ID distinguishes two toasts with the
// same message.
type Toast struct {
	ID      string
	Message string
}

// Snapshot is a point-in-time copy of the session state.
type Snapshot struct {
	User           *catalog.Profile
	View           View
	DarkMode       bool
	VoiceAssistant bool
	LastScore      *Score
	Toast          *Toast
	QuizType       catalog.QuizType
}

// LoggedIn reports whether a learner is signed in.
func (s Snapshot) LoggedIn() bool { return s.User != nil }

// ToastMessage returns the current toast text or "".
func (s Snapshot) ToastMessage() string {
	if s.Toast == nil {
		return ""
	}
	return s.Toast.Message
}

// Option configures a State.
type Option func(*State)

// WithScheduler replaces the timer used to clear toasts.
func WithScheduler(s Scheduler) Option {
	return func(st *State) { st.schedule = s }
}

// WithToastDuration sets the duration used when ShowToast gets d <= 0.
func WithToastDuration(d time.Duration) Option {
	return func(st *State) {
		if d > 0 {
			st.toastDuration = d
		}
	}
}

// State is the single source of truth for the session. All mutators are
// safe for concurrent use; subscribers are called after the lock is
// released so they may call back into State.
type State struct {
	mu sync.Mutex

	user      *catalog.Profile
	view      View
	darkMode  bool
	voice     bool
	lastScore *Score
	toast     *Toast
	quizType  catalog.QuizType

	schedule      Scheduler
	toastDuration time.Duration

	nextSubID int
	subs      map[int]func(Snapshot)
}

// New returns a State in its initial, signed-out configuration.
func New(opts ...Option) *State {
	s := &State{
		view:          ViewLogin,
		quizType:      catalog.QuizPractice,
		schedule:      afterFunc,
		toastDuration: DefaultToastDuration,
		subs:          make(map[int]func(Snapshot)),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Subscribe registers fn to receive a snapshot after every mutation. The
// returned function removes the subscription.
func (s *State) Subscribe(fn func(Snapshot)) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextSubID
	s.nextSubID++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

// Snapshot returns the current values. The view is always ViewLogin while
// nobody is signed in.
func (s *State) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *State) snapshotLocked() Snapshot {
	snap := Snapshot{
		View:           s.view,
		DarkMode:       s.darkMode,
		VoiceAssistant: s.voice,
		QuizType:       s.quizType,
	}
	if s.user == nil {
		snap.View = ViewLogin
	} else {
		u := *s.user
		snap.User = &u
	}
	if s.lastScore != nil {
		sc := *s.lastScore
		snap.LastScore = &sc
	}
	if s.toast != nil {
		t := *s.toast
		snap.Toast = &t
	}
	return snap
}

// update applies fn under the lock and notifies subscribers when fn
// reports a change.
func (s *State) update(fn func() bool) {
	s.mu.Lock()
	if !fn() {
		s.mu.Unlock()
		return
	}
	snap := s.snapshotLocked()
	subs := make([]func(Snapshot), 0, len(s.subs))
	for _, sub := range s.subs {
		subs = append(subs, sub)
	}
	s.mu.Unlock()

	for _, sub := range subs {
		sub(snap)
	}
}

// Login signs a learner in and shows the dashboard. A blank name is
// ignored.
func (s *State) Login(name string, goal catalog.Goal, style catalog.LearningStyle) {
	name = strings.TrimSpace(name)
	if name == "" {
		return
	}
	s.update(func() bool {
		s.user = &catalog.Profile{Name: name, Goal: goal, LearningStyle: style}
		s.view = ViewDashboard
		return true
	})
}

// Logout clears the learner and resets presentation flags and the last
// score.
func (s *State) Logout() {
	s.update(func() bool {
		s.user = nil
		s.view = ViewLogin
		s.darkMode = false
		s.voice = false
		s.lastScore = nil
		return true
	})
}

// UpdateLearningStyle changes the signed-in learner's style.
func (s *State) UpdateLearningStyle(style catalog.LearningStyle) {
	s.update(func() bool {
		if s.user == nil {
			return false
		}
		u := *s.user
		u.LearningStyle = style
		s.user = &u
		return true
	})
}

// SetView switches the active view.
func (s *State) SetView(v View) {
	s.update(func() bool {
		s.view = v
		return true
	})
}

// ToggleDarkMode flips the dark mode flag.
func (s *State) ToggleDarkMode() {
	s.update(func() bool {
		s.darkMode = !s.darkMode
		return true
	})
}

// DarkMode reports the dark mode flag.
func (s *State) DarkMode() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.darkMode
}

// ToggleVoiceAssistant flips the voice assistant flag.
func (s *State) ToggleVoiceAssistant() {
	s.update(func() bool {
		s.voice = !s.voice
		return true
	})
}

// StartQuiz records the quiz type and shows the quiz view. Building the
// question sequence is left to the quiz view.
func (s *State) StartQuiz(t catalog.QuizType) {
	s.update(func() bool {
		s.quizType = t
		s.view = ViewQuiz
		return true
	})
}

// SetLastQuizScore overwrites the last score. nil clears it.
func (s *State) SetLastQuizScore(sc *Score) {
	s.update(func() bool {
		if sc == nil {
			s.lastScore = nil
		} else {
			c := *sc
			s.lastScore = &c
		}
		return true
	})
}

// ShowToast replaces the current toast and schedules it to clear after d
// (DefaultToastDuration when d <= 0). A scheduled clear only removes the
// toast it was scheduled for.
func (s *State) ShowToast(msg string, d time.Duration) {
	if d <= 0 {
		d = s.toastDuration
	}
	id := uuid.NewString()
	s.update(func() bool {
		s.toast = &Toast{ID: id, Message: msg}
		return true
	})
	s.schedule(d, func() { s.clearToast(id) })
}

func (s *State) clearToast(id string) {
	s.update(func() bool {
		if s.toast == nil || s.toast.ID != id {
			return false
		}
		s.toast = nil
		return true
	})
}
