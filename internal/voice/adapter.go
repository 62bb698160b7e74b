// Package voice turns a speech recognizer into session state commands.
package voice

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/adaptive-learning/studybuddy/internal/state"
)

// ErrorCode names a recognition failure.
type ErrorCode string

const (
	ErrAborted           ErrorCode = "aborted"
	ErrNetwork           ErrorCode = "network"
	ErrNotAllowed        ErrorCode = "not-allowed"
	ErrServiceNotAllowed ErrorCode = "service-not-allowed"
	ErrUnknown           ErrorCode = "unknown"
)

// Event is one recognizer callback: a transcript or an error.
type Event struct {
	Transcript string
	Final      bool
	Err        ErrorCode
}

// CommandStream is a running recognition session. Events is closed when
// the platform ends the session.
type CommandStream interface {
	Events() <-chan Event
	Stop()
}

// Recognizer starts recognition sessions.
type Recognizer interface {
	Start(ctx context.Context) (CommandStream, error)
}

// Toasts shown by the adapter.
const (
	ToastUnsupported  = "Voice recognition is not supported on this system."
	ToastActive       = "Voice assistant is active."
	ToastOff          = "Voice assistant is off."
	ToastNetworkError = "Voice assistant stopped due to a network error."
	ToastPermission   = "Voice permission is not granted."
)

type AdapterState int

const (
	Disabled AdapterState = iota
	Starting
	Listening
	Stopping
	TerminalError
)

func (s AdapterState) String() string {
	switch s {
	case Disabled:
		return "disabled"
	case Starting:
		return "starting"
	case Listening:
		return "listening"
	case Stopping:
		return "stopping"
	case TerminalError:
		return "terminal-error"
	}
	return fmt.Sprintf("AdapterState(%d)", int(s))
}

// Adapter follows the voice assistant flag: it owns at most one
// recognition session, restarts it when the platform ends it and stops
// for good on a terminal error.
type Adapter struct {
	rec  Recognizer
	ctrl Controller
	log  *zap.SugaredLogger

	ctx    context.Context
	cancel context.CancelFunc

	mu       sync.Mutex
	enabled  bool
	terminal bool
	st       AdapterState
	gen      int
	stream   CommandStream
}

// NewAdapter creates a Disabled adapter. rec nil means recognition is not
// supported.
func NewAdapter(rec Recognizer, ctrl Controller, log *zap.SugaredLogger) *Adapter {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Adapter{rec: rec, ctrl: ctrl, log: log, ctx: ctx, cancel: cancel}
}

// State reports the adapter state.
func (a *Adapter) State() AdapterState {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.st
}

// Bind keeps the adapter in step with the voice assistant flag of s.
func (a *Adapter) Bind(s *state.State) (unbind func()) {
	unsub := s.Subscribe(func(snap state.Snapshot) { a.Sync(snap.VoiceAssistant) })
	a.Sync(s.Snapshot().VoiceAssistant)
	return unsub
}

// Sync reacts to the enabled flag. Repeating the current value is a no-op.
// Enabling returns once the adapter is Starting; the session opens in the
// background. Disabling from any state but Disabled toasts ToastOff.
func (a *Adapter) Sync(enabled bool) {
	a.mu.Lock()
	if enabled == a.enabled {
		a.mu.Unlock()
		return
	}
	a.enabled = enabled

	if enabled {
		if a.rec == nil {
			a.mu.Unlock()
			a.ctrl.ShowToast(ToastUnsupported, 0)
			return
		}
		a.terminal = false
		a.gen++
		gen := a.gen
		a.st = Starting
		a.mu.Unlock()

		// Sync runs inside state subscribers, so starting a recognizer
		// (a capture process and a gRPC stream) must not block the caller.
		go func() {
			if a.open(gen) {
				a.ctrl.ShowToast(ToastActive, 0)
			}
		}()
		return
	}

	a.gen++
	gen := a.gen
	prev := a.st
	stream := a.stream
	a.stream = nil
	a.st = Stopping
	a.mu.Unlock()

	if stream != nil {
		stream.Stop()
	}

	a.mu.Lock()
	if a.gen == gen {
		a.st = Disabled
	}
	a.mu.Unlock()

	if prev != Disabled {
		a.ctrl.ShowToast(ToastOff, 0)
	}
}

// Close stops any session without a toast.
func (a *Adapter) Close() {
	a.mu.Lock()
	a.gen++
	a.enabled = false
	stream := a.stream
	a.stream = nil
	a.st = Disabled
	a.mu.Unlock()

	if stream != nil {
		stream.Stop()
	}
	a.cancel()
}

// open starts a session for generation gen and pumps it. It reports
// whether the session is listening.
func (a *Adapter) open(gen int) bool {
	stream, err := a.rec.Start(a.ctx)

	a.mu.Lock()
	if gen != a.gen {
		a.mu.Unlock()
		if stream != nil {
			stream.Stop()
		}
		return false
	}
	if err != nil {
		a.st = TerminalError
		a.mu.Unlock()
		a.log.Errorw("could not start voice recognition", "error", err)
		return false
	}
	a.stream = stream
	a.st = Listening
	a.mu.Unlock()

	go a.pump(gen, stream)
	return true
}

func (a *Adapter) current(gen int) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return gen == a.gen
}

func (a *Adapter) pump(gen int, stream CommandStream) {
	for ev := range stream.Events() {
		if !a.current(gen) {
			return
		}
		a.handle(ev)
	}

	a.mu.Lock()
	if gen != a.gen || !a.enabled {
		a.mu.Unlock()
		return
	}
	if a.terminal {
		a.stream = nil
		a.st = TerminalError
		a.mu.Unlock()
		return
	}
	a.stream = nil
	a.st = Starting
	a.mu.Unlock()

	a.log.Debugw("voice session ended, restarting")
	a.open(gen)
}

func (a *Adapter) handle(ev Event) {
	if ev.Err != "" {
		a.handleError(ev.Err)
		return
	}
	if !ev.Final {
		return
	}
	utterance := Normalize(ev.Transcript)
	a.log.Infow("voice command", "utterance", utterance)
	Execute(Interpret(utterance), a.ctrl)
}

func (a *Adapter) handleError(code ErrorCode) {
	var toast string
	switch code {
	case ErrAborted:
		return
	case ErrNetwork:
		toast = ToastNetworkError
	case ErrNotAllowed, ErrServiceNotAllowed:
		toast = ToastPermission
	default:
		a.log.Warnw("speech recognition error", "code", code)
		return
	}

	a.log.Errorw("speech recognition stopped", "code", code)
	a.mu.Lock()
	a.terminal = true
	a.st = TerminalError
	a.mu.Unlock()
	a.ctrl.ShowToast(toast, 0)
}
