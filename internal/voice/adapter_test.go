package voice

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adaptive-learning/studybuddy/internal/catalog"
	"github.com/adaptive-learning/studybuddy/internal/state"
)

const (
	waitFor = time.Second
	tick    = 5 * time.Millisecond
)

type fakeStream struct {
	ch      chan Event
	once    sync.Once
	mu      sync.Mutex
	stopped bool
}

func newFakeStream() *fakeStream { return &fakeStream{ch: make(chan Event, 8)} }

func (s *fakeStream) Events() <-chan Event { return s.ch }

func (s *fakeStream) Stop() {
	s.mu.Lock()
	s.stopped = true
	s.mu.Unlock()
	s.end()
}

// end simulates the platform ending the session.
func (s *fakeStream) end() { s.once.Do(func() { close(s.ch) }) }

func (s *fakeStream) Stopped() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stopped
}

type fakeRecognizer struct {
	mu      sync.Mutex
	streams []*fakeStream
	// failOn makes the n-th Start (1-based) fail.
	failOn int
}

func (r *fakeRecognizer) Start(context.Context) (CommandStream, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failOn == len(r.streams)+1 {
		r.streams = append(r.streams, nil)
		return nil, errors.New("microphone busy")
	}
	s := newFakeStream()
	r.streams = append(r.streams, s)
	return s, nil
}

func (r *fakeRecognizer) Starts() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.streams)
}

func (r *fakeRecognizer) Latest() *fakeStream {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.streams[len(r.streams)-1]
}

func hasToast(c *recordingController, msg string) func() bool {
	return func() bool {
		for _, t := range c.Toasts() {
			if t == msg {
				return true
			}
		}
		return false
	}
}

// enable turns voice on and waits for the session to listen.
func enable(t *testing.T, a *Adapter, c *recordingController, rec *fakeRecognizer) *fakeStream {
	t.Helper()
	a.Sync(true)
	require.Eventually(t, func() bool { return a.State() == Listening }, waitFor, tick)
	require.Eventually(t, hasToast(c, ToastActive), waitFor, tick)
	return rec.Latest()
}

func TestAdapter_Unsupported(t *testing.T) {
	c := &recordingController{}
	a := NewAdapter(nil, c, nil)

	a.Sync(true)
	a.Sync(true)

	assert.Equal(t, []string{ToastUnsupported}, c.Toasts())
	assert.Equal(t, Disabled, a.State())
}

func TestAdapter_EnableListensAndToasts(t *testing.T) {
	c := &recordingController{}
	rec := &fakeRecognizer{}
	a := NewAdapter(rec, c, nil)
	t.Cleanup(a.Close)

	enable(t, a, c, rec)
	assert.Equal(t, []string{ToastActive}, c.Toasts())

	a.Sync(true)
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, 1, rec.Starts(), "enabling twice must not start a second session")
}

func TestAdapter_FinalResultsRunCommands(t *testing.T) {
	c := &recordingController{}
	rec := &fakeRecognizer{}
	a := NewAdapter(rec, c, nil)
	t.Cleanup(a.Close)

	s := enable(t, a, c, rec)
	s.ch <- Event{Transcript: "go to settings", Final: false}
	s.ch <- Event{Transcript: "  Please GO TO INSIGHTS now ", Final: true}

	require.Eventually(t, hasToast(c, "Navigating to Insights"), waitFor, tick)
	c.mu.Lock()
	defer c.mu.Unlock()
	assert.Equal(t, []state.View{state.ViewInsights}, c.views, "interim results must be ignored")
}

func TestAdapter_RestartsWhenSessionEnds(t *testing.T) {
	c := &recordingController{}
	rec := &fakeRecognizer{}
	a := NewAdapter(rec, c, nil)
	t.Cleanup(a.Close)

	enable(t, a, c, rec).end()

	require.Eventually(t, func() bool { return rec.Starts() == 2 }, waitFor, tick)
	require.Eventually(t, func() bool { return a.State() == Listening }, waitFor, tick)
	assert.Equal(t, []string{ToastActive}, c.Toasts(), "restart is silent")
}

func TestAdapter_AbortedIsIgnored(t *testing.T) {
	c := &recordingController{}
	rec := &fakeRecognizer{}
	a := NewAdapter(rec, c, nil)
	t.Cleanup(a.Close)

	s := enable(t, a, c, rec)
	s.ch <- Event{Err: ErrAborted}
	s.ch <- Event{Transcript: "start quiz", Final: true}

	require.Eventually(t, hasToast(c, "Starting a new practice quiz"), waitFor, tick)
	assert.Equal(t, Listening, a.State())
	assert.Len(t, c.Toasts(), 2)
}

func TestAdapter_TerminalErrors(t *testing.T) {
	tests := []struct {
		code  ErrorCode
		toast string
	}{
		{ErrNetwork, ToastNetworkError},
		{ErrNotAllowed, ToastPermission},
		{ErrServiceNotAllowed, ToastPermission},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			c := &recordingController{}
			rec := &fakeRecognizer{}
			a := NewAdapter(rec, c, nil)
			t.Cleanup(a.Close)

			s := enable(t, a, c, rec)
			s.ch <- Event{Err: tt.code}
			require.Eventually(t, hasToast(c, tt.toast), waitFor, tick)

			s.end()
			require.Eventually(t, func() bool { return a.State() == TerminalError }, waitFor, tick)
			time.Sleep(20 * time.Millisecond)
			assert.Equal(t, 1, rec.Starts(), "terminal error must suppress restart")
		})
	}
}

func TestAdapter_RecoverableErrorRestarts(t *testing.T) {
	c := &recordingController{}
	rec := &fakeRecognizer{}
	a := NewAdapter(rec, c, nil)
	t.Cleanup(a.Close)

	s := enable(t, a, c, rec)
	s.ch <- Event{Err: "no-speech"}
	s.end()

	require.Eventually(t, func() bool { return rec.Starts() == 2 }, waitFor, tick)
	assert.Equal(t, []string{ToastActive}, c.Toasts())
}

func TestAdapter_ReenableClearsTerminal(t *testing.T) {
	c := &recordingController{}
	rec := &fakeRecognizer{}
	a := NewAdapter(rec, c, nil)
	t.Cleanup(a.Close)

	enable(t, a, c, rec).ch <- Event{Err: ErrNetwork}
	require.Eventually(t, func() bool { return a.State() == TerminalError }, waitFor, tick)

	a.Sync(false)
	a.Sync(true)
	require.Eventually(t, func() bool { return a.State() == Listening }, waitFor, tick)
	assert.Equal(t, 2, rec.Starts())
}

func TestAdapter_StartFailure(t *testing.T) {
	c := &recordingController{}
	rec := &fakeRecognizer{failOn: 1}
	a := NewAdapter(rec, c, nil)
	t.Cleanup(a.Close)

	a.Sync(true)
	require.Eventually(t, func() bool { return a.State() == TerminalError }, waitFor, tick)
	assert.Empty(t, c.Toasts())
}

func TestAdapter_RestartFailure(t *testing.T) {
	c := &recordingController{}
	rec := &fakeRecognizer{failOn: 2}
	a := NewAdapter(rec, c, nil)
	t.Cleanup(a.Close)

	enable(t, a, c, rec).end()
	require.Eventually(t, func() bool { return a.State() == TerminalError }, waitFor, tick)
}

func TestAdapter_DisableStopsSession(t *testing.T) {
	c := &recordingController{}
	rec := &fakeRecognizer{}
	a := NewAdapter(rec, c, nil)
	t.Cleanup(a.Close)

	s := enable(t, a, c, rec)
	a.Sync(false)

	assert.True(t, s.Stopped())
	assert.Equal(t, Disabled, a.State())
	assert.Equal(t, []string{ToastActive, ToastOff}, c.Toasts())

	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, 1, rec.Starts(), "a stopped session must not restart")
}

func TestAdapter_DisableAfterFailedStartToastsOff(t *testing.T) {
	c := &recordingController{}
	a := NewAdapter(&fakeRecognizer{failOn: 1}, c, nil)
	t.Cleanup(a.Close)

	a.Sync(true)
	require.Eventually(t, func() bool { return a.State() == TerminalError }, waitFor, tick)
	a.Sync(false)
	assert.Equal(t, []string{ToastOff}, c.Toasts())
	assert.Equal(t, Disabled, a.State())
}

func TestAdapter_DisableAfterTerminalErrorToastsOff(t *testing.T) {
	c := &recordingController{}
	rec := &fakeRecognizer{}
	a := NewAdapter(rec, c, nil)
	t.Cleanup(a.Close)

	s := enable(t, a, c, rec)
	s.ch <- Event{Err: ErrNetwork}
	s.end()
	require.Eventually(t, func() bool { return a.State() == TerminalError }, waitFor, tick)

	a.Sync(false)
	assert.Equal(t, Disabled, a.State())
	assert.Equal(t, []string{ToastActive, ToastNetworkError, ToastOff}, c.Toasts())
}

func TestAdapter_DisableWhileDisabledIsSilent(t *testing.T) {
	c := &recordingController{}
	a := NewAdapter(nil, c, nil)

	a.Sync(true)
	a.Sync(false)
	assert.Equal(t, []string{ToastUnsupported}, c.Toasts())
}

// slowRecognizer holds Start until release is closed.
type slowRecognizer struct {
	fakeRecognizer
	release chan struct{}
}

func (r *slowRecognizer) Start(ctx context.Context) (CommandStream, error) {
	<-r.release
	return r.fakeRecognizer.Start(ctx)
}

func TestAdapter_EnableDoesNotWaitForStart(t *testing.T) {
	c := &recordingController{}
	rec := &slowRecognizer{release: make(chan struct{})}
	a := NewAdapter(rec, c, nil)
	t.Cleanup(a.Close)

	done := make(chan struct{})
	go func() {
		a.Sync(true)
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(waitFor):
		t.Fatal("Sync(true) blocked on the recognizer")
	}
	assert.Equal(t, Starting, a.State())

	close(rec.release)
	require.Eventually(t, func() bool { return a.State() == Listening }, waitFor, tick)
	require.Eventually(t, hasToast(c, ToastActive), waitFor, tick)
}

func TestAdapter_BindFollowsSessionState(t *testing.T) {
	st := state.New(state.WithScheduler(func(time.Duration, func()) func() { return func() {} }))
	rec := NewTypedRecognizer()
	a := NewAdapter(rec, st, nil)
	t.Cleanup(a.Close)
	unbind := a.Bind(st)
	t.Cleanup(unbind)

	st.Login("Katabo", catalog.GoalMath, catalog.StyleVisual)
	st.ToggleVoiceAssistant()
	require.Eventually(t, func() bool { return a.State() == Listening }, waitFor, tick)
	require.Eventually(t, func() bool { return st.Snapshot().ToastMessage() == ToastActive }, waitFor, tick)

	require.True(t, rec.Say("Go to Recommendations"))
	require.Eventually(t, func() bool {
		return st.Snapshot().View == state.ViewRecommendations
	}, waitFor, tick)

	// Logging out clears the voice flag, which stops the session.
	require.True(t, rec.Say("log out"))
	require.Eventually(t, func() bool { return a.State() == Disabled }, waitFor, tick)
	assert.False(t, rec.Active())
	assert.False(t, st.Snapshot().LoggedIn())
}
