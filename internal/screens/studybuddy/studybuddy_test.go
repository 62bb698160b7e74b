package studybuddy

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/adaptive-learning/studybuddy/internal/catalog"
	"github.com/adaptive-learning/studybuddy/internal/chat"
	"github.com/adaptive-learning/studybuddy/internal/gateway"
	"github.com/adaptive-learning/studybuddy/internal/screen"
	"github.com/adaptive-learning/studybuddy/internal/state"
	"github.com/adaptive-learning/studybuddy/internal/ui/uitest"
)

type fakeTutor struct {
	reply   string
	prompts []string
	history [][]gateway.Turn
}

func (f *fakeTutor) TutorResponse(_ context.Context, prompt string, history []gateway.Turn) string {
	f.prompts = append(f.prompts, prompt)
	f.history = append(f.history, history)
	return f.reply
}

var (
	enter = tea.KeyPressMsg{Code: tea.KeyEnter}
	down  = tea.KeyPressMsg{Code: tea.KeyDown}
)

func newTestBuddy(tutor *fakeTutor) (*StudyBuddyScreen, *state.State) {
	st := state.New()
	st.Login("Ada", catalog.GoalMath, catalog.StyleVisual)
	deps := screen.Deps{State: st}
	if tutor != nil {
		deps.Tutor = tutor
	}
	return New(deps.WithDefaults()), st
}

// send submits prompt and delivers the reply like the program loop.
func send(t *testing.T, s *StudyBuddyScreen, prompt string) {
	t.Helper()
	s.input.Model.SetValue(prompt)
	_, cmd := s.Update(enter)
	if cmd == nil {
		t.Fatal("expected a request")
	}
	batch, ok := cmd().(tea.BatchMsg)
	if !ok {
		t.Fatal("expected batch")
	}
	s.Update(batch[0]())
}

func TestStudyBuddy_Greeting(t *testing.T) {
	s, _ := newTestBuddy(nil)
	view := uitest.Plain(s.View(100, 40))
	for _, want := range []string{chat.Greeting, "Suggestion prompts", chat.SuggestionPrompts[0]} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestStudyBuddy_SendUsesPriorHistory(t *testing.T) {
	tutor := &fakeTutor{reply: "Sure! See [Khan](https://khanacademy.org)."}
	s, _ := newTestBuddy(tutor)
	send(t, s, "What is a prime?")

	if len(tutor.prompts) != 1 || tutor.prompts[0] != "What is a prime?" {
		t.Fatalf("prompts = %v", tutor.prompts)
	}
	if h := tutor.history[0]; len(h) != 1 || h[0].Role != gateway.RoleModel || h[0].Text != chat.Greeting {
		t.Errorf("history = %+v", h)
	}
	if s.input.Value() != "" {
		t.Error("input should be cleared")
	}

	view := uitest.Plain(s.View(100, 60))
	for _, want := range []string{"What is a prime?", "Related Materials:", "https://khanacademy.org"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
	if strings.Contains(view, "Suggestion prompts") {
		t.Error("suggestions should hide after the first exchange")
	}
}

func TestStudyBuddy_BlankAndBusyIgnored(t *testing.T) {
	s, _ := newTestBuddy(&fakeTutor{reply: "ok"})
	s.input.Model.SetValue("   ")
	if _, cmd := s.Update(enter); cmd != nil {
		t.Fatal("blank prompt sent")
	}

	s.input.Model.SetValue("first")
	s.Update(enter)
	s.input.Model.SetValue("second")
	if _, cmd := s.Update(enter); cmd != nil {
		t.Fatal("prompt accepted while loading")
	}
	if n := len(s.transcript.Messages()); n != 2 {
		t.Errorf("messages = %d, want 2", n)
	}
}

func TestStudyBuddy_Suggestion(t *testing.T) {
	tutor := &fakeTutor{reply: "ok"}
	s, _ := newTestBuddy(tutor)
	s.Update(down)
	s.Update(down)
	_, cmd := s.Update(enter)
	if cmd == nil {
		t.Fatal("expected suggestion to be sent")
	}
	msgs := s.transcript.Messages()
	if msgs[len(msgs)-1].Text != chat.SuggestionPrompts[1] {
		t.Errorf("sent %q", msgs[len(msgs)-1].Text)
	}
}

func TestStudyBuddy_NoTutor(t *testing.T) {
	s, _ := newTestBuddy(nil)
	send(t, s, "hello")
	msgs := s.transcript.Messages()
	if msgs[len(msgs)-1].Text != gateway.TutorUnavailable {
		t.Errorf("reply = %q", msgs[len(msgs)-1].Text)
	}
}

func TestStudyBuddy_CopyBeforeReply(t *testing.T) {
	s, st := newTestBuddy(nil)
	s.Update(tea.KeyPressMsg{Code: 'y', Mod: tea.ModCtrl})
	if got := st.Snapshot().ToastMessage(); got != ToastNothingCopy {
		t.Errorf("toast = %q", got)
	}
}

func TestTail(t *testing.T) {
	if got := tail("a\nb\nc", 2); got != "b\nc" {
		t.Errorf("tail = %q", got)
	}
	if got := tail("a", 3); got != "a" {
		t.Errorf("tail = %q", got)
	}
}
