// Package chat holds the AI Study Buddy conversation: an append-only
// transcript with a single in-flight reply.
package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/atotto/clipboard"

	"github.com/adaptive-learning/studybuddy/internal/gateway"
)

// Greeting opens every transcript.
const Greeting = "Hi there! What subject can I help you with today? Ask me to explain a concept!"

// SuggestionPrompts are offered while only the greeting is shown.
var SuggestionPrompts = []string{
	"Can you explain the Pythagorean Theorem?",
	"What are quadratic equations?",
	"Explain probability basics.",
}

type Speaker string

const (
	SpeakerUser      Speaker = "user"
	SpeakerAssistant Speaker = "assistant"
)

type Message struct {
	Speaker Speaker
	Text    string
}

// Tutor answers a prompt given the prior conversation.
type Tutor interface {
	TutorResponse(ctx context.Context, prompt string, history []gateway.Turn) string
}

// ErrNotCopyable is returned by Copy for user messages and the greeting.
var ErrNotCopyable = errors.New("message cannot be copied")

var writeClipboard = clipboard.WriteAll

// Transcript is safe for concurrent use; the TUI appends replies from a
// background command.
type Transcript struct {
	mu       sync.Mutex
	messages []Message
	loading  bool
}

// NewTranscript starts a conversation with the greeting.
func NewTranscript() *Transcript {
	return &Transcript{messages: []Message{{Speaker: SpeakerAssistant, Text: Greeting}}}
}

// Messages returns a copy of the conversation, oldest first.
func (t *Transcript) Messages() []Message {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]Message(nil), t.messages...)
}

// Loading reports whether a reply is outstanding.
func (t *Transcript) Loading() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.loading
}

// ShowSuggestions is true until the first exchange.
func (t *Transcript) ShowSuggestions() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.messages) <= 1
}

// Begin appends the user's prompt and marks a reply as loading. It returns
// the history preceding the prompt. ok is false when prompt is blank or a
// reply is already loading; nothing changes in that case.
func (t *Transcript) Begin(prompt string) (history []gateway.Turn, ok bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if strings.TrimSpace(prompt) == "" || t.loading {
		return nil, false
	}

	history = make([]gateway.Turn, len(t.messages))
	for i, m := range t.messages {
		role := gateway.RoleModel
		if m.Speaker == SpeakerUser {
			role = gateway.RoleUser
		}
		history[i] = gateway.Turn{Role: role, Text: m.Text}
	}

	t.messages = append(t.messages, Message{Speaker: SpeakerUser, Text: prompt})
	t.loading = true
	return history, true
}

// Finish appends the assistant reply and clears the loading flag.
func (t *Transcript) Finish(reply string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.messages = append(t.messages, Message{Speaker: SpeakerAssistant, Text: reply})
	t.loading = false
}

// Send runs a full exchange synchronously. It reports whether the prompt
// was accepted.
func (t *Transcript) Send(ctx context.Context, prompt string, tutor Tutor) bool {
	history, ok := t.Begin(prompt)
	if !ok {
		return false
	}
	t.Finish(tutor.TutorResponse(ctx, prompt, history))
	return true
}

// Copyable reports whether message i is an assistant reply other than the
// greeting.
func (t *Transcript) Copyable(i int) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return i > 0 && i < len(t.messages) && t.messages[i].Speaker == SpeakerAssistant
}

// Copy puts the raw text of message i on the system clipboard.
func (t *Transcript) Copy(i int) error {
	if !t.Copyable(i) {
		return ErrNotCopyable
	}
	t.mu.Lock()
	text := t.messages[i].Text
	t.mu.Unlock()

	if err := writeClipboard(text); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}
	return nil
}

// LastReply returns the index of the newest copyable message, or -1.
func (t *Transcript) LastReply() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	for i := len(t.messages) - 1; i > 0; i-- {
		if t.messages[i].Speaker == SpeakerAssistant {
			return i
		}
	}
	return -1
}
