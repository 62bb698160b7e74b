// Package gateway is the study buddy's boundary to the hosted language
// model: tutor chat, quiz hints and learning material search. Every
// user-facing call degrades to a fixed default instead of failing.
package gateway

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/adaptive-learning/studybuddy/internal/llm"
)

// User-facing replies used when the model cannot answer.
const (
	TutorFallback    = "Sorry, I encountered an error. Please try again."
	TutorUnavailable = "AI Tutor is currently unavailable. Please configure the API key."
)

// SystemInstruction frames every tutor and hint request.
const SystemInstruction = "You are an expert AI Study Buddy. Your goal is to explain complex topics in a simple, easy-to-understand way. Be encouraging and supportive. When relevant, include links to external resources like articles or YouTube videos in markdown format (e.g., [Resource Title](https://example.com)). Keep responses concise and focused on the user's question."

// Turn roles as exchanged with the chat view and the HTTP API.
const (
	RoleUser  = "user"
	RoleModel = "model"
)

// Turn is one prior message of a conversation.
type Turn struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

// Gateway wraps an llm.Provider. A nil provider means no credentials were
// configured.
type Gateway struct {
	provider llm.Provider
	log      *zap.SugaredLogger
}

// New creates a Gateway. provider and log may be nil.
func New(provider llm.Provider, log *zap.SugaredLogger) *Gateway {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Gateway{provider: provider, log: log}
}

// Available reports whether a provider is configured.
func (g *Gateway) Available() bool {
	return g.provider != nil
}

// TutorResponse answers prompt in the context of history. It never fails:
// errors become TutorFallback and a missing provider TutorUnavailable.
func (g *Gateway) TutorResponse(ctx context.Context, prompt string, history []Turn) string {
	if !g.Available() {
		return TutorUnavailable
	}
	text, err := g.Ask(ctx, prompt, history)
	if err != nil {
		g.log.Warnw("tutor request failed", "error", err)
		return TutorFallback
	}
	return text
}

// Ask is TutorResponse with the error surfaced.
func (g *Gateway) Ask(ctx context.Context, prompt string, history []Turn) (string, error) {
	return g.ask(llm.WithPurpose(ctx, llm.PurposeTutor), prompt, history)
}

// Hint answers a single quiz hint prompt with no history.
func (g *Gateway) Hint(ctx context.Context, prompt string) (string, error) {
	return g.ask(llm.WithPurpose(ctx, llm.PurposeHint), prompt, nil)
}

func (g *Gateway) ask(ctx context.Context, prompt string, history []Turn) (string, error) {
	if !g.Available() {
		return "", llm.ErrNotConfigured
	}

	resp, err := g.provider.Generate(ctx, llm.Request{
		System:   SystemInstruction,
		Messages: buildMessages(prompt, history),
	})
	if err != nil {
		return "", err
	}
	text := string(resp.Content)
	if strings.TrimSpace(text) == "" {
		return "", &llm.ErrInvalidResponse{Err: fmt.Errorf("empty tutor reply")}
	}
	return text, nil
}

func buildMessages(prompt string, history []Turn) []llm.Message {
	msgs := make([]llm.Message, 0, len(history)+1)
	for _, t := range history {
		role := llm.RoleUser
		if t.Role == RoleModel {
			role = llm.RoleAssistant
		}
		msgs = append(msgs, llm.Message{Role: role, Content: t.Text})
	}
	return append(msgs, llm.Message{Role: llm.RoleUser, Content: prompt})
}
