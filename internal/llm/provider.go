package llm

import (
	"context"
	"encoding/json"
	"strings"
)

// Provider is the boundary to a hosted language model. The study buddy
// uses it for free-text tutor replies and hints, and for schema-shaped
// material searches.
type Provider interface {
	// Generate sends a request and returns the model output. With a
	// Schema, Content is JSON validated against it; without one, Content
	// holds the raw reply text.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string
}

// Request describes one model call.
type Request struct {
	// System is the system instruction.
	System string

	// Messages is the conversation so far, oldest first, ending with the
	// new user prompt.
	Messages []Message

	// Schema, when set, asks the provider for JSON matching it.
	Schema *Schema

	// MaxTokens caps the reply length. Zero lets the provider decide.
	MaxTokens int

	// Temperature in [0, 1]. Zero leaves the provider default.
	Temperature float64
}

// Message is one conversation turn.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema is a JSON Schema the reply must satisfy.
type Schema struct {
	// Name identifies the schema, e.g. "learning-materials". Compiled
	// schemas are cached by name.
	Name string

	Description string

	Definition map[string]any
}

// Response holds the model output.
type Response struct {
	Content json.RawMessage

	Usage Usage

	// Model is the model that actually served the request.
	Model string

	// StopReason is normalized to "end" or "max_tokens".
	StopReason string
}

// Text returns Content as reply text with surrounding whitespace removed.
func (r *Response) Text() string {
	if r == nil {
		return ""
	}
	return strings.TrimSpace(string(r.Content))
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
