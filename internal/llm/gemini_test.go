package llm

import (
	"errors"
	"net/http"
	"testing"

	"google.golang.org/genai"
)

func TestGeminiModelAliases(t *testing.T) {
	tests := map[string]string{
		"gemini-flash":     "gemini-2.5-flash",
		"gemini-pro":       "gemini-2.5-pro",
		"gemini-2.0-flash": "gemini-2.0-flash",
	}
	for in, want := range tests {
		if got := resolveModel(in, geminiModels); got != want {
			t.Errorf("resolveModel(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestBuildGeminiSchema(t *testing.T) {
	s := buildGeminiSchema(materialsTestSchema().Definition)

	if s.Type != genai.TypeObject {
		t.Fatalf("Type = %v, want object", s.Type)
	}
	materials, ok := s.Properties["materials"]
	if !ok || materials.Type != genai.TypeArray {
		t.Fatalf("materials property = %+v", materials)
	}
	item := materials.Items
	if item == nil || item.Type != genai.TypeObject {
		t.Fatalf("items = %+v", item)
	}
	if len(item.Required) != 4 {
		t.Errorf("required = %v", item.Required)
	}
	if got := item.Properties["type"].Enum; len(got) != 3 {
		t.Errorf("enum = %v", got)
	}
}

func TestBuildGeminiContents(t *testing.T) {
	got := buildGeminiContents([]Message{
		{Role: RoleUser, Content: "hi"},
		{Role: RoleAssistant, Content: "hello"},
	})
	if len(got) != 2 {
		t.Fatalf("len = %d", len(got))
	}
	if got[0].Role != "user" || got[1].Role != "model" {
		t.Errorf("roles = %q, %q", got[0].Role, got[1].Role)
	}
	if got[1].Parts[0].Text != "hello" {
		t.Errorf("text = %q", got[1].Parts[0].Text)
	}
}

func TestBuildGeminiConfig(t *testing.T) {
	cfg := buildGeminiConfig(Request{System: "tutor", MaxTokens: 100, Temperature: 0.5})
	if cfg.SystemInstruction == nil || cfg.SystemInstruction.Parts[0].Text != "tutor" {
		t.Fatalf("system instruction = %+v", cfg.SystemInstruction)
	}
	if cfg.MaxOutputTokens != 100 {
		t.Errorf("MaxOutputTokens = %d", cfg.MaxOutputTokens)
	}
	if cfg.Temperature == nil || *cfg.Temperature != 0.5 {
		t.Errorf("Temperature = %v", cfg.Temperature)
	}
	if cfg.ResponseMIMEType != "" {
		t.Errorf("plain request should not ask for JSON")
	}

	withSchema := buildGeminiConfig(Request{Schema: materialsTestSchema()})
	if withSchema.ResponseMIMEType != "application/json" || withSchema.ResponseSchema == nil {
		t.Errorf("schema request not configured for JSON: %+v", withSchema)
	}
}

func TestClassifyStatus(t *testing.T) {
	base := errors.New("boom")

	var rl *ErrRateLimit
	if !errors.As(classifyStatus(http.StatusTooManyRequests, base), &rl) {
		t.Error("429 should be a rate limit")
	}
	var inv *ErrInvalidResponse
	if !errors.As(classifyStatus(http.StatusBadRequest, base), &inv) {
		t.Error("400 should be an invalid response")
	}
	var un *ErrProviderUnavailable
	if !errors.As(classifyStatus(http.StatusServiceUnavailable, base), &un) {
		t.Error("503 should be unavailable")
	}
	if !errors.Is(classifyStatus(http.StatusBadGateway, base), base) {
		t.Error("classified errors should wrap the cause")
	}
}

func TestStringList(t *testing.T) {
	if got := stringList([]any{"a", 1, "b"}); len(got) != 2 {
		t.Errorf("stringList([]any) = %v", got)
	}
	if got := stringList([]string{"x"}); len(got) != 1 {
		t.Errorf("stringList([]string) = %v", got)
	}
	if stringList(nil) != nil {
		t.Error("stringList(nil) should be nil")
	}
}
