package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/adaptive-learning/studybuddy/internal/store"
)

func TestMockProvider_ReturnsCannedResponses(t *testing.T) {
	mock := NewMockProvider(
		MockText("Photosynthesis turns light into sugar."),
		MockResponse{Content: json.RawMessage(`{"materials":[]}`), Usage: Usage{InputTokens: 10, OutputTokens: 5, TotalTokens: 15}},
	)

	resp1, err := mock.Generate(context.Background(), Request{Messages: []Message{{Role: RoleUser, Content: "first"}}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp1.Text() != "Photosynthesis turns light into sugar." {
		t.Fatalf("Text() = %q", resp1.Text())
	}
	if resp1.StopReason != "end" {
		t.Fatalf("expected stop reason 'end', got %q", resp1.StopReason)
	}

	resp2, err := mock.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp2.Usage.InputTokens != 10 {
		t.Fatalf("expected 10 input tokens, got %d", resp2.Usage.InputTokens)
	}
}

func TestMockProvider_EmptyQueueReturnsError(t *testing.T) {
	mock := NewMockProvider()
	_, err := mock.Generate(context.Background(), Request{})
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable, got: %T", err)
	}
}

func TestMockProvider_ValidatesSchemaReplies(t *testing.T) {
	mock := NewMockProvider(MockText(`{"materials":[{"title":"x"}]}`))
	_, err := mock.Generate(context.Background(), Request{Schema: materialsTestSchema()})
	var inv *ErrInvalidResponse
	if !errors.As(err, &inv) {
		t.Fatalf("expected ErrInvalidResponse, got: %v", err)
	}
}

func TestMockProvider_RecordsCalls(t *testing.T) {
	mock := NewMockProvider(MockText("ok"))

	req := Request{
		System:   "sys",
		Messages: []Message{{Role: RoleUser, Content: "hello"}},
	}
	_, _ = mock.Generate(context.Background(), req)

	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
	last, ok := mock.LastCall()
	if !ok || last.System != "sys" {
		t.Fatalf("LastCall() = %+v, %v", last, ok)
	}
}

func TestResponseText(t *testing.T) {
	var nilResp *Response
	if nilResp.Text() != "" {
		t.Error("nil response should have empty text")
	}
	r := &Response{Content: json.RawMessage("  hi there \n")}
	if r.Text() != "hi there" {
		t.Errorf("Text() = %q", r.Text())
	}
}

func TestPurposeContext(t *testing.T) {
	ctx := context.Background()
	if p := PurposeFrom(ctx); p != "unknown" {
		t.Fatalf("expected 'unknown', got %q", p)
	}

	ctx = WithPurpose(ctx, PurposeHint)
	if p := PurposeFrom(ctx); p != "hint" {
		t.Fatalf("expected 'hint', got %q", p)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"gemini without key", Config{Provider: ProviderGemini}, true},
		{"gemini with key", Config{Provider: ProviderGemini, Gemini: GeminiConfig{APIKey: "k"}}, false},
		{"openai without key", Config{Provider: ProviderOpenAI}, true},
		{"openai with key", Config{Provider: ProviderOpenAI, OpenAI: OpenAIConfig{APIKey: "k"}}, false},
		{"anthropic with key", Config{Provider: ProviderAnthropic, Anthropic: AnthropicConfig{APIKey: "k"}}, false},
		{"openrouter without key", Config{Provider: ProviderOpenRouter}, true},
		{"mock needs no key", Config{Provider: ProviderMock}, false},
		{"unknown provider", Config{Provider: "watson"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_MissingKeyIsNotConfigured(t *testing.T) {
	err := Config{Provider: ProviderGemini}.Validate()
	if !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}

func clearKeyEnv(t *testing.T) {
	for _, k := range []string{"GEMINI_API_KEY", "GOOGLE_API_KEY", "API_KEY", "OPENAI_API_KEY", "ANTHROPIC_API_KEY", "OPENROUTER_API_KEY"} {
		t.Setenv(k, "")
	}
}

func TestDiscoverConfig(t *testing.T) {
	t.Run("nothing set", func(t *testing.T) {
		clearKeyEnv(t)
		if _, ok := DiscoverConfig(DefaultConfig()); ok {
			t.Fatal("expected no provider")
		}
	})
	t.Run("gemini key", func(t *testing.T) {
		clearKeyEnv(t)
		t.Setenv("GEMINI_API_KEY", "g")
		cfg, ok := DiscoverConfig(DefaultConfig())
		if !ok || cfg.Provider != ProviderGemini || cfg.Gemini.APIKey != "g" {
			t.Fatalf("got %+v, %v", cfg, ok)
		}
	})
	t.Run("falls back to another provider", func(t *testing.T) {
		clearKeyEnv(t)
		t.Setenv("ANTHROPIC_API_KEY", "a")
		cfg, ok := DiscoverConfig(DefaultConfig())
		if !ok || cfg.Provider != ProviderAnthropic {
			t.Fatalf("got provider %q, %v", cfg.Provider, ok)
		}
	})
	t.Run("configured key wins", func(t *testing.T) {
		clearKeyEnv(t)
		t.Setenv("GEMINI_API_KEY", "env")
		in := DefaultConfig()
		in.Gemini.APIKey = "file"
		cfg, _ := DiscoverConfig(in)
		if cfg.Gemini.APIKey != "file" {
			t.Fatalf("APIKey = %q, want file", cfg.Gemini.APIKey)
		}
	})
}

func TestNewProvider_Mock(t *testing.T) {
	p, err := NewProvider(context.Background(), Config{Provider: ProviderMock}, nil, nil)
	if err != nil {
		t.Fatalf("NewProvider: %v", err)
	}
	if p.ModelID() != "mock" {
		t.Fatalf("ModelID = %q", p.ModelID())
	}
}

func TestNewProvider_MissingKey(t *testing.T) {
	_, err := NewProvider(context.Background(), Config{Provider: ProviderGemini}, nil, nil)
	if !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}

type slowProvider struct{}

func (slowProvider) Generate(ctx context.Context, _ Request) (*Response, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func (slowProvider) ModelID() string { return "slow" }

func TestWithTimeout(t *testing.T) {
	p := WithTimeout(slowProvider{}, 5*time.Millisecond)
	_, err := p.Generate(context.Background(), Request{})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
	if WithTimeout(slowProvider{}, 0).ModelID() != "slow" {
		t.Fatal("zero timeout should return the provider unchanged")
	}
}

type recordingRepo struct {
	store.EventRepo
	events []store.LLMRequestEventData
	err    error
}

func (r *recordingRepo) AppendLLMRequest(_ context.Context, data store.LLMRequestEventData) error {
	r.events = append(r.events, data)
	return r.err
}

func TestWithLogging_RecordsEvent(t *testing.T) {
	repo := &recordingRepo{}
	mock := NewMockProvider(MockResponse{Content: json.RawMessage("Sure!"), Usage: Usage{InputTokens: 3, OutputTokens: 2}})
	p := WithLogging(mock, ProviderMock, repo, nil)

	ctx := WithPurpose(context.Background(), PurposeTutor)
	_, err := p.Generate(ctx, Request{System: "be nice", Messages: []Message{{Role: RoleUser, Content: "hi"}}})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if len(repo.events) != 1 {
		t.Fatalf("recorded %d events, want 1", len(repo.events))
	}
	ev := repo.events[0]
	if ev.Purpose != "tutor" || ev.Provider != "mock" || !ev.Success {
		t.Errorf("event = %+v", ev)
	}
	if ev.InputTokens != 3 || ev.OutputTokens != 2 || ev.ResponseBody != "Sure!" {
		t.Errorf("usage/body not recorded: %+v", ev)
	}
	want := "[system]\nbe nice\n\n[user]\nhi\n\n"
	if ev.RequestBody != want {
		t.Errorf("RequestBody = %q, want %q", ev.RequestBody, want)
	}
}

func TestWithLogging_StoreFailureDoesNotFailRequest(t *testing.T) {
	repo := &recordingRepo{err: errors.New("disk full")}
	p := WithLogging(NewMockProvider(MockText("ok")), ProviderMock, repo, nil)

	if _, err := p.Generate(context.Background(), Request{}); err != nil {
		t.Fatalf("Generate: %v", err)
	}
}

func TestWithLogging_RecordsFailure(t *testing.T) {
	repo := &recordingRepo{}
	p := WithLogging(NewMockProvider(), ProviderMock, repo, nil)

	if _, err := p.Generate(context.Background(), Request{}); err == nil {
		t.Fatal("expected error")
	}
	if repo.events[0].Success || repo.events[0].ErrorMessage == "" {
		t.Errorf("failure not recorded: %+v", repo.events[0])
	}
}

func TestLookupCost(t *testing.T) {
	if c := LookupCost("gemini-2.5-flash"); c == nil || c.InputPerMTok != 0.3 {
		t.Fatalf("LookupCost(gemini-2.5-flash) = %+v", c)
	}
	if c := LookupCost("google/gemini-2.5-flash"); c == nil {
		t.Fatal("OpenRouter id should resolve")
	}
	if LookupCost("nope") != nil {
		t.Fatal("unknown model should be nil")
	}
	got := ModelCost{InputPerMTok: 1, OutputPerMTok: 2}.Cost(1_000_000, 500_000)
	if got != 2 {
		t.Errorf("Cost = %v, want 2", got)
	}
}
