package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adaptive-learning/studybuddy/internal/llm"
)

// isolate points every lookup location at an empty temp dir and clears
// provider keys.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
	for _, k := range []string{
		"GEMINI_API_KEY", "GOOGLE_API_KEY", "API_KEY", "OPENAI_API_KEY",
		"ANTHROPIC_API_KEY", "OPENROUTER_API_KEY",
		"STUDYBUDDY_GEMINI_API_KEY", "STUDYBUDDY_LLM_PROVIDER",
	} {
		t.Setenv(k, "")
	}
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, llm.ProviderGemini, cfg.LLM.Provider)
	assert.Equal(t, llm.DefaultGeminiModel, cfg.LLM.Gemini.Model)
	assert.Equal(t, 3*time.Second, cfg.Toast.Duration)
	assert.Equal(t, SpeechTyped, cfg.Speech.Backend)
	assert.Equal(t, 16000, cfg.Speech.SampleRateHertz)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, 3, cfg.LLM.Retry.MaxAttempts)
}

func TestLoad_File(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "custom.yaml")
	yaml := `
llm:
  provider: openai
  openai:
    api_key: sk-file
    model: gpt-4.1-mini
toast:
  duration: 5s
server:
  allowed_origins: ["https://a.test", "https://b.test"]
  rate_limit:
    burst: 3
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, llm.ProviderOpenAI, cfg.LLM.Provider)
	assert.Equal(t, "sk-file", cfg.LLM.OpenAI.APIKey)
	assert.Equal(t, "gpt-4.1-mini", cfg.LLM.OpenAI.Model)
	assert.Equal(t, 5*time.Second, cfg.Toast.Duration)
	assert.Equal(t, []string{"https://a.test", "https://b.test"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, 3, cfg.Server.RateLimit.Burst)
	assert.Equal(t, float64(5), cfg.Server.RateLimit.RequestsPerSecond)
}

func TestLoad_DefaultDirFile(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "studybuddy"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "studybuddy", "config.yaml"),
		[]byte("export:\n  dir: /tmp/reports\n"), 0o644))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/reports", cfg.Export.Dir)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	dir := isolate(t)
	_, err := Load(filepath.Join(dir, "nope.yaml"))
	require.Error(t, err)
}

func TestLoad_EnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("STUDYBUDDY_LLM_PROVIDER", "mock")
	t.Setenv("STUDYBUDDY_LOG_LEVEL", "debug")
	t.Setenv("STUDYBUDDY_GEMINI_API_KEY", "g-env")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, llm.ProviderMock, cfg.LLM.Provider)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "g-env", cfg.LLM.Gemini.APIKey)
}

func TestLoad_DiscoversStandardKeys(t *testing.T) {
	isolate(t)
	t.Setenv("OPENROUTER_API_KEY", "or")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, llm.ProviderOpenRouter, cfg.LLM.Provider)
	assert.Equal(t, "or", cfg.LLM.OpenRouter.APIKey)
}
