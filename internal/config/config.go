// Package config loads studybuddy settings from defaults, an optional YAML
// file and STUDYBUDDY_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/adaptive-learning/studybuddy/internal/llm"
)

// Speech backends.
const (
	SpeechTyped = "typed"
	SpeechGCP   = "gcp"
)

type Config struct {
	LLM    llm.Config   `mapstructure:"llm"`
	Store  StoreConfig  `mapstructure:"store"`
	Log    LogConfig    `mapstructure:"log"`
	Speech SpeechConfig `mapstructure:"speech"`
	Toast  ToastConfig  `mapstructure:"toast"`
	Export ExportConfig `mapstructure:"export"`
	Server ServerConfig `mapstructure:"server"`
}

type StoreConfig struct {
	// Path is the SQLite file. Empty uses store.DefaultDBPath.
	Path string `mapstructure:"path"`
}

type LogConfig struct {
	File       string `mapstructure:"file"`
	Level      string `mapstructure:"level"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
}

type SpeechConfig struct {
	// Backend is "typed" (command palette only) or "gcp".
	Backend string `mapstructure:"backend"`

	// CaptureCommand prints raw LINEAR16 mono PCM on stdout.
	CaptureCommand  string `mapstructure:"capture_command"`
	Language        string `mapstructure:"language"`
	SampleRateHertz int    `mapstructure:"sample_rate_hertz"`
	CredentialsFile string `mapstructure:"credentials_file"`
}

type ToastConfig struct {
	Duration time.Duration `mapstructure:"duration"`
}

type ExportConfig struct {
	Dir string `mapstructure:"dir"`
}

type ServerConfig struct {
	Addr           string          `mapstructure:"addr"`
	Mode           string          `mapstructure:"mode"`
	AllowedOrigins []string        `mapstructure:"allowed_origins"`
	RateLimit      RateLimitConfig `mapstructure:"rate_limit"`
}

// RateLimitConfig is a per-client token bucket.
type RateLimitConfig struct {
	RequestsPerSecond float64 `mapstructure:"requests_per_second"`
	Burst             int     `mapstructure:"burst"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		LLM: llm.DefaultConfig(),
		Log: LogConfig{
			Level:      "info",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
		Speech: SpeechConfig{
			Backend:         SpeechTyped,
			CaptureCommand:  "arecord -q -t raw -f S16_LE -r 16000 -c 1",
			Language:        "en-US",
			SampleRateHertz: 16000,
		},
		Toast: ToastConfig{Duration: 3 * time.Second},
		Export: ExportConfig{
			Dir: ".",
		},
		Server: ServerConfig{
			Addr:           ":8080",
			Mode:           "release",
			AllowedOrigins: []string{"http://localhost:5173"},
			RateLimit:      RateLimitConfig{RequestsPerSecond: 5, Burst: 10},
		},
	}
}

// Load reads configuration. An explicit path must exist; otherwise
// config.yaml in DefaultDir is used when present. Provider API keys are
// then discovered from the environment.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v, Default())

	v.SetEnvPrefix("STUDYBUDDY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	bindShortcuts(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		if dir, err := DefaultDir(); err == nil {
			v.AddConfigPath(dir)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	cfg.LLM, _ = llm.DiscoverConfig(cfg.LLM)
	return &cfg, nil
}

// DefaultDir is $XDG_CONFIG_HOME/studybuddy (or the platform equivalent).
func DefaultDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "studybuddy"), nil
}

func setDefaults(v *viper.Viper, d Config) {
	v.SetDefault("llm.provider", d.LLM.Provider)
	v.SetDefault("llm.timeout", d.LLM.Timeout)
	v.SetDefault("llm.gemini.api_key", "")
	v.SetDefault("llm.gemini.model", d.LLM.Gemini.Model)
	v.SetDefault("llm.openai.api_key", "")
	v.SetDefault("llm.openai.model", d.LLM.OpenAI.Model)
	v.SetDefault("llm.openai.base_url", "")
	v.SetDefault("llm.anthropic.api_key", "")
	v.SetDefault("llm.anthropic.model", d.LLM.Anthropic.Model)
	v.SetDefault("llm.openrouter.api_key", "")
	v.SetDefault("llm.openrouter.model", d.LLM.OpenRouter.Model)
	v.SetDefault("llm.openrouter.base_url", "")
	v.SetDefault("llm.retry.max_attempts", d.LLM.Retry.MaxAttempts)
	v.SetDefault("llm.retry.initial_wait", d.LLM.Retry.InitialWait)
	v.SetDefault("llm.retry.max_wait", d.LLM.Retry.MaxWait)
	v.SetDefault("llm.retry.multiplier", d.LLM.Retry.Multiplier)

	v.SetDefault("store.path", d.Store.Path)

	v.SetDefault("log.file", d.Log.File)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.max_size_mb", d.Log.MaxSizeMB)
	v.SetDefault("log.max_backups", d.Log.MaxBackups)
	v.SetDefault("log.max_age_days", d.Log.MaxAgeDays)

	v.SetDefault("speech.backend", d.Speech.Backend)
	v.SetDefault("speech.capture_command", d.Speech.CaptureCommand)
	v.SetDefault("speech.language", d.Speech.Language)
	v.SetDefault("speech.sample_rate_hertz", d.Speech.SampleRateHertz)
	v.SetDefault("speech.credentials_file", d.Speech.CredentialsFile)

	v.SetDefault("toast.duration", d.Toast.Duration)
	v.SetDefault("export.dir", d.Export.Dir)

	v.SetDefault("server.addr", d.Server.Addr)
	v.SetDefault("server.mode", d.Server.Mode)
	v.SetDefault("server.allowed_origins", d.Server.AllowedOrigins)
	v.SetDefault("server.rate_limit.requests_per_second", d.Server.RateLimit.RequestsPerSecond)
	v.SetDefault("server.rate_limit.burst", d.Server.RateLimit.Burst)
}

// bindShortcuts accepts the short STUDYBUDDY_<PROVIDER>_API_KEY names
// alongside the fully qualified STUDYBUDDY_LLM_* forms.
func bindShortcuts(v *viper.Viper) {
	v.BindEnv("llm.gemini.api_key", "STUDYBUDDY_LLM_GEMINI_API_KEY", "STUDYBUDDY_GEMINI_API_KEY")
	v.BindEnv("llm.openai.api_key", "STUDYBUDDY_LLM_OPENAI_API_KEY", "STUDYBUDDY_OPENAI_API_KEY")
	v.BindEnv("llm.anthropic.api_key", "STUDYBUDDY_LLM_ANTHROPIC_API_KEY", "STUDYBUDDY_ANTHROPIC_API_KEY")
	v.BindEnv("llm.openrouter.api_key", "STUDYBUDDY_LLM_OPENROUTER_API_KEY", "STUDYBUDDY_OPENROUTER_API_KEY")
	v.BindEnv("store.path", "STUDYBUDDY_STORE_PATH")
}
