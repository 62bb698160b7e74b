package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/adaptive-learning/studybuddy/internal/app"
	"github.com/adaptive-learning/studybuddy/internal/config"
	"github.com/adaptive-learning/studybuddy/internal/gateway"
	"github.com/adaptive-learning/studybuddy/internal/llm"
	"github.com/adaptive-learning/studybuddy/internal/screen"
	"github.com/adaptive-learning/studybuddy/internal/speech"
	"github.com/adaptive-learning/studybuddy/internal/state"
	"github.com/adaptive-learning/studybuddy/internal/store"
	"github.com/adaptive-learning/studybuddy/internal/voice"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	repo := st.EventRepo()
	gw, err := newGateway(ctx, repo)
	if err != nil {
		warnAIUnavailable(err)
	}

	opts := app.Options{
		Deps: screen.Deps{
			State:     state.New(state.WithToastDuration(cfg.Toast.Duration)),
			Tutor:     gw,
			Hints:     gw,
			Finder:    gw,
			Repo:      repo,
			ExportDir: cfg.Export.Dir,
			Log:       logger,
		},
	}

	rec, closeRec, err := newRecognizer(ctx, cfg.Speech)
	if err != nil {
		return err
	}
	defer closeRec()
	opts.Recognizer = rec
	if typed, ok := rec.(*voice.TypedRecognizer); ok {
		opts.Typed = typed
	}

	return app.Run(opts)
}

// newGateway always returns a usable gateway. The error reports why the
// provider could not be built; the gateway then answers with its
// unavailable fallbacks.
func newGateway(ctx context.Context, repo store.EventRepo) (*gateway.Gateway, error) {
	provider, err := llm.NewProvider(ctx, cfg.LLM, repo, logger)
	if err != nil {
		logger.Warnw("AI provider unavailable", "provider", cfg.LLM.Provider, "error", err)
		return gateway.New(nil, logger), err
	}
	logger.Infow("AI provider ready", "provider", cfg.LLM.Provider, "model", provider.ModelID())
	return gateway.New(provider, logger), nil
}

// newRecognizer picks the voice backend. A failing cloud backend leaves
// voice unsupported rather than stopping the app.
func newRecognizer(ctx context.Context, sc config.SpeechConfig) (voice.Recognizer, func(), error) {
	switch sc.Backend {
	case config.SpeechTyped, "":
		return voice.NewTypedRecognizer(), func() {}, nil
	case config.SpeechGCP:
		r, err := speech.New(ctx, sc, logger)
		if err != nil {
			logger.Warnw("speech recognition unavailable", "error", err)
			return nil, func() {}, nil
		}
		return r, func() {
			if err := r.Close(); err != nil {
				logger.Warnw("closing speech client", "error", err)
			}
		}, nil
	}
	return nil, nil, fmt.Errorf("unknown speech backend %q", sc.Backend)
}
