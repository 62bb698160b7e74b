package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/adaptive-learning/studybuddy/internal/config"
	"github.com/adaptive-learning/studybuddy/internal/logging"
	"github.com/adaptive-learning/studybuddy/internal/store"
)

// Loaded by the root PersistentPreRunE before any command runs.
var (
	cfg    *config.Config
	logger *zap.SugaredLogger
)

var rootCmd = &cobra.Command{
	Use:          "studybuddy",
	Short:        "Terminal study companion",
	Long:         "StudyBuddy: practice quizzes, curated study materials and an AI tutor for self-paced learners, in your terminal.",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup(cmd)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to config file (default $XDG_CONFIG_HOME/studybuddy/config.yaml)")
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides store.path and STUDYBUDDY_STORE_PATH)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(materialsCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(serveCmd)
}

// setup loads configuration and builds the logger. The TUI owns the
// terminal, so only headless commands also log to stderr.
func setup(cmd *cobra.Command) error {
	path, _ := cmd.Flags().GetString("config")
	c, err := config.Load(path)
	if err != nil {
		return err
	}
	cfg = c

	var opts logging.Options
	if cmd.HasParent() {
		opts.Console = cmd.ErrOrStderr()
	}
	l, err := logging.New(cfg.Log, opts)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	logger = l.With("command", cmd.Name())
	return nil
}

// resolveDBPath returns the database path using --db (highest priority),
// then the configured store path, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	p, _ := cmd.Flags().GetString("db")
	if p == "" && cfg != nil {
		p = cfg.Store.Path
	}
	if p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	logger.Debugw("store opened", "path", dbPath)
	return s, nil
}

func warnAIUnavailable(err error) {
	fmt.Fprintln(os.Stderr, "AI provider not configured:", err)
	fmt.Fprintln(os.Stderr, "AI features will be unavailable.")
}
