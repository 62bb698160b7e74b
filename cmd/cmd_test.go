package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adaptive-learning/studybuddy/internal/search"
	"github.com/adaptive-learning/studybuddy/internal/store"
)

// execute runs the root command in an isolated environment. Cobra keeps
// flag values between runs, so every flag is reset first.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	for _, k := range []string{"GEMINI_API_KEY", "GOOGLE_API_KEY", "API_KEY", "OPENAI_API_KEY", "ANTHROPIC_API_KEY", "OPENROUTER_API_KEY"} {
		t.Setenv(k, "")
	}
	resetFlags(rootCmd)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func seed(t *testing.T, dbPath string, results ...store.QuizResultData) {
	t.Helper()
	s, err := store.Open(dbPath)
	require.NoError(t, err)
	defer s.Close()
	for _, r := range results {
		require.NoError(t, s.EventRepo().AppendQuizResult(context.Background(), r))
	}
}

func storedResults(t *testing.T, dbPath string) []store.QuizResultRecord {
	t.Helper()
	s, err := store.Open(dbPath)
	require.NoError(t, err)
	defer s.Close()
	got, err := s.EventRepo().QueryQuizResults(context.Background(), store.QueryOpts{})
	require.NoError(t, err)
	return got
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "", "version", "--db", filepath.Join(t.TempDir(), "s.db"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "studybuddy "))
}

func TestExport_UsesLatestStoredScore(t *testing.T) {
	dir := t.TempDir()
	db := filepath.Join(dir, "s.db")
	seed(t, db,
		store.QuizResultData{Learner: "Ada", Goal: "Learn History", QuizType: "practice", Correct: 1, Total: 5},
		store.QuizResultData{Learner: "Ada", Goal: "Learn History", QuizType: "practice", Correct: 4, Total: 5},
	)

	target := filepath.Join(dir, "ada.png")
	out, err := execute(t, "", "export", "--db", db, "--name", "Ada", "--goal", "Learn History", "--out", target)
	require.NoError(t, err)
	assert.Contains(t, out, "Progress report saved to "+target)

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("\x89PNG")))
}

func TestExport_RejectsUnknownGoal(t *testing.T) {
	_, err := execute(t, "", "export", "--db", filepath.Join(t.TempDir(), "s.db"), "--name", "Ada", "--goal", "Juggling")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown learning goal")
}

func TestExport_DefaultsToPDFInExportDir(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("STUDYBUDDY_EXPORT_DIR", dir)
	_, err := execute(t, "", "export", "--db", filepath.Join(dir, "s.db"), "--name", "Ada Lovelace")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "progress_report_Ada_Lovelace.pdf"))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
}

func TestReset(t *testing.T) {
	t.Run("with --yes", func(t *testing.T) {
		db := filepath.Join(t.TempDir(), "s.db")
		seed(t, db, store.QuizResultData{Learner: "Ada", Goal: "Improve Math", QuizType: "final", Correct: 2, Total: 2})

		out, err := execute(t, "", "reset", "--db", db, "--yes")
		require.NoError(t, err)
		assert.Contains(t, out, "All stored progress deleted.")
		assert.Empty(t, storedResults(t, db))
	})
	t.Run("declined", func(t *testing.T) {
		db := filepath.Join(t.TempDir(), "s.db")
		seed(t, db, store.QuizResultData{Learner: "Ada", Goal: "Improve Math", QuizType: "final", Correct: 2, Total: 2})

		out, err := execute(t, "n\n", "reset", "--db", db)
		require.NoError(t, err)
		assert.Contains(t, out, "Aborted.")
		assert.Len(t, storedResults(t, db), 1)
	})
}

func TestStats(t *testing.T) {
	db := filepath.Join(t.TempDir(), "s.db")

	out, err := execute(t, "", "stats", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "No quizzes recorded yet.")

	seed(t, db,
		store.QuizResultData{Learner: "Ada", Goal: "Improve Math", QuizType: "practice", Correct: 3, Total: 4,
			Topics: []store.TopicTally{{Topic: "Algebra", Correct: 3, Attempted: 4}}},
		store.QuizResultData{Learner: "Bo", Goal: "Improve Math", QuizType: "practice", Correct: 0, Total: 4},
	)

	out, err = execute(t, "", "stats", "--db", db, "--learner", "Ada")
	require.NoError(t, err)
	assert.Contains(t, out, "Algebra")
	assert.Contains(t, out, "strong")
	assert.Contains(t, out, "Quizzes taken:  1")
	assert.Contains(t, out, "Current streak: 1 days")
}

func TestMaterials_StaticJSON(t *testing.T) {
	out, err := execute(t, "", "materials", "--db", filepath.Join(t.TempDir(), "s.db"), "--json", "Improve Math", "factoring")
	require.NoError(t, err)

	var res search.Result
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	require.NotEmpty(t, res.Materials)
	assert.False(t, res.Dynamic)
	assert.Equal(t, "Factoring Quadratic Equations", res.Materials[0].Title)
}

func TestMaterials_NoMatchWithoutProvider(t *testing.T) {
	out, err := execute(t, "", "materials", "--db", filepath.Join(t.TempDir(), "s.db"), "Improve Math", "zzz-nothing")
	require.NoError(t, err)
	assert.Contains(t, out, "No materials found.")
}

func TestAsk_FailsWithoutProvider(t *testing.T) {
	_, err := execute(t, "", "ask", "--db", filepath.Join(t.TempDir(), "s.db"), "what", "is", "photosynthesis?")
	require.Error(t, err)
}

func TestLLMList_Empty(t *testing.T) {
	out, err := execute(t, "", "llm", "list", "--db", filepath.Join(t.TempDir(), "s.db"))
	require.NoError(t, err)
	assert.Contains(t, out, "No AI provider events found.")
}

func TestFilterByPurpose(t *testing.T) {
	events := []store.LLMEventRecord{
		{ID: 1, LLMRequestEventData: store.LLMRequestEventData{Purpose: "tutor"}},
		{ID: 2, LLMRequestEventData: store.LLMRequestEventData{Purpose: "hint"}},
		{ID: 3, LLMRequestEventData: store.LLMRequestEventData{Purpose: "tutor"}},
	}
	assert.Len(t, filterByPurpose(events, ""), 3)

	got := filterByPurpose(events, "tutor")
	require.Len(t, got, 2)
	assert.Equal(t, 3, got[1].ID)
}

func TestFormatCost(t *testing.T) {
	assert.Equal(t, "$0.0042", formatCost(0.0042))
	assert.Equal(t, "$1.50", formatCost(1.5))
}

func TestSetup_ConsoleLoggingOnlyForSubcommands(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_DATA_HOME", t.TempDir())

	var sub, root bytes.Buffer
	versionCmd.SetErr(&sub)
	rootCmd.SetErr(&root)
	t.Cleanup(func() {
		versionCmd.SetErr(nil)
		rootCmd.SetErr(nil)
	})

	require.NoError(t, setup(versionCmd))
	logger.Infow("headless run")
	_ = logger.Sync()
	assert.Contains(t, sub.String(), "headless run")

	require.NoError(t, setup(rootCmd))
	logger.Infow("interactive run")
	_ = logger.Sync()
	assert.Empty(t, root.String())
}
