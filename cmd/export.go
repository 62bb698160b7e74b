package cmd

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/adaptive-learning/studybuddy/internal/catalog"
	"github.com/adaptive-learning/studybuddy/internal/report"
	"github.com/adaptive-learning/studybuddy/internal/state"
	"github.com/adaptive-learning/studybuddy/internal/store"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write a progress report (PDF or PNG) for a learner",
	Long: "Write a progress report. The score is the learner's most recent stored quiz.\n" +
		"The format follows the --out extension: .pdf (default) or .png.",
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("name")
		goalFlag, _ := cmd.Flags().GetString("goal")
		styleFlag, _ := cmd.Flags().GetString("style")
		out, _ := cmd.Flags().GetString("out")

		goal, err := catalog.ParseGoal(goalFlag)
		if err != nil {
			return err
		}
		style, err := catalog.ParseStyle(styleFlag)
		if err != nil {
			return err
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		score, err := latestScore(cmd, st.EventRepo(), name)
		if err != nil {
			return err
		}

		profile := catalog.Profile{Name: name, Goal: goal, LearningStyle: style}
		r := report.Build(profile, score, time.Now())
		if out == "" {
			out = filepath.Join(cfg.Export.Dir, report.FileName(name))
		}
		if err := report.WriteFile(out, r); err != nil {
			return fmt.Errorf("export report: %w", err)
		}
		logger.Infow("report exported", "learner", name, "path", out)
		fmt.Fprintln(cmd.OutOrStdout(), "Progress report saved to", out)
		return nil
	},
}

// latestScore returns nil when the learner has no stored quiz.
func latestScore(cmd *cobra.Command, repo store.EventRepo, learner string) (*state.Score, error) {
	results, err := repo.QueryQuizResults(cmd.Context(), store.QueryOpts{})
	if err != nil {
		return nil, fmt.Errorf("query quiz results: %w", err)
	}
	for i := len(results) - 1; i >= 0; i-- {
		if results[i].Learner == learner {
			return &state.Score{Correct: results[i].Correct, Total: results[i].Total}, nil
		}
	}
	return nil, nil
}

func init() {
	exportCmd.Flags().String("name", "", "Learner name")
	exportCmd.Flags().String("goal", string(catalog.GoalMath), "Learning goal")
	exportCmd.Flags().String("style", string(catalog.StyleVisual), "Learning style (Visual, Audio, Mixed)")
	exportCmd.Flags().StringP("out", "o", "", "Output file (default <export.dir>/progress_report_<name>.pdf)")
	_ = exportCmd.MarkFlagRequired("name")
}
