package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/adaptive-learning/studybuddy/internal/insights"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show quiz history, topic proficiency and study streak",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		learner, _ := cmd.Flags().GetString("learner")

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		in, err := insights.Load(cmd.Context(), st.EventRepo(), learner, time.Now())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if in.Empty() {
			fmt.Fprintln(out, "No quizzes recorded yet.")
			return nil
		}

		fmt.Fprintln(out, "Recent Scores")
		fmt.Fprintln(out, strings.Repeat("─", 40))
		scores := in.Scores
		if len(scores) > 10 {
			scores = scores[len(scores)-10:]
		}
		for _, s := range scores {
			fmt.Fprintf(out, "%-19s  %-8s  %3d%%\n", s.At.Local().Format("2006-01-02 15:04"), s.Label, s.Percent)
		}

		fmt.Fprintln(out)
		fmt.Fprintln(out, "Topics")
		fmt.Fprintln(out, strings.Repeat("─", 40))
		for _, t := range in.Topics {
			fmt.Fprintf(out, "%-20s  %3d/%-3d  %3d%%  %s\n", truncate(t.Topic, 20), t.Correct, t.Attempted, t.Percent, bandLabel(t.Band))
		}

		fmt.Fprintln(out)
		fmt.Fprintf(out, "Quizzes taken:  %d\n", len(in.Scores))
		fmt.Fprintf(out, "Current streak: %d days\n", in.CurrentStreak)
		return nil
	},
}

func bandLabel(b insights.Band) string {
	switch b {
	case insights.Strong:
		return "strong"
	case insights.Fair:
		return "fair"
	}
	return "weak"
}

func init() {
	statsCmd.Flags().StringP("learner", "l", "", "Only include this learner's quizzes")
}
