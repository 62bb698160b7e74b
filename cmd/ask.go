package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/adaptive-learning/studybuddy/internal/chat"
)

var askCmd = &cobra.Command{
	Use:   "ask <question...>",
	Short: "Ask the study tutor a single question",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		gw, err := newGateway(cmd.Context(), st.EventRepo())
		if err != nil {
			return err
		}

		reply, err := gw.Ask(cmd.Context(), strings.Join(args, " "), nil)
		if err != nil {
			return fmt.Errorf("ask tutor: %w", err)
		}

		out := cmd.OutOrStdout()
		prose, links := chat.ExtractLinks(reply)
		fmt.Fprintln(out, strings.TrimSpace(prose))
		if len(links) > 0 {
			fmt.Fprintln(out)
			fmt.Fprintln(out, "Related Materials:")
			for _, l := range links {
				fmt.Fprintf(out, "  • %s  %s\n", l.Title, l.URL)
			}
		}
		return nil
	},
}
