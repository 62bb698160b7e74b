package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/adaptive-learning/studybuddy/internal/catalog"
	"github.com/adaptive-learning/studybuddy/internal/search"
)

var materialsCmd = &cobra.Command{
	Use:   "materials <goal> [query...]",
	Short: "Search study materials for a learning goal",
	Long: "Search the curated materials for a goal. When nothing in the catalog matches the query,\n" +
		"the AI provider is asked for more (if one is configured).\n\n" +
		"Goals: " + goalList(),
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		goal, err := catalog.ParseGoal(args[0])
		if err != nil {
			return err
		}
		typeFilter, _ := cmd.Flags().GetString("type")
		asJSON, _ := cmd.Flags().GetBool("json")
		query := strings.Join(args[1:], " ")

		// The store only records AI requests here.
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		var finder search.MaterialFinder
		if gw, err := newGateway(cmd.Context(), st.EventRepo()); err == nil {
			finder = gw
		}
		res := search.New(finder).Search(cmd.Context(), goal, typeFilter, query)

		out := cmd.OutOrStdout()
		if asJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(res)
		}

		if res.NoResults {
			fmt.Fprintln(out, "No materials found.")
			fmt.Fprintln(out, "Try adjusting your search or filter.")
			return nil
		}
		if res.Dynamic {
			fmt.Fprintln(out, "(suggested by AI)")
		}
		for _, m := range res.Materials {
			fmt.Fprintf(out, "%s  [%s, %s]\n  %s\n", m.Title, m.Type, m.Source, m.URL)
			for _, v := range m.Videos {
				fmt.Fprintf(out, "    ▶ %s  %s\n", v.Title, v.URL)
			}
		}
		return nil
	},
}

func goalList() string {
	goals := catalog.AllGoals()
	names := make([]string, len(goals))
	for i, g := range goals {
		names[i] = fmt.Sprintf("%q", string(g))
	}
	return strings.Join(names, ", ")
}

func init() {
	materialsCmd.Flags().StringP("type", "t", search.All, "Only show materials of this type (e.g. Article, Course)")
	materialsCmd.Flags().Bool("json", false, "Print the result as JSON")
}
