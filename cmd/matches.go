package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pable/go-footy-stats/internal/loader"
	"github.com/pable/go-footy-stats/internal/model"
	"github.com/pable/go-footy-stats/internal/report"
)

var matchesCmd = &cobra.Command{
	Use:   "matches <competition>",
	Short: "List a competition's matches grouped by season",
	Args:  cobra.ExactArgs(1),
	RunE:  runMatches,
}

func runMatches(cmd *cobra.Command, args []string) error {
	competition := args[0]

	store := loader.NewStore(dataDir)
	all, err := store.Matches()
	if err != nil {
		return fmt.Errorf("load matches: %w", err)
	}

	var matches []model.Match
	for _, m := range all {
		if m.Competition == competition {
			matches = append(matches, m)
		}
	}
	if len(matches) == 0 {
		return fmt.Errorf("no matches found for competition %q", competition)
	}

	report.PrintMatchesBySeason(os.Stdout, competition, matches)
	return nil
}
