package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pable/go-footy-stats/internal/loader"
	"github.com/pable/go-footy-stats/internal/report"
)

var competitionsCmd = &cobra.Command{
	Use:   "competitions",
	Short: "List all competition editions in the data directory",
	Args:  cobra.NoArgs,
	RunE:  runCompetitions,
}

func runCompetitions(cmd *cobra.Command, args []string) error {
	store := loader.NewStore(dataDir)
	comps, err := store.Competitions()
	if err != nil {
		return fmt.Errorf("load competitions: %w", err)
	}
	report.PrintCompetitions(os.Stdout, comps)
	return nil
}
