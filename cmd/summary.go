package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pable/go-footy-stats/internal/loader"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Count the records stored in the data directory",
	Args:  cobra.NoArgs,
	RunE:  runSummary,
}

func runSummary(cmd *cobra.Command, args []string) error {
	store := loader.NewStore(dataDir)
	sum, err := store.Count()
	if err != nil {
		return fmt.Errorf("count records: %w", err)
	}

	fmt.Fprintf(os.Stdout, "Data directory: %s\n", store.Dir())
	fmt.Fprintf(os.Stdout, "  competitions: %d\n", sum.Competitions)
	fmt.Fprintf(os.Stdout, "  matches:      %d\n", sum.Matches)
	fmt.Fprintf(os.Stdout, "  events:       %d\n", sum.Events)
	fmt.Fprintf(os.Stdout, "  lineups:      %d\n", sum.Lineups)
	return nil
}
