package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pable/go-footy-stats/internal/loader"
	"github.com/pable/go-footy-stats/internal/storage"
)

// exportCmd dumps the raw competition and match records into SQLite so they
// can be queried ad hoc with the sql command. Derived outcome facts are
// recomputed on every report run and never written here.
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export competitions and matches to the SQLite database",
	Args:  cobra.NoArgs,
	RunE:  runExport,
}

func runExport(cmd *cobra.Command, args []string) error {
	store := loader.NewStore(dataDir)

	comps, err := store.Competitions()
	if err != nil {
		return fmt.Errorf("load competitions: %w", err)
	}
	matches, err := store.Matches()
	if err != nil {
		return fmt.Errorf("load matches: %w", err)
	}

	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create db dir: %w", err)
		}
	}
	db, err := storage.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer db.Close()

	if err := db.InsertCompetitions(comps); err != nil {
		return fmt.Errorf("export competitions: %w", err)
	}
	if err := db.InsertMatches(matches); err != nil {
		return fmt.Errorf("export matches: %w", err)
	}

	fmt.Fprintf(os.Stdout, "Exported %d competitions and %d matches to %s\n",
		len(comps), len(matches), dbPath)
	return nil
}
