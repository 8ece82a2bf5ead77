package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pable/go-footy-stats/internal/config"
)

var (
	dataDir string
	dbPath  string

	// cfg is the layered file/env configuration; flags set explicitly on the
	// command line always win over it.
	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "footystats",
	Short: "Football open-data analysis tool",
	Long:  "Load StatsBomb-style open data, resolve match outcomes, and aggregate competition reports.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = loaded

		flags := cmd.Root().PersistentFlags()
		if !flags.Changed("data") {
			dataDir = cfg.DataDir
		}
		if !flags.Changed("db") {
			dbPath = cfg.DBPath
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	defaults := config.Default()
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", defaults.DataDir, "path to the open-data directory")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", defaults.DBPath, "path to the SQLite export database")

	rootCmd.AddCommand(competitionsCmd)
	rootCmd.AddCommand(matchesCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(sqlCmd)
	rootCmd.AddCommand(dropCmd)
	rootCmd.AddCommand(fetchCmd)
	rootCmd.AddCommand(shellCmd)
	rootCmd.AddCommand(analyzeCmd)
}
