package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
)

// openDataBase is the raw-file mirror of the StatsBomb open-data repository.
const openDataBase = "https://raw.githubusercontent.com/statsbomb/open-data/master/data"

// fetch command flags.
var (
	// fetchCompetitionID selects the competition to download.
	fetchCompetitionID int
	// fetchSeasonID selects the season edition within the competition.
	fetchSeasonID int
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Download one competition season from the open-data mirror",
	Long: `Downloads the competition index, the season's match file, and each match's
events and lineups into the data directory.

Examples:
  # Champions League 2018/2019
  footystats fetch --competition-id 16 --season-id 4`,
	Args: cobra.NoArgs,
	RunE: runFetch,
}

func init() {
	fetchCmd.Flags().IntVar(&fetchCompetitionID, "competition-id", 0, "competition id (required)")
	fetchCmd.Flags().IntVar(&fetchSeasonID, "season-id", 0, "season id (required)")
	_ = fetchCmd.MarkFlagRequired("competition-id")
	_ = fetchCmd.MarkFlagRequired("season-id")
}

func runFetch(cmd *cobra.Command, args []string) error {
	client := &http.Client{Timeout: 60 * time.Second}

	if err := downloadFile(client,
		openDataBase+"/competitions.json",
		filepath.Join(dataDir, "competitions.json")); err != nil {
		return fmt.Errorf("download competitions: %w", err)
	}

	matchesRel := fmt.Sprintf("matches/%d/%d.json", fetchCompetitionID, fetchSeasonID)
	matchesPath := filepath.Join(dataDir, filepath.FromSlash(matchesRel))
	if err := downloadFile(client, openDataBase+"/"+matchesRel, matchesPath); err != nil {
		return fmt.Errorf("download matches: %w", err)
	}

	ids, err := matchIDs(matchesPath)
	if err != nil {
		return fmt.Errorf("read match ids: %w", err)
	}
	fmt.Fprintf(os.Stdout, "Season %d/%d: %d matches\n", fetchCompetitionID, fetchSeasonID, len(ids))

	fetched := 0
	for i, id := range ids {
		fmt.Fprintf(os.Stdout, "[%d/%d] match %d\n", i+1, len(ids), id)
		ok := true
		for _, kind := range []string{"events", "lineups"} {
			rel := fmt.Sprintf("%s/%d.json", kind, id)
			err := downloadFile(client, openDataBase+"/"+rel, filepath.Join(dataDir, filepath.FromSlash(rel)))
			if err != nil {
				fmt.Fprintf(os.Stderr, "  [skip] %s: %v\n", kind, err)
				ok = false
			}
		}
		if ok {
			fetched++
		}
	}

	fmt.Fprintf(os.Stdout, "\nDone: %d/%d matches fetched into %s\n", fetched, len(ids), dataDir)
	return nil
}

// matchIDs extracts the match ids from a downloaded match file.
func matchIDs(path string) ([]int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var raw []struct {
		MatchID int `json:"match_id"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	ids := make([]int, 0, len(raw))
	for _, m := range raw {
		ids = append(ids, m.MatchID)
	}
	return ids, nil
}

// downloadFile fetches url into dest, creating parent directories as needed.
func downloadFile(client *http.Client, url, dest string) error {
	resp, err := client.Get(url)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("HTTP %d", resp.StatusCode)
	}

	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return err
	}
	f, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := io.Copy(f, resp.Body); err != nil {
		os.Remove(dest)
		return fmt.Errorf("write: %w", err)
	}
	return nil
}
