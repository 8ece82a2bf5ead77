package cmd

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pable/go-footy-stats/internal/analysis"
	"github.com/pable/go-footy-stats/internal/config"
	"github.com/pable/go-footy-stats/internal/loader"
	"github.com/pable/go-footy-stats/internal/model"
	"github.com/pable/go-footy-stats/internal/report"
)

// report command flags.
var (
	// reportCompetition names the studied competition.
	reportCompetition string
	// reportMinSeason is the first season year included in the study.
	reportMinSeason int
	// reportTop bounds the scorer ranking length.
	reportTop int
	// reportStrict aborts on the first match that fails resolution instead
	// of skipping it.
	reportStrict bool
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Full competition study: participation, results, wins, top scorers",
	Long: `Resolve every match of one competition across a season window and print
the aggregate reports: teams reaching the stage by country, per-match results
with scorers and penalty tallies, wins by country and team, and top scorers.

A match whose events or lineups cannot be resolved is reported to stderr and
excluded from every report; pass --strict to abort on the first failure.`,
	Args: cobra.NoArgs,
	RunE: runReport,
}

func init() {
	defaults := config.Default()
	reportCmd.Flags().StringVar(&reportCompetition, "competition", defaults.Competition, "competition to study")
	reportCmd.Flags().IntVar(&reportMinSeason, "min-season", defaults.MinSeason, "first season year included")
	reportCmd.Flags().IntVar(&reportTop, "top", defaults.TopScorers, "number of top scorers listed")
	reportCmd.Flags().BoolVar(&reportStrict, "strict", false, "abort on the first match that fails resolution")
}

func runReport(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()
	if !flags.Changed("competition") {
		reportCompetition = cfg.Competition
	}
	if !flags.Changed("min-season") {
		reportMinSeason = cfg.MinSeason
	}
	if !flags.Changed("top") {
		reportTop = cfg.TopScorers
	}

	store := loader.NewStore(dataDir)
	resolved, err := buildStudy(store, reportCompetition, reportMinSeason, reportStrict)
	if err != nil {
		return err
	}
	printStudy(resolved, reportCompetition, reportTop)
	return nil
}

// buildStudy selects the competition's matches at or after the season floor,
// orders them by season, and resolves each one: outcome facts from the event
// sequence, then scorer names from the lineups. A match that fails either
// step is skipped with a note on stderr, or aborts the study under strict.
func buildStudy(store *loader.Store, competition string, minSeason int, strict bool) ([]model.Resolved, error) {
	all, err := store.Matches()
	if err != nil {
		return nil, fmt.Errorf("load matches: %w", err)
	}

	var matches []model.Match
	for _, m := range all {
		if m.Competition != competition {
			continue
		}
		if seasonFirstYear(m.SeasonName) < minSeason {
			continue
		}
		matches = append(matches, m)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no matches for %q from season %d on", competition, minSeason)
	}
	sort.Slice(matches, func(i, j int) bool {
		if matches[i].SeasonName != matches[j].SeasonName {
			return matches[i].SeasonName < matches[j].SeasonName
		}
		return matches[i].ID < matches[j].ID
	})

	var resolved []model.Resolved
	for _, m := range matches {
		r, err := resolveMatch(store, m)
		if err != nil {
			if strict {
				return nil, err
			}
			fmt.Fprintf(os.Stderr, "  [skip] match %d (%s-%s %s): %v\n",
				m.ID, m.HomeTeam.Name, m.AwayTeam.Name, m.SeasonName, err)
			continue
		}
		resolved = append(resolved, r)
	}
	if len(resolved) == 0 {
		return nil, fmt.Errorf("no match of %q could be resolved", competition)
	}
	return resolved, nil
}

func resolveMatch(store *loader.Store, m model.Match) (model.Resolved, error) {
	events, err := store.Events(m.ID)
	if err != nil {
		return model.Resolved{}, err
	}
	r, err := analysis.Resolve(m, events)
	if err != nil {
		return model.Resolved{}, err
	}
	lineups, err := store.Lineups(m.ID)
	if err != nil {
		return model.Resolved{}, err
	}
	if err := analysis.ResolveNicknames(m.ID, lineups, r.Goals); err != nil {
		return model.Resolved{}, err
	}
	return r, nil
}

func printStudy(resolved []model.Resolved, competition string, top int) {
	first := resolved[0].Match.SeasonName
	last := resolved[len(resolved)-1].Match.SeasonName
	report.PrintStudyHeader(os.Stdout, competition, first, last)

	report.PrintCountryTable(os.Stdout, analysis.CountryParticipation(resolved))

	fmt.Fprintln(os.Stdout, "* Results")
	for _, r := range resolved {
		report.PrintMatchResult(os.Stdout, r)
	}
	fmt.Fprintln(os.Stdout)

	report.PrintWinsTable(os.Stdout, analysis.WinsByCountry(resolved))
	report.PrintTopScorers(os.Stdout, analysis.TopScorers(resolved, top), top)
}

// seasonFirstYear parses the starting year of a season name like "2018/2019"
// or "2018". Unparseable names sort before every floor.
func seasonFirstYear(season string) int {
	year, _, _ := strings.Cut(season, "/")
	n, err := strconv.Atoi(year)
	if err != nil {
		return 0
	}
	return n
}
