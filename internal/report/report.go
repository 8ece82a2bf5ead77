// Package report formats analysis results for the console.
package report

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/pable/go-footy-stats/internal/model"
)

func newTable(w io.Writer) *tablewriter.Table {
	return tablewriter.NewTable(w, tablewriter.WithConfig(tablewriter.Config{
		Row:    tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignRight}},
		Header: tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignCenter}},
	}))
}

// PrintCompetitions lists competition editions grouped by gender, male first.
func PrintCompetitions(w io.Writer, comps []model.Competition) {
	fmt.Fprintln(w, "*** Competitions ***")
	for _, gender := range []string{"male", "female"} {
		for _, c := range comps {
			if c.Gender == gender {
				fmt.Fprintf(w, "%s %s\n", c.Name, c.SeasonName)
			}
		}
		fmt.Fprintln(w)
	}
}

// PrintMatchesBySeason lists a competition's matches grouped by season,
// seasons in ascending name order.
func PrintMatchesBySeason(w io.Writer, competition string, matches []model.Match) {
	fmt.Fprintf(w, "*** %s matches ***\n", competition)

	bySeason := make(map[string][]model.Match)
	for _, m := range matches {
		bySeason[m.SeasonName] = append(bySeason[m.SeasonName], m)
	}
	seasons := make([]string, 0, len(bySeason))
	for s := range bySeason {
		seasons = append(seasons, s)
	}
	sort.Strings(seasons)

	fmt.Fprintf(w, "Seasons: %d\n", len(seasons))
	fmt.Fprintf(w, "Matches: %d\n", len(matches))
	for _, season := range seasons {
		group := bySeason[season]
		fmt.Fprintf(w, "* %s - %d matches\n", season, len(group))
		for _, m := range group {
			fmt.Fprintf(w, "\t%s-%s %d-%d\n",
				m.HomeTeam.Name, m.AwayTeam.Name, m.HomeScore, m.AwayScore)
		}
		fmt.Fprintln(w)
	}
}

// PrintStudyHeader prints the season window of a competition study.
func PrintStudyHeader(w io.Writer, competition, firstSeason, lastSeason string) {
	fmt.Fprintf(w, "Study of %s for seasons %s - %s\n\n", competition, firstSeason, lastSeason)
}

// PrintMatchResult prints one match line with each goal indented under the
// scoring side and, after a shootout, the penalty tally:
//
//	2010/2011 Rovers    - Wanderers 1-1
//	          12' Artie
//	                      67' Bru
//	          * Penalties 4-2
func PrintMatchResult(w io.Writer, r model.Resolved) {
	m := r.Match
	overview := fmt.Sprintf("%s%s %s%s- %s %d-%d",
		strings.Repeat(" ", 8), m.SeasonName, m.HomeTeam.Name,
		strings.Repeat(" ", 4), m.AwayTeam.Name, m.HomeScore, m.AwayScore)
	fmt.Fprintln(w, overview)

	homePos := strings.Index(overview, m.HomeTeam.Name)
	awayPos := strings.Index(overview, m.AwayTeam.Name)
	for _, g := range r.Goals {
		pos := homePos
		if g.TeamName != m.HomeTeam.Name {
			pos = awayPos
		}
		// The stored minute is the latest full minute; report the ongoing one.
		fmt.Fprintf(w, "%s%d' %s\n", strings.Repeat(" ", pos), g.Minute+1, g.Nickname)
	}

	if r.Result == model.Shootout {
		fmt.Fprintf(w, "%s* Penalties %d-%d\n",
			strings.Repeat(" ", homePos), r.HomePenalties, r.AwayPenalties)
	}
}

// PrintCountryTable prints the participation-by-country report.
func PrintCountryTable(w io.Writer, rows []model.CountryCount) {
	fmt.Fprintln(w, "* Teams reaching this stage by country")
	table := newTable(w)
	table.Header("COUNTRY", "TEAMS")
	for _, r := range rows {
		table.Append(r.Country, strconv.Itoa(r.Count))
	}
	table.Render()
	fmt.Fprintln(w)
}

// PrintWinsTable prints win tallies grouped by country and team.
func PrintWinsTable(w io.Writer, rows []model.CountryWins) {
	fmt.Fprintln(w, "* Wins by country and team")
	table := newTable(w)
	table.Header("COUNTRY", "TEAM", "WINS")
	for _, c := range rows {
		table.Append(c.Country, "", strconv.Itoa(c.Wins))
		for _, t := range c.Teams {
			table.Append("", t.Team, strconv.Itoa(t.Wins))
		}
	}
	table.Render()
	fmt.Fprintln(w)
}

// PrintTopScorers prints the ranked scorer report. The header announces the
// requested ranking size even when fewer scorers exist.
func PrintTopScorers(w io.Writer, rows []model.ScorerCount, top int) {
	fmt.Fprintf(w, "* Top %d goal scorers\n", top)
	table := newTable(w)
	table.Header("PLAYER", "GOALS")
	for _, r := range rows {
		table.Append(r.Nickname, strconv.Itoa(r.Goals))
	}
	table.Render()
	fmt.Fprintln(w)
}
