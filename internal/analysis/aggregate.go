package analysis

import (
	"sort"

	"github.com/pable/go-footy-stats/internal/model"
)

// DefaultTopScorers is the length of the top-scorer report.
const DefaultTopScorers = 10

// CountryParticipation counts (team, match) appearances per country across
// both sides of every match. Rows are ordered by descending count; countries
// with equal counts keep their first-encounter order.
func CountryParticipation(matches []model.Resolved) []model.CountryCount {
	counts := make(map[string]int)
	var order []string
	bump := func(country string) {
		if _, seen := counts[country]; !seen {
			order = append(order, country)
		}
		counts[country]++
	}
	for _, r := range matches {
		bump(r.Match.HomeTeam.Country)
		bump(r.Match.AwayTeam.Country)
	}

	out := make([]model.CountryCount, 0, len(order))
	for _, c := range order {
		out = append(out, model.CountryCount{Country: c, Count: counts[c]})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	return out
}

// WinsByCountry tallies each match's resolved winner per country and per team
// name within the country. Countries are ordered by descending total wins
// (encounter order on ties); teams within a country by descending wins.
// Draws contribute to no tally.
func WinsByCountry(matches []model.Resolved) []model.CountryWins {
	type teamTally struct {
		counts map[string]int
		order  []string
	}
	tallies := make(map[string]*teamTally)
	var countryOrder []string

	for _, r := range matches {
		if r.Winner.Draw {
			continue
		}
		w := r.Winner.Team
		t, ok := tallies[w.Country]
		if !ok {
			t = &teamTally{counts: make(map[string]int)}
			tallies[w.Country] = t
			countryOrder = append(countryOrder, w.Country)
		}
		if _, seen := t.counts[w.Name]; !seen {
			t.order = append(t.order, w.Name)
		}
		t.counts[w.Name]++
	}

	out := make([]model.CountryWins, 0, len(countryOrder))
	for _, country := range countryOrder {
		t := tallies[country]
		cw := model.CountryWins{Country: country}
		for _, name := range t.order {
			cw.Teams = append(cw.Teams, model.TeamWins{Team: name, Wins: t.counts[name]})
			cw.Wins += t.counts[name]
		}
		sort.SliceStable(cw.Teams, func(i, j int) bool {
			return cw.Teams[i].Wins > cw.Teams[j].Wins
		})
		out = append(out, cw)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Wins > out[j].Wins
	})
	return out
}

// TopScorers flattens every match's goal scorers into occurrence counts per
// distinct nickname and returns the top n by descending count. Equal counts
// order lexically by nickname, so the report is stable under any input
// permutation.
func TopScorers(matches []model.Resolved, n int) []model.ScorerCount {
	counts := make(map[string]int)
	for _, r := range matches {
		for _, g := range r.Goals {
			counts[g.Nickname]++
		}
	}

	out := make([]model.ScorerCount, 0, len(counts))
	for nick, c := range counts {
		out = append(out, model.ScorerCount{Nickname: nick, Goals: c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Goals != out[j].Goals {
			return out[i].Goals > out[j].Goals
		}
		return out[i].Nickname < out[j].Nickname
	})
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}
