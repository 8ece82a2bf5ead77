package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pable/go-footy-stats/internal/model"
)

func TestPrintMatchResultAlignsScorers(t *testing.T) {
	r := model.Resolved{
		Match: model.Match{
			SeasonName: "2010/2011",
			HomeTeam:   model.Team{Name: "Rovers", Country: "England"},
			AwayTeam:   model.Team{Name: "Wanderers", Country: "Spain"},
			HomeScore:  1, AwayScore: 1,
		},
		Result: model.Shootout,
		Goals: []model.Goal{
			{Period: 1, Minute: 11, TeamName: "Rovers", Nickname: "Artie"},
			{Period: 2, Minute: 66, TeamName: "Wanderers", Nickname: "Bru"},
		},
		HomePenalties: 4,
		AwayPenalties: 2,
	}

	var buf bytes.Buffer
	PrintMatchResult(&buf, r)
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d:\n%s", len(lines), buf.String())
	}

	overview := lines[0]
	homePos := strings.Index(overview, "Rovers")
	awayPos := strings.Index(overview, "Wanderers")

	// Goal lines sit under the scoring side and report the ongoing minute.
	if got := strings.Index(lines[1], "12' Artie"); got != homePos {
		t.Errorf("home goal at column %d, want %d", got, homePos)
	}
	if got := strings.Index(lines[2], "67' Bru"); got != awayPos {
		t.Errorf("away goal at column %d, want %d", got, awayPos)
	}
	if got := strings.Index(lines[3], "* Penalties 4-2"); got != homePos {
		t.Errorf("penalty line at column %d, want %d", got, homePos)
	}
}

func TestPrintMatchResultNoPenaltyLineAtFullTime(t *testing.T) {
	r := model.Resolved{
		Match: model.Match{
			SeasonName: "2012/2013",
			HomeTeam:   model.Team{Name: "Rovers", Country: "England"},
			AwayTeam:   model.Team{Name: "Wanderers", Country: "Spain"},
			HomeScore:  2, AwayScore: 0,
		},
		Result: model.FullTime,
	}

	var buf bytes.Buffer
	PrintMatchResult(&buf, r)
	if strings.Contains(buf.String(), "Penalties") {
		t.Errorf("unexpected penalty line:\n%s", buf.String())
	}
}

func TestPrintTopScorersAnnouncesRequestedSize(t *testing.T) {
	rows := []model.ScorerCount{
		{Nickname: "Artie", Goals: 3},
		{Nickname: "Bru", Goals: 1},
	}

	var buf bytes.Buffer
	PrintTopScorers(&buf, rows, 10)
	// The header reflects the requested window, not the row count.
	if !strings.Contains(buf.String(), "Top 10 goal scorers") {
		t.Errorf("missing requested-size header:\n%s", buf.String())
	}
}

func TestPrintMatchesBySeasonGroups(t *testing.T) {
	matches := []model.Match{
		{SeasonName: "2011/2012", HomeTeam: model.Team{Name: "A"}, AwayTeam: model.Team{Name: "B"}},
		{SeasonName: "2010/2011", HomeTeam: model.Team{Name: "C"}, AwayTeam: model.Team{Name: "D"}, HomeScore: 3},
	}

	var buf bytes.Buffer
	PrintMatchesBySeason(&buf, "Champions League", matches)
	out := buf.String()

	if !strings.Contains(out, "Seasons: 2") || !strings.Contains(out, "Matches: 2") {
		t.Errorf("missing counts:\n%s", out)
	}
	// Seasons print in ascending order.
	if strings.Index(out, "2010/2011") > strings.Index(out, "2011/2012") {
		t.Errorf("seasons out of order:\n%s", out)
	}
	if !strings.Contains(out, "C-D 3-0") {
		t.Errorf("missing match line:\n%s", out)
	}
}
