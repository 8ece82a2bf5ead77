package analysis

import (
	"errors"
	"testing"

	"github.com/pable/go-footy-stats/internal/model"
)

var (
	teamHome = model.Team{Name: "Rovers", Country: "England"}
	teamAway = model.Team{Name: "Wanderers", Country: "Spain"}
)

// makeMatch builds a minimal match between the two fixture teams.
func makeMatch(id, homeScore, awayScore int) model.Match {
	return model.Match{
		ID:          id,
		Competition: "Champions League",
		SeasonName:  "2010/2011",
		HomeTeam:    teamHome,
		AwayTeam:    teamAway,
		HomeScore:   homeScore,
		AwayScore:   awayScore,
	}
}

// goalEvent builds a scoring shot for the given team in the given period.
func goalEvent(period, minute int, team string, playerID int, playerName string) model.Event {
	return model.Event{
		Period:      period,
		Minute:      minute,
		Type:        "Shot",
		TeamName:    team,
		Player:      model.Player{ID: playerID, Name: playerName},
		ShotOutcome: "Goal",
	}
}

// TestResolve_FullTimeHomeWin: spec scenario A — home 3-1, terminal period 2.
func TestResolve_FullTimeHomeWin(t *testing.T) {
	m := makeMatch(1, 3, 1)
	events := []model.Event{
		goalEvent(1, 10, teamHome.Name, 11, "Alder"),
		goalEvent(1, 30, teamAway.Name, 21, "Beech"),
		goalEvent(2, 50, teamHome.Name, 11, "Alder"),
		goalEvent(2, 80, teamHome.Name, 12, "Crane"),
		{Period: 2, Type: "Half End"},
	}

	r, err := Resolve(m, events)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Result != model.FullTime {
		t.Errorf("Result: want FullTime, got %v", r.Result)
	}
	if len(r.Goals) != 4 {
		t.Errorf("Goals: want 4, got %d", len(r.Goals))
	}
	if r.HomePenalties != 0 || r.AwayPenalties != 0 {
		t.Errorf("penalties: want 0-0, got %d-%d", r.HomePenalties, r.AwayPenalties)
	}
	if r.Winner.Draw || r.Winner.Team != teamHome {
		t.Errorf("Winner: want %v, got %+v", teamHome, r.Winner)
	}
}

// TestResolve_ShootoutHomeWin: spec scenario B — 1-1 after extra time, home
// converts one more shootout kick than away.
func TestResolve_ShootoutHomeWin(t *testing.T) {
	m := makeMatch(2, 1, 1)
	events := []model.Event{
		goalEvent(1, 20, teamHome.Name, 11, "Alder"),
		goalEvent(2, 70, teamAway.Name, 21, "Beech"),
		{Period: 4, Type: "Half End"},
		goalEvent(5, 120, teamHome.Name, 11, "Alder"),
		goalEvent(5, 120, teamAway.Name, 21, "Beech"),
		goalEvent(5, 121, teamHome.Name, 12, "Crane"),
	}

	r, err := Resolve(m, events)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Result != model.Shootout {
		t.Errorf("Result: want Shootout, got %v", r.Result)
	}
	// Shootout kicks never appear in the goal list.
	if len(r.Goals) != 2 {
		t.Errorf("Goals: want 2, got %d", len(r.Goals))
	}
	if r.HomePenalties != 2 || r.AwayPenalties != 1 {
		t.Errorf("penalties: want 2-1, got %d-%d", r.HomePenalties, r.AwayPenalties)
	}
	if r.Winner.Draw || r.Winner.Team != teamHome {
		t.Errorf("Winner: want %v, got %+v", teamHome, r.Winner)
	}
}

// TestResolve_ScoreBeatsEvents: an unequal stored score decides the winner
// regardless of what the event sequence contains.
func TestResolve_ScoreBeatsEvents(t *testing.T) {
	m := makeMatch(3, 0, 2)
	// Events only show a home goal; the stored score still wins.
	events := []model.Event{
		goalEvent(1, 5, teamHome.Name, 11, "Alder"),
		{Period: 2, Type: "Half End"},
	}

	r, err := Resolve(m, events)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Winner.Draw || r.Winner.Team != teamAway {
		t.Errorf("Winner: want %v, got %+v", teamAway, r.Winner)
	}
}

// TestResolve_EqualPenaltiesIsDraw: level score and level shootout tallies
// resolve to the draw marker.
func TestResolve_EqualPenaltiesIsDraw(t *testing.T) {
	m := makeMatch(4, 2, 2)
	events := []model.Event{
		goalEvent(5, 120, teamHome.Name, 11, "Alder"),
		goalEvent(5, 120, teamAway.Name, 21, "Beech"),
	}

	r, err := Resolve(m, events)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !r.Winner.Draw {
		t.Errorf("expected draw, got winner %+v", r.Winner)
	}
	if r.Winner.Team != (model.Team{}) {
		t.Errorf("draw must carry no team, got %+v", r.Winner.Team)
	}
}

func TestResolve_EmptyEvents(t *testing.T) {
	_, err := Resolve(makeMatch(5, 1, 0), nil)
	if !errors.Is(err, ErrEmptyEventSequence) {
		t.Errorf("expected ErrEmptyEventSequence, got %v", err)
	}
}

// ---- nickname resolution ----

func fixtureLineups() []model.TeamLineup {
	return []model.TeamLineup{
		{
			TeamName: teamHome.Name,
			Players: []model.LineupEntry{
				{PlayerID: 11, Name: "Arthur Alder", Nickname: "Artie"},
				{PlayerID: 12, Name: "Casper Crane"}, // no nickname
			},
		},
		{
			TeamName: teamAway.Name,
			Players: []model.LineupEntry{
				{PlayerID: 21, Name: "Bruno Beech", Nickname: "Bru"},
			},
		},
	}
}

func TestResolveNicknames_PrefersNickname(t *testing.T) {
	goals := []model.Goal{
		{TeamName: teamHome.Name, Player: model.Player{ID: 11, Name: "Arthur Alder"}},
		{TeamName: teamHome.Name, Player: model.Player{ID: 12, Name: "Casper Crane"}},
		{TeamName: teamAway.Name, Player: model.Player{ID: 21, Name: "Bruno Beech"}},
	}
	if err := ResolveNicknames(1, fixtureLineups(), goals); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if goals[0].Nickname != "Artie" {
		t.Errorf("goal 0: want nickname %q, got %q", "Artie", goals[0].Nickname)
	}
	if goals[1].Nickname != "Casper Crane" {
		t.Errorf("goal 1: want full-name fallback %q, got %q", "Casper Crane", goals[1].Nickname)
	}
	if goals[2].Nickname != "Bru" {
		t.Errorf("goal 2: want nickname %q, got %q", "Bru", goals[2].Nickname)
	}
}

// TestResolveNicknames_Idempotent: resolving twice yields identical names.
func TestResolveNicknames_Idempotent(t *testing.T) {
	goals := []model.Goal{
		{TeamName: teamHome.Name, Player: model.Player{ID: 11, Name: "Arthur Alder"}},
		{TeamName: teamAway.Name, Player: model.Player{ID: 21, Name: "Bruno Beech"}},
	}
	lineups := fixtureLineups()
	if err := ResolveNicknames(1, lineups, goals); err != nil {
		t.Fatalf("first pass: %v", err)
	}
	first := make([]string, len(goals))
	for i, g := range goals {
		first[i] = g.Nickname
	}
	if err := ResolveNicknames(1, lineups, goals); err != nil {
		t.Fatalf("second pass: %v", err)
	}
	for i, g := range goals {
		if g.Nickname != first[i] {
			t.Errorf("goal %d: nickname changed between passes: %q -> %q", i, first[i], g.Nickname)
		}
	}
}

// TestResolveNicknames_PlayerMissing: a scorer absent from the lineup aborts
// resolution with a PlayerNotInLineupError.
func TestResolveNicknames_PlayerMissing(t *testing.T) {
	goals := []model.Goal{
		{TeamName: teamHome.Name, Player: model.Player{ID: 99, Name: "Ghost"}},
	}
	err := ResolveNicknames(7, fixtureLineups(), goals)
	var notFound *PlayerNotInLineupError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected PlayerNotInLineupError, got %v", err)
	}
	if notFound.MatchID != 7 || notFound.PlayerID != 99 || notFound.TeamName != teamHome.Name {
		t.Errorf("error fields: %+v", notFound)
	}
}
