package loader

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/pable/go-footy-stats/internal/model"
)

const competitionsJSON = `[
  {"competition_id": 16, "season_id": 4, "competition_name": "Champions League",
   "competition_gender": "male", "season_name": "2018/2019"},
  {"competition_id": 16, "season_id": 1, "competition_name": "Champions League",
   "competition_gender": "male", "season_name": "2017/2018"}
]`

const matchesJSON = `[
  {"match_id": 303,
   "competition": {"competition_id": 16, "competition_name": "Champions League"},
   "season": {"season_id": 4, "season_name": "2018/2019"},
   "home_team": {"home_team_name": "Rovers", "country": {"name": "England"}},
   "away_team": {"away_team_name": "Wanderers", "country": {"name": "Spain"}},
   "home_score": 2, "away_score": 0}
]`

const eventsJSON = `[
  {"period": 1, "minute": 0, "type": {"name": "Half Start"}, "team": {"name": "Rovers"}},
  {"period": 1, "minute": 11, "type": {"name": "Shot"}, "team": {"name": "Rovers"},
   "player": {"id": 7, "name": "Arthur Crane"},
   "shot": {"outcome": {"name": "Goal"}}},
  {"period": 2, "minute": 88, "type": {"name": "Shot"}, "team": {"name": "Wanderers"},
   "player": {"id": 11, "name": "Bruno Vidal"},
   "shot": {"outcome": {"name": "Saved"}}}
]`

const lineupsJSON = `[
  {"team_name": "Rovers", "lineup": [
    {"player_id": 7, "player_name": "Arthur Crane", "player_nickname": "Artie"},
    {"player_id": 8, "player_name": "Casper Crane", "player_nickname": null}
  ]},
  {"team_name": "Wanderers", "lineup": [
    {"player_id": 11, "player_name": "Bruno Vidal", "player_nickname": "Bru"}
  ]}
]`

// fixtureStore writes a minimal open-data layout into a temp directory.
func fixtureStore(t *testing.T) *Store {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"competitions.json": competitionsJSON,
		"matches/16/4.json": matchesJSON,
		"events/303.json":   eventsJSON,
		"lineups/303.json":  lineupsJSON,
	}
	for name, body := range files {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	return NewStore(dir)
}

func TestCompetitions(t *testing.T) {
	store := fixtureStore(t)
	comps, err := store.Competitions()
	if err != nil {
		t.Fatalf("Competitions: %v", err)
	}
	if len(comps) != 2 {
		t.Fatalf("expected 2 competitions, got %d", len(comps))
	}
	want := model.Competition{
		CompetitionID: 16, SeasonID: 4, Name: "Champions League",
		Gender: "male", SeasonName: "2018/2019",
	}
	if comps[0] != want {
		t.Errorf("unexpected competition: %+v", comps[0])
	}
}

func TestMatchesFlattensTeamNames(t *testing.T) {
	store := fixtureStore(t)
	matches, err := store.Matches()
	if err != nil {
		t.Fatalf("Matches: %v", err)
	}
	if len(matches) != 1 {
		t.Fatalf("expected 1 match, got %d", len(matches))
	}
	m := matches[0]
	if m.ID != 303 {
		t.Errorf("unexpected match id: %d", m.ID)
	}
	// The match record nests these under competition_name / season_name.
	if m.Competition != "Champions League" {
		t.Errorf("Competition = %q, want %q", m.Competition, "Champions League")
	}
	if m.SeasonName != "2018/2019" {
		t.Errorf("SeasonName = %q, want %q", m.SeasonName, "2018/2019")
	}
	if m.HomeTeam != (model.Team{Name: "Rovers", Country: "England"}) {
		t.Errorf("unexpected home team: %+v", m.HomeTeam)
	}
	if m.AwayTeam != (model.Team{Name: "Wanderers", Country: "Spain"}) {
		t.Errorf("unexpected away team: %+v", m.AwayTeam)
	}
}

func TestEvents(t *testing.T) {
	store := fixtureStore(t)
	events, err := store.Events(303)
	if err != nil {
		t.Fatalf("Events: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("expected 3 events, got %d", len(events))
	}
	goal := events[1]
	if goal.Type != "Shot" || goal.ShotOutcome != "Goal" {
		t.Errorf("unexpected shot event: %+v", goal)
	}
	if goal.Player != (model.Player{ID: 7, Name: "Arthur Crane"}) {
		t.Errorf("unexpected player: %+v", goal.Player)
	}
	// Events without player or shot blocks decode to zero values.
	if events[0].Player != (model.Player{}) || events[0].ShotOutcome != "" {
		t.Errorf("expected empty player and outcome: %+v", events[0])
	}
}

func TestEventsUnknownMatch(t *testing.T) {
	store := fixtureStore(t)
	_, err := store.Events(999)
	var unknown *UnknownMatchError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected UnknownMatchError, got %v", err)
	}
	if unknown.MatchID != 999 || unknown.Kind != "events" {
		t.Errorf("unexpected error fields: %+v", unknown)
	}
}

func TestLineups(t *testing.T) {
	store := fixtureStore(t)
	lineups, err := store.Lineups(303)
	if err != nil {
		t.Fatalf("Lineups: %v", err)
	}
	if len(lineups) != 2 {
		t.Fatalf("expected 2 lineups, got %d", len(lineups))
	}
	rovers := lineups[0]
	if rovers.TeamName != "Rovers" || len(rovers.Players) != 2 {
		t.Fatalf("unexpected lineup: %+v", rovers)
	}
	if rovers.Players[0].Nickname != "Artie" {
		t.Errorf("expected nickname Artie, got %q", rovers.Players[0].Nickname)
	}
	// Null nickname on the wire means no nickname.
	if rovers.Players[1].Nickname != "" {
		t.Errorf("expected empty nickname, got %q", rovers.Players[1].Nickname)
	}
}

func TestLineupsUnknownMatch(t *testing.T) {
	store := fixtureStore(t)
	_, err := store.Lineups(999)
	var unknown *UnknownMatchError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected UnknownMatchError, got %v", err)
	}
	if unknown.Kind != "lineups" {
		t.Errorf("unexpected kind %q", unknown.Kind)
	}
}

func TestCount(t *testing.T) {
	store := fixtureStore(t)
	sum, err := store.Count()
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	want := Summary{Competitions: 2, Matches: 1, Events: 3, Lineups: 2}
	if sum != want {
		t.Errorf("expected %+v, got %+v", want, sum)
	}
}
