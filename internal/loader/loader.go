// Package loader reads StatsBomb-style open data from a local directory:
//
//	<dir>/competitions.json
//	<dir>/matches/<competition_id>/<season_id>.json
//	<dir>/events/<match_id>.json
//	<dir>/lineups/<match_id>.json
//
// The wire field names of the source (home_team_name / away_team_name and
// friends) are flattened onto the uniform model types here, so nothing
// downstream ever sees the raw shapes.
package loader

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pable/go-footy-stats/internal/model"
)

// UnknownMatchError reports that the store has no events or lineups file for
// a referenced match id.
type UnknownMatchError struct {
	MatchID int
	Kind    string // "events" or "lineups"
	Err     error
}

func (e *UnknownMatchError) Error() string {
	return fmt.Sprintf("no %s for match %d", e.Kind, e.MatchID)
}

func (e *UnknownMatchError) Unwrap() error { return e.Err }

// Store reads record collections from a data directory.
type Store struct {
	dir string
}

// NewStore returns a Store rooted at dir. The directory is not touched until
// a load method is called.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the root of the data directory.
func (s *Store) Dir() string { return s.dir }

// ---- wire shapes ----

type nameJSON struct {
	Name string `json:"name"`
}

type competitionJSON struct {
	CompetitionID int    `json:"competition_id"`
	SeasonID      int    `json:"season_id"`
	Name          string `json:"competition_name"`
	Gender        string `json:"competition_gender"`
	SeasonName    string `json:"season_name"`
}

type matchJSON struct {
	MatchID     int `json:"match_id"`
	Competition struct {
		Name string `json:"competition_name"`
	} `json:"competition"`
	Season struct {
		Name string `json:"season_name"`
	} `json:"season"`
	HomeTeam struct {
		Name    string   `json:"home_team_name"`
		Country nameJSON `json:"country"`
	} `json:"home_team"`
	AwayTeam struct {
		Name    string   `json:"away_team_name"`
		Country nameJSON `json:"country"`
	} `json:"away_team"`
	HomeScore int `json:"home_score"`
	AwayScore int `json:"away_score"`
}

// Competitions and seasons name the competition under different keys on the
// match record; the competition file uses competition_name directly.
func (m matchJSON) toModel() model.Match {
	return model.Match{
		ID:          m.MatchID,
		Competition: m.Competition.Name,
		SeasonName:  m.Season.Name,
		HomeTeam:    model.Team{Name: m.HomeTeam.Name, Country: m.HomeTeam.Country.Name},
		AwayTeam:    model.Team{Name: m.AwayTeam.Name, Country: m.AwayTeam.Country.Name},
		HomeScore:   m.HomeScore,
		AwayScore:   m.AwayScore,
	}
}

type eventJSON struct {
	Period int      `json:"period"`
	Minute int      `json:"minute"`
	Type   nameJSON `json:"type"`
	Team   nameJSON `json:"team"`
	Player *struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	} `json:"player"`
	Shot *struct {
		Outcome nameJSON `json:"outcome"`
	} `json:"shot"`
}

func (e eventJSON) toModel() model.Event {
	out := model.Event{
		Period:   e.Period,
		Minute:   e.Minute,
		Type:     e.Type.Name,
		TeamName: e.Team.Name,
	}
	if e.Player != nil {
		out.Player = model.Player{ID: e.Player.ID, Name: e.Player.Name}
	}
	if e.Shot != nil {
		out.ShotOutcome = e.Shot.Outcome.Name
	}
	return out
}

type lineupJSON struct {
	TeamName string `json:"team_name"`
	Lineup   []struct {
		PlayerID int     `json:"player_id"`
		Name     string  `json:"player_name"`
		Nickname *string `json:"player_nickname"`
	} `json:"lineup"`
}

// ---- loading ----

// Competitions loads the full competition index.
func (s *Store) Competitions() ([]model.Competition, error) {
	path := filepath.Join(s.dir, "competitions.json")
	var raw []competitionJSON
	if err := decodeFile(path, &raw); err != nil {
		return nil, fmt.Errorf("load competitions: %w", err)
	}
	out := make([]model.Competition, 0, len(raw))
	for _, c := range raw {
		out = append(out, model.Competition(c))
	}
	return out, nil
}

// Matches walks the nested matches directory and loads every match record in
// every file found, mirroring the flat-or-nested layout of the source store.
func (s *Store) Matches() ([]model.Match, error) {
	root := filepath.Join(s.dir, "matches")
	var out []model.Match
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".json") {
			return nil
		}
		var raw []matchJSON
		if err := decodeFile(path, &raw); err != nil {
			return err
		}
		for _, m := range raw {
			out = append(out, m.toModel())
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("load matches: %w", err)
	}
	return out, nil
}

// Events loads the event sequence for one match. A missing file means the
// match id is unknown to the store.
func (s *Store) Events(matchID int) ([]model.Event, error) {
	path := filepath.Join(s.dir, "events", fmt.Sprintf("%d.json", matchID))
	var raw []eventJSON
	if err := decodeFile(path, &raw); err != nil {
		if os.IsNotExist(err) {
			return nil, &UnknownMatchError{MatchID: matchID, Kind: "events", Err: err}
		}
		return nil, fmt.Errorf("load events for match %d: %w", matchID, err)
	}
	out := make([]model.Event, 0, len(raw))
	for _, e := range raw {
		out = append(out, e.toModel())
	}
	return out, nil
}

// Lineups loads both team lineups for one match.
func (s *Store) Lineups(matchID int) ([]model.TeamLineup, error) {
	path := filepath.Join(s.dir, "lineups", fmt.Sprintf("%d.json", matchID))
	var raw []lineupJSON
	if err := decodeFile(path, &raw); err != nil {
		if os.IsNotExist(err) {
			return nil, &UnknownMatchError{MatchID: matchID, Kind: "lineups", Err: err}
		}
		return nil, fmt.Errorf("load lineups for match %d: %w", matchID, err)
	}
	out := make([]model.TeamLineup, 0, len(raw))
	for _, l := range raw {
		tl := model.TeamLineup{TeamName: l.TeamName}
		for _, p := range l.Lineup {
			entry := model.LineupEntry{PlayerID: p.PlayerID, Name: p.Name}
			if p.Nickname != nil {
				entry.Nickname = *p.Nickname
			}
			tl.Players = append(tl.Players, entry)
		}
		out = append(out, tl)
	}
	return out, nil
}

// Summary holds record counts across the whole data directory.
type Summary struct {
	Competitions int
	Matches      int
	Events       int
	Lineups      int
}

// Count walks the entire store and counts records of each kind. Events and
// lineups are counted by streaming the top-level JSON arrays, so the full
// record bodies are never kept in memory.
func (s *Store) Count() (Summary, error) {
	var sum Summary

	comps, err := s.Competitions()
	if err != nil {
		return sum, err
	}
	sum.Competitions = len(comps)

	matches, err := s.Matches()
	if err != nil {
		return sum, err
	}
	sum.Matches = len(matches)

	sum.Events, err = s.countDir("events")
	if err != nil {
		return sum, err
	}
	sum.Lineups, err = s.countDir("lineups")
	if err != nil {
		return sum, err
	}
	return sum, nil
}

func (s *Store) countDir(name string) (int, error) {
	root := filepath.Join(s.dir, name)
	total := 0
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".json") {
			return nil
		}
		n, err := countArrayItems(path)
		if err != nil {
			return err
		}
		total += n
		return nil
	})
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("count %s: %w", name, err)
	}
	return total, nil
}

// countArrayItems counts the elements of the top-level JSON array in a file
// without decoding them.
func countArrayItems(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	dec := json.NewDecoder(f)
	if _, err := dec.Token(); err != nil { // opening '['
		return 0, fmt.Errorf("%s: %w", path, err)
	}
	n := 0
	for dec.More() {
		var skip json.RawMessage
		if err := dec.Decode(&skip); err != nil {
			return 0, fmt.Errorf("%s: %w", path, err)
		}
		n++
	}
	return n, nil
}

func decodeFile(path string, v any) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := json.NewDecoder(f).Decode(v); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}
