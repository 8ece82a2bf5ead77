package analysis

import (
	"fmt"

	"github.com/pable/go-footy-stats/internal/model"
)

// PlayerNotInLineupError reports a scoring event whose player id has no entry
// in the resolved team's lineup. This is a data-integrity condition: the
// affected match must be dropped whole, never just the scorer, or the
// top-scorer aggregate would silently undercount.
type PlayerNotInLineupError struct {
	MatchID  int
	PlayerID int
	TeamName string
}

func (e *PlayerNotInLineupError) Error() string {
	return fmt.Sprintf("match %d: player %d not in lineup of %q", e.MatchID, e.PlayerID, e.TeamName)
}

// Resolve derives the outcome facts for one match from its complete event
// sequence. The match record itself is never modified; all derived fields
// live on the returned Resolved value. Goal nicknames are left empty for
// ResolveNicknames to fill.
func Resolve(m model.Match, events []model.Event) (model.Resolved, error) {
	result, err := ClassifyResult(events)
	if err != nil {
		return model.Resolved{}, fmt.Errorf("match %d: %w", m.ID, err)
	}

	r := model.Resolved{Match: m, Result: result}

	for _, e := range events {
		if !IsScoringShot(e) {
			continue
		}
		if e.Period <= model.LastExtraTimePeriod {
			r.Goals = append(r.Goals, model.Goal{
				Period:   e.Period,
				Minute:   e.Minute,
				TeamName: e.TeamName,
				Player:   e.Player,
			})
			continue
		}
		// Shootout kicks partition by team name; anything not matching the
		// home side counts for the away side, as in the source data there
		// are exactly two teams on the pitch.
		if e.TeamName == m.HomeTeam.Name {
			r.HomePenalties++
		} else {
			r.AwayPenalties++
		}
	}

	r.Winner = resolveWinner(m, r.HomePenalties, r.AwayPenalties)
	return r, nil
}

// resolveWinner picks the winning side: regulation score first, penalty
// tallies second, draw last. The draw value is only reachable when penalty
// counts are absent or exactly equal.
func resolveWinner(m model.Match, homePens, awayPens int) model.Winner {
	switch {
	case m.HomeScore > m.AwayScore:
		return model.Winner{Team: m.HomeTeam}
	case m.HomeScore < m.AwayScore:
		return model.Winner{Team: m.AwayTeam}
	case homePens > awayPens:
		return model.Winner{Team: m.HomeTeam}
	case homePens < awayPens:
		return model.Winner{Team: m.AwayTeam}
	default:
		return model.Winner{Draw: true}
	}
}

// ResolveNicknames attaches each scorer's preferred display name to the
// match's goals: the lineup nickname when present, the full name otherwise.
// Resolving the same goals twice yields the same names. Returns a
// PlayerNotInLineupError when a scorer cannot be matched.
func ResolveNicknames(matchID int, lineups []model.TeamLineup, goals []model.Goal) error {
	byTeam := make(map[string]map[int]model.LineupEntry, len(lineups))
	for _, l := range lineups {
		players := make(map[int]model.LineupEntry, len(l.Players))
		for _, p := range l.Players {
			players[p.PlayerID] = p
		}
		byTeam[l.TeamName] = players
	}

	for i, g := range goals {
		entry, ok := byTeam[g.TeamName][g.Player.ID]
		if !ok {
			return &PlayerNotInLineupError{MatchID: matchID, PlayerID: g.Player.ID, TeamName: g.TeamName}
		}
		if entry.Nickname != "" {
			goals[i].Nickname = entry.Nickname
		} else {
			goals[i].Nickname = entry.Name
		}
	}
	return nil
}
