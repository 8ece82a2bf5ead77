package storage

import (
	"fmt"

	"github.com/pable/go-footy-stats/internal/model"
)

// InsertCompetitions bulk-inserts the competition index in a transaction.
// Uses INSERT OR REPLACE so re-exporting is idempotent.
func (db *DB) InsertCompetitions(comps []model.Competition) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT OR REPLACE INTO competitions(competition_id, season_id, name, gender, season_name)
		VALUES (?,?,?,?,?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, c := range comps {
		if _, err := stmt.Exec(c.CompetitionID, c.SeasonID, c.Name, c.Gender, c.SeasonName); err != nil {
			return fmt.Errorf("insert competition %s %s: %w", c.Name, c.SeasonName, err)
		}
	}
	return tx.Commit()
}

// InsertMatches bulk-inserts match records in a transaction.
func (db *DB) InsertMatches(matches []model.Match) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT OR REPLACE INTO matches(
			match_id, competition, season_name,
			home_team, home_country, away_team, away_country,
			home_score, away_score
		) VALUES (?,?,?,?,?,?,?,?,?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, m := range matches {
		_, err := stmt.Exec(
			m.ID, m.Competition, m.SeasonName,
			m.HomeTeam.Name, m.HomeTeam.Country,
			m.AwayTeam.Name, m.AwayTeam.Country,
			m.HomeScore, m.AwayScore,
		)
		if err != nil {
			return fmt.Errorf("insert match %d: %w", m.ID, err)
		}
	}
	return tx.Commit()
}

// CountMatches returns the number of stored match rows.
func (db *DB) CountMatches() (int, error) {
	var n int
	err := db.conn.QueryRow("SELECT COUNT(1) FROM matches").Scan(&n)
	return n, err
}

// QueryRaw runs an arbitrary query and returns column names plus stringified rows.
func (db *DB) QueryRaw(query string) ([]string, [][]string, error) {
	rows, err := db.conn.Query(query)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, nil, err
	}

	var out [][]string
	for rows.Next() {
		raw := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range raw {
			ptrs[i] = &raw[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, nil, err
		}
		row := make([]string, len(cols))
		for i, v := range raw {
			switch t := v.(type) {
			case nil:
				row[i] = "NULL"
			case []byte:
				row[i] = string(t)
			default:
				row[i] = fmt.Sprintf("%v", t)
			}
		}
		out = append(out, row)
	}
	return cols, out, rows.Err()
}
