package postgres

import (
	"database/sql"
	"time"
)

type matchTableModel struct {
	ID           int64         `db:"id"`
	TournamentID int64         `db:"tournament_id"`
	Team1ID      int64         `db:"team1_id"`
	Team2ID      int64         `db:"team2_id"`
	MatchDate    time.Time     `db:"match_date"`
	KickoffTime  string        `db:"kickoff_time"`
	Location     string        `db:"location"`
	Round        string        `db:"round"`
	Status       string        `db:"status"`
	Score1       sql.NullInt64 `db:"score1"`
	Score2       sql.NullInt64 `db:"score2"`
	CreatedAt    time.Time     `db:"created_at"`
}
