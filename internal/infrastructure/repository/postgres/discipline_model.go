package postgres

import (
	"database/sql"
	"time"
)

type disciplinaryActionTableModel struct {
	ID           int64        `db:"id"`
	TournamentID int64        `db:"tournament_id"`
	TeamID       int64        `db:"team_id"`
	PlayerName   string       `db:"player_name"`
	ActionType   string       `db:"action_type"`
	Reason       string       `db:"reason"`
	MatchDate    sql.NullTime `db:"match_date"`
	Referee      string       `db:"referee"`
	CreatedAt    time.Time    `db:"created_at"`
}
