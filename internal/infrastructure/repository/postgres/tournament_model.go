package postgres

import (
	"database/sql"
	"time"
)

type tournamentTableModel struct {
	ID          int64        `db:"id"`
	Name        string       `db:"name"`
	SportID     int64        `db:"sport_id"`
	Description string       `db:"description"`
	StartDate   time.Time    `db:"start_date"`
	EndDate     sql.NullTime `db:"end_date"`
	MaxTeams    int          `db:"max_teams"`
	Status      string       `db:"status"`
	CreatedAt   time.Time    `db:"created_at"`
}

type tournamentTeamTableModel struct {
	TournamentID int64 `db:"tournament_id"`
	TeamID       int64 `db:"team_id"`
	SortOrder    int   `db:"sort_order"`
}
