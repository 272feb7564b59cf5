package postgres

import "time"

type teamTableModel struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	Grade     string    `db:"grade"`
	SportID   int64     `db:"sport_id"`
	Captain   string    `db:"captain"`
	Coach     string    `db:"coach"`
	CreatedAt time.Time `db:"created_at"`
}

type teamPlayerTableModel struct {
	TeamID    int64  `db:"team_id"`
	ID        int64  `db:"id"`
	Name      string `db:"name"`
	Position  string `db:"position"`
	Number    string `db:"number"`
	SortOrder int    `db:"sort_order"`
}
