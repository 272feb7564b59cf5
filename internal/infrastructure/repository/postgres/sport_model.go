package postgres

type sportTableModel struct {
	ID         int64  `db:"id"`
	Name       string `db:"name"`
	Icon       string `db:"icon"`
	MaxPlayers int    `db:"max_players"`
}
