package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

const (
	tableSports          = "sports"
	tableTeams           = "teams"
	tableTeamPlayers     = "team_players"
	tableTournaments     = "tournaments"
	tableTournamentTeams = "tournament_teams"
	tableMatches         = "matches"
	tableDiscipline      = "disciplinary_actions"
)

func isNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

func nullTime(t time.Time) sql.NullTime {
	if t.IsZero() {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: t, Valid: true}
}

func timeFromNull(v sql.NullTime) time.Time {
	if !v.Valid {
		return time.Time{}
	}
	return v.Time.UTC()
}

func nullInt(v *int) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*v), Valid: true}
}

func intFromNull(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	out := int(v.Int64)
	return &out
}

// expectAffected turns a zero-row write into a not found error.
func expectAffected(res sql.Result, entity string, id int64) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("read affected rows for %s %d: %w", entity, id, err)
	}
	if affected == 0 {
		return fmt.Errorf("%s %d not found", entity, id)
	}
	return nil
}

func rowsAffected(res sql.Result, action string) (int, error) {
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("read affected rows for %s: %w", action, err)
	}
	return int(affected), nil
}

func execBuilt(ctx context.Context, ext sqlx.ExtContext, query string, args []any, buildErr error, action string) (sql.Result, error) {
	if buildErr != nil {
		return nil, fmt.Errorf("build %s query: %w", action, buildErr)
	}
	res, err := ext.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", action, err)
	}
	return res, nil
}
