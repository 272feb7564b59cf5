package postgres

import (
	"context"
	"fmt"
	"slices"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/school-tournament/internal/domain/match"
	qb "github.com/riskibarqy/school-tournament/internal/platform/querybuilder"
)

var matchColumns = []string{
	"id", "tournament_id", "team1_id", "team2_id", "match_date", "kickoff_time",
	"location", "round", "status", "score1", "score2", "created_at",
}

type MatchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

func (r *MatchRepository) List(ctx context.Context) ([]match.Match, error) {
	return r.list(ctx)
}

func (r *MatchRepository) ListByTournament(ctx context.Context, tournamentID int64) ([]match.Match, error) {
	return r.list(ctx, qb.Eq("tournament_id", tournamentID))
}

func (r *MatchRepository) list(ctx context.Context, conditions ...qb.Condition) ([]match.Match, error) {
	query, args, err := qb.Select(matchColumns...).From(tableMatches).Where(conditions...).OrderBy("id").ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select matches query: %w", err)
	}

	var rows []matchTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select matches: %w", err)
	}

	out := make([]match.Match, 0, len(rows))
	for _, row := range rows {
		out = append(out, matchFromRow(row))
	}
	return out, nil
}

func (r *MatchRepository) GetByID(ctx context.Context, matchID int64) (match.Match, bool, error) {
	query, args, err := qb.Select(matchColumns...).From(tableMatches).Where(qb.Eq("id", matchID)).Limit(1).ToSQL()
	if err != nil {
		return match.Match{}, false, fmt.Errorf("build select match by id query: %w", err)
	}

	var row matchTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return match.Match{}, false, nil
		}
		return match.Match{}, false, fmt.Errorf("select match by id: %w", err)
	}
	return matchFromRow(row), true, nil
}

func (r *MatchRepository) Create(ctx context.Context, item match.Match) (match.Match, error) {
	query, args, err := qb.InsertModel(tableMatches, matchToRow(item), "id").Returning("id").ToSQL()
	if err != nil {
		return match.Match{}, fmt.Errorf("build insert match query: %w", err)
	}
	if err := r.db.QueryRowxContext(ctx, query, args...).Scan(&item.ID); err != nil {
		return match.Match{}, fmt.Errorf("insert match: %w", err)
	}
	return item, nil
}

// AppendBatch inserts all items in one statement.
func (r *MatchRepository) AppendBatch(ctx context.Context, items []match.Match) ([]match.Match, error) {
	if len(items) == 0 {
		return []match.Match{}, nil
	}

	builder := qb.InsertInto(tableMatches).Columns(matchColumns[1:]...)
	for _, item := range items {
		row := matchToRow(item)
		builder.Values(row.TournamentID, row.Team1ID, row.Team2ID, row.MatchDate, row.KickoffTime,
			row.Location, row.Round, row.Status, row.Score1, row.Score2, row.CreatedAt)
	}
	query, args, err := builder.Returning("id").ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build insert matches query: %w", err)
	}

	var ids []int64
	if err := r.db.SelectContext(ctx, &ids, query, args...); err != nil {
		return nil, fmt.Errorf("insert matches: %w", err)
	}
	return assignBatchIDs(items, ids)
}

// assignBatchIDs pairs generated ids with the inserted rows. RETURNING order
// is unspecified, but the ids come from one sequence during one statement, so
// ascending id order is VALUES order.
func assignBatchIDs(items []match.Match, ids []int64) ([]match.Match, error) {
	if len(ids) != len(items) {
		return nil, fmt.Errorf("insert matches: expected %d ids, got %d", len(items), len(ids))
	}

	sorted := slices.Clone(ids)
	slices.Sort(sorted)
	out := make([]match.Match, 0, len(items))
	for idx, item := range items {
		item.ID = sorted[idx]
		out = append(out, item)
	}
	return out, nil
}

func (r *MatchRepository) Update(ctx context.Context, item match.Match) error {
	query, args, err := qb.Update(tableMatches).
		SetModel(matchToRow(item), "id", "created_at").
		Set("updated_at", qb.Raw("NOW()")).
		Where(qb.Eq("id", item.ID)).
		ToSQL()
	res, err := execBuilt(ctx, r.db, query, args, err, "update match")
	if err != nil {
		return err
	}
	return expectAffected(res, "match", item.ID)
}

func (r *MatchRepository) Delete(ctx context.Context, matchID int64) error {
	query, args, err := qb.DeleteFrom(tableMatches).Where(qb.Eq("id", matchID)).ToSQL()
	res, err := execBuilt(ctx, r.db, query, args, err, "delete match")
	if err != nil {
		return err
	}
	return expectAffected(res, "match", matchID)
}

func (r *MatchRepository) DeleteByTournament(ctx context.Context, tournamentID int64) (int, error) {
	query, args, err := qb.DeleteFrom(tableMatches).Where(qb.Eq("tournament_id", tournamentID)).ToSQL()
	res, err := execBuilt(ctx, r.db, query, args, err, "delete tournament matches")
	if err != nil {
		return 0, err
	}
	return rowsAffected(res, "delete tournament matches")
}

func matchToRow(item match.Match) matchTableModel {
	return matchTableModel{
		ID:           item.ID,
		TournamentID: item.TournamentID,
		Team1ID:      item.Team1ID,
		Team2ID:      item.Team2ID,
		MatchDate:    item.Date,
		KickoffTime:  item.Time,
		Location:     item.Location,
		Round:        item.Round,
		Status:       string(item.Status),
		Score1:       nullInt(item.Score1),
		Score2:       nullInt(item.Score2),
		CreatedAt:    item.CreatedAt,
	}
}

func matchFromRow(row matchTableModel) match.Match {
	return match.Match{
		ID:           row.ID,
		TournamentID: row.TournamentID,
		Team1ID:      row.Team1ID,
		Team2ID:      row.Team2ID,
		Date:         row.MatchDate.UTC(),
		Time:         row.KickoffTime,
		Location:     row.Location,
		Round:        row.Round,
		Status:       match.Status(row.Status),
		Score1:       intFromNull(row.Score1),
		Score2:       intFromNull(row.Score2),
		CreatedAt:    row.CreatedAt.UTC(),
	}
}
