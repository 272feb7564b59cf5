package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/school-tournament/internal/domain/discipline"
	qb "github.com/riskibarqy/school-tournament/internal/platform/querybuilder"
)

var disciplineColumns = []string{
	"id", "tournament_id", "team_id", "player_name", "action_type",
	"reason", "match_date", "referee", "created_at",
}

type DisciplineRepository struct {
	db *sqlx.DB
}

func NewDisciplineRepository(db *sqlx.DB) *DisciplineRepository {
	return &DisciplineRepository{db: db}
}

func (r *DisciplineRepository) List(ctx context.Context) ([]discipline.Action, error) {
	return r.list(ctx)
}

func (r *DisciplineRepository) ListByTournament(ctx context.Context, tournamentID int64) ([]discipline.Action, error) {
	return r.list(ctx, qb.Eq("tournament_id", tournamentID))
}

func (r *DisciplineRepository) list(ctx context.Context, conditions ...qb.Condition) ([]discipline.Action, error) {
	query, args, err := qb.Select(disciplineColumns...).From(tableDiscipline).Where(conditions...).OrderBy("id").ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select disciplinary actions query: %w", err)
	}

	var rows []disciplinaryActionTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select disciplinary actions: %w", err)
	}

	out := make([]discipline.Action, 0, len(rows))
	for _, row := range rows {
		out = append(out, actionFromRow(row))
	}
	return out, nil
}

func (r *DisciplineRepository) GetByID(ctx context.Context, actionID int64) (discipline.Action, bool, error) {
	query, args, err := qb.Select(disciplineColumns...).From(tableDiscipline).Where(qb.Eq("id", actionID)).Limit(1).ToSQL()
	if err != nil {
		return discipline.Action{}, false, fmt.Errorf("build select disciplinary action by id query: %w", err)
	}

	var row disciplinaryActionTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return discipline.Action{}, false, nil
		}
		return discipline.Action{}, false, fmt.Errorf("select disciplinary action by id: %w", err)
	}
	return actionFromRow(row), true, nil
}

func (r *DisciplineRepository) Create(ctx context.Context, item discipline.Action) (discipline.Action, error) {
	row := disciplinaryActionTableModel{
		TournamentID: item.TournamentID,
		TeamID:       item.TeamID,
		PlayerName:   item.PlayerName,
		ActionType:   string(item.ActionType),
		Reason:       item.Reason,
		MatchDate:    nullTime(item.MatchDate),
		Referee:      item.Referee,
		CreatedAt:    item.CreatedAt,
	}
	query, args, err := qb.InsertModel(tableDiscipline, row, "id").Returning("id").ToSQL()
	if err != nil {
		return discipline.Action{}, fmt.Errorf("build insert disciplinary action query: %w", err)
	}
	if err := r.db.QueryRowxContext(ctx, query, args...).Scan(&item.ID); err != nil {
		return discipline.Action{}, fmt.Errorf("insert disciplinary action: %w", err)
	}
	return item, nil
}

func (r *DisciplineRepository) Delete(ctx context.Context, actionID int64) error {
	query, args, err := qb.DeleteFrom(tableDiscipline).Where(qb.Eq("id", actionID)).ToSQL()
	res, err := execBuilt(ctx, r.db, query, args, err, "delete disciplinary action")
	if err != nil {
		return err
	}
	return expectAffected(res, "disciplinary action", actionID)
}

func (r *DisciplineRepository) DeleteByTournament(ctx context.Context, tournamentID int64) (int, error) {
	query, args, err := qb.DeleteFrom(tableDiscipline).Where(qb.Eq("tournament_id", tournamentID)).ToSQL()
	res, err := execBuilt(ctx, r.db, query, args, err, "delete tournament disciplinary actions")
	if err != nil {
		return 0, err
	}
	return rowsAffected(res, "delete tournament disciplinary actions")
}

func actionFromRow(row disciplinaryActionTableModel) discipline.Action {
	return discipline.Action{
		ID:           row.ID,
		TournamentID: row.TournamentID,
		TeamID:       row.TeamID,
		PlayerName:   row.PlayerName,
		ActionType:   discipline.ActionType(row.ActionType),
		Reason:       row.Reason,
		MatchDate:    timeFromNull(row.MatchDate),
		Referee:      row.Referee,
		CreatedAt:    row.CreatedAt.UTC(),
	}
}
