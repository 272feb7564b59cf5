package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/school-tournament/internal/domain/tournament"
	qb "github.com/riskibarqy/school-tournament/internal/platform/querybuilder"
)

var tournamentColumns = []string{"id", "name", "sport_id", "description", "start_date", "end_date", "max_teams", "status", "created_at"}

type TournamentRepository struct {
	db *sqlx.DB
}

func NewTournamentRepository(db *sqlx.DB) *TournamentRepository {
	return &TournamentRepository{db: db}
}

func (r *TournamentRepository) List(ctx context.Context) ([]tournament.Tournament, error) {
	query, args, err := qb.Select(tournamentColumns...).From(tableTournaments).OrderBy("id").ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select tournaments query: %w", err)
	}

	var rows []tournamentTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select tournaments: %w", err)
	}

	ids := make([]int64, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}
	registered, err := r.registeredTeams(ctx, ids)
	if err != nil {
		return nil, err
	}

	out := make([]tournament.Tournament, 0, len(rows))
	for _, row := range rows {
		out = append(out, tournamentFromRow(row, registered[row.ID]))
	}
	return out, nil
}

func (r *TournamentRepository) GetByID(ctx context.Context, tournamentID int64) (tournament.Tournament, bool, error) {
	query, args, err := qb.Select(tournamentColumns...).From(tableTournaments).
		Where(qb.Eq("id", tournamentID)).
		Limit(1).
		ToSQL()
	if err != nil {
		return tournament.Tournament{}, false, fmt.Errorf("build select tournament by id query: %w", err)
	}

	var row tournamentTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return tournament.Tournament{}, false, nil
		}
		return tournament.Tournament{}, false, fmt.Errorf("select tournament by id: %w", err)
	}

	registered, err := r.registeredTeams(ctx, []int64{tournamentID})
	if err != nil {
		return tournament.Tournament{}, false, err
	}
	return tournamentFromRow(row, registered[tournamentID]), true, nil
}

func (r *TournamentRepository) Create(ctx context.Context, item tournament.Tournament) (tournament.Tournament, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return tournament.Tournament{}, fmt.Errorf("begin tx for tournament insert: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	query, args, err := qb.InsertModel(tableTournaments, tournamentToRow(item), "id").Returning("id").ToSQL()
	if err != nil {
		return tournament.Tournament{}, fmt.Errorf("build insert tournament query: %w", err)
	}
	if err := tx.QueryRowxContext(ctx, query, args...).Scan(&item.ID); err != nil {
		return tournament.Tournament{}, fmt.Errorf("insert tournament: %w", err)
	}
	if err := insertRegisteredTeams(ctx, tx, item.ID, item.RegisteredTeams); err != nil {
		return tournament.Tournament{}, err
	}

	if err := tx.Commit(); err != nil {
		return tournament.Tournament{}, fmt.Errorf("commit tournament insert: %w", err)
	}
	return item, nil
}

func (r *TournamentRepository) Update(ctx context.Context, item tournament.Tournament) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx for tournament update: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	query, args, err := qb.Update(tableTournaments).
		SetModel(tournamentToRow(item), "id", "created_at").
		Set("updated_at", qb.Raw("NOW()")).
		Where(qb.Eq("id", item.ID)).
		ToSQL()
	res, err := execBuilt(ctx, tx, query, args, err, "update tournament")
	if err != nil {
		return err
	}
	if err := expectAffected(res, "tournament", item.ID); err != nil {
		return err
	}

	query, args, err = qb.DeleteFrom(tableTournamentTeams).Where(qb.Eq("tournament_id", item.ID)).ToSQL()
	if _, err := execBuilt(ctx, tx, query, args, err, "delete tournament teams"); err != nil {
		return err
	}
	if err := insertRegisteredTeams(ctx, tx, item.ID, item.RegisteredTeams); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tournament update: %w", err)
	}
	return nil
}

func (r *TournamentRepository) Delete(ctx context.Context, tournamentID int64) error {
	query, args, err := qb.DeleteFrom(tableTournaments).Where(qb.Eq("id", tournamentID)).ToSQL()
	res, err := execBuilt(ctx, r.db, query, args, err, "delete tournament")
	if err != nil {
		return err
	}
	return expectAffected(res, "tournament", tournamentID)
}

func (r *TournamentRepository) registeredTeams(ctx context.Context, tournamentIDs []int64) (map[int64][]int64, error) {
	out := make(map[int64][]int64, len(tournamentIDs))
	if len(tournamentIDs) == 0 {
		return out, nil
	}

	query, args, err := qb.Select("tournament_id", "team_id", "sort_order").
		From(tableTournamentTeams).
		Where(qb.In("tournament_id", tournamentIDs)).
		OrderBy("tournament_id", "sort_order").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select tournament teams query: %w", err)
	}

	var rows []tournamentTeamTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select tournament teams: %w", err)
	}
	for _, row := range rows {
		out[row.TournamentID] = append(out[row.TournamentID], row.TeamID)
	}
	return out, nil
}

func insertRegisteredTeams(ctx context.Context, ext sqlx.ExtContext, tournamentID int64, teamIDs []int64) error {
	if len(teamIDs) == 0 {
		return nil
	}

	builder := qb.InsertInto(tableTournamentTeams).Columns("tournament_id", "team_id", "sort_order")
	for idx, teamID := range teamIDs {
		builder.Values(tournamentID, teamID, idx)
	}
	query, args, err := builder.ToSQL()
	_, err = execBuilt(ctx, ext, query, args, err, "insert tournament teams")
	return err
}

func tournamentToRow(item tournament.Tournament) tournamentTableModel {
	return tournamentTableModel{
		ID:          item.ID,
		Name:        item.Name,
		SportID:     item.SportID,
		Description: item.Description,
		StartDate:   item.StartDate,
		EndDate:     nullTime(item.EndDate),
		MaxTeams:    item.MaxTeams,
		Status:      string(item.Status),
		CreatedAt:   item.CreatedAt,
	}
}

func tournamentFromRow(row tournamentTableModel, registered []int64) tournament.Tournament {
	if registered == nil {
		registered = []int64{}
	}
	return tournament.Tournament{
		ID:              row.ID,
		Name:            row.Name,
		SportID:         row.SportID,
		Description:     row.Description,
		StartDate:       row.StartDate.UTC(),
		EndDate:         timeFromNull(row.EndDate),
		MaxTeams:        row.MaxTeams,
		Status:          tournament.Status(row.Status),
		RegisteredTeams: registered,
		CreatedAt:       row.CreatedAt.UTC(),
	}
}
