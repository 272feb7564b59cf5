package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/school-tournament/internal/domain/sport"
	qb "github.com/riskibarqy/school-tournament/internal/platform/querybuilder"
)

type SportRepository struct {
	db *sqlx.DB
}

func NewSportRepository(db *sqlx.DB) *SportRepository {
	return &SportRepository{db: db}
}

func (r *SportRepository) List(ctx context.Context) ([]sport.Sport, error) {
	query, args, err := qb.Select("id", "name", "icon", "max_players").From(tableSports).OrderBy("id").ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select sports query: %w", err)
	}

	var rows []sportTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select sports: %w", err)
	}

	out := make([]sport.Sport, 0, len(rows))
	for _, row := range rows {
		out = append(out, sport.Sport(row))
	}
	return out, nil
}

func (r *SportRepository) GetByID(ctx context.Context, sportID int64) (sport.Sport, bool, error) {
	query, args, err := qb.Select("id", "name", "icon", "max_players").From(tableSports).
		Where(qb.Eq("id", sportID)).
		Limit(1).
		ToSQL()
	if err != nil {
		return sport.Sport{}, false, fmt.Errorf("build select sport by id query: %w", err)
	}

	var row sportTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return sport.Sport{}, false, nil
		}
		return sport.Sport{}, false, fmt.Errorf("select sport by id: %w", err)
	}

	return sport.Sport(row), true, nil
}

func (r *SportRepository) Create(ctx context.Context, item sport.Sport) (sport.Sport, error) {
	query, args, err := qb.InsertModel(tableSports, sportTableModel(item), "id").Returning("id").ToSQL()
	if err != nil {
		return sport.Sport{}, fmt.Errorf("build insert sport query: %w", err)
	}

	if err := r.db.QueryRowxContext(ctx, query, args...).Scan(&item.ID); err != nil {
		return sport.Sport{}, fmt.Errorf("insert sport: %w", err)
	}
	return item, nil
}

func (r *SportRepository) Update(ctx context.Context, item sport.Sport) error {
	query, args, err := qb.Update(tableSports).
		SetModel(sportTableModel(item), "id").
		Set("updated_at", qb.Raw("NOW()")).
		Where(qb.Eq("id", item.ID)).
		ToSQL()
	res, err := execBuilt(ctx, r.db, query, args, err, "update sport")
	if err != nil {
		return err
	}
	return expectAffected(res, "sport", item.ID)
}

func (r *SportRepository) Delete(ctx context.Context, sportID int64) error {
	query, args, err := qb.DeleteFrom(tableSports).Where(qb.Eq("id", sportID)).ToSQL()
	res, err := execBuilt(ctx, r.db, query, args, err, "delete sport")
	if err != nil {
		return err
	}
	return expectAffected(res, "sport", sportID)
}
