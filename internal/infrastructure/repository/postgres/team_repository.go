package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/school-tournament/internal/domain/team"
	qb "github.com/riskibarqy/school-tournament/internal/platform/querybuilder"
)

var teamColumns = []string{"id", "name", "grade", "sport_id", "captain", "coach", "created_at"}

type TeamRepository struct {
	db *sqlx.DB
}

func NewTeamRepository(db *sqlx.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) List(ctx context.Context) ([]team.Team, error) {
	return r.list(ctx)
}

func (r *TeamRepository) ListBySport(ctx context.Context, sportID int64) ([]team.Team, error) {
	return r.list(ctx, qb.Eq("sport_id", sportID))
}

func (r *TeamRepository) list(ctx context.Context, conditions ...qb.Condition) ([]team.Team, error) {
	query, args, err := qb.Select(teamColumns...).From(tableTeams).Where(conditions...).OrderBy("id").ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select teams query: %w", err)
	}

	var rows []teamTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select teams: %w", err)
	}

	ids := make([]int64, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}
	players, err := r.playersByTeam(ctx, ids)
	if err != nil {
		return nil, err
	}

	out := make([]team.Team, 0, len(rows))
	for _, row := range rows {
		out = append(out, teamFromRow(row, players[row.ID]))
	}
	return out, nil
}

func (r *TeamRepository) GetByID(ctx context.Context, teamID int64) (team.Team, bool, error) {
	query, args, err := qb.Select(teamColumns...).From(tableTeams).Where(qb.Eq("id", teamID)).Limit(1).ToSQL()
	if err != nil {
		return team.Team{}, false, fmt.Errorf("build select team by id query: %w", err)
	}

	var row teamTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return team.Team{}, false, nil
		}
		return team.Team{}, false, fmt.Errorf("select team by id: %w", err)
	}

	players, err := r.playersByTeam(ctx, []int64{teamID})
	if err != nil {
		return team.Team{}, false, err
	}
	return teamFromRow(row, players[teamID]), true, nil
}

func (r *TeamRepository) Create(ctx context.Context, item team.Team) (team.Team, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return team.Team{}, fmt.Errorf("begin tx for team insert: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	query, args, err := qb.InsertModel(tableTeams, teamToRow(item), "id").Returning("id").ToSQL()
	if err != nil {
		return team.Team{}, fmt.Errorf("build insert team query: %w", err)
	}
	if err := tx.QueryRowxContext(ctx, query, args...).Scan(&item.ID); err != nil {
		return team.Team{}, fmt.Errorf("insert team: %w", err)
	}
	if err := insertPlayers(ctx, tx, item.ID, item.Players); err != nil {
		return team.Team{}, err
	}

	if err := tx.Commit(); err != nil {
		return team.Team{}, fmt.Errorf("commit team insert: %w", err)
	}
	return item, nil
}

// Update rewrites the team row and replaces its whole roster.
func (r *TeamRepository) Update(ctx context.Context, item team.Team) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx for team update: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	query, args, err := qb.Update(tableTeams).
		SetModel(teamToRow(item), "id", "created_at").
		Set("updated_at", qb.Raw("NOW()")).
		Where(qb.Eq("id", item.ID)).
		ToSQL()
	res, err := execBuilt(ctx, tx, query, args, err, "update team")
	if err != nil {
		return err
	}
	if err := expectAffected(res, "team", item.ID); err != nil {
		return err
	}

	query, args, err = qb.DeleteFrom(tableTeamPlayers).Where(qb.Eq("team_id", item.ID)).ToSQL()
	if _, err := execBuilt(ctx, tx, query, args, err, "delete team players"); err != nil {
		return err
	}
	if err := insertPlayers(ctx, tx, item.ID, item.Players); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit team update: %w", err)
	}
	return nil
}

func (r *TeamRepository) Delete(ctx context.Context, teamID int64) error {
	query, args, err := qb.DeleteFrom(tableTeams).Where(qb.Eq("id", teamID)).ToSQL()
	res, err := execBuilt(ctx, r.db, query, args, err, "delete team")
	if err != nil {
		return err
	}
	return expectAffected(res, "team", teamID)
}

func (r *TeamRepository) playersByTeam(ctx context.Context, teamIDs []int64) (map[int64][]team.Player, error) {
	out := make(map[int64][]team.Player, len(teamIDs))
	if len(teamIDs) == 0 {
		return out, nil
	}

	query, args, err := qb.Select("team_id", "id", "name", "position", "number", "sort_order").
		From(tableTeamPlayers).
		Where(qb.In("team_id", teamIDs)).
		OrderBy("team_id", "sort_order").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select team players query: %w", err)
	}

	var rows []teamPlayerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select team players: %w", err)
	}
	for _, row := range rows {
		out[row.TeamID] = append(out[row.TeamID], team.Player{
			ID:       row.ID,
			Name:     row.Name,
			Position: row.Position,
			Number:   row.Number,
		})
	}
	return out, nil
}

func insertPlayers(ctx context.Context, ext sqlx.ExtContext, teamID int64, players []team.Player) error {
	if len(players) == 0 {
		return nil
	}

	builder := qb.InsertInto(tableTeamPlayers).Columns("team_id", "id", "name", "position", "number", "sort_order")
	for idx, p := range players {
		builder.Values(teamID, p.ID, p.Name, p.Position, p.Number, idx)
	}
	query, args, err := builder.ToSQL()
	_, err = execBuilt(ctx, ext, query, args, err, "insert team players")
	return err
}

func teamToRow(item team.Team) teamTableModel {
	return teamTableModel{
		ID:        item.ID,
		Name:      item.Name,
		Grade:     item.Grade,
		SportID:   item.SportID,
		Captain:   item.Captain,
		Coach:     item.Coach,
		CreatedAt: item.CreatedAt,
	}
}

func teamFromRow(row teamTableModel, players []team.Player) team.Team {
	if players == nil {
		players = []team.Player{}
	}
	return team.Team{
		ID:        row.ID,
		Name:      row.Name,
		Grade:     row.Grade,
		SportID:   row.SportID,
		Captain:   row.Captain,
		Coach:     row.Coach,
		Players:   players,
		CreatedAt: row.CreatedAt.UTC(),
	}
}
