package discipline

import "context"

// Repository describes disciplinary record persistence needs from use cases.
type Repository interface {
	List(ctx context.Context) ([]Action, error)
	ListByTournament(ctx context.Context, tournamentID int64) ([]Action, error)
	GetByID(ctx context.Context, actionID int64) (Action, bool, error)
	Create(ctx context.Context, item Action) (Action, error)
	Delete(ctx context.Context, actionID int64) error
	DeleteByTournament(ctx context.Context, tournamentID int64) (int, error)
}
