package match

import "context"

// Repository describes match persistence needs from use cases.
type Repository interface {
	List(ctx context.Context) ([]Match, error)
	ListByTournament(ctx context.Context, tournamentID int64) ([]Match, error)
	GetByID(ctx context.Context, matchID int64) (Match, bool, error)
	Create(ctx context.Context, item Match) (Match, error)
	// AppendBatch stores items after the existing matches and returns them
	// with their allocated ids, in input order.
	AppendBatch(ctx context.Context, items []Match) ([]Match, error)
	Update(ctx context.Context, item Match) error
	Delete(ctx context.Context, matchID int64) error
	// DeleteByTournament removes every match of the tournament and reports
	// how many were removed. Removing from an empty tournament is not an error.
	DeleteByTournament(ctx context.Context, tournamentID int64) (int, error)
}
