package filestore

import (
	"context"
	"sync"

	"github.com/cockroachdb/errors"

	"github.com/riskibarqy/school-tournament/internal/domain/discipline"
	"github.com/riskibarqy/school-tournament/internal/domain/match"
	"github.com/riskibarqy/school-tournament/internal/domain/sport"
	"github.com/riskibarqy/school-tournament/internal/domain/team"
	"github.com/riskibarqy/school-tournament/internal/domain/tournament"
	"github.com/riskibarqy/school-tournament/internal/infrastructure/repository/memory"
)

// Repositories serves reads from an in-memory copy of each collection and
// writes the full collection back to its snapshot after every mutation.
type Repositories struct {
	Sports      *SportRepository
	Teams       *TeamRepository
	Tournaments *TournamentRepository
	Matches     *MatchRepository
	Discipline  *DisciplineRepository
}

// Open loads every collection snapshot from store. A missing sports
// snapshot is created with the default catalog.
func Open(store *Store) (*Repositories, error) {
	if store == nil {
		return nil, errors.New("snapshot store is required")
	}

	var sportRows []sportRecord
	found, err := store.Load(KeySports, &sportRows)
	if err != nil {
		return nil, err
	}
	sports := sportsFromRecords(sportRows)
	if !found {
		sports = memory.SeedSports()
		if err := store.Save(KeySports, sportRecords(sports)); err != nil {
			return nil, err
		}
	}

	var teamRows []teamRecord
	if _, err := store.Load(KeyTeams, &teamRows); err != nil {
		return nil, err
	}

	var tournamentRows []tournamentRecord
	if _, err := store.Load(KeyTournaments, &tournamentRows); err != nil {
		return nil, err
	}
	tournaments, err := tournamentsFromRecords(tournamentRows)
	if err != nil {
		return nil, err
	}

	var matchRows []matchRecord
	if _, err := store.Load(KeyMatches, &matchRows); err != nil {
		return nil, err
	}
	matches, err := matchesFromRecords(matchRows)
	if err != nil {
		return nil, err
	}

	var actionRows []actionRecord
	if _, err := store.Load(KeyDiscipline, &actionRows); err != nil {
		return nil, err
	}
	actions, err := actionsFromRecords(actionRows)
	if err != nil {
		return nil, err
	}

	return &Repositories{
		Sports:      &SportRepository{store: store, SportRepository: memory.NewSportRepository(sports)},
		Teams:       &TeamRepository{store: store, TeamRepository: memory.NewTeamRepository(teamsFromRecords(teamRows))},
		Tournaments: &TournamentRepository{store: store, TournamentRepository: memory.NewTournamentRepository(tournaments)},
		Matches:     &MatchRepository{store: store, MatchRepository: memory.NewMatchRepository(matches)},
		Discipline:  &DisciplineRepository{store: store, DisciplineRepository: memory.NewDisciplineRepository(actions)},
	}, nil
}

// snapshotter is the in-memory side of a write-through repository.
type snapshotter[T any] interface {
	List(ctx context.Context) ([]T, error)
	Restore(items []T)
}

// commit applies change to the in-memory collection and saves the result.
// When the save fails the previous collection is restored, so memory never
// holds a write the snapshot does not.
func commit[T any](ctx context.Context, repo snapshotter[T], save func([]T) error, change func() error) error {
	before, err := repo.List(ctx)
	if err != nil {
		return err
	}
	if err := change(); err != nil {
		return err
	}

	after, err := repo.List(ctx)
	if err == nil {
		err = save(after)
	}
	if err != nil {
		repo.Restore(before)
		return err
	}
	return nil
}

type SportRepository struct {
	*memory.SportRepository
	store *Store
	mu    sync.Mutex
}

func (r *SportRepository) save(items []sport.Sport) error {
	return r.store.Save(KeySports, sportRecords(items))
}

func (r *SportRepository) Create(ctx context.Context, item sport.Sport) (sport.Sport, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var created sport.Sport
	err := commit[sport.Sport](ctx, r.SportRepository, r.save, func() (err error) {
		created, err = r.SportRepository.Create(ctx, item)
		return err
	})
	if err != nil {
		return sport.Sport{}, err
	}
	return created, nil
}

func (r *SportRepository) Update(ctx context.Context, item sport.Sport) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return commit[sport.Sport](ctx, r.SportRepository, r.save, func() error {
		return r.SportRepository.Update(ctx, item)
	})
}

func (r *SportRepository) Delete(ctx context.Context, sportID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return commit[sport.Sport](ctx, r.SportRepository, r.save, func() error {
		return r.SportRepository.Delete(ctx, sportID)
	})
}

type TeamRepository struct {
	*memory.TeamRepository
	store *Store
	mu    sync.Mutex
}

func (r *TeamRepository) save(items []team.Team) error {
	return r.store.Save(KeyTeams, teamRecords(items))
}

func (r *TeamRepository) Create(ctx context.Context, item team.Team) (team.Team, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var created team.Team
	err := commit[team.Team](ctx, r.TeamRepository, r.save, func() (err error) {
		created, err = r.TeamRepository.Create(ctx, item)
		return err
	})
	if err != nil {
		return team.Team{}, err
	}
	return created, nil
}

func (r *TeamRepository) Update(ctx context.Context, item team.Team) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return commit[team.Team](ctx, r.TeamRepository, r.save, func() error {
		return r.TeamRepository.Update(ctx, item)
	})
}

func (r *TeamRepository) Delete(ctx context.Context, teamID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return commit[team.Team](ctx, r.TeamRepository, r.save, func() error {
		return r.TeamRepository.Delete(ctx, teamID)
	})
}

type TournamentRepository struct {
	*memory.TournamentRepository
	store *Store
	mu    sync.Mutex
}

func (r *TournamentRepository) save(items []tournament.Tournament) error {
	return r.store.Save(KeyTournaments, tournamentRecords(items))
}

func (r *TournamentRepository) Create(ctx context.Context, item tournament.Tournament) (tournament.Tournament, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var created tournament.Tournament
	err := commit[tournament.Tournament](ctx, r.TournamentRepository, r.save, func() (err error) {
		created, err = r.TournamentRepository.Create(ctx, item)
		return err
	})
	if err != nil {
		return tournament.Tournament{}, err
	}
	return created, nil
}

func (r *TournamentRepository) Update(ctx context.Context, item tournament.Tournament) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return commit[tournament.Tournament](ctx, r.TournamentRepository, r.save, func() error {
		return r.TournamentRepository.Update(ctx, item)
	})
}

func (r *TournamentRepository) Delete(ctx context.Context, tournamentID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return commit[tournament.Tournament](ctx, r.TournamentRepository, r.save, func() error {
		return r.TournamentRepository.Delete(ctx, tournamentID)
	})
}

type MatchRepository struct {
	*memory.MatchRepository
	store *Store
	mu    sync.Mutex
}

func (r *MatchRepository) save(items []match.Match) error {
	return r.store.Save(KeyMatches, matchRecords(items))
}

func (r *MatchRepository) Create(ctx context.Context, item match.Match) (match.Match, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var created match.Match
	err := commit[match.Match](ctx, r.MatchRepository, r.save, func() (err error) {
		created, err = r.MatchRepository.Create(ctx, item)
		return err
	})
	if err != nil {
		return match.Match{}, err
	}
	return created, nil
}

func (r *MatchRepository) AppendBatch(ctx context.Context, items []match.Match) ([]match.Match, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var created []match.Match
	err := commit[match.Match](ctx, r.MatchRepository, r.save, func() (err error) {
		created, err = r.MatchRepository.AppendBatch(ctx, items)
		return err
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (r *MatchRepository) Update(ctx context.Context, item match.Match) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return commit[match.Match](ctx, r.MatchRepository, r.save, func() error {
		return r.MatchRepository.Update(ctx, item)
	})
}

func (r *MatchRepository) Delete(ctx context.Context, matchID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return commit[match.Match](ctx, r.MatchRepository, r.save, func() error {
		return r.MatchRepository.Delete(ctx, matchID)
	})
}

// DeleteByTournament rewrites the matches snapshot once for the whole removal.
func (r *MatchRepository) DeleteByTournament(ctx context.Context, tournamentID int64) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var removed int
	err := commit[match.Match](ctx, r.MatchRepository, r.save, func() (err error) {
		removed, err = r.MatchRepository.DeleteByTournament(ctx, tournamentID)
		return err
	})
	if err != nil {
		return 0, err
	}
	return removed, nil
}

type DisciplineRepository struct {
	*memory.DisciplineRepository
	store *Store
	mu    sync.Mutex
}

func (r *DisciplineRepository) save(items []discipline.Action) error {
	return r.store.Save(KeyDiscipline, actionRecords(items))
}

func (r *DisciplineRepository) Create(ctx context.Context, item discipline.Action) (discipline.Action, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var created discipline.Action
	err := commit[discipline.Action](ctx, r.DisciplineRepository, r.save, func() (err error) {
		created, err = r.DisciplineRepository.Create(ctx, item)
		return err
	})
	if err != nil {
		return discipline.Action{}, err
	}
	return created, nil
}

func (r *DisciplineRepository) Delete(ctx context.Context, actionID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return commit[discipline.Action](ctx, r.DisciplineRepository, r.save, func() error {
		return r.DisciplineRepository.Delete(ctx, actionID)
	})
}

func (r *DisciplineRepository) DeleteByTournament(ctx context.Context, tournamentID int64) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var removed int
	err := commit[discipline.Action](ctx, r.DisciplineRepository, r.save, func() (err error) {
		removed, err = r.DisciplineRepository.DeleteByTournament(ctx, tournamentID)
		return err
	})
	if err != nil {
		return 0, err
	}
	return removed, nil
}
