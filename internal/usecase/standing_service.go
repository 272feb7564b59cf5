package usecase

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strconv"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/riskibarqy/school-tournament/internal/domain/match"
	"github.com/riskibarqy/school-tournament/internal/domain/standing"
	"github.com/riskibarqy/school-tournament/internal/domain/team"
	"github.com/riskibarqy/school-tournament/internal/domain/tournament"
	"github.com/riskibarqy/school-tournament/internal/platform/cache"
	"github.com/riskibarqy/school-tournament/internal/platform/logging"
)

const (
	standingsCachePrefix   = "standings:"
	defaultStandingWorkers = 4
)

type StandingService struct {
	tournamentRepo tournament.Repository
	teamRepo       team.Repository
	matchRepo      match.Repository
	cache          *cache.Store
	workers        int
	logger         *logging.Logger
}

// NewStandingService builds the standings reader. A nil cache computes
// every table on demand.
func NewStandingService(
	tournamentRepo tournament.Repository,
	teamRepo team.Repository,
	matchRepo match.Repository,
	store *cache.Store,
	workers int,
	logger *logging.Logger,
) *StandingService {
	if workers <= 0 {
		workers = defaultStandingWorkers
	}
	if logger == nil {
		logger = logging.Default()
	}

	return &StandingService{
		tournamentRepo: tournamentRepo,
		teamRepo:       teamRepo,
		matchRepo:      matchRepo,
		cache:          store,
		workers:        workers,
		logger:         logger.Named("standing"),
	}
}

// ListByTournament returns the ranked table of a tournament. An unknown
// tournament yields an empty table.
func (s *StandingService) ListByTournament(ctx context.Context, tournamentID int64) ([]standing.Row, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingService.ListByTournament")
	defer span.End()

	v, err := s.cache.GetOrLoad(ctx, standingsCacheKey(tournamentID), func(ctx context.Context) (any, error) {
		return s.calculate(ctx, tournamentID)
	})
	if err != nil {
		return nil, err
	}

	rows, _ := v.([]standing.Row)
	return append([]standing.Row{}, rows...), nil
}

func (s *StandingService) calculate(ctx context.Context, tournamentID int64) ([]standing.Row, error) {
	cup, exists, err := s.tournamentRepo.GetByID(ctx, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("get tournament: %w", err)
	}
	if !exists {
		s.logger.WarnContext(ctx, "standings requested for unknown tournament", "tournament_id", tournamentID)
		return []standing.Row{}, nil
	}

	teams, err := s.teamRepo.ListBySport(ctx, cup.SportID)
	if err != nil {
		return nil, fmt.Errorf("list teams by sport: %w", err)
	}
	matches, err := s.matchRepo.ListByTournament(ctx, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("list matches by tournament: %w", err)
	}

	return standing.Calculate(cup, teams, matches), nil
}

// ListLeaders returns the first row of every active tournament that has
// eligible teams, ordered by tournament id.
func (s *StandingService) ListLeaders(ctx context.Context) ([]standing.Leader, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingService.ListLeaders")
	defer span.End()

	tournaments, err := s.tournamentRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tournaments: %w", err)
	}
	active := slices.DeleteFunc(tournaments, func(item tournament.Tournament) bool {
		return item.Status != tournament.StatusActive
	})
	if len(active) == 0 {
		return []standing.Leader{}, nil
	}

	pool, err := ants.NewPool(min(s.workers, len(active)))
	if err != nil {
		return nil, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var (
		mu       sync.Mutex
		wg       sync.WaitGroup
		leaders  = make([]standing.Leader, 0, len(active))
		firstErr error
	)
	for _, cup := range active {
		wg.Add(1)
		if err := pool.Submit(func() {
			defer wg.Done()

			rows, err := s.ListByTournament(ctx, cup.ID)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				if firstErr == nil {
					firstErr = fmt.Errorf("standings for tournament=%d: %w", cup.ID, err)
				}
				return
			}
			if len(rows) > 0 {
				leaders = append(leaders, standing.Leader{Tournament: cup, Row: rows[0]})
			}
		}); err != nil {
			wg.Done()
			wg.Wait()
			return nil, fmt.Errorf("submit task to worker pool: %w", err)
		}
	}
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}

	slices.SortFunc(leaders, func(a, b standing.Leader) int {
		return cmp.Compare(a.Tournament.ID, b.Tournament.ID)
	})
	return leaders, nil
}

func (s *StandingService) Invalidate(ctx context.Context, tournamentID int64) {
	s.cache.Delete(ctx, standingsCacheKey(tournamentID))
}

func (s *StandingService) InvalidateAll(ctx context.Context) {
	s.cache.DeletePrefix(ctx, standingsCachePrefix)
}

func standingsCacheKey(tournamentID int64) string {
	return standingsCachePrefix + strconv.FormatInt(tournamentID, 10)
}
