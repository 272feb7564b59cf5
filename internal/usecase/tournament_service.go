package usecase

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/riskibarqy/school-tournament/internal/domain/discipline"
	"github.com/riskibarqy/school-tournament/internal/domain/match"
	"github.com/riskibarqy/school-tournament/internal/domain/sport"
	"github.com/riskibarqy/school-tournament/internal/domain/team"
	"github.com/riskibarqy/school-tournament/internal/domain/tournament"
	"github.com/riskibarqy/school-tournament/internal/platform/logging"
)

type TournamentInput struct {
	Name        string
	SportID     int64
	Description string
	StartDate   time.Time
	EndDate     time.Time
	MaxTeams    int
}

type TournamentService struct {
	tournamentRepo tournament.Repository
	sportRepo      sport.Repository
	teamRepo       team.Repository
	matchRepo      match.Repository
	disciplineRepo discipline.Repository
	standings      standingsInvalidator
	clock          clockwork.Clock
	logger         *logging.Logger
}

func NewTournamentService(
	tournamentRepo tournament.Repository,
	sportRepo sport.Repository,
	teamRepo team.Repository,
	matchRepo match.Repository,
	disciplineRepo discipline.Repository,
	standings standingsInvalidator,
	clock clockwork.Clock,
	logger *logging.Logger,
) *TournamentService {
	if standings == nil {
		standings = noopInvalidator{}
	}
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if logger == nil {
		logger = logging.Default()
	}

	return &TournamentService{
		tournamentRepo: tournamentRepo,
		sportRepo:      sportRepo,
		teamRepo:       teamRepo,
		matchRepo:      matchRepo,
		disciplineRepo: disciplineRepo,
		standings:      standings,
		clock:          clock,
		logger:         logger.Named("tournament"),
	}
}

func (s *TournamentService) List(ctx context.Context) ([]tournament.Tournament, error) {
	items, err := s.tournamentRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tournaments: %w", err)
	}
	return items, nil
}

func (s *TournamentService) Get(ctx context.Context, tournamentID int64) (tournament.Tournament, error) {
	item, exists, err := s.tournamentRepo.GetByID(ctx, tournamentID)
	if err != nil {
		return tournament.Tournament{}, fmt.Errorf("get tournament: %w", err)
	}
	if !exists {
		return tournament.Tournament{}, fmt.Errorf("%w: tournament=%d", ErrNotFound, tournamentID)
	}
	return item, nil
}

// Create opens a tournament in the upcoming state with no registered teams.
func (s *TournamentService) Create(ctx context.Context, input TournamentInput) (tournament.Tournament, error) {
	item := input.toTournament()
	item.Status = tournament.StatusUpcoming
	item.RegisteredTeams = []int64{}
	item.CreatedAt = s.clock.Now().UTC()
	if err := item.Validate(); err != nil {
		return tournament.Tournament{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	if err := s.requireSport(ctx, item.SportID); err != nil {
		return tournament.Tournament{}, err
	}

	created, err := s.tournamentRepo.Create(ctx, item)
	if err != nil {
		return tournament.Tournament{}, fmt.Errorf("create tournament: %w", err)
	}
	s.standings.Invalidate(ctx, created.ID)

	s.logger.InfoContext(ctx, "tournament created",
		"tournament_id", created.ID,
		"sport_id", created.SportID,
		"start_date", created.StartDate.Format(time.DateOnly),
	)
	return created, nil
}

// Update replaces the editable fields. Status, registrations and creation
// time are kept.
func (s *TournamentService) Update(ctx context.Context, tournamentID int64, input TournamentInput) (tournament.Tournament, error) {
	existing, err := s.Get(ctx, tournamentID)
	if err != nil {
		return tournament.Tournament{}, err
	}

	item := input.toTournament()
	item.ID = existing.ID
	item.Status = existing.Status
	item.RegisteredTeams = existing.RegisteredTeams
	item.CreatedAt = existing.CreatedAt
	if err := item.Validate(); err != nil {
		return tournament.Tournament{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	if item.SportID != existing.SportID {
		if err := s.requireSport(ctx, item.SportID); err != nil {
			return tournament.Tournament{}, err
		}
		if len(existing.RegisteredTeams) > 0 {
			return tournament.Tournament{}, fmt.Errorf("%w: cannot change sport of tournament=%d with registered teams", ErrInvalidInput, tournamentID)
		}
	}
	if item.MaxTeams > 0 && len(item.RegisteredTeams) > item.MaxTeams {
		return tournament.Tournament{}, fmt.Errorf("%w: tournament=%d already has %d teams", ErrInvalidInput, tournamentID, len(item.RegisteredTeams))
	}

	if err := s.tournamentRepo.Update(ctx, item); err != nil {
		return tournament.Tournament{}, fmt.Errorf("update tournament: %w", err)
	}
	s.standings.Invalidate(ctx, tournamentID)
	return item, nil
}

// Delete removes the tournament together with its matches and
// disciplinary records. Dependents go first and every step is idempotent,
// so retrying after a partial failure completes the removal.
func (s *TournamentService) Delete(ctx context.Context, tournamentID int64) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.TournamentService.Delete")
	defer span.End()

	if _, err := s.Get(ctx, tournamentID); err != nil {
		return err
	}

	matches, err := s.matchRepo.DeleteByTournament(ctx, tournamentID)
	if err != nil {
		return fmt.Errorf("delete tournament matches: %w", err)
	}
	s.standings.Invalidate(ctx, tournamentID)

	actions, err := s.disciplineRepo.DeleteByTournament(ctx, tournamentID)
	if err != nil {
		return fmt.Errorf("delete tournament disciplinary actions: %w", err)
	}

	if err := s.tournamentRepo.Delete(ctx, tournamentID); err != nil {
		return fmt.Errorf("delete tournament: %w", err)
	}
	s.standings.Invalidate(ctx, tournamentID)

	s.logger.InfoContext(ctx, "tournament deleted",
		"tournament_id", tournamentID,
		"matches", matches,
		"disciplinary_actions", actions,
	)
	return nil
}

func (s *TournamentService) SetStatus(ctx context.Context, tournamentID int64, status tournament.Status) (tournament.Tournament, error) {
	if !status.Valid() {
		return tournament.Tournament{}, fmt.Errorf("%w: invalid tournament status %q", ErrInvalidInput, status)
	}

	item, err := s.Get(ctx, tournamentID)
	if err != nil {
		return tournament.Tournament{}, err
	}
	if item.Status == status {
		return item, nil
	}

	item.Status = status
	if err := s.tournamentRepo.Update(ctx, item); err != nil {
		return tournament.Tournament{}, fmt.Errorf("update tournament status: %w", err)
	}
	s.standings.InvalidateAll(ctx)
	return item, nil
}

// RegisterTeam enters a team of the tournament sport. Registering an
// already registered team is a no-op.
func (s *TournamentService) RegisterTeam(ctx context.Context, tournamentID, teamID int64) (tournament.Tournament, error) {
	item, err := s.Get(ctx, tournamentID)
	if err != nil {
		return tournament.Tournament{}, err
	}
	if item.IsRegistered(teamID) {
		return item, nil
	}

	teamItem, exists, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return tournament.Tournament{}, fmt.Errorf("get team: %w", err)
	}
	if !exists {
		return tournament.Tournament{}, fmt.Errorf("%w: team=%d", ErrNotFound, teamID)
	}
	if teamItem.SportID != item.SportID {
		return tournament.Tournament{}, fmt.Errorf("%w: team=%d plays sport=%d, tournament=%d is sport=%d",
			ErrInvalidInput, teamID, teamItem.SportID, tournamentID, item.SportID)
	}
	if item.IsFull() {
		return tournament.Tournament{}, fmt.Errorf("%w: tournament=%d is full (%d teams)", ErrInvalidInput, tournamentID, item.MaxTeams)
	}

	item.RegisteredTeams = append(item.RegisteredTeams, teamID)
	if err := s.tournamentRepo.Update(ctx, item); err != nil {
		return tournament.Tournament{}, fmt.Errorf("register team: %w", err)
	}
	return item, nil
}

func (s *TournamentService) UnregisterTeam(ctx context.Context, tournamentID, teamID int64) (tournament.Tournament, error) {
	item, err := s.Get(ctx, tournamentID)
	if err != nil {
		return tournament.Tournament{}, err
	}
	if !item.IsRegistered(teamID) {
		return tournament.Tournament{}, fmt.Errorf("%w: team=%d is not registered in tournament=%d", ErrNotFound, teamID, tournamentID)
	}

	item.RegisteredTeams = slices.DeleteFunc(item.RegisteredTeams, func(id int64) bool { return id == teamID })
	if err := s.tournamentRepo.Update(ctx, item); err != nil {
		return tournament.Tournament{}, fmt.Errorf("unregister team: %w", err)
	}
	return item, nil
}

func (s *TournamentService) requireSport(ctx context.Context, sportID int64) error {
	_, exists, err := s.sportRepo.GetByID(ctx, sportID)
	if err != nil {
		return fmt.Errorf("get sport: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: sport=%d does not exist", ErrInvalidInput, sportID)
	}
	return nil
}

func (in TournamentInput) toTournament() tournament.Tournament {
	return tournament.Tournament{
		Name:        strings.TrimSpace(in.Name),
		SportID:     in.SportID,
		Description: strings.TrimSpace(in.Description),
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		MaxTeams:    in.MaxTeams,
	}
}
