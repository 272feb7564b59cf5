package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/riskibarqy/school-tournament/internal/domain/discipline"
	"github.com/riskibarqy/school-tournament/internal/domain/team"
	"github.com/riskibarqy/school-tournament/internal/domain/tournament"
	"github.com/riskibarqy/school-tournament/internal/platform/logging"
)

type DisciplineInput struct {
	TournamentID int64
	TeamID       int64
	PlayerName   string
	ActionType   discipline.ActionType
	Reason       string
	MatchDate    time.Time
	Referee      string
}

type DisciplineService struct {
	disciplineRepo discipline.Repository
	tournamentRepo tournament.Repository
	teamRepo       team.Repository
	clock          clockwork.Clock
	logger         *logging.Logger
}

func NewDisciplineService(
	disciplineRepo discipline.Repository,
	tournamentRepo tournament.Repository,
	teamRepo team.Repository,
	clock clockwork.Clock,
	logger *logging.Logger,
) *DisciplineService {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if logger == nil {
		logger = logging.Default()
	}

	return &DisciplineService{
		disciplineRepo: disciplineRepo,
		tournamentRepo: tournamentRepo,
		teamRepo:       teamRepo,
		clock:          clock,
		logger:         logger.Named("discipline"),
	}
}

func (s *DisciplineService) List(ctx context.Context, tournamentID int64) ([]discipline.Action, error) {
	var (
		items []discipline.Action
		err   error
	)
	if tournamentID > 0 {
		items, err = s.disciplineRepo.ListByTournament(ctx, tournamentID)
	} else {
		items, err = s.disciplineRepo.List(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("list disciplinary actions: %w", err)
	}
	return items, nil
}

func (s *DisciplineService) Record(ctx context.Context, input DisciplineInput) (discipline.Action, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DisciplineService.Record")
	defer span.End()

	item := discipline.Action{
		TournamentID: input.TournamentID,
		TeamID:       input.TeamID,
		PlayerName:   strings.TrimSpace(input.PlayerName),
		ActionType:   discipline.ActionType(strings.TrimSpace(string(input.ActionType))),
		Reason:       strings.TrimSpace(input.Reason),
		MatchDate:    input.MatchDate,
		Referee:      strings.TrimSpace(input.Referee),
		CreatedAt:    s.clock.Now().UTC(),
	}
	if err := item.Validate(); err != nil {
		return discipline.Action{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	if _, exists, err := s.tournamentRepo.GetByID(ctx, item.TournamentID); err != nil {
		return discipline.Action{}, fmt.Errorf("get tournament: %w", err)
	} else if !exists {
		return discipline.Action{}, fmt.Errorf("%w: tournament=%d does not exist", ErrInvalidInput, item.TournamentID)
	}
	if _, exists, err := s.teamRepo.GetByID(ctx, item.TeamID); err != nil {
		return discipline.Action{}, fmt.Errorf("get team: %w", err)
	} else if !exists {
		return discipline.Action{}, fmt.Errorf("%w: team=%d does not exist", ErrInvalidInput, item.TeamID)
	}

	created, err := s.disciplineRepo.Create(ctx, item)
	if err != nil {
		return discipline.Action{}, fmt.Errorf("create disciplinary action: %w", err)
	}

	s.logger.InfoContext(ctx, "disciplinary action recorded",
		"action_id", created.ID,
		"tournament_id", created.TournamentID,
		"team_id", created.TeamID,
		"action_type", string(created.ActionType),
	)
	return created, nil
}

func (s *DisciplineService) Delete(ctx context.Context, actionID int64) error {
	_, exists, err := s.disciplineRepo.GetByID(ctx, actionID)
	if err != nil {
		return fmt.Errorf("get disciplinary action: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: disciplinary action=%d", ErrNotFound, actionID)
	}

	if err := s.disciplineRepo.Delete(ctx, actionID); err != nil {
		return fmt.Errorf("delete disciplinary action: %w", err)
	}
	return nil
}

// PlayerSummary aggregates the records of every player, optionally within
// one tournament.
func (s *DisciplineService) PlayerSummary(ctx context.Context, tournamentID int64) ([]discipline.PlayerSummary, error) {
	items, err := s.List(ctx, tournamentID)
	if err != nil {
		return nil, err
	}
	return discipline.Summarize(items), nil
}
