package usecase

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/riskibarqy/school-tournament/internal/domain/match"
	"github.com/riskibarqy/school-tournament/internal/domain/team"
	"github.com/riskibarqy/school-tournament/internal/domain/tournament"
	"github.com/riskibarqy/school-tournament/internal/platform/logging"
)

type ScheduleMatchInput struct {
	TournamentID int64
	Team1ID      int64
	Team2ID      int64
	Date         time.Time
	Time         string
	Location     string
	Round        string
}

type MatchService struct {
	matchRepo      match.Repository
	tournamentRepo tournament.Repository
	teamRepo       team.Repository
	standings      standingsInvalidator
	clock          clockwork.Clock
	logger         *logging.Logger
}

func NewMatchService(
	matchRepo match.Repository,
	tournamentRepo tournament.Repository,
	teamRepo team.Repository,
	standings standingsInvalidator,
	clock clockwork.Clock,
	logger *logging.Logger,
) *MatchService {
	if standings == nil {
		standings = noopInvalidator{}
	}
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if logger == nil {
		logger = logging.Default()
	}

	return &MatchService{
		matchRepo:      matchRepo,
		tournamentRepo: tournamentRepo,
		teamRepo:       teamRepo,
		standings:      standings,
		clock:          clock,
		logger:         logger.Named("match"),
	}
}

// List returns every match, or the matches of tournamentID when it is set.
func (s *MatchService) List(ctx context.Context, tournamentID int64) ([]match.Match, error) {
	var (
		items []match.Match
		err   error
	)
	if tournamentID > 0 {
		items, err = s.matchRepo.ListByTournament(ctx, tournamentID)
	} else {
		items, err = s.matchRepo.List(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}
	return items, nil
}

func (s *MatchService) Get(ctx context.Context, matchID int64) (match.Match, error) {
	item, exists, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return match.Match{}, fmt.Errorf("get match: %w", err)
	}
	if !exists {
		return match.Match{}, fmt.Errorf("%w: match=%d", ErrNotFound, matchID)
	}
	return item, nil
}

// Schedule adds a single match entered by hand.
func (s *MatchService) Schedule(ctx context.Context, input ScheduleMatchInput) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Schedule")
	defer span.End()

	item := match.Match{
		TournamentID: input.TournamentID,
		Team1ID:      input.Team1ID,
		Team2ID:      input.Team2ID,
		Date:         input.Date,
		Time:         strings.TrimSpace(input.Time),
		Location:     strings.TrimSpace(input.Location),
		Round:        strings.TrimSpace(input.Round),
		Status:       match.StatusScheduled,
		CreatedAt:    s.clock.Now().UTC(),
	}
	if item.Round == "" {
		item.Round = match.GroupStageRound
	}
	if err := item.Validate(); err != nil {
		return match.Match{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	cup, exists, err := s.tournamentRepo.GetByID(ctx, item.TournamentID)
	if err != nil {
		return match.Match{}, fmt.Errorf("get tournament: %w", err)
	}
	if !exists {
		return match.Match{}, fmt.Errorf("%w: tournament=%d does not exist", ErrInvalidInput, item.TournamentID)
	}
	for _, teamID := range []int64{item.Team1ID, item.Team2ID} {
		teamItem, exists, err := s.teamRepo.GetByID(ctx, teamID)
		if err != nil {
			return match.Match{}, fmt.Errorf("get team: %w", err)
		}
		if !exists {
			return match.Match{}, fmt.Errorf("%w: team=%d does not exist", ErrInvalidInput, teamID)
		}
		if teamItem.SportID != cup.SportID {
			return match.Match{}, fmt.Errorf("%w: team=%d does not play the sport of tournament=%d", ErrInvalidInput, teamID, cup.ID)
		}
	}

	created, err := s.matchRepo.Create(ctx, item)
	if err != nil {
		return match.Match{}, fmt.Errorf("create match: %w", err)
	}
	return created, nil
}

// GenerateRoundRobin appends one match for every pair of teams of the
// tournament sport. Existing matches are kept. An unknown tournament
// produces no matches.
func (s *MatchService) GenerateRoundRobin(ctx context.Context, tournamentID int64) ([]match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.GenerateRoundRobin")
	defer span.End()

	cup, exists, err := s.tournamentRepo.GetByID(ctx, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("get tournament: %w", err)
	}
	if !exists {
		s.logger.WarnContext(ctx, "round robin requested for unknown tournament", "tournament_id", tournamentID)
		return []match.Match{}, nil
	}

	teams, err := s.teamRepo.ListBySport(ctx, cup.SportID)
	if err != nil {
		return nil, fmt.Errorf("list teams by sport: %w", err)
	}

	generated, err := match.GenerateRoundRobin(cup, teams)
	if err != nil {
		if errors.Is(err, match.ErrInsufficientTeams) {
			s.logger.WarnContext(ctx, "not enough teams for round robin",
				"tournament_id", tournamentID,
				"sport_id", cup.SportID,
				"teams", len(teams),
			)
		}
		return nil, err
	}

	now := s.clock.Now().UTC()
	for i := range generated {
		generated[i].CreatedAt = now
	}

	created, err := s.matchRepo.AppendBatch(ctx, generated)
	if err != nil {
		return nil, fmt.Errorf("append round robin matches: %w", err)
	}

	s.logger.InfoContext(ctx, "round robin generated",
		"tournament_id", tournamentID,
		"teams", len(teams),
		"matches", len(created),
	)
	return created, nil
}

// RecordScore stores the final result and completes the match.
func (s *MatchService) RecordScore(ctx context.Context, matchID int64, score1, score2 int) (match.Match, error) {
	if score1 < 0 || score2 < 0 {
		return match.Match{}, fmt.Errorf("%w: %w", ErrInvalidInput, match.ErrNegativeScore)
	}

	item, err := s.Get(ctx, matchID)
	if err != nil {
		return match.Match{}, err
	}

	item.Score1 = match.Score(score1)
	item.Score2 = match.Score(score2)
	item.Status = match.StatusCompleted
	if err := item.Validate(); err != nil {
		return match.Match{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	if err := s.matchRepo.Update(ctx, item); err != nil {
		return match.Match{}, fmt.Errorf("record score: %w", err)
	}
	s.standings.Invalidate(ctx, item.TournamentID)

	s.logger.InfoContext(ctx, "match score recorded",
		"match_id", item.ID,
		"tournament_id", item.TournamentID,
		"score1", score1,
		"score2", score2,
	)
	return item, nil
}

// SetStatus moves a match between scheduled and live. Leaving completed
// clears the recorded result.
func (s *MatchService) SetStatus(ctx context.Context, matchID int64, status match.Status) (match.Match, error) {
	if !slices.Contains([]match.Status{match.StatusScheduled, match.StatusLive}, status) {
		return match.Match{}, fmt.Errorf("%w: status must be scheduled or live, use the score endpoint to complete a match", ErrInvalidInput)
	}

	item, err := s.Get(ctx, matchID)
	if err != nil {
		return match.Match{}, err
	}

	wasCompleted := item.Status == match.StatusCompleted
	item.Status = status
	item.Score1, item.Score2 = nil, nil
	if err := s.matchRepo.Update(ctx, item); err != nil {
		return match.Match{}, fmt.Errorf("update match status: %w", err)
	}
	if wasCompleted {
		s.standings.Invalidate(ctx, item.TournamentID)
	}
	return item, nil
}

func (s *MatchService) Delete(ctx context.Context, matchID int64) error {
	item, err := s.Get(ctx, matchID)
	if err != nil {
		return err
	}

	if err := s.matchRepo.Delete(ctx, matchID); err != nil {
		return fmt.Errorf("delete match: %w", err)
	}
	s.standings.Invalidate(ctx, item.TournamentID)
	return nil
}
