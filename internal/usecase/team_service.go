package usecase

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/jonboulle/clockwork"

	"github.com/riskibarqy/school-tournament/internal/domain/sport"
	"github.com/riskibarqy/school-tournament/internal/domain/team"
	"github.com/riskibarqy/school-tournament/internal/domain/tournament"
	"github.com/riskibarqy/school-tournament/internal/platform/logging"
)

type TeamInput struct {
	Name    string
	Grade   string
	SportID int64
	Captain string
	Coach   string
	Players []PlayerInput
}

type PlayerInput struct {
	Name     string
	Position string
	Number   string
}

// standingsInvalidator drops cached tables after writes that change them.
type standingsInvalidator interface {
	Invalidate(ctx context.Context, tournamentID int64)
	InvalidateAll(ctx context.Context)
}

type noopInvalidator struct{}

func (noopInvalidator) Invalidate(context.Context, int64) {}
func (noopInvalidator) InvalidateAll(context.Context)     {}

type TeamService struct {
	teamRepo       team.Repository
	sportRepo      sport.Repository
	tournamentRepo tournament.Repository
	standings      standingsInvalidator
	clock          clockwork.Clock
	logger         *logging.Logger
}

func NewTeamService(
	teamRepo team.Repository,
	sportRepo sport.Repository,
	tournamentRepo tournament.Repository,
	standings standingsInvalidator,
	clock clockwork.Clock,
	logger *logging.Logger,
) *TeamService {
	if standings == nil {
		standings = noopInvalidator{}
	}
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if logger == nil {
		logger = logging.Default()
	}

	return &TeamService{
		teamRepo:       teamRepo,
		sportRepo:      sportRepo,
		tournamentRepo: tournamentRepo,
		standings:      standings,
		clock:          clock,
		logger:         logger.Named("team"),
	}
}

// List returns every team, or only the teams of sportID when it is set.
func (s *TeamService) List(ctx context.Context, sportID int64) ([]team.Team, error) {
	var (
		items []team.Team
		err   error
	)
	if sportID > 0 {
		items, err = s.teamRepo.ListBySport(ctx, sportID)
	} else {
		items, err = s.teamRepo.List(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	return items, nil
}

func (s *TeamService) Get(ctx context.Context, teamID int64) (team.Team, error) {
	item, exists, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return team.Team{}, fmt.Errorf("get team: %w", err)
	}
	if !exists {
		return team.Team{}, fmt.Errorf("%w: team=%d", ErrNotFound, teamID)
	}
	return item, nil
}

func (s *TeamService) Create(ctx context.Context, input TeamInput) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.Create")
	defer span.End()

	item := input.toTeam()
	for _, p := range input.Players {
		item.Players = append(item.Players, newPlayer(item, p))
	}
	item.CreatedAt = s.clock.Now().UTC()
	if err := item.Validate(); err != nil {
		return team.Team{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	sportItem, err := s.requireSport(ctx, item.SportID)
	if err != nil {
		return team.Team{}, err
	}

	created, err := s.teamRepo.Create(ctx, item)
	if err != nil {
		return team.Team{}, fmt.Errorf("create team: %w", err)
	}
	s.warnOverCapacity(ctx, created, sportItem)
	s.standings.InvalidateAll(ctx)

	s.logger.InfoContext(ctx, "team created",
		"team_id", created.ID,
		"sport_id", created.SportID,
		"player_count", len(created.Players),
	)
	return created, nil
}

// Update replaces the team details and keeps its roster.
func (s *TeamService) Update(ctx context.Context, teamID int64, input TeamInput) (team.Team, error) {
	existing, err := s.Get(ctx, teamID)
	if err != nil {
		return team.Team{}, err
	}

	item := input.toTeam()
	item.ID = existing.ID
	item.Players = existing.Players
	item.CreatedAt = existing.CreatedAt
	if err := item.Validate(); err != nil {
		return team.Team{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	if _, err := s.requireSport(ctx, item.SportID); err != nil {
		return team.Team{}, err
	}

	if item.SportID != existing.SportID {
		registered, err := s.registeredIn(ctx, teamID)
		if err != nil {
			return team.Team{}, err
		}
		if len(registered) > 0 {
			return team.Team{}, fmt.Errorf("%w: team=%d is registered in tournament=%d and cannot change sport",
				ErrInvalidInput, teamID, registered[0].ID)
		}
	}

	if err := s.teamRepo.Update(ctx, item); err != nil {
		return team.Team{}, fmt.Errorf("update team: %w", err)
	}
	s.standings.InvalidateAll(ctx)
	return item, nil
}

// Delete removes the team and its tournament registrations. Matches and
// disciplinary records keep referring to the id.
func (s *TeamService) Delete(ctx context.Context, teamID int64) error {
	if _, err := s.Get(ctx, teamID); err != nil {
		return err
	}

	registered, err := s.registeredIn(ctx, teamID)
	if err != nil {
		return err
	}
	for _, item := range registered {
		item.RegisteredTeams = slices.DeleteFunc(item.RegisteredTeams, func(id int64) bool { return id == teamID })
		if err := s.tournamentRepo.Update(ctx, item); err != nil {
			return fmt.Errorf("unregister team from tournament=%d: %w", item.ID, err)
		}
	}

	if err := s.teamRepo.Delete(ctx, teamID); err != nil {
		return fmt.Errorf("delete team: %w", err)
	}
	s.standings.InvalidateAll(ctx)
	return nil
}

// AddPlayer appends a roster entry. Without a number the player gets the
// next shirt number in roster order.
func (s *TeamService) AddPlayer(ctx context.Context, teamID int64, input PlayerInput) (team.Team, error) {
	item, err := s.Get(ctx, teamID)
	if err != nil {
		return team.Team{}, err
	}

	p := newPlayer(item, input)
	if p.Name == "" {
		return team.Team{}, fmt.Errorf("%w: player name is required", ErrInvalidInput)
	}
	item.Players = append(item.Players, p)

	if err := s.teamRepo.Update(ctx, item); err != nil {
		return team.Team{}, fmt.Errorf("add player: %w", err)
	}

	if sportItem, exists, err := s.sportRepo.GetByID(ctx, item.SportID); err == nil && exists {
		s.warnOverCapacity(ctx, item, sportItem)
	}
	return item, nil
}

func (s *TeamService) RemovePlayer(ctx context.Context, teamID, playerID int64) (team.Team, error) {
	item, err := s.Get(ctx, teamID)
	if err != nil {
		return team.Team{}, err
	}

	idx := item.PlayerIndex(playerID)
	if idx < 0 {
		return team.Team{}, fmt.Errorf("%w: player=%d team=%d", ErrNotFound, playerID, teamID)
	}
	item.Players = slices.Delete(item.Players, idx, idx+1)

	if err := s.teamRepo.Update(ctx, item); err != nil {
		return team.Team{}, fmt.Errorf("remove player: %w", err)
	}
	return item, nil
}

func (s *TeamService) requireSport(ctx context.Context, sportID int64) (sport.Sport, error) {
	item, exists, err := s.sportRepo.GetByID(ctx, sportID)
	if err != nil {
		return sport.Sport{}, fmt.Errorf("get sport: %w", err)
	}
	if !exists {
		return sport.Sport{}, fmt.Errorf("%w: sport=%d does not exist", ErrInvalidInput, sportID)
	}
	return item, nil
}

func (s *TeamService) registeredIn(ctx context.Context, teamID int64) ([]tournament.Tournament, error) {
	tournaments, err := s.tournamentRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tournaments: %w", err)
	}

	out := make([]tournament.Tournament, 0)
	for _, item := range tournaments {
		if item.IsRegistered(teamID) {
			out = append(out, item)
		}
	}
	return out, nil
}

func (s *TeamService) warnOverCapacity(ctx context.Context, item team.Team, sportItem sport.Sport) {
	if len(item.Players) <= sportItem.MaxPlayers {
		return
	}
	s.logger.WarnContext(ctx, "roster exceeds sport max players",
		"team_id", item.ID,
		"sport_id", sportItem.ID,
		"players", len(item.Players),
		"max_players", sportItem.MaxPlayers,
	)
}

func (in TeamInput) toTeam() team.Team {
	return team.Team{
		Name:    strings.TrimSpace(in.Name),
		Grade:   strings.TrimSpace(in.Grade),
		SportID: in.SportID,
		Captain: strings.TrimSpace(in.Captain),
		Coach:   strings.TrimSpace(in.Coach),
		Players: []team.Player{},
	}
}

func newPlayer(item team.Team, input PlayerInput) team.Player {
	number := strings.TrimSpace(input.Number)
	if number == "" {
		number = strconv.Itoa(len(item.Players) + 1)
	}
	return team.Player{
		ID:       item.NextPlayerID(),
		Name:     strings.TrimSpace(input.Name),
		Position: strings.TrimSpace(input.Position),
		Number:   number,
	}
}
