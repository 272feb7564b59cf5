package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/school-tournament/internal/domain/sport"
	"github.com/riskibarqy/school-tournament/internal/domain/team"
	"github.com/riskibarqy/school-tournament/internal/domain/tournament"
)

type SportInput struct {
	Name       string
	Icon       string
	MaxPlayers int
}

type SportService struct {
	sportRepo      sport.Repository
	teamRepo       team.Repository
	tournamentRepo tournament.Repository
}

func NewSportService(sportRepo sport.Repository, teamRepo team.Repository, tournamentRepo tournament.Repository) *SportService {
	return &SportService{
		sportRepo:      sportRepo,
		teamRepo:       teamRepo,
		tournamentRepo: tournamentRepo,
	}
}

func (s *SportService) List(ctx context.Context) ([]sport.Sport, error) {
	items, err := s.sportRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sports: %w", err)
	}
	return items, nil
}

func (s *SportService) Get(ctx context.Context, sportID int64) (sport.Sport, error) {
	item, exists, err := s.sportRepo.GetByID(ctx, sportID)
	if err != nil {
		return sport.Sport{}, fmt.Errorf("get sport: %w", err)
	}
	if !exists {
		return sport.Sport{}, fmt.Errorf("%w: sport=%d", ErrNotFound, sportID)
	}
	return item, nil
}

func (s *SportService) Create(ctx context.Context, input SportInput) (sport.Sport, error) {
	item := input.toSport()
	if err := item.Validate(); err != nil {
		return sport.Sport{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	created, err := s.sportRepo.Create(ctx, item)
	if err != nil {
		return sport.Sport{}, fmt.Errorf("create sport: %w", err)
	}
	return created, nil
}

func (s *SportService) Update(ctx context.Context, sportID int64, input SportInput) (sport.Sport, error) {
	if _, err := s.Get(ctx, sportID); err != nil {
		return sport.Sport{}, err
	}

	item := input.toSport()
	item.ID = sportID
	if err := item.Validate(); err != nil {
		return sport.Sport{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	if err := s.sportRepo.Update(ctx, item); err != nil {
		return sport.Sport{}, fmt.Errorf("update sport: %w", err)
	}
	return item, nil
}

// Delete refuses to remove a sport that teams or tournaments still use.
func (s *SportService) Delete(ctx context.Context, sportID int64) error {
	if _, err := s.Get(ctx, sportID); err != nil {
		return err
	}

	teams, err := s.teamRepo.ListBySport(ctx, sportID)
	if err != nil {
		return fmt.Errorf("list teams by sport: %w", err)
	}
	if len(teams) > 0 {
		return fmt.Errorf("%w: sport=%d is used by %d teams", ErrInvalidInput, sportID, len(teams))
	}

	tournaments, err := s.tournamentRepo.List(ctx)
	if err != nil {
		return fmt.Errorf("list tournaments: %w", err)
	}
	for _, item := range tournaments {
		if item.SportID == sportID {
			return fmt.Errorf("%w: sport=%d is used by tournament=%d", ErrInvalidInput, sportID, item.ID)
		}
	}

	if err := s.sportRepo.Delete(ctx, sportID); err != nil {
		return fmt.Errorf("delete sport: %w", err)
	}
	return nil
}

func (in SportInput) toSport() sport.Sport {
	return sport.Sport{
		Name:       strings.TrimSpace(in.Name),
		Icon:       strings.TrimSpace(in.Icon),
		MaxPlayers: in.MaxPlayers,
	}
}
