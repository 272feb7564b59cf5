package usecase

import (
	"context"
	"fmt"

	"github.com/sourcegraph/conc/pool"

	"github.com/riskibarqy/school-tournament/internal/domain/discipline"
	"github.com/riskibarqy/school-tournament/internal/domain/match"
	"github.com/riskibarqy/school-tournament/internal/domain/sport"
	"github.com/riskibarqy/school-tournament/internal/domain/team"
	"github.com/riskibarqy/school-tournament/internal/domain/tournament"
)

// Overview holds the counters shown on the dashboard.
type Overview struct {
	Sports            int
	Tournaments       int
	ActiveTournaments int
	Teams             int
	CompletedMatches  int
	ScheduledMatches  int
	DisciplinaryCount int
}

type DashboardService struct {
	sportRepo      sport.Repository
	tournamentRepo tournament.Repository
	teamRepo       team.Repository
	matchRepo      match.Repository
	disciplineRepo discipline.Repository
}

func NewDashboardService(
	sportRepo sport.Repository,
	tournamentRepo tournament.Repository,
	teamRepo team.Repository,
	matchRepo match.Repository,
	disciplineRepo discipline.Repository,
) *DashboardService {
	return &DashboardService{
		sportRepo:      sportRepo,
		tournamentRepo: tournamentRepo,
		teamRepo:       teamRepo,
		matchRepo:      matchRepo,
		disciplineRepo: disciplineRepo,
	}
}

func (s *DashboardService) Overview(ctx context.Context) (Overview, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DashboardService.Overview")
	defer span.End()

	var out Overview
	p := pool.New().WithErrors().WithContext(ctx).WithCancelOnError()

	p.Go(func(ctx context.Context) error {
		items, err := s.sportRepo.List(ctx)
		if err != nil {
			return fmt.Errorf("list sports: %w", err)
		}
		out.Sports = len(items)
		return nil
	})
	p.Go(func(ctx context.Context) error {
		items, err := s.tournamentRepo.List(ctx)
		if err != nil {
			return fmt.Errorf("list tournaments: %w", err)
		}
		out.Tournaments = len(items)
		for _, item := range items {
			if item.Status == tournament.StatusActive {
				out.ActiveTournaments++
			}
		}
		return nil
	})
	p.Go(func(ctx context.Context) error {
		items, err := s.teamRepo.List(ctx)
		if err != nil {
			return fmt.Errorf("list teams: %w", err)
		}
		out.Teams = len(items)
		return nil
	})
	p.Go(func(ctx context.Context) error {
		items, err := s.matchRepo.List(ctx)
		if err != nil {
			return fmt.Errorf("list matches: %w", err)
		}
		for _, item := range items {
			switch item.Status {
			case match.StatusCompleted:
				out.CompletedMatches++
			case match.StatusScheduled:
				out.ScheduledMatches++
			}
		}
		return nil
	})
	p.Go(func(ctx context.Context) error {
		items, err := s.disciplineRepo.List(ctx)
		if err != nil {
			return fmt.Errorf("list disciplinary actions: %w", err)
		}
		out.DisciplinaryCount = len(items)
		return nil
	})

	if err := p.Wait(); err != nil {
		return Overview{}, err
	}
	return out, nil
}
