package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/school-tournament/internal/domain/discipline"
	"github.com/riskibarqy/school-tournament/internal/domain/tournament"
	disciplinemock "github.com/riskibarqy/school-tournament/internal/mocks/domain/discipline"
	matchmock "github.com/riskibarqy/school-tournament/internal/mocks/domain/match"
	sportmock "github.com/riskibarqy/school-tournament/internal/mocks/domain/sport"
	teammock "github.com/riskibarqy/school-tournament/internal/mocks/domain/team"
	tournamentmock "github.com/riskibarqy/school-tournament/internal/mocks/domain/tournament"
)

func TestDashboardService_Overview(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	ctx := context.Background()
	cup := env.mustTournament(t, "Copa", 1, 0)
	env.mustTournament(t, "Liga", 2, 0)
	a := env.mustTeam(t, "Tigres", 1)
	env.mustTeam(t, "Leones", 1)
	env.mustTeam(t, "Pumas", 1)

	_, err := env.tournamentService.SetStatus(ctx, cup.ID, tournament.StatusActive)
	require.NoError(t, err)
	generated, err := env.matchService.GenerateRoundRobin(ctx, cup.ID)
	require.NoError(t, err)
	_, err = env.matchService.RecordScore(ctx, generated[0].ID, 1, 1)
	require.NoError(t, err)
	_, err = env.matchService.SetStatus(ctx, generated[1].ID, "live")
	require.NoError(t, err)
	_, err = env.disciplineService.Record(ctx, DisciplineInput{TournamentID: cup.ID, TeamID: a.ID, PlayerName: "Ana", ActionType: discipline.ActionWarning})
	require.NoError(t, err)

	got, err := env.dashboardService.Overview(ctx)
	require.NoError(t, err)
	assert.Equal(t, Overview{
		Sports:            5,
		Tournaments:       2,
		ActiveTournaments: 1,
		Teams:             3,
		CompletedMatches:  1,
		ScheduledMatches:  1,
		DisciplinaryCount: 1,
	}, got)
}

func TestDashboardService_OverviewPropagatesErrorsUsingMockery(t *testing.T) {
	t.Parallel()

	sportRepo := sportmock.NewRepository(t)
	tournamentRepo := tournamentmock.NewRepository(t)
	teamRepo := teammock.NewRepository(t)
	matchRepo := matchmock.NewRepository(t)
	disciplineRepo := disciplinemock.NewRepository(t)
	service := NewDashboardService(sportRepo, tournamentRepo, teamRepo, matchRepo, disciplineRepo)

	boom := errors.New("storage offline")
	sportRepo.On("List", mock.Anything).Return(nil, boom).Maybe()
	tournamentRepo.On("List", mock.Anything).Return(nil, nil).Maybe()
	teamRepo.On("List", mock.Anything).Return(nil, nil).Maybe()
	matchRepo.On("List", mock.Anything).Return(nil, nil).Maybe()
	disciplineRepo.On("List", mock.Anything).Return(nil, nil).Maybe()

	_, err := service.Overview(context.Background())
	assert.ErrorIs(t, err, boom)
}
