package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/school-tournament/internal/domain/discipline"
	"github.com/riskibarqy/school-tournament/internal/domain/tournament"
	disciplinemock "github.com/riskibarqy/school-tournament/internal/mocks/domain/discipline"
	matchmock "github.com/riskibarqy/school-tournament/internal/mocks/domain/match"
	tournamentmock "github.com/riskibarqy/school-tournament/internal/mocks/domain/tournament"
	"github.com/riskibarqy/school-tournament/internal/platform/logging"
)

func TestTournamentService_CreateStartsUpcoming(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	created := env.mustTournament(t, "Copa Primavera", 1, 8)

	assert.Equal(t, tournament.StatusUpcoming, created.Status)
	assert.Empty(t, created.RegisteredTeams)
	assert.Equal(t, testNow, created.CreatedAt)
}

func TestTournamentService_CreateValidatesDates(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	start := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		input TournamentInput
	}{
		{name: "missing name", input: TournamentInput{SportID: 1, StartDate: start}},
		{name: "missing start", input: TournamentInput{Name: "Copa", SportID: 1}},
		{name: "end before start", input: TournamentInput{Name: "Copa", SportID: 1, StartDate: start, EndDate: start.AddDate(0, 0, -1)}},
		{name: "unknown sport", input: TournamentInput{Name: "Copa", SportID: 77, StartDate: start}},
		{name: "negative capacity", input: TournamentInput{Name: "Copa", SportID: 1, StartDate: start, MaxTeams: -1}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := env.tournamentService.Create(context.Background(), tc.input)
			if !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestTournamentService_RegisterTeam(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	ctx := context.Background()
	cup := env.mustTournament(t, "Copa", 1, 2)
	a := env.mustTeam(t, "Tigres", 1)
	b := env.mustTeam(t, "Leones", 1)
	c := env.mustTeam(t, "Pumas", 1)
	other := env.mustTeam(t, "Águilas", 2)

	_, err := env.tournamentService.RegisterTeam(ctx, cup.ID, other.ID)
	assert.ErrorIs(t, err, ErrInvalidInput, "team of another sport")

	_, err = env.tournamentService.RegisterTeam(ctx, cup.ID, 999)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = env.tournamentService.RegisterTeam(ctx, cup.ID, a.ID)
	require.NoError(t, err)
	again, err := env.tournamentService.RegisterTeam(ctx, cup.ID, a.ID)
	require.NoError(t, err)
	assert.Equal(t, []int64{a.ID}, again.RegisteredTeams)

	_, err = env.tournamentService.RegisterTeam(ctx, cup.ID, b.ID)
	require.NoError(t, err)
	_, err = env.tournamentService.RegisterTeam(ctx, cup.ID, c.ID)
	assert.ErrorIs(t, err, ErrInvalidInput, "capacity reached")

	left, err := env.tournamentService.UnregisterTeam(ctx, cup.ID, a.ID)
	require.NoError(t, err)
	assert.Equal(t, []int64{b.ID}, left.RegisteredTeams)

	_, err = env.tournamentService.UnregisterTeam(ctx, cup.ID, a.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTournamentService_UpdateKeepsStatusAndRegistrations(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	ctx := context.Background()
	cup := env.mustTournament(t, "Copa", 1, 0)
	a := env.mustTeam(t, "Tigres", 1)
	_, err := env.tournamentService.RegisterTeam(ctx, cup.ID, a.ID)
	require.NoError(t, err)
	_, err = env.tournamentService.SetStatus(ctx, cup.ID, tournament.StatusActive)
	require.NoError(t, err)

	updated, err := env.tournamentService.Update(ctx, cup.ID, TournamentInput{
		Name:        "Copa Escolar",
		SportID:     1,
		Description: "Torneo interno",
		StartDate:   time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2024, 4, 30, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Equal(t, "Copa Escolar", updated.Name)
	assert.Equal(t, tournament.StatusActive, updated.Status)
	assert.Equal(t, []int64{a.ID}, updated.RegisteredTeams)

	_, err = env.tournamentService.Update(ctx, cup.ID, TournamentInput{Name: "Copa", SportID: 2, StartDate: updated.StartDate})
	assert.ErrorIs(t, err, ErrInvalidInput, "sport change with registered teams")

	_, err = env.tournamentService.SetStatus(ctx, cup.ID, tournament.Status("paused"))
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestTournamentService_DeleteCascades(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	ctx := context.Background()
	cup := env.mustTournament(t, "Copa", 1, 0)
	keep := env.mustTournament(t, "Liga", 1, 0)
	a := env.mustTeam(t, "Tigres", 1)
	env.mustTeam(t, "Leones", 1)

	_, err := env.matchService.GenerateRoundRobin(ctx, cup.ID)
	require.NoError(t, err)
	_, err = env.matchService.GenerateRoundRobin(ctx, keep.ID)
	require.NoError(t, err)
	_, err = env.disciplineService.Record(ctx, DisciplineInput{
		TournamentID: cup.ID, TeamID: a.ID, PlayerName: "Ana", ActionType: discipline.ActionWarning,
	})
	require.NoError(t, err)

	require.NoError(t, env.tournamentService.Delete(ctx, cup.ID))

	matches, err := env.matchService.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, keep.ID, matches[0].TournamentID)

	actions, err := env.disciplineService.List(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, actions)

	assert.ErrorIs(t, env.tournamentService.Delete(ctx, cup.ID), ErrNotFound)
}

func TestTournamentService_DeleteRetriesAfterPartialFailure(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	tournamentRepo := tournamentmock.NewRepository(t)
	matchRepo := matchmock.NewRepository(t)
	disciplineRepo := disciplinemock.NewRepository(t)
	service := NewTournamentService(tournamentRepo, nil, nil, matchRepo, disciplineRepo, nil, nil, logging.NewNop())

	cup := tournament.Tournament{ID: 4, Name: "Copa", SportID: 1, Status: tournament.StatusActive}
	tournamentRepo.On("GetByID", mock.Anything, int64(4)).Return(cup, true, nil).Twice()
	matchRepo.On("DeleteByTournament", mock.Anything, int64(4)).Return(6, nil).Once()
	matchRepo.On("DeleteByTournament", mock.Anything, int64(4)).Return(0, nil).Once()
	disciplineRepo.On("DeleteByTournament", mock.Anything, int64(4)).Return(0, errors.New("disk full")).Once()

	err := service.Delete(ctx, 4)
	require.Error(t, err)
	tournamentRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)

	disciplineRepo.On("DeleteByTournament", mock.Anything, int64(4)).Return(2, nil).Once()
	tournamentRepo.On("Delete", mock.Anything, int64(4)).Return(nil).Once()

	require.NoError(t, service.Delete(ctx, 4))
}
