package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTeamService_CreateAssignsPlayerIDsAndNumbers(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	created, err := env.teamService.Create(context.Background(), TeamInput{
		Name:    " Tigres ",
		Grade:   "5A",
		SportID: 2,
		Captain: "Ana",
		Players: []PlayerInput{
			{Name: "Ana", Position: "Base"},
			{Name: "Luis", Number: "23"},
			{Name: "Sofía"},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "Tigres", created.Name)
	assert.Equal(t, testNow, created.CreatedAt)
	require.Len(t, created.Players, 3)
	assert.Equal(t, int64(1), created.Players[0].ID)
	assert.Equal(t, int64(3), created.Players[2].ID)
	assert.Equal(t, "1", created.Players[0].Number)
	assert.Equal(t, "23", created.Players[1].Number)
	assert.Equal(t, "3", created.Players[2].Number)
}

func TestTeamService_CreateRequiresExistingSport(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	_, err := env.teamService.Create(context.Background(), TeamInput{Name: "Tigres", Grade: "5A", SportID: 99})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}

	_, err = env.teamService.Create(context.Background(), TeamInput{Name: "", Grade: "5A", SportID: 1})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for empty name, got %v", err)
	}
}

func TestTeamService_ListBySport(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	env.mustTeam(t, "Tigres", 1)
	env.mustTeam(t, "Águilas", 2)
	env.mustTeam(t, "Leones", 1)

	all, err := env.teamService.List(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	football, err := env.teamService.List(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, football, 2)
	assert.Equal(t, "Tigres", football[0].Name)
	assert.Equal(t, "Leones", football[1].Name)
}

func TestTeamService_AddAndRemovePlayer(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	ctx := context.Background()
	created := env.mustTeam(t, "Tigres", 3)

	updated, err := env.teamService.AddPlayer(ctx, created.ID, PlayerInput{Name: "Marta"})
	require.NoError(t, err)
	updated, err = env.teamService.AddPlayer(ctx, created.ID, PlayerInput{Name: "Pedro", Position: "Líbero"})
	require.NoError(t, err)
	require.Len(t, updated.Players, 2)
	assert.Equal(t, "2", updated.Players[1].Number)

	_, err = env.teamService.AddPlayer(ctx, created.ID, PlayerInput{Name: "  "})
	assert.ErrorIs(t, err, ErrInvalidInput)

	updated, err = env.teamService.RemovePlayer(ctx, created.ID, updated.Players[0].ID)
	require.NoError(t, err)
	require.Len(t, updated.Players, 1)
	assert.Equal(t, "Pedro", updated.Players[0].Name)

	_, err = env.teamService.RemovePlayer(ctx, created.ID, 404)
	assert.ErrorIs(t, err, ErrNotFound)

	stored, err := env.teamService.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Len(t, stored.Players, 1)
}

func TestTeamService_UpdateKeepsRosterAndGuardsSportChange(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	ctx := context.Background()
	created, err := env.teamService.Create(ctx, TeamInput{
		Name: "Tigres", Grade: "5A", SportID: 1,
		Players: []PlayerInput{{Name: "Ana"}},
	})
	require.NoError(t, err)

	updated, err := env.teamService.Update(ctx, created.ID, TeamInput{Name: "Tigres FC", Grade: "6A", SportID: 1, Coach: "Prof. Ruiz"})
	require.NoError(t, err)
	assert.Equal(t, "Tigres FC", updated.Name)
	assert.Len(t, updated.Players, 1)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)

	cup := env.mustTournament(t, "Copa", 1, 0)
	_, err = env.tournamentService.RegisterTeam(ctx, cup.ID, created.ID)
	require.NoError(t, err)

	_, err = env.teamService.Update(ctx, created.ID, TeamInput{Name: "Tigres FC", Grade: "6A", SportID: 2})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestTeamService_DeleteUnregistersFromTournaments(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	ctx := context.Background()
	a := env.mustTeam(t, "Tigres", 1)
	b := env.mustTeam(t, "Leones", 1)
	cup := env.mustTournament(t, "Copa", 1, 0)
	for _, id := range []int64{a.ID, b.ID} {
		_, err := env.tournamentService.RegisterTeam(ctx, cup.ID, id)
		require.NoError(t, err)
	}

	require.NoError(t, env.teamService.Delete(ctx, a.ID))

	stored, err := env.tournamentService.Get(ctx, cup.ID)
	require.NoError(t, err)
	assert.Equal(t, []int64{b.ID}, stored.RegisteredTeams)

	assert.ErrorIs(t, env.teamService.Delete(ctx, a.ID), ErrNotFound)
}
