package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/school-tournament/internal/domain/discipline"
)

func TestDisciplineService_RecordValidates(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	ctx := context.Background()
	cup := env.mustTournament(t, "Copa", 1, 0)
	a := env.mustTeam(t, "Tigres", 1)

	tests := []struct {
		name  string
		input DisciplineInput
	}{
		{name: "missing player", input: DisciplineInput{TournamentID: cup.ID, TeamID: a.ID, ActionType: discipline.ActionWarning}},
		{name: "unknown type", input: DisciplineInput{TournamentID: cup.ID, TeamID: a.ID, PlayerName: "Ana", ActionType: "blue_card"}},
		{name: "unknown tournament", input: DisciplineInput{TournamentID: 99, TeamID: a.ID, PlayerName: "Ana", ActionType: discipline.ActionWarning}},
		{name: "unknown team", input: DisciplineInput{TournamentID: cup.ID, TeamID: 99, PlayerName: "Ana", ActionType: discipline.ActionWarning}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := env.disciplineService.Record(ctx, tc.input)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}

	created, err := env.disciplineService.Record(ctx, DisciplineInput{
		TournamentID: cup.ID, TeamID: a.ID, PlayerName: " Ana ", ActionType: discipline.ActionYellowCard, Referee: "Sr. Gómez",
	})
	require.NoError(t, err)
	assert.Equal(t, "Ana", created.PlayerName)
	assert.Equal(t, testNow, created.CreatedAt)

	require.NoError(t, env.disciplineService.Delete(ctx, created.ID))
	assert.ErrorIs(t, env.disciplineService.Delete(ctx, created.ID), ErrNotFound)
}

func TestDisciplineService_PlayerSummary(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	ctx := context.Background()
	cup := env.mustTournament(t, "Copa", 1, 0)
	other := env.mustTournament(t, "Liga", 1, 0)
	a := env.mustTeam(t, "Tigres", 1)
	b := env.mustTeam(t, "Leones", 1)

	record := func(tournamentID, teamID int64, player string, kind discipline.ActionType) {
		t.Helper()
		_, err := env.disciplineService.Record(ctx, DisciplineInput{
			TournamentID: tournamentID, TeamID: teamID, PlayerName: player, ActionType: kind,
		})
		require.NoError(t, err)
	}
	record(cup.ID, a.ID, "Ana", discipline.ActionYellowCard)
	record(cup.ID, a.ID, "Ana", discipline.ActionYellowCard)
	record(cup.ID, b.ID, "Luis", discipline.ActionRedCard)
	record(cup.ID, a.ID, "Bea", discipline.ActionWarning)
	record(other.ID, b.ID, "Luis", discipline.ActionSuspension)

	summary, err := env.disciplineService.PlayerSummary(ctx, cup.ID)
	require.NoError(t, err)
	require.Len(t, summary, 3)
	assert.Equal(t, "Luis", summary[0].PlayerName)
	assert.Equal(t, 1, summary[0].RedCards)
	assert.Equal(t, "Ana", summary[1].PlayerName)
	assert.Equal(t, 2, summary[1].YellowCards)
	assert.Equal(t, "Bea", summary[2].PlayerName)

	all, err := env.disciplineService.PlayerSummary(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, all[0].Severe())
	assert.Equal(t, 2, all[0].Total)
}
