package match

import (
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/school-tournament/internal/domain/team"
	"github.com/riskibarqy/school-tournament/internal/domain/tournament"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestGenerateRoundRobin_DatesAndPairs(t *testing.T) {
	t.Parallel()

	cup := tournament.Tournament{ID: 9, SportID: 1, StartDate: day(2024, 3, 1)}
	teams := []team.Team{
		{ID: 1, Name: "T1", SportID: 1},
		{ID: 2, Name: "T2", SportID: 1},
		{ID: 7, Name: "Other", SportID: 2},
		{ID: 3, Name: "T3", SportID: 1},
	}

	got, err := GenerateRoundRobin(cup, teams)
	require.NoError(t, err)
	require.Len(t, got, 3)

	want := []struct {
		team1, team2 int64
		date         time.Time
	}{
		{1, 2, day(2024, 3, 1)},
		{1, 3, day(2024, 3, 2)},
		{2, 3, day(2024, 3, 3)},
	}
	for i, w := range want {
		assert.Equal(t, w.team1, got[i].Team1ID)
		assert.Equal(t, w.team2, got[i].Team2ID)
		assert.True(t, w.date.Equal(got[i].Date), "match %d dated %s", i, got[i].Date)
		assert.Equal(t, int64(9), got[i].TournamentID)
		assert.Equal(t, StatusScheduled, got[i].Status)
		assert.Equal(t, GroupStageRound, got[i].Round)
		assert.Equal(t, DefaultKickoffTime, got[i].Time)
		assert.Equal(t, DefaultLocation, got[i].Location)
		assert.Nil(t, got[i].Score1)
		assert.Nil(t, got[i].Score2)
		assert.NoError(t, got[i].Validate())
	}
}

func TestGenerateRoundRobin_EveryPairOnce(t *testing.T) {
	t.Parallel()

	for n := 2; n <= 9; n++ {
		teams := make([]team.Team, 0, n)
		for i := 1; i <= n; i++ {
			teams = append(teams, team.Team{ID: int64(i), SportID: 3})
		}

		got, err := GenerateRoundRobin(tournament.Tournament{ID: 1, SportID: 3, StartDate: day(2024, 1, 1)}, teams)
		require.NoError(t, err)
		require.Len(t, got, n*(n-1)/2)

		seen := make(map[[2]int64]struct{}, len(got))
		for _, item := range got {
			a, b := item.Team1ID, item.Team2ID
			require.NotEqual(t, a, b)
			if a > b {
				a, b = b, a
			}
			key := [2]int64{a, b}
			_, dup := seen[key]
			require.False(t, dup, "pair %v generated twice", key)
			seen[key] = struct{}{}
		}
	}
}

func TestGenerateRoundRobin_InsufficientTeams(t *testing.T) {
	t.Parallel()

	cup := tournament.Tournament{ID: 1, SportID: 1, StartDate: day(2024, 3, 1)}
	cases := map[string][]team.Team{
		"none":           nil,
		"one":            {{ID: 1, SportID: 1}},
		"other sport":    {{ID: 1, SportID: 2}, {ID: 2, SportID: 2}},
		"one plus other": {{ID: 1, SportID: 1}, {ID: 2, SportID: 2}},
	}
	for name, teams := range cases {
		got, err := GenerateRoundRobin(cup, teams)
		assert.Empty(t, got, name)
		assert.True(t, errors.Is(err, ErrInsufficientTeams), "%s: unexpected error %v", name, err)
	}
}

func TestGenerateRoundRobin_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	teams := []team.Team{{ID: 2, SportID: 1}, {ID: 1, SportID: 1}}
	_, err := GenerateRoundRobin(tournament.Tournament{ID: 1, SportID: 1, StartDate: day(2024, 3, 1)}, teams)
	require.NoError(t, err)
	assert.Equal(t, int64(2), teams[0].ID)
	assert.Equal(t, int64(1), teams[1].ID)
}
