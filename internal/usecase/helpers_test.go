package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/riskibarqy/school-tournament/internal/domain/sport"
	"github.com/riskibarqy/school-tournament/internal/domain/team"
	"github.com/riskibarqy/school-tournament/internal/domain/tournament"
	"github.com/riskibarqy/school-tournament/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/school-tournament/internal/platform/cache"
	"github.com/riskibarqy/school-tournament/internal/platform/logging"
)

var testNow = time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)

// testEnv wires every service over the memory driver.
type testEnv struct {
	sports      *memory.SportRepository
	teams       *memory.TeamRepository
	tournaments *memory.TournamentRepository
	matches     *memory.MatchRepository
	discipline  *memory.DisciplineRepository
	sessions    *memory.SessionRepository
	clock       *clockwork.FakeClock

	sportService      *SportService
	teamService       *TeamService
	tournamentService *TournamentService
	matchService      *MatchService
	standingService   *StandingService
	disciplineService *DisciplineService
	dashboardService  *DashboardService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		sports:      memory.NewSportRepository(sport.Defaults()),
		teams:       memory.NewTeamRepository(nil),
		tournaments: memory.NewTournamentRepository(nil),
		matches:     memory.NewMatchRepository(nil),
		discipline:  memory.NewDisciplineRepository(nil),
		sessions:    memory.NewSessionRepository(),
		clock:       clockwork.NewFakeClockAt(testNow),
	}
	logger := logging.NewNop()

	env.standingService = NewStandingService(env.tournaments, env.teams, env.matches, cache.NewStoreWithClock(time.Minute, env.clock), 2, logger)
	env.sportService = NewSportService(env.sports, env.teams, env.tournaments)
	env.teamService = NewTeamService(env.teams, env.sports, env.tournaments, env.standingService, env.clock, logger)
	env.tournamentService = NewTournamentService(env.tournaments, env.sports, env.teams, env.matches, env.discipline, env.standingService, env.clock, logger)
	env.matchService = NewMatchService(env.matches, env.tournaments, env.teams, env.standingService, env.clock, logger)
	env.disciplineService = NewDisciplineService(env.discipline, env.tournaments, env.teams, env.clock, logger)
	env.dashboardService = NewDashboardService(env.sports, env.tournaments, env.teams, env.matches, env.discipline)
	return env
}

func (e *testEnv) mustTeam(t *testing.T, name string, sportID int64) team.Team {
	t.Helper()

	created, err := e.teamService.Create(context.Background(), TeamInput{Name: name, Grade: "5A", SportID: sportID})
	if err != nil {
		t.Fatalf("create team %s: %v", name, err)
	}
	return created
}

func (e *testEnv) mustTournament(t *testing.T, name string, sportID int64, maxTeams int) tournament.Tournament {
	t.Helper()

	created, err := e.tournamentService.Create(context.Background(), TournamentInput{
		Name:      name,
		SportID:   sportID,
		StartDate: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		MaxTeams:  maxTeams,
	})
	if err != nil {
		t.Fatalf("create tournament %s: %v", name, err)
	}
	return created
}
