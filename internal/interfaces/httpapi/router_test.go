package httpapi

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/school-tournament/internal/domain/sport"
	"github.com/riskibarqy/school-tournament/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/school-tournament/internal/platform/cache"
	"github.com/riskibarqy/school-tournament/internal/platform/id"
	"github.com/riskibarqy/school-tournament/internal/platform/logging"
	"github.com/riskibarqy/school-tournament/internal/usecase"
)

type envelope[T any] struct {
	APIVersion string           `json:"apiVersion"`
	Data       T                `json:"data"`
	Error      *googleErrorBody `json:"error"`
}

type testServer struct {
	t       *testing.T
	handler http.Handler
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	logger := logging.NewNop()
	clock := clockwork.NewFakeClockAt(time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC))
	sports := memory.NewSportRepository(sport.Defaults())
	teams := memory.NewTeamRepository(nil)
	tournaments := memory.NewTournamentRepository(nil)
	matches := memory.NewMatchRepository(nil)
	actions := memory.NewDisciplineRepository(nil)

	standings := usecase.NewStandingService(tournaments, teams, matches, cache.NewStoreWithClock(time.Minute, clock), 2, logger)
	auth := usecase.NewAuthService(memory.NewSessionRepository(), id.NewUUIDGenerator(), clock, logger)
	handler := NewHandler(Services{
		Auth:       auth,
		Sports:     usecase.NewSportService(sports, teams, tournaments),
		Teams:      usecase.NewTeamService(teams, sports, tournaments, standings, clock, logger),
		Tournament: usecase.NewTournamentService(tournaments, sports, teams, matches, actions, standings, clock, logger),
		Matches:    usecase.NewMatchService(matches, tournaments, teams, standings, clock, logger),
		Standings:  standings,
		Discipline: usecase.NewDisciplineService(actions, tournaments, teams, clock, logger),
		Dashboard:  usecase.NewDashboardService(sports, tournaments, teams, matches, actions),
	}, logger)

	return &testServer{t: t, handler: NewRouter(handler, auth, logger, []string{"*"})}
}

func (s *testServer) do(method, path, token string, body any) *httptest.ResponseRecorder {
	s.t.Helper()

	var payload []byte
	if body != nil {
		raw, err := sonic.Marshal(body)
		require.NoError(s.t, err)
		payload = raw
	}
	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

func (s *testServer) login(role string) string {
	s.t.Helper()

	rec := s.do(http.MethodPost, "/v1/auth/login", "", map[string]string{
		"username": "profe-" + role,
		"password": "x",
		"role":     role,
	})
	require.Equal(s.t, http.StatusOK, rec.Code, rec.Body.String())
	return decode[sessionDTO](s.t, rec).Token
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var body envelope[T]
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
	return body.Data
}

func errorStatus(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var body envelope[any]
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
	require.NotNil(t, body.Error, rec.Body.String())
	return body.Error.Status
}

func TestRouter_HealthAndAuth(t *testing.T) {
	srv := newTestServer(t)

	rec := srv.do(http.MethodGet, "/healthz", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = srv.do(http.MethodGet, "/v1/tournaments", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "UNAUTHENTICATED", errorStatus(t, rec))

	rec = srv.do(http.MethodPost, "/v1/auth/login", "", map[string]string{"username": "ana", "password": "x", "role": "owner"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	token := srv.login("viewer")
	rec = srv.do(http.MethodGet, "/v1/auth/me", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	me := decode[sessionDTO](t, rec)
	assert.Equal(t, "viewer", me.Role)
	assert.Empty(t, me.Token)

	rec = srv.do(http.MethodPost, "/v1/auth/logout", token, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	rec = srv.do(http.MethodGet, "/v1/auth/me", token, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRouter_ViewerCannotAdminister(t *testing.T) {
	srv := newTestServer(t)
	viewer := srv.login("viewer")

	rec := srv.do(http.MethodGet, "/v1/tournaments", viewer, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = srv.do(http.MethodGet, "/v1/sports", viewer, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "PERMISSION_DENIED", errorStatus(t, rec))

	rec = srv.do(http.MethodPost, "/v1/tournaments", viewer, map[string]any{"name": "Copa", "sportId": 1, "startDate": "2024-03-01"})
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRouter_TournamentLifecycle(t *testing.T) {
	srv := newTestServer(t)
	admin := srv.login("admin")

	rec := srv.do(http.MethodGet, "/v1/sports", admin, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]sportDTO](t, rec), 5)

	teamIDs := make([]int64, 0, 3)
	for _, name := range []string{"A", "B", "C"} {
		rec = srv.do(http.MethodPost, "/v1/teams", admin, map[string]any{
			"name": name, "grade": "5A", "sportId": 1,
			"players": []map[string]string{{"name": name + "-1"}},
		})
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		created := decode[teamDTO](t, rec)
		assert.Equal(t, "1", created.Players[0].Number)
		teamIDs = append(teamIDs, created.ID)
	}

	rec = srv.do(http.MethodPost, "/v1/tournaments", admin, map[string]any{
		"name": "Copa Primavera", "sportId": 1, "startDate": "2024-03-01", "endDate": "2024-03-31",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	cup := decode[tournamentDTO](t, rec)
	assert.Equal(t, "upcoming", cup.Status)
	assert.Equal(t, "2024-03-31", cup.EndDate)

	rec = srv.do(http.MethodPost, "/v1/tournaments/1/matches/round-robin", admin, nil)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	generated := decode[[]matchDTO](t, rec)
	require.Len(t, generated, 3)
	assert.Equal(t, "2024-03-01", generated[0].Date)
	assert.Equal(t, "14:00", generated[0].Time)
	assert.Equal(t, "Cancha Principal", generated[0].Location)
	assert.Equal(t, "Fase de Grupos", generated[0].Round)
	assert.Nil(t, generated[0].Score1)

	for i, score := range [][2]int{{2, 1}, {0, 0}, {1, 3}} {
		rec = srv.do(http.MethodPut, "/v1/matches/"+itoa(generated[i].ID)+"/score", admin, map[string]int{"score1": score[0], "score2": score[1]})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	}

	viewer := srv.login("viewer")
	rec = srv.do(http.MethodGet, "/v1/tournaments/1/standings", viewer, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	rows := decode[[]standingDTO](t, rec)
	require.Len(t, rows, 3)
	assert.Equal(t, []int64{teamIDs[2], teamIDs[0], teamIDs[1]}, []int64{rows[0].TeamID, rows[1].TeamID, rows[2].TeamID})
	assert.Equal(t, 4, rows[0].Points)

	rec = srv.do(http.MethodGet, "/v1/tournaments/99/standings", viewer, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decode[[]standingDTO](t, rec))

	rec = srv.do(http.MethodGet, "/v1/dashboard", viewer, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	dash := decode[dashboardDTO](t, rec)
	assert.Equal(t, 3, dash.CompletedMatches)
	assert.Equal(t, 3, dash.Teams)
}

func TestRouter_ErrorMapping(t *testing.T) {
	srv := newTestServer(t)
	admin := srv.login("admin")

	rec := srv.do(http.MethodPost, "/v1/tournaments", admin, map[string]any{"name": "Copa Tenis", "sportId": 5, "startDate": "2024-03-01"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = srv.do(http.MethodPost, "/v1/tournaments/1/matches/round-robin", admin, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "FAILED_PRECONDITION", errorStatus(t, rec))

	rec = srv.do(http.MethodPost, "/v1/sports", admin, map[string]any{"name": "Ajedrez", "icon": "♟", "maxPlayers": 1, "color": "red"})
	assert.Equal(t, http.StatusBadRequest, rec.Code, "unknown fields are rejected")

	rec = srv.do(http.MethodPost, "/v1/tournaments", admin, map[string]any{"name": "Copa", "sportId": 1, "startDate": "01/03/2024"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = srv.do(http.MethodGet, "/v1/teams/abc", admin, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = srv.do(http.MethodGet, "/v1/teams/42", admin, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = srv.do(http.MethodPost, "/v1/matches", admin, map[string]any{"tournamentId": 1, "team1Id": 1, "team2Id": 1, "date": "2024-03-02"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRouter_DisciplineSummary(t *testing.T) {
	srv := newTestServer(t)
	admin := srv.login("admin")

	rec := srv.do(http.MethodPost, "/v1/teams", admin, map[string]any{"name": "Tigres", "grade": "5A", "sportId": 1})
	require.Equal(t, http.StatusCreated, rec.Code)
	rec = srv.do(http.MethodPost, "/v1/tournaments", admin, map[string]any{"name": "Copa", "sportId": 1, "startDate": "2024-03-01"})
	require.Equal(t, http.StatusCreated, rec.Code)

	for _, kind := range []string{"yellow_card", "yellow_card", "red_card"} {
		rec = srv.do(http.MethodPost, "/v1/disciplinary-actions", admin, map[string]any{
			"tournamentId": 1, "teamId": 1, "playerName": "Ana", "actionType": kind, "matchDate": "2024-03-02",
		})
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	}

	viewer := srv.login("viewer")
	rec = srv.do(http.MethodGet, "/v1/disciplinary-actions/summary?tournament_id=1", viewer, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	summary := decode[[]playerSummaryDTO](t, rec)
	require.Len(t, summary, 1)
	assert.Equal(t, 2, summary[0].YellowCards)
	assert.Equal(t, 1, summary[0].RedCards)
	assert.Equal(t, 3, summary[0].Total)

	rec = srv.do(http.MethodDelete, "/v1/disciplinary-actions/1", viewer, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	rec = srv.do(http.MethodDelete, "/v1/disciplinary-actions/1", admin, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func itoa(v int64) string {
	return strconv.FormatInt(v, 10)
}
