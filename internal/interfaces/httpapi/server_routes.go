package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerAuthRoutes(mux *http.ServeMux, handler *Handler, verifier SessionVerifier) {
	mux.HandleFunc("POST /v1/auth/login", handler.Login)
	mux.Handle("POST /v1/auth/logout", RequireAuth(verifier, http.HandlerFunc(handler.Logout)))
	mux.Handle("GET /v1/auth/me", RequireAuth(verifier, http.HandlerFunc(handler.Me)))
}

// registerViewerRoutes exposes the read views open to every logged-in role.
func registerViewerRoutes(mux *http.ServeMux, handler *Handler, verifier SessionVerifier) {
	mux.Handle("GET /v1/dashboard", RequireAuth(verifier, http.HandlerFunc(handler.GetDashboard)))
	mux.Handle("GET /v1/tournaments", RequireAuth(verifier, http.HandlerFunc(handler.ListTournaments)))
	mux.Handle("GET /v1/tournaments/{tournamentID}", RequireAuth(verifier, http.HandlerFunc(handler.GetTournament)))
	mux.Handle("GET /v1/tournaments/{tournamentID}/standings", RequireAuth(verifier, http.HandlerFunc(handler.ListStandings)))
	mux.Handle("GET /v1/standings/leaders", RequireAuth(verifier, http.HandlerFunc(handler.ListLeaders)))
	mux.Handle("GET /v1/disciplinary-actions", RequireAuth(verifier, http.HandlerFunc(handler.ListDisciplinaryActions)))
	mux.Handle("GET /v1/disciplinary-actions/summary", RequireAuth(verifier, http.HandlerFunc(handler.GetDisciplineSummary)))
}

func registerAdminRoutes(mux *http.ServeMux, handler *Handler, verifier SessionVerifier) {
	registerAdminSportRoutes(mux, handler, verifier)
	registerAdminTeamRoutes(mux, handler, verifier)
	registerAdminTournamentRoutes(mux, handler, verifier)
	registerAdminMatchRoutes(mux, handler, verifier)
	registerAdminDisciplineRoutes(mux, handler, verifier)
}

func registerAdminSportRoutes(mux *http.ServeMux, handler *Handler, verifier SessionVerifier) {
	mux.Handle("GET /v1/sports", RequireAdmin(verifier, http.HandlerFunc(handler.ListSports)))
	mux.Handle("POST /v1/sports", RequireAdmin(verifier, http.HandlerFunc(handler.CreateSport)))
	mux.Handle("GET /v1/sports/{sportID}", RequireAdmin(verifier, http.HandlerFunc(handler.GetSport)))
	mux.Handle("PUT /v1/sports/{sportID}", RequireAdmin(verifier, http.HandlerFunc(handler.UpdateSport)))
	mux.Handle("DELETE /v1/sports/{sportID}", RequireAdmin(verifier, http.HandlerFunc(handler.DeleteSport)))
}

func registerAdminTeamRoutes(mux *http.ServeMux, handler *Handler, verifier SessionVerifier) {
	mux.Handle("GET /v1/teams", RequireAdmin(verifier, http.HandlerFunc(handler.ListTeams)))
	mux.Handle("POST /v1/teams", RequireAdmin(verifier, http.HandlerFunc(handler.CreateTeam)))
	mux.Handle("GET /v1/teams/{teamID}", RequireAdmin(verifier, http.HandlerFunc(handler.GetTeam)))
	mux.Handle("PUT /v1/teams/{teamID}", RequireAdmin(verifier, http.HandlerFunc(handler.UpdateTeam)))
	mux.Handle("DELETE /v1/teams/{teamID}", RequireAdmin(verifier, http.HandlerFunc(handler.DeleteTeam)))
	mux.Handle("POST /v1/teams/{teamID}/players", RequireAdmin(verifier, http.HandlerFunc(handler.AddPlayer)))
	mux.Handle("DELETE /v1/teams/{teamID}/players/{playerID}", RequireAdmin(verifier, http.HandlerFunc(handler.RemovePlayer)))
}

func registerAdminTournamentRoutes(mux *http.ServeMux, handler *Handler, verifier SessionVerifier) {
	mux.Handle("POST /v1/tournaments", RequireAdmin(verifier, http.HandlerFunc(handler.CreateTournament)))
	mux.Handle("PUT /v1/tournaments/{tournamentID}", RequireAdmin(verifier, http.HandlerFunc(handler.UpdateTournament)))
	mux.Handle("DELETE /v1/tournaments/{tournamentID}", RequireAdmin(verifier, http.HandlerFunc(handler.DeleteTournament)))
	mux.Handle("PUT /v1/tournaments/{tournamentID}/status", RequireAdmin(verifier, http.HandlerFunc(handler.SetTournamentStatus)))
	mux.Handle("POST /v1/tournaments/{tournamentID}/teams/{teamID}", RequireAdmin(verifier, http.HandlerFunc(handler.RegisterTeam)))
	mux.Handle("DELETE /v1/tournaments/{tournamentID}/teams/{teamID}", RequireAdmin(verifier, http.HandlerFunc(handler.UnregisterTeam)))
	mux.Handle("POST /v1/tournaments/{tournamentID}/matches/round-robin", RequireAdmin(verifier, http.HandlerFunc(handler.GenerateRoundRobin)))
}

func registerAdminMatchRoutes(mux *http.ServeMux, handler *Handler, verifier SessionVerifier) {
	mux.Handle("GET /v1/matches", RequireAdmin(verifier, http.HandlerFunc(handler.ListMatches)))
	mux.Handle("POST /v1/matches", RequireAdmin(verifier, http.HandlerFunc(handler.ScheduleMatch)))
	mux.Handle("GET /v1/matches/{matchID}", RequireAdmin(verifier, http.HandlerFunc(handler.GetMatch)))
	mux.Handle("PUT /v1/matches/{matchID}/score", RequireAdmin(verifier, http.HandlerFunc(handler.RecordScore)))
	mux.Handle("PUT /v1/matches/{matchID}/status", RequireAdmin(verifier, http.HandlerFunc(handler.SetMatchStatus)))
	mux.Handle("DELETE /v1/matches/{matchID}", RequireAdmin(verifier, http.HandlerFunc(handler.DeleteMatch)))
}

func registerAdminDisciplineRoutes(mux *http.ServeMux, handler *Handler, verifier SessionVerifier) {
	mux.Handle("POST /v1/disciplinary-actions", RequireAdmin(verifier, http.HandlerFunc(handler.RecordDisciplinaryAction)))
	mux.Handle("DELETE /v1/disciplinary-actions/{actionID}", RequireAdmin(verifier, http.HandlerFunc(handler.DeleteDisciplinaryAction)))
}
