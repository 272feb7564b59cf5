package app

import (
	"fmt"
	"net/http"

	"github.com/jonboulle/clockwork"

	"github.com/riskibarqy/school-tournament/internal/config"
	"github.com/riskibarqy/school-tournament/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/school-tournament/internal/interfaces/httpapi"
	"github.com/riskibarqy/school-tournament/internal/platform/cache"
	idgen "github.com/riskibarqy/school-tournament/internal/platform/id"
	"github.com/riskibarqy/school-tournament/internal/platform/logging"
	"github.com/riskibarqy/school-tournament/internal/usecase"
)

// NewHTTPServer builds the storage layer selected by cfg, the services on top
// of it and the HTTP server. The returned cleanup releases storage resources
// and must be called after the server stops.
func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, func() error, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	var store *cache.Store
	if cfg.CacheEnabled {
		store = cache.NewStore(cfg.CacheTTL)
	}

	repos, err := openRepositories(cfg, store, logger)
	if err != nil {
		return nil, nil, err
	}

	clock := clockwork.NewRealClock()
	standingSvc := usecase.NewStandingService(repos.tournaments, repos.teams, repos.matches, store, cfg.StandingsWorkers, logger)
	authSvc := usecase.NewAuthService(memory.NewSessionRepository(), idgen.NewUUIDGenerator(), clock, logger)

	handler := httpapi.NewHandler(httpapi.Services{
		Auth:       authSvc,
		Sports:     usecase.NewSportService(repos.sports, repos.teams, repos.tournaments),
		Teams:      usecase.NewTeamService(repos.teams, repos.sports, repos.tournaments, standingSvc, clock, logger),
		Tournament: usecase.NewTournamentService(repos.tournaments, repos.sports, repos.teams, repos.matches, repos.discipline, standingSvc, clock, logger),
		Matches:    usecase.NewMatchService(repos.matches, repos.tournaments, repos.teams, standingSvc, clock, logger),
		Standings:  standingSvc,
		Discipline: usecase.NewDisciplineService(repos.discipline, repos.tournaments, repos.teams, clock, logger),
		Dashboard:  usecase.NewDashboardService(repos.sports, repos.tournaments, repos.teams, repos.matches, repos.discipline),
	}, logger)
	router := httpapi.NewRouter(handler, authSvc, logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	logger.Info("http server configured",
		"storage_driver", cfg.StorageDriver,
		"cache_enabled", cfg.CacheEnabled,
		"standings_workers", cfg.StandingsWorkers,
	)

	return server, repos.close, nil
}
