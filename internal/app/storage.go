package app

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"

	"github.com/riskibarqy/school-tournament/internal/config"
	"github.com/riskibarqy/school-tournament/internal/domain/discipline"
	"github.com/riskibarqy/school-tournament/internal/domain/match"
	"github.com/riskibarqy/school-tournament/internal/domain/sport"
	"github.com/riskibarqy/school-tournament/internal/domain/team"
	"github.com/riskibarqy/school-tournament/internal/domain/tournament"
	cacherepo "github.com/riskibarqy/school-tournament/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/school-tournament/internal/infrastructure/repository/filestore"
	"github.com/riskibarqy/school-tournament/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/school-tournament/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/school-tournament/internal/platform/cache"
	"github.com/riskibarqy/school-tournament/internal/platform/logging"
)

type repositories struct {
	sports      sport.Repository
	teams       team.Repository
	tournaments tournament.Repository
	matches     match.Repository
	discipline  discipline.Repository
	close       func() error
}

func openRepositories(cfg config.Config, store *cache.Store, logger *logging.Logger) (repositories, error) {
	var (
		repos repositories
		err   error
	)
	switch cfg.StorageDriver {
	case config.StorageMemory, "":
		repos = memoryRepositories()
	case config.StorageFile:
		repos, err = fileRepositories(cfg.DataDir)
	case config.StoragePostgres:
		repos, err = postgresRepositories(cfg)
	default:
		err = fmt.Errorf("unsupported storage driver %q", cfg.StorageDriver)
	}
	if err != nil {
		return repositories{}, err
	}

	if store != nil {
		repos.sports = cacherepo.NewSportRepository(repos.sports, store)
		repos.teams = cacherepo.NewTeamRepository(repos.teams, store)
	}

	logger.Info("storage opened", "driver", cfg.StorageDriver)
	return repos, nil
}

func memoryRepositories() repositories {
	return repositories{
		sports:      memory.NewSportRepository(memory.SeedSports()),
		teams:       memory.NewTeamRepository(nil),
		tournaments: memory.NewTournamentRepository(nil),
		matches:     memory.NewMatchRepository(nil),
		discipline:  memory.NewDisciplineRepository(nil),
		close:       func() error { return nil },
	}
}

func fileRepositories(dir string) (repositories, error) {
	store, err := filestore.NewStore(dir)
	if err != nil {
		return repositories{}, err
	}
	repos, err := filestore.Open(store)
	if err != nil {
		return repositories{}, fmt.Errorf("open snapshot store: %w", err)
	}

	return repositories{
		sports:      repos.Sports,
		teams:       repos.Teams,
		tournaments: repos.Tournaments,
		matches:     repos.Matches,
		discipline:  repos.Discipline,
		close:       func() error { return nil },
	}, nil
}

func postgresRepositories(cfg config.Config) (repositories, error) {
	db, err := openDB(cfg)
	if err != nil {
		return repositories{}, err
	}

	return repositories{
		sports:      postgres.NewSportRepository(db),
		teams:       postgres.NewTeamRepository(db),
		tournaments: postgres.NewTournamentRepository(db),
		matches:     postgres.NewMatchRepository(db),
		discipline:  postgres.NewDisciplineRepository(db),
		close:       db.Close,
	}, nil
}

func openDB(cfg config.Config) (*sqlx.DB, error) {
	dbURL := normalizeDBURL(cfg.DBURL, dbParams{
		ApplicationName:             cfg.ServiceName,
		DisablePreparedBinaryResult: cfg.DBDisablePreparedBinary,
	})

	db, err := otelsqlx.Open("postgres", dbURL,
		otelsql.WithDBSystem("postgresql"),
		otelsql.WithDBName(dbNameFromURL(dbURL)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	return db, nil
}
