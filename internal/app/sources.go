package app

import (
	"context"
	"fmt"
	"time"

	"github.com/AlejandroRodriguezIT/plataforma-penafiel/internal/config"
	"github.com/AlejandroRodriguezIT/plataforma-penafiel/internal/domain/league"
	"github.com/AlejandroRodriguezIT/plataforma-penafiel/internal/domain/outcome"
	"github.com/AlejandroRodriguezIT/plataforma-penafiel/internal/domain/telemetry"
	cacherepo "github.com/AlejandroRodriguezIT/plataforma-penafiel/internal/infrastructure/repository/cache"
	"github.com/AlejandroRodriguezIT/plataforma-penafiel/internal/infrastructure/repository/fallback"
	"github.com/AlejandroRodriguezIT/plataforma-penafiel/internal/infrastructure/repository/guard"
	"github.com/AlejandroRodriguezIT/plataforma-penafiel/internal/infrastructure/repository/memory"
	"github.com/AlejandroRodriguezIT/plataforma-penafiel/internal/infrastructure/repository/sqlstore"
	"github.com/AlejandroRodriguezIT/plataforma-penafiel/internal/platform/cache"
	"github.com/AlejandroRodriguezIT/plataforma-penafiel/internal/platform/logging"
	"github.com/AlejandroRodriguezIT/plataforma-penafiel/internal/platform/metrics"
	"github.com/AlejandroRodriguezIT/plataforma-penafiel/internal/platform/resilience"
	"github.com/AlejandroRodriguezIT/plataforma-penafiel/internal/usecase"
	_ "github.com/glebarez/go-sqlite"
	_ "github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
)

// repositories is the read side the services are built on.
type repositories struct {
	matches   telemetry.MatchRepository
	training  telemetry.TrainingRepository
	results   outcome.Repository
	league    league.Repository
	snapshots usecase.SnapshotCache
	pingers   []usecase.Pinger
	closers   []func() error
}

type sourceRepositories struct {
	matches  telemetry.MatchRepository
	training telemetry.TrainingRepository
	results  outcome.Repository
	league   league.Repository
}

// OpenPostgres opens the traced Postgres handle of the import database.
func OpenPostgres(ctx context.Context, cfg config.Config, logger *logging.Logger) (*sqlstore.Store, error) {
	dsn := normalizeDBURL(cfg.DBURL, cfg.ServiceName, cfg.SourceQueryTimeout)
	db, err := otelsqlx.Open("postgres", dsn,
		otelsql.WithDBSystem("postgresql"),
		otelsql.WithDBName(dbNameFromURL(cfg.DBURL)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxIdleTime(5 * time.Minute)

	store := sqlstore.New(db, sqlstore.Postgres, logger)
	pingCtx, cancel := context.WithTimeout(ctx, cfg.SourceQueryTimeout)
	defer cancel()
	if err := store.Ping(pingCtx); err != nil {
		// The breaker and the snapshot fallback handle an unreachable
		// database; startup only reports it.
		logger.WarnContext(ctx, "postgres not reachable at startup", "error", err)
	}
	return store, nil
}

// OpenSnapshot opens the SQLite snapshot file.
func OpenSnapshot(path string, writable bool, logger *logging.Logger) (*sqlstore.Store, error) {
	db, err := otelsqlx.Open("sqlite", sqliteDSN(path, writable),
		otelsql.WithDBSystem("sqlite"),
		otelsql.WithDBName(path),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, fmt.Errorf("open snapshot %s: %w", path, err)
	}
	db.SetMaxOpenConns(1)
	return sqlstore.New(db, sqlstore.SQLite, logger), nil
}

func buildRepositories(ctx context.Context, cfg config.Config, registry *metrics.Registry, logger *logging.Logger) (repositories, error) {
	var (
		out     repositories
		current sourceRepositories
	)

	switch cfg.DataSource {
	case config.SourceMemory:
		current = sourceRepositories{
			matches:  memory.NewMatchRepository(memory.SeedMatchRows()),
			training: memory.NewTrainingRepository(memory.SeedTrainingRows()),
			results:  memory.NewResultRepository(memory.SeedResults()),
			league:   memory.NewTeamAverageRepository(memory.SeedTeamAverages()),
		}
		logger.Info("serving seeded in-memory data", "highlight_team", cfg.HighlightTeam)

	case config.SourceSQLite:
		store, err := OpenSnapshot(cfg.SnapshotPath, false, logger)
		if err != nil {
			return repositories{}, err
		}
		out.closers = append(out.closers, store.DB().Close)
		out.pingers = append(out.pingers, store)
		current = guarded(store, newSource(cfg, store.Name(), registry, logger))

	case config.SourcePostgres:
		store, err := OpenPostgres(ctx, cfg, logger)
		if err != nil {
			return repositories{}, err
		}
		out.closers = append(out.closers, store.DB().Close)
		out.pingers = append(out.pingers, store)
		current = guarded(store, newSource(cfg, store.Name(), registry, logger))

		if cfg.SnapshotPath != "" {
			snapshot, err := OpenSnapshot(cfg.SnapshotPath, false, logger)
			if err != nil {
				out.close(logger)
				return repositories{}, err
			}
			out.closers = append(out.closers, snapshot.DB().Close)
			out.pingers = append(out.pingers, snapshot)
			secondary := guarded(snapshot, newSource(cfg, snapshot.Name(), registry, logger))
			current = sourceRepositories{
				matches:  fallback.NewMatchRepository(current.matches, secondary.matches, logger),
				training: fallback.NewTrainingRepository(current.training, secondary.training, logger),
				results:  fallback.NewResultRepository(current.results, secondary.results, logger),
				league:   fallback.NewTeamAverageRepository(current.league, secondary.league, logger),
			}
			logger.Info("snapshot fallback enabled", "path", cfg.SnapshotPath)
		}

	default:
		return repositories{}, fmt.Errorf("unsupported data source %q", cfg.DataSource)
	}

	if cfg.CacheEnabled {
		store := cache.NewStore(cfg.CacheTTL).WithObserver(registry)
		current = sourceRepositories{
			matches:  cacherepo.NewMatchRepository(current.matches, store),
			training: cacherepo.NewTrainingRepository(current.training, store),
			results:  cacherepo.NewResultRepository(current.results, store),
			league:   cacherepo.NewTeamAverageRepository(current.league, store),
		}
		out.snapshots = cacherepo.NewSnapshots(store)
	}

	out.matches = current.matches
	out.training = current.training
	out.results = current.results
	out.league = current.league
	return out, nil
}

func newSource(cfg config.Config, name string, registry *metrics.Registry, logger *logging.Logger) *guard.Source {
	opts := []guard.Option{guard.WithObserver(registry), guard.WithLogger(logger)}
	if breaker := resilience.NewCircuitBreakerFromConfig(cfg.SourceCircuit); breaker != nil {
		breaker.Named(name).OnStateChange(func(source string, from, to resilience.CircuitState) {
			registry.SetBreakerOpen(source, to == resilience.CircuitStateOpen)
			logger.Warn("source circuit changed", "source", source, "from", string(from), "to", string(to))
		})
		opts = append(opts, guard.WithBreaker(breaker))
	}
	return guard.NewSource(name, cfg.SourceQueryTimeout, opts...)
}

func guarded(store *sqlstore.Store, source *guard.Source) sourceRepositories {
	return sourceRepositories{
		matches:  guard.NewMatchRepository(sqlstore.NewMatchRepository(store), source),
		training: guard.NewTrainingRepository(sqlstore.NewTrainingRepository(store), source),
		results:  guard.NewResultRepository(sqlstore.NewResultRepository(store), source),
		league:   guard.NewTeamAverageRepository(sqlstore.NewTeamAverageRepository(store), source),
	}
}

func (r repositories) close(logger *logging.Logger) {
	for i := len(r.closers) - 1; i >= 0; i-- {
		if err := r.closers[i](); err != nil {
			logger.Warn("close data source", "error", err)
		}
	}
}
