// Command snapshot copies the import tables from Postgres into the SQLite
// file the API falls back to when Postgres is unreachable.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/AlejandroRodriguezIT/plataforma-penafiel/internal/app"
	"github.com/AlejandroRodriguezIT/plataforma-penafiel/internal/config"
	"github.com/AlejandroRodriguezIT/plataforma-penafiel/internal/infrastructure/repository/sqlstore"
	"github.com/AlejandroRodriguezIT/plataforma-penafiel/internal/platform/logging"
)

func main() {
	out := flag.String("out", "", "snapshot file to write (default SNAPSHOT_PATH)")
	timeout := flag.Duration("timeout", 5*time.Minute, "overall export timeout")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	logger := logging.New(cfg.AppEnv, cfg.LogLevel).Named("snapshot")
	defer func() { _ = logger.Sync() }()

	path := strings.TrimSpace(*out)
	if path == "" {
		path = cfg.SnapshotPath
	}
	if path == "" {
		logger.Error("no snapshot path: pass -out or set SNAPSHOT_PATH")
		_ = logger.Sync()
		os.Exit(2)
	}
	if cfg.DBURL == "" {
		logger.Error("DB_URL is required")
		_ = logger.Sync()
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, *timeout)
	defer cancel()

	stats, err := export(ctx, cfg, path, logger)
	if err != nil {
		logger.Error("snapshot export failed", "error", err)
		_ = logger.Sync()
		os.Exit(1)
	}
	logger.Info("snapshot written",
		"path", path,
		"match_rows", stats.Matches,
		"training_rows", stats.Training,
		"results", stats.Results,
		"team_averages", stats.TeamAverages,
	)
}

// export writes into a sibling temp file and renames it over path, so a
// running API never reads a half-written snapshot.
func export(ctx context.Context, cfg config.Config, path string, logger *logging.Logger) (sqlstore.SnapshotStats, error) {
	source, err := app.OpenPostgres(ctx, cfg, logger)
	if err != nil {
		return sqlstore.SnapshotStats{}, err
	}
	defer func() { _ = source.DB().Close() }()

	snap, err := source.ReadSnapshot(ctx)
	if err != nil {
		return sqlstore.SnapshotStats{}, err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return sqlstore.SnapshotStats{}, fmt.Errorf("create snapshot dir: %w", err)
	}
	tmp := path + ".tmp"
	_ = os.Remove(tmp)

	target, err := app.OpenSnapshot(tmp, true, logger)
	if err != nil {
		return sqlstore.SnapshotStats{}, err
	}
	writeErr := func() error {
		if err := target.EnsureSchema(ctx); err != nil {
			return err
		}
		return target.WriteSnapshot(ctx, snap)
	}()
	if err := target.DB().Close(); err != nil && writeErr == nil {
		writeErr = fmt.Errorf("close snapshot: %w", err)
	}
	if writeErr != nil {
		_ = os.Remove(tmp)
		return sqlstore.SnapshotStats{}, writeErr
	}

	if err := os.Rename(tmp, path); err != nil {
		return sqlstore.SnapshotStats{}, fmt.Errorf("replace snapshot: %w", err)
	}
	return snap.Stats(), nil
}
