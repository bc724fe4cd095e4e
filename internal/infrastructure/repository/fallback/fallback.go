// Package fallback serves reads from a secondary source, typically the
// SQLite snapshot, when the primary source is unavailable or empty.
package fallback

import (
	"context"
	"errors"

	"github.com/AlejandroRodriguezIT/plataforma-penafiel/internal/domain/league"
	"github.com/AlejandroRodriguezIT/plataforma-penafiel/internal/domain/outcome"
	"github.com/AlejandroRodriguezIT/plataforma-penafiel/internal/domain/telemetry"
	"github.com/AlejandroRodriguezIT/plataforma-penafiel/internal/platform/logging"
	"github.com/AlejandroRodriguezIT/plataforma-penafiel/internal/usecase"
)

func read[T any](ctx context.Context, logger *logging.Logger, dataset string, primary, secondary func(context.Context) ([]T, error)) ([]T, error) {
	rows, err := primary(ctx)
	switch {
	case err == nil && len(rows) > 0:
		return rows, nil
	case err != nil && !errors.Is(err, usecase.ErrDependencyUnavailable):
		return nil, err
	}

	reason := "empty"
	if err != nil {
		reason = "unavailable"
	}
	logger.WarnContext(ctx, "serving dataset from fallback source", "dataset", dataset, "reason", reason)

	fallbackRows, fallbackErr := secondary(ctx)
	if fallbackErr != nil {
		if err != nil {
			return nil, err
		}
		return nil, fallbackErr
	}
	return fallbackRows, nil
}

type MatchRepository struct {
	primary   telemetry.MatchRepository
	secondary telemetry.MatchRepository
	logger    *logging.Logger
}

func NewMatchRepository(primary, secondary telemetry.MatchRepository, logger *logging.Logger) *MatchRepository {
	if logger == nil {
		logger = logging.Default()
	}
	return &MatchRepository{primary: primary, secondary: secondary, logger: logger}
}

func (r *MatchRepository) ListMatchRows(ctx context.Context, filter telemetry.MatchFilter) ([]telemetry.MatchRow, error) {
	return read(ctx, r.logger, "match_rows",
		func(ctx context.Context) ([]telemetry.MatchRow, error) { return r.primary.ListMatchRows(ctx, filter) },
		func(ctx context.Context) ([]telemetry.MatchRow, error) { return r.secondary.ListMatchRows(ctx, filter) },
	)
}

type TrainingRepository struct {
	primary   telemetry.TrainingRepository
	secondary telemetry.TrainingRepository
	logger    *logging.Logger
}

func NewTrainingRepository(primary, secondary telemetry.TrainingRepository, logger *logging.Logger) *TrainingRepository {
	if logger == nil {
		logger = logging.Default()
	}
	return &TrainingRepository{primary: primary, secondary: secondary, logger: logger}
}

func (r *TrainingRepository) ListTrainingRows(ctx context.Context, filter telemetry.TrainingFilter) ([]telemetry.TrainingRow, error) {
	return read(ctx, r.logger, "training_rows",
		func(ctx context.Context) ([]telemetry.TrainingRow, error) { return r.primary.ListTrainingRows(ctx, filter) },
		func(ctx context.Context) ([]telemetry.TrainingRow, error) { return r.secondary.ListTrainingRows(ctx, filter) },
	)
}

type ResultRepository struct {
	primary   outcome.Repository
	secondary outcome.Repository
	logger    *logging.Logger
}

func NewResultRepository(primary, secondary outcome.Repository, logger *logging.Logger) *ResultRepository {
	if logger == nil {
		logger = logging.Default()
	}
	return &ResultRepository{primary: primary, secondary: secondary, logger: logger}
}

func (r *ResultRepository) ListResults(ctx context.Context) ([]outcome.Result, error) {
	return read(ctx, r.logger, "results", r.primary.ListResults, r.secondary.ListResults)
}

type TeamAverageRepository struct {
	primary   league.Repository
	secondary league.Repository
	logger    *logging.Logger
}

func NewTeamAverageRepository(primary, secondary league.Repository, logger *logging.Logger) *TeamAverageRepository {
	if logger == nil {
		logger = logging.Default()
	}
	return &TeamAverageRepository{primary: primary, secondary: secondary, logger: logger}
}

func (r *TeamAverageRepository) ListTeamAverages(ctx context.Context) ([]league.TeamAverage, error) {
	return read(ctx, r.logger, "team_averages", r.primary.ListTeamAverages, r.secondary.ListTeamAverages)
}
