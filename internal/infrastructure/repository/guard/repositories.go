package guard

import (
	"context"

	"github.com/AlejandroRodriguezIT/plataforma-penafiel/internal/domain/league"
	"github.com/AlejandroRodriguezIT/plataforma-penafiel/internal/domain/outcome"
	"github.com/AlejandroRodriguezIT/plataforma-penafiel/internal/domain/telemetry"
)

type MatchRepository struct {
	next   telemetry.MatchRepository
	source *Source
}

func NewMatchRepository(next telemetry.MatchRepository, source *Source) *MatchRepository {
	return &MatchRepository{next: next, source: source}
}

func (r *MatchRepository) ListMatchRows(ctx context.Context, filter telemetry.MatchFilter) ([]telemetry.MatchRow, error) {
	return call(ctx, r.source, "match_rows", func(ctx context.Context) ([]telemetry.MatchRow, error) {
		return r.next.ListMatchRows(ctx, filter)
	})
}

type TrainingRepository struct {
	next   telemetry.TrainingRepository
	source *Source
}

func NewTrainingRepository(next telemetry.TrainingRepository, source *Source) *TrainingRepository {
	return &TrainingRepository{next: next, source: source}
}

func (r *TrainingRepository) ListTrainingRows(ctx context.Context, filter telemetry.TrainingFilter) ([]telemetry.TrainingRow, error) {
	return call(ctx, r.source, "training_rows", func(ctx context.Context) ([]telemetry.TrainingRow, error) {
		return r.next.ListTrainingRows(ctx, filter)
	})
}

type ResultRepository struct {
	next   outcome.Repository
	source *Source
}

func NewResultRepository(next outcome.Repository, source *Source) *ResultRepository {
	return &ResultRepository{next: next, source: source}
}

func (r *ResultRepository) ListResults(ctx context.Context) ([]outcome.Result, error) {
	return call(ctx, r.source, "results", r.next.ListResults)
}

type TeamAverageRepository struct {
	next   league.Repository
	source *Source
}

func NewTeamAverageRepository(next league.Repository, source *Source) *TeamAverageRepository {
	return &TeamAverageRepository{next: next, source: source}
}

func (r *TeamAverageRepository) ListTeamAverages(ctx context.Context) ([]league.TeamAverage, error) {
	return call(ctx, r.source, "team_averages", r.next.ListTeamAverages)
}
