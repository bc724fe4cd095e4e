package cache

import (
	"context"
	"slices"
	"strconv"
	"strings"

	"github.com/AlejandroRodriguezIT/plataforma-penafiel/internal/domain/league"
	"github.com/AlejandroRodriguezIT/plataforma-penafiel/internal/domain/outcome"
	"github.com/AlejandroRodriguezIT/plataforma-penafiel/internal/domain/round"
	"github.com/AlejandroRodriguezIT/plataforma-penafiel/internal/domain/telemetry"
	basecache "github.com/AlejandroRodriguezIT/plataforma-penafiel/internal/platform/cache"
)

const (
	prefixMatchRows    = "match_rows"
	prefixTrainingRows = "training_rows"
	prefixResults      = "results"
	prefixTeamAverages = "team_averages"
)

var snapshotPrefixes = []string{prefixMatchRows, prefixTrainingRows, prefixResults, prefixTeamAverages}

// Snapshots invalidates every cached source snapshot held in one store.
type Snapshots struct {
	cache *basecache.Store
}

func NewSnapshots(cache *basecache.Store) *Snapshots {
	return &Snapshots{cache: cache}
}

func (s *Snapshots) Invalidate(ctx context.Context) int {
	dropped := 0
	for _, prefix := range snapshotPrefixes {
		dropped += s.cache.DeletePrefix(ctx, prefix+":")
	}
	return dropped
}

func (s *Snapshots) PurgeExpired(ctx context.Context) int {
	return s.cache.PurgeExpired(ctx)
}

type MatchRepository struct {
	next  telemetry.MatchRepository
	cache *basecache.Store
}

func NewMatchRepository(next telemetry.MatchRepository, cache *basecache.Store) *MatchRepository {
	return &MatchRepository{next: next, cache: cache}
}

func (r *MatchRepository) ListMatchRows(ctx context.Context, filter telemetry.MatchFilter) ([]telemetry.MatchRow, error) {
	key := prefixMatchRows + ":" + roundsKey(filter.Rounds) +
		":" + strings.ToLower(strings.TrimSpace(filter.Match)) +
		":" + strconv.FormatBool(filter.HalvesOnly)
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := r.next.ListMatchRows(ctx, filter)
		if err != nil {
			return nil, err
		}
		return append([]telemetry.MatchRow(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]telemetry.MatchRow)
	return append([]telemetry.MatchRow(nil), items...), nil
}

type TrainingRepository struct {
	next  telemetry.TrainingRepository
	cache *basecache.Store
}

func NewTrainingRepository(next telemetry.TrainingRepository, cache *basecache.Store) *TrainingRepository {
	return &TrainingRepository{next: next, cache: cache}
}

func (r *TrainingRepository) ListTrainingRows(ctx context.Context, filter telemetry.TrainingFilter) ([]telemetry.TrainingRow, error) {
	key := prefixTrainingRows + ":" + roundsKey(filter.Rounds) + ":" + strconv.FormatBool(filter.TotalOnly)
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := r.next.ListTrainingRows(ctx, filter)
		if err != nil {
			return nil, err
		}
		return append([]telemetry.TrainingRow(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]telemetry.TrainingRow)
	return append([]telemetry.TrainingRow(nil), items...), nil
}

type ResultRepository struct {
	next  outcome.Repository
	cache *basecache.Store
}

func NewResultRepository(next outcome.Repository, cache *basecache.Store) *ResultRepository {
	return &ResultRepository{next: next, cache: cache}
}

func (r *ResultRepository) ListResults(ctx context.Context) ([]outcome.Result, error) {
	v, err := r.cache.GetOrLoad(ctx, prefixResults+":all", func(ctx context.Context) (any, error) {
		items, err := r.next.ListResults(ctx)
		if err != nil {
			return nil, err
		}
		return append([]outcome.Result(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]outcome.Result)
	return append([]outcome.Result(nil), items...), nil
}

type TeamAverageRepository struct {
	next  league.Repository
	cache *basecache.Store
}

func NewTeamAverageRepository(next league.Repository, cache *basecache.Store) *TeamAverageRepository {
	return &TeamAverageRepository{next: next, cache: cache}
}

// ListTeamAverages copies metric maps too; callers may annotate them.
func (r *TeamAverageRepository) ListTeamAverages(ctx context.Context) ([]league.TeamAverage, error) {
	v, err := r.cache.GetOrLoad(ctx, prefixTeamAverages+":all", func(ctx context.Context) (any, error) {
		items, err := r.next.ListTeamAverages(ctx)
		if err != nil {
			return nil, err
		}
		return cloneTeamAverages(items), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]league.TeamAverage)
	return cloneTeamAverages(items), nil
}

func cloneTeamAverages(items []league.TeamAverage) []league.TeamAverage {
	if items == nil {
		return nil
	}
	out := make([]league.TeamAverage, len(items))
	for i, item := range items {
		metrics := make(map[string]float64, len(item.Metrics))
		for k, v := range item.Metrics {
			metrics[k] = v
		}
		out[i] = league.TeamAverage{Team: item.Team, Metrics: metrics}
	}
	return out
}

func roundsKey(ids []round.ID) string {
	if len(ids) == 0 {
		return "*"
	}
	sorted := slices.Clone(ids)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)

	parts := make([]string, len(sorted))
	for i, id := range sorted {
		parts[i] = strconv.Itoa(int(id))
	}
	return strings.Join(parts, ",")
}
