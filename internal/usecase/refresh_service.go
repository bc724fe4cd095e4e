package usecase

import (
	"context"
	"fmt"

	"github.com/AlejandroRodriguezIT/plataforma-penafiel/internal/domain/league"
	"github.com/AlejandroRodriguezIT/plataforma-penafiel/internal/domain/outcome"
	"github.com/AlejandroRodriguezIT/plataforma-penafiel/internal/domain/telemetry"
	"github.com/AlejandroRodriguezIT/plataforma-penafiel/internal/platform/logging"
	"github.com/sourcegraph/conc/pool"
)

// SnapshotCache drops cached source snapshots.
type SnapshotCache interface {
	Invalidate(ctx context.Context) int
	PurgeExpired(ctx context.Context) int
}

type RefreshResult struct {
	Invalidated  int
	MatchRows    int
	TrainingRows int
	Results      int
	Teams        int
}

// RefreshService invalidates and re-warms every source snapshot.
type RefreshService struct {
	cache    SnapshotCache
	matches  telemetry.MatchRepository
	training telemetry.TrainingRepository
	results  outcome.Repository
	league   league.Repository
	logger   *logging.Logger
}

func NewRefreshService(
	cache SnapshotCache,
	matches telemetry.MatchRepository,
	training telemetry.TrainingRepository,
	results outcome.Repository,
	leagueRepo league.Repository,
	logger *logging.Logger,
) *RefreshService {
	if logger == nil {
		logger = logging.Default()
	}
	return &RefreshService{
		cache:    cache,
		matches:  matches,
		training: training,
		results:  results,
		league:   leagueRepo,
		logger:   logger,
	}
}

func (s *RefreshService) Refresh(ctx context.Context) (RefreshResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RefreshService.Refresh")
	defer span.End()

	var out RefreshResult
	if s.cache != nil {
		out.Invalidated = s.cache.Invalidate(ctx)
	}

	p := pool.New().WithErrors().WithContext(ctx)
	p.Go(func(ctx context.Context) error {
		rows, err := s.matches.ListMatchRows(ctx, telemetry.MatchFilter{})
		if err != nil {
			return fmt.Errorf("warm match rows: %w", err)
		}
		out.MatchRows = len(rows)
		return nil
	})
	p.Go(func(ctx context.Context) error {
		rows, err := s.training.ListTrainingRows(ctx, telemetry.TrainingFilter{})
		if err != nil {
			return fmt.Errorf("warm training rows: %w", err)
		}
		out.TrainingRows = len(rows)
		return nil
	})
	p.Go(func(ctx context.Context) error {
		results, err := s.results.ListResults(ctx)
		if err != nil {
			return fmt.Errorf("warm results: %w", err)
		}
		out.Results = len(results)
		return nil
	})
	p.Go(func(ctx context.Context) error {
		rows, err := s.league.ListTeamAverages(ctx)
		if err != nil {
			return fmt.Errorf("warm team averages: %w", err)
		}
		out.Teams = len(league.Teams(rows))
		return nil
	})
	if err := p.Wait(); err != nil {
		return out, err
	}

	s.logger.InfoContext(ctx, "data refreshed",
		"invalidated", out.Invalidated,
		"match_rows", out.MatchRows,
		"training_rows", out.TrainingRows,
		"results", out.Results,
		"teams", out.Teams,
	)
	return out, nil
}

// PurgeCache drops expired cache entries.
func (s *RefreshService) PurgeCache(ctx context.Context) int {
	if s.cache == nil {
		return 0
	}
	n := s.cache.PurgeExpired(ctx)
	s.logger.InfoContext(ctx, "expired cache entries purged", "count", n)
	return n
}
