package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/AlejandroRodriguezIT/plataforma-penafiel/internal/domain/outcome"
	"github.com/AlejandroRodriguezIT/plataforma-penafiel/internal/domain/telemetry"
	leaguemock "github.com/AlejandroRodriguezIT/plataforma-penafiel/internal/mocks/domain/league"
	outcomemock "github.com/AlejandroRodriguezIT/plataforma-penafiel/internal/mocks/domain/outcome"
	telemetrymock "github.com/AlejandroRodriguezIT/plataforma-penafiel/internal/mocks/domain/telemetry"
	"github.com/AlejandroRodriguezIT/plataforma-penafiel/internal/platform/logging"
	"github.com/stretchr/testify/mock"
)

type stubSnapshotCache struct {
	invalidated int
	purged      int
}

func (c *stubSnapshotCache) Invalidate(context.Context) int {
	c.invalidated++
	return 4
}

func (c *stubSnapshotCache) PurgeExpired(context.Context) int {
	c.purged++
	return 2
}

func TestRefreshService_Refresh(t *testing.T) {
	t.Parallel()

	matches := telemetrymock.NewMatchRepository(t)
	training := telemetrymock.NewTrainingRepository(t)
	results := outcomemock.NewRepository(t)
	leagueRepo := leaguemock.NewRepository(t)
	cache := &stubSnapshotCache{}

	matches.On("ListMatchRows", mock.Anything, telemetry.MatchFilter{}).Return(seasonHalves(), nil).Once()
	training.On("ListTrainingRows", mock.Anything, telemetry.TrainingFilter{}).
		Return([]telemetry.TrainingRow{trainingRow("Rui", 4, "MD-1", day(2024, 9, 1), 70, 5000)}, nil).
		Once()
	results.On("ListResults", mock.Anything).Return([]outcome.Result{{Round: 1, Outcome: outcome.Win}}, nil).Once()
	leagueRepo.On("ListTeamAverages", mock.Anything).Return(leagueTable(), nil).Once()

	service := NewRefreshService(cache, matches, training, results, leagueRepo, logging.NewNop())
	got, err := service.Refresh(context.Background())
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if cache.invalidated != 1 || got.Invalidated != 4 {
		t.Fatalf("cache must be invalidated once: %+v", got)
	}
	if got.MatchRows != len(seasonHalves()) || got.TrainingRows != 1 || got.Results != 1 || got.Teams != 2 {
		t.Fatalf("unexpected refresh counts: %+v", got)
	}

	if n := service.PurgeCache(context.Background()); n != 2 || cache.purged != 1 {
		t.Fatalf("unexpected purge: n=%d purged=%d", n, cache.purged)
	}
}

func TestRefreshService_Refresh_PropagatesFailure(t *testing.T) {
	t.Parallel()

	matches := telemetrymock.NewMatchRepository(t)
	training := telemetrymock.NewTrainingRepository(t)
	results := outcomemock.NewRepository(t)
	leagueRepo := leaguemock.NewRepository(t)

	matches.On("ListMatchRows", mock.Anything, telemetry.MatchFilter{}).Return(nil, ErrDependencyUnavailable).Once()
	training.On("ListTrainingRows", mock.Anything, telemetry.TrainingFilter{}).Return(nil, nil).Once()
	results.On("ListResults", mock.Anything).Return(nil, nil).Once()
	leagueRepo.On("ListTeamAverages", mock.Anything).Return(nil, nil).Once()

	service := NewRefreshService(nil, matches, training, results, leagueRepo, logging.NewNop())
	if _, err := service.Refresh(context.Background()); !errors.Is(err, ErrDependencyUnavailable) {
		t.Fatalf("expected ErrDependencyUnavailable, got %v", err)
	}
}
