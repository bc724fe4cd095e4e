package cache

import (
	"context"
	"testing"
	"time"

	"github.com/AlejandroRodriguezIT/plataforma-penafiel/internal/domain/league"
	"github.com/AlejandroRodriguezIT/plataforma-penafiel/internal/domain/outcome"
	"github.com/AlejandroRodriguezIT/plataforma-penafiel/internal/domain/round"
	"github.com/AlejandroRodriguezIT/plataforma-penafiel/internal/domain/telemetry"
	leaguemock "github.com/AlejandroRodriguezIT/plataforma-penafiel/internal/mocks/domain/league"
	outcomemock "github.com/AlejandroRodriguezIT/plataforma-penafiel/internal/mocks/domain/outcome"
	telemetrymock "github.com/AlejandroRodriguezIT/plataforma-penafiel/internal/mocks/domain/telemetry"
	basecache "github.com/AlejandroRodriguezIT/plataforma-penafiel/internal/platform/cache"
	"github.com/stretchr/testify/mock"
)

func TestMatchRepository_CachesPerFilter(t *testing.T) {
	t.Parallel()

	rows := []telemetry.MatchRow{{Player: "Rui", Round: round.ID(5), Minutes: telemetry.Of(90)}}
	halvesJ5 := telemetry.MatchFilter{Rounds: []round.ID{5}, HalvesOnly: true}
	allJ5 := telemetry.MatchFilter{Rounds: []round.ID{5}}

	next := telemetrymock.NewMatchRepository(t)
	next.On("ListMatchRows", mock.Anything, halvesJ5).Return(rows, nil).Once()
	next.On("ListMatchRows", mock.Anything, allJ5).Return(rows, nil).Once()

	repo := NewMatchRepository(next, basecache.NewStore(time.Minute))
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		got, err := repo.ListMatchRows(ctx, halvesJ5)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 {
			t.Fatalf("expected one row, got %d", len(got))
		}
		got[0].Player = "mutated"
	}
	if _, err := repo.ListMatchRows(ctx, allJ5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, _ := repo.ListMatchRows(ctx, halvesJ5)
	if got[0].Player != "Rui" {
		t.Fatalf("cached rows must not be shared with callers, got %q", got[0].Player)
	}
}

func TestRoundsKey_IgnoresOrderAndDuplicates(t *testing.T) {
	t.Parallel()

	if got := roundsKey([]round.ID{9, 8, 9}); got != "8,9" {
		t.Fatalf("unexpected key %q", got)
	}
	if got := roundsKey(nil); got != "*" {
		t.Fatalf("unexpected key %q", got)
	}
}

func TestSnapshots_InvalidateForcesReload(t *testing.T) {
	t.Parallel()

	store := basecache.NewStore(time.Minute)
	results := outcomemock.NewRepository(t)
	results.On("ListResults", mock.Anything).Return([]outcome.Result{{Round: round.ID(5), Outcome: outcome.Win}}, nil).Twice()
	averages := leaguemock.NewRepository(t)
	averages.On("ListTeamAverages", mock.Anything).Return([]league.TeamAverage{{Team: "FC Penafiel", Metrics: map[string]float64{"team_goal": 1.4}}}, nil).Once()

	resultRepo := NewResultRepository(results, store)
	leagueRepo := NewTeamAverageRepository(averages, store)
	snapshots := NewSnapshots(store)
	ctx := context.Background()

	if _, err := resultRepo.ListResults(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	teams, err := leagueRepo.ListTeamAverages(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	teams[0].Metrics["team_goal"] = 99
	again, _ := leagueRepo.ListTeamAverages(ctx)
	if again[0].Metrics["team_goal"] != 1.4 {
		t.Fatalf("cached metrics must not be shared with callers, got %v", again[0].Metrics["team_goal"])
	}

	if dropped := snapshots.Invalidate(ctx); dropped != 2 {
		t.Fatalf("expected two dropped entries, got %d", dropped)
	}
	if _, err := resultRepo.ListResults(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	store.Set(ctx, "unrelated:key", 1)
	if dropped := snapshots.Invalidate(ctx); dropped != 1 {
		t.Fatalf("expected only the results entry to be dropped, got %d", dropped)
	}
}
