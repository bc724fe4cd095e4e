package memory

import (
	"context"
	"testing"

	"github.com/AlejandroRodriguezIT/plataforma-penafiel/internal/domain/league"
	"github.com/AlejandroRodriguezIT/plataforma-penafiel/internal/domain/round"
	"github.com/AlejandroRodriguezIT/plataforma-penafiel/internal/domain/telemetry"
)

func TestMatchRepository_FiltersSeed(t *testing.T) {
	t.Parallel()

	repo := NewMatchRepository(SeedMatchRows())
	rows, err := repo.ListMatchRows(context.Background(), telemetry.MatchFilter{Rounds: []round.ID{8}, HalvesOnly: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Seven starters play both halves, the substitute only the second.
	if len(rows) != 15 {
		t.Fatalf("expected 15 half rows for J8, got %d", len(rows))
	}
	for _, row := range rows {
		if row.Round != 8 || !row.Distances.Total.Valid || row.Date.IsZero() {
			t.Fatalf("unexpected row %+v", row)
		}
	}
}

func TestTrainingRepository_TotalOnly(t *testing.T) {
	t.Parallel()

	repo := NewTrainingRepository(SeedTrainingRows())
	rows, err := repo.ListTrainingRows(context.Background(), telemetry.TrainingFilter{Rounds: []round.ID{10}, TotalOnly: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != len(seedSessions)*len(seedPlayers) {
		t.Fatalf("expected %d totals, got %d", len(seedSessions)*len(seedPlayers), len(rows))
	}
}

func TestMatchRepository_Replace(t *testing.T) {
	t.Parallel()

	repo := NewMatchRepository(SeedMatchRows())
	repo.Replace(nil)
	rows, _ := repo.ListMatchRows(context.Background(), telemetry.MatchFilter{})
	if len(rows) != 0 {
		t.Fatalf("expected empty repository, got %d rows", len(rows))
	}
}

func TestResultRepository_LeavesCurrentRoundOpen(t *testing.T) {
	t.Parallel()

	results, err := NewResultRepository(SeedResults()).ListResults(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != len(seedMatches)-1 {
		t.Fatalf("unexpected result count %d", len(results))
	}
	for _, r := range results {
		if r.Round == 10 {
			t.Fatalf("J10 must not have a result")
		}
	}
}

func TestTeamAverageRepository_ReturnsCopies(t *testing.T) {
	t.Parallel()

	repo := NewTeamAverageRepository(SeedTeamAverages())
	rows, _ := repo.ListTeamAverages(context.Background())
	if len(rows) != 8 || rows[0].Team != SeedTeam || rows[len(rows)-1].Team != league.AggregateRow {
		t.Fatalf("unexpected table order: %+v", rows)
	}

	rows[0].Metrics["team_goal"] = 0
	again, _ := repo.ListTeamAverages(context.Background())
	if got, _ := again[0].Metric("team_goal"); got != 1.45 {
		t.Fatalf("stored metrics were mutated: %v", got)
	}
}
