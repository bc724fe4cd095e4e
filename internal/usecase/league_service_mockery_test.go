package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/AlejandroRodriguezIT/plataforma-penafiel/internal/domain/league"
	leaguemock "github.com/AlejandroRodriguezIT/plataforma-penafiel/internal/mocks/domain/league"
	"github.com/stretchr/testify/mock"
)

func leagueTable() []league.TeamAverage {
	return []league.TeamAverage{
		{Team: "Penafiel", Metrics: map[string]float64{
			"team_goal": 1.5, "team_shot": 12, "team_passToFinalThird": 40, "team_xgShot": 1.4, "team_shotSuccess": 5, "team_possession": 52,
			"opp_goal": 1.0, "opp_shot": 10, "opp_passToFinalThird": 50, "opp_xgShot": 1.1, "opp_shotSuccess": 3, "team_ppda": 9,
		}},
		{Team: "Tondela", Metrics: map[string]float64{
			"team_goal": 2.0, "team_shot": 15, "team_passToFinalThird": 60, "team_xgShot": 1.8, "team_shotSuccess": 6, "team_possession": 55,
			"opp_goal": 0.8, "opp_shot": 8, "opp_passToFinalThird": 40, "opp_xgShot": 0.9, "opp_shotSuccess": 2, "team_ppda": 8,
		}},
		{Team: league.AggregateRow, Metrics: map[string]float64{"team_goal": 1.75}},
	}
}

func TestLeagueService_Ranking_UsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.WithValue(context.Background(), "trace_id", "trace-456")
	repo := leaguemock.NewRepository(t)
	repo.
		On("ListTeamAverages", mock.MatchedBy(func(v context.Context) bool { return v == ctx })).
		Return(leagueTable(), nil).
		Once()

	service := NewLeagueService(repo, " penafiel ")
	got, err := service.Ranking(ctx)
	if err != nil {
		t.Fatalf("ranking: %v", err)
	}
	if got.Team != "Penafiel" || got.Teams != 2 {
		t.Fatalf("aggregate row must not count as a team: %+v", got)
	}
	if len(got.Rankings) != len(league.RankingMetrics()) {
		t.Fatalf("unexpected ranking count: %d", len(got.Rankings))
	}
	for _, r := range got.Rankings {
		if r.Key == "eficacia_ofensiva" && r.Position != 1 {
			t.Fatalf("unexpected offensive efficacy position: %+v", r)
		}
		if r.Key == "goles_a_favor" && r.Position != 2 {
			t.Fatalf("unexpected goals position: %+v", r)
		}
	}
}

func TestLeagueService_TeamNotFound_UsingMockery(t *testing.T) {
	t.Parallel()

	repo := leaguemock.NewRepository(t)
	repo.On("ListTeamAverages", mock.Anything).Return(leagueTable(), nil).Once()

	service := NewLeagueService(repo, "Leixões")
	_, err := service.Summary(context.Background())
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestLeagueService_EmptyTable_UsingMockery(t *testing.T) {
	t.Parallel()

	repo := leaguemock.NewRepository(t)
	repo.
		On("ListTeamAverages", mock.Anything).
		Return([]league.TeamAverage{{Team: league.AggregateRow}}, nil).
		Once()

	service := NewLeagueService(repo, "Penafiel")
	_, err := service.Verticals(context.Background())
	if !errors.Is(err, ErrNoEligibleData) {
		t.Fatalf("expected ErrNoEligibleData, got %v", err)
	}
}

func TestLeagueService_StylesAndComparison_UsingMockery(t *testing.T) {
	t.Parallel()

	repo := leaguemock.NewRepository(t)
	repo.On("ListTeamAverages", mock.Anything).Return(leagueTable(), nil).Times(3)

	service := NewLeagueService(repo, "Penafiel")

	offensive, err := service.OffensiveStyle(context.Background())
	if err != nil {
		t.Fatalf("offensive style: %v", err)
	}
	if len(offensive.Points) != 2 || offensive.MeanX != 27.5 {
		t.Fatalf("unexpected offensive style: %+v", offensive)
	}

	defensive, err := service.DefensiveStyle(context.Background())
	if err != nil {
		t.Fatalf("defensive style: %v", err)
	}
	if len(defensive.Points) != 2 {
		t.Fatalf("unexpected defensive style: %+v", defensive)
	}

	comparison, err := service.Comparison(context.Background())
	if err != nil {
		t.Fatalf("comparison: %v", err)
	}
	if comparison.Summary.GoalsPosition != 2 || len(comparison.Metrics) != len(league.ComparisonMetrics) {
		t.Fatalf("unexpected comparison: %+v", comparison)
	}
}

func TestLeagueService_DependencyFailure_UsingMockery(t *testing.T) {
	t.Parallel()

	repo := leaguemock.NewRepository(t)
	repo.On("ListTeamAverages", mock.Anything).Return(nil, ErrDependencyUnavailable).Once()

	service := NewLeagueService(repo, "Penafiel")
	_, err := service.Ranking(context.Background())
	if !errors.Is(err, ErrDependencyUnavailable) {
		t.Fatalf("expected ErrDependencyUnavailable, got %v", err)
	}
}
