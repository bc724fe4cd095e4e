package memory

import (
	"context"
	"maps"
	"sync"

	"github.com/AlejandroRodriguezIT/plataforma-penafiel/internal/domain/league"
	"github.com/AlejandroRodriguezIT/plataforma-penafiel/internal/domain/outcome"
)

type ResultRepository struct {
	mu    sync.RWMutex
	items []outcome.Result
}

func NewResultRepository(items []outcome.Result) *ResultRepository {
	return &ResultRepository{items: append([]outcome.Result(nil), items...)}
}

func (r *ResultRepository) ListResults(_ context.Context) ([]outcome.Result, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]outcome.Result(nil), r.items...), nil
}

type TeamAverageRepository struct {
	mu     sync.RWMutex
	items  map[string]league.TeamAverage
	orders []string
}

func NewTeamAverageRepository(rows []league.TeamAverage) *TeamAverageRepository {
	items := make(map[string]league.TeamAverage, len(rows))
	orders := make([]string, 0, len(rows))

	for _, row := range rows {
		if _, seen := items[row.Team]; !seen {
			orders = append(orders, row.Team)
		}
		items[row.Team] = league.TeamAverage{Team: row.Team, Metrics: maps.Clone(row.Metrics)}
	}

	return &TeamAverageRepository{
		items:  items,
		orders: orders,
	}
}

func (r *TeamAverageRepository) ListTeamAverages(_ context.Context) ([]league.TeamAverage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]league.TeamAverage, 0, len(r.orders))
	for _, team := range r.orders {
		item := r.items[team]
		out = append(out, league.TeamAverage{Team: item.Team, Metrics: maps.Clone(item.Metrics)})
	}

	return out, nil
}
