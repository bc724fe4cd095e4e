package sqlstore

import (
	"context"
	"strings"

	"github.com/AlejandroRodriguezIT/plataforma-penafiel/internal/domain/league"
)

type TeamAverageRepository struct {
	store *Store
}

func NewTeamAverageRepository(store *Store) *TeamAverageRepository {
	return &TeamAverageRepository{store: store}
}

// ListTeamAverages pivots the long (team, metric, value) table into one
// row per team, in first-seen order. Null values are left out.
func (r *TeamAverageRepository) ListTeamAverages(ctx context.Context) ([]league.TeamAverage, error) {
	query := r.store.builder().
		Select("equipo", "metrica", "valor").
		From(tableTeamAverages).
		OrderBy("id")

	var models []teamAverageTableModel
	if err := r.store.selectInto(ctx, &models, query, tableTeamAverages); err != nil {
		return nil, err
	}

	index := make(map[string]int)
	out := make([]league.TeamAverage, 0)
	for _, m := range models {
		team := strings.TrimSpace(m.Team)
		i, ok := index[team]
		if !ok {
			i = len(out)
			index[team] = i
			out = append(out, league.TeamAverage{Team: team, Metrics: make(map[string]float64)})
		}
		if m.Value.Valid {
			out[i].Metrics[strings.TrimSpace(m.Metric)] = m.Value.Float64
		}
	}
	return out, nil
}
