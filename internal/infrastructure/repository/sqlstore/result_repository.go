package sqlstore

import (
	"context"

	"github.com/AlejandroRodriguezIT/plataforma-penafiel/internal/domain/outcome"
	"github.com/AlejandroRodriguezIT/plataforma-penafiel/internal/domain/round"
)

type ResultRepository struct {
	store *Store
}

func NewResultRepository(store *Store) *ResultRepository {
	return &ResultRepository{store: store}
}

// ListResults keeps rows with an unparsable round; they never join.
func (r *ResultRepository) ListResults(ctx context.Context) ([]outcome.Result, error) {
	query := r.store.builder().
		Select("jornada", "codigo", "resultado").
		From(tableResults)

	var models []resultTableModel
	if err := r.store.selectInto(ctx, &models, query, tableResults); err != nil {
		return nil, err
	}

	out := make([]outcome.Result, 0, len(models))
	for _, m := range models {
		raw := text(m.Round)
		id, _ := round.Parse(raw)
		out = append(out, outcome.Result{
			Round:        id,
			RoundRaw:     raw,
			OpponentCode: text(m.Code),
			Outcome:      outcome.Normalize(text(m.Outcome)),
		})
	}
	return out, nil
}
