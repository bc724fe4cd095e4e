package sqlstore

import (
	"context"

	"github.com/AlejandroRodriguezIT/plataforma-penafiel/internal/domain/telemetry"
	sq "github.com/Masterminds/squirrel"
)

type TrainingRepository struct {
	store *Store
}

func NewTrainingRepository(store *Store) *TrainingRepository {
	return &TrainingRepository{store: store}
}

func (r *TrainingRepository) ListTrainingRows(ctx context.Context, filter telemetry.TrainingFilter) ([]telemetry.TrainingRow, error) {
	query := r.store.builder().
		Select(trainingColumns...).
		From(tableTraining).
		OrderBy("fecha", "situacion", "id")
	if len(filter.Rounds) > 0 {
		query = query.Where(roundClause(filter.Rounds))
	}
	if filter.TotalOnly {
		query = query.Where(sq.Expr("LOWER(TRIM(tarea)) = ?", "total"))
	}

	var models []trainingTableModel
	if err := r.store.selectInto(ctx, &models, query, tableTraining); err != nil {
		return nil, err
	}

	records := make([]telemetry.TrainingRecord, 0, len(models))
	for _, m := range models {
		records = append(records, m.record())
	}

	var warnings rowWarnings
	rows := telemetry.NormalizeTrainingRecords(records, warnings.add)
	r.store.flushWarnings(ctx, &warnings, tableTraining)

	out := rows[:0]
	for _, row := range rows {
		if filter.Accept(row) {
			out = append(out, row)
		}
	}
	return out, nil
}
