package memory

import (
	"context"
	"sync"

	"github.com/AlejandroRodriguezIT/plataforma-penafiel/internal/domain/telemetry"
)

type MatchRepository struct {
	mu   sync.RWMutex
	rows []telemetry.MatchRow
}

func NewMatchRepository(rows []telemetry.MatchRow) *MatchRepository {
	return &MatchRepository{rows: append([]telemetry.MatchRow(nil), rows...)}
}

func (r *MatchRepository) ListMatchRows(_ context.Context, filter telemetry.MatchFilter) ([]telemetry.MatchRow, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]telemetry.MatchRow, 0, len(r.rows))
	for _, row := range r.rows {
		if filter.Accept(row) {
			out = append(out, row)
		}
	}
	return out, nil
}

// Replace swaps the whole dataset.
func (r *MatchRepository) Replace(rows []telemetry.MatchRow) {
	r.mu.Lock()
	r.rows = append([]telemetry.MatchRow(nil), rows...)
	r.mu.Unlock()
}

type TrainingRepository struct {
	mu   sync.RWMutex
	rows []telemetry.TrainingRow
}

func NewTrainingRepository(rows []telemetry.TrainingRow) *TrainingRepository {
	return &TrainingRepository{rows: append([]telemetry.TrainingRow(nil), rows...)}
}

func (r *TrainingRepository) ListTrainingRows(_ context.Context, filter telemetry.TrainingFilter) ([]telemetry.TrainingRow, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]telemetry.TrainingRow, 0, len(r.rows))
	for _, row := range r.rows {
		if filter.Accept(row) {
			out = append(out, row)
		}
	}
	return out, nil
}

func (r *TrainingRepository) Replace(rows []telemetry.TrainingRow) {
	r.mu.Lock()
	r.rows = append([]telemetry.TrainingRow(nil), rows...)
	r.mu.Unlock()
}
