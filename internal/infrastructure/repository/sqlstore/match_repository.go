package sqlstore

import (
	"context"
	"strconv"
	"strings"

	"github.com/AlejandroRodriguezIT/plataforma-penafiel/internal/domain/round"
	"github.com/AlejandroRodriguezIT/plataforma-penafiel/internal/domain/telemetry"
	sq "github.com/Masterminds/squirrel"
)

type MatchRepository struct {
	store *Store
}

func NewMatchRepository(store *Store) *MatchRepository {
	return &MatchRepository{store: store}
}

// ListMatchRows narrows by round number and match in SQL, then applies
// the filter again on canonical values.
func (r *MatchRepository) ListMatchRows(ctx context.Context, filter telemetry.MatchFilter) ([]telemetry.MatchRow, error) {
	query := r.store.builder().
		Select(matchColumns...).
		From(tableMatch).
		OrderBy("fecha", "jornada", "id")
	if len(filter.Rounds) > 0 {
		query = query.Where(roundClause(filter.Rounds))
	}
	if match := strings.TrimSpace(filter.Match); match != "" {
		query = query.Where(sq.Expr("LOWER(TRIM(partido)) = LOWER(?)", match))
	}

	var models []matchTableModel
	if err := r.store.selectInto(ctx, &models, query, tableMatch); err != nil {
		return nil, err
	}

	records := make([]telemetry.MatchRecord, 0, len(models))
	for _, m := range models {
		records = append(records, m.record())
	}

	var warnings rowWarnings
	rows := telemetry.NormalizeMatchRecords(records, warnings.add)
	r.store.flushWarnings(ctx, &warnings, tableMatch)

	out := rows[:0]
	for _, row := range rows {
		if filter.Accept(row) {
			out = append(out, row)
		}
	}
	return out, nil
}

// roundClause keeps rows whose jornada contains one of the round numbers.
// It matches a superset ("J13" for J1); rows are filtered again on the
// canonical round once normalized.
func roundClause(ids []round.ID) sq.Or {
	out := make(sq.Or, 0, len(ids))
	for _, id := range ids {
		if !id.Valid() {
			continue
		}
		out = append(out, sq.Like{"jornada": "%" + strconv.Itoa(int(id)) + "%"})
	}
	return out
}
