package sqlstore

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/AlejandroRodriguezIT/plataforma-penafiel/internal/domain/telemetry"
	sq "github.com/Masterminds/squirrel"
)

const insertBatchSize = 500

type ResultRecord struct {
	Round   string
	Code    string
	Outcome string
}

type TeamAverageRecord struct {
	Team   string
	Metric string
	Value  sql.NullFloat64
}

// Snapshot is the raw content of every source table.
type Snapshot struct {
	Matches      []telemetry.MatchRecord
	Training     []telemetry.TrainingRecord
	Results      []ResultRecord
	TeamAverages []TeamAverageRecord
}

type SnapshotStats struct {
	Matches      int
	Training     int
	Results      int
	TeamAverages int
}

func (s Snapshot) Stats() SnapshotStats {
	return SnapshotStats{
		Matches:      len(s.Matches),
		Training:     len(s.Training),
		Results:      len(s.Results),
		TeamAverages: len(s.TeamAverages),
	}
}

// ReadSnapshot loads every source table without normalization.
func (s *Store) ReadSnapshot(ctx context.Context) (Snapshot, error) {
	var out Snapshot

	var matches []matchTableModel
	if err := s.selectInto(ctx, &matches, s.builder().Select(matchColumns...).From(tableMatch).OrderBy("id"), tableMatch); err != nil {
		return Snapshot{}, err
	}
	for _, m := range matches {
		out.Matches = append(out.Matches, m.record())
	}

	var training []trainingTableModel
	if err := s.selectInto(ctx, &training, s.builder().Select(trainingColumns...).From(tableTraining).OrderBy("id"), tableTraining); err != nil {
		return Snapshot{}, err
	}
	for _, m := range training {
		out.Training = append(out.Training, m.record())
	}

	var results []resultTableModel
	if err := s.selectInto(ctx, &results, s.builder().Select("jornada", "codigo", "resultado").From(tableResults).OrderBy("id"), tableResults); err != nil {
		return Snapshot{}, err
	}
	for _, m := range results {
		out.Results = append(out.Results, ResultRecord{Round: text(m.Round), Code: text(m.Code), Outcome: text(m.Outcome)})
	}

	var averages []teamAverageTableModel
	if err := s.selectInto(ctx, &averages, s.builder().Select("equipo", "metrica", "valor").From(tableTeamAverages).OrderBy("id"), tableTeamAverages); err != nil {
		return Snapshot{}, err
	}
	for _, m := range averages {
		out.TeamAverages = append(out.TeamAverages, TeamAverageRecord{Team: m.Team, Metric: m.Metric, Value: m.Value})
	}

	return out, nil
}

// WriteSnapshot replaces the content of every source table in one
// transaction.
func (s *Store) WriteSnapshot(ctx context.Context, snap Snapshot) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin snapshot tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, table := range []string{tableMatch, tableTraining, tableResults, tableTeamAverages} {
		stmt, args, err := s.builder().Delete(table).ToSql()
		if err != nil {
			return fmt.Errorf("build delete %s: %w", table, err)
		}
		if _, err := tx.ExecContext(ctx, stmt, args...); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}

	matchRows := make([][]any, 0, len(snap.Matches))
	for _, r := range snap.Matches {
		matchRows = append(matchRows, []any{
			r.Match, r.Task, r.Date, r.Player, r.Minutes,
			r.TotalDistance, r.HSRDistance, r.SprintDistance,
			r.MaxSpeed, r.Round, r.Position,
		})
	}
	trainingRows := make([][]any, 0, len(snap.Training))
	for _, r := range snap.Training {
		trainingRows = append(trainingRows, []any{
			r.Date, r.Situation, r.Task, r.Player, r.Minutes,
			r.TotalDistance, r.HSRDistance, r.SprintDistance, r.Round,
		})
	}
	resultRows := make([][]any, 0, len(snap.Results))
	for _, r := range snap.Results {
		resultRows = append(resultRows, []any{r.Round, r.Code, r.Outcome})
	}
	averageRows := make([][]any, 0, len(snap.TeamAverages))
	for _, r := range snap.TeamAverages {
		averageRows = append(averageRows, []any{r.Team, r.Metric, r.Value})
	}

	inserts := []struct {
		table   string
		columns []string
		rows    [][]any
	}{
		{tableMatch, matchColumns, matchRows},
		{tableTraining, trainingColumns, trainingRows},
		{tableResults, []string{"jornada", "codigo", "resultado"}, resultRows},
		{tableTeamAverages, []string{"equipo", "metrica", "valor"}, averageRows},
	}
	for _, ins := range inserts {
		if err := s.insertBatches(ctx, tx, ins.table, ins.columns, ins.rows); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit snapshot tx: %w", err)
	}
	return nil
}

func (s *Store) insertBatches(ctx context.Context, tx sq.ExecerContext, table string, columns []string, rows [][]any) error {
	for start := 0; start < len(rows); start += insertBatchSize {
		end := min(start+insertBatchSize, len(rows))
		query := s.builder().Insert(table).Columns(columns...)
		for _, row := range rows[start:end] {
			query = query.Values(row...)
		}
		stmt, args, err := query.ToSql()
		if err != nil {
			return fmt.Errorf("build insert %s: %w", table, err)
		}
		if _, err := tx.ExecContext(ctx, stmt, args...); err != nil {
			return fmt.Errorf("insert %s: %w", table, err)
		}
	}
	return nil
}
