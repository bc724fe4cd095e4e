// Package sqlstore reads the imported telemetry, results and league tables
// through sqlx. The same repositories serve Postgres and the SQLite snapshot;
// only the placeholder format differs.
package sqlstore

import (
	"context"
	"fmt"

	"github.com/AlejandroRodriguezIT/plataforma-penafiel/internal/platform/logging"
	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

const (
	tableMatch        = "datos_fisicos_partido"
	tableTraining     = "datos_fisicos_entreno"
	tableResults      = "resultados"
	tableTeamAverages = "promedios_equipos"
)

// Dialect is the SQL flavour of a store.
type Dialect struct {
	Name        string
	Placeholder sq.PlaceholderFormat
}

var (
	Postgres = Dialect{Name: "postgres", Placeholder: sq.Dollar}
	SQLite   = Dialect{Name: "sqlite", Placeholder: sq.Question}
)

// Store is a sqlx handle bound to a dialect.
type Store struct {
	db      *sqlx.DB
	dialect Dialect
	logger  *logging.Logger
}

func New(db *sqlx.DB, dialect Dialect, logger *logging.Logger) *Store {
	if logger == nil {
		logger = logging.Default()
	}
	return &Store{db: db, dialect: dialect, logger: logger}
}

func (s *Store) DB() *sqlx.DB {
	return s.db
}

func (s *Store) Dialect() Dialect {
	return s.dialect
}

func (s *Store) Name() string {
	return s.dialect.Name
}

func (s *Store) Ping(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return fmt.Errorf("ping %s: %w", s.dialect.Name, err)
	}
	return nil
}

func (s *Store) builder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(s.dialect.Placeholder)
}

func (s *Store) selectInto(ctx context.Context, dest any, query sq.SelectBuilder, what string) error {
	sqlText, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("build select %s query: %w", what, err)
	}
	if err := s.db.SelectContext(ctx, dest, sqlText, args...); err != nil {
		return fmt.Errorf("select %s: %w", what, err)
	}
	return nil
}

// rowWarnings counts per-row degradations so a batch logs once.
type rowWarnings struct {
	count int
	first string
}

func (w *rowWarnings) add(index int, field string, err error) {
	if w.count == 0 {
		w.first = fmt.Sprintf("row %d %s: %v", index, field, err)
	}
	w.count++
}

func (s *Store) flushWarnings(ctx context.Context, w *rowWarnings, table string) {
	if w.count == 0 {
		return
	}
	s.logger.WarnContext(ctx, "rows degraded during normalization",
		"source", s.dialect.Name,
		"table", table,
		"count", w.count,
		"first", w.first,
	)
}
