package sqlstore

import (
	"context"
	"fmt"
	"strings"
)

// sqliteSchema mirrors db/migrations for the snapshot file.
const sqliteSchema = `
CREATE TABLE IF NOT EXISTS datos_fisicos_partido (
    id               INTEGER PRIMARY KEY AUTOINCREMENT,
    partido          TEXT,
    tarea            TEXT,
    fecha            TEXT,
    jugador          TEXT,
    minutos_jugados  TEXT,
    distancia_total  TEXT,
    distancia_hsr    TEXT,
    distancia_sprint TEXT,
    velocidad_maxima TEXT,
    jornada          TEXT,
    posicion         TEXT
);
CREATE TABLE IF NOT EXISTS datos_fisicos_entreno (
    id               INTEGER PRIMARY KEY AUTOINCREMENT,
    fecha            TEXT,
    situacion        TEXT,
    tarea            TEXT,
    jugador          TEXT,
    minutos_jugados  TEXT,
    distancia_total  TEXT,
    distancia_hsr    TEXT,
    distancia_sprint TEXT,
    jornada          TEXT
);
CREATE TABLE IF NOT EXISTS resultados (
    id        INTEGER PRIMARY KEY AUTOINCREMENT,
    jornada   TEXT NOT NULL,
    codigo    TEXT,
    resultado TEXT
);
CREATE TABLE IF NOT EXISTS promedios_equipos (
    id      INTEGER PRIMARY KEY AUTOINCREMENT,
    equipo  TEXT NOT NULL,
    metrica TEXT NOT NULL,
    valor   REAL,
    UNIQUE (equipo, metrica)
);
`

// EnsureSchema creates the snapshot tables. Postgres schemas are managed by
// cmd/migration instead.
func (s *Store) EnsureSchema(ctx context.Context) error {
	if s.dialect.Name != SQLite.Name {
		return fmt.Errorf("ensure schema: unsupported dialect %s", s.dialect.Name)
	}
	for _, stmt := range strings.Split(sqliteSchema, ";") {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
