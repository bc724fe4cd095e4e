package sqlstore

import (
	"database/sql"
	"strings"

	"github.com/AlejandroRodriguezIT/plataforma-penafiel/internal/domain/telemetry"
)

type matchTableModel struct {
	Match          sql.NullString `db:"partido"`
	Task           sql.NullString `db:"tarea"`
	Date           sql.NullString `db:"fecha"`
	Player         sql.NullString `db:"jugador"`
	Minutes        sql.NullString `db:"minutos_jugados"`
	TotalDistance  sql.NullString `db:"distancia_total"`
	HSRDistance    sql.NullString `db:"distancia_hsr"`
	SprintDistance sql.NullString `db:"distancia_sprint"`
	MaxSpeed       sql.NullString `db:"velocidad_maxima"`
	Round          sql.NullString `db:"jornada"`
	Position       sql.NullString `db:"posicion"`
}

var matchColumns = []string{
	"partido", "tarea", "fecha", "jugador", "minutos_jugados",
	"distancia_total", "distancia_hsr", "distancia_sprint",
	"velocidad_maxima", "jornada", "posicion",
}

func (m matchTableModel) record() telemetry.MatchRecord {
	return telemetry.MatchRecord{
		Player:         text(m.Player),
		Date:           text(m.Date),
		Task:           text(m.Task),
		Round:          text(m.Round),
		Match:          text(m.Match),
		Position:       text(m.Position),
		Minutes:        text(m.Minutes),
		TotalDistance:  text(m.TotalDistance),
		HSRDistance:    text(m.HSRDistance),
		SprintDistance: text(m.SprintDistance),
		MaxSpeed:       text(m.MaxSpeed),
	}
}

type trainingTableModel struct {
	Date           sql.NullString `db:"fecha"`
	Situation      sql.NullString `db:"situacion"`
	Task           sql.NullString `db:"tarea"`
	Player         sql.NullString `db:"jugador"`
	Minutes        sql.NullString `db:"minutos_jugados"`
	TotalDistance  sql.NullString `db:"distancia_total"`
	HSRDistance    sql.NullString `db:"distancia_hsr"`
	SprintDistance sql.NullString `db:"distancia_sprint"`
	Round          sql.NullString `db:"jornada"`
}

var trainingColumns = []string{
	"fecha", "situacion", "tarea", "jugador", "minutos_jugados",
	"distancia_total", "distancia_hsr", "distancia_sprint", "jornada",
}

func (m trainingTableModel) record() telemetry.TrainingRecord {
	return telemetry.TrainingRecord{
		Player:         text(m.Player),
		Date:           text(m.Date),
		Situation:      text(m.Situation),
		Task:           text(m.Task),
		Round:          text(m.Round),
		Minutes:        text(m.Minutes),
		TotalDistance:  text(m.TotalDistance),
		HSRDistance:    text(m.HSRDistance),
		SprintDistance: text(m.SprintDistance),
	}
}

type resultTableModel struct {
	Round   sql.NullString `db:"jornada"`
	Code    sql.NullString `db:"codigo"`
	Outcome sql.NullString `db:"resultado"`
}

type teamAverageTableModel struct {
	Team   string          `db:"equipo"`
	Metric string          `db:"metrica"`
	Value  sql.NullFloat64 `db:"valor"`
}

func text(v sql.NullString) string {
	if !v.Valid {
		return ""
	}
	return strings.TrimSpace(v.String)
}
