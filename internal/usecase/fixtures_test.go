package usecase

import (
	"time"

	"github.com/AlejandroRodriguezIT/plataforma-penafiel/internal/domain/round"
	"github.com/AlejandroRodriguezIT/plataforma-penafiel/internal/domain/telemetry"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func matchRow(player string, id round.ID, opponent string, date time.Time, task string, minutes, total, hsr, sprint float64) telemetry.MatchRow {
	return telemetry.MatchRow{
		Player:  player,
		Date:    date,
		Task:    task,
		Round:   id,
		Match:   "Partido fútbol 11' contra " + opponent,
		Minutes: telemetry.Of(minutes),
		Distances: telemetry.Distances{
			Total:  telemetry.Of(total),
			HSR:    telemetry.Of(hsr),
			Sprint: telemetry.Of(sprint),
		},
		MaxSpeed: telemetry.Of(31.5),
	}
}

func trainingRow(player string, id round.ID, situation string, date time.Time, minutes, total float64) telemetry.TrainingRow {
	return telemetry.TrainingRow{
		Player:    player,
		Date:      date,
		Situation: situation,
		Task:      "Total",
		Round:     id,
		Minutes:   telemetry.Of(minutes),
		Distances: telemetry.Distances{
			Total:  telemetry.Of(total),
			HSR:    telemetry.Of(total / 10),
			Sprint: telemetry.Of(total / 50),
		},
	}
}
