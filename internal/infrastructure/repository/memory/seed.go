package memory

import (
	"fmt"
	"time"

	"github.com/AlejandroRodriguezIT/plataforma-penafiel/internal/domain/league"
	"github.com/AlejandroRodriguezIT/plataforma-penafiel/internal/domain/outcome"
	"github.com/AlejandroRodriguezIT/plataforma-penafiel/internal/domain/round"
	"github.com/AlejandroRodriguezIT/plataforma-penafiel/internal/domain/telemetry"
)

// SeedTeam is the highlighted team of the demo dataset.
const SeedTeam = "Penafiel"

type seedMatch struct {
	round    string
	date     time.Time
	opponent string
	code     string
	result   outcome.Code
}

type seedPlayer struct {
	name     string
	position string
	minutes  [2]float64
	perMin   float64
	maxSpeed float64
}

var seedMatches = []seedMatch{
	{round: "J5", date: seedDay(2024, time.September, 15), opponent: "Torreense", code: "TOR", result: outcome.Win},
	{round: "J6", date: seedDay(2024, time.September, 29), opponent: "Feirense", code: "FEI", result: outcome.Draw},
	{round: "J7", date: seedDay(2024, time.October, 6), opponent: "Leixões", code: "LEI", result: outcome.Loss},
	{round: "J9", date: seedDay(2024, time.October, 20), opponent: "Vizela", code: "VIZ", result: outcome.Draw},
	{round: "J8", date: seedDay(2024, time.October, 27), opponent: "Tondela", code: "TON", result: outcome.Win},
	{round: "J10", date: seedDay(2024, time.November, 3), opponent: "Marítimo", code: "MAR"},
}

var seedPlayers = []seedPlayer{
	{name: "Caio Secco", position: "Portero", minutes: [2]float64{46, 48}, perMin: 58, maxSpeed: 24.1},
	{name: "Rui Gomes", position: "Defensa", minutes: [2]float64{46, 48}, perMin: 104, maxSpeed: 31.2},
	{name: "Lucas Soares", position: "Defensa", minutes: [2]float64{46, 48}, perMin: 101, maxSpeed: 30.4},
	{name: "Pedro Ferreira", position: "Centrocampista", minutes: [2]float64{46, 48}, perMin: 121, maxSpeed: 29.8},
	{name: "Zé Pedro", position: "Centrocampista", minutes: [2]float64{46, 31}, perMin: 117, maxSpeed: 30.1},
	{name: "Vasco Braga", position: "Extremo", minutes: [2]float64{46, 48}, perMin: 112, maxSpeed: 33.6},
	{name: "Simão Bertelli", position: "Delantero", minutes: [2]float64{46, 40}, perMin: 108, maxSpeed: 32.7},
	{name: "Tiago Leite", position: "Delantero", minutes: [2]float64{0, 17}, perMin: 125, maxSpeed: 32.0},
}

// Session offsets are days before the match.
var seedSessions = []struct {
	situation string
	offset    int
	load      float64
}{
	{situation: "MD-4", offset: 4, load: 0.62},
	{situation: "MD-3", offset: 3, load: 0.78},
	{situation: "MD-2", offset: 2, load: 0.55},
	{situation: "MD-1", offset: 1, load: 0.41},
}

func seedDay(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func matchName(opponent string) string {
	return "Partido fútbol 11' Penafiel contra " + opponent
}

// SeedMatchRecords returns raw match rows in the import spelling, halves
// only, with a few unparsable cells as the real export has.
func SeedMatchRecords() []telemetry.MatchRecord {
	out := make([]telemetry.MatchRecord, 0, len(seedMatches)*len(seedPlayers)*2)
	for mi, m := range seedMatches {
		variance := 1 + float64(mi%3-1)*0.03
		for _, p := range seedPlayers {
			for half, minutes := range p.minutes {
				if minutes == 0 {
					continue
				}
				total := minutes * p.perMin * variance
				out = append(out, telemetry.MatchRecord{
					Player:         p.name,
					Date:           m.date.Format("2006-01-02"),
					Task:           fmt.Sprintf("%dª parte", half+1),
					Round:          m.round,
					Match:          matchName(m.opponent),
					Position:       p.position,
					Minutes:        fmt.Sprintf("%.0f", minutes),
					TotalDistance:  fmt.Sprintf("%.1f", total),
					HSRDistance:    fmt.Sprintf("%.1f", total*0.085),
					SprintDistance: fmt.Sprintf("%.1f", total*0.021),
					MaxSpeed:       fmt.Sprintf("%.1f", p.maxSpeed-float64(half)*0.4),
				})
			}
		}
	}
	return out
}

// SeedTrainingRecords returns one session total per player and match-day
// slot before every seeded round, plus task rows the total already covers.
func SeedTrainingRecords() []telemetry.TrainingRecord {
	out := make([]telemetry.TrainingRecord, 0, len(seedMatches)*len(seedSessions)*len(seedPlayers)*2)
	for _, m := range seedMatches {
		for _, s := range seedSessions {
			date := m.date.AddDate(0, 0, -s.offset).Format("2006-01-02")
			for pi, p := range seedPlayers {
				minutes := 75.0
				if pi == len(seedPlayers)-1 && s.situation == "MD-2" {
					minutes = 30
				}
				total := minutes * p.perMin * s.load
				out = append(out,
					telemetry.TrainingRecord{
						Player:         p.name,
						Date:           date,
						Situation:      s.situation,
						Task:           "Total",
						Round:          m.round,
						Minutes:        fmt.Sprintf("%.0f", minutes),
						TotalDistance:  fmt.Sprintf("%.1f", total),
						HSRDistance:    fmt.Sprintf("%.1f", total*0.06),
						SprintDistance: fmt.Sprintf("%.1f", total*0.012),
					},
					telemetry.TrainingRecord{
						Player:        p.name,
						Date:          date,
						Situation:     s.situation,
						Task:          "Rondo 5x2",
						Round:         m.round,
						Minutes:       "12",
						TotalDistance: fmt.Sprintf("%.1f", 12*p.perMin*0.5),
					},
				)
			}
		}
	}
	return out
}

func SeedMatchRows() []telemetry.MatchRow {
	return telemetry.NormalizeMatchRecords(SeedMatchRecords(), nil)
}

func SeedTrainingRows() []telemetry.TrainingRow {
	return telemetry.NormalizeTrainingRecords(SeedTrainingRecords(), nil)
}

// SeedResults leaves the last round without a result.
func SeedResults() []outcome.Result {
	out := make([]outcome.Result, 0, len(seedMatches))
	for _, m := range seedMatches {
		if m.result == outcome.Unknown {
			continue
		}
		out = append(out, outcome.Result{
			Round:        round.MustParse(m.round),
			RoundRaw:     m.round,
			OpponentCode: m.code,
			Outcome:      m.result,
		})
	}
	return out
}

func SeedTeamAverages() []league.TeamAverage {
	return []league.TeamAverage{
		seedTeam(SeedTeam, 1.45, 1.02, 12.8, 4.6, 1.41, 54.2, 9.8, 36.1, 0.95, 10.1, 3.5, 31.2),
		seedTeam("Tondela", 1.72, 0.88, 14.1, 5.3, 1.66, 57.9, 8.7, 41.5, 0.82, 9.2, 3.2, 28.4),
		seedTeam("Vizela", 1.38, 1.10, 11.9, 4.1, 1.22, 51.3, 10.9, 33.0, 1.12, 11.4, 4.2, 33.7),
		seedTeam("Torreense", 1.21, 1.25, 10.7, 3.6, 1.08, 48.4, 11.6, 30.2, 1.20, 12.0, 4.3, 35.8),
		seedTeam("Feirense", 0.98, 1.31, 9.9, 3.2, 0.97, 46.0, 12.3, 27.9, 1.34, 12.9, 4.6, 37.1),
		seedTeam("Leixões", 1.14, 1.19, 10.4, 3.5, 1.05, 49.7, 11.1, 29.6, 1.15, 11.7, 4.0, 34.4),
		seedTeam("Marítimo", 1.33, 0.97, 12.2, 4.4, 1.30, 53.1, 10.2, 35.0, 0.99, 10.6, 3.6, 32.0),
		seedTeam(league.AggregateRow, 1.32, 1.10, 11.7, 4.1, 1.24, 51.5, 10.7, 33.3, 1.08, 11.1, 3.9, 33.2),
	}
}

func seedTeam(team string, goals, conceded, shots, shotsOnTarget, xg, possession, ppda, finalThird, oppXG, oppShots, oppShotsOnTarget, oppFinalThird float64) league.TeamAverage {
	return league.TeamAverage{
		Team: team,
		Metrics: map[string]float64{
			"team_goal":             goals,
			"opp_goal":              conceded,
			"team_shot":             shots,
			"team_shotSuccess":      shotsOnTarget,
			"team_xgShot":           xg,
			"team_possession":       possession,
			"team_ppda":             ppda,
			"team_passToFinalThird": finalThird,
			"opp_xgShot":            oppXG,
			"opp_shot":              oppShots,
			"opp_shotSuccess":       oppShotsOnTarget,
			"opp_passToFinalThird":  oppFinalThird,
		},
	}
}
