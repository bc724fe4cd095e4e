package league

import (
	"context"
	"math"
	"strings"
)

// AggregateRow is the competition-wide average row shipped with the team
// table. It is never a team.
const AggregateRow = "PROMEDIO GLOBAL COMPETICIÓN"

// LeagueAverageLabel names the synthetic mean row added to comparisons.
const LeagueAverageLabel = "Promedio Liga"

// TeamAverage holds a team's per-match averages keyed by metric name
// (team_goal, opp_xgShot, team_passToFinalThird, ...).
type TeamAverage struct {
	Team    string
	Metrics map[string]float64
}

// Metric returns the named value; NaN and missing keys are absent.
func (t TeamAverage) Metric(name string) (float64, bool) {
	v, ok := t.Metrics[name]
	if !ok || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// Repository describes league table reads from use cases.
type Repository interface {
	ListTeamAverages(ctx context.Context) ([]TeamAverage, error)
}

// Teams drops the aggregate row and rows without a team name.
func Teams(rows []TeamAverage) []TeamAverage {
	out := make([]TeamAverage, 0, len(rows))
	for _, row := range rows {
		name := strings.TrimSpace(row.Team)
		if name == "" || strings.EqualFold(name, AggregateRow) {
			continue
		}
		row.Team = name
		out = append(out, row)
	}
	return out
}

// Find returns the row of team.
func Find(rows []TeamAverage, team string) (TeamAverage, bool) {
	for _, row := range rows {
		if strings.EqualFold(row.Team, strings.TrimSpace(team)) {
			return row, true
		}
	}
	return TeamAverage{}, false
}

// SafeDiv divides a by b and reports false when b is zero.
func SafeDiv(a, b float64) (float64, bool) {
	if b == 0 {
		return 0, false
	}
	return a / b, true
}

// Mean averages metric over rows that carry it.
func Mean(rows []TeamAverage, metric string) (float64, bool) {
	var sum float64
	var n int
	for _, row := range rows {
		if v, ok := row.Metric(metric); ok {
			sum += v
			n++
		}
	}
	if n == 0 {
		return 0, false
	}
	return sum / float64(n), true
}

// Round2 rounds to two decimals.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
