package league

import (
	"sort"
	"strings"
)

// InverseMetrics are metrics where a lower value is better.
var InverseMetrics = map[string]bool{
	"opp_xgShot":      true,
	"opp_goal":        true,
	"opp_shot":        true,
	"opp_shotSuccess": true,
	"team_ppda":       true,
}

// VerticalMetrics are the per-metric comparison charts.
var VerticalMetrics = []string{
	"team_xgShot",
	"team_goal",
	"team_shot",
	"team_shotSuccess",
	"opp_xgShot",
	"opp_goal",
	"opp_shot",
	"opp_shotSuccess",
}

// MetricNames maps raw metric keys to display names.
var MetricNames = map[string]string{
	"team_xgShot":           "Expected Goals (xG)",
	"team_goal":             "Goles a favor",
	"team_shot":             "Tiros",
	"team_shotSuccess":      "Tiros a puerta",
	"team_possession":       "Posesión (%)",
	"team_ppda":             "PPDA",
	"team_passToFinalThird": "Pases al último tercio",
	"opp_xgShot":            "xG en contra",
	"opp_goal":              "Goles en contra",
	"opp_shot":              "Tiros en contra",
	"opp_shotSuccess":       "Tiros a puerta en contra",
	"opp_passToFinalThird":  "Pases al último tercio en contra",
}

// DisplayName falls back to a title-cased key.
func DisplayName(metric string) string {
	if name, ok := MetricNames[metric]; ok {
		return name
	}
	words := strings.Fields(strings.ReplaceAll(metric, "_", " "))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// Bar is one row of a vertical comparison.
type Bar struct {
	Team      string
	Value     float64
	HasValue  bool
	Highlight bool
	Average   bool
}

// Vertical is the league comparison for one metric.
type Vertical struct {
	Metric  string
	Name    string
	Inverse bool
	Bars    []Bar
}

// Verticals builds one comparison per metric present in the table. Bars
// are in chart draw order: ascending by value, descending for inverse
// metrics, missing values last.
func Verticals(rows []TeamAverage, team string) []Vertical {
	out := make([]Vertical, 0, len(VerticalMetrics))
	for _, metric := range VerticalMetrics {
		mean, ok := Mean(rows, metric)
		if !ok {
			continue
		}
		inverse := InverseMetrics[metric]

		bars := make([]Bar, 0, len(rows)+1)
		for _, row := range rows {
			v, has := row.Metric(metric)
			bars = append(bars, Bar{Team: row.Team, Value: v, HasValue: has, Highlight: strings.EqualFold(row.Team, team)})
		}
		bars = append(bars, Bar{Team: LeagueAverageLabel, Value: mean, HasValue: true, Average: true})

		sort.SliceStable(bars, func(i, j int) bool {
			a, b := bars[i], bars[j]
			if a.HasValue != b.HasValue {
				return a.HasValue
			}
			if inverse {
				return a.Value > b.Value
			}
			return a.Value < b.Value
		})

		out = append(out, Vertical{Metric: metric, Name: DisplayName(metric), Inverse: inverse, Bars: bars})
	}
	return out
}

// ComparisonMetrics are compared against the league mean.
var ComparisonMetrics = []string{
	"team_goal",
	"opp_goal",
	"team_xgShot",
	"team_possession",
	"team_shot",
	"team_shotSuccess",
}

// Comparison is the highlighted team against the league mean.
type Comparison struct {
	Metric string
	Name   string
	Team   float64
	League float64
}

func Compare(rows []TeamAverage, team TeamAverage) []Comparison {
	out := make([]Comparison, 0, len(ComparisonMetrics))
	for _, metric := range ComparisonMetrics {
		teamValue, _ := team.Metric(metric)
		leagueValue, _ := Mean(rows, metric)
		out = append(out, Comparison{Metric: metric, Name: DisplayName(metric), Team: teamValue, League: leagueValue})
	}
	return out
}

// Summary is the highlighted team's headline numbers.
type Summary struct {
	GoalsFor      float64
	GoalsAgainst  float64
	XG            float64
	XGAgainst     float64
	Possession    float64
	Shots         float64
	ShotsOnTarget float64
	PPDA          float64
	GoalsPosition int
	Teams         int
}

// Summarize ranks goals scored as 1 + the number of teams with more goals.
func Summarize(rows []TeamAverage, team TeamAverage) Summary {
	value := func(metric string) float64 {
		v, _ := team.Metric(metric)
		return v
	}

	s := Summary{
		GoalsFor:      value("team_goal"),
		GoalsAgainst:  value("opp_goal"),
		XG:            value("team_xgShot"),
		XGAgainst:     value("opp_xgShot"),
		Possession:    value("team_possession"),
		Shots:         value("team_shot"),
		ShotsOnTarget: value("team_shotSuccess"),
		PPDA:          value("team_ppda"),
		GoalsPosition: 1,
		Teams:         len(rows),
	}
	for _, row := range rows {
		if v, ok := row.Metric("team_goal"); ok && v > s.GoalsFor {
			s.GoalsPosition++
		}
	}
	return s
}
