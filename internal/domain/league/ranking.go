package league

import "sort"

// Derived is a metric computed from a team row.
type Derived struct {
	Key          string
	Label        string
	HigherBetter bool
	Compute      func(TeamAverage) (float64, bool)
}

func raw(metric string) func(TeamAverage) (float64, bool) {
	return func(t TeamAverage) (float64, bool) {
		return t.Metric(metric)
	}
}

func ratio(num, den string, complement bool) func(TeamAverage) (float64, bool) {
	return func(t TeamAverage) (float64, bool) {
		a, okA := t.Metric(num)
		b, okB := t.Metric(den)
		if !okA || !okB {
			return 0, false
		}
		v, ok := SafeDiv(a, b)
		if !ok {
			return 0, false
		}
		if complement {
			return 100 - v*100, true
		}
		return v * 100, true
	}
}

// OffensiveEfficacy is shots per pass into the final third, in percent.
var OffensiveEfficacy = ratio("team_shot", "team_passToFinalThird", false)

// FinishingEfficacy is goals per shot, in percent.
var FinishingEfficacy = ratio("team_goal", "team_shot", false)

// DefensiveContainment is the complement of the opponents' offensive efficacy.
var DefensiveContainment = ratio("opp_shot", "opp_passToFinalThird", true)

// AvoidanceEfficacy is the complement of the opponents' finishing efficacy.
var AvoidanceEfficacy = ratio("opp_goal", "opp_shot", true)

// RankingMetrics is the global ranking set in display order.
func RankingMetrics() []Derived {
	return []Derived{
		{Key: "eficacia_ofensiva", Label: "Eficacia construcción ofensiva (%)", HigherBetter: true, Compute: OffensiveEfficacy},
		{Key: "expected_goals", Label: "Expected Goals (XG)", HigherBetter: true, Compute: raw("team_xgShot")},
		{Key: "eficacia_finalizacion", Label: "Eficacia finalización (%)", HigherBetter: true, Compute: FinishingEfficacy},
		{Key: "goles_a_favor", Label: "Goles a favor", HigherBetter: true, Compute: raw("team_goal")},
		{Key: "eficacia_defensiva", Label: "Eficacia de contención defensiva (%)", HigherBetter: true, Compute: DefensiveContainment},
		{Key: "expected_goals_contra", Label: "Expected goals en contra", HigherBetter: false, Compute: raw("opp_xgShot")},
		{Key: "eficacia_evitacion", Label: "Eficacia evitación (%)", HigherBetter: true, Compute: AvoidanceEfficacy},
		{Key: "goles_en_contra", Label: "Goles en contra", HigherBetter: false, Compute: raw("opp_goal")},
	}
}

// Ranking is the highlighted team's standing in one derived metric.
type Ranking struct {
	Key      string
	Label    string
	Value    float64
	HasValue bool
	Position int
	Teams    int
}

// Rank positions team among rows by metric (1 = best). Teams without a
// value are ranked last; ties keep table order.
func Rank(rows []TeamAverage, team string, metric Derived) (Ranking, bool) {
	type scored struct {
		team  string
		value float64
		ok    bool
	}
	items := make([]scored, 0, len(rows))
	for _, row := range rows {
		v, ok := metric.Compute(row)
		items = append(items, scored{team: row.Team, value: v, ok: ok})
	}
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if a.ok != b.ok {
			return a.ok
		}
		if !a.ok {
			return false
		}
		if metric.HigherBetter {
			return a.value > b.value
		}
		return a.value < b.value
	})

	for i, item := range items {
		if item.team != team {
			continue
		}
		return Ranking{
			Key:      metric.Key,
			Label:    metric.Label,
			Value:    item.value,
			HasValue: item.ok,
			Position: i + 1,
			Teams:    len(items),
		}, true
	}
	return Ranking{}, false
}
