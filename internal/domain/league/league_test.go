package league

import (
	"math"
	"testing"
)

func sampleTable() []TeamAverage {
	return []TeamAverage{
		{Team: "Penafiel", Metrics: map[string]float64{
			"team_goal": 1.5, "team_shot": 12, "team_passToFinalThird": 40, "team_xgShot": 1.4, "team_shotSuccess": 5, "team_possession": 52,
			"opp_goal": 1.0, "opp_shot": 10, "opp_passToFinalThird": 50, "opp_xgShot": 1.1, "opp_shotSuccess": 3, "team_ppda": 9,
		}},
		{Team: "Tondela", Metrics: map[string]float64{
			"team_goal": 2.0, "team_shot": 15, "team_passToFinalThird": 60, "team_xgShot": 1.8, "team_shotSuccess": 6, "team_possession": 55,
			"opp_goal": 0.8, "opp_shot": 8, "opp_passToFinalThird": 40, "opp_xgShot": 0.9, "opp_shotSuccess": 2, "team_ppda": 8,
		}},
		{Team: "Feirense", Metrics: map[string]float64{
			"team_goal": 0.9, "team_shot": 0, "team_passToFinalThird": 0, "team_xgShot": 0.7, "team_shotSuccess": 3, "team_possession": 43,
			"opp_goal": 1.6, "opp_shot": 14, "opp_passToFinalThird": 70, "opp_xgShot": 1.7, "opp_shotSuccess": 6, "team_ppda": 12,
		}},
		{Team: AggregateRow, Metrics: map[string]float64{"team_goal": 1.4}},
	}
}

func TestTeams_DropsAggregateRow(t *testing.T) {
	rows := Teams(sampleTable())
	if len(rows) != 3 {
		t.Fatalf("expected 3 teams, got %d", len(rows))
	}
	for _, row := range rows {
		if row.Team == AggregateRow {
			t.Fatalf("aggregate row must be excluded")
		}
	}
}

func TestRank(t *testing.T) {
	rows := Teams(sampleTable())

	tests := []struct {
		key          string
		wantPosition int
		wantValue    float64
	}{
		{key: "eficacia_ofensiva", wantPosition: 1, wantValue: 30},
		{key: "goles_a_favor", wantPosition: 2, wantValue: 1.5},
		{key: "goles_en_contra", wantPosition: 2, wantValue: 1.0},
		{key: "expected_goals", wantPosition: 2, wantValue: 1.4},
	}

	metrics := make(map[string]Derived)
	for _, m := range RankingMetrics() {
		metrics[m.Key] = m
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got, ok := Rank(rows, "Penafiel", metrics[tt.key])
			if !ok {
				t.Fatalf("team not ranked")
			}
			if got.Position != tt.wantPosition {
				t.Fatalf("position=%d want=%d", got.Position, tt.wantPosition)
			}
			if math.Abs(got.Value-tt.wantValue) > 1e-9 {
				t.Fatalf("value=%v want=%v", got.Value, tt.wantValue)
			}
			if got.Teams != 3 {
				t.Fatalf("teams=%d want=3", got.Teams)
			}
		})
	}
}

func TestRank_MissingValueGoesLast(t *testing.T) {
	rows := Teams(sampleTable())
	var offensive Derived
	for _, m := range RankingMetrics() {
		if m.Key == "eficacia_ofensiva" {
			offensive = m
		}
	}

	got, ok := Rank(rows, "Feirense", offensive)
	if !ok {
		t.Fatalf("team not ranked")
	}
	if got.HasValue || got.Position != 3 {
		t.Fatalf("expected absent value ranked last, got %+v", got)
	}
}

func TestVerticals_Order(t *testing.T) {
	verticals := Verticals(Teams(sampleTable()), "Penafiel")
	if len(verticals) != len(VerticalMetrics) {
		t.Fatalf("expected %d verticals, got %d", len(VerticalMetrics), len(verticals))
	}

	for _, v := range verticals {
		if len(v.Bars) != 4 {
			t.Fatalf("%s: expected 3 teams plus league mean, got %d", v.Metric, len(v.Bars))
		}
		for i := 1; i < len(v.Bars); i++ {
			prev, cur := v.Bars[i-1].Value, v.Bars[i].Value
			if v.Inverse && prev < cur {
				t.Fatalf("%s: inverse metric must be descending", v.Metric)
			}
			if !v.Inverse && prev > cur {
				t.Fatalf("%s: metric must be ascending", v.Metric)
			}
		}
	}
}

func TestOffensiveStyle(t *testing.T) {
	style, ok := OffensiveStyle(Teams(sampleTable()), "Penafiel")
	if !ok {
		t.Fatalf("expected style points")
	}
	if len(style.Points) != 2 {
		t.Fatalf("teams without shots must be dropped, got %d points", len(style.Points))
	}
	if style.MeanX != 27.5 {
		t.Fatalf("unexpected mean x: %v", style.MeanX)
	}
	if !style.Points[0].Highlight {
		t.Fatalf("expected highlighted team first")
	}
}

func TestSummarize(t *testing.T) {
	rows := Teams(sampleTable())
	team, _ := Find(rows, "penafiel")
	s := Summarize(rows, team)

	if s.GoalsPosition != 2 || s.Teams != 3 {
		t.Fatalf("unexpected summary: %+v", s)
	}
	if s.PPDA != 9 {
		t.Fatalf("unexpected ppda: %v", s.PPDA)
	}

	cmp := Compare(rows, team)
	if len(cmp) != len(ComparisonMetrics) {
		t.Fatalf("unexpected comparison size: %d", len(cmp))
	}
	if math.Abs(cmp[0].League-(1.5+2.0+0.9)/3) > 1e-9 {
		t.Fatalf("unexpected league mean: %v", cmp[0].League)
	}
}
