package physical

import (
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/AlejandroRodriguezIT/plataforma-penafiel/internal/domain/telemetry"
)

const (
	// EligibleMatchMinutes is the strict lower bound for match aggregates.
	EligibleMatchMinutes = 70
	// LeaderboardMinutes is the inclusive lower bound for season leaderboards.
	LeaderboardMinutes = 90
	// SessionModeFraction is the share of the modal session minutes a
	// player must reach to count for the session mean.
	SessionModeFraction = 0.7
)

var ErrNoMode = errors.New("no valid minutes to compute mode")

// Threshold is a fixed minutes cut.
type Threshold struct {
	Minutes   float64
	Inclusive bool
}

// Over keeps aggregates with strictly more than n minutes.
func Over(n float64) Threshold {
	return Threshold{Minutes: n}
}

// AtLeast keeps aggregates with n minutes or more.
func AtLeast(n float64) Threshold {
	return Threshold{Minutes: n, Inclusive: true}
}

func (t Threshold) Keep(minutes telemetry.Value) bool {
	if !minutes.Valid {
		return false
	}
	if t.Inclusive {
		return minutes.V >= t.Minutes
	}
	return minutes.V > t.Minutes
}

func (t Threshold) Filter(aggs []PlayerAggregate) []PlayerAggregate {
	out := make([]PlayerAggregate, 0, len(aggs))
	for _, agg := range aggs {
		if t.Keep(agg.Minutes) {
			out = append(out, agg)
		}
	}
	return out
}

// Mode returns the most frequent value; ties go to the smallest.
func Mode(values []float64) (float64, bool) {
	if len(values) == 0 {
		return 0, false
	}
	counts := make(map[float64]int, len(values))
	for _, v := range values {
		counts[v]++
	}

	best, bestCount := 0.0, 0
	for v, c := range counts {
		if c > bestCount || (c == bestCount && v < best) {
			best, bestCount = v, c
		}
	}
	return best, true
}

// Session is the set of training rows sharing a situation and a date.
type Session struct {
	Situation string
	Date      time.Time
	Rows      []telemetry.TrainingRow
}

// GroupSessions buckets rows by (situation, date) and returns sessions
// ordered by date, then situation.
func GroupSessions(rows []telemetry.TrainingRow) []Session {
	type key struct {
		situation string
		date      time.Time
	}
	index := make(map[key]int)
	out := make([]Session, 0)

	for _, row := range rows {
		k := key{situation: strings.TrimSpace(row.Situation), date: telemetry.Day(row.Date)}
		i, ok := index[k]
		if !ok {
			i = len(out)
			index[k] = i
			out = append(out, Session{Situation: k.situation, Date: k.date})
		}
		out[i].Rows = append(out[i].Rows, row)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.Before(out[j].Date)
		}
		return out[i].Situation < out[j].Situation
	})
	return out
}

// ModeFilter drops rows with missing minutes, computes the modal minutes of
// what remains and keeps rows reaching fraction of it.
func ModeFilter(rows []telemetry.TrainingRow, fraction float64) ([]telemetry.TrainingRow, float64, error) {
	valid := make([]telemetry.TrainingRow, 0, len(rows))
	minutes := make([]float64, 0, len(rows))
	for _, row := range rows {
		if !row.Minutes.Valid {
			continue
		}
		valid = append(valid, row)
		minutes = append(minutes, row.Minutes.V)
	}

	mode, ok := Mode(minutes)
	if !ok {
		return nil, 0, ErrNoMode
	}

	limit := fraction * mode
	out := make([]telemetry.TrainingRow, 0, len(valid))
	for _, row := range valid {
		if row.Minutes.V >= limit {
			out = append(out, row)
		}
	}
	return out, mode, nil
}
