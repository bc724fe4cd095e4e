package microcycle

import (
	"strings"
	"time"

	"github.com/AlejandroRodriguezIT/plataforma-penafiel/internal/domain/physical"
	"github.com/AlejandroRodriguezIT/plataforma-penafiel/internal/domain/round"
	"github.com/AlejandroRodriguezIT/plataforma-penafiel/internal/domain/telemetry"
)

// Reference is the previous match summarized for the chart.
type Reference struct {
	Round    round.ID
	Date     time.Time
	Opponent string
	Value    float64
	Players  int
	// Found is true when any row of the previous match exists, even if no
	// player was eligible.
	Found bool
}

// ReferenceFromRows builds the previous-match reference from raw rows.
func ReferenceFromRows(previous round.ID, rows []telemetry.MatchRow, kind telemetry.DistanceKind) Reference {
	ref := Reference{Round: previous, Opponent: UnknownOpponent}
	halves := physical.HalvesOnly(rows)
	if len(halves) == 0 {
		return ref
	}

	ref.Found = true
	ref.Date = telemetry.Day(halves[0].Date)
	ref.Opponent = ParseOpponent(halves[0].Match)

	eligible := physical.Over(physical.EligibleMatchMinutes).Filter(physical.SumMatchRows(halves, physical.ByPlayer))
	std := physical.StandardizeAll(eligible)
	if mean, players, ok := physical.MeanOf(std, kind); ok {
		ref.Value = mean
		ref.Players = players
	}
	return ref
}

// Entry reports the chart entry for the reference; it is omitted when the
// date is unknown or the mean is not positive.
func (r Reference) Entry() (Entry, bool) {
	if r.Date.IsZero() || r.Value <= 0 {
		return Entry{}, false
	}
	return Entry{
		Kind:    KindMatch,
		Label:   MatchLabel(r.Round, r.Opponent),
		Date:    r.Date,
		Value:   r.Value,
		Players: r.Players,
	}, true
}

// SkipFunc receives sessions that could not be summarized.
type SkipFunc func(session physical.Session, err error)

// TrainingEntries keeps total rows with a player dated on or after start
// (when set), groups them into sessions and averages kind over players
// reaching the session mode fraction.
func TrainingEntries(rows []telemetry.TrainingRow, kind telemetry.DistanceKind, start time.Time, skip SkipFunc) []Entry {
	out := make([]Entry, 0)
	for _, session := range physical.GroupSessions(retainTraining(rows, start)) {
		kept, mode, err := physical.ModeFilter(session.Rows, physical.SessionModeFraction)
		if err != nil {
			if skip != nil {
				skip(session, err)
			}
			continue
		}

		var sum float64
		var n int
		for _, row := range kept {
			v := row.Distances.Of(kind)
			if !v.Valid {
				continue
			}
			sum += v.V
			n++
		}
		if n == 0 {
			continue
		}

		out = append(out, Entry{
			Kind:    KindTraining,
			Label:   session.Situation,
			Date:    session.Date,
			Value:   sum / float64(n),
			Players: len(kept),
			Mode:    mode,
		})
	}
	return out
}

// retainTraining keeps total rows with a player dated on or after start
// (when set).
func retainTraining(rows []telemetry.TrainingRow, start time.Time) []telemetry.TrainingRow {
	out := make([]telemetry.TrainingRow, 0, len(rows))
	for _, row := range rows {
		if strings.TrimSpace(row.Player) == "" || !telemetry.IsTotal(row.Task) {
			continue
		}
		if !start.IsZero() && telemetry.Day(row.Date).Before(telemetry.Day(start)) {
			continue
		}
		out = append(out, row)
	}
	return out
}

// EarliestTraining returns the first date among the training rows
// TrainingEntries retains, including sessions it later skips.
func EarliestTraining(rows []telemetry.TrainingRow, start time.Time) time.Time {
	var earliest time.Time
	for _, row := range retainTraining(rows, start) {
		if row.Date.IsZero() {
			continue
		}
		d := telemetry.Day(row.Date)
		if earliest.IsZero() || d.Before(earliest) {
			earliest = d
		}
	}
	return earliest
}
