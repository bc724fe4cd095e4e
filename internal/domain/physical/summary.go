package physical

import (
	"sort"
	"time"

	"github.com/AlejandroRodriguezIT/plataforma-penafiel/internal/domain/outcome"
	"github.com/AlejandroRodriguezIT/plataforma-penafiel/internal/domain/round"
	"github.com/AlejandroRodriguezIT/plataforma-penafiel/internal/domain/telemetry"
)

// RoundSummary is the team mean of standardized distances for one match.
type RoundSummary struct {
	Round   round.ID
	Match   string
	Date    time.Time
	Means   Meters
	Players int
	// Samples counts the players behind each series mean.
	Samples Samples

	OpponentCode string
	Outcome      outcome.Code
}

// SummarizeRounds averages standardized aggregates per (round, match).
// Aggregates without a known round are left out.
func SummarizeRounds(items []Standardized) []RoundSummary {
	type key struct {
		round round.ID
		match string
	}
	index := make(map[key]int)
	accs := make([]seriesMean, 0)
	out := make([]RoundSummary, 0)

	for _, item := range items {
		k := key{round: item.Aggregate.Key.Round, match: item.Aggregate.Key.Match}
		if !k.round.Valid() {
			continue
		}
		i, ok := index[k]
		if !ok {
			i = len(out)
			index[k] = i
			out = append(out, RoundSummary{Round: k.round, Match: k.match, Date: item.Aggregate.Date})
			accs = append(accs, seriesMean{})
		}
		accs[i].add(item.Values)
		out[i].Players++
		if out[i].Date.IsZero() {
			out[i].Date = item.Aggregate.Date
		}
	}

	for i := range out {
		out[i].Means = accs[i].means()
		out[i].Samples = accs[i].samples
	}
	return out
}

// OrderSummaries sorts by round position, then match description.
func OrderSummaries(summaries []RoundSummary, order round.Order) {
	ids := make([]round.ID, 0, len(summaries))
	for _, s := range summaries {
		ids = append(ids, s.Round)
	}
	positions := order.Positions(ids)

	sort.SliceStable(summaries, func(i, j int) bool {
		pi, pj := positions[summaries[i].Round], positions[summaries[j].Round]
		if pi != pj {
			return pi < pj
		}
		return summaries[i].Match < summaries[j].Match
	})
}

// SeasonMeans averages the per-match means. A match contributes to a series
// only when some player carried it.
func SeasonMeans(summaries []RoundSummary) Meters {
	var acc seriesMean
	for _, s := range summaries {
		acc.add(presentMeans(s.Means, s.Samples))
	}
	return acc.means()
}

// presentMeans marks series without samples as absent.
func presentMeans(m Meters, samples Samples) telemetry.Distances {
	value := func(v float64, n int) telemetry.Value {
		if n == 0 {
			return telemetry.Value{}
		}
		return telemetry.Of(v)
	}
	return telemetry.Distances{
		Total:  value(m.Total, samples.Total),
		HSR:    value(m.HSR, samples.HSR),
		Sprint: value(m.Sprint, samples.Sprint),
	}
}
