package microcycle

import (
	"github.com/AlejandroRodriguezIT/plataforma-penafiel/internal/domain/round"
	"github.com/AlejandroRodriguezIT/plataforma-penafiel/internal/domain/telemetry"
)

// Summaries builds one picker item per round that has training rows. The
// opponent and match date come from the first match row of the same round.
func Summaries(training []telemetry.TrainingRow, matches []telemetry.MatchRow) []Summary {
	firstMatch := make(map[round.ID]telemetry.MatchRow)
	for _, row := range matches {
		if !row.Round.Valid() {
			continue
		}
		if _, ok := firstMatch[row.Round]; !ok {
			firstMatch[row.Round] = row
		}
	}

	index := make(map[round.ID]int)
	out := make([]Summary, 0)
	for _, row := range training {
		if !row.Round.Valid() {
			continue
		}
		i, ok := index[row.Round]
		if !ok {
			i = len(out)
			index[row.Round] = i
			item := Summary{Round: row.Round, Opponent: NoOpponent}
			if match, found := firstMatch[row.Round]; found {
				item.MatchDate = telemetry.Day(match.Date)
				if opponent := ParseOpponent(match.Match); opponent != UnknownOpponent {
					item.Opponent = opponent
				}
			}
			out = append(out, item)
		}

		day := telemetry.Day(row.Date)
		if day.IsZero() {
			continue
		}
		item := &out[i]
		if item.FirstDay.IsZero() || day.Before(item.FirstDay) {
			item.FirstDay = day
		}
		if day.After(item.LastDay) {
			item.LastDay = day
		}
	}

	SortSummaries(out)
	return out
}
