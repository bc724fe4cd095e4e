package physical

import (
	"strings"
	"time"

	"github.com/AlejandroRodriguezIT/plataforma-penafiel/internal/domain/round"
	"github.com/AlejandroRodriguezIT/plataforma-penafiel/internal/domain/telemetry"
)

// GroupKey identifies an aggregation bucket. Unused fields stay zero.
type GroupKey struct {
	Round  round.ID
	Match  string
	Player string
}

// KeyFunc derives the bucket of a match row.
type KeyFunc func(telemetry.MatchRow) GroupKey

func ByRoundMatchPlayer(row telemetry.MatchRow) GroupKey {
	return GroupKey{Round: row.Round, Match: row.Match, Player: row.Player}
}

func ByPlayer(row telemetry.MatchRow) GroupKey {
	return GroupKey{Player: row.Player}
}

// PlayerAggregate holds the summed segments of one player in one bucket.
type PlayerAggregate struct {
	Key       GroupKey
	Date      time.Time
	Minutes   telemetry.Value
	Distances telemetry.Distances
	MaxSpeed  telemetry.Value
	Rows      int
}

// HalvesOnly keeps match-half rows with a named player.
func HalvesOnly(rows []telemetry.MatchRow) []telemetry.MatchRow {
	out := make([]telemetry.MatchRow, 0, len(rows))
	for _, row := range rows {
		if strings.TrimSpace(row.Player) == "" || !telemetry.IsMatchHalf(row.Task) {
			continue
		}
		out = append(out, row)
	}
	return out
}

// SumMatchRows sums minutes and distances per key and keeps the highest
// max speed. Rows without a player are skipped. Output follows the order
// in which keys first appear.
func SumMatchRows(rows []telemetry.MatchRow, key KeyFunc) []PlayerAggregate {
	index := make(map[GroupKey]int, len(rows))
	out := make([]PlayerAggregate, 0)

	for _, row := range rows {
		if strings.TrimSpace(row.Player) == "" {
			continue
		}
		k := key(row)
		i, ok := index[k]
		if !ok {
			i = len(out)
			index[k] = i
			out = append(out, PlayerAggregate{Key: k, Date: row.Date})
		}

		agg := &out[i]
		agg.Minutes = agg.Minutes.Add(row.Minutes)
		agg.Distances = agg.Distances.Add(row.Distances)
		agg.MaxSpeed = agg.MaxSpeed.Max(row.MaxSpeed)
		agg.Rows++
		if agg.Date.IsZero() {
			agg.Date = row.Date
		}
	}

	return out
}
