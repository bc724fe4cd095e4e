package physical

import (
	"sort"
	"strings"

	"github.com/AlejandroRodriguezIT/plataforma-penafiel/internal/domain/telemetry"
)

const LeaderboardSize = 15

// LeaderboardEntry is a player's season profile.
type LeaderboardEntry struct {
	Player   string
	Means    Meters
	MaxSpeed telemetry.Value
	Minutes  float64
	Segments int
}

// Leaderboard averages each distance per segment, keeps players reaching
// LeaderboardMinutes in total and returns the top LeaderboardSize by mean
// total distance.
func Leaderboard(rows []telemetry.MatchRow) []LeaderboardEntry {
	type acc struct {
		entry     LeaderboardEntry
		distances seriesMean
	}
	index := make(map[string]int)
	accs := make([]acc, 0)

	for _, row := range rows {
		player := strings.TrimSpace(row.Player)
		if player == "" {
			continue
		}
		i, ok := index[player]
		if !ok {
			i = len(accs)
			index[player] = i
			accs = append(accs, acc{entry: LeaderboardEntry{Player: player}})
		}
		a := &accs[i]
		a.entry.Segments++
		a.entry.Minutes += row.Minutes.Float()
		a.entry.MaxSpeed = a.entry.MaxSpeed.Max(row.MaxSpeed)
		a.distances.add(row.Distances)
	}

	threshold := AtLeast(LeaderboardMinutes)
	out := make([]LeaderboardEntry, 0, len(accs))
	for _, a := range accs {
		if !threshold.Keep(telemetry.Of(a.entry.Minutes)) {
			continue
		}
		e := a.entry
		e.Means = a.distances.means()
		out = append(out, e)
	}

	SortLeaderboard(out, telemetry.DistanceTotal)
	if len(out) > LeaderboardSize {
		out = out[:LeaderboardSize]
	}
	return out
}

// SortLeaderboard orders entries descending by kind, then by player name.
func SortLeaderboard(entries []LeaderboardEntry, kind telemetry.DistanceKind) {
	sort.SliceStable(entries, func(i, j int) bool {
		vi, vj := entries[i].Means.Of(kind), entries[j].Means.Of(kind)
		if vi != vj {
			return vi > vj
		}
		return entries[i].Player < entries[j].Player
	})
}

func meanOrZero(sum float64, n int) float64 {
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}
