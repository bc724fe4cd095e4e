package physical

import (
	"sort"

	"github.com/AlejandroRodriguezIT/plataforma-penafiel/internal/domain/round"
	"github.com/AlejandroRodriguezIT/plataforma-penafiel/internal/domain/telemetry"
)

// EvolutionPoint is the team mean of raw segment values for one round.
type EvolutionPoint struct {
	Round    round.ID
	Means    Meters
	Samples  Samples
	MaxSpeed telemetry.Value
	Segments int
}

// Evolution groups rows per round, in plain numeric order.
func Evolution(rows []telemetry.MatchRow) []EvolutionPoint {
	type acc struct {
		distances  seriesMean
		speedSum   float64
		speedCount int
		rows       int
	}
	accs := make(map[round.ID]*acc)

	for _, row := range rows {
		if !row.Round.Valid() {
			continue
		}
		a, ok := accs[row.Round]
		if !ok {
			a = &acc{}
			accs[row.Round] = a
		}
		a.rows++
		a.distances.add(row.Distances)
		if row.MaxSpeed.Valid {
			a.speedSum += row.MaxSpeed.V
			a.speedCount++
		}
	}

	out := make([]EvolutionPoint, 0, len(accs))
	for id, a := range accs {
		p := EvolutionPoint{
			Round:    id,
			Means:    a.distances.means(),
			Samples:  a.distances.samples,
			Segments: a.rows,
		}
		if a.speedCount > 0 {
			p.MaxSpeed = telemetry.Of(a.speedSum / float64(a.speedCount))
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Round < out[j].Round })
	return out
}

// EvolutionMeans averages every series over the rounds that carry it.
func EvolutionMeans(points []EvolutionPoint) (Meters, telemetry.Value) {
	var (
		acc        seriesMean
		speedSum   float64
		speedCount int
	)
	for _, p := range points {
		acc.add(presentMeans(p.Means, p.Samples))
		if p.MaxSpeed.Valid {
			speedSum += p.MaxSpeed.V
			speedCount++
		}
	}
	if speedCount == 0 {
		return acc.means(), telemetry.Value{}
	}
	return acc.means(), telemetry.Of(speedSum / float64(speedCount))
}
