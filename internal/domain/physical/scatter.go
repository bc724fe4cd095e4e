package physical

// ScatterPoint is one player's raw match volume.
type ScatterPoint struct {
	Player  string
	Minutes float64
	Meters  Meters
}

// Scatter projects eligible per-player aggregates of a single match.
// Distances are not standardized; means skip absent values.
func Scatter(aggs []PlayerAggregate) ([]ScatterPoint, Meters) {
	out := make([]ScatterPoint, 0, len(aggs))
	var acc seriesMean
	for _, agg := range aggs {
		p := ScatterPoint{
			Player:  agg.Key.Player,
			Minutes: agg.Minutes.Float(),
			Meters:  Raw(agg.Distances),
		}
		acc.add(agg.Distances)
		out = append(out, p)
	}
	return out, acc.means()
}
