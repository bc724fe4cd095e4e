package physical

import "github.com/AlejandroRodriguezIT/plataforma-penafiel/internal/domain/telemetry"

// StandardMinutes is the reference match length distances are rescaled to.
const StandardMinutes = 94

// Standardize rescales a distance covered in minutes to StandardMinutes.
// It reports false when minutes is not positive.
func Standardize(distance, minutes float64) (float64, bool) {
	if minutes <= 0 {
		return 0, false
	}
	return distance / minutes * StandardMinutes, true
}

// Meters holds one value per distance series.
type Meters struct {
	Total  float64
	HSR    float64
	Sprint float64
}

func (m Meters) Of(kind telemetry.DistanceKind) float64 {
	switch kind {
	case telemetry.DistanceHSR:
		return m.HSR
	case telemetry.DistanceSprint:
		return m.Sprint
	default:
		return m.Total
	}
}

// Raw returns the summed distances without rescaling. Absent series read
// as zero; use the Distances field of the caller for presence.
func Raw(d telemetry.Distances) Meters {
	return Meters{Total: d.Total.Float(), HSR: d.HSR.Float(), Sprint: d.Sprint.Float()}
}

// Samples counts, per series, how many values went into a mean.
type Samples struct {
	Total  int
	HSR    int
	Sprint int
}

func (s Samples) Of(kind telemetry.DistanceKind) int {
	switch kind {
	case telemetry.DistanceHSR:
		return s.HSR
	case telemetry.DistanceSprint:
		return s.Sprint
	default:
		return s.Total
	}
}

// seriesMean averages each series over the values present only.
type seriesMean struct {
	sums    Meters
	samples Samples
}

func (a *seriesMean) add(d telemetry.Distances) {
	if d.Total.Valid {
		a.sums.Total += d.Total.V
		a.samples.Total++
	}
	if d.HSR.Valid {
		a.sums.HSR += d.HSR.V
		a.samples.HSR++
	}
	if d.Sprint.Valid {
		a.sums.Sprint += d.Sprint.V
		a.samples.Sprint++
	}
}

func (a seriesMean) means() Meters {
	return Meters{
		Total:  meanOrZero(a.sums.Total, a.samples.Total),
		HSR:    meanOrZero(a.sums.HSR, a.samples.HSR),
		Sprint: meanOrZero(a.sums.Sprint, a.samples.Sprint),
	}
}

// Standardized is a player aggregate rescaled to StandardMinutes. Values
// keeps absent series absent; Meters is its zero-filled view.
type Standardized struct {
	Aggregate PlayerAggregate
	Values    telemetry.Distances
	Meters    Meters
}

func standardizeValue(v telemetry.Value, minutes float64) telemetry.Value {
	if !v.Valid {
		return telemetry.Value{}
	}
	out, ok := Standardize(v.V, minutes)
	if !ok {
		return telemetry.Value{}
	}
	return telemetry.Of(out)
}

// StandardizeAll rescales every aggregate and drops those without positive minutes.
func StandardizeAll(aggs []PlayerAggregate) []Standardized {
	out := make([]Standardized, 0, len(aggs))
	for _, agg := range aggs {
		if !agg.Minutes.Valid || agg.Minutes.V <= 0 {
			continue
		}
		m := agg.Minutes.V
		values := telemetry.Distances{
			Total:  standardizeValue(agg.Distances.Total, m),
			HSR:    standardizeValue(agg.Distances.HSR, m),
			Sprint: standardizeValue(agg.Distances.Sprint, m),
		}
		out = append(out, Standardized{
			Aggregate: agg,
			Values:    values,
			Meters:    Raw(values),
		})
	}
	return out
}

// MeanOf averages one series over the standardized aggregates that carry
// it and reports how many did. ok is false when none did.
func MeanOf(items []Standardized, kind telemetry.DistanceKind) (mean float64, players int, ok bool) {
	var acc seriesMean
	for _, item := range items {
		acc.add(item.Values)
	}
	players = acc.samples.Of(kind)
	if players == 0 {
		return 0, 0, false
	}
	return acc.means().Of(kind), players, true
}
