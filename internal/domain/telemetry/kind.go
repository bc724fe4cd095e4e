package telemetry

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownDistanceKind = errors.New("unknown distance kind")

// DistanceKind selects one of the three tracked distance series.
type DistanceKind string

const (
	DistanceTotal  DistanceKind = "Distancia_total"
	DistanceHSR    DistanceKind = "Distancia_HSR"
	DistanceSprint DistanceKind = "Distancia_Sprint"
)

var AllDistanceKinds = []DistanceKind{DistanceTotal, DistanceHSR, DistanceSprint}

// ParseDistanceKind defaults an empty value to DistanceTotal.
func ParseDistanceKind(raw string) (DistanceKind, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return DistanceTotal, nil
	}
	for _, kind := range AllDistanceKinds {
		if strings.EqualFold(value, string(kind)) {
			return kind, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownDistanceKind, raw)
}

func (k DistanceKind) Label() string {
	switch k {
	case DistanceTotal:
		return "Distancia Total"
	case DistanceHSR:
		return "Distancia HSR"
	case DistanceSprint:
		return "Distancia Sprint"
	default:
		return string(k)
	}
}

// Distances groups the three distance series of a row or aggregate.
type Distances struct {
	Total  Value
	HSR    Value
	Sprint Value
}

func (d Distances) Of(kind DistanceKind) Value {
	switch kind {
	case DistanceHSR:
		return d.HSR
	case DistanceSprint:
		return d.Sprint
	default:
		return d.Total
	}
}

func (d Distances) Add(other Distances) Distances {
	return Distances{
		Total:  d.Total.Add(other.Total),
		HSR:    d.HSR.Add(other.HSR),
		Sprint: d.Sprint.Add(other.Sprint),
	}
}
