package telemetry

import (
	"math"
	"strconv"
	"strings"
)

// Value is a measurement that may be missing. Missing values are never
// read as zero.
type Value struct {
	V     float64
	Valid bool
}

func Of(v float64) Value {
	return Value{V: v, Valid: true}
}

// ParseValue accepts "1.234", "1,5", "45%" and surrounding blanks.
// Anything else yields an absent value.
func ParseValue(raw string) Value {
	s := strings.TrimSpace(raw)
	s = strings.TrimSuffix(s, "%")
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", "."))
	if s == "" {
		return Value{}
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return Value{}
	}
	return Of(v)
}

// Add sums two values; the result is absent only when both are.
func (v Value) Add(other Value) Value {
	switch {
	case !v.Valid:
		return other
	case !other.Valid:
		return v
	default:
		return Of(v.V + other.V)
	}
}

// Max keeps the larger of two values, ignoring absent ones.
func (v Value) Max(other Value) Value {
	switch {
	case !v.Valid:
		return other
	case !other.Valid:
		return v
	case other.V > v.V:
		return other
	default:
		return v
	}
}

// Float returns the value or 0 when absent.
func (v Value) Float() float64 {
	if !v.Valid {
		return 0
	}
	return v.V
}
