package outcome

import (
	"context"
	"strings"

	"github.com/AlejandroRodriguezIT/plataforma-penafiel/internal/domain/round"
)

// Code is a match outcome from the highlighted team's point of view.
type Code string

const (
	Win     Code = "V"
	Draw    Code = "E"
	Loss    Code = "D"
	Unknown Code = ""
)

const (
	colorWin     = "#4CAF50"
	colorDraw    = "#FFC107"
	colorLoss    = "#DC143C"
	colorUnknown = "#9e9e9e"
)

// Normalize trims and uppercases raw; anything outside V/E/D is Unknown.
func Normalize(raw string) Code {
	switch c := Code(strings.ToUpper(strings.TrimSpace(raw))); c {
	case Win, Draw, Loss:
		return c
	default:
		return Unknown
	}
}

func (c Code) Color() string {
	switch c {
	case Win:
		return colorWin
	case Draw:
		return colorDraw
	case Loss:
		return colorLoss
	default:
		return colorUnknown
	}
}

// Label is the chart legend text.
func (c Code) Label() string {
	if c == Unknown {
		return "N/A"
	}
	return string(c)
}

// Result is one row of the results table.
type Result struct {
	Round        round.ID
	RoundRaw     string
	OpponentCode string
	Outcome      Code
}

// Repository describes result persistence needs from use cases.
type Repository interface {
	ListResults(ctx context.Context) ([]Result, error)
}

// Index keeps the first result seen for every round.
func Index(results []Result) map[round.ID]Result {
	out := make(map[round.ID]Result, len(results))
	for _, r := range results {
		if !r.Round.Valid() {
			continue
		}
		if _, exists := out[r.Round]; exists {
			continue
		}
		out[r.Round] = r
	}
	return out
}
