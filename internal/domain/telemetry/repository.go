package telemetry

import (
	"context"
	"slices"
	"strings"

	"github.com/AlejandroRodriguezIT/plataforma-penafiel/internal/domain/round"
)

// MatchFilter narrows match rows. Zero value selects everything.
type MatchFilter struct {
	Rounds     []round.ID
	Match      string
	HalvesOnly bool
}

func (f MatchFilter) Accept(row MatchRow) bool {
	if len(f.Rounds) > 0 && !slices.Contains(f.Rounds, row.Round) {
		return false
	}
	if f.Match != "" && !strings.EqualFold(strings.TrimSpace(f.Match), row.Match) {
		return false
	}
	if f.HalvesOnly && !IsMatchHalf(row.Task) {
		return false
	}
	return true
}

// TrainingFilter narrows training rows. Zero value selects everything.
type TrainingFilter struct {
	Rounds    []round.ID
	TotalOnly bool
}

func (f TrainingFilter) Accept(row TrainingRow) bool {
	if len(f.Rounds) > 0 && !slices.Contains(f.Rounds, row.Round) {
		return false
	}
	if f.TotalOnly && !IsTotal(row.Task) {
		return false
	}
	return true
}

// MatchRepository describes match telemetry reads from use cases.
type MatchRepository interface {
	ListMatchRows(ctx context.Context, filter MatchFilter) ([]MatchRow, error)
}

// TrainingRepository describes training telemetry reads from use cases.
type TrainingRepository interface {
	ListTrainingRows(ctx context.Context, filter TrainingFilter) ([]TrainingRow, error)
}
