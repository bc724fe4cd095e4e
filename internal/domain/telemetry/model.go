package telemetry

import (
	"time"

	"github.com/AlejandroRodriguezIT/plataforma-penafiel/internal/domain/round"
)

// MatchRow is one player's measurements for one segment of one match.
type MatchRow struct {
	Player    string
	Date      time.Time
	Task      string
	Round     round.ID
	RoundRaw  string
	Match     string
	Position  string
	Minutes   Value
	Distances Distances
	MaxSpeed  Value
}

// TrainingRow is one player's measurements for one training entry.
type TrainingRow struct {
	Player    string
	Date      time.Time
	Situation string
	Task      string
	Round     round.ID
	RoundRaw  string
	Minutes   Value
	Distances Distances
}

// MatchRecord is a match row as read from a source, before normalization.
type MatchRecord struct {
	Player         string
	Date           string
	Task           string
	Round          string
	Match          string
	Position       string
	Minutes        string
	TotalDistance  string
	HSRDistance    string
	SprintDistance string
	MaxSpeed       string
}

// TrainingRecord is a training row as read from a source.
type TrainingRecord struct {
	Player         string
	Date           string
	Situation      string
	Task           string
	Round          string
	Minutes        string
	TotalDistance  string
	HSRDistance    string
	SprintDistance string
}
