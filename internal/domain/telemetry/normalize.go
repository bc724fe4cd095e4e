package telemetry

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/AlejandroRodriguezIT/plataforma-penafiel/internal/domain/round"
)

var (
	halfRegex       = regexp.MustCompile(`^(?:1|2)\s*ª?\s*parte$`)
	whitespaceRegex = regexp.MustCompile(`\s+`)
)

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"02/01/2006",
}

// NormalizeTask lowercases a task label and collapses inner whitespace.
func NormalizeTask(task string) string {
	return whitespaceRegex.ReplaceAllString(strings.ToLower(strings.TrimSpace(task)), " ")
}

// IsMatchHalf reports whether task labels one half of a match ("1ª parte", "2 ª parte", "1 parte").
func IsMatchHalf(task string) bool {
	return halfRegex.MatchString(NormalizeTask(task))
}

// IsTotal reports whether task is the per-session total row of a training.
func IsTotal(task string) bool {
	return NormalizeTask(task) == "total"
}

// ParseDate returns the zero time for blank input.
func ParseDate(raw string) (time.Time, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return time.Time{}, nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unsupported date %q", raw)
}

// Day truncates t to its calendar date.
func Day(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// WarnFunc receives per-row degradations. The batch always continues.
type WarnFunc func(index int, field string, err error)

func NormalizeMatchRecords(records []MatchRecord, warn WarnFunc) []MatchRow {
	out := make([]MatchRow, 0, len(records))
	for i, rec := range records {
		row := MatchRow{
			Player:   strings.TrimSpace(rec.Player),
			Task:     strings.TrimSpace(rec.Task),
			RoundRaw: strings.TrimSpace(rec.Round),
			Match:    strings.TrimSpace(rec.Match),
			Position: strings.TrimSpace(rec.Position),
			Minutes:  ParseValue(rec.Minutes),
			Distances: Distances{
				Total:  ParseValue(rec.TotalDistance),
				HSR:    ParseValue(rec.HSRDistance),
				Sprint: ParseValue(rec.SprintDistance),
			},
			MaxSpeed: ParseValue(rec.MaxSpeed),
		}
		row.Round = parseRound(i, row.RoundRaw, warn)
		row.Date = parseDate(i, rec.Date, warn)
		out = append(out, row)
	}
	return out
}

func NormalizeTrainingRecords(records []TrainingRecord, warn WarnFunc) []TrainingRow {
	out := make([]TrainingRow, 0, len(records))
	for i, rec := range records {
		row := TrainingRow{
			Player:    strings.TrimSpace(rec.Player),
			Situation: strings.TrimSpace(rec.Situation),
			Task:      strings.TrimSpace(rec.Task),
			RoundRaw:  strings.TrimSpace(rec.Round),
			Minutes:   ParseValue(rec.Minutes),
			Distances: Distances{
				Total:  ParseValue(rec.TotalDistance),
				HSR:    ParseValue(rec.HSRDistance),
				Sprint: ParseValue(rec.SprintDistance),
			},
		}
		row.Round = parseRound(i, row.RoundRaw, warn)
		row.Date = parseDate(i, rec.Date, warn)
		out = append(out, row)
	}
	return out
}

func parseRound(index int, raw string, warn WarnFunc) round.ID {
	if raw == "" {
		return 0
	}
	id, err := round.Parse(raw)
	if err != nil {
		if warn != nil {
			warn(index, "round", err)
		}
		return 0
	}
	return id
}

func parseDate(index int, raw string, warn WarnFunc) time.Time {
	t, err := ParseDate(raw)
	if err != nil {
		if warn != nil {
			warn(index, "date", err)
		}
		return time.Time{}
	}
	return t
}
