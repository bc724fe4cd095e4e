package microcycle

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/AlejandroRodriguezIT/plataforma-penafiel/internal/domain/round"
	"github.com/AlejandroRodriguezIT/plataforma-penafiel/internal/domain/telemetry"
)

const (
	// DateLayout is the day/month/year format used in labels.
	DateLayout = "02/01/2006"

	UnknownOpponent = "Rival desconocido"
	NoOpponent      = "Sin rival"
)

// Kind tells a match reference apart from a training session.
type Kind string

const (
	KindMatch    Kind = "match"
	KindTraining Kind = "training"
)

// Entry is one bar of a microcycle chart.
type Entry struct {
	Kind    Kind
	Label   string
	Date    time.Time
	Value   float64
	Players int
	Mode    float64
}

// Microcycle is the composed training week leading up to a match.
type Microcycle struct {
	Round          round.ID
	RequestedRound string
	Kind           telemetry.DistanceKind
	Opponent       string
	Label          string
	Start          time.Time
	End            time.Time
	Entries        []Entry
}

// Summary is one item of the microcycle picker.
type Summary struct {
	Round     round.ID
	Opponent  string
	MatchDate time.Time
	FirstDay  time.Time
	LastDay   time.Time
}

func (s Summary) Label() string {
	return fmt.Sprintf("%s - %s", s.Round, s.Opponent)
}

// ParseOpponent returns the text after the last "contra" of a match
// description, e.g. "Partido fútbol 11' contra SC Braga B".
func ParseOpponent(match string) string {
	idx := strings.LastIndex(match, "contra")
	if idx < 0 {
		return UnknownOpponent
	}
	opponent := strings.TrimSpace(match[idx+len("contra"):])
	if opponent == "" {
		return UnknownOpponent
	}
	return opponent
}

// MatchLabel is the label of the previous-match reference entry.
func MatchLabel(previous round.ID, opponent string) string {
	return fmt.Sprintf("Partido %s<br>VS %s", previous, opponent)
}

// Label renders "Microciclo J3 - Rival X (01/09/2024 - 08/09/2024)".
func Label(id round.ID, opponent string, start, end time.Time) string {
	return fmt.Sprintf("Microciclo %s - %s (%s - %s)", id, opponent, FormatDate(start), FormatDate(end))
}

func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}

// StartCandidates holds every date the microcycle start may come from.
type StartCandidates struct {
	Custom           time.Time
	PreviousMatch    time.Time
	EarliestTraining time.Time
	CurrentMatch     time.Time
}

// Start picks the first non-zero candidate in priority order.
func (c StartCandidates) Start() time.Time {
	for _, t := range []time.Time{c.Custom, c.PreviousMatch, c.EarliestTraining, c.CurrentMatch} {
		if !t.IsZero() {
			return t
		}
	}
	return time.Time{}
}

// SortEntries orders entries by date, keeping insertion order on ties.
func SortEntries(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].Date.Before(entries[j].Date) })
}

// SortSummaries orders by match date; undated rounds go last by round number.
func SortSummaries(items []Summary) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		switch {
		case a.MatchDate.IsZero() && b.MatchDate.IsZero():
			return a.Round < b.Round
		case a.MatchDate.IsZero():
			return false
		case b.MatchDate.IsZero():
			return true
		case !a.MatchDate.Equal(b.MatchDate):
			return a.MatchDate.Before(b.MatchDate)
		default:
			return a.Round < b.Round
		}
	})
}
