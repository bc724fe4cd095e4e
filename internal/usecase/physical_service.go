package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/AlejandroRodriguezIT/plataforma-penafiel/internal/domain/microcycle"
	"github.com/AlejandroRodriguezIT/plataforma-penafiel/internal/domain/outcome"
	"github.com/AlejandroRodriguezIT/plataforma-penafiel/internal/domain/physical"
	"github.com/AlejandroRodriguezIT/plataforma-penafiel/internal/domain/round"
	"github.com/AlejandroRodriguezIT/plataforma-penafiel/internal/domain/telemetry"
	"github.com/AlejandroRodriguezIT/plataforma-penafiel/internal/platform/logging"
	"github.com/sourcegraph/conc/pool"
)

// CollectiveBars is the per-match team profile of the season.
type CollectiveBars struct {
	Summaries []physical.RoundSummary
	Means     physical.Meters
}

// MatchOption is one selectable match of the season.
type MatchOption struct {
	Match    string
	Date     time.Time
	Round    round.ID
	Opponent string
	Label    string
}

// MatchList holds the season's matches, newest first.
type MatchList struct {
	Matches []MatchOption
	Latest  *MatchOption
}

type IndividualScatter struct {
	Match  MatchOption
	Points []physical.ScatterPoint
	Means  physical.Meters
}

type IndividualLeaderboard struct {
	ByTotal  []physical.LeaderboardEntry
	ByHSR    []physical.LeaderboardEntry
	BySprint []physical.LeaderboardEntry
}

type TeamEvolution struct {
	Points       []physical.EvolutionPoint
	Means        physical.Meters
	MaxSpeedMean float64
}

type PhysicalService struct {
	matches telemetry.MatchRepository
	results outcome.Repository
	order   round.Order
	logger  *logging.Logger
}

func NewPhysicalService(
	matches telemetry.MatchRepository,
	results outcome.Repository,
	order round.Order,
	logger *logging.Logger,
) *PhysicalService {
	if logger == nil {
		logger = logging.Default()
	}
	return &PhysicalService{
		matches: matches,
		results: results,
		order:   order,
		logger:  logger,
	}
}

func (s *PhysicalService) CollectiveBars(ctx context.Context) (CollectiveBars, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PhysicalService.CollectiveBars")
	defer span.End()

	var (
		rows    []telemetry.MatchRow
		results []outcome.Result
	)
	p := pool.New().WithErrors().WithFirstError().WithContext(ctx)
	p.Go(func(ctx context.Context) error {
		var err error
		rows, err = s.matches.ListMatchRows(ctx, telemetry.MatchFilter{HalvesOnly: true})
		if err != nil {
			return fmt.Errorf("list match rows: %w", err)
		}
		return nil
	})
	p.Go(func(ctx context.Context) error {
		var err error
		results, err = s.results.ListResults(ctx)
		if err != nil {
			return fmt.Errorf("list results: %w", err)
		}
		return nil
	})
	if err := p.Wait(); err != nil {
		return CollectiveBars{}, err
	}

	halves := physical.HalvesOnly(rows)
	if len(halves) == 0 {
		return CollectiveBars{}, fmt.Errorf("%w: no match half rows", ErrNoEligibleData)
	}

	eligible := physical.Over(physical.EligibleMatchMinutes).Filter(physical.SumMatchRows(halves, physical.ByRoundMatchPlayer))
	if len(eligible) == 0 {
		return CollectiveBars{}, fmt.Errorf("%w: no player above %d minutes", ErrNoEligibleData, physical.EligibleMatchMinutes)
	}

	summaries := physical.SummarizeRounds(physical.StandardizeAll(eligible))
	if len(summaries) == 0 {
		return CollectiveBars{}, fmt.Errorf("%w: no match with a known round", ErrNoEligibleData)
	}
	physical.OrderSummaries(summaries, s.order)
	summaries = physical.Annotate(summaries, results)

	return CollectiveBars{
		Summaries: summaries,
		Means:     physical.SeasonMeans(summaries),
	}, nil
}

func (s *PhysicalService) ListMatches(ctx context.Context) (MatchList, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PhysicalService.ListMatches")
	defer span.End()

	rows, err := s.matches.ListMatchRows(ctx, telemetry.MatchFilter{})
	if err != nil {
		return MatchList{}, fmt.Errorf("list match rows: %w", err)
	}

	matches := matchOptions(rows)
	out := MatchList{Matches: matches}
	if len(matches) > 0 {
		latest := matches[0]
		out.Latest = &latest
	}
	return out, nil
}

// IndividualScatter plots eligible players of one match; an empty match
// selects the most recent one.
func (s *PhysicalService) IndividualScatter(ctx context.Context, match string) (IndividualScatter, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PhysicalService.IndividualScatter")
	defer span.End()

	match = strings.TrimSpace(match)
	if match == "" {
		list, err := s.ListMatches(ctx)
		if err != nil {
			return IndividualScatter{}, err
		}
		if list.Latest == nil {
			return IndividualScatter{}, fmt.Errorf("%w: no matches recorded", ErrNoEligibleData)
		}
		match = list.Latest.Match
	}

	rows, err := s.matches.ListMatchRows(ctx, telemetry.MatchFilter{Match: match, HalvesOnly: true})
	if err != nil {
		return IndividualScatter{}, fmt.Errorf("list match rows: %w", err)
	}
	halves := physical.HalvesOnly(rows)
	if len(halves) == 0 {
		return IndividualScatter{}, fmt.Errorf("%w: match=%s", ErrNotFound, match)
	}

	eligible := physical.Over(physical.EligibleMatchMinutes).Filter(physical.SumMatchRows(halves, physical.ByPlayer))
	if len(eligible) == 0 {
		return IndividualScatter{}, fmt.Errorf("%w: no player above %d minutes in %s", ErrNoEligibleData, physical.EligibleMatchMinutes, match)
	}

	points, means := physical.Scatter(eligible)
	options := matchOptions(halves)
	return IndividualScatter{
		Match:  options[0],
		Points: points,
		Means:  means,
	}, nil
}

func (s *PhysicalService) IndividualLeaderboard(ctx context.Context) (IndividualLeaderboard, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PhysicalService.IndividualLeaderboard")
	defer span.End()

	rows, err := s.matches.ListMatchRows(ctx, telemetry.MatchFilter{HalvesOnly: true})
	if err != nil {
		return IndividualLeaderboard{}, fmt.Errorf("list match rows: %w", err)
	}

	top := physical.Leaderboard(physical.HalvesOnly(rows))
	if len(top) == 0 {
		return IndividualLeaderboard{}, fmt.Errorf("%w: no player reached %d minutes", ErrNoEligibleData, physical.LeaderboardMinutes)
	}

	byHSR := append([]physical.LeaderboardEntry(nil), top...)
	physical.SortLeaderboard(byHSR, telemetry.DistanceHSR)
	bySprint := append([]physical.LeaderboardEntry(nil), top...)
	physical.SortLeaderboard(bySprint, telemetry.DistanceSprint)

	return IndividualLeaderboard{ByTotal: top, ByHSR: byHSR, BySprint: bySprint}, nil
}

func (s *PhysicalService) Evolution(ctx context.Context) (TeamEvolution, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PhysicalService.Evolution")
	defer span.End()

	rows, err := s.matches.ListMatchRows(ctx, telemetry.MatchFilter{HalvesOnly: true})
	if err != nil {
		return TeamEvolution{}, fmt.Errorf("list match rows: %w", err)
	}

	points := physical.Evolution(physical.HalvesOnly(rows))
	if len(points) == 0 {
		return TeamEvolution{}, fmt.Errorf("%w: no rounds with match data", ErrNoEligibleData)
	}
	means, speed := physical.EvolutionMeans(points)
	return TeamEvolution{Points: points, Means: means, MaxSpeedMean: speed.Float()}, nil
}

// matchOptions returns unique (match, date, round) tuples, newest first.
func matchOptions(rows []telemetry.MatchRow) []MatchOption {
	type key struct {
		match string
		date  time.Time
		round round.ID
	}
	seen := make(map[key]struct{})
	out := make([]MatchOption, 0)
	for _, row := range rows {
		match := strings.TrimSpace(row.Match)
		if match == "" {
			continue
		}
		k := key{match: match, date: telemetry.Day(row.Date), round: row.Round}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}

		opponent := microcycle.ParseOpponent(match)
		out = append(out, MatchOption{
			Match:    match,
			Date:     k.date,
			Round:    row.Round,
			Opponent: opponent,
			Label:    fmt.Sprintf("%s - %s", row.Round, opponent),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.After(out[j].Date)
		}
		return out[i].Round > out[j].Round
	})
	return out
}
