package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/AlejandroRodriguezIT/plataforma-penafiel/internal/domain/league"
)

// GlobalRanking is the highlighted team's position in every derived metric.
type GlobalRanking struct {
	Team     string
	Teams    int
	Rankings []league.Ranking
}

type LeagueComparison struct {
	Team    string
	Summary league.Summary
	Metrics []league.Comparison
}

type LeagueService struct {
	leagueRepo league.Repository
	team       string
}

func NewLeagueService(leagueRepo league.Repository, highlightTeam string) *LeagueService {
	return &LeagueService{
		leagueRepo: leagueRepo,
		team:       strings.TrimSpace(highlightTeam),
	}
}

func (s *LeagueService) Team() string {
	return s.team
}

func (s *LeagueService) Ranking(ctx context.Context) (GlobalRanking, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.Ranking")
	defer span.End()

	rows, team, err := s.load(ctx)
	if err != nil {
		return GlobalRanking{}, err
	}

	metrics := league.RankingMetrics()
	out := GlobalRanking{Team: team.Team, Teams: len(rows), Rankings: make([]league.Ranking, 0, len(metrics))}
	for _, metric := range metrics {
		ranking, ok := league.Rank(rows, team.Team, metric)
		if !ok {
			continue
		}
		out.Rankings = append(out.Rankings, ranking)
	}
	return out, nil
}

func (s *LeagueService) Verticals(ctx context.Context) ([]league.Vertical, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.Verticals")
	defer span.End()

	rows, team, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	verticals := league.Verticals(rows, team.Team)
	if len(verticals) == 0 {
		return nil, fmt.Errorf("%w: no comparable metrics", ErrNoEligibleData)
	}
	return verticals, nil
}

func (s *LeagueService) OffensiveStyle(ctx context.Context) (league.Style, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.OffensiveStyle")
	defer span.End()

	return s.style(ctx, league.OffensiveStyle)
}

func (s *LeagueService) DefensiveStyle(ctx context.Context) (league.Style, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.DefensiveStyle")
	defer span.End()

	return s.style(ctx, league.DefensiveStyle)
}

func (s *LeagueService) Summary(ctx context.Context) (league.Summary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.Summary")
	defer span.End()

	rows, team, err := s.load(ctx)
	if err != nil {
		return league.Summary{}, err
	}
	return league.Summarize(rows, team), nil
}

func (s *LeagueService) Comparison(ctx context.Context) (LeagueComparison, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.Comparison")
	defer span.End()

	rows, team, err := s.load(ctx)
	if err != nil {
		return LeagueComparison{}, err
	}
	return LeagueComparison{
		Team:    team.Team,
		Summary: league.Summarize(rows, team),
		Metrics: league.Compare(rows, team),
	}, nil
}

func (s *LeagueService) style(
	ctx context.Context,
	build func([]league.TeamAverage, string) (league.Style, bool),
) (league.Style, error) {
	rows, team, err := s.load(ctx)
	if err != nil {
		return league.Style{}, err
	}
	style, ok := build(rows, team.Team)
	if !ok {
		return league.Style{}, fmt.Errorf("%w: no team has both style coordinates", ErrNoEligibleData)
	}
	return style, nil
}

// load returns the team table without the aggregate row and the
// highlighted team's own row.
func (s *LeagueService) load(ctx context.Context) ([]league.TeamAverage, league.TeamAverage, error) {
	if s.team == "" {
		return nil, league.TeamAverage{}, fmt.Errorf("%w: highlight team is not configured", ErrInvalidInput)
	}

	all, err := s.leagueRepo.ListTeamAverages(ctx)
	if err != nil {
		return nil, league.TeamAverage{}, fmt.Errorf("list team averages: %w", err)
	}
	rows := league.Teams(all)
	if len(rows) == 0 {
		return nil, league.TeamAverage{}, fmt.Errorf("%w: league table is empty", ErrNoEligibleData)
	}

	team, ok := league.Find(rows, s.team)
	if !ok {
		return nil, league.TeamAverage{}, fmt.Errorf("%w: team=%s", ErrNotFound, s.team)
	}
	return rows, team, nil
}
