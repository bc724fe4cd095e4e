package usecase

import (
	"context"
	"fmt"

	"github.com/AlejandroRodriguezIT/plataforma-penafiel/internal/domain/microcycle"
	"github.com/AlejandroRodriguezIT/plataforma-penafiel/internal/domain/physical"
	"github.com/AlejandroRodriguezIT/plataforma-penafiel/internal/domain/round"
	"github.com/AlejandroRodriguezIT/plataforma-penafiel/internal/domain/telemetry"
	"github.com/AlejandroRodriguezIT/plataforma-penafiel/internal/platform/logging"
	"github.com/sourcegraph/conc/pool"
)

type MicrocycleService struct {
	matches   telemetry.MatchRepository
	training  telemetry.TrainingRepository
	overrides round.Overrides
	logger    *logging.Logger
}

func NewMicrocycleService(
	matches telemetry.MatchRepository,
	training telemetry.TrainingRepository,
	overrides round.Overrides,
	logger *logging.Logger,
) *MicrocycleService {
	if logger == nil {
		logger = logging.Default()
	}
	return &MicrocycleService{
		matches:   matches,
		training:  training,
		overrides: overrides,
		logger:    logger,
	}
}

// List returns one picker item per round with training data.
func (s *MicrocycleService) List(ctx context.Context) ([]microcycle.Summary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MicrocycleService.List")
	defer span.End()

	var (
		training []telemetry.TrainingRow
		matches  []telemetry.MatchRow
	)
	p := pool.New().WithErrors().WithFirstError().WithContext(ctx)
	p.Go(func(ctx context.Context) error {
		var err error
		training, err = s.training.ListTrainingRows(ctx, telemetry.TrainingFilter{})
		if err != nil {
			return fmt.Errorf("list training rows: %w", err)
		}
		return nil
	})
	p.Go(func(ctx context.Context) error {
		var err error
		matches, err = s.matches.ListMatchRows(ctx, telemetry.MatchFilter{})
		if err != nil {
			return fmt.Errorf("list match rows: %w", err)
		}
		return nil
	})
	if err := p.Wait(); err != nil {
		return nil, err
	}

	return microcycle.Summaries(training, matches), nil
}

// Compose builds the team microcycle of a round for one distance kind.
func (s *MicrocycleService) Compose(ctx context.Context, rawRound, rawKind string) (microcycle.Microcycle, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MicrocycleService.Compose")
	defer span.End()

	id, err := round.Parse(rawRound)
	if err != nil {
		return microcycle.Microcycle{}, fmt.Errorf("%w: round=%q", ErrInvalidInput, rawRound)
	}
	kind, err := telemetry.ParseDistanceKind(rawKind)
	if err != nil {
		return microcycle.Microcycle{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	plan := s.overrides.Resolve(id)
	withPrevious := plan.HasPrevious && plan.ShowPrevious

	var (
		current  []telemetry.MatchRow
		previous []telemetry.MatchRow
		training []telemetry.TrainingRow
	)
	p := pool.New().WithErrors().WithFirstError().WithContext(ctx)
	p.Go(func(ctx context.Context) error {
		var err error
		current, err = s.matches.ListMatchRows(ctx, telemetry.MatchFilter{Rounds: []round.ID{id}})
		if err != nil {
			return fmt.Errorf("list match rows round=%s: %w", id, err)
		}
		return nil
	})
	if withPrevious {
		p.Go(func(ctx context.Context) error {
			var err error
			previous, err = s.matches.ListMatchRows(ctx, telemetry.MatchFilter{Rounds: []round.ID{plan.Previous}, HalvesOnly: true})
			if err != nil {
				return fmt.Errorf("list match rows round=%s: %w", plan.Previous, err)
			}
			return nil
		})
	}
	p.Go(func(ctx context.Context) error {
		var err error
		training, err = s.training.ListTrainingRows(ctx, telemetry.TrainingFilter{Rounds: []round.ID{id}, TotalOnly: true})
		if err != nil {
			return fmt.Errorf("list training rows round=%s: %w", id, err)
		}
		return nil
	})
	if err := p.Wait(); err != nil {
		return microcycle.Microcycle{}, err
	}

	if len(current) == 0 {
		return microcycle.Microcycle{}, fmt.Errorf("%w: no match data for round %s", ErrNotFound, id)
	}
	head := currentMatchRow(current)
	opponent := microcycle.ParseOpponent(head.Match)
	matchDate := telemetry.Day(head.Date)

	entries := make([]microcycle.Entry, 0)
	var ref microcycle.Reference
	if withPrevious {
		ref = microcycle.ReferenceFromRows(plan.Previous, previous, kind)
		if entry, ok := ref.Entry(); ok {
			entries = append(entries, entry)
		}
	}

	sessions := microcycle.TrainingEntries(training, kind, plan.Start, func(session physical.Session, err error) {
		s.logger.WarnContext(ctx, "training session skipped",
			"round", id.String(),
			"situation", session.Situation,
			"date", microcycle.FormatDate(session.Date),
			"error", err,
		)
	})
	entries = append(entries, sessions...)
	microcycle.SortEntries(entries)

	candidates := microcycle.StartCandidates{
		EarliestTraining: microcycle.EarliestTraining(training, plan.Start),
		CurrentMatch:     matchDate,
	}
	if plan.HasStart {
		candidates.Custom = plan.Start
	}
	if ref.Found {
		candidates.PreviousMatch = ref.Date
	}
	start := candidates.Start()

	return microcycle.Microcycle{
		Round:          id,
		RequestedRound: rawRound,
		Kind:           kind,
		Opponent:       opponent,
		Label:          microcycle.Label(id, opponent, start, matchDate),
		Start:          start,
		End:            matchDate,
		Entries:        entries,
	}, nil
}

// currentMatchRow picks the first dated match half, then any dated row.
func currentMatchRow(rows []telemetry.MatchRow) telemetry.MatchRow {
	for _, row := range rows {
		if telemetry.IsMatchHalf(row.Task) && !row.Date.IsZero() {
			return row
		}
	}
	for _, row := range rows {
		if !row.Date.IsZero() {
			return row
		}
	}
	return rows[0]
}
