package fallback

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/AlejandroRodriguezIT/plataforma-penafiel/internal/domain/league"
	"github.com/AlejandroRodriguezIT/plataforma-penafiel/internal/domain/outcome"
	"github.com/AlejandroRodriguezIT/plataforma-penafiel/internal/domain/round"
	leaguemock "github.com/AlejandroRodriguezIT/plataforma-penafiel/internal/mocks/domain/league"
	outcomemock "github.com/AlejandroRodriguezIT/plataforma-penafiel/internal/mocks/domain/outcome"
	"github.com/AlejandroRodriguezIT/plataforma-penafiel/internal/platform/logging"
	"github.com/AlejandroRodriguezIT/plataforma-penafiel/internal/usecase"
	"github.com/stretchr/testify/mock"
)

func TestFallback_Results(t *testing.T) {
	t.Parallel()

	snapshot := []outcome.Result{{Round: round.ID(5), Outcome: outcome.Win}}
	unavailable := fmt.Errorf("%w: postgres results query failed", usecase.ErrDependencyUnavailable)
	invalid := fmt.Errorf("%w: broken filter", usecase.ErrInvalidInput)

	tests := []struct {
		name         string
		primaryRows  []outcome.Result
		primaryErr   error
		useSecondary bool
		wantLen      int
		wantErr      error
	}{
		{name: "primary rows win", primaryRows: []outcome.Result{{Round: round.ID(6)}, {Round: round.ID(7)}}, wantLen: 2},
		{name: "unavailable primary", primaryErr: unavailable, useSecondary: true, wantLen: 1},
		{name: "empty primary", useSecondary: true, wantLen: 1},
		{name: "other errors pass through", primaryErr: invalid, wantErr: usecase.ErrInvalidInput},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			primary := outcomemock.NewRepository(t)
			primary.On("ListResults", mock.Anything).Return(tc.primaryRows, tc.primaryErr).Once()
			secondary := outcomemock.NewRepository(t)
			if tc.useSecondary {
				secondary.On("ListResults", mock.Anything).Return(snapshot, nil).Once()
			}

			rows, err := NewResultRepository(primary, secondary, logging.NewNop()).ListResults(context.Background())
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("expected %v, got %v", tc.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(rows) != tc.wantLen {
				t.Fatalf("expected %d rows, got %d", tc.wantLen, len(rows))
			}
		})
	}
}

func TestFallback_BothSourcesDown(t *testing.T) {
	t.Parallel()

	unavailable := fmt.Errorf("%w: postgres team_averages circuit open", usecase.ErrDependencyUnavailable)
	primary := leaguemock.NewRepository(t)
	primary.On("ListTeamAverages", mock.Anything).Return(nil, unavailable).Once()
	secondary := leaguemock.NewRepository(t)
	secondary.On("ListTeamAverages", mock.Anything).Return(nil, errors.New("no such table")).Once()

	_, err := NewTeamAverageRepository(primary, secondary, logging.NewNop()).ListTeamAverages(context.Background())
	if !errors.Is(err, usecase.ErrDependencyUnavailable) {
		t.Fatalf("expected primary unavailability to surface, got %v", err)
	}
}

func TestFallback_EmptyEverywhere(t *testing.T) {
	t.Parallel()

	primary := leaguemock.NewRepository(t)
	primary.On("ListTeamAverages", mock.Anything).Return([]league.TeamAverage{}, nil).Once()
	secondary := leaguemock.NewRepository(t)
	secondary.On("ListTeamAverages", mock.Anything).Return(nil, nil).Once()

	rows, err := NewTeamAverageRepository(primary, secondary, logging.NewNop()).ListTeamAverages(context.Background())
	if err != nil || len(rows) != 0 {
		t.Fatalf("expected empty result, got %v %v", rows, err)
	}
}
