package sqlstore

import (
	"context"
	"database/sql"
	"testing"

	"github.com/AlejandroRodriguezIT/plataforma-penafiel/internal/domain/outcome"
	"github.com/AlejandroRodriguezIT/plataforma-penafiel/internal/domain/round"
	"github.com/AlejandroRodriguezIT/plataforma-penafiel/internal/domain/telemetry"
	"github.com/AlejandroRodriguezIT/plataforma-penafiel/internal/platform/logging"
	"github.com/AlejandroRodriguezIT/plataforma-penafiel/internal/usecase"
	_ "github.com/glebarez/go-sqlite"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

func fixtureSnapshot() Snapshot {
	half := func(player, jornada, task, minutes, total string) telemetry.MatchRecord {
		return telemetry.MatchRecord{
			Player:         player,
			Date:           "2024-09-08",
			Task:           task,
			Round:          jornada,
			Match:          "Partido fútbol 11' contra Rival X",
			Minutes:        minutes,
			TotalDistance:  total,
			HSRDistance:    "300",
			SprintDistance: "80",
			MaxSpeed:       "31,2",
		}
	}
	return Snapshot{
		Matches: []telemetry.MatchRecord{
			half("Rui", "Semana_J5", "1ª parte", "45", "2500"),
			half("Rui", " j5 ", "2ª Parte", "45", "2400"),
			half("Rui", "J15", "1ª parte", "45", "2600"),
			half("Tiago", "5", "Total", "90", "5000"),
			half("Nuno", "Jx", "1ª parte", "45", "2500"),
		},
		Training: []telemetry.TrainingRecord{
			{Player: "Rui", Date: "2024-09-03", Situation: "MD-5", Task: "Total", Round: "J5", Minutes: "90", TotalDistance: "6000"},
			{Player: "Rui", Date: "2024-09-03", Situation: "MD-5", Task: "Rondo", Round: "J5", Minutes: "20", TotalDistance: "900"},
			{Player: "Rui", Date: "2024-09-10", Situation: "MD-5", Task: "Total", Round: "J6", Minutes: "80", TotalDistance: "5500"},
		},
		Results: []ResultRecord{
			{Round: "j5", Code: "RVX", Outcome: " v"},
			{Round: "?", Code: "", Outcome: "E"},
		},
		TeamAverages: []TeamAverageRecord{
			{Team: "Penafiel", Metric: "team_goal", Value: sql.NullFloat64{Float64: 1.5, Valid: true}},
			{Team: "Penafiel", Metric: "team_shot", Value: sql.NullFloat64{}},
			{Team: "Tondela", Metric: "team_goal", Value: sql.NullFloat64{Float64: 2, Valid: true}},
		},
	}
}

func newSQLiteStore(t *testing.T) *Store {
	t.Helper()

	db, err := sqlx.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	store := New(db, SQLite, logging.NewNop())
	require.NoError(t, store.EnsureSchema(context.Background()))
	require.NoError(t, store.WriteSnapshot(context.Background(), fixtureSnapshot()))
	return store
}

func TestMatchRepository_FiltersByCanonicalRound(t *testing.T) {
	store := newSQLiteStore(t)
	repo := NewMatchRepository(store)

	rows, err := repo.ListMatchRows(context.Background(), telemetry.MatchFilter{Rounds: []round.ID{5}})
	require.NoError(t, err)
	require.Len(t, rows, 3, "J15 must not match round 5")
	for _, row := range rows {
		require.Equal(t, round.ID(5), row.Round)
	}

	halves, err := repo.ListMatchRows(context.Background(), telemetry.MatchFilter{Rounds: []round.ID{5}, HalvesOnly: true})
	require.NoError(t, err)
	require.Len(t, halves, 2)
	require.Equal(t, 4900.0, halves[0].Distances.Total.V+halves[1].Distances.Total.V)
	require.Equal(t, 31.2, halves[0].MaxSpeed.V)
}

func TestMatchRepository_ByMatchAndMalformedRound(t *testing.T) {
	store := newSQLiteStore(t)
	repo := NewMatchRepository(store)

	rows, err := repo.ListMatchRows(context.Background(), telemetry.MatchFilter{Match: "partido fútbol 11' contra rival x"})
	require.NoError(t, err)
	require.Len(t, rows, 5)

	var malformed int
	for _, row := range rows {
		if !row.Round.Valid() {
			malformed++
			require.Equal(t, "Jx", row.RoundRaw)
		}
	}
	require.Equal(t, 1, malformed, "a bad round degrades the row instead of failing the batch")
}

func TestTrainingRepository_TotalOnly(t *testing.T) {
	store := newSQLiteStore(t)
	repo := NewTrainingRepository(store)

	rows, err := repo.ListTrainingRows(context.Background(), telemetry.TrainingFilter{Rounds: []round.ID{5}, TotalOnly: true})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, "MD-5", rows[0].Situation)
	require.Equal(t, 6000.0, rows[0].Distances.Total.V)
}

func looseRoundSnapshot() Snapshot {
	training := func(jornada, date string) telemetry.TrainingRecord {
		return telemetry.TrainingRecord{
			Player:        "Rui",
			Date:          date,
			Situation:     "MD-3",
			Task:          "Total",
			Round:         jornada,
			Minutes:       "90",
			TotalDistance: "6000",
		}
	}
	match := func(jornada, task string) telemetry.MatchRecord {
		return telemetry.MatchRecord{
			Player:        "Rui",
			Date:          "2024-08-25",
			Task:          task,
			Round:         jornada,
			Match:         "Partido fútbol 11' contra Feirense",
			Minutes:       "47",
			TotalDistance: "5000",
		}
	}
	return Snapshot{
		Matches: []telemetry.MatchRecord{
			match("J03", "1ª parte"),
			match("Jornada 3", "2ª parte"),
			match("J13", "1ª parte"),
		},
		Training: []telemetry.TrainingRecord{
			training("J03", "2024-08-20"),
			training("Semana J3", "2024-08-21"),
			training("Jornada 3", "2024-08-22"),
			training("J30", "2024-08-22"),
		},
	}
}

func TestRepositories_RoundSpellingsRoundTrip(t *testing.T) {
	store := newSQLiteStore(t)
	ctx := context.Background()
	require.NoError(t, store.WriteSnapshot(ctx, looseRoundSnapshot()))

	training := NewTrainingRepository(store)
	all, err := training.ListTrainingRows(ctx, telemetry.TrainingFilter{})
	require.NoError(t, err)
	require.Len(t, all, 4)

	filtered, err := training.ListTrainingRows(ctx, telemetry.TrainingFilter{Rounds: []round.ID{3}, TotalOnly: true})
	require.NoError(t, err)
	require.Len(t, filtered, 3, "every spelling of J3 is fetched and J30 is not")
	for _, row := range filtered {
		require.Equal(t, round.ID(3), row.Round)
	}

	matches, err := NewMatchRepository(store).ListMatchRows(ctx, telemetry.MatchFilter{Rounds: []round.ID{3}})
	require.NoError(t, err)
	require.Len(t, matches, 2)
}

func TestMicrocycle_ListedRoundComposes(t *testing.T) {
	store := newSQLiteStore(t)
	ctx := context.Background()
	require.NoError(t, store.WriteSnapshot(ctx, looseRoundSnapshot()))

	service := usecase.NewMicrocycleService(
		NewMatchRepository(store),
		NewTrainingRepository(store),
		round.Overrides{Version: "test"},
		logging.NewNop(),
	)

	listed, err := service.List(ctx)
	require.NoError(t, err)
	var found bool
	for _, item := range listed {
		found = found || item.Round == 3
	}
	require.True(t, found, "round J3 is listed")

	composed, err := service.Compose(ctx, "J3", "")
	require.NoError(t, err)
	require.Equal(t, round.ID(3), composed.Round)
	require.Len(t, composed.Entries, 3)
}

func TestResultRepository(t *testing.T) {
	store := newSQLiteStore(t)

	results, err := NewResultRepository(store).ListResults(context.Background())
	require.NoError(t, err)
	require.Len(t, results, 2)
	require.Equal(t, round.ID(5), results[0].Round)
	require.Equal(t, outcome.Win, results[0].Outcome)
	require.False(t, results[1].Round.Valid())
}

func TestTeamAverageRepository_Pivots(t *testing.T) {
	store := newSQLiteStore(t)

	rows, err := NewTeamAverageRepository(store).ListTeamAverages(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.Equal(t, "Penafiel", rows[0].Team)
	require.Equal(t, 1.5, rows[0].Metrics["team_goal"])
	_, hasShot := rows[0].Metrics["team_shot"]
	require.False(t, hasShot, "null values are left out")
}

func TestSnapshot_RoundTripReplacesContent(t *testing.T) {
	store := newSQLiteStore(t)
	ctx := context.Background()

	snap, err := store.ReadSnapshot(ctx)
	require.NoError(t, err)
	require.Equal(t, SnapshotStats{Matches: 5, Training: 3, Results: 2, TeamAverages: 3}, snap.Stats())

	require.NoError(t, store.WriteSnapshot(ctx, Snapshot{Results: snap.Results[:1]}))
	again, err := store.ReadSnapshot(ctx)
	require.NoError(t, err)
	require.Equal(t, SnapshotStats{Results: 1}, again.Stats())
}

func TestStore_Ping(t *testing.T) {
	store := newSQLiteStore(t)
	require.Equal(t, "sqlite", store.Name())
	require.NoError(t, store.Ping(context.Background()))
}
