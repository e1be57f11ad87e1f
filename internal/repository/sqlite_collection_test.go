package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/gymtrack/internal/db"
	"github.com/alexanderramin/gymtrack/internal/domain"
	"github.com/alexanderramin/gymtrack/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsRepo_NotFoundThenSave(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteSettingsRepo(db)
	ctx := context.Background()

	_, err := repo.Get(ctx)
	require.ErrorIs(t, err, ErrNotFound)

	want := domain.Settings{UnitSystem: domain.UnitImperial, DefaultRestTime: 75, SoundEffects: false}
	require.NoError(t, repo.Save(ctx, want))

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestWorkoutRepo_SaveAllReplaces(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteWorkoutRepo(db)
	ctx := context.Background()

	start := time.Date(2025, 5, 1, 7, 0, 0, 0, time.UTC)
	w := testutil.NewTestWorkout("Push",
		testutil.WithStart(start),
		testutil.WithExercises(
			testutil.NewStrengthExercise("Bench", domain.GroupChest, [2]float64{5, 80}, [2]float64{5, 82.5}),
			testutil.NewCardioExercise("Row", 12),
		),
	)
	require.NoError(t, repo.SaveAll(ctx, []domain.Workout{w}))

	got, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, w, got[0])

	require.NoError(t, repo.SaveAll(ctx, nil))
	got, err = repo.List(ctx)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestTemplateRepo_RoundTrip(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteTemplateRepo(db)
	ctx := context.Background()

	tmpl := testutil.NewTestTemplate("Legs",
		testutil.WithTemplateExercise("Squat", domain.GroupLegs, 3, 5, 100),
		testutil.WithTemplateCardio("Bike", 10),
	)
	require.NoError(t, repo.SaveAll(ctx, []domain.Template{tmpl}))

	got, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.Template{tmpl}, got)
}

func TestRecordAndBodyStatRepos(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	now := time.Date(2025, 5, 1, 7, 0, 0, 0, time.UTC)

	records := NewSQLiteRecordRepo(db)
	prs := domain.PersonalRecords{"Squat": {MaxWeight: 120, MaxVolume: 600, MuscleGroup: domain.GroupLegs, LastUpdated: now}}
	require.NoError(t, records.Save(ctx, prs))
	gotPRs, err := records.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, prs, gotPRs)

	stats := NewSQLiteBodyStatRepo(db)
	entries := testutil.NewBodyStats(now, 80.2, 80.9)
	require.NoError(t, stats.SaveAll(ctx, entries))
	gotStats, err := stats.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, entries, gotStats)
}

func TestActiveWorkoutRepo_SaveGetClear(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteActiveWorkoutRepo(db)
	ctx := context.Background()

	_, err := repo.Get(ctx)
	require.ErrorIs(t, err, ErrNotFound)

	active := &domain.ActiveWorkout{
		Name:      "Workout - 5/1/2025",
		StartTime: time.Date(2025, 5, 1, 7, 0, 0, 0, time.UTC),
		Exercises: []domain.Exercise{{ID: "e1", Name: "Bench", MuscleGroup: domain.GroupChest, Sets: []domain.Set{
			{ID: "s1", Reps: domain.Num(8), Weight: domain.Empty()},
		}}},
	}
	require.NoError(t, repo.Save(ctx, active))

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, active, got)
	assert.False(t, got.Exercises[0].Sets[0].Weight.Valid(), "empty weight survives storage")

	require.NoError(t, repo.Save(ctx, nil))
	_, err = repo.Get(ctx)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCollection_CorruptValue(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()

	testutil.PutRaw(t, db, KeyWorkouts, `{"not":"a list"`)

	_, err := NewSQLiteWorkoutRepo(db).List(ctx)
	assert.ErrorIs(t, err, ErrCorrupt)
}

func TestCollectionInfoRepo_List(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()

	settings := NewSQLiteSettingsRepo(db)
	require.NoError(t, settings.Save(ctx, domain.DefaultSettings()))
	require.NoError(t, settings.Save(ctx, domain.DefaultSettings()))
	require.NoError(t, NewSQLiteBodyStatRepo(db).SaveAll(ctx, nil))

	infos, err := NewSQLiteCollectionInfoRepo(db).List(ctx)
	require.NoError(t, err)
	require.Len(t, infos, 2)
	assert.Equal(t, KeyBodyStats, infos[0].Key)
	assert.Equal(t, 1, infos[0].Version)
	assert.Equal(t, len("[]"), infos[0].Bytes)
	assert.Equal(t, KeySettings, infos[1].Key)
	assert.Equal(t, 2, infos[1].Version)
	assert.False(t, infos[1].UpdatedAt.IsZero())
}

func TestRepos_WithinTransaction(t *testing.T) {
	database := testutil.NewTestDB(t)
	uow := testutil.NewTestUoW(database)
	ctx := context.Background()

	err := uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if err := NewSQLiteWorkoutRepo(tx).SaveAll(ctx, []domain.Workout{testutil.NewTestWorkout("A")}); err != nil {
			return err
		}
		return assert.AnError
	})
	require.ErrorIs(t, err, assert.AnError)

	_, err = NewSQLiteWorkoutRepo(database).List(ctx)
	assert.ErrorIs(t, err, ErrNotFound, "rolled back")
}
