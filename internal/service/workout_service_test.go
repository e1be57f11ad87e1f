package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alexanderramin/gymtrack/internal/domain"
	"github.com/alexanderramin/gymtrack/internal/repository"
	"github.com/alexanderramin/gymtrack/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkoutFlow_ImperialStrength(t *testing.T) {
	env := newTestEnv(t)
	env.useImperial(t)
	ctx := context.Background()

	sess, err := env.Workouts.Start(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, "Workout - "+testStart.Local().Format("1/2/2006"), sess.Workout.Name)
	assert.Empty(t, sess.Workout.Exercises)

	added, err := env.Workouts.AddExercise(ctx, "Bench Press", domain.GroupChest)
	require.NoError(t, err)
	require.True(t, added)
	require.NoError(t, env.Workouts.EditSet(ctx, 0, 0, domain.FieldReps, "8"))
	require.NoError(t, env.Workouts.EditSet(ctx, 0, 0, domain.FieldWeight, "60"))

	rest, err := env.Workouts.ToggleSet(ctx, 0, 0)
	require.NoError(t, err)
	require.NotNil(t, rest, "sound effects are on by default")
	assert.Equal(t, 120, rest.Seconds)
	assert.Equal(t, "Bench Press", rest.Label)

	active, err := env.Workouts.Active(ctx)
	require.NoError(t, err)
	assert.InDelta(t, 8*27.2, active.LiveVolumeKg, 0.5)

	env.clock.Advance(50 * time.Minute)
	res, err := env.Workouts.Finish(ctx)
	require.NoError(t, err)
	require.NotNil(t, res.Workout)
	assert.Equal(t, []string{"Bench Press"}, res.NewRecords)

	history, err := env.History.List(ctx)
	require.NoError(t, err)
	require.Len(t, history, 1)
	w := history[0]
	assert.Equal(t, 50*time.Minute, w.Duration())
	require.Len(t, w.Exercises, 1)
	require.Len(t, w.Exercises[0].Sets, 1)
	set := w.Exercises[0].Sets[0]
	assert.InDelta(t, 27.2, set.Weight.Float(), 0.05)
	assert.True(t, set.Completed)
	assert.False(t, set.WeightKg.Valid())

	dash, err := env.Progress.Dashboard(ctx)
	require.NoError(t, err)
	pr := dash.Records["Bench Press"]
	assert.InDelta(t, 27.2, pr.MaxWeight, 0.05)
	assert.InDelta(t, 217.7, pr.MaxVolume, 0.1)
	assert.Equal(t, domain.GroupChest, pr.MuscleGroup)

	_, err = env.Workouts.Active(ctx)
	assert.ErrorIs(t, err, domain.ErrNoActiveWorkout)
}

func TestWorkoutFlow_CardioDistribution(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.Workouts.Start(ctx, 0)
	require.NoError(t, err)
	_, err = env.Workouts.AddExercise(ctx, "Treadmill", domain.GroupCardio)
	require.NoError(t, err)
	require.NoError(t, env.Workouts.EditSet(ctx, 0, 0, domain.FieldTime, "20"))
	rest, err := env.Workouts.ToggleSet(ctx, 0, 0)
	require.NoError(t, err)
	assert.Nil(t, rest, "cardio sets never start the rest timer")

	_, err = env.Workouts.Finish(ctx)
	require.NoError(t, err)

	dash, err := env.Progress.Dashboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, 20.0, dash.Records["Treadmill"].MaxTime)
	require.Len(t, dash.Distribution, 1)
	assert.Equal(t, domain.GroupCardio, dash.Distribution[0].Group)
	assert.Equal(t, 1, dash.Distribution[0].Count)
}

func TestStart_RefusesWhileActive(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.Workouts.Start(ctx, 0)
	require.NoError(t, err)
	_, err = env.Workouts.Start(ctx, 0)
	assert.ErrorIs(t, err, domain.ErrWorkoutInProgress)

	require.NoError(t, env.Workouts.Discard(ctx))
	_, err = env.Workouts.Start(ctx, 0)
	assert.NoError(t, err)
}

func TestStart_FromTemplateConvertsToDisplay(t *testing.T) {
	env := newTestEnv(t)
	env.useImperial(t)
	ctx := context.Background()

	tmpl := testutil.NewTestTemplate("Legs", testutil.WithTemplateExercise("Squat", domain.GroupLegs, 2, 5, 100))
	require.NoError(t, env.repos.Templates.SaveAll(ctx, []domain.Template{tmpl}))

	sess, err := env.Workouts.Start(ctx, tmpl.ID)
	require.NoError(t, err)
	assert.Equal(t, "Legs", sess.Workout.Name)
	require.Len(t, sess.Workout.Exercises, 1)
	sets := sess.Workout.Exercises[0].Sets
	require.Len(t, sets, 2)
	assert.Equal(t, 220.5, sets[0].Weight.Float())
	assert.NotEmpty(t, sets[0].ID)
	assert.NotEqual(t, sets[0].ID, sets[1].ID)

	_, err = env.Workouts.Start(ctx, 999)
	assert.ErrorIs(t, err, domain.ErrWorkoutInProgress)
	require.NoError(t, env.Workouts.Discard(ctx))
	_, err = env.Workouts.Start(ctx, 999)
	assert.ErrorIs(t, err, domain.ErrTemplateNotFound)
}

func TestFinish_OnlyCompletedSetsPersist(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.Workouts.Start(ctx, 0)
	require.NoError(t, err)
	_, err = env.Workouts.AddExercise(ctx, "Row", domain.GroupBack)
	require.NoError(t, err)
	_, err = env.Workouts.AddExercise(ctx, "Curl", domain.GroupBiceps)
	require.NoError(t, err)
	require.NoError(t, env.Workouts.AddSet(ctx, 0))
	require.NoError(t, env.Workouts.EditSet(ctx, 0, 1, domain.FieldWeight, "70"))
	_, err = env.Workouts.ToggleSet(ctx, 0, 1)
	require.NoError(t, err)

	res, err := env.Workouts.Finish(ctx)
	require.NoError(t, err)
	require.NotNil(t, res.Workout)
	require.Len(t, res.Workout.Exercises, 1, testutil.DescribeWorkout(*res.Workout))
	assert.Equal(t, "Row", res.Workout.Exercises[0].Name)
	require.Len(t, res.Workout.Exercises[0].Sets, 1)
	assert.Equal(t, 70.0, res.Workout.Exercises[0].Sets[0].Weight.Float())
}

func TestFinish_NothingCompletedDiscards(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.Workouts.Start(ctx, 0)
	require.NoError(t, err)
	_, err = env.Workouts.AddExercise(ctx, "Row", domain.GroupBack)
	require.NoError(t, err)

	res, err := env.Workouts.Finish(ctx)
	require.NoError(t, err)
	assert.Nil(t, res.Workout)

	_, err = env.repos.Workouts.List(ctx)
	assert.ErrorIs(t, err, repository.ErrNotFound, "history never written")
	_, err = env.Workouts.Active(ctx)
	assert.ErrorIs(t, err, domain.ErrNoActiveWorkout)
}

func TestFinish_RollsBackOnWriteFailure(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.Workouts.Start(ctx, 0)
	require.NoError(t, err)
	_, err = env.Workouts.AddExercise(ctx, "Row", domain.GroupBack)
	require.NoError(t, err)
	_, err = env.Workouts.ToggleSet(ctx, 0, 0)
	require.NoError(t, err)

	// Exec #1 saves history, #2 saves records.
	env.wire(&testutil.FailOnNthExecUoW{DB: env.db, FailOn: 2, Err: errors.New("injected records failure")})
	_, err = env.Workouts.Finish(ctx)
	require.ErrorContains(t, err, "injected records failure")

	_, err = env.repos.Workouts.List(ctx)
	assert.ErrorIs(t, err, repository.ErrNotFound, "history write rolled back")
	active, err := env.Workouts.Active(ctx)
	require.NoError(t, err, "active workout kept")
	assert.True(t, active.Workout.Exercises[0].Sets[0].Completed)
}

func TestAddExercise_SeedsLastUsedWeight(t *testing.T) {
	env := newTestEnv(t)
	env.useImperial(t)
	ctx := context.Background()

	env.logStrength(t, "Squat", domain.GroupLegs, [2]string{"5", "200"}, [2]string{"5", "225"})

	_, err := env.Workouts.Start(ctx, 0)
	require.NoError(t, err)
	added, err := env.Workouts.AddExercise(ctx, "  ", domain.GroupLegs)
	require.NoError(t, err)
	assert.False(t, added)

	_, err = env.Workouts.AddExercise(ctx, "Squat", domain.GroupLegs)
	require.NoError(t, err)
	_, err = env.Workouts.AddExercise(ctx, "Lunge", domain.MuscleGroup("Glutes"))
	require.NoError(t, err)

	sess, err := env.Workouts.Active(ctx)
	require.NoError(t, err)
	require.Len(t, sess.Workout.Exercises, 2)
	assert.Equal(t, 225.0, sess.Workout.Exercises[0].Sets[0].Weight.Float())
	assert.Equal(t, 8.0, sess.Workout.Exercises[0].Sets[0].Reps.Float())
	assert.Equal(t, domain.GroupOther, sess.Workout.Exercises[1].MuscleGroup)
	assert.Equal(t, 0.0, sess.Workout.Exercises[1].Sets[0].Weight.Float())
}

func TestMutations_RequireActiveWorkout(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	assert.ErrorIs(t, env.Workouts.AddSet(ctx, 0), domain.ErrNoActiveWorkout)
	assert.ErrorIs(t, env.Workouts.Discard(ctx), domain.ErrNoActiveWorkout)
	_, err := env.Workouts.Finish(ctx)
	assert.ErrorIs(t, err, domain.ErrNoActiveWorkout)

	_, err = env.Workouts.Start(ctx, 0)
	require.NoError(t, err)
	assert.ErrorIs(t, env.Workouts.AddSet(ctx, 0), domain.ErrIndexOutOfRange)
}

func TestRestTimeAndSoundSettings(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.Workouts.Start(ctx, 0)
	require.NoError(t, err)
	_, err = env.Workouts.AddExercise(ctx, "Press", domain.GroupShoulders)
	require.NoError(t, err)
	require.NoError(t, env.Workouts.SetRestTime(ctx, 0, 45))
	require.NoError(t, env.Workouts.AddSet(ctx, 0))

	rest, err := env.Workouts.ToggleSet(ctx, 0, 0)
	require.NoError(t, err)
	require.NotNil(t, rest)
	assert.Equal(t, 45, rest.Seconds)

	_, err = env.Settings.SetSoundEffects(ctx, false)
	require.NoError(t, err)
	rest, err = env.Workouts.ToggleSet(ctx, 0, 1)
	require.NoError(t, err)
	assert.Nil(t, rest)
}

func TestSaveActiveAsTemplate(t *testing.T) {
	env := newTestEnv(t)
	env.useImperial(t)
	ctx := context.Background()

	_, err := env.Workouts.Start(ctx, 0)
	require.NoError(t, err)
	require.NoError(t, env.Workouts.Rename(ctx, "Upper"))
	_, err = env.Workouts.AddExercise(ctx, "Bench", domain.GroupChest)
	require.NoError(t, err)
	require.NoError(t, env.Workouts.EditSet(ctx, 0, 0, domain.FieldWeight, "135"))
	_, err = env.Workouts.ToggleSet(ctx, 0, 0)
	require.NoError(t, err)

	_, saved, err := env.Workouts.SaveAsTemplate(ctx, " ")
	require.NoError(t, err)
	assert.False(t, saved)

	tmpl, saved, err := env.Workouts.SaveAsTemplate(ctx, "Upper A")
	require.NoError(t, err)
	require.True(t, saved)
	require.Len(t, tmpl.Exercises, 1)
	s := tmpl.Exercises[0].Sets[0]
	assert.Empty(t, s.ID)
	assert.False(t, s.Completed)
	assert.InDelta(t, 61.2, s.Weight.Float(), 0.05)

	sess, err := env.Workouts.Active(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Upper", sess.Workout.Name)
}

func TestWorkoutService_ReportsUseCases(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.Workouts.Start(ctx, 0)
	require.NoError(t, err)
	_, err = env.Workouts.Start(ctx, 0)
	require.Error(t, err)

	names := env.observer.names()
	assert.Equal(t, []string{"start-workout", "start-workout"}, names)
	assert.True(t, env.observer.events[0].Success)
	assert.False(t, env.observer.events[1].Success)
	assert.ErrorIs(t, env.observer.events[1].Err, domain.ErrWorkoutInProgress)
}
