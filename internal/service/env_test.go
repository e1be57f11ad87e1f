package service

import (
	"bytes"
	"context"
	"database/sql"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/alexanderramin/gymtrack/internal/db"
	"github.com/alexanderramin/gymtrack/internal/domain"
	"github.com/alexanderramin/gymtrack/internal/testutil"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type recordingObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (o *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, e)
}

func (o *recordingObserver) names() []string {
	o.mu.Lock()
	defer o.mu.Unlock()
	out := make([]string, 0, len(o.events))
	for _, e := range o.events {
		out = append(out, e.Name)
	}
	return out
}

type testEnv struct {
	db       *sql.DB
	repos    Repos
	uow      db.UnitOfWork
	clock    *fakeClock
	observer *recordingObserver
	logs     *bytes.Buffer

	Settings  SettingsService
	Workouts  WorkoutService
	Templates TemplateService
	History   HistoryService
	Body      BodyStatService
	Progress  ProgressService
	Backup    BackupService
}

var testStart = time.Date(2025, 6, 2, 17, 30, 0, 0, time.UTC)

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	database := testutil.NewTestDB(t)
	env := &testEnv{
		db:       database,
		repos:    NewSQLiteRepos(database),
		uow:      testutil.NewTestUoW(database),
		clock:    &fakeClock{now: testStart},
		observer: &recordingObserver{},
		logs:     &bytes.Buffer{},
	}
	env.wire(env.uow)
	return env
}

// wire (re)builds every service over uow.
func (e *testEnv) wire(uow db.UnitOfWork) {
	opts := []Option{
		WithClock(e.clock.Now),
		WithObserver(e.observer),
		WithLogger(slog.New(slog.NewTextHandler(e.logs, nil))),
	}
	e.Settings = NewSettingsService(e.repos, opts...)
	e.Workouts = NewWorkoutService(e.repos, uow, opts...)
	e.Templates = NewTemplateService(e.repos, uow, opts...)
	e.History = NewHistoryService(e.repos, uow, opts...)
	e.Body = NewBodyStatService(e.repos, uow, opts...)
	e.Progress = NewProgressService(e.repos, opts...)
	e.Backup = NewBackupService(e.repos, uow, opts...)
}

func (e *testEnv) useImperial(t *testing.T) {
	t.Helper()
	_, err := e.Settings.SetUnitSystem(context.Background(), domain.UnitImperial)
	require.NoError(t, err)
}

// logStrength runs a whole workout through the active-workout flow: one
// exercise with the given {reps, display weight} sets, all completed.
func (e *testEnv) logStrength(t *testing.T, name string, group domain.MuscleGroup, sets ...[2]string) *domain.Workout {
	t.Helper()
	ctx := context.Background()
	_, err := e.Workouts.Start(ctx, 0)
	require.NoError(t, err)
	added, err := e.Workouts.AddExercise(ctx, name, group)
	require.NoError(t, err)
	require.True(t, added)

	for j, s := range sets {
		if j > 0 {
			require.NoError(t, e.Workouts.AddSet(ctx, 0))
		}
		require.NoError(t, e.Workouts.EditSet(ctx, 0, j, domain.FieldReps, s[0]))
		require.NoError(t, e.Workouts.EditSet(ctx, 0, j, domain.FieldWeight, s[1]))
		_, err := e.Workouts.ToggleSet(ctx, 0, j)
		require.NoError(t, err)
	}
	e.clock.Advance(45 * time.Minute)
	res, err := e.Workouts.Finish(ctx)
	require.NoError(t, err)
	require.NotNil(t, res.Workout)
	e.clock.Advance(24 * time.Hour)
	return res.Workout
}
