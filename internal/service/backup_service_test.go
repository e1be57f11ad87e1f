package service

import (
	"bytes"
	"context"
	"testing"

	"github.com/alexanderramin/gymtrack/internal/backup"
	"github.com/alexanderramin/gymtrack/internal/domain"
	"github.com/alexanderramin/gymtrack/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedEverything(t *testing.T, env *testEnv) {
	t.Helper()
	ctx := context.Background()
	env.logStrength(t, "Bench", domain.GroupChest, [2]string{"8", "60"})
	env.logStrength(t, "Bench", domain.GroupChest, [2]string{"8", "62.5"})
	_, _, err := env.Templates.Create(ctx, "Push", nil)
	require.NoError(t, err)
	_, err = env.Body.Log(ctx, testStart, "80")
	require.NoError(t, err)
	_, err = env.Settings.SetDefaultRestTime(ctx, 90)
	require.NoError(t, err)
}

func TestBackup_ExportRestoreRoundTrip(t *testing.T) {
	src := newTestEnv(t)
	seedEverything(t, src)
	ctx := context.Background()

	var exported bytes.Buffer
	require.NoError(t, src.Backup.Export(ctx, &exported))

	b, err := backup.Parse(exported.Bytes())
	require.NoError(t, err)

	dst := newTestEnv(t)
	require.NoError(t, dst.Backup.Restore(ctx, b))

	var again bytes.Buffer
	require.NoError(t, dst.Backup.Export(ctx, &again))
	assert.JSONEq(t, exported.String(), again.String())

	history, err := dst.History.List(ctx)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.True(t, history[0].StartTime.After(history[1].StartTime))
}

func TestBackup_InvalidFileChangesNothing(t *testing.T) {
	env := newTestEnv(t)
	seedEverything(t, env)
	ctx := context.Background()

	before, err := env.Backup.Bundle(ctx)
	require.NoError(t, err)

	data := []byte(`{"settings":{"unitSystem":"metric"},"pastWorkouts":[],"templates":[],"exercisePRs":{}}`)
	_, err = backup.Parse(data)
	require.ErrorIs(t, err, backup.ErrInvalid)
	assert.Equal(t, "Invalid backup file.", backup.UserMessage(err))

	after, err := env.Backup.Bundle(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestBackup_RestoreFailureRollsBack(t *testing.T) {
	env := newTestEnv(t)
	seedEverything(t, env)
	ctx := context.Background()
	before, err := env.Backup.Bundle(ctx)
	require.NoError(t, err)

	// Exec #3 writes templates, after settings and history.
	env.wire(&testutil.FailOnNthExecUoW{DB: env.db, FailOn: 3, Err: assert.AnError})
	err = env.Backup.Restore(ctx, backup.Bundle{
		Settings:     domain.DefaultSettings(),
		PastWorkouts: []domain.Workout{},
		Templates:    []domain.Template{},
		ExercisePRs:  domain.PersonalRecords{},
		BodyStats:    []domain.BodyStat{},
	})
	require.ErrorIs(t, err, assert.AnError)

	after, err := env.Backup.Bundle(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after)
	assert.Contains(t, env.logs.String(), "import failed")
}

func TestBackup_NormalizesImportedSettings(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	require.NoError(t, env.Backup.Restore(ctx, backup.Bundle{
		Settings: domain.Settings{UnitSystem: "furlongs", DefaultRestTime: -1},
	}))
	got, err := env.Settings.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.UnitMetric, got.UnitSystem)
	assert.Equal(t, domain.DefaultRestSeconds, got.DefaultRestTime)

	infos, err := env.Backup.Collections(ctx)
	require.NoError(t, err)
	keys := make([]string, 0, len(infos))
	for _, info := range infos {
		keys = append(keys, info.Key)
	}
	assert.Equal(t, []string{"bodyStats", "exercisePRs", "settings", "templates", "workouts"}, keys)
}
