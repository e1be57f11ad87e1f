package service

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/gymtrack/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBodyStats_LogEditDelete(t *testing.T) {
	env := newTestEnv(t)
	env.useImperial(t)
	ctx := context.Background()
	day := time.Date(2025, 6, 1, 21, 15, 0, 0, time.UTC)

	for _, in := range []string{"", "  ", "heavy"} {
		ok, err := env.Body.Log(ctx, day, in)
		require.NoError(t, err)
		assert.False(t, ok, "input %q", in)
	}

	ok, err := env.Body.Log(ctx, day, "180")
	require.NoError(t, err)
	require.True(t, ok)
	ok, err = env.Body.Log(ctx, day.AddDate(0, 0, 7), "178.5lbs")
	require.NoError(t, err)
	require.True(t, ok)

	stats, err := env.Body.List(ctx)
	require.NoError(t, err)
	require.Len(t, stats, 2)
	assert.Equal(t, time.Date(2025, 6, 8, 0, 0, 0, 0, time.UTC), stats[0].Date, "newest first at midnight")
	assert.InDelta(t, 81.65, stats[1].Weight, 0.01)

	require.NoError(t, env.Body.Edit(ctx, 1, time.Time{}, "175"))
	require.NoError(t, env.Body.Edit(ctx, 0, day.AddDate(0, 0, -7), "junk"))
	stats, err = env.Body.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), stats[0].Date)
	assert.InDelta(t, 79.38, stats[0].Weight, 0.01)
	assert.Equal(t, time.Date(2025, 5, 25, 0, 0, 0, 0, time.UTC), stats[1].Date)
	assert.InDelta(t, 80.97, stats[1].Weight, 0.01)

	assert.ErrorIs(t, env.Body.Edit(ctx, 2, day, "1"), domain.ErrIndexOutOfRange)
	assert.ErrorIs(t, env.Body.Delete(ctx, -1), domain.ErrIndexOutOfRange)

	require.NoError(t, env.Body.Delete(ctx, 0))
	stats, err = env.Body.List(ctx)
	require.NoError(t, err)
	require.Len(t, stats, 1)
	assert.Equal(t, time.Date(2025, 5, 25, 0, 0, 0, 0, time.UTC), stats[0].Date)
}
