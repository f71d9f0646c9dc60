package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLimiter(t *testing.T) (*Limiter, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewLimiter(client), mr
}

func TestLimiterWithoutRedisAllowsEverything(t *testing.T) {
	t.Parallel()

	l := NewLimiter(nil)
	for i := 0; i < 100; i++ {
		ok, err := l.Allow(context.Background(), "login:1.2.3.4", 5, time.Minute)
		require.NoError(t, err)
		assert.True(t, ok)
	}
	assert.NoError(t, l.Reset(context.Background(), "1.2.3.4", "login"))
}

func TestLimiterZeroLimitDisablesCheck(t *testing.T) {
	t.Parallel()

	l := NewLimiter(nil)
	ok, err := l.Allow(context.Background(), "anything", 0, time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestLimiterBlocksOverLimit(t *testing.T) {
	t.Parallel()

	l, _ := testLimiter(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		ok, err := l.AllowIP(ctx, "1.2.3.4", PurposeLogin, 3, time.Minute)
		require.NoError(t, err)
		assert.True(t, ok)
	}

	ok, err := l.AllowIP(ctx, "1.2.3.4", PurposeLogin, 3, time.Minute)
	require.NoError(t, err)
	assert.False(t, ok)

	// A different IP counts against its own window.
	ok, err = l.AllowIP(ctx, "5.6.7.8", PurposeLogin, 3, time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestLimiterWindowNotExtendedByRetries(t *testing.T) {
	t.Parallel()

	l, mr := testLimiter(t)
	ctx := context.Background()
	window := time.Minute

	for i := 0; i < 4; i++ {
		_, err := l.AllowIP(ctx, "1.2.3.4", PurposeLogin, 3, window)
		require.NoError(t, err)
	}

	// A retry midway through the window stays blocked but must not push
	// the window's end out.
	mr.FastForward(30 * time.Second)
	ok, err := l.AllowIP(ctx, "1.2.3.4", PurposeLogin, 3, window)
	require.NoError(t, err)
	assert.False(t, ok)

	// Past the original window the counter is gone despite the retry.
	mr.FastForward(31 * time.Second)
	ok, err = l.AllowIP(ctx, "1.2.3.4", PurposeLogin, 3, window)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestLimiterResetClearsCounter(t *testing.T) {
	t.Parallel()

	l, _ := testLimiter(t)
	ctx := context.Background()

	for i := 0; i < 4; i++ {
		_, err := l.AllowIP(ctx, "1.2.3.4", PurposeLogin, 3, time.Minute)
		require.NoError(t, err)
	}
	ok, err := l.AllowIP(ctx, "1.2.3.4", PurposeLogin, 3, time.Minute)
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, l.Reset(ctx, "1.2.3.4", PurposeLogin))

	ok, err = l.AllowIP(ctx, "1.2.3.4", PurposeLogin, 3, time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)
}
