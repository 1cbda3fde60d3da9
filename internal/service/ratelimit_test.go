package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryLimiterBlocksOverLimit(t *testing.T) {
	t.Parallel()

	l := NewMemoryLimiter(time.Minute, 3)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		ok, err := l.Allow(ctx, "1.2.3.4")
		require.NoError(t, err)
		assert.True(t, ok)
	}

	ok, err := l.Allow(ctx, "1.2.3.4")
	require.NoError(t, err)
	assert.False(t, ok)

	// another client is unaffected
	ok, err = l.Allow(ctx, "5.6.7.8")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestMemoryLimiterWindowExpiry(t *testing.T) {
	t.Parallel()

	l := NewMemoryLimiter(20*time.Millisecond, 1)
	ctx := context.Background()

	ok, err := l.Allow(ctx, "ip")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = l.Allow(ctx, "ip")
	require.NoError(t, err)
	assert.False(t, ok)

	time.Sleep(30 * time.Millisecond)

	ok, err = l.Allow(ctx, "ip")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestMemoryLimiterDropsExpiredKeys(t *testing.T) {
	t.Parallel()

	l := NewMemoryLimiter(10*time.Millisecond, 5)
	ctx := context.Background()

	for i := 0; i < 50; i++ {
		_, err := l.Allow(ctx, fmt.Sprintf("10.0.0.%d", i))
		require.NoError(t, err)
	}

	time.Sleep(20 * time.Millisecond)

	// A touched key whose entries all expired is pruned and re-added
	// with just the new attempt; no stale slice survives the prune.
	ok, err := l.Allow(ctx, "10.0.0.0")
	require.NoError(t, err)
	assert.True(t, ok)

	l.mu.Lock()
	defer l.mu.Unlock()
	require.Len(t, l.requests["10.0.0.0"], 1)
	assert.Less(t, time.Since(l.requests["10.0.0.0"][0]), 10*time.Millisecond)
}
