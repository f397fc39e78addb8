package ratelimit

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
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
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func TestMemoryLimiterSlidingWindow(t *testing.T) {
	ctx := context.Background()
	clock := &fakeClock{now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
	limiter := NewMemoryLimiter(Config{Limit: 5, Window: time.Hour}, WithClock(clock.Now))

	for i := 0; i < 5; i++ {
		d, err := limiter.Allow(ctx, "1.2.3.4")
		require.NoError(t, err)
		assert.True(t, d.Allowed, "request %d", i+1)
		assert.Equal(t, 4-i, d.Remaining)
		clock.Advance(time.Minute)
	}

	d, err := limiter.Allow(ctx, "1.2.3.4")
	require.NoError(t, err)
	assert.False(t, d.Allowed)
	assert.Equal(t, 55*time.Minute, d.RetryAfter)

	other, err := limiter.Allow(ctx, "5.6.7.8")
	require.NoError(t, err)
	assert.True(t, other.Allowed)

	// The first hit leaves the window exactly one hour after it was made.
	clock.Advance(55 * time.Minute)
	d, err = limiter.Allow(ctx, "1.2.3.4")
	require.NoError(t, err)
	assert.True(t, d.Allowed)
}

func TestMemoryLimiterRejectedAttemptsAreNotCounted(t *testing.T) {
	ctx := context.Background()
	clock := &fakeClock{now: time.Unix(0, 0)}
	limiter := NewMemoryLimiter(Config{Limit: 1, Window: time.Minute}, WithClock(clock.Now))

	d, _ := limiter.Allow(ctx, "k")
	require.True(t, d.Allowed)
	for i := 0; i < 3; i++ {
		d, _ = limiter.Allow(ctx, "k")
		assert.False(t, d.Allowed)
	}

	clock.Advance(time.Minute)
	d, _ = limiter.Allow(ctx, "k")
	assert.True(t, d.Allowed)
}

func TestMemoryLimiterSweep(t *testing.T) {
	clock := &fakeClock{now: time.Unix(0, 0)}
	limiter := NewMemoryLimiter(Config{Limit: 3, Window: time.Minute}, WithClock(clock.Now))

	_, _ = limiter.Allow(context.Background(), "a")
	_, _ = limiter.Allow(context.Background(), "b")
	assert.Equal(t, 0, limiter.Sweep())

	clock.Advance(2 * time.Minute)
	assert.Equal(t, 2, limiter.Sweep())
}
