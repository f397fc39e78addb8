package ratelimit

import (
	"context"
	"sync"
	"time"
)

// MemoryLimiter keeps a per-key log of request times in process memory.
// Counts are not shared between instances.
type MemoryLimiter struct {
	cfg  Config
	now  func() time.Time
	mu   sync.Mutex
	hits map[string][]time.Time
}

type MemoryOption func(*MemoryLimiter)

// WithClock replaces time.Now, mainly for tests.
func WithClock(now func() time.Time) MemoryOption {
	return func(l *MemoryLimiter) {
		if now != nil {
			l.now = now
		}
	}
}

func NewMemoryLimiter(cfg Config, opts ...MemoryOption) *MemoryLimiter {
	l := &MemoryLimiter{
		cfg:  cfg,
		now:  time.Now,
		hits: make(map[string][]time.Time),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

var _ Limiter = (*MemoryLimiter)(nil)

func (l *MemoryLimiter) Allow(_ context.Context, key string) (Decision, error) {
	now := l.now()
	windowStart := now.Add(-l.cfg.Window)

	l.mu.Lock()
	defer l.mu.Unlock()

	recent := prune(l.hits[key], windowStart)
	if len(recent) >= l.cfg.Limit {
		l.hits[key] = recent
		return Decision{
			Allowed:    false,
			RetryAfter: recent[0].Add(l.cfg.Window).Sub(now),
		}, nil
	}

	l.hits[key] = append(recent, now)
	return Decision{
		Allowed:   true,
		Remaining: l.cfg.Limit - len(recent) - 1,
	}, nil
}

// Sweep drops keys whose whole log has aged out of the window.
func (l *MemoryLimiter) Sweep() int {
	windowStart := l.now().Add(-l.cfg.Window)

	l.mu.Lock()
	defer l.mu.Unlock()

	removed := 0
	for key, times := range l.hits {
		if recent := prune(times, windowStart); len(recent) == 0 {
			delete(l.hits, key)
			removed++
		} else {
			l.hits[key] = recent
		}
	}
	return removed
}

// prune keeps timestamps strictly after windowStart. The log is append-only
// so it is already sorted.
func prune(times []time.Time, windowStart time.Time) []time.Time {
	i := 0
	for i < len(times) && !times[i].After(windowStart) {
		i++
	}
	return times[i:]
}
