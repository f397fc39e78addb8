// Package ratelimit provides sliding-window limiters keyed by client identity.
package ratelimit

import (
	"context"
	"time"
)

// Config bounds how many requests a key may make within Window.
type Config struct {
	Limit  int
	Window time.Duration
}

// Decision is the outcome of one Allow call.
type Decision struct {
	Allowed    bool
	Remaining  int
	RetryAfter time.Duration
}

// Limiter records an attempt for key and reports whether it may proceed.
type Limiter interface {
	Allow(ctx context.Context, key string) (Decision, error)
}
