package usecase

import "context"

// RetryBuffer parks writes that failed for transient reasons so they can be
// replayed later without involving the caller.
type RetryBuffer interface {
	Enqueue(ctx context.Context, entity string, payload any) error
}
