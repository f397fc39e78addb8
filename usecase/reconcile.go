package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/fastygo/portfolio/domain"
)

// UpsertResult is what a save returns: the stored record and whether it was
// newly inserted.
type UpsertResult[T any] struct {
	Record  *T
	Created bool
}

// BatchResult is the outcome of one element of a bulk save. Err is nil when
// the element at Index was stored.
type BatchResult[T any] struct {
	UpsertResult[T]
	Index int
	Err   error
}

// Reconcile writes a record that may or may not already exist. An id shaped
// like a store id is tried as an update first; when that matches nothing,
// create runs instead and reports whether it inserted.
func Reconcile(
	ctx context.Context,
	logger *zap.Logger,
	resource string,
	id string,
	update func(ctx context.Context) error,
	create func(ctx context.Context) (bool, error),
) (bool, error) {
	if domain.IsStoreID(id) {
		err := update(ctx)
		if err == nil {
			return false, nil
		}
		if !domain.IsDomainError(err, domain.ErrCodeNotFound) {
			return false, err
		}
		if logger != nil {
			logger.Debug("update matched no row, creating instead",
				zap.String("resource", resource),
				zap.String("id", id),
			)
		}
	}
	return create(ctx)
}
