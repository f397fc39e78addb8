package stat

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/fastygo/portfolio/domain"
	"github.com/fastygo/portfolio/internal/validation"
	"github.com/fastygo/portfolio/repository"
	"github.com/fastygo/portfolio/usecase"
)

type UseCase struct {
	repo   repository.StatRepository
	logger *zap.Logger
}

func New(repo repository.StatRepository, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		repo:   repo,
		logger: logger,
	}
}

func (uc *UseCase) List(ctx context.Context) ([]domain.Stat, error) {
	return uc.repo.List(ctx)
}

// Save stores one stat, updating by id when it exists and inserting otherwise.
func (uc *UseCase) Save(ctx context.Context, stat *domain.Stat) (usecase.UpsertResult[domain.Stat], error) {
	if stat == nil {
		return usecase.UpsertResult[domain.Stat]{}, domain.ErrInvalidPayload
	}
	if err := validation.Struct(stat); err != nil {
		return usecase.UpsertResult[domain.Stat]{}, err
	}

	created, err := usecase.Reconcile(ctx, uc.logger, "stat", stat.ID,
		func(ctx context.Context) error {
			return uc.repo.UpdateByID(ctx, stat)
		},
		func(ctx context.Context) (bool, error) {
			stat.ID = ""
			return true, uc.repo.Insert(ctx, stat)
		},
	)
	if err != nil {
		return usecase.UpsertResult[domain.Stat]{}, err
	}
	return usecase.UpsertResult[domain.Stat]{Record: stat, Created: created}, nil
}

// SaveEach stores each stat independently and reports every element.
func (uc *UseCase) SaveEach(ctx context.Context, stats []domain.Stat) []usecase.BatchResult[domain.Stat] {
	results := make([]usecase.BatchResult[domain.Stat], 0, len(stats))
	for i := range stats {
		stat := stats[i]
		if stat.DisplayOrder == 0 {
			stat.DisplayOrder = i
		}
		result, err := uc.Save(ctx, &stat)
		if err != nil {
			uc.logger.Warn("stat not saved", zap.Int("index", i), zap.String("label", stat.Label), zap.Error(err))
		}
		results = append(results, usecase.BatchResult[domain.Stat]{UpsertResult: result, Index: i, Err: err})
	}
	return results
}

// SaveAll is SaveEach folded into the stored records and one error joining
// every per-element failure.
func (uc *UseCase) SaveAll(ctx context.Context, stats []domain.Stat) ([]domain.Stat, error) {
	saved := make([]domain.Stat, 0, len(stats))
	var errs []error
	for _, result := range uc.SaveEach(ctx, stats) {
		if result.Err != nil {
			errs = append(errs, fmt.Errorf("stats[%d]: %w", result.Index, result.Err))
			continue
		}
		saved = append(saved, *result.Record)
	}
	return saved, errors.Join(errs...)
}

func (uc *UseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}
