package hero

import (
	"context"

	"go.uber.org/zap"

	"github.com/fastygo/portfolio/domain"
	"github.com/fastygo/portfolio/internal/validation"
	"github.com/fastygo/portfolio/repository"
	"github.com/fastygo/portfolio/usecase"
)

type UseCase struct {
	repo   repository.HeroRepository
	logger *zap.Logger
}

func New(repo repository.HeroRepository, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		repo:   repo,
		logger: logger,
	}
}

// GetActive returns domain.ErrHeroNotFound when no hero is active.
func (uc *UseCase) GetActive(ctx context.Context) (*domain.Hero, error) {
	return uc.repo.GetActive(ctx)
}

// Save validates and stores hero. An active hero deactivates every other one
// within the same transaction.
func (uc *UseCase) Save(ctx context.Context, hero *domain.Hero) (usecase.UpsertResult[domain.Hero], error) {
	if hero == nil {
		return usecase.UpsertResult[domain.Hero]{}, domain.ErrInvalidPayload
	}
	if err := validation.Struct(hero); err != nil {
		return usecase.UpsertResult[domain.Hero]{}, err
	}

	var created bool
	err := uc.repo.RunInTx(ctx, func(ctx context.Context, tx repository.HeroRepository) error {
		if hero.IsActive {
			if err := tx.DeactivateOthers(ctx, hero.ID); err != nil {
				return err
			}
		}

		var err error
		created, err = usecase.Reconcile(ctx, uc.logger, "hero", hero.ID,
			func(ctx context.Context) error {
				return tx.UpdateByID(ctx, hero)
			},
			func(ctx context.Context) (bool, error) {
				hero.ID = ""
				return true, tx.Insert(ctx, hero)
			},
		)
		return err
	})
	if err != nil {
		uc.logger.Error("save hero failed", zap.Error(err))
		return usecase.UpsertResult[domain.Hero]{}, err
	}
	return usecase.UpsertResult[domain.Hero]{Record: hero, Created: created}, nil
}
