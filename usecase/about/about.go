package about

import (
	"context"

	"go.uber.org/zap"

	"github.com/fastygo/portfolio/domain"
	"github.com/fastygo/portfolio/internal/validation"
	"github.com/fastygo/portfolio/repository"
	"github.com/fastygo/portfolio/usecase"
)

type UseCase struct {
	repo   repository.AboutRepository
	logger *zap.Logger
}

func New(repo repository.AboutRepository, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		repo:   repo,
		logger: logger,
	}
}

func (uc *UseCase) GetActive(ctx context.Context) (*domain.About, error) {
	return uc.repo.GetActive(ctx)
}

func (uc *UseCase) Save(ctx context.Context, about *domain.About) (usecase.UpsertResult[domain.About], error) {
	if about == nil {
		return usecase.UpsertResult[domain.About]{}, domain.ErrInvalidPayload
	}
	if err := validation.Struct(about); err != nil {
		return usecase.UpsertResult[domain.About]{}, err
	}
	if about.Skills == nil {
		about.Skills = []string{}
	}

	var created bool
	err := uc.repo.RunInTx(ctx, func(ctx context.Context, tx repository.AboutRepository) error {
		if about.IsActive {
			if err := tx.DeactivateOthers(ctx, about.ID); err != nil {
				return err
			}
		}

		var err error
		created, err = usecase.Reconcile(ctx, uc.logger, "about", about.ID,
			func(ctx context.Context) error {
				return tx.UpdateByID(ctx, about)
			},
			func(ctx context.Context) (bool, error) {
				about.ID = ""
				return true, tx.Insert(ctx, about)
			},
		)
		return err
	})
	if err != nil {
		uc.logger.Error("save about failed", zap.Error(err))
		return usecase.UpsertResult[domain.About]{}, err
	}
	return usecase.UpsertResult[domain.About]{Record: about, Created: created}, nil
}
