package project

import (
	"context"

	"go.uber.org/zap"

	"github.com/fastygo/portfolio/domain"
	"github.com/fastygo/portfolio/internal/validation"
	"github.com/fastygo/portfolio/repository"
	"github.com/fastygo/portfolio/usecase"
)

const (
	DefaultStatus    = "completed"
	DefaultPageLimit = 50
)

type UseCase struct {
	repo   repository.ProjectRepository
	logger *zap.Logger
}

func New(repo repository.ProjectRepository, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		repo:   repo,
		logger: logger,
	}
}

// List returns a page of projects and the total number matching filter.
func (uc *UseCase) List(ctx context.Context, filter repository.ListFilter) ([]domain.Project, int, error) {
	if filter.Limit <= 0 {
		filter.Limit = DefaultPageLimit
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	return uc.repo.List(ctx, filter)
}

// Save updates the project by id when it exists, otherwise upserts on slug.
func (uc *UseCase) Save(ctx context.Context, project *domain.Project) (usecase.UpsertResult[domain.Project], error) {
	if project == nil {
		return usecase.UpsertResult[domain.Project]{}, domain.ErrInvalidPayload
	}
	if err := validation.Struct(project); err != nil {
		return usecase.UpsertResult[domain.Project]{}, err
	}
	if project.Status == "" {
		project.Status = DefaultStatus
	}
	if project.Technologies == nil {
		project.Technologies = []string{}
	}

	created, err := usecase.Reconcile(ctx, uc.logger, "project", project.ID,
		func(ctx context.Context) error {
			return uc.repo.UpdateByID(ctx, project)
		},
		func(ctx context.Context) (bool, error) {
			return uc.repo.UpsertBySlug(ctx, project)
		},
	)
	if err != nil {
		uc.logger.Error("save project failed", zap.String("slug", project.Slug), zap.Error(err))
		return usecase.UpsertResult[domain.Project]{}, err
	}
	return usecase.UpsertResult[domain.Project]{Record: project, Created: created}, nil
}

func (uc *UseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}
