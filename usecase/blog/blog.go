package blog

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"go.uber.org/zap"

	"github.com/fastygo/portfolio/domain"
	"github.com/fastygo/portfolio/internal/validation"
	"github.com/fastygo/portfolio/repository"
	"github.com/fastygo/portfolio/usecase"
)

const (
	DefaultPageLimit = 50
	wordsPerMinute   = 200
)

type UseCase struct {
	repo   repository.BlogRepository
	logger *zap.Logger
	now    func() time.Time
}

func New(repo repository.BlogRepository, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		repo:   repo,
		logger: logger,
		now:    time.Now,
	}
}

func (uc *UseCase) List(ctx context.Context, filter repository.ListFilter) ([]domain.Blog, int, error) {
	if filter.Limit <= 0 {
		filter.Limit = DefaultPageLimit
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	return uc.repo.List(ctx, filter)
}

// Save normalizes the post (Markdown body, read time, publish date) and
// stores it by id, falling back to an upsert on slug.
func (uc *UseCase) Save(ctx context.Context, blog *domain.Blog) (usecase.UpsertResult[domain.Blog], error) {
	if blog == nil {
		return usecase.UpsertResult[domain.Blog]{}, domain.ErrInvalidPayload
	}
	if err := validation.Struct(blog); err != nil {
		return usecase.UpsertResult[domain.Blog]{}, err
	}
	if err := uc.normalize(blog); err != nil {
		return usecase.UpsertResult[domain.Blog]{}, err
	}

	created, err := usecase.Reconcile(ctx, uc.logger, "blog", blog.ID,
		func(ctx context.Context) error {
			return uc.repo.UpdateByID(ctx, blog)
		},
		func(ctx context.Context) (bool, error) {
			return uc.repo.UpsertBySlug(ctx, blog)
		},
	)
	if err != nil {
		uc.logger.Error("save blog failed", zap.String("slug", blog.Slug), zap.Error(err))
		return usecase.UpsertResult[domain.Blog]{}, err
	}
	return usecase.UpsertResult[domain.Blog]{Record: blog, Created: created}, nil
}

func (uc *UseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

func (uc *UseCase) normalize(blog *domain.Blog) error {
	switch strings.ToLower(blog.ContentFormat) {
	case "", domain.ContentFormatMarkdown:
	case domain.ContentFormatHTML:
		markdown, err := htmltomarkdown.ConvertString(blog.Content)
		if err != nil {
			return domain.WrapError(domain.ErrCodeInvalid, "Content is not valid HTML", err)
		}
		blog.Content = markdown
	default:
		return domain.NewError(domain.ErrCodeInvalid, "Unsupported content_format: "+blog.ContentFormat)
	}
	blog.ContentFormat = ""

	if strings.TrimSpace(blog.ReadTime) == "" {
		blog.ReadTime = ReadTime(blog.Content)
	}
	if blog.IsPublished && blog.PublishedAt == nil {
		now := uc.now().UTC()
		blog.PublishedAt = &now
	}
	return nil
}

// ReadTime estimates reading time at 200 words per minute, never below one minute.
func ReadTime(content string) string {
	words := len(strings.Fields(content))
	minutes := int(math.Ceil(float64(words) / wordsPerMinute))
	if minutes < 1 {
		minutes = 1
	}
	return fmt.Sprintf("%d min read", minutes)
}
