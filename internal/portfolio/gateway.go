// Package portfolio assembles the whole-site document from the individual
// resources and decomposes edited documents back into per-resource saves.
package portfolio

import (
	"context"

	"github.com/fastygo/portfolio/domain"
	"github.com/fastygo/portfolio/usecase"
)

// Gateway reaches the per-resource operations, in process or over HTTP.
// Hero and About return (nil, nil) when no record is active.
type Gateway interface {
	Hero(ctx context.Context) (*domain.Hero, error)
	About(ctx context.Context) (*domain.About, error)
	Projects(ctx context.Context) ([]domain.Project, error)
	Certificates(ctx context.Context) ([]domain.Certificate, error)
	Blogs(ctx context.Context) ([]domain.Blog, error)
	Stats(ctx context.Context) ([]domain.Stat, error)

	SaveHero(ctx context.Context, hero *domain.Hero) (usecase.UpsertResult[domain.Hero], error)
	SaveAbout(ctx context.Context, about *domain.About) (usecase.UpsertResult[domain.About], error)
	SaveProject(ctx context.Context, project *domain.Project) (usecase.UpsertResult[domain.Project], error)
	SaveCertificate(ctx context.Context, cert *domain.Certificate) (usecase.UpsertResult[domain.Certificate], error)
	SaveBlog(ctx context.Context, blog *domain.Blog) (usecase.UpsertResult[domain.Blog], error)
	// SaveStats writes every stat independently and returns one result per
	// element, in input order.
	SaveStats(ctx context.Context, stats []domain.Stat) []usecase.BatchResult[domain.Stat]
}
