package portfolio

import (
	"context"

	"github.com/fastygo/portfolio/domain"
	"github.com/fastygo/portfolio/repository"
	"github.com/fastygo/portfolio/usecase"
)

const listPageSize = 100

type HeroService interface {
	GetActive(ctx context.Context) (*domain.Hero, error)
	Save(ctx context.Context, hero *domain.Hero) (usecase.UpsertResult[domain.Hero], error)
}

type AboutService interface {
	GetActive(ctx context.Context) (*domain.About, error)
	Save(ctx context.Context, about *domain.About) (usecase.UpsertResult[domain.About], error)
}

type ProjectService interface {
	List(ctx context.Context, filter repository.ListFilter) ([]domain.Project, int, error)
	Save(ctx context.Context, project *domain.Project) (usecase.UpsertResult[domain.Project], error)
}

type CertificateService interface {
	List(ctx context.Context) ([]domain.Certificate, error)
	Save(ctx context.Context, cert *domain.Certificate) (usecase.UpsertResult[domain.Certificate], error)
}

type BlogService interface {
	List(ctx context.Context, filter repository.ListFilter) ([]domain.Blog, int, error)
	Save(ctx context.Context, blog *domain.Blog) (usecase.UpsertResult[domain.Blog], error)
}

type StatService interface {
	List(ctx context.Context) ([]domain.Stat, error)
	SaveEach(ctx context.Context, stats []domain.Stat) []usecase.BatchResult[domain.Stat]
}

// Services groups the use cases a LocalGateway delegates to.
type Services struct {
	Hero         HeroService
	About        AboutService
	Projects     ProjectService
	Certificates CertificateService
	Blogs        BlogService
	Stats        StatService
}

// LocalGateway calls the use cases directly, for the server's own aggregate
// endpoints and for replaying buffered writes.
type LocalGateway struct {
	svc Services
}

func NewLocalGateway(svc Services) *LocalGateway {
	return &LocalGateway{svc: svc}
}

var _ Gateway = (*LocalGateway)(nil)

func (g *LocalGateway) Hero(ctx context.Context) (*domain.Hero, error) {
	hero, err := g.svc.Hero.GetActive(ctx)
	if domain.IsDomainError(err, domain.ErrCodeNotFound) {
		return nil, nil
	}
	return hero, err
}

func (g *LocalGateway) About(ctx context.Context) (*domain.About, error) {
	about, err := g.svc.About.GetActive(ctx)
	if domain.IsDomainError(err, domain.ErrCodeNotFound) {
		return nil, nil
	}
	return about, err
}

func (g *LocalGateway) Projects(ctx context.Context) ([]domain.Project, error) {
	return collectPages(func(offset int) ([]domain.Project, int, error) {
		return g.svc.Projects.List(ctx, repository.ListFilter{PublishedOnly: true, Limit: listPageSize, Offset: offset})
	})
}

func (g *LocalGateway) Certificates(ctx context.Context) ([]domain.Certificate, error) {
	return g.svc.Certificates.List(ctx)
}

func (g *LocalGateway) Blogs(ctx context.Context) ([]domain.Blog, error) {
	return collectPages(func(offset int) ([]domain.Blog, int, error) {
		return g.svc.Blogs.List(ctx, repository.ListFilter{PublishedOnly: true, Limit: listPageSize, Offset: offset})
	})
}

func (g *LocalGateway) Stats(ctx context.Context) ([]domain.Stat, error) {
	return g.svc.Stats.List(ctx)
}

func (g *LocalGateway) SaveHero(ctx context.Context, hero *domain.Hero) (usecase.UpsertResult[domain.Hero], error) {
	return g.svc.Hero.Save(ctx, hero)
}

func (g *LocalGateway) SaveAbout(ctx context.Context, about *domain.About) (usecase.UpsertResult[domain.About], error) {
	return g.svc.About.Save(ctx, about)
}

func (g *LocalGateway) SaveProject(ctx context.Context, project *domain.Project) (usecase.UpsertResult[domain.Project], error) {
	return g.svc.Projects.Save(ctx, project)
}

func (g *LocalGateway) SaveCertificate(ctx context.Context, cert *domain.Certificate) (usecase.UpsertResult[domain.Certificate], error) {
	return g.svc.Certificates.Save(ctx, cert)
}

func (g *LocalGateway) SaveBlog(ctx context.Context, blog *domain.Blog) (usecase.UpsertResult[domain.Blog], error) {
	return g.svc.Blogs.Save(ctx, blog)
}

func (g *LocalGateway) SaveStats(ctx context.Context, stats []domain.Stat) []usecase.BatchResult[domain.Stat] {
	return g.svc.Stats.SaveEach(ctx, stats)
}

func collectPages[T any](list func(offset int) ([]T, int, error)) ([]T, error) {
	var all []T
	for {
		page, total, err := list(len(all))
		if err != nil {
			return nil, err
		}
		all = append(all, page...)
		if len(page) == 0 || len(all) >= total {
			return all, nil
		}
	}
}
