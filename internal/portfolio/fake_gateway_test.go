package portfolio

import (
	"context"
	"errors"
	"sync"

	"github.com/fastygo/portfolio/domain"
	"github.com/fastygo/portfolio/usecase"
)

var errUnavailable = errors.New("store unavailable")

// fakeGateway records saves and fails on demand.
type fakeGateway struct {
	mu sync.Mutex

	hero         *domain.Hero
	about        *domain.About
	projects     []domain.Project
	certificates []domain.Certificate
	blogs        []domain.Blog
	stats        []domain.Stat
	readErr      error

	failProject map[string]error
	failStat    map[string]error

	savedHero  []domain.Hero
	savedAbout []domain.About
	savedProj  []domain.Project
	savedCerts []domain.Certificate
	savedBlogs []domain.Blog
	savedStats [][]domain.Stat
}

func (g *fakeGateway) Hero(context.Context) (*domain.Hero, error) {
	return g.hero, g.readErr
}

func (g *fakeGateway) About(context.Context) (*domain.About, error) {
	return g.about, g.readErr
}

func (g *fakeGateway) Projects(context.Context) ([]domain.Project, error) {
	return g.projects, g.readErr
}

func (g *fakeGateway) Certificates(context.Context) ([]domain.Certificate, error) {
	return g.certificates, g.readErr
}

func (g *fakeGateway) Blogs(context.Context) ([]domain.Blog, error) {
	return g.blogs, g.readErr
}

func (g *fakeGateway) Stats(context.Context) ([]domain.Stat, error) {
	return g.stats, g.readErr
}

func (g *fakeGateway) SaveHero(_ context.Context, h *domain.Hero) (usecase.UpsertResult[domain.Hero], error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	created := h.ID == ""
	if created {
		h.ID = domain.NewID()
	}
	g.savedHero = append(g.savedHero, *h)
	return usecase.UpsertResult[domain.Hero]{Record: h, Created: created}, nil
}

func (g *fakeGateway) SaveAbout(_ context.Context, a *domain.About) (usecase.UpsertResult[domain.About], error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	created := a.ID == ""
	if created {
		a.ID = domain.NewID()
	}
	g.savedAbout = append(g.savedAbout, *a)
	return usecase.UpsertResult[domain.About]{Record: a, Created: created}, nil
}

func (g *fakeGateway) SaveProject(_ context.Context, p *domain.Project) (usecase.UpsertResult[domain.Project], error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if err := g.failProject[p.Slug]; err != nil {
		return usecase.UpsertResult[domain.Project]{}, err
	}
	p.ID = domain.NewID()
	g.savedProj = append(g.savedProj, *p)
	return usecase.UpsertResult[domain.Project]{Record: p, Created: true}, nil
}

func (g *fakeGateway) SaveCertificate(_ context.Context, c *domain.Certificate) (usecase.UpsertResult[domain.Certificate], error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	c.ID = domain.NewID()
	g.savedCerts = append(g.savedCerts, *c)
	return usecase.UpsertResult[domain.Certificate]{Record: c, Created: true}, nil
}

func (g *fakeGateway) SaveBlog(_ context.Context, b *domain.Blog) (usecase.UpsertResult[domain.Blog], error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	b.ID = domain.NewID()
	g.savedBlogs = append(g.savedBlogs, *b)
	return usecase.UpsertResult[domain.Blog]{Record: b, Created: true}, nil
}

func (g *fakeGateway) SaveStats(_ context.Context, stats []domain.Stat) []usecase.BatchResult[domain.Stat] {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.savedStats = append(g.savedStats, stats)
	results := make([]usecase.BatchResult[domain.Stat], 0, len(stats))
	for i := range stats {
		result := usecase.BatchResult[domain.Stat]{Index: i}
		if err := g.failStat[stats[i].Label]; err != nil {
			result.Err = err
		} else {
			stored := stats[i]
			stored.ID = domain.NewID()
			result.Record = &stored
			result.Created = true
		}
		results = append(results, result)
	}
	return results
}

type bufferedWrite struct {
	entity  string
	payload any
}

type fakeBuffer struct {
	entries []bufferedWrite
}

func (b *fakeBuffer) Enqueue(_ context.Context, entity string, payload any) error {
	b.entries = append(b.entries, bufferedWrite{entity: entity, payload: payload})
	return nil
}
