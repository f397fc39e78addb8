package portfolio

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/fastygo/portfolio/domain"
)

// Fetcher reads every resource concurrently and merges the results into one
// document, substituting defaults per resource.
type Fetcher struct {
	gw     Gateway
	logger *zap.Logger
}

func NewFetcher(gw Gateway, logger *zap.Logger) *Fetcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Fetcher{gw: gw, logger: logger}
}

// Fetch never fails. A resource that errors or comes back empty is replaced
// by its slice of Defaults(); the others are kept.
func (f *Fetcher) Fetch(ctx context.Context) domain.Portfolio {
	var (
		hero         *domain.Hero
		about        *domain.About
		projects     []domain.Project
		certificates []domain.Certificate
		blogs        []domain.Blog
		stats        []domain.Stat

		heroErr, aboutErr, projectsErr, certificatesErr, blogsErr, statsErr error
	)

	// Each read records its own error so one failure never cancels the rest.
	var g errgroup.Group
	g.Go(func() error { hero, heroErr = f.gw.Hero(ctx); return nil })
	g.Go(func() error { about, aboutErr = f.gw.About(ctx); return nil })
	g.Go(func() error { projects, projectsErr = f.gw.Projects(ctx); return nil })
	g.Go(func() error { certificates, certificatesErr = f.gw.Certificates(ctx); return nil })
	g.Go(func() error { blogs, blogsErr = f.gw.Blogs(ctx); return nil })
	g.Go(func() error { stats, statsErr = f.gw.Stats(ctx); return nil })
	_ = g.Wait()

	doc := Defaults()

	if f.usable("hero", heroErr, hero != nil) {
		section, contact := HeroToAggregate(*hero)
		doc.Hero = domain.HeroSection{
			ID:       section.ID,
			Title:    orDefault(section.Title, doc.Hero.Title),
			Subtitle: orDefault(section.Subtitle, doc.Hero.Subtitle),
			ImageURL: orDefault(section.ImageURL, doc.Hero.ImageURL),
			CTAText:  orDefault(section.CTAText, doc.Hero.CTAText),
		}
		if contact != (domain.ContactInfo{}) {
			doc.Contact = contact
		}
	}

	if f.usable("about", aboutErr, about != nil) {
		section, experience := AboutToAggregate(*about)
		doc.About.ID = section.ID
		doc.About.Bio = orDefault(section.Bio, doc.About.Bio)
		if section.Skills != nil {
			doc.About.Skills = section.Skills
		}
		if experience != nil {
			doc.Experience = experience
		}
	}

	if f.usable("projects", projectsErr, len(projects) > 0) {
		doc.Projects = mapAll(projects, ProjectToAggregate)
	}
	if f.usable("certificates", certificatesErr, len(certificates) > 0) {
		doc.Certificates = mapAll(certificates, CertificateToAggregate)
	}
	if f.usable("blogs", blogsErr, len(blogs) > 0) {
		doc.Blogs = mapAll(blogs, BlogToAggregate)
	}
	if f.usable("stats", statsErr, len(stats) > 0) {
		doc.Stats = mapAll(stats, StatToAggregate)
	}

	return doc
}

// usable reports whether a read produced data, logging why it did not.
func (f *Fetcher) usable(resource string, err error, hasData bool) bool {
	switch {
	case err != nil:
		f.logger.Warn("resource read failed, using defaults", zap.String("resource", resource), zap.Error(err))
		return false
	case !hasData:
		f.logger.Debug("resource empty, using defaults", zap.String("resource", resource))
		return false
	default:
		return true
	}
}

func mapAll[T, U any](in []T, fn func(T) U) []U {
	out := make([]U, 0, len(in))
	for _, v := range in {
		out = append(out, fn(v))
	}
	return out
}
