package portfolio

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/fastygo/portfolio/domain"
	"github.com/fastygo/portfolio/usecase"
)

// Entity names used in reports and retry buffer entries.
const (
	EntityHero        = "hero"
	EntityAbout       = "about"
	EntityProject     = "project"
	EntityStats       = "stats"
	EntityCertificate = "certificate"
	EntityBlog        = "blog"
)

// Writer decomposes a document into per-resource saves. Saves are
// independent: one failing never stops the others, and nothing is rolled back.
type Writer struct {
	gw     Gateway
	buffer usecase.RetryBuffer
	logger *zap.Logger
	now    func() time.Time
}

// NewWriter builds a Writer. buffer may be nil, in which case failures are
// only reported.
func NewWriter(gw Gateway, buffer usecase.RetryBuffer, logger *zap.Logger) *Writer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Writer{
		gw:     gw,
		buffer: buffer,
		logger: logger,
		now:    time.Now,
	}
}

// Save writes hero, about, each project, the stats, each certificate and
// each blog, in that order, and reports every outcome.
func (w *Writer) Save(ctx context.Context, doc domain.Portfolio) Report {
	now := w.now()
	var report Report

	hero := HeroFromAggregate(doc.Hero, doc.Contact)
	save(ctx, w, &report, EntityHero, hero.Title, &hero, w.gw.SaveHero, func(h *domain.Hero) string { return h.ID })

	about := AboutFromAggregate(doc.About, doc.Experience, doc.Hero.Title)
	save(ctx, w, &report, EntityAbout, about.Heading, &about, w.gw.SaveAbout, func(a *domain.About) string { return a.ID })

	for i, item := range doc.Projects {
		project := ProjectFromAggregate(item, elementTime(now, i))
		save(ctx, w, &report, EntityProject, project.Slug, &project, w.gw.SaveProject, func(p *domain.Project) string { return p.ID })
	}

	if len(doc.Stats) > 0 {
		w.saveStats(ctx, &report, doc.Stats)
	}

	for _, item := range doc.Certificates {
		cert := CertificateFromAggregate(item, now)
		save(ctx, w, &report, EntityCertificate, cert.Title, &cert, w.gw.SaveCertificate, func(c *domain.Certificate) string { return c.ID })
	}

	for i, item := range doc.Blogs {
		blog := BlogFromAggregate(item, elementTime(now, i))
		save(ctx, w, &report, EntityBlog, blog.Slug, &blog, w.gw.SaveBlog, func(b *domain.Blog) string { return b.ID })
	}

	if !report.OK() {
		w.logger.Warn("portfolio saved with failures",
			zap.Int("succeeded", len(report.Succeeded())),
			zap.Int("failed", len(report.Failed())),
		)
	}
	return report
}

// saveStats sends the stats as one batch and reports each element on its own,
// keyed by label.
func (w *Writer) saveStats(ctx context.Context, report *Report, items []domain.StatItem) {
	stats := make([]domain.Stat, 0, len(items))
	for i, item := range items {
		stats = append(stats, StatFromAggregate(item, i))
	}

	for _, result := range w.gw.SaveStats(ctx, stats) {
		stat := stats[result.Index]
		if result.Err != nil {
			report.add(w.failure(ctx, EntityStats, stat.Label, []domain.Stat{stat}, result.Err))
			continue
		}
		outcome := Outcome{Resource: EntityStats, Key: stat.Label, Status: StatusUpdated}
		if result.Created {
			outcome.Status = StatusCreated
		}
		if result.Record != nil {
			outcome.ID = result.Record.ID
		}
		report.add(outcome)
	}
}

// elementTime spaces list elements one millisecond apart so that fallback
// slugs derived from it stay unique within a document.
func elementTime(now time.Time, index int) time.Time {
	return now.Add(time.Duration(index) * time.Millisecond)
}

func save[T any](
	ctx context.Context,
	w *Writer,
	report *Report,
	entity string,
	key string,
	record *T,
	fn func(context.Context, *T) (usecase.UpsertResult[T], error),
	idOf func(*T) string,
) {
	result, err := fn(ctx, record)
	if err != nil {
		report.add(w.failure(ctx, entity, key, record, err))
		return
	}

	outcome := Outcome{Resource: entity, Key: key, Status: StatusUpdated}
	if result.Created {
		outcome.Status = StatusCreated
	}
	if result.Record != nil {
		outcome.ID = idOf(result.Record)
	}
	report.add(outcome)
}

// failure hands unexpected errors to the retry buffer when one is configured.
// Client errors such as validation are reported as they are.
func (w *Writer) failure(ctx context.Context, entity, key string, payload any, err error) Outcome {
	outcome := Outcome{Resource: entity, Key: key, Status: StatusFailed, Error: err.Error()}
	log := w.logger.With(zap.String("resource", entity), zap.String("key", key))

	if w.buffer == nil || domain.CodeOf(err) != domain.ErrCodeInternal {
		log.Warn("sub-write failed", zap.Error(err))
		return outcome
	}
	if bufErr := w.buffer.Enqueue(ctx, entity, payload); bufErr != nil {
		log.Error("sub-write failed and could not be buffered", zap.Error(err), zap.NamedError("buffer_error", bufErr))
		return outcome
	}
	log.Warn("sub-write buffered for retry", zap.Error(err))
	outcome.Status = StatusBuffered
	return outcome
}
