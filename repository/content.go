package repository

import (
	"context"

	"github.com/fastygo/portfolio/domain"
)

// ListFilter narrows paginated listings of projects and blogs.
type ListFilter struct {
	Category      string
	FeaturedOnly  bool
	PublishedOnly bool
	Limit         int
	Offset        int
}

type ProjectRepository interface {
	// List returns one page plus the total number of matching rows.
	List(ctx context.Context, filter ListFilter) ([]domain.Project, int, error)
	UpdateByID(ctx context.Context, project *domain.Project) error
	// UpsertBySlug inserts or updates keyed on slug and reports whether a row was inserted.
	UpsertBySlug(ctx context.Context, project *domain.Project) (bool, error)
	Delete(ctx context.Context, id string) error
}

type BlogRepository interface {
	List(ctx context.Context, filter ListFilter) ([]domain.Blog, int, error)
	UpdateByID(ctx context.Context, blog *domain.Blog) error
	UpsertBySlug(ctx context.Context, blog *domain.Blog) (bool, error)
	Delete(ctx context.Context, id string) error
}

type CertificateRepository interface {
	List(ctx context.Context, publishedOnly bool) ([]domain.Certificate, error)
	UpdateByID(ctx context.Context, cert *domain.Certificate) error
	Insert(ctx context.Context, cert *domain.Certificate) error
	Delete(ctx context.Context, id string) error
}

type StatRepository interface {
	List(ctx context.Context) ([]domain.Stat, error)
	UpdateByID(ctx context.Context, stat *domain.Stat) error
	Insert(ctx context.Context, stat *domain.Stat) error
	Delete(ctx context.Context, id string) error
}

type ContactRepository interface {
	Insert(ctx context.Context, msg *domain.ContactMessage) error
}
