package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/fastygo/portfolio/domain"
	"github.com/fastygo/portfolio/repository"
)

type BlogRepository struct {
	mu   sync.Mutex
	rows []domain.Blog
}

func NewBlogRepository() *BlogRepository {
	return &BlogRepository{}
}

var _ repository.BlogRepository = (*BlogRepository)(nil)

func (r *BlogRepository) List(_ context.Context, filter repository.ListFilter) ([]domain.Blog, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var matched []domain.Blog
	for _, b := range r.rows {
		if filter.PublishedOnly && !b.IsPublished {
			continue
		}
		if filter.Category != "" && b.Category != filter.Category {
			continue
		}
		if filter.FeaturedOnly && !b.IsFeatured {
			continue
		}
		matched = append(matched, cloneBlog(b))
	}
	// newest first, undated posts last
	sort.SliceStable(matched, func(i, j int) bool {
		a, b := matched[i].PublishedAt, matched[j].PublishedAt
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return a.After(*b)
		}
	})
	return page(matched, filter.Limit, filter.Offset), len(matched), nil
}

func (r *BlogRepository) UpdateByID(_ context.Context, blog *domain.Blog) error {
	if blog == nil {
		return domain.ErrInvalidPayload
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexByID(blog.ID)
	if idx < 0 {
		return domain.ErrBlogNotFound
	}
	if other := r.indexBySlug(blog.Slug); other >= 0 && other != idx {
		return domain.ErrSlugTaken
	}
	blog.CreatedAt = r.rows[idx].CreatedAt
	stamp(&blog.CreatedAt, &blog.UpdatedAt)
	r.rows[idx] = cloneBlog(*blog)
	return nil
}

func (r *BlogRepository) UpsertBySlug(_ context.Context, blog *domain.Blog) (bool, error) {
	if blog == nil {
		return false, domain.ErrInvalidPayload
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if idx := r.indexBySlug(blog.Slug); idx >= 0 {
		blog.ID = r.rows[idx].ID
		blog.CreatedAt = r.rows[idx].CreatedAt
		stamp(&blog.CreatedAt, &blog.UpdatedAt)
		r.rows[idx] = cloneBlog(*blog)
		return false, nil
	}
	blog.ID = domain.NewID()
	fresh(&blog.CreatedAt, &blog.UpdatedAt)
	r.rows = append(r.rows, cloneBlog(*blog))
	return true, nil
}

func (r *BlogRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexByID(id)
	if idx < 0 {
		return domain.ErrBlogNotFound
	}
	r.rows = append(r.rows[:idx], r.rows[idx+1:]...)
	return nil
}

func (r *BlogRepository) indexByID(id string) int {
	for i := range r.rows {
		if r.rows[i].ID == id {
			return i
		}
	}
	return -1
}

func (r *BlogRepository) indexBySlug(slug string) int {
	for i := range r.rows {
		if r.rows[i].Slug == slug {
			return i
		}
	}
	return -1
}

func cloneBlog(b domain.Blog) domain.Blog {
	if b.PublishedAt != nil {
		t := *b.PublishedAt
		b.PublishedAt = &t
	}
	b.ContentFormat = ""
	return b
}
