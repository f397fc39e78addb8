package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"

	"github.com/fastygo/portfolio/domain"
	"github.com/fastygo/portfolio/repository"
)

const blogColumns = `id::text, title, slug, excerpt, content, category, read_time, is_featured, is_published, published_at, created_at, updated_at`

type blogRepository struct {
	pool *pgxpool.Pool
}

// NewBlogRepository returns a Postgres-backed BlogRepository.
func NewBlogRepository(pool *pgxpool.Pool) repository.BlogRepository {
	return &blogRepository{pool: pool}
}

func (r *blogRepository) List(ctx context.Context, filter repository.ListFilter) ([]domain.Blog, int, error) {
	const where = `
	WHERE ($1 = FALSE OR is_published)
	  AND ($2 = '' OR category = $2)
	  AND ($3 = FALSE OR is_featured)
	`

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM blogs`+where,
		filter.PublishedOnly, filter.Category, filter.FeaturedOnly,
	).Scan(&total); err != nil {
		return nil, 0, storeError("count blogs", err)
	}

	query := `SELECT ` + blogColumns + ` FROM blogs` + where + `
	ORDER BY published_at DESC NULLS LAST, created_at DESC
	LIMIT $4 OFFSET $5`

	rows, err := r.pool.Query(ctx, query,
		filter.PublishedOnly, filter.Category, filter.FeaturedOnly,
		clampLimit(filter.Limit), max(filter.Offset, 0),
	)
	if err != nil {
		return nil, 0, storeError("list blogs", err)
	}
	defer rows.Close()

	blogs := make([]domain.Blog, 0)
	for rows.Next() {
		blog, err := scanBlog(rows)
		if err != nil {
			return nil, 0, err
		}
		blogs = append(blogs, *blog)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, storeError("iterate blogs", err)
	}
	return blogs, total, nil
}

func (r *blogRepository) UpdateByID(ctx context.Context, blog *domain.Blog) error {
	if blog == nil {
		return domain.ErrInvalidPayload
	}

	const query = `
	UPDATE blogs
	SET title = $2,
		slug = $3,
		excerpt = $4,
		content = $5,
		category = $6,
		read_time = $7,
		is_featured = $8,
		is_published = $9,
		published_at = $10,
		updated_at = NOW()
	WHERE id = $1
	RETURNING created_at, updated_at
	`

	if err := r.pool.QueryRow(ctx, query,
		blog.ID,
		blog.Title,
		blog.Slug,
		blog.Excerpt,
		blog.Content,
		blog.Category,
		blog.ReadTime,
		blog.IsFeatured,
		blog.IsPublished,
		nullTime(blog.PublishedAt),
	).Scan(&blog.CreatedAt, &blog.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrBlogNotFound
		}
		return storeError("update blog", err)
	}
	return nil
}

func (r *blogRepository) UpsertBySlug(ctx context.Context, blog *domain.Blog) (bool, error) {
	if blog == nil {
		return false, domain.ErrInvalidPayload
	}

	const query = `
	INSERT INTO blogs (
		id, title, slug, excerpt, content, category, read_time,
		is_featured, is_published, published_at
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	ON CONFLICT (slug) DO UPDATE SET
		title = EXCLUDED.title,
		excerpt = EXCLUDED.excerpt,
		content = EXCLUDED.content,
		category = EXCLUDED.category,
		read_time = EXCLUDED.read_time,
		is_featured = EXCLUDED.is_featured,
		is_published = EXCLUDED.is_published,
		published_at = EXCLUDED.published_at,
		updated_at = NOW()
	RETURNING id::text, created_at, updated_at, (xmax = 0) AS inserted
	`

	var inserted bool
	if err := r.pool.QueryRow(ctx, query,
		domain.NewID(),
		blog.Title,
		blog.Slug,
		blog.Excerpt,
		blog.Content,
		blog.Category,
		blog.ReadTime,
		blog.IsFeatured,
		blog.IsPublished,
		nullTime(blog.PublishedAt),
	).Scan(&blog.ID, &blog.CreatedAt, &blog.UpdatedAt, &inserted); err != nil {
		return false, storeError("upsert blog", err)
	}
	return inserted, nil
}

func (r *blogRepository) Delete(ctx context.Context, id string) error {
	if !domain.IsStoreID(id) {
		return domain.ErrBlogNotFound
	}
	tag, err := r.pool.Exec(ctx, `DELETE FROM blogs WHERE id = $1`, id)
	if err != nil {
		return storeError("delete blog", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrBlogNotFound
	}
	return nil
}

func scanBlog(row rowScanner) (*domain.Blog, error) {
	var b domain.Blog
	if err := row.Scan(
		&b.ID,
		&b.Title,
		&b.Slug,
		&b.Excerpt,
		&b.Content,
		&b.Category,
		&b.ReadTime,
		&b.IsFeatured,
		&b.IsPublished,
		&b.PublishedAt,
		&b.CreatedAt,
		&b.UpdatedAt,
	); err != nil {
		return nil, storeError("scan blog", err)
	}
	return &b, nil
}
