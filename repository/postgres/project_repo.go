package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"

	"github.com/fastygo/portfolio/domain"
	"github.com/fastygo/portfolio/repository"
)

const projectColumns = `id::text, title, slug, short_description, description, technologies, thumbnail_url, demo_url, github_url, category, status, featured, display_order, is_published, created_at, updated_at`

type projectRepository struct {
	pool *pgxpool.Pool
}

// NewProjectRepository returns a Postgres-backed ProjectRepository.
func NewProjectRepository(pool *pgxpool.Pool) repository.ProjectRepository {
	return &projectRepository{pool: pool}
}

func (r *projectRepository) List(ctx context.Context, filter repository.ListFilter) ([]domain.Project, int, error) {
	const where = `
	WHERE ($1 = FALSE OR is_published)
	  AND ($2 = '' OR category = $2)
	  AND ($3 = FALSE OR featured)
	`

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM projects`+where,
		filter.PublishedOnly, filter.Category, filter.FeaturedOnly,
	).Scan(&total); err != nil {
		return nil, 0, storeError("count projects", err)
	}

	query := `SELECT ` + projectColumns + ` FROM projects` + where + `
	ORDER BY display_order ASC, created_at DESC
	LIMIT $4 OFFSET $5`

	rows, err := r.pool.Query(ctx, query,
		filter.PublishedOnly, filter.Category, filter.FeaturedOnly,
		clampLimit(filter.Limit), max(filter.Offset, 0),
	)
	if err != nil {
		return nil, 0, storeError("list projects", err)
	}
	defer rows.Close()

	projects := make([]domain.Project, 0)
	for rows.Next() {
		project, err := scanProject(rows)
		if err != nil {
			return nil, 0, err
		}
		projects = append(projects, *project)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, storeError("iterate projects", err)
	}
	return projects, total, nil
}

func (r *projectRepository) UpdateByID(ctx context.Context, project *domain.Project) error {
	if project == nil {
		return domain.ErrInvalidPayload
	}

	const query = `
	UPDATE projects
	SET title = $2,
		slug = $3,
		short_description = $4,
		description = $5,
		technologies = $6,
		thumbnail_url = $7,
		demo_url = $8,
		github_url = $9,
		category = $10,
		status = $11,
		featured = $12,
		display_order = $13,
		is_published = $14,
		updated_at = NOW()
	WHERE id = $1
	RETURNING created_at, updated_at
	`

	if err := r.pool.QueryRow(ctx, query,
		project.ID,
		project.Title,
		project.Slug,
		project.ShortDescription,
		project.Description,
		nonNil(project.Technologies),
		project.ThumbnailURL,
		project.DemoURL,
		project.GithubURL,
		project.Category,
		project.Status,
		project.Featured,
		project.DisplayOrder,
		project.IsPublished,
	).Scan(&project.CreatedAt, &project.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrProjectNotFound
		}
		return storeError("update project", err)
	}
	return nil
}

func (r *projectRepository) UpsertBySlug(ctx context.Context, project *domain.Project) (bool, error) {
	if project == nil {
		return false, domain.ErrInvalidPayload
	}

	const query = `
	INSERT INTO projects (
		id, title, slug, short_description, description, technologies,
		thumbnail_url, demo_url, github_url, category, status,
		featured, display_order, is_published
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	ON CONFLICT (slug) DO UPDATE SET
		title = EXCLUDED.title,
		short_description = EXCLUDED.short_description,
		description = EXCLUDED.description,
		technologies = EXCLUDED.technologies,
		thumbnail_url = EXCLUDED.thumbnail_url,
		demo_url = EXCLUDED.demo_url,
		github_url = EXCLUDED.github_url,
		category = EXCLUDED.category,
		status = EXCLUDED.status,
		featured = EXCLUDED.featured,
		display_order = EXCLUDED.display_order,
		is_published = EXCLUDED.is_published,
		updated_at = NOW()
	RETURNING id::text, created_at, updated_at, (xmax = 0) AS inserted
	`

	var inserted bool
	if err := r.pool.QueryRow(ctx, query,
		domain.NewID(),
		project.Title,
		project.Slug,
		project.ShortDescription,
		project.Description,
		nonNil(project.Technologies),
		project.ThumbnailURL,
		project.DemoURL,
		project.GithubURL,
		project.Category,
		project.Status,
		project.Featured,
		project.DisplayOrder,
		project.IsPublished,
	).Scan(&project.ID, &project.CreatedAt, &project.UpdatedAt, &inserted); err != nil {
		return false, storeError("upsert project", err)
	}
	return inserted, nil
}

func (r *projectRepository) Delete(ctx context.Context, id string) error {
	if !domain.IsStoreID(id) {
		return domain.ErrProjectNotFound
	}
	tag, err := r.pool.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return storeError("delete project", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrProjectNotFound
	}
	return nil
}

func scanProject(row rowScanner) (*domain.Project, error) {
	var p domain.Project
	if err := row.Scan(
		&p.ID,
		&p.Title,
		&p.Slug,
		&p.ShortDescription,
		&p.Description,
		&p.Technologies,
		&p.ThumbnailURL,
		&p.DemoURL,
		&p.GithubURL,
		&p.Category,
		&p.Status,
		&p.Featured,
		&p.DisplayOrder,
		&p.IsPublished,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		return nil, storeError("scan project", err)
	}
	return &p, nil
}
