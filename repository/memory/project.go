package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/fastygo/portfolio/domain"
	"github.com/fastygo/portfolio/repository"
)

type ProjectRepository struct {
	mu   sync.Mutex
	rows []domain.Project
}

func NewProjectRepository() *ProjectRepository {
	return &ProjectRepository{}
}

var _ repository.ProjectRepository = (*ProjectRepository)(nil)

func (r *ProjectRepository) List(_ context.Context, filter repository.ListFilter) ([]domain.Project, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var matched []domain.Project
	for _, p := range r.rows {
		if filter.PublishedOnly && !p.IsPublished {
			continue
		}
		if filter.Category != "" && p.Category != filter.Category {
			continue
		}
		if filter.FeaturedOnly && !p.Featured {
			continue
		}
		matched = append(matched, cloneProject(p))
	}
	sort.SliceStable(matched, func(i, j int) bool {
		if matched[i].DisplayOrder != matched[j].DisplayOrder {
			return matched[i].DisplayOrder < matched[j].DisplayOrder
		}
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})
	return page(matched, filter.Limit, filter.Offset), len(matched), nil
}

func (r *ProjectRepository) UpdateByID(_ context.Context, project *domain.Project) error {
	if project == nil {
		return domain.ErrInvalidPayload
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexByID(project.ID)
	if idx < 0 {
		return domain.ErrProjectNotFound
	}
	if other := r.indexBySlug(project.Slug); other >= 0 && other != idx {
		return domain.ErrSlugTaken
	}
	project.CreatedAt = r.rows[idx].CreatedAt
	stamp(&project.CreatedAt, &project.UpdatedAt)
	r.rows[idx] = cloneProject(*project)
	return nil
}

func (r *ProjectRepository) UpsertBySlug(_ context.Context, project *domain.Project) (bool, error) {
	if project == nil {
		return false, domain.ErrInvalidPayload
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if idx := r.indexBySlug(project.Slug); idx >= 0 {
		project.ID = r.rows[idx].ID
		project.CreatedAt = r.rows[idx].CreatedAt
		stamp(&project.CreatedAt, &project.UpdatedAt)
		r.rows[idx] = cloneProject(*project)
		return false, nil
	}
	project.ID = domain.NewID()
	fresh(&project.CreatedAt, &project.UpdatedAt)
	r.rows = append(r.rows, cloneProject(*project))
	return true, nil
}

func (r *ProjectRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexByID(id)
	if idx < 0 {
		return domain.ErrProjectNotFound
	}
	r.rows = append(r.rows[:idx], r.rows[idx+1:]...)
	return nil
}

func (r *ProjectRepository) indexByID(id string) int {
	for i := range r.rows {
		if r.rows[i].ID == id {
			return i
		}
	}
	return -1
}

func (r *ProjectRepository) indexBySlug(slug string) int {
	for i := range r.rows {
		if r.rows[i].Slug == slug {
			return i
		}
	}
	return -1
}

func cloneProject(p domain.Project) domain.Project {
	p.Technologies = cloneStrings(p.Technologies)
	return p
}
