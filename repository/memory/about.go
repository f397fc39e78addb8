package memory

import (
	"context"
	"sync"

	"github.com/fastygo/portfolio/domain"
	"github.com/fastygo/portfolio/repository"
)

var errAboutActiveConflict = domain.NewError(domain.ErrCodeConflict, "another about record is already active")

type AboutRepository struct {
	mu   sync.Mutex
	rows []domain.About
}

func NewAboutRepository() *AboutRepository {
	return &AboutRepository{}
}

var _ repository.AboutRepository = (*AboutRepository)(nil)

func (r *AboutRepository) GetActive(ctx context.Context) (*domain.About, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return aboutTx{r}.GetActive(ctx)
}

func (r *AboutRepository) UpdateByID(ctx context.Context, about *domain.About) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return aboutTx{r}.UpdateByID(ctx, about)
}

func (r *AboutRepository) Insert(ctx context.Context, about *domain.About) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return aboutTx{r}.Insert(ctx, about)
}

func (r *AboutRepository) DeactivateOthers(ctx context.Context, exceptID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return aboutTx{r}.DeactivateOthers(ctx, exceptID)
}

func (r *AboutRepository) RunInTx(ctx context.Context, fn func(ctx context.Context, tx repository.AboutRepository) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	snapshot := make([]domain.About, len(r.rows))
	for i := range r.rows {
		snapshot[i] = cloneAbout(r.rows[i])
	}
	if err := fn(ctx, aboutTx{r}); err != nil {
		r.rows = snapshot
		return err
	}
	return nil
}

// All returns every stored record, active or not.
func (r *AboutRepository) All() []domain.About {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.About, len(r.rows))
	for i := range r.rows {
		out[i] = cloneAbout(r.rows[i])
	}
	return out
}

type aboutTx struct {
	r *AboutRepository
}

func (t aboutTx) GetActive(context.Context) (*domain.About, error) {
	for i := range t.r.rows {
		if t.r.rows[i].IsActive {
			out := cloneAbout(t.r.rows[i])
			return &out, nil
		}
	}
	return nil, domain.ErrAboutNotFound
}

func (t aboutTx) UpdateByID(_ context.Context, about *domain.About) error {
	if about == nil {
		return domain.ErrInvalidPayload
	}
	for i := range t.r.rows {
		if t.r.rows[i].ID != about.ID {
			continue
		}
		if about.IsActive && t.activeOtherThan(about.ID) {
			return errAboutActiveConflict
		}
		about.CreatedAt = t.r.rows[i].CreatedAt
		stamp(&about.CreatedAt, &about.UpdatedAt)
		t.r.rows[i] = cloneAbout(*about)
		return nil
	}
	return domain.ErrAboutNotFound
}

func (t aboutTx) Insert(_ context.Context, about *domain.About) error {
	if about == nil {
		return domain.ErrInvalidPayload
	}
	about.ID = assignID(about.ID)
	if about.IsActive && t.activeOtherThan(about.ID) {
		return errAboutActiveConflict
	}
	fresh(&about.CreatedAt, &about.UpdatedAt)
	t.r.rows = append(t.r.rows, cloneAbout(*about))
	return nil
}

func (t aboutTx) DeactivateOthers(_ context.Context, exceptID string) error {
	for i := range t.r.rows {
		if t.r.rows[i].ID != exceptID {
			t.r.rows[i].IsActive = false
		}
	}
	return nil
}

func (t aboutTx) RunInTx(ctx context.Context, fn func(ctx context.Context, tx repository.AboutRepository) error) error {
	return fn(ctx, t)
}

func (t aboutTx) activeOtherThan(id string) bool {
	for i := range t.r.rows {
		if t.r.rows[i].IsActive && t.r.rows[i].ID != id {
			return true
		}
	}
	return false
}

func cloneAbout(a domain.About) domain.About {
	a.Skills = cloneStrings(a.Skills)
	if a.Experience != nil {
		experience := make([]domain.Experience, len(a.Experience))
		copy(experience, a.Experience)
		a.Experience = experience
	}
	return a
}
