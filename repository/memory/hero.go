package memory

import (
	"context"
	"sync"

	"github.com/fastygo/portfolio/domain"
	"github.com/fastygo/portfolio/repository"
)

var errHeroActiveConflict = domain.NewError(domain.ErrCodeConflict, "another hero record is already active")

type HeroRepository struct {
	mu   sync.Mutex
	rows []domain.Hero
}

// NewHeroRepository returns an empty in-memory hero store.
func NewHeroRepository() *HeroRepository {
	return &HeroRepository{}
}

var _ repository.HeroRepository = (*HeroRepository)(nil)

func (r *HeroRepository) GetActive(ctx context.Context) (*domain.Hero, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return heroTx{r}.GetActive(ctx)
}

func (r *HeroRepository) UpdateByID(ctx context.Context, hero *domain.Hero) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return heroTx{r}.UpdateByID(ctx, hero)
}

func (r *HeroRepository) Insert(ctx context.Context, hero *domain.Hero) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return heroTx{r}.Insert(ctx, hero)
}

func (r *HeroRepository) DeactivateOthers(ctx context.Context, exceptID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return heroTx{r}.DeactivateOthers(ctx, exceptID)
}

// RunInTx holds the store lock for the whole callback and restores the
// previous rows when fn fails.
func (r *HeroRepository) RunInTx(ctx context.Context, fn func(ctx context.Context, tx repository.HeroRepository) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	snapshot := append([]domain.Hero(nil), r.rows...)
	if err := fn(ctx, heroTx{r}); err != nil {
		r.rows = snapshot
		return err
	}
	return nil
}

// All returns every stored record, active or not.
func (r *HeroRepository) All() []domain.Hero {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]domain.Hero(nil), r.rows...)
}

// heroTx operates on the rows without locking; callers hold r.mu.
type heroTx struct {
	r *HeroRepository
}

func (t heroTx) GetActive(context.Context) (*domain.Hero, error) {
	for i := range t.r.rows {
		if t.r.rows[i].IsActive {
			out := t.r.rows[i]
			return &out, nil
		}
	}
	return nil, domain.ErrHeroNotFound
}

func (t heroTx) UpdateByID(_ context.Context, hero *domain.Hero) error {
	if hero == nil {
		return domain.ErrInvalidPayload
	}
	for i := range t.r.rows {
		if t.r.rows[i].ID != hero.ID {
			continue
		}
		if hero.IsActive && t.activeOtherThan(hero.ID) {
			return errHeroActiveConflict
		}
		hero.CreatedAt = t.r.rows[i].CreatedAt
		stamp(&hero.CreatedAt, &hero.UpdatedAt)
		t.r.rows[i] = *hero
		return nil
	}
	return domain.ErrHeroNotFound
}

func (t heroTx) Insert(_ context.Context, hero *domain.Hero) error {
	if hero == nil {
		return domain.ErrInvalidPayload
	}
	hero.ID = assignID(hero.ID)
	if hero.IsActive && t.activeOtherThan(hero.ID) {
		return errHeroActiveConflict
	}
	fresh(&hero.CreatedAt, &hero.UpdatedAt)
	t.r.rows = append(t.r.rows, *hero)
	return nil
}

func (t heroTx) DeactivateOthers(_ context.Context, exceptID string) error {
	for i := range t.r.rows {
		if t.r.rows[i].ID != exceptID {
			t.r.rows[i].IsActive = false
		}
	}
	return nil
}

func (t heroTx) RunInTx(ctx context.Context, fn func(ctx context.Context, tx repository.HeroRepository) error) error {
	return fn(ctx, t)
}

func (t heroTx) activeOtherThan(id string) bool {
	for i := range t.r.rows {
		if t.r.rows[i].IsActive && t.r.rows[i].ID != id {
			return true
		}
	}
	return false
}
