package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/fastygo/portfolio/domain"
	"github.com/fastygo/portfolio/repository"
)

type StatRepository struct {
	mu   sync.Mutex
	rows []domain.Stat
}

func NewStatRepository() *StatRepository {
	return &StatRepository{}
}

var _ repository.StatRepository = (*StatRepository)(nil)

func (r *StatRepository) List(context.Context) ([]domain.Stat, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := append([]domain.Stat{}, r.rows...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DisplayOrder < out[j].DisplayOrder
	})
	return out, nil
}

func (r *StatRepository) UpdateByID(_ context.Context, stat *domain.Stat) error {
	if stat == nil {
		return domain.ErrInvalidPayload
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.rows {
		if r.rows[i].ID == stat.ID {
			stat.CreatedAt = r.rows[i].CreatedAt
			stamp(&stat.CreatedAt, &stat.UpdatedAt)
			r.rows[i] = *stat
			return nil
		}
	}
	return domain.ErrStatNotFound
}

func (r *StatRepository) Insert(_ context.Context, stat *domain.Stat) error {
	if stat == nil {
		return domain.ErrInvalidPayload
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	stat.ID = assignID(stat.ID)
	fresh(&stat.CreatedAt, &stat.UpdatedAt)
	r.rows = append(r.rows, *stat)
	return nil
}

func (r *StatRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.rows {
		if r.rows[i].ID == id {
			r.rows = append(r.rows[:i], r.rows[i+1:]...)
			return nil
		}
	}
	return domain.ErrStatNotFound
}
