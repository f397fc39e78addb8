package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/fastygo/portfolio/domain"
	"github.com/fastygo/portfolio/repository"
)

type CertificateRepository struct {
	mu   sync.Mutex
	rows []domain.Certificate
}

func NewCertificateRepository() *CertificateRepository {
	return &CertificateRepository{}
}

var _ repository.CertificateRepository = (*CertificateRepository)(nil)

func (r *CertificateRepository) List(_ context.Context, publishedOnly bool) ([]domain.Certificate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]domain.Certificate, 0, len(r.rows))
	for _, c := range r.rows {
		if publishedOnly && !c.IsPublished {
			continue
		}
		out = append(out, c)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].DisplayOrder != out[j].DisplayOrder {
			return out[i].DisplayOrder < out[j].DisplayOrder
		}
		// ISO dates order lexically
		return out[i].IssueDate > out[j].IssueDate
	})
	return out, nil
}

func (r *CertificateRepository) UpdateByID(_ context.Context, cert *domain.Certificate) error {
	if cert == nil {
		return domain.ErrInvalidPayload
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.rows {
		if r.rows[i].ID == cert.ID {
			cert.CreatedAt = r.rows[i].CreatedAt
			stamp(&cert.CreatedAt, &cert.UpdatedAt)
			r.rows[i] = *cert
			return nil
		}
	}
	return domain.ErrCertificateNotFound
}

func (r *CertificateRepository) Insert(_ context.Context, cert *domain.Certificate) error {
	if cert == nil {
		return domain.ErrInvalidPayload
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	cert.ID = assignID(cert.ID)
	fresh(&cert.CreatedAt, &cert.UpdatedAt)
	r.rows = append(r.rows, *cert)
	return nil
}

func (r *CertificateRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.rows {
		if r.rows[i].ID == id {
			r.rows = append(r.rows[:i], r.rows[i+1:]...)
			return nil
		}
	}
	return domain.ErrCertificateNotFound
}
