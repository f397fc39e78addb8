package memory

import (
	"context"
	"sync"
	"time"

	"github.com/fastygo/portfolio/domain"
	"github.com/fastygo/portfolio/repository"
)

type ContactRepository struct {
	mu       sync.Mutex
	messages []domain.ContactMessage
}

func NewContactRepository() *ContactRepository {
	return &ContactRepository{}
}

var _ repository.ContactRepository = (*ContactRepository)(nil)

func (r *ContactRepository) Insert(_ context.Context, msg *domain.ContactMessage) error {
	if msg == nil {
		return domain.ErrInvalidPayload
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	msg.ID = domain.NewID()
	msg.CreatedAt = time.Now().UTC()
	r.messages = append(r.messages, *msg)
	return nil
}

// Messages returns the stored submissions in arrival order.
func (r *ContactRepository) Messages() []domain.ContactMessage {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]domain.ContactMessage(nil), r.messages...)
}
