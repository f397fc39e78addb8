package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fastygo/portfolio/domain"
	"github.com/fastygo/portfolio/repository"
)

type contactRepository struct {
	pool *pgxpool.Pool
}

// NewContactRepository returns a Postgres-backed ContactRepository.
func NewContactRepository(pool *pgxpool.Pool) repository.ContactRepository {
	return &contactRepository{pool: pool}
}

func (r *contactRepository) Insert(ctx context.Context, msg *domain.ContactMessage) error {
	if msg == nil {
		return domain.ErrInvalidPayload
	}
	msg.ID = domain.NewID()

	const query = `
	INSERT INTO contact_messages (id, name, email, subject, message, phone, company, status)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	RETURNING created_at
	`

	if err := r.pool.QueryRow(ctx, query,
		msg.ID,
		msg.Name,
		msg.Email,
		msg.Subject,
		msg.Message,
		msg.Phone,
		msg.Company,
		msg.Status,
	).Scan(&msg.CreatedAt); err != nil {
		return storeError("insert contact message", err)
	}
	return nil
}
