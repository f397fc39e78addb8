package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"

	"github.com/fastygo/portfolio/domain"
	"github.com/fastygo/portfolio/repository"
)

const certificateColumns = `id::text, title, issuer, issue_date::text, credential_url, is_featured, display_order, is_published, created_at, updated_at`

type certificateRepository struct {
	pool *pgxpool.Pool
}

// NewCertificateRepository returns a Postgres-backed CertificateRepository.
func NewCertificateRepository(pool *pgxpool.Pool) repository.CertificateRepository {
	return &certificateRepository{pool: pool}
}

func (r *certificateRepository) List(ctx context.Context, publishedOnly bool) ([]domain.Certificate, error) {
	query := `SELECT ` + certificateColumns + ` FROM certificates
	WHERE ($1 = FALSE OR is_published)
	ORDER BY display_order ASC, issue_date DESC`

	rows, err := r.pool.Query(ctx, query, publishedOnly)
	if err != nil {
		return nil, storeError("list certificates", err)
	}
	defer rows.Close()

	certs := make([]domain.Certificate, 0)
	for rows.Next() {
		var c domain.Certificate
		if err := rows.Scan(
			&c.ID,
			&c.Title,
			&c.Issuer,
			&c.IssueDate,
			&c.CredentialURL,
			&c.IsFeatured,
			&c.DisplayOrder,
			&c.IsPublished,
			&c.CreatedAt,
			&c.UpdatedAt,
		); err != nil {
			return nil, storeError("scan certificate", err)
		}
		certs = append(certs, c)
	}
	if err := rows.Err(); err != nil {
		return nil, storeError("iterate certificates", err)
	}
	return certs, nil
}

func (r *certificateRepository) UpdateByID(ctx context.Context, cert *domain.Certificate) error {
	if cert == nil {
		return domain.ErrInvalidPayload
	}

	const query = `
	UPDATE certificates
	SET title = $2,
		issuer = $3,
		issue_date = $4::date,
		credential_url = $5,
		is_featured = $6,
		display_order = $7,
		is_published = $8,
		updated_at = NOW()
	WHERE id = $1
	RETURNING created_at, updated_at
	`

	if err := r.pool.QueryRow(ctx, query,
		cert.ID,
		cert.Title,
		cert.Issuer,
		cert.IssueDate,
		cert.CredentialURL,
		cert.IsFeatured,
		cert.DisplayOrder,
		cert.IsPublished,
	).Scan(&cert.CreatedAt, &cert.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrCertificateNotFound
		}
		return storeError("update certificate", err)
	}
	return nil
}

func (r *certificateRepository) Insert(ctx context.Context, cert *domain.Certificate) error {
	if cert == nil {
		return domain.ErrInvalidPayload
	}
	cert.ID = assignID(cert.ID)

	const query = `
	INSERT INTO certificates (id, title, issuer, issue_date, credential_url, is_featured, display_order, is_published)
	VALUES ($1, $2, $3, $4::date, $5, $6, $7, $8)
	RETURNING created_at, updated_at
	`

	if err := r.pool.QueryRow(ctx, query,
		cert.ID,
		cert.Title,
		cert.Issuer,
		cert.IssueDate,
		cert.CredentialURL,
		cert.IsFeatured,
		cert.DisplayOrder,
		cert.IsPublished,
	).Scan(&cert.CreatedAt, &cert.UpdatedAt); err != nil {
		return storeError("insert certificate", err)
	}
	return nil
}

func (r *certificateRepository) Delete(ctx context.Context, id string) error {
	if !domain.IsStoreID(id) {
		return domain.ErrCertificateNotFound
	}
	tag, err := r.pool.Exec(ctx, `DELETE FROM certificates WHERE id = $1`, id)
	if err != nil {
		return storeError("delete certificate", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCertificateNotFound
	}
	return nil
}
