package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"

	"github.com/fastygo/portfolio/domain"
	"github.com/fastygo/portfolio/repository"
)

const aboutColumns = `id::text, heading, bio, skills, experience, is_active, created_at, updated_at`

type aboutRepository struct {
	pool *pgxpool.Pool
	q    querier
	inTx bool
}

// NewAboutRepository returns a Postgres-backed AboutRepository.
func NewAboutRepository(pool *pgxpool.Pool) repository.AboutRepository {
	return &aboutRepository{pool: pool, q: pool}
}

func (r *aboutRepository) GetActive(ctx context.Context) (*domain.About, error) {
	query := `SELECT ` + aboutColumns + ` FROM about WHERE is_active LIMIT 1`
	return scanAbout(r.q.QueryRow(ctx, query))
}

func (r *aboutRepository) UpdateByID(ctx context.Context, about *domain.About) error {
	if about == nil {
		return domain.ErrInvalidPayload
	}

	const query = `
	UPDATE about
	SET heading = $2,
		bio = $3,
		skills = $4,
		experience = $5,
		is_active = $6,
		updated_at = NOW()
	WHERE id = $1
	RETURNING created_at, updated_at
	`

	if err := r.q.QueryRow(ctx, query,
		about.ID,
		about.Heading,
		about.Bio,
		nonNil(about.Skills),
		marshalJSON(about.Experience),
		about.IsActive,
	).Scan(&about.CreatedAt, &about.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrAboutNotFound
		}
		return storeError("update about", err)
	}
	return nil
}

func (r *aboutRepository) Insert(ctx context.Context, about *domain.About) error {
	if about == nil {
		return domain.ErrInvalidPayload
	}
	about.ID = assignID(about.ID)

	const query = `
	INSERT INTO about (id, heading, bio, skills, experience, is_active)
	VALUES ($1, $2, $3, $4, $5, $6)
	RETURNING created_at, updated_at
	`

	if err := r.q.QueryRow(ctx, query,
		about.ID,
		about.Heading,
		about.Bio,
		nonNil(about.Skills),
		marshalJSON(about.Experience),
		about.IsActive,
	).Scan(&about.CreatedAt, &about.UpdatedAt); err != nil {
		return storeError("insert about", err)
	}
	return nil
}

func (r *aboutRepository) DeactivateOthers(ctx context.Context, exceptID string) error {
	const query = `
	UPDATE about
	SET is_active = FALSE, updated_at = NOW()
	WHERE is_active AND ($1 = '' OR id::text <> $1)
	`
	if _, err := r.q.Exec(ctx, query, exceptID); err != nil {
		return storeError("deactivate about", err)
	}
	return nil
}

func (r *aboutRepository) RunInTx(ctx context.Context, fn func(ctx context.Context, tx repository.AboutRepository) error) error {
	if r.inTx {
		return fn(ctx, r)
	}
	return pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		return fn(ctx, &aboutRepository{pool: r.pool, q: tx, inTx: true})
	})
}

func scanAbout(row rowScanner) (*domain.About, error) {
	var about domain.About
	var experience []byte

	if err := row.Scan(
		&about.ID,
		&about.Heading,
		&about.Bio,
		&about.Skills,
		&experience,
		&about.IsActive,
		&about.CreatedAt,
		&about.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAboutNotFound
		}
		return nil, storeError("scan about", err)
	}

	if err := unmarshalColumn(experience, &about.Experience, "about.experience"); err != nil {
		return nil, err
	}
	return &about, nil
}
