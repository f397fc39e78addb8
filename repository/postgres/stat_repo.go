package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"

	"github.com/fastygo/portfolio/domain"
	"github.com/fastygo/portfolio/repository"
)

type statRepository struct {
	pool *pgxpool.Pool
}

// NewStatRepository returns a Postgres-backed StatRepository.
func NewStatRepository(pool *pgxpool.Pool) repository.StatRepository {
	return &statRepository{pool: pool}
}

func (r *statRepository) List(ctx context.Context) ([]domain.Stat, error) {
	const query = `
	SELECT id::text, label, value, display_order, created_at, updated_at
	FROM stats
	ORDER BY display_order ASC, created_at ASC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, storeError("list stats", err)
	}
	defer rows.Close()

	stats := make([]domain.Stat, 0)
	for rows.Next() {
		var s domain.Stat
		if err := rows.Scan(&s.ID, &s.Label, &s.Value, &s.DisplayOrder, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, storeError("scan stat", err)
		}
		stats = append(stats, s)
	}
	if err := rows.Err(); err != nil {
		return nil, storeError("iterate stats", err)
	}
	return stats, nil
}

func (r *statRepository) UpdateByID(ctx context.Context, stat *domain.Stat) error {
	if stat == nil {
		return domain.ErrInvalidPayload
	}

	const query = `
	UPDATE stats
	SET label = $2, value = $3, display_order = $4, updated_at = NOW()
	WHERE id = $1
	RETURNING created_at, updated_at
	`

	if err := r.pool.QueryRow(ctx, query, stat.ID, stat.Label, stat.Value, stat.DisplayOrder).
		Scan(&stat.CreatedAt, &stat.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrStatNotFound
		}
		return storeError("update stat", err)
	}
	return nil
}

func (r *statRepository) Insert(ctx context.Context, stat *domain.Stat) error {
	if stat == nil {
		return domain.ErrInvalidPayload
	}
	stat.ID = assignID(stat.ID)

	const query = `
	INSERT INTO stats (id, label, value, display_order)
	VALUES ($1, $2, $3, $4)
	RETURNING created_at, updated_at
	`

	if err := r.pool.QueryRow(ctx, query, stat.ID, stat.Label, stat.Value, stat.DisplayOrder).
		Scan(&stat.CreatedAt, &stat.UpdatedAt); err != nil {
		return storeError("insert stat", err)
	}
	return nil
}

func (r *statRepository) Delete(ctx context.Context, id string) error {
	if !domain.IsStoreID(id) {
		return domain.ErrStatNotFound
	}
	tag, err := r.pool.Exec(ctx, `DELETE FROM stats WHERE id = $1`, id)
	if err != nil {
		return storeError("delete stat", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrStatNotFound
	}
	return nil
}
