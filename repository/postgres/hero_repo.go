package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"

	"github.com/fastygo/portfolio/domain"
	"github.com/fastygo/portfolio/repository"
)

const heroColumns = `id::text, title, subtitle, background_image_url, cta_text, social_links, is_active, created_at, updated_at`

type heroRepository struct {
	pool *pgxpool.Pool
	q    querier
	inTx bool
}

// NewHeroRepository returns a Postgres-backed HeroRepository.
func NewHeroRepository(pool *pgxpool.Pool) repository.HeroRepository {
	return &heroRepository{pool: pool, q: pool}
}

func (r *heroRepository) GetActive(ctx context.Context) (*domain.Hero, error) {
	query := `SELECT ` + heroColumns + ` FROM hero WHERE is_active LIMIT 1`
	return scanHero(r.q.QueryRow(ctx, query))
}

func (r *heroRepository) UpdateByID(ctx context.Context, hero *domain.Hero) error {
	if hero == nil {
		return domain.ErrInvalidPayload
	}

	const query = `
	UPDATE hero
	SET title = $2,
		subtitle = $3,
		background_image_url = $4,
		cta_text = $5,
		social_links = $6,
		is_active = $7,
		updated_at = NOW()
	WHERE id = $1
	RETURNING created_at, updated_at
	`

	if err := r.q.QueryRow(ctx, query,
		hero.ID,
		hero.Title,
		hero.Subtitle,
		hero.BackgroundImageURL,
		hero.CTAText,
		marshalJSON(hero.SocialLinks),
		hero.IsActive,
	).Scan(&hero.CreatedAt, &hero.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrHeroNotFound
		}
		return storeError("update hero", err)
	}
	return nil
}

func (r *heroRepository) Insert(ctx context.Context, hero *domain.Hero) error {
	if hero == nil {
		return domain.ErrInvalidPayload
	}
	hero.ID = assignID(hero.ID)

	const query = `
	INSERT INTO hero (id, title, subtitle, background_image_url, cta_text, social_links, is_active)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	RETURNING created_at, updated_at
	`

	if err := r.q.QueryRow(ctx, query,
		hero.ID,
		hero.Title,
		hero.Subtitle,
		hero.BackgroundImageURL,
		hero.CTAText,
		marshalJSON(hero.SocialLinks),
		hero.IsActive,
	).Scan(&hero.CreatedAt, &hero.UpdatedAt); err != nil {
		return storeError("insert hero", err)
	}
	return nil
}

func (r *heroRepository) DeactivateOthers(ctx context.Context, exceptID string) error {
	const query = `
	UPDATE hero
	SET is_active = FALSE, updated_at = NOW()
	WHERE is_active AND ($1 = '' OR id::text <> $1)
	`
	if _, err := r.q.Exec(ctx, query, exceptID); err != nil {
		return storeError("deactivate hero", err)
	}
	return nil
}

func (r *heroRepository) RunInTx(ctx context.Context, fn func(ctx context.Context, tx repository.HeroRepository) error) error {
	if r.inTx {
		return fn(ctx, r)
	}
	return pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		return fn(ctx, &heroRepository{pool: r.pool, q: tx, inTx: true})
	})
}

func scanHero(row rowScanner) (*domain.Hero, error) {
	var hero domain.Hero
	var links []byte

	if err := row.Scan(
		&hero.ID,
		&hero.Title,
		&hero.Subtitle,
		&hero.BackgroundImageURL,
		&hero.CTAText,
		&links,
		&hero.IsActive,
		&hero.CreatedAt,
		&hero.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrHeroNotFound
		}
		return nil, storeError("scan hero", err)
	}

	if err := unmarshalColumn(links, &hero.SocialLinks, "hero.social_links"); err != nil {
		return nil, err
	}
	return &hero, nil
}
