package repository

import (
	"context"

	"github.com/fastygo/portfolio/domain"
)

// HeroRepository persists hero records. UpdateByID reports
// domain.ErrHeroNotFound when no row matched, including a zero-row update.
type HeroRepository interface {
	GetActive(ctx context.Context) (*domain.Hero, error)
	UpdateByID(ctx context.Context, hero *domain.Hero) error
	Insert(ctx context.Context, hero *domain.Hero) error
	DeactivateOthers(ctx context.Context, exceptID string) error
	// RunInTx executes fn against a repository bound to a single transaction.
	RunInTx(ctx context.Context, fn func(ctx context.Context, tx HeroRepository) error) error
}

// AboutRepository persists about records with the same contract as HeroRepository.
type AboutRepository interface {
	GetActive(ctx context.Context) (*domain.About, error)
	UpdateByID(ctx context.Context, about *domain.About) error
	Insert(ctx context.Context, about *domain.About) error
	DeactivateOthers(ctx context.Context, exceptID string) error
	RunInTx(ctx context.Context, fn func(ctx context.Context, tx AboutRepository) error) error
}
