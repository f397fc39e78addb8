package contact

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/fastygo/portfolio/domain"
	"github.com/fastygo/portfolio/internal/validation"
	"github.com/fastygo/portfolio/repository"
)

type UseCase struct {
	repo   repository.ContactRepository
	logger *zap.Logger
}

func New(repo repository.ContactRepository, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		repo:   repo,
		logger: logger,
	}
}

// Submit stores a visitor message with status "new".
func (uc *UseCase) Submit(ctx context.Context, msg *domain.ContactMessage) (*domain.ContactMessage, error) {
	if msg == nil {
		return nil, domain.ErrInvalidPayload
	}
	msg.Name = strings.TrimSpace(msg.Name)
	msg.Email = strings.TrimSpace(msg.Email)
	if err := validation.Struct(msg); err != nil {
		return nil, err
	}
	msg.Status = domain.ContactStatusNew

	if err := uc.repo.Insert(ctx, msg); err != nil {
		uc.logger.Error("store contact message failed", zap.Error(err))
		return nil, err
	}
	uc.logger.Info("contact message received", zap.String("id", msg.ID))
	return msg, nil
}
