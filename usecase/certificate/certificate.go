package certificate

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/fastygo/portfolio/domain"
	"github.com/fastygo/portfolio/internal/validation"
	"github.com/fastygo/portfolio/repository"
	"github.com/fastygo/portfolio/usecase"
)

// Layouts accepted for issue dates, most specific first. Partial dates
// resolve to the first day of the period.
var issueDateLayouts = []string{
	time.RFC3339,
	time.DateOnly,
	"2006-01",
	"2006",
}

type UseCase struct {
	repo   repository.CertificateRepository
	logger *zap.Logger
}

func New(repo repository.CertificateRepository, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		repo:   repo,
		logger: logger,
	}
}

// List returns published certificates.
func (uc *UseCase) List(ctx context.Context) ([]domain.Certificate, error) {
	return uc.repo.List(ctx, true)
}

func (uc *UseCase) Save(ctx context.Context, cert *domain.Certificate) (usecase.UpsertResult[domain.Certificate], error) {
	if cert == nil {
		return usecase.UpsertResult[domain.Certificate]{}, domain.ErrInvalidPayload
	}
	if err := validation.Struct(cert); err != nil {
		return usecase.UpsertResult[domain.Certificate]{}, err
	}
	date, err := NormalizeIssueDate(cert.IssueDate)
	if err != nil {
		return usecase.UpsertResult[domain.Certificate]{}, err
	}
	cert.IssueDate = date

	created, err := usecase.Reconcile(ctx, uc.logger, "certificate", cert.ID,
		func(ctx context.Context) error {
			return uc.repo.UpdateByID(ctx, cert)
		},
		func(ctx context.Context) (bool, error) {
			cert.ID = ""
			return true, uc.repo.Insert(ctx, cert)
		},
	)
	if err != nil {
		uc.logger.Error("save certificate failed", zap.String("title", cert.Title), zap.Error(err))
		return usecase.UpsertResult[domain.Certificate]{}, err
	}
	return usecase.UpsertResult[domain.Certificate]{Record: cert, Created: created}, nil
}

func (uc *UseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

// NormalizeIssueDate converts the accepted date shapes to YYYY-MM-DD.
func NormalizeIssueDate(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	for _, layout := range issueDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format(time.DateOnly), nil
		}
	}
	return "", domain.NewError(domain.ErrCodeInvalid, "Invalid issue_date: expected YYYY-MM-DD")
}
