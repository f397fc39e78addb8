package auth

import (
	"context"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/fastygo/portfolio/domain"
	"github.com/fastygo/portfolio/repository"
)

const TokenTypeBearer = "Bearer"

// Config carries the admin credentials and token parameters.
type Config struct {
	AdminEmail        string
	AdminPasswordHash string
	Secret            string
	Issuer            string
	TTL               time.Duration
}

type UseCase struct {
	sessions repository.SessionRepository
	cfg      Config
	logger   *zap.Logger
	now      func() time.Time
}

func New(sessions repository.SessionRepository, cfg Config, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.TTL <= 0 {
		cfg.TTL = 12 * time.Hour
	}
	return &UseCase{
		sessions: sessions,
		cfg:      cfg,
		logger:   logger,
		now:      time.Now,
	}
}

// Login exchanges admin credentials for a signed bearer token bound to a
// revocable session.
func (uc *UseCase) Login(ctx context.Context, email, password string) (*domain.Token, error) {
	if strings.TrimSpace(email) == "" || password == "" {
		return nil, domain.NewError(domain.ErrCodeInvalid, "Missing required fields: email, password")
	}
	if uc.cfg.AdminEmail == "" || uc.cfg.AdminPasswordHash == "" || uc.cfg.Secret == "" {
		uc.logger.Warn("login attempted but admin credentials are not configured")
		return nil, domain.ErrInvalidCredentials
	}
	if !strings.EqualFold(strings.TrimSpace(email), uc.cfg.AdminEmail) {
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(uc.cfg.AdminPasswordHash), []byte(password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	now := uc.now()
	session := &domain.Session{
		ID:        uuid.NewString(),
		Subject:   uc.cfg.AdminEmail,
		CreatedAt: now,
		ExpiresAt: now.Add(uc.cfg.TTL),
	}
	if err := uc.sessions.Save(ctx, session); err != nil {
		return nil, err
	}

	claims := jwt.RegisteredClaims{
		ID:        session.ID,
		Subject:   session.Subject,
		Issuer:    uc.cfg.Issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(session.ExpiresAt),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(uc.cfg.Secret))
	if err != nil {
		return nil, errors.Wrap(err, "sign token")
	}

	uc.logger.Info("admin logged in", zap.String("session_id", session.ID))
	return &domain.Token{
		AccessToken: signed,
		TokenType:   TokenTypeBearer,
		ExpiresAt:   session.ExpiresAt,
		SessionID:   session.ID,
	}, nil
}

// Authenticate verifies the token signature and that its session is still live.
func (uc *UseCase) Authenticate(ctx context.Context, token string) (*domain.Session, error) {
	if token == "" || uc.cfg.Secret == "" {
		return nil, domain.ErrUnauthorized
	}

	var claims jwt.RegisteredClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(uc.cfg.Secret), nil
	})
	if err != nil || !parsed.Valid {
		return nil, domain.WrapError(domain.ErrCodeUnauthorized, "invalid token", err)
	}
	if uc.cfg.Issuer != "" && !claims.VerifyIssuer(uc.cfg.Issuer, true) {
		return nil, domain.ErrUnauthorized
	}

	session, err := uc.sessions.Get(ctx, claims.ID)
	if err != nil {
		if domain.IsDomainError(err, domain.ErrCodeNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, err
	}
	if session.IsExpired(uc.now()) || session.Subject != claims.Subject {
		_ = uc.sessions.Delete(ctx, session.ID)
		return nil, domain.ErrUnauthorized
	}
	return session, nil
}

// Logout revokes the session so its token stops authenticating.
func (uc *UseCase) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return domain.ErrUnauthorized
	}
	return uc.sessions.Delete(ctx, sessionID)
}
