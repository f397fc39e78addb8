package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/fastygo/portfolio/domain"
	"github.com/fastygo/portfolio/repository/memory"
)

func newUseCase(t *testing.T) *UseCase {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("correct horse"), bcrypt.MinCost)
	require.NoError(t, err)
	return New(memory.NewSessionRepository(), Config{
		AdminEmail:        "admin@example.com",
		AdminPasswordHash: string(hash),
		Secret:            "test-secret",
		Issuer:            "portfolio-test",
		TTL:               time.Hour,
	}, nil)
}

func TestLoginAndAuthenticate(t *testing.T) {
	ctx := context.Background()
	uc := newUseCase(t)

	token, err := uc.Login(ctx, "Admin@Example.com", "correct horse")
	require.NoError(t, err)
	assert.Equal(t, TokenTypeBearer, token.TokenType)
	assert.NotEmpty(t, token.AccessToken)

	session, err := uc.Authenticate(ctx, token.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, token.SessionID, session.ID)

	require.NoError(t, uc.Logout(ctx, session.ID))
	_, err = uc.Authenticate(ctx, token.AccessToken)
	assert.True(t, domain.IsDomainError(err, domain.ErrCodeUnauthorized))
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	ctx := context.Background()
	uc := newUseCase(t)

	_, err := uc.Login(ctx, "admin@example.com", "wrong")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = uc.Login(ctx, "someone@example.com", "correct horse")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = uc.Login(ctx, "", "")
	assert.True(t, domain.IsDomainError(err, domain.ErrCodeInvalid))
}

func TestAuthenticateRejectsForeignTokens(t *testing.T) {
	ctx := context.Background()
	uc := newUseCase(t)

	token, err := uc.Login(ctx, "admin@example.com", "correct horse")
	require.NoError(t, err)

	other := newUseCase(t)
	other.cfg.Secret = "different"
	_, err = other.Authenticate(ctx, token.AccessToken)
	assert.True(t, domain.IsDomainError(err, domain.ErrCodeUnauthorized))

	_, err = uc.Authenticate(ctx, "not-a-jwt")
	assert.True(t, domain.IsDomainError(err, domain.ErrCodeUnauthorized))
}
