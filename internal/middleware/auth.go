package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/fastygo/portfolio/api/transport"
	"github.com/fastygo/portfolio/domain"
	"github.com/fastygo/portfolio/pkg/httpcontext"
)

// Authenticator resolves a bearer token to a live session.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*domain.Session, error)
}

// BearerAuth rejects requests without a valid bearer token and stores the
// session id on the request for downstream handlers.
func BearerAuth(auth Authenticator, logger *zap.Logger) func(fasthttp.RequestHandler) fasthttp.RequestHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(next fasthttp.RequestHandler) fasthttp.RequestHandler {
		return func(ctx *fasthttp.RequestCtx) {
			tokenString := extractToken(ctx)
			if tokenString == "" {
				unauthorized(ctx, "Authentication required")
				return
			}

			session, err := auth.Authenticate(ctx, tokenString)
			if err != nil {
				if !domain.IsDomainError(err, domain.ErrCodeUnauthorized) {
					logger.Error("token verification failed", zap.Error(err))
				} else {
					logger.Debug("invalid bearer token", zap.Error(err))
				}
				unauthorized(ctx, "Invalid or expired token")
				return
			}

			ctx.SetUserValue(string(httpcontext.KeySessionID), session.ID)
			next(ctx)
		}
	}
}

func unauthorized(ctx *fasthttp.RequestCtx, message string) {
	ctx.Response.Header.Set(fasthttp.HeaderWWWAuthenticate, "Bearer")
	transport.WriteJSON(ctx, http.StatusUnauthorized, transport.NewError(string(domain.ErrCodeUnauthorized), message))
}

func extractToken(ctx *fasthttp.RequestCtx) string {
	header := strings.TrimSpace(string(ctx.Request.Header.Peek(fasthttp.HeaderAuthorization)))
	if header == "" {
		return ""
	}
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
