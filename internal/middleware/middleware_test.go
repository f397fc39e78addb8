package middleware

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/valyala/fasthttp"

	"github.com/fastygo/portfolio/domain"
	"github.com/fastygo/portfolio/internal/ratelimit"
	"github.com/fastygo/portfolio/pkg/httpcontext"
)

type stubAuth struct {
	session *domain.Session
	err     error
	seen    string
}

func (s *stubAuth) Authenticate(_ context.Context, token string) (*domain.Session, error) {
	s.seen = token
	return s.session, s.err
}

type stubLimiter struct {
	decision ratelimit.Decision
	err      error
}

func (s stubLimiter) Allow(context.Context, string) (ratelimit.Decision, error) {
	return s.decision, s.err
}

func newCtx(method, authorization string) *fasthttp.RequestCtx {
	var req fasthttp.Request
	req.Header.SetMethod(method)
	req.SetRequestURI("/api/hero")
	if authorization != "" {
		req.Header.Set(fasthttp.HeaderAuthorization, authorization)
	}
	ctx := &fasthttp.RequestCtx{}
	ctx.Init(&req, &net.TCPAddr{IP: net.ParseIP("192.0.2.10"), Port: 1234}, nil)
	return ctx
}

func okHandler(called *bool) fasthttp.RequestHandler {
	return func(ctx *fasthttp.RequestCtx) {
		*called = true
		ctx.SetStatusCode(fasthttp.StatusOK)
	}
}

func TestBearerAuth(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		auth       *stubAuth
		wantStatus int
		wantToken  string
	}{
		{"missing header", "", &stubAuth{}, fasthttp.StatusUnauthorized, ""},
		{"wrong scheme", "Basic abc", &stubAuth{}, fasthttp.StatusUnauthorized, ""},
		{"rejected token", "Bearer bad", &stubAuth{err: domain.ErrUnauthorized}, fasthttp.StatusUnauthorized, "bad"},
		{"valid token", "bearer good", &stubAuth{session: &domain.Session{ID: "sid-1"}}, fasthttp.StatusOK, "good"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			ctx := newCtx(fasthttp.MethodPost, tt.header)

			BearerAuth(tt.auth, nil)(okHandler(&called))(ctx)

			assert.Equal(t, tt.wantStatus, ctx.Response.StatusCode())
			assert.Equal(t, tt.wantStatus == fasthttp.StatusOK, called)
			assert.Equal(t, tt.wantToken, tt.auth.seen)
			if called {
				assert.Equal(t, "sid-1", ctx.UserValue(string(httpcontext.KeySessionID)))
			}
		})
	}
}

func TestRateLimit(t *testing.T) {
	t.Run("rejects with retry hint", func(t *testing.T) {
		called := false
		ctx := newCtx(fasthttp.MethodPost, "")
		limiter := stubLimiter{decision: ratelimit.Decision{Allowed: false, RetryAfter: 1500 * time.Millisecond}}

		RateLimit(limiter, nil)(okHandler(&called))(ctx)

		assert.False(t, called)
		assert.Equal(t, fasthttp.StatusTooManyRequests, ctx.Response.StatusCode())
		assert.Equal(t, "2", string(ctx.Response.Header.Peek(fasthttp.HeaderRetryAfter)))
	})

	t.Run("fails open", func(t *testing.T) {
		called := false
		ctx := newCtx(fasthttp.MethodPost, "")

		RateLimit(stubLimiter{err: errors.New("redis down")}, nil)(okHandler(&called))(ctx)

		assert.True(t, called)
		assert.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
	})
}

func TestCORS(t *testing.T) {
	t.Run("preflight short-circuits", func(t *testing.T) {
		called := false
		ctx := newCtx(fasthttp.MethodOptions, "")

		CORS(nil)(okHandler(&called))(ctx)

		assert.False(t, called)
		assert.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
		assert.Equal(t, "*", string(ctx.Response.Header.Peek(fasthttp.HeaderAccessControlAllowOrigin)))
	})

	t.Run("echoes listed origin", func(t *testing.T) {
		called := false
		ctx := newCtx(fasthttp.MethodGet, "")
		ctx.Request.Header.Set(fasthttp.HeaderOrigin, "https://admin.example.com")

		CORS([]string{"https://admin.example.com/"})(okHandler(&called))(ctx)

		assert.True(t, called)
		assert.Equal(t, "https://admin.example.com", string(ctx.Response.Header.Peek(fasthttp.HeaderAccessControlAllowOrigin)))
	})

	t.Run("ignores unlisted origin", func(t *testing.T) {
		called := false
		ctx := newCtx(fasthttp.MethodGet, "")
		ctx.Request.Header.Set(fasthttp.HeaderOrigin, "https://evil.example.com")

		CORS([]string{"https://admin.example.com"})(okHandler(&called))(ctx)

		assert.True(t, called)
		assert.Empty(t, ctx.Response.Header.Peek(fasthttp.HeaderAccessControlAllowOrigin))
	})
}
