package middleware

import (
	"math"
	"net/http"
	"strconv"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/fastygo/portfolio/api/transport"
	"github.com/fastygo/portfolio/domain"
	"github.com/fastygo/portfolio/internal/ratelimit"
	"github.com/fastygo/portfolio/pkg/httpcontext"
)

// RateLimit admits requests while the limiter allows the caller's client
// ip. A failing limiter lets the request through.
func RateLimit(limiter ratelimit.Limiter, logger *zap.Logger) func(fasthttp.RequestHandler) fasthttp.RequestHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(next fasthttp.RequestHandler) fasthttp.RequestHandler {
		return func(ctx *fasthttp.RequestCtx) {
			key := httpcontext.ClientIP(ctx)
			decision, err := limiter.Allow(ctx, key)
			if err != nil {
				logger.Error("rate limiter unavailable", zap.String("client_ip", key), zap.Error(err))
				next(ctx)
				return
			}

			ctx.Response.Header.Set("X-RateLimit-Remaining", strconv.Itoa(decision.Remaining))
			if !decision.Allowed {
				if decision.RetryAfter > 0 {
					seconds := int(math.Ceil(decision.RetryAfter.Seconds()))
					ctx.Response.Header.Set(fasthttp.HeaderRetryAfter, strconv.Itoa(seconds))
				}
				logger.Info("rate limit exceeded", zap.String("client_ip", key), zap.ByteString("path", ctx.Path()))
				transport.WriteJSON(ctx, http.StatusTooManyRequests,
					transport.NewError(string(domain.ErrCodeRateLimited), domain.ErrRateLimited.Message))
				return
			}
			next(ctx)
		}
	}
}
