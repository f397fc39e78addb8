package middleware

import (
	"strings"

	"github.com/valyala/fasthttp"
)

const (
	corsMethods = "GET, POST, PUT, DELETE, OPTIONS"
	corsHeaders = "Content-Type, Authorization, X-Request-ID"
)

// CORS adds cross-origin headers to every response and answers preflight
// requests with an empty 200 before they reach the router. A "*" entry in
// allowedOrigins admits any origin.
func CORS(allowedOrigins []string) func(fasthttp.RequestHandler) fasthttp.RequestHandler {
	allowAll := len(allowedOrigins) == 0
	allowed := make(map[string]struct{}, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		if origin == "*" {
			allowAll = true
		}
		allowed[strings.TrimRight(origin, "/")] = struct{}{}
	}

	return func(next fasthttp.RequestHandler) fasthttp.RequestHandler {
		return func(ctx *fasthttp.RequestCtx) {
			header := &ctx.Response.Header
			origin := string(ctx.Request.Header.Peek(fasthttp.HeaderOrigin))
			switch {
			case allowAll:
				header.Set(fasthttp.HeaderAccessControlAllowOrigin, "*")
			case origin != "":
				if _, ok := allowed[origin]; ok {
					header.Set(fasthttp.HeaderAccessControlAllowOrigin, origin)
					header.Set(fasthttp.HeaderAccessControlAllowCredentials, "true")
					header.Add(fasthttp.HeaderVary, fasthttp.HeaderOrigin)
				}
			}
			header.Set(fasthttp.HeaderAccessControlAllowMethods, corsMethods)
			header.Set(fasthttp.HeaderAccessControlAllowHeaders, corsHeaders)

			if ctx.IsOptions() {
				ctx.SetStatusCode(fasthttp.StatusOK)
				ctx.ResetBody()
				return
			}
			next(ctx)
		}
	}
}
