package router

import (
	"net/http"

	"github.com/fasthttp/router"
	"github.com/valyala/fasthttp"

	apiHandler "github.com/fastygo/portfolio/api/handler"
	"github.com/fastygo/portfolio/api/transport"
)

// Middleware wraps a handler.
type Middleware func(fasthttp.RequestHandler) fasthttp.RequestHandler

type Handlers struct {
	Hero         *apiHandler.HeroHandler
	About        *apiHandler.AboutHandler
	Projects     *apiHandler.ProjectHandler
	Certificates *apiHandler.CertificateHandler
	Blogs        *apiHandler.BlogHandler
	Stats        *apiHandler.StatHandler
	Contact      *apiHandler.ContactHandler
	Auth         *apiHandler.AuthHandler
	Portfolio    *apiHandler.PortfolioHandler
	Health       *apiHandler.HealthHandler
}

// Guards are applied per route: Auth to every write, ContactLimit to the
// public contact form.
type Guards struct {
	Auth         Middleware
	ContactLimit Middleware
}

func New(handlers Handlers, guards Guards) *router.Router {
	auth := orPassthrough(guards.Auth)
	limit := orPassthrough(guards.ContactLimit)

	r := router.New()
	r.RedirectTrailingSlash = false
	r.NotFound = notFound
	r.MethodNotAllowed = methodNotAllowed

	r.GET("/health", handlers.Health.Check)

	r.GET("/api/hero", handlers.Hero.Get)
	r.POST("/api/hero", auth(handlers.Hero.Save))
	r.PUT("/api/hero", auth(handlers.Hero.Save))

	r.GET("/api/about", handlers.About.Get)
	r.POST("/api/about", auth(handlers.About.Save))
	r.PUT("/api/about", auth(handlers.About.Save))

	r.GET("/api/projects", handlers.Projects.List)
	r.POST("/api/projects", auth(handlers.Projects.Save))
	r.PUT("/api/projects", auth(handlers.Projects.Save))
	r.DELETE("/api/projects/{id}", auth(handlers.Projects.Delete))

	r.GET("/api/certificates", handlers.Certificates.List)
	r.POST("/api/certificates", auth(handlers.Certificates.Save))
	r.PUT("/api/certificates", auth(handlers.Certificates.Save))
	r.DELETE("/api/certificates/{id}", auth(handlers.Certificates.Delete))

	r.GET("/api/blogs", handlers.Blogs.List)
	r.POST("/api/blogs", auth(handlers.Blogs.Save))
	r.PUT("/api/blogs", auth(handlers.Blogs.Save))
	r.DELETE("/api/blogs/{id}", auth(handlers.Blogs.Delete))

	r.GET("/api/stats", handlers.Stats.List)
	r.POST("/api/stats", auth(handlers.Stats.Save))
	r.DELETE("/api/stats/{id}", auth(handlers.Stats.Delete))

	r.POST("/api/contact", limit(handlers.Contact.Submit))

	r.POST("/api/auth/login", handlers.Auth.Login)
	r.POST("/api/auth/logout", auth(handlers.Auth.Logout))

	r.GET("/api/portfolio", handlers.Portfolio.Get)
	r.PUT("/api/portfolio", auth(handlers.Portfolio.Put))

	return r
}

// Wrap applies mws around h; the first middleware is outermost.
func Wrap(h fasthttp.RequestHandler, mws ...Middleware) fasthttp.RequestHandler {
	for i := len(mws) - 1; i >= 0; i-- {
		if mws[i] != nil {
			h = mws[i](h)
		}
	}
	return h
}

func orPassthrough(mw Middleware) Middleware {
	if mw != nil {
		return mw
	}
	return func(next fasthttp.RequestHandler) fasthttp.RequestHandler { return next }
}

func notFound(ctx *fasthttp.RequestCtx) {
	transport.WriteJSON(ctx, http.StatusNotFound, transport.NewError("NOT_FOUND", "Route not found"))
}

func methodNotAllowed(ctx *fasthttp.RequestCtx) {
	transport.WriteJSON(ctx, http.StatusMethodNotAllowed, transport.NewError("METHOD_NOT_ALLOWED", "Method not allowed"))
}
