package handler

import (
	"net/http"

	"github.com/valyala/fasthttp"

	"github.com/fastygo/portfolio/api/transport"
	"github.com/fastygo/portfolio/domain"
	blogUC "github.com/fastygo/portfolio/usecase/blog"
)

type BlogHandler struct {
	baseHandler
	uc *blogUC.UseCase
}

func NewBlogHandler(uc *blogUC.UseCase, deps Deps) *BlogHandler {
	return &BlogHandler{
		baseHandler: newBaseHandler(deps),
		uc:          uc,
	}
}

func (h *BlogHandler) List(ctx *fasthttp.RequestCtx) {
	filter := listFilter(ctx, blogUC.DefaultPageLimit)

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	blogs, total, err := h.uc.List(stdCtx, filter)
	if err != nil {
		h.respondError(ctx, stdCtx, err)
		return
	}
	if blogs == nil {
		blogs = []domain.Blog{}
	}
	h.respondSuccess(ctx, http.StatusOK, "", transport.BlogPage{
		Blogs:      blogs,
		Pagination: transport.Pagination{Total: total, Limit: filter.Limit, Offset: filter.Offset},
	})
}

func (h *BlogHandler) Save(ctx *fasthttp.RequestCtx) {
	var blog domain.Blog
	if !h.decode(ctx, &blog) {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	result, err := h.uc.Save(stdCtx, &blog)
	if err != nil {
		h.respondError(ctx, stdCtx, err)
		return
	}
	respondSaved(h.baseHandler, ctx, result, "Blog post created", "Blog post updated")
}

func (h *BlogHandler) Delete(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	if err := h.uc.Delete(stdCtx, pathID(ctx)); err != nil {
		h.respondError(ctx, stdCtx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, "Blog post deleted", nil)
}
