package handler

import (
	"net/http"

	"github.com/valyala/fasthttp"

	"github.com/fastygo/portfolio/api/transport"
	"github.com/fastygo/portfolio/domain"
	"github.com/fastygo/portfolio/repository"
	projectUC "github.com/fastygo/portfolio/usecase/project"
)

type ProjectHandler struct {
	baseHandler
	uc *projectUC.UseCase
}

func NewProjectHandler(uc *projectUC.UseCase, deps Deps) *ProjectHandler {
	return &ProjectHandler{
		baseHandler: newBaseHandler(deps),
		uc:          uc,
	}
}

// List answers published projects, filtered by category and featured.
func (h *ProjectHandler) List(ctx *fasthttp.RequestCtx) {
	filter := listFilter(ctx, projectUC.DefaultPageLimit)

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	projects, total, err := h.uc.List(stdCtx, filter)
	if err != nil {
		h.respondError(ctx, stdCtx, err)
		return
	}
	if projects == nil {
		projects = []domain.Project{}
	}
	h.respondSuccess(ctx, http.StatusOK, "", transport.ProjectPage{
		Projects:   projects,
		Pagination: transport.Pagination{Total: total, Limit: filter.Limit, Offset: filter.Offset},
	})
}

// Save serves both POST and PUT. Projects are published unless the body
// says otherwise.
func (h *ProjectHandler) Save(ctx *fasthttp.RequestCtx) {
	project := domain.Project{IsPublished: true}
	if !h.decode(ctx, &project) {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	result, err := h.uc.Save(stdCtx, &project)
	if err != nil {
		h.respondError(ctx, stdCtx, err)
		return
	}
	respondSaved(h.baseHandler, ctx, result, "Project created", "Project updated")
}

func (h *ProjectHandler) Delete(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	if err := h.uc.Delete(stdCtx, pathID(ctx)); err != nil {
		h.respondError(ctx, stdCtx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, "Project deleted", nil)
}

func listFilter(ctx *fasthttp.RequestCtx, defaultLimit int) repository.ListFilter {
	args := ctx.QueryArgs()
	filter := repository.ListFilter{
		Category:      string(args.Peek("category")),
		FeaturedOnly:  parseBool(args.Peek("featured")),
		PublishedOnly: true,
		Limit:         parseInt(args.Peek("limit"), defaultLimit),
		Offset:        parseInt(args.Peek("offset"), 0),
	}
	if filter.Limit <= 0 {
		filter.Limit = defaultLimit
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	return filter
}
