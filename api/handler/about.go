package handler

import (
	"net/http"

	"github.com/valyala/fasthttp"

	"github.com/fastygo/portfolio/domain"
	aboutUC "github.com/fastygo/portfolio/usecase/about"
)

type AboutHandler struct {
	baseHandler
	uc *aboutUC.UseCase
}

func NewAboutHandler(uc *aboutUC.UseCase, deps Deps) *AboutHandler {
	return &AboutHandler{
		baseHandler: newBaseHandler(deps),
		uc:          uc,
	}
}

func (h *AboutHandler) Get(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	about, err := h.uc.GetActive(stdCtx)
	if domain.IsDomainError(err, domain.ErrCodeNotFound) {
		h.respondSuccess(ctx, http.StatusOK, "", struct{}{})
		return
	}
	if err != nil {
		h.respondError(ctx, stdCtx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, "", about)
}

func (h *AboutHandler) Save(ctx *fasthttp.RequestCtx) {
	var about domain.About
	if !h.decode(ctx, &about) {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	result, err := h.uc.Save(stdCtx, &about)
	if err != nil {
		h.respondError(ctx, stdCtx, err)
		return
	}
	respondSaved(h.baseHandler, ctx, result, "About section created successfully", "About section updated successfully")
}
