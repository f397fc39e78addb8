package handler

import (
	"net/http"

	"github.com/valyala/fasthttp"

	"github.com/fastygo/portfolio/domain"
	heroUC "github.com/fastygo/portfolio/usecase/hero"
)

type HeroHandler struct {
	baseHandler
	uc *heroUC.UseCase
}

func NewHeroHandler(uc *heroUC.UseCase, deps Deps) *HeroHandler {
	return &HeroHandler{
		baseHandler: newBaseHandler(deps),
		uc:          uc,
	}
}

// Get answers the active hero, or an empty object when none is active.
func (h *HeroHandler) Get(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	hero, err := h.uc.GetActive(stdCtx)
	if domain.IsDomainError(err, domain.ErrCodeNotFound) {
		h.respondSuccess(ctx, http.StatusOK, "", struct{}{})
		return
	}
	if err != nil {
		h.respondError(ctx, stdCtx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, "", hero)
}

// Save serves both POST and PUT.
func (h *HeroHandler) Save(ctx *fasthttp.RequestCtx) {
	var hero domain.Hero
	if !h.decode(ctx, &hero) {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	result, err := h.uc.Save(stdCtx, &hero)
	if err != nil {
		h.respondError(ctx, stdCtx, err)
		return
	}
	respondSaved(h.baseHandler, ctx, result, "Hero section created successfully", "Hero section updated successfully")
}
