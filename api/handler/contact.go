package handler

import (
	"net/http"

	"github.com/valyala/fasthttp"

	"github.com/fastygo/portfolio/domain"
	contactUC "github.com/fastygo/portfolio/usecase/contact"
)

type ContactHandler struct {
	baseHandler
	uc *contactUC.UseCase
}

func NewContactHandler(uc *contactUC.UseCase, deps Deps) *ContactHandler {
	return &ContactHandler{
		baseHandler: newBaseHandler(deps),
		uc:          uc,
	}
}

// Submit stores a visitor message. Rate limiting is applied by middleware.
func (h *ContactHandler) Submit(ctx *fasthttp.RequestCtx) {
	var msg domain.ContactMessage
	if !h.decode(ctx, &msg) {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	stored, err := h.uc.Submit(stdCtx, &msg)
	if err != nil {
		h.respondError(ctx, stdCtx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusCreated, "Message sent successfully", stored)
}
