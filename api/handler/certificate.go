package handler

import (
	"net/http"

	"github.com/valyala/fasthttp"

	"github.com/fastygo/portfolio/domain"
	certificateUC "github.com/fastygo/portfolio/usecase/certificate"
)

type CertificateHandler struct {
	baseHandler
	uc *certificateUC.UseCase
}

func NewCertificateHandler(uc *certificateUC.UseCase, deps Deps) *CertificateHandler {
	return &CertificateHandler{
		baseHandler: newBaseHandler(deps),
		uc:          uc,
	}
}

func (h *CertificateHandler) List(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	certs, err := h.uc.List(stdCtx)
	if err != nil {
		h.respondError(ctx, stdCtx, err)
		return
	}
	if certs == nil {
		certs = []domain.Certificate{}
	}
	h.respondSuccess(ctx, http.StatusOK, "", certs)
}

func (h *CertificateHandler) Save(ctx *fasthttp.RequestCtx) {
	cert := domain.Certificate{IsPublished: true}
	if !h.decode(ctx, &cert) {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	result, err := h.uc.Save(stdCtx, &cert)
	if err != nil {
		h.respondError(ctx, stdCtx, err)
		return
	}
	respondSaved(h.baseHandler, ctx, result, "Certificate created", "Certificate updated")
}

func (h *CertificateHandler) Delete(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	if err := h.uc.Delete(stdCtx, pathID(ctx)); err != nil {
		h.respondError(ctx, stdCtx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, "Certificate deleted", nil)
}
