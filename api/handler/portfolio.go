package handler

import (
	"net/http"
	"strconv"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/fastygo/portfolio/api/transport"
	"github.com/fastygo/portfolio/internal/portfolio"
	appLogger "github.com/fastygo/portfolio/pkg/logger"
)

// PortfolioHandler serves the whole-site document.
type PortfolioHandler struct {
	baseHandler
	fetcher *portfolio.Fetcher
	writer  *portfolio.Writer
}

func NewPortfolioHandler(fetcher *portfolio.Fetcher, writer *portfolio.Writer, deps Deps) *PortfolioHandler {
	return &PortfolioHandler{
		baseHandler: newBaseHandler(deps),
		fetcher:     fetcher,
		writer:      writer,
	}
}

// Get always answers a complete document; unavailable resources fall back
// to the built-in content.
func (h *PortfolioHandler) Get(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	h.respondSuccess(ctx, http.StatusOK, "", h.fetcher.Fetch(stdCtx))
}

// Put validates the document and saves every resource in it. Answers 207
// with the per-element report when any sub-write was not stored.
func (h *PortfolioHandler) Put(ctx *fasthttp.RequestCtx) {
	doc, err := portfolio.DecodeDocument(ctx.PostBody())
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()
	if err != nil {
		h.respondError(ctx, stdCtx, err)
		return
	}

	report := h.writer.Save(stdCtx, doc)
	if report.OK() {
		h.respondSuccess(ctx, http.StatusOK, "Saved successfully", report)
		return
	}

	failed := report.Failed()
	appLogger.WithRequestID(stdCtx, h.logger).Warn("portfolio saved partially",
		zap.Int("failed", len(failed)),
		zap.Int("succeeded", len(report.Succeeded())),
	)
	env := transport.NewSuccess("Saved with errors", report)
	env.Error = strconv.Itoa(len(failed)) + " of " + strconv.Itoa(len(report.Outcomes)) + " items were not saved"
	h.respondJSON(ctx, http.StatusMultiStatus, env)
}
