package handler

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/valyala/fasthttp"

	"github.com/fastygo/portfolio/api/transport"
	"github.com/fastygo/portfolio/domain"
	statUC "github.com/fastygo/portfolio/usecase/stat"
)

type StatHandler struct {
	baseHandler
	uc *statUC.UseCase
}

func NewStatHandler(uc *statUC.UseCase, deps Deps) *StatHandler {
	return &StatHandler{
		baseHandler: newBaseHandler(deps),
		uc:          uc,
	}
}

func (h *StatHandler) List(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	stats, err := h.uc.List(stdCtx)
	if err != nil {
		h.respondError(ctx, stdCtx, err)
		return
	}
	if stats == nil {
		stats = []domain.Stat{}
	}
	h.respondSuccess(ctx, http.StatusOK, "", stats)
}

// Save stores every element of the posted array independently. A partial
// failure answers 207 with the stored stats and the failure in error.
func (h *StatHandler) Save(ctx *fasthttp.RequestCtx) {
	body := bytes.TrimSpace(ctx.PostBody())
	var stats []domain.Stat
	if len(body) == 0 || body[0] != '[' || json.Unmarshal(body, &stats) != nil {
		h.respondInvalid(ctx, "Input must be an array of stats")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	saved, err := h.uc.SaveAll(stdCtx, stats)
	if err != nil && len(saved) == 0 && len(stats) > 0 {
		h.respondError(ctx, stdCtx, err)
		return
	}
	if err != nil {
		env := transport.NewSuccess("Some stats were not saved", saved)
		env.Error = err.Error()
		h.respondJSON(ctx, http.StatusMultiStatus, env)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, "Stats saved", saved)
}

func (h *StatHandler) Delete(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	if err := h.uc.Delete(stdCtx, pathID(ctx)); err != nil {
		h.respondError(ctx, stdCtx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, "Stat deleted", nil)
}
