package handler

import (
	"net/http"
	"time"

	"github.com/valyala/fasthttp"

	"github.com/fastygo/portfolio/api/transport"
	"github.com/fastygo/portfolio/internal/infrastructure/monitor"
)

type HealthHandler struct {
	baseHandler
	monitor *monitor.Monitor
}

func NewHealthHandler(mon *monitor.Monitor, deps Deps) *HealthHandler {
	return &HealthHandler{
		baseHandler: newBaseHandler(deps),
		monitor:     mon,
	}
}

// Check reports the cached dependency status; 503 when any dependency is down.
func (h *HealthHandler) Check(ctx *fasthttp.RequestCtx) {
	status := h.monitor.GetStatus()
	payload := map[string]interface{}{
		"timestamp": time.Now().UTC(),
		"services":  status.Services,
		"buffer": map[string]interface{}{
			"online": status.Buffer,
			"size":   status.BufferSize,
		},
		"last_check": status.LastCheck,
	}

	if status.Healthy() {
		h.respondSuccess(ctx, http.StatusOK, "ok", payload)
		return
	}
	env := transport.NewError("DEGRADED", "dependencies unhealthy")
	env.Data = payload
	h.respondJSON(ctx, http.StatusServiceUnavailable, env)
}
