package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/fastygo/portfolio/api/transport"
	"github.com/fastygo/portfolio/domain"
	"github.com/fastygo/portfolio/pkg/httpcontext"
	appLogger "github.com/fastygo/portfolio/pkg/logger"
	"github.com/fastygo/portfolio/usecase"
)

// Deps is shared by every handler.
type Deps struct {
	Adapter *httpcontext.Adapter
	Logger  *zap.Logger
	// Production hides error stacks from response bodies.
	Production bool
}

type baseHandler struct {
	adapter    *httpcontext.Adapter
	logger     *zap.Logger
	production bool
}

func newBaseHandler(deps Deps) baseHandler {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return baseHandler{adapter: deps.Adapter, logger: logger, production: deps.Production}
}

func (h baseHandler) requestContext(ctx *fasthttp.RequestCtx) (context.Context, context.CancelFunc) {
	if h.adapter != nil {
		return h.adapter.Attach(ctx)
	}
	return context.WithCancel(context.Background())
}

func (h baseHandler) respondJSON(ctx *fasthttp.RequestCtx, status int, payload transport.Envelope) {
	transport.WriteJSON(ctx, status, payload)
}

func (h baseHandler) respondSuccess(ctx *fasthttp.RequestCtx, status int, message string, data interface{}) {
	h.respondJSON(ctx, status, transport.NewSuccess(message, data))
}

// respondSaved answers 201 for a new record and 200 for an updated one.
func respondSaved[T any](h baseHandler, ctx *fasthttp.RequestCtx, result usecase.UpsertResult[T], createdMsg, updatedMsg string) {
	if result.Created {
		h.respondSuccess(ctx, http.StatusCreated, createdMsg, result.Record)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, updatedMsg, result.Record)
}

func (h baseHandler) respondError(ctx *fasthttp.RequestCtx, stdCtx context.Context, err error) {
	status, code := mapError(err)
	message := err.Error()
	var dErr *domain.Error
	if status == http.StatusInternalServerError {
		appLogger.WithRequestID(stdCtx, h.logger).Error("request failed",
			zap.String("path", string(ctx.Path())),
			zap.Error(err),
		)
		if h.production {
			message = "Internal server error"
		}
	} else if errors.As(err, &dErr) {
		message = dErr.Message
	}

	env := transport.NewError(string(code), message)
	if !h.production {
		env.Stack = fmt.Sprintf("%+v", err)
	}
	h.respondJSON(ctx, status, env)
}

func (h baseHandler) respondInvalid(ctx *fasthttp.RequestCtx, message string) {
	h.respondJSON(ctx, http.StatusUnprocessableEntity, transport.NewError(string(domain.ErrCodeInvalid), message))
}

// decode unmarshals the request body into dst, answering 422 on failure.
func (h baseHandler) decode(ctx *fasthttp.RequestCtx, dst interface{}) bool {
	body := ctx.PostBody()
	if len(body) == 0 {
		h.respondInvalid(ctx, "Request body is required")
		return false
	}
	if err := json.Unmarshal(body, dst); err != nil {
		h.respondInvalid(ctx, "Invalid JSON payload")
		return false
	}
	return true
}

func mapError(err error) (int, domain.ErrorCode) {
	code := domain.CodeOf(err)
	switch code {
	case domain.ErrCodeInvalid:
		return http.StatusUnprocessableEntity, code
	case domain.ErrCodeNotFound:
		return http.StatusNotFound, code
	case domain.ErrCodeUnauthorized:
		return http.StatusUnauthorized, code
	case domain.ErrCodeRateLimited:
		return http.StatusTooManyRequests, code
	case domain.ErrCodeConflict:
		return http.StatusConflict, code
	default:
		return http.StatusInternalServerError, domain.ErrCodeInternal
	}
}

func pathID(ctx *fasthttp.RequestCtx) string {
	id, _ := ctx.UserValue("id").(string)
	return id
}

func parseInt(value []byte, fallback int) int {
	if v, err := strconv.Atoi(string(value)); err == nil {
		return v
	}
	return fallback
}

func parseBool(value []byte) bool {
	b, _ := strconv.ParseBool(string(value))
	return b
}
