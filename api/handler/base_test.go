package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"

	"github.com/fastygo/portfolio/api/transport"
	"github.com/fastygo/portfolio/domain"
)

func TestMapError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   domain.ErrorCode
	}{
		{"invalid", domain.NewError(domain.ErrCodeInvalid, "bad"), http.StatusUnprocessableEntity, domain.ErrCodeInvalid},
		{"not found", domain.ErrBlogNotFound, http.StatusNotFound, domain.ErrCodeNotFound},
		{"unauthorized", domain.ErrUnauthorized, http.StatusUnauthorized, domain.ErrCodeUnauthorized},
		{"rate limited", domain.ErrRateLimited, http.StatusTooManyRequests, domain.ErrCodeRateLimited},
		{"conflict", domain.ErrSlugTaken, http.StatusConflict, domain.ErrCodeConflict},
		{"wrapped", errors.Wrap(domain.ErrInvalidPayload, "decode"), http.StatusUnprocessableEntity, domain.ErrCodeInvalid},
		{"plain", errors.New("boom"), http.StatusInternalServerError, domain.ErrCodeInternal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, code := mapError(tt.err)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.code, code)
		})
	}
}

func decodeEnvelope(t *testing.T, ctx *fasthttp.RequestCtx) transport.Envelope {
	t.Helper()
	var env transport.Envelope
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &env))
	return env
}

func TestRespondErrorHidesDetailsInProduction(t *testing.T) {
	h := newBaseHandler(Deps{Production: true})
	var ctx fasthttp.RequestCtx

	h.respondError(&ctx, context.Background(), errors.New("dial tcp 10.0.0.5:5432: connection refused"))

	assert.Equal(t, http.StatusInternalServerError, ctx.Response.StatusCode())
	env := decodeEnvelope(t, &ctx)
	assert.False(t, env.Success)
	assert.Equal(t, "Internal server error", env.Error)
	assert.Empty(t, env.Stack)
}

func TestRespondErrorIncludesStackOutsideProduction(t *testing.T) {
	h := newBaseHandler(Deps{})
	var ctx fasthttp.RequestCtx

	h.respondError(&ctx, context.Background(), errors.Wrap(errors.New("boom"), "load hero"))

	env := decodeEnvelope(t, &ctx)
	assert.Equal(t, "load hero: boom", env.Error)
	assert.Contains(t, env.Stack, "TestRespondErrorIncludesStackOutsideProduction")
}

func TestRespondErrorUsesDomainMessage(t *testing.T) {
	h := newBaseHandler(Deps{})
	var ctx fasthttp.RequestCtx

	h.respondError(&ctx, context.Background(), domain.WrapError(domain.ErrCodeInvalid, "Missing required fields: title", errors.New("detail")))

	assert.Equal(t, http.StatusUnprocessableEntity, ctx.Response.StatusCode())
	env := decodeEnvelope(t, &ctx)
	assert.Equal(t, "Missing required fields: title", env.Error)
	assert.Equal(t, "INVALID", env.Code)
}

func TestListFilterDefaults(t *testing.T) {
	var ctx fasthttp.RequestCtx
	ctx.Request.SetRequestURI("/api/blogs?limit=-3&offset=-1&featured=true&category=go")

	filter := listFilter(&ctx, 50)

	assert.Equal(t, 50, filter.Limit)
	assert.Equal(t, 0, filter.Offset)
	assert.True(t, filter.FeaturedOnly)
	assert.True(t, filter.PublishedOnly)
	assert.Equal(t, "go", filter.Category)
}
