package httpcontext

import (
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/valyala/fasthttp"

	appLogger "github.com/fastygo/portfolio/pkg/logger"
)

func newCtx(remote string) *fasthttp.RequestCtx {
	var req fasthttp.Request
	ctx := &fasthttp.RequestCtx{}
	addr, _ := net.ResolveTCPAddr("tcp", remote)
	ctx.Init(&req, addr, nil)
	return ctx
}

func TestClientIP(t *testing.T) {
	ctx := newCtx("10.0.0.7:5555")
	assert.Equal(t, "10.0.0.7", ClientIP(ctx))

	ctx.Request.Header.Set("X-Forwarded-For", " 203.0.113.9 , 10.0.0.1")
	assert.Equal(t, "203.0.113.9", ClientIP(ctx))
}

func TestAttachPropagatesRequestID(t *testing.T) {
	ctx := newCtx("127.0.0.1:1234")
	ctx.Request.Header.Set("X-Request-ID", "req-42")
	ctx.SetUserValue(string(KeySessionID), "sess-1")

	stdCtx, cancel := NewAdapter(time.Second).Attach(ctx)
	defer cancel()

	assert.Equal(t, "req-42", appLogger.RequestID(stdCtx))
	assert.Equal(t, "req-42", string(ctx.Response.Header.Peek("X-Request-ID")))
	assert.Equal(t, "sess-1", SessionID(stdCtx))
	assert.Equal(t, "127.0.0.1", stdCtx.Value(KeyClientIP))

	_, hasDeadline := stdCtx.Deadline()
	assert.True(t, hasDeadline)
}

func TestRequestIDIsStablePerRequest(t *testing.T) {
	ctx := newCtx("127.0.0.1:1234")
	first := RequestID(ctx)
	assert.NotEmpty(t, first)
	assert.Equal(t, first, RequestID(ctx))
}
