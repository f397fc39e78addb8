package transport

import (
	"encoding/json"

	"github.com/valyala/fasthttp"
)

// Envelope is the standard API response wrapper used for both success and error payloads.
type Envelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	Code    string      `json:"code,omitempty"`
	Stack   string      `json:"stack,omitempty"`
}

// NewSuccess returns a success envelope.
func NewSuccess(message string, data interface{}) Envelope {
	return Envelope{
		Success: true,
		Message: message,
		Data:    data,
	}
}

// NewError returns an error envelope. Stack is filled in by the caller when
// the environment allows it.
func NewError(code, message string) Envelope {
	return Envelope{
		Success: false,
		Code:    code,
		Error:   message,
	}
}

// Pagination describes one page of a list endpoint.
type Pagination struct {
	Total  int `json:"total"`
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

// String returns the JSON representation (best-effort) for logging purposes.
func (e Envelope) String() string {
	out, err := json.Marshal(e)
	if err != nil {
		return "{}"
	}
	return string(out)
}

// WriteJSON writes payload as the response body. Middleware and the router
// use it for answers produced outside a handler.
func WriteJSON(ctx *fasthttp.RequestCtx, status int, payload Envelope) {
	ctx.Response.Header.SetContentType("application/json")
	ctx.SetStatusCode(status)
	body, _ := json.Marshal(payload)
	ctx.SetBody(body)
}
