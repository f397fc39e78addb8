package handler

import (
	"net/http"

	"github.com/valyala/fasthttp"

	"github.com/fastygo/portfolio/api/transport"
	"github.com/fastygo/portfolio/pkg/httpcontext"
	authUC "github.com/fastygo/portfolio/usecase/auth"
)

type AuthHandler struct {
	baseHandler
	uc *authUC.UseCase
}

func NewAuthHandler(uc *authUC.UseCase, deps Deps) *AuthHandler {
	return &AuthHandler{
		baseHandler: newBaseHandler(deps),
		uc:          uc,
	}
}

// Login exchanges the admin credentials for a bearer token.
func (h *AuthHandler) Login(ctx *fasthttp.RequestCtx) {
	var req transport.LoginRequest
	if !h.decode(ctx, &req) {
		return
	}
	if req.Email == "" || req.Password == "" {
		h.respondInvalid(ctx, "Email and password are required")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	token, err := h.uc.Login(stdCtx, req.Email, req.Password)
	if err != nil {
		h.respondError(ctx, stdCtx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, "Login successful", token)
}

// Logout revokes the session behind the presented token.
func (h *AuthHandler) Logout(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	if err := h.uc.Logout(stdCtx, httpcontext.SessionID(stdCtx)); err != nil {
		h.respondError(ctx, stdCtx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, "Logged out", nil)
}
