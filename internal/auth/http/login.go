package http

import (
	"errors"
	"net/http"

	"github.com/scanpass/scanpass/internal/auth/service"
	"github.com/scanpass/scanpass/pkg/httpx"
)

type LoginHandler struct {
	AuthService *service.AuthService
	Dev         bool
}

// ServeHTTP handles credential login.
//
//	@Summary		Log in
//	@Description	Exchanges email+password for a one-hour bearer session token. The failure response never reveals whether the email exists.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		LoginRequest	true	"Credentials"
//	@Success		200		{object}	LoginResponse
//	@Failure		400		{object}	httpx.ErrorResponse	"Missing fields"
//	@Failure		401		{object}	httpx.ErrorResponse	"Invalid email or password"
//	@Failure		500		{object}	httpx.ErrorResponse
//	@Router			/auth/login [post].
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if req.Email == "" || req.Password == "" {
		httpx.WriteError(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	token, err := h.AuthService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			httpx.WriteError(w, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		internalError(w, r, err, h.Dev)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, LoginResponse{Token: token})
}
