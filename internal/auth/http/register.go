package http

import (
	"errors"
	"net/http"

	"github.com/scanpass/scanpass/internal/auth/service"
	"github.com/scanpass/scanpass/pkg/httpx"
)

type RegisterHandler struct {
	AuthService *service.AuthService
	Dev         bool
}

// ServeHTTP handles new account registration.
//
//	@Summary		Register a new account
//	@Description	Creates a user from email+password, issues a session token and the user's initial QR credential in one step.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		RegisterRequest	true	"Registration payload"
//	@Success		201		{object}	RegisterResponse
//	@Failure		400		{object}	ValidationResponse	"Validation failed"
//	@Failure		409		{object}	httpx.ErrorResponse	"Email already exists"
//	@Failure		500		{object}	httpx.ErrorResponse
//	@Router			/auth/register [post].
func (h *RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if errs := validateRegistration(req); len(errs) > 0 {
		writeValidationErrors(w, errs)
		return
	}

	res, err := h.AuthService.Register(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			httpx.WriteError(w, http.StatusConflict, "Email already exists")
			return
		}
		internalError(w, r, err, h.Dev)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, RegisterResponse{
		Token:  res.Token,
		QRCode: res.QRCode.Payload,
	})
}
