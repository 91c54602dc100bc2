package http

import (
	"errors"
	"net/http"

	"github.com/scanpass/scanpass/internal/auth/service"
	"github.com/scanpass/scanpass/internal/auth/store"
	"github.com/scanpass/scanpass/pkg/httpx"
)

type PasswordResetHandler struct {
	ResetService *service.PasswordResetService
	Dev          bool
}

// HandleForgot starts the reset flow by emailing a reset link.
//
//	@Summary		Request a password reset
//	@Description	Issues a 15-minute reset token, stores it against the account and emails a reset link. Unlike login, this endpoint does reveal whether the email is registered.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		ForgotPasswordRequest	true	"Account email"
//	@Success		200		{object}	MessageResponse
//	@Failure		400		{object}	httpx.ErrorResponse	"Missing email"
//	@Failure		404		{object}	httpx.ErrorResponse	"Email not found"
//	@Failure		500		{object}	httpx.ErrorResponse	"Mail dispatch failed"
//	@Router			/auth/forgot-password [post].
func (h *PasswordResetHandler) HandleForgot(w http.ResponseWriter, r *http.Request) {
	var req ForgotPasswordRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if req.Email == "" {
		httpx.WriteError(w, http.StatusBadRequest, "Email is required")
		return
	}

	if err := h.ResetService.Forgot(r.Context(), req.Email); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			httpx.WriteError(w, http.StatusNotFound, "Email not found")
			return
		}
		internalError(w, r, err, h.Dev)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, MessageResponse{Message: "Password reset email sent"})
}

// HandleReset completes the flow with the emailed token.
//
//	@Summary		Reset the password
//	@Description	Validates the reset token (signature, expiry and the stored server-side copy must all agree) and sets the new password. The token is single-use.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		ResetPasswordRequest	true	"Token and new password"
//	@Success		200		{object}	MessageResponse
//	@Failure		400		{object}	httpx.ErrorResponse	"Missing fields or invalid/expired token"
//	@Failure		500		{object}	httpx.ErrorResponse
//	@Router			/auth/reset-password [post].
func (h *PasswordResetHandler) HandleReset(w http.ResponseWriter, r *http.Request) {
	var req ResetPasswordRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if req.Token == "" || req.NewPassword == "" {
		httpx.WriteError(w, http.StatusBadRequest, "Token and new password are required")
		return
	}

	if err := h.ResetService.Reset(r.Context(), req.Token, req.NewPassword); err != nil {
		if errors.Is(err, service.ErrInvalidResetToken) {
			httpx.WriteError(w, http.StatusBadRequest, "Invalid or expired token")
			return
		}
		internalError(w, r, err, h.Dev)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, MessageResponse{Message: "Password reset successful"})
}
