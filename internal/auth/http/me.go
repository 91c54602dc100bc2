package http

import (
	"errors"
	"net/http"

	"github.com/scanpass/scanpass/internal/auth/service"
	"github.com/scanpass/scanpass/internal/auth/store"
	"github.com/scanpass/scanpass/pkg/httpx"
)

type MeHandler struct {
	AuthService *service.AuthService
	Dev         bool
}

// ServeHTTP returns the authenticated user's profile.
//
//	@Summary		Who am I
//	@Description	Returns id, email and creation time of the authenticated user. Reset fields and the password hash are never exposed.
//	@Tags			Auth
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	ProfileResponse
//	@Failure		401	{object}	httpx.ErrorResponse	"Missing or invalid token"
//	@Failure		404	{object}	httpx.ErrorResponse	"User no longer exists"
//	@Failure		500	{object}	httpx.ErrorResponse
//	@Router			/auth/me [get].
func (h *MeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	userID, ok := httpx.UserIDFromCtx(r.Context())
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	profile, err := h.AuthService.Profile(r.Context(), userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			httpx.WriteError(w, http.StatusNotFound, "User not found")
			return
		}
		internalError(w, r, err, h.Dev)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, ProfileResponse{User: profile})
}
