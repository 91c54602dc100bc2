package http

import (
	"errors"
	"net/http"

	"github.com/scanpass/scanpass/internal/auth/service"
	"github.com/scanpass/scanpass/internal/auth/store"
	"github.com/scanpass/scanpass/pkg/httpx"
)

type QRHandler struct {
	QRService *service.QRService
	Dev       bool
}

// HandleCurrent returns the caller's stored QR record.
//
//	@Summary		Fetch the current QR code
//	@Description	Returns the authenticated user's QR code record, including the PNG data URL and last update time.
//	@Tags			QR
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	QRCurrentResponse
//	@Failure		401	{object}	httpx.ErrorResponse
//	@Failure		404	{object}	httpx.ErrorResponse	"No QR code on record"
//	@Router			/qr/current [get].
func (h *QRHandler) HandleCurrent(w http.ResponseWriter, r *http.Request) {
	userID, ok := httpx.UserIDFromCtx(r.Context())
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	code, err := h.QRService.Current(r.Context(), userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			httpx.WriteError(w, http.StatusNotFound, "No QR code found for this user")
			return
		}
		internalError(w, r, err, h.Dev)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, QRCurrentResponse{QRCode: code})
}

// HandleRefresh replaces the caller's QR payload in place.
//
//	@Summary		Refresh the QR code
//	@Description	Generates a fresh payload for the existing record. The record keeps its identity, only the artifact and timestamp change.
//	@Tags			QR
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	QRRefreshResponse
//	@Failure		401	{object}	httpx.ErrorResponse
//	@Failure		404	{object}	httpx.ErrorResponse	"No QR code on record"
//	@Router			/qr/refresh [put].
func (h *QRHandler) HandleRefresh(w http.ResponseWriter, r *http.Request) {
	userID, ok := httpx.UserIDFromCtx(r.Context())
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	code, err := h.QRService.Refresh(r.Context(), userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			httpx.WriteError(w, http.StatusNotFound, "No QR code found to refresh for this user")
			return
		}
		internalError(w, r, err, h.Dev)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, QRRefreshResponse{QRCode: code.Payload})
}
