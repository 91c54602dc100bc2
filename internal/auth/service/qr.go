package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/scanpass/scanpass/internal/auth/domain"
	"github.com/scanpass/scanpass/internal/auth/store"
	"github.com/scanpass/scanpass/pkg/qrx"
)

// QRService issues and refreshes the per-user scannable credential.
type QRService struct {
	Store store.Store
}

// Generate creates a fresh QR record for the user. The UNIQUE constraint on
// qrcodes.user_id means a second call surfaces store.ErrAlreadyExists.
func (s *QRService) Generate(ctx context.Context, userID int64) (domain.QRCode, error) {
	return issueQRCode(ctx, s.Store, userID)
}

// Current returns the user's QR record, store.ErrNotFound if none exists.
func (s *QRService) Current(ctx context.Context, userID int64) (domain.QRCode, error) {
	return s.Store.QRCodes().GetQRCodeByUserID(ctx, userID)
}

// Refresh renders a new random payload into the existing record in place.
// With no record to update it surfaces store.ErrNotFound and mutates nothing.
func (s *QRService) Refresh(ctx context.Context, userID int64) (domain.QRCode, error) {
	artifact, err := renderArtifact()
	if err != nil {
		return domain.QRCode{}, err
	}
	return s.Store.QRCodes().UpdateQRCode(ctx, userID, artifact)
}

// issueQRCode renders a fresh artifact and inserts the record through st,
// which may be a transaction (the register flow) or the root store.
func issueQRCode(ctx context.Context, st store.Store, userID int64) (domain.QRCode, error) {
	artifact, err := renderArtifact()
	if err != nil {
		return domain.QRCode{}, err
	}
	return st.QRCodes().CreateQRCode(ctx, userID, artifact)
}

// renderArtifact encodes a random opaque payload as a QR image data URL.
func renderArtifact() (string, error) {
	payload := uuid.NewString()
	artifact, err := qrx.EncodeDataURL(payload)
	if err != nil {
		return "", fmt.Errorf("render qr artifact: %w", err)
	}
	return artifact, nil
}
