package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/scanpass/scanpass/internal/auth/mail"
	"github.com/scanpass/scanpass/internal/auth/store"
	"github.com/scanpass/scanpass/pkg/cryptox"
	"github.com/scanpass/scanpass/pkg/jwtx"
	"github.com/scanpass/scanpass/pkg/slogx"
)

// ErrInvalidResetToken is the single failure a reset attempt can surface;
// cryptographic failures and stored-token mismatches are indistinguishable.
var ErrInvalidResetToken = errors.New("invalid or expired token")

// PasswordResetService handles the forgot/reset password pair. A reset token
// must both verify cryptographically and equal the token currently stored on
// the user row, so issuing a second token invalidates the first.
type PasswordResetService struct {
	Store       store.Store
	Signer      jwtx.Signer
	Verifier    jwtx.Verifier
	Mailer      mail.Mailer
	Issuer      string
	FrontendURL string
	HashCost    int
}

// Forgot issues a 15-minute reset token, persists it alongside its expiry
// and emails the reset link. An unknown email surfaces store.ErrNotFound;
// unlike login, this endpoint does reveal account existence.
func (s *PasswordResetService) Forgot(ctx context.Context, email string) error {
	email = NormalizeEmail(email)
	log := slogx.FromContext(ctx)

	user, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	token, err := s.Signer.Sign(jwtx.NewClaims(user.ID, user.Email, jwtx.ResetTokenTTL, s.Issuer, now))
	if err != nil {
		return fmt.Errorf("forgot password: sign reset token: %w", err)
	}

	if err := s.Store.Users().SetResetToken(ctx, user.ID, token, now.Add(jwtx.ResetTokenTTL)); err != nil {
		return fmt.Errorf("forgot password: persist reset token: %w", err)
	}

	link := s.resetLink(token)
	if err := s.Mailer.SendPasswordReset(ctx, user.Email, link); err != nil {
		log.Error("reset email dispatch failed", "user_id", user.ID, "err", err)
		return fmt.Errorf("forgot password: %w", err)
	}

	log.Info("reset email sent", "user_id", user.ID)
	return nil
}

// Reset validates the presented token and sets the new password. The token
// must verify under the signer's secret AND match the stored reset_token for
// the decoded user AND the stored expiry must be in the future.
func (s *PasswordResetService) Reset(ctx context.Context, token, newPassword string) error {
	claims, err := s.Verifier.Verify(token)
	if err != nil {
		return ErrInvalidResetToken
	}

	userID, err := claims.UserID()
	if err != nil {
		return ErrInvalidResetToken
	}

	user, err := s.Store.Users().GetUserForReset(ctx, userID, token)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrInvalidResetToken
		}
		return fmt.Errorf("reset password: %w", err)
	}

	if !strings.EqualFold(claims.Email, user.Email) {
		return ErrInvalidResetToken
	}

	hash, err := cryptox.HashPassword(newPassword, s.HashCost)
	if err != nil {
		return fmt.Errorf("reset password: %w", err)
	}

	if err := s.Store.Users().UpdatePasswordAndClearReset(ctx, user.ID, hash); err != nil {
		return fmt.Errorf("reset password: %w", err)
	}

	slogx.FromContext(ctx).Info("password reset completed", "user_id", user.ID)
	return nil
}

func (s *PasswordResetService) resetLink(token string) string {
	base := strings.TrimSuffix(s.FrontendURL, "/")
	return base + "/reset-password?token=" + url.QueryEscape(token)
}
