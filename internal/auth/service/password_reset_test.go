package service

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"testing"

	"github.com/scanpass/scanpass/internal/auth/store"
	"github.com/stretchr/testify/require"
)

func newResetService(t *testing.T, st store.Store, mailer *fakeMailer) *PasswordResetService {
	t.Helper()

	signer := newTestSigner(t)
	return &PasswordResetService{
		Store:       st,
		Signer:      signer,
		Verifier:    signer,
		Mailer:      mailer,
		Issuer:      testIssuer,
		FrontendURL: "https://app.example.com",
		HashCost:    4, // min bcrypt cost keeps the test fast
	}
}

// tokenFromLink extracts the reset token embedded in the emailed link.
func tokenFromLink(t *testing.T, link string) string {
	t.Helper()

	u, err := url.Parse(link)
	require.NoError(t, err)
	token := u.Query().Get("token")
	require.NotEmpty(t, token)
	return token
}

func TestForgotPassword(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	st := newTestStore(t)
	mailer := &fakeMailer{}
	svc := newResetService(t, st, mailer)

	_, err := newAuthService(t, st).Register(ctx, "a@x.com", "Aa1!aaaa")
	require.NoError(t, err)

	t.Run("unknown email is NotFound and sends nothing", func(t *testing.T) {
		err := svc.Forgot(ctx, "unknown@x.com")
		require.ErrorIs(t, err, store.ErrNotFound)
		require.Zero(t, mailer.calls)
	})

	t.Run("known email persists token and mails the link", func(t *testing.T) {
		require.NoError(t, svc.Forgot(ctx, "a@x.com"))

		link := mailer.lastLink(t)
		require.True(t, strings.HasPrefix(link, "https://app.example.com/reset-password?token="))
		require.Equal(t, []string{"a@x.com"}, mailer.to)

		// The stored copy matches the mailed token and is still active.
		user, err := st.Users().GetUserByEmail(ctx, "a@x.com")
		require.NoError(t, err)
		require.NotNil(t, user.ResetToken)
		require.Equal(t, tokenFromLink(t, link), *user.ResetToken)
		require.NotNil(t, user.ResetTokenExpiry)
	})

	t.Run("mail failure propagates", func(t *testing.T) {
		mailer.fail = errors.New("smtp: connection refused")
		err := svc.Forgot(ctx, "a@x.com")
		require.Error(t, err)
		require.NotErrorIs(t, err, store.ErrNotFound)
		mailer.fail = nil
	})
}

func TestResetPassword(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	st := newTestStore(t)
	mailer := &fakeMailer{}
	svc := newResetService(t, st, mailer)
	auth := newAuthService(t, st)

	_, err := auth.Register(ctx, "a@x.com", "Aa1!aaaa")
	require.NoError(t, err)

	require.NoError(t, svc.Forgot(ctx, "a@x.com"))
	token := tokenFromLink(t, mailer.lastLink(t))

	t.Run("happy path changes the password", func(t *testing.T) {
		require.NoError(t, svc.Reset(ctx, token, "N3w!passw0rd"))

		_, err := auth.Login(ctx, "a@x.com", "Aa1!aaaa")
		require.ErrorIs(t, err, ErrInvalidCredentials)

		_, err = auth.Login(ctx, "a@x.com", "N3w!passw0rd")
		require.NoError(t, err)
	})

	t.Run("token cannot be reused", func(t *testing.T) {
		err := svc.Reset(ctx, token, "An0ther!pass")
		require.ErrorIs(t, err, ErrInvalidResetToken)
	})

	t.Run("garbage token rejected", func(t *testing.T) {
		err := svc.Reset(ctx, "not-a-jwt", "An0ther!pass")
		require.ErrorIs(t, err, ErrInvalidResetToken)
	})
}

func TestSecondForgotInvalidatesFirstToken(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	st := newTestStore(t)
	mailer := &fakeMailer{}
	svc := newResetService(t, st, mailer)

	_, err := newAuthService(t, st).Register(ctx, "a@x.com", "Aa1!aaaa")
	require.NoError(t, err)

	require.NoError(t, svc.Forgot(ctx, "a@x.com"))
	first := tokenFromLink(t, mailer.lastLink(t))

	require.NoError(t, svc.Forgot(ctx, "a@x.com"))
	second := tokenFromLink(t, mailer.lastLink(t))

	// The first token still verifies cryptographically but no longer matches
	// the stored copy, so it must be refused.
	err = svc.Reset(ctx, first, "N3w!passw0rd")
	require.ErrorIs(t, err, ErrInvalidResetToken)

	require.NoError(t, svc.Reset(ctx, second, "N3w!passw0rd"))
}
