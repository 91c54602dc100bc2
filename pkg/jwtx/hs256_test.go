package jwtx

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestHS256RoundTrip(t *testing.T) {
	t.Parallel()

	h, err := NewHS256("test-secret", "scanpass")
	require.NoError(t, err)

	now := time.Now().UTC()
	claims := NewClaims(42, "a@x.com", SessionTokenTTL, "scanpass", now)

	token, err := h.Sign(claims)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	got, err := h.Verify(token)
	require.NoError(t, err)

	id, err := got.UserID()
	require.NoError(t, err)
	require.Equal(t, int64(42), id)
	require.Equal(t, "a@x.com", got.Email)
	require.WithinDuration(t, now.Add(SessionTokenTTL), got.ExpiresAt.Time, time.Second)
}

func TestHS256RejectsExpired(t *testing.T) {
	t.Parallel()

	h, err := NewHS256("test-secret", "scanpass")
	require.NoError(t, err)

	past := time.Now().UTC().Add(-2 * time.Hour)
	token, err := h.Sign(NewClaims(1, "a@x.com", time.Hour, "scanpass", past))
	require.NoError(t, err)

	_, err = h.Verify(token)
	require.ErrorIs(t, err, ErrInvalid)
}

func TestHS256RejectsTampering(t *testing.T) {
	t.Parallel()

	h, err := NewHS256("test-secret", "scanpass")
	require.NoError(t, err)

	token, err := h.Sign(NewClaims(1, "a@x.com", time.Hour, "scanpass", time.Now().UTC()))
	require.NoError(t, err)

	t.Run("malformed token", func(t *testing.T) {
		_, err := h.Verify("definitely.not.a-jwt")
		require.ErrorIs(t, err, ErrInvalid)
	})

	t.Run("flipped payload byte", func(t *testing.T) {
		raw := []byte(token)
		raw[len(raw)/2] ^= 0x01
		_, err := h.Verify(string(raw))
		require.ErrorIs(t, err, ErrInvalid)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other, err := NewHS256("another-secret", "scanpass")
		require.NoError(t, err)
		_, err = other.Verify(token)
		require.ErrorIs(t, err, ErrInvalid)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		other, err := NewHS256("test-secret", "someone-else")
		require.NoError(t, err)
		_, err = other.Verify(token)
		require.ErrorIs(t, err, ErrInvalid)
	})
}

func TestHS256RequiresSecret(t *testing.T) {
	t.Parallel()

	_, err := NewHS256("", "scanpass")
	require.Error(t, err)
}

func TestClaimsUserIDParsing(t *testing.T) {
	t.Parallel()

	c := Claims{}
	c.Subject = "not-a-number"
	_, err := c.UserID()
	require.ErrorIs(t, err, ErrInvalid)
}
