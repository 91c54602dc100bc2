package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/scanpass/scanpass/internal/auth/store"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	dsn := "file:" + filepath.Join(t.TempDir(), "test.db")
	s, err := NewStore(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations())
	return s
}

func TestUsersRepoCreateAndLookup(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newTestStore(t)

	id, err := s.Users().CreateUser(ctx, "a@x.com", "hash-1")
	require.NoError(t, err)
	require.Positive(t, id)

	byEmail, err := s.Users().GetUserByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	require.Equal(t, id, byEmail.ID)
	require.Equal(t, "hash-1", byEmail.PasswordHash)
	require.Nil(t, byEmail.ResetToken)
	require.Nil(t, byEmail.ResetTokenExpiry)
	require.False(t, byEmail.CreatedAt.IsZero())

	byID, err := s.Users().GetUserByID(ctx, id)
	require.NoError(t, err)
	require.Equal(t, "a@x.com", byID.Email)

	_, err = s.Users().GetUserByEmail(ctx, "missing@x.com")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestUsersRepoDuplicateEmail(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newTestStore(t)

	_, err := s.Users().CreateUser(ctx, "a@x.com", "hash-1")
	require.NoError(t, err)

	_, err = s.Users().CreateUser(ctx, "a@x.com", "hash-2")
	require.ErrorIs(t, err, store.ErrAlreadyExists)
}

func TestUsersRepoResetTokenLifecycle(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newTestStore(t)

	id, err := s.Users().CreateUser(ctx, "a@x.com", "hash-1")
	require.NoError(t, err)

	expiry := time.Now().UTC().Add(15 * time.Minute)
	require.NoError(t, s.Users().SetResetToken(ctx, id, "reset-token", expiry))

	u, err := s.Users().GetUserForReset(ctx, id, "reset-token")
	require.NoError(t, err)
	require.NotNil(t, u.ResetToken)
	require.Equal(t, "reset-token", *u.ResetToken)

	t.Run("wrong token rejected", func(t *testing.T) {
		_, err := s.Users().GetUserForReset(ctx, id, "some-other-token")
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("expired token rejected", func(t *testing.T) {
		require.NoError(t, s.Users().SetResetToken(ctx, id, "stale", time.Now().UTC().Add(-time.Minute)))
		_, err := s.Users().GetUserForReset(ctx, id, "stale")
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("update clears the pair", func(t *testing.T) {
		require.NoError(t, s.Users().SetResetToken(ctx, id, "fresh", time.Now().UTC().Add(15*time.Minute)))
		require.NoError(t, s.Users().UpdatePasswordAndClearReset(ctx, id, "hash-2"))

		u, err := s.Users().GetUserByID(ctx, id)
		require.NoError(t, err)
		require.Equal(t, "hash-2", u.PasswordHash)
		require.Nil(t, u.ResetToken)
		require.Nil(t, u.ResetTokenExpiry)

		_, err = s.Users().GetUserForReset(ctx, id, "fresh")
		require.ErrorIs(t, err, store.ErrNotFound)
	})
}

func TestQRCodesRepo(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newTestStore(t)

	userID, err := s.Users().CreateUser(ctx, "a@x.com", "hash-1")
	require.NoError(t, err)

	_, err = s.QRCodes().GetQRCodeByUserID(ctx, userID)
	require.ErrorIs(t, err, store.ErrNotFound)

	created, err := s.QRCodes().CreateQRCode(ctx, userID, "data:image/png;base64,AAAA")
	require.NoError(t, err)
	require.Equal(t, userID, created.UserID)
	require.False(t, created.LastUpdated.IsZero())

	t.Run("second record per user rejected", func(t *testing.T) {
		_, err := s.QRCodes().CreateQRCode(ctx, userID, "data:image/png;base64,BBBB")
		require.ErrorIs(t, err, store.ErrAlreadyExists)
	})

	t.Run("update replaces payload in place", func(t *testing.T) {
		updated, err := s.QRCodes().UpdateQRCode(ctx, userID, "data:image/png;base64,CCCC")
		require.NoError(t, err)
		require.Equal(t, created.ID, updated.ID)
		require.Equal(t, "data:image/png;base64,CCCC", updated.Payload)
	})

	t.Run("update without a record is NotFound", func(t *testing.T) {
		otherID, err := s.Users().CreateUser(ctx, "b@x.com", "hash-1")
		require.NoError(t, err)
		_, err = s.QRCodes().UpdateQRCode(ctx, otherID, "data:image/png;base64,DDDD")
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("user delete cascades", func(t *testing.T) {
		_, err := s.db.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, userID)
		require.NoError(t, err)
		_, err = s.QRCodes().GetQRCodeByUserID(ctx, userID)
		require.ErrorIs(t, err, store.ErrNotFound)
	})
}

func TestWithTxRollsBackOnError(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newTestStore(t)

	err := s.WithTx(ctx, func(tx store.Tx) error {
		if _, err := tx.Users().CreateUser(ctx, "a@x.com", "hash-1"); err != nil {
			return err
		}
		return context.Canceled
	})
	require.ErrorIs(t, err, context.Canceled)

	_, err = s.Users().GetUserByEmail(ctx, "a@x.com")
	require.ErrorIs(t, err, store.ErrNotFound)
}
