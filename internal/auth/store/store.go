package store

import (
	"context"
	"errors"
	"time"

	"github.com/scanpass/scanpass/internal/auth/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite today)
// implement this. It exposes sub-repositories to keep concerns tidy and
// testable.
type Store interface {
	Users() Users
	QRCodes() QRCodes

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// Use it for multi-step operations that must be atomic (e.g., the
	// register user-plus-QR sequence). The caller MUST call Commit() or
	// Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. If fn returns an error the
	// transaction is rolled back, otherwise it is committed.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id int64) (domain.User, error)

	// GetUserByEmail looks a user up for login and forgot-password.
	// Callers pass emails already lower-cased.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// CreateUser inserts a new user and returns the assigned id.
	// A duplicate email surfaces ErrAlreadyExists.
	CreateUser(ctx context.Context, email, passwordHash string) (int64, error)

	// SetResetToken stores the reset token pair for a user, replacing any
	// previously issued token.
	SetResetToken(ctx context.Context, userID int64, token string, expiry time.Time) error

	// GetUserForReset returns the user only when the stored reset_token
	// equals token and reset_token_expiry is still in the future.
	GetUserForReset(ctx context.Context, userID int64, token string) (domain.User, error)

	// UpdatePasswordAndClearReset sets the new password hash and clears the
	// reset token pair in one statement.
	UpdatePasswordAndClearReset(ctx context.Context, userID int64, newHash string) error
}

type QRCodes interface {
	// CreateQRCode inserts the QR record for a user. A second insert for the
	// same user surfaces ErrAlreadyExists (one current record per user).
	CreateQRCode(ctx context.Context, userID int64, payload string) (domain.QRCode, error)

	// GetQRCodeByUserID returns the user's current record.
	GetQRCodeByUserID(ctx context.Context, userID int64) (domain.QRCode, error)

	// UpdateQRCode replaces the payload in place and bumps last_updated.
	// Zero rows affected surfaces ErrNotFound; nothing is inserted.
	UpdateQRCode(ctx context.Context, userID int64, payload string) (domain.QRCode, error)
}
