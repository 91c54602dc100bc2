package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/scanpass/scanpass/internal/auth/domain"
	"github.com/scanpass/scanpass/internal/auth/store"
)

type usersRepo struct {
	q querier
}

const userColumns = `id, email, password_hash, reset_token, reset_token_expiry, created_at, updated_at`

func (r *usersRepo) GetUserByID(ctx context.Context, id int64) (domain.User, error) {
	row := r.q.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = ?`, id)
	return scanUser(row)
}

func (r *usersRepo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	row := r.q.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = ?`, email)
	return scanUser(row)
}

func (r *usersRepo) CreateUser(ctx context.Context, email, passwordHash string) (int64, error) {
	res, err := r.q.ExecContext(ctx,
		`INSERT INTO users (email, password_hash) VALUES (?, ?)`,
		email, passwordHash)
	if err != nil {
		return 0, mapConstraint(err)
	}
	return res.LastInsertId()
}

func (r *usersRepo) SetResetToken(ctx context.Context, userID int64, token string, expiry time.Time) error {
	res, err := r.q.ExecContext(ctx,
		`UPDATE users
		    SET reset_token = ?, reset_token_expiry = ?, updated_at = CURRENT_TIMESTAMP
		  WHERE id = ?`,
		token, expiry.UTC(), userID)
	if err != nil {
		return err
	}
	return requireRows(res)
}

func (r *usersRepo) GetUserForReset(ctx context.Context, userID int64, token string) (domain.User, error) {
	row := r.q.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users
		  WHERE id = ? AND reset_token = ?`,
		userID, token)
	u, err := scanUser(row)
	if err != nil {
		return domain.User{}, err
	}

	// Expiry is checked here rather than in SQL so the comparison does not
	// depend on how the driver serialises bound timestamps.
	if u.ResetTokenExpiry == nil || !u.ResetTokenExpiry.After(time.Now().UTC()) {
		return domain.User{}, store.ErrNotFound
	}
	return u, nil
}

func (r *usersRepo) UpdatePasswordAndClearReset(ctx context.Context, userID int64, newHash string) error {
	res, err := r.q.ExecContext(ctx,
		`UPDATE users
		    SET password_hash = ?, reset_token = NULL, reset_token_expiry = NULL,
		        updated_at = CURRENT_TIMESTAMP
		  WHERE id = ?`,
		newHash, userID)
	if err != nil {
		return err
	}
	return requireRows(res)
}

func scanUser(row *sql.Row) (domain.User, error) {
	var (
		u      domain.User
		token  sql.NullString
		expiry sql.NullTime
	)
	err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &token, &expiry, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	if token.Valid {
		u.ResetToken = &token.String
	}
	if expiry.Valid {
		t := expiry.Time
		u.ResetTokenExpiry = &t
	}
	return u, nil
}

func requireRows(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}
