package sqlite

import (
	"context"
	"database/sql"

	"github.com/scanpass/scanpass/internal/auth/domain"
)

type qrCodesRepo struct {
	q querier
}

const qrColumns = `id, user_id, qr_payload, last_updated`

func (r *qrCodesRepo) CreateQRCode(ctx context.Context, userID int64, payload string) (domain.QRCode, error) {
	res, err := r.q.ExecContext(ctx,
		`INSERT INTO qrcodes (user_id, qr_payload) VALUES (?, ?)`,
		userID, payload)
	if err != nil {
		return domain.QRCode{}, mapConstraint(err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return domain.QRCode{}, err
	}

	row := r.q.QueryRowContext(ctx,
		`SELECT `+qrColumns+` FROM qrcodes WHERE id = ?`, id)
	return scanQRCode(row)
}

func (r *qrCodesRepo) GetQRCodeByUserID(ctx context.Context, userID int64) (domain.QRCode, error) {
	row := r.q.QueryRowContext(ctx,
		`SELECT `+qrColumns+` FROM qrcodes WHERE user_id = ?`, userID)
	return scanQRCode(row)
}

func (r *qrCodesRepo) UpdateQRCode(ctx context.Context, userID int64, payload string) (domain.QRCode, error) {
	res, err := r.q.ExecContext(ctx,
		`UPDATE qrcodes
		    SET qr_payload = ?, last_updated = CURRENT_TIMESTAMP
		  WHERE user_id = ?`,
		payload, userID)
	if err != nil {
		return domain.QRCode{}, err
	}
	if err := requireRows(res); err != nil {
		return domain.QRCode{}, err
	}

	row := r.q.QueryRowContext(ctx,
		`SELECT `+qrColumns+` FROM qrcodes WHERE user_id = ?`, userID)
	return scanQRCode(row)
}

func scanQRCode(row *sql.Row) (domain.QRCode, error) {
	var qc domain.QRCode
	if err := row.Scan(&qc.ID, &qc.UserID, &qc.Payload, &qc.LastUpdated); err != nil {
		return domain.QRCode{}, mapNotFound(err)
	}
	return qc, nil
}
