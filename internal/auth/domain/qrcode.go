package domain

import "time"

// QRCode is the single scannable credential kept per user. Payload holds the
// rendered PNG data URL, not the random value it encodes.
type QRCode struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	Payload     string    `json:"qr_code"`
	LastUpdated time.Time `json:"last_updated"`
}
