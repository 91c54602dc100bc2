package jwtx

import (
	"crypto/rand"
	"encoding/base64"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token TTL constants for the two token kinds the service issues.
const (
	// SessionTokenTTL is the lifetime of a bearer session token.
	SessionTokenTTL = time.Hour

	// ResetTokenTTL is the lifetime of a password-reset token.
	ResetTokenTTL = 15 * time.Minute
)

// Claims are the token claims used across the service. The subject carries
// the user id; email is carried as a custom claim so the reset flow can
// cross-check it against the stored user.
type Claims struct {
	jwt.RegisteredClaims

	// Email of the authenticated user.
	Email string `json:"email,omitempty"`
}

// NewClaims builds claims for a user with the given ttl.
func NewClaims(userID int64, email string, ttl time.Duration, issuer string, now time.Time) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   strconv.FormatInt(userID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        NewJTI(),
		},
		Email: email,
	}
}

// NewJTI returns a URL-safe random identifier for the "jti" claim, so two
// tokens minted in the same second for the same user still differ.
func NewJTI() string {
	var b [16]byte
	_, _ = rand.Read(b[:])
	return base64.RawURLEncoding.EncodeToString(b[:])
}

// UserID parses the subject claim back into a user id.
func (c *Claims) UserID() (int64, error) {
	id, err := strconv.ParseInt(c.Subject, 10, 64)
	if err != nil {
		return 0, ErrInvalid
	}
	return id, nil
}

// ValidateExpiry ensures the token hasn't expired (exp) and isn't used
// before it was issued (iat).
func (c *Claims) ValidateExpiry() error {
	now := time.Now().UTC()

	if c.ExpiresAt == nil || now.After(c.ExpiresAt.Time) {
		return ErrInvalid
	}

	if c.IssuedAt != nil && now.Before(c.IssuedAt.Time.Add(-time.Minute)) {
		return ErrInvalid
	}

	return nil
}
