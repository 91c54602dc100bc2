package jwtx

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalid is returned for any token that fails verification. Expired,
// malformed and bad-signature tokens are deliberately indistinguishable to
// callers so failure responses stay uniform.
var ErrInvalid = errors.New("jwtx: invalid token")

// Signer signs claims into a compact token string.
type Signer interface {
	Sign(Claims) (string, error)
}

// Verifier validates a token and returns the claims if it's legit.
type Verifier interface {
	Verify(token string) (Claims, error)
}

// HS256 signs and verifies tokens with a single process-wide HMAC secret.
// Rotating the secret invalidates every outstanding token.
type HS256 struct {
	secret []byte
	issuer string
}

// NewHS256 builds a combined signer/verifier from the configured secret.
func NewHS256(secret, issuer string) (*HS256, error) {
	if secret == "" {
		return nil, errors.New("jwtx: empty HS256 secret")
	}
	return &HS256{secret: []byte(secret), issuer: issuer}, nil
}

// Sign takes claims and turns them into a signed JWT string.
func (h *HS256) Sign(claims Claims) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(h.secret)
}

// Verify parses and validates a token string. Signature, expiry and issuer
// are all checked; any failure collapses to ErrInvalid.
func (h *HS256) Verify(token string) (Claims, error) {
	var claims Claims

	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalid
		}
		return h.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !parsed.Valid {
		return Claims{}, ErrInvalid
	}

	if h.issuer != "" && claims.Issuer != h.issuer {
		return Claims{}, ErrInvalid
	}

	if err := claims.ValidateExpiry(); err != nil {
		return Claims{}, ErrInvalid
	}

	return claims, nil
}
