package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/scanpass/scanpass/internal/auth/domain"
	"github.com/scanpass/scanpass/internal/auth/store"
	"github.com/scanpass/scanpass/pkg/cryptox"
	"github.com/scanpass/scanpass/pkg/jwtx"
	"github.com/scanpass/scanpass/pkg/slogx"
)

var (
	// ErrInvalidCredentials covers both unknown email and wrong password so
	// login responses never reveal which one it was.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrEmailTaken reports a duplicate registration.
	ErrEmailTaken = errors.New("email already exists")
)

// AuthService orchestrates registration, login and profile lookup.
type AuthService struct {
	Store    store.Store
	Signer   jwtx.Signer
	Issuer   string
	HashCost int
}

// RegisterResult is what a successful registration hands back: a session
// token for the new user and their freshly issued QR artifact.
type RegisterResult struct {
	Token  string
	QRCode domain.QRCode
}

// Register creates a user and their initial QR record as one transaction,
// then issues a session token. If the QR artifact cannot be created the user
// row is rolled back rather than committed half-initialised.
func (s *AuthService) Register(ctx context.Context, email, password string) (RegisterResult, error) {
	email = NormalizeEmail(email)

	hash, err := cryptox.HashPassword(password, s.HashCost)
	if err != nil {
		return RegisterResult{}, fmt.Errorf("register: %w", err)
	}

	var (
		userID int64
		qrCode domain.QRCode
	)
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		id, err := tx.Users().CreateUser(ctx, email, hash)
		if err != nil {
			if errors.Is(err, store.ErrAlreadyExists) {
				return ErrEmailTaken
			}
			return err
		}
		userID = id

		qc, err := issueQRCode(ctx, tx, id)
		if err != nil {
			return fmt.Errorf("issue initial qr code: %w", err)
		}
		qrCode = qc
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrEmailTaken) {
			slogx.FromContext(ctx).Error("registration failed", "email", email, "err", err)
		}
		return RegisterResult{}, err
	}

	token, err := s.Signer.Sign(jwtx.NewClaims(userID, email, jwtx.SessionTokenTTL, s.Issuer, time.Now().UTC()))
	if err != nil {
		return RegisterResult{}, fmt.Errorf("register: sign token: %w", err)
	}

	return RegisterResult{Token: token, QRCode: qrCode}, nil
}

// Login checks credentials and issues a session token. It performs no store
// writes and answers identically for unknown email and wrong password.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	email = NormalizeEmail(email)

	user, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("login: %w", err)
	}

	if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
		return "", ErrInvalidCredentials
	}

	token, err := s.Signer.Sign(jwtx.NewClaims(user.ID, user.Email, jwtx.SessionTokenTTL, s.Issuer, time.Now().UTC()))
	if err != nil {
		return "", fmt.Errorf("login: sign token: %w", err)
	}
	return token, nil
}

// Profile returns the exposable view of a user. Tokens carry no liveness
// guarantee, so a row deleted after issuance surfaces store.ErrNotFound.
func (s *AuthService) Profile(ctx context.Context, userID int64) (domain.Profile, error) {
	user, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		return domain.Profile{}, err
	}
	return user.Profile(), nil
}

// NormalizeEmail lower-cases and trims an email so comparisons are
// case-insensitive throughout.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
