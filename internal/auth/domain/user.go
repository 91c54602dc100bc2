package domain

import "time"

// User is the identity record. Emails are stored lower-case so lookups are
// effectively case-insensitive. The reset pair is set on forgot-password and
// cleared together on reset-password.
type User struct {
	ID               int64
	Email            string
	PasswordHash     string // bcrypt encoded, never the plaintext
	ResetToken       *string
	ResetTokenExpiry *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Profile is the externally visible subset of a User. Password hashes and
// reset fields are never exposed.
type Profile struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// Profile returns the exposable view of the user.
func (u User) Profile() Profile {
	return Profile{ID: u.ID, Email: u.Email, CreatedAt: u.CreatedAt}
}
