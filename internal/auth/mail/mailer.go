// Package mail dispatches the password-reset email.
package mail

import (
	"context"
	"fmt"
	"strings"

	gomail "github.com/wneessen/go-mail"
)

// Mailer sends transactional mail. The SMTP implementation below is the only
// production one; tests substitute a recording fake.
type Mailer interface {
	SendPasswordReset(ctx context.Context, to, resetLink string) error
}

// Config carries the SMTP settings loaded at startup.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	TLS      bool
}

// SMTPMailer sends mail through a configured SMTP relay.
type SMTPMailer struct {
	cfg Config
}

// NewSMTPMailer validates the config and returns a ready mailer.
func NewSMTPMailer(cfg Config) (*SMTPMailer, error) {
	if cfg.Host == "" {
		return nil, fmt.Errorf("mail: SMTP host is required")
	}
	if cfg.From == "" {
		return nil, fmt.Errorf("mail: from address is required")
	}
	return &SMTPMailer{cfg: cfg}, nil
}

// SendPasswordReset delivers the reset link to the user. Errors propagate to
// the caller; nothing is retried.
func (m *SMTPMailer) SendPasswordReset(ctx context.Context, to, resetLink string) error {
	msg := gomail.NewMsg()

	if err := msg.From(m.cfg.From); err != nil {
		return fmt.Errorf("mail: setting from address: %w", err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("mail: setting to address: %w", err)
	}

	msg.Subject("Password Reset")
	msg.SetBodyString(gomail.TypeTextPlain,
		"Click the link to reset your password: "+resetLink)
	msg.AddAlternativeString(gomail.TypeTextHTML, resetHTML(resetLink))

	opts := []gomail.Option{
		gomail.WithPort(m.cfg.Port),
	}

	if m.cfg.TLS {
		opts = append(opts, gomail.WithTLSPolicy(gomail.TLSMandatory))
		// Implicit TLS on 465, STARTTLS everywhere else.
		if m.cfg.Port == 465 {
			opts = append(opts, gomail.WithSSL())
		}
	} else {
		opts = append(opts, gomail.WithTLSPolicy(gomail.NoTLS))
	}

	if m.cfg.Username != "" && m.cfg.Password != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(m.cfg.Username),
			gomail.WithPassword(m.cfg.Password),
		)
	}

	client, err := gomail.NewClient(m.cfg.Host, opts...)
	if err != nil {
		return fmt.Errorf("mail: creating client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("mail: sending: %w", err)
	}

	return nil
}

func resetHTML(resetLink string) string {
	var b strings.Builder
	b.WriteString("<p>Click the link to reset your password:</p>")
	b.WriteString(`<a href="` + resetLink + `">` + resetLink + `</a>`)
	return b.String()
}
