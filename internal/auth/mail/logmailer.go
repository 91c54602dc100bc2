package mail

import (
	"context"
	"log/slog"
)

// LogMailer writes reset links to the log instead of dispatching email.
// Used when no SMTP relay is configured, which is the usual dev setup.
type LogMailer struct {
	Logger *slog.Logger
}

func (m *LogMailer) SendPasswordReset(_ context.Context, to, resetLink string) error {
	m.Logger.Info("password reset link (mail disabled)", "to", to, "reset_link", resetLink)
	return nil
}
