package mailer

import (
	"fmt"
	"log/slog"
	"net/smtp"
	"strings"

	domainErrors "github.com/Erickrodrigues05/angohire/internal/domain/errors"
)

// Notifier delivers a message to a recipient address.
type Notifier interface {
	Send(to, subject, body string) error
}

// SMTPMailer sends notifications over plain SMTP. An unconfigured
// mailer (empty address) skips delivery and reports it as a failure so
// callers can record notificationSent=false without treating it as a
// pipeline error.
type SMTPMailer struct {
	addr     string
	username string
	password string
	from     string
	logger   *slog.Logger
}

// NewSMTPMailer creates mailer for the given SMTP endpoint.
func NewSMTPMailer(addr, username, password, from string, logger *slog.Logger) *SMTPMailer {
	return &SMTPMailer{addr: addr, username: username, password: password, from: from, logger: logger}
}

// Send delivers the message to a single recipient.
func (m *SMTPMailer) Send(to, subject, body string) error {
	if m.addr == "" || m.username == "" {
		m.logger.Warn("email credentials missing, skipping notification", slog.String("to", to))
		return domainErrors.ErrNotificationFailed
	}

	host := m.addr
	if idx := strings.IndexByte(host, ':'); idx >= 0 {
		host = host[:idx]
	}
	auth := smtp.PlainAuth("", m.username, m.password, host)

	msg := strings.Join([]string{
		"From: " + m.from,
		"To: " + to,
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/html; charset=\"UTF-8\"",
		"",
		body,
	}, "\r\n")

	if err := smtp.SendMail(m.addr, auth, m.from, []string{to}, []byte(msg)); err != nil {
		return fmt.Errorf("%w: %w", domainErrors.ErrNotificationFailed, err)
	}
	return nil
}
