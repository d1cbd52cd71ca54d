package web

import (
	"fmt"
	"net/smtp"
	"strings"

	"github.com/athaploo/portfolio/internal/config"
	"github.com/pkg/errors"
)

// ContactMessage is one submission of the contact form.
type ContactMessage struct {
	Name    string
	Email   string
	Message string
}

// Mailer delivers contact form submissions.
type Mailer interface {
	Send(msg ContactMessage) error
}

// ErrMailerDisabled is returned when no SMTP credentials are configured.
var ErrMailerDisabled = errors.New("SMTP credentials not configured")

type smtpMailer struct {
	cfg config.SMTPConfig
	to  string
}

// NewSMTPMailer relays submissions to `to` through the configured server.
func NewSMTPMailer(cfg config.SMTPConfig, to string) Mailer {
	return &smtpMailer{cfg: cfg, to: to}
}

func (m *smtpMailer) Send(msg ContactMessage) error {
	if !m.cfg.Enabled() {
		return ErrMailerDisabled
	}

	raw := composeContactEmail(m.cfg.User, m.to, msg)
	auth := smtp.PlainAuth("", m.cfg.User, m.cfg.Pass, m.cfg.Host)

	err := smtp.SendMail(m.cfg.Host+":"+m.cfg.Port, auth, m.cfg.User, []string{m.to}, raw)
	if err != nil {
		return errors.Wrap(err, "send contact email")
	}
	return nil
}

// composeContactEmail builds the RFC 5322 message. Header values are
// stripped of line breaks so form input cannot add headers.
func composeContactEmail(from, to string, msg ContactMessage) []byte {
	subject := fmt.Sprintf("Portfolio Contact: %s", headerSafe(msg.Name))
	body := fmt.Sprintf(`
New contact form submission from your portfolio:

Name: %s
Email: %s
Message:
%s

---
Sent from your portfolio contact form
`, msg.Name, msg.Email, msg.Message)

	return []byte("To: " + to + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"From: " + from + "\r\n" +
		"Reply-To: " + headerSafe(msg.Email) + "\r\n" +
		"\r\n" +
		body + "\r\n")
}

func headerSafe(s string) string {
	return strings.NewReplacer("\r", " ", "\n", " ").Replace(s)
}
