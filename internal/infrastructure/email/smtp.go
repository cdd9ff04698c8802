package email

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/rs/zerolog"

	"github.com/opentalent/recruitment-platform/internal/core/ports"
)

// Config holds the SMTP relay settings.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// SMTPSender implements ports.MailSender over a plain SMTP relay.
type SMTPSender struct {
	cfg    Config
	logger zerolog.Logger
}

func NewSMTPSender(cfg Config, logger zerolog.Logger) *SMTPSender {
	return &SMTPSender{cfg: cfg, logger: logger}
}

func (s *SMTPSender) Send(ctx context.Context, mail ports.Mail) error {
	if len(mail.To) == 0 {
		return fmt.Errorf("mail has no recipients")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	var auth smtp.Auth
	if s.cfg.Username != "" {
		auth = smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	}

	recipients := append(append(append([]string{}, mail.To...), mail.CC...), mail.BCC...)
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)

	if err := smtp.SendMail(addr, auth, s.cfg.From, recipients, s.message(mail)); err != nil {
		s.logger.Error().Err(err).Strs("to", mail.To).Msg("failed to send mail")
		return fmt.Errorf("send mail: %w", err)
	}

	s.logger.Info().Strs("to", mail.To).Str("subject", mail.Subject).Msg("mail sent")
	return nil
}

// message builds the raw RFC 5322 message. BCC recipients appear only in
// the envelope, never in the headers.
func (s *SMTPSender) message(mail ports.Mail) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", s.cfg.From)
	fmt.Fprintf(&b, "To: %s\r\n", strings.Join(mail.To, ", "))
	if len(mail.CC) > 0 {
		fmt.Fprintf(&b, "Cc: %s\r\n", strings.Join(mail.CC, ", "))
	}
	fmt.Fprintf(&b, "Subject: %s\r\n", mail.Subject)
	b.WriteString("MIME-Version: 1.0\r\n")

	if mail.HTML != "" {
		b.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n\r\n")
		b.WriteString(mail.HTML)
	} else {
		b.WriteString("Content-Type: text/plain; charset=\"UTF-8\"\r\n\r\n")
		b.WriteString(mail.Text)
	}
	return []byte(b.String())
}
