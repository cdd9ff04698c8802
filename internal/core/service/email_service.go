package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"html/template"
	"math/big"
	"net/url"
	"strings"

	"github.com/rs/zerolog"

	"github.com/opentalent/recruitment-platform/internal/core/ports"
)

// EmailService owns OTP issue/verify and templated transactional mail.
// OTP codes live in the store with their own expiry; there is no unbounded
// in-process state here.
type EmailService struct {
	users  ports.UserRepository
	otp    ports.OTPStore
	sender ports.MailSender
	logger zerolog.Logger
}

func NewEmailService(users ports.UserRepository, otp ports.OTPStore, sender ports.MailSender, logger zerolog.Logger) *EmailService {
	return &EmailService{users: users, otp: otp, sender: sender, logger: logger}
}

// SendOTP issues a fresh 6-digit code for the address and mails it. A new
// request overwrites any outstanding code for the same address.
func (s *EmailService) SendOTP(ctx context.Context, email string) error {
	code, err := generateOTP()
	if err != nil {
		return err
	}
	if err := s.otp.Set(ctx, email, code); err != nil {
		return fmt.Errorf("store otp: %w", err)
	}

	body, err := render(otpTemplate, struct{ Code string }{code})
	if err != nil {
		return err
	}
	if err := s.sender.Send(ctx, ports.Mail{
		To:      []string{email},
		Subject: "Your verification code",
		HTML:    body,
	}); err != nil {
		return fmt.Errorf("send otp mail: %w", err)
	}

	s.logger.Info().Str("email", email).Msg("verification code sent")
	return nil
}

// VerifyOTP checks and consumes the code. Missing, expired, and mismatched
// codes are indistinguishable: all yield false.
func (s *EmailService) VerifyOTP(ctx context.Context, email, code string) (bool, error) {
	stored, err := s.otp.Get(ctx, email)
	if err != nil {
		return false, err
	}
	if stored == "" || stored != code {
		return false, nil
	}
	// Single use.
	if err := s.otp.Delete(ctx, email); err != nil {
		s.logger.Error().Err(err).Str("email", email).Msg("failed to consume otp")
	}
	return true, nil
}

func (s *EmailService) SendWelcome(ctx context.Context, email string) error {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return err
	}

	body, err := render(welcomeTemplate, struct{ Name string }{user.Name})
	if err != nil {
		return err
	}
	return s.sender.Send(ctx, ports.Mail{
		To:      []string{email},
		Subject: "Welcome to our platform!",
		HTML:    body,
	})
}

// RequestPasswordReset mails a reset link. Callers must mask
// ErrUserNotFound as success so the endpoint leaks nothing about which
// addresses are registered.
func (s *EmailService) RequestPasswordReset(ctx context.Context, email, baseURL string) error {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return err
	}

	token, err := generateResetToken()
	if err != nil {
		return err
	}
	link := fmt.Sprintf("%s/reset-password?token=%s&email=%s",
		strings.TrimSuffix(baseURL, "/"), token, url.QueryEscape(email))

	// The reset token reuses the OTP store so it expires on its own.
	if err := s.otp.Set(ctx, "reset:"+email, token); err != nil {
		return fmt.Errorf("store reset token: %w", err)
	}

	body, err := render(passwordResetTemplate, struct{ Name, Link string }{user.Name, link})
	if err != nil {
		return err
	}
	return s.sender.Send(ctx, ports.Mail{
		To:      []string{email},
		Subject: "Reset your password",
		HTML:    body,
	})
}

func (s *EmailService) Send(ctx context.Context, mail ports.Mail) error {
	if mail.Text == "" && mail.HTML == "" {
		return fmt.Errorf("email must contain either text or HTML content")
	}
	return s.sender.Send(ctx, mail)
}

func (s *EmailService) SendJobSeekerProfile(ctx context.Context, mail ports.JobSeekerMail) error {
	body, err := render(jobSeekerTemplate, mail)
	if err != nil {
		return err
	}
	return s.sender.Send(ctx, ports.Mail{
		To:      []string{mail.To},
		Subject: mail.Subject,
		HTML:    body,
	})
}

func (s *EmailService) SendJobOpportunity(ctx context.Context, mail ports.JobOpportunityMail) error {
	body, err := render(jobOpportunityTemplate, mail)
	if err != nil {
		return err
	}
	return s.sender.Send(ctx, ports.Mail{
		To:      []string{mail.To},
		Subject: mail.Subject,
		HTML:    body,
	})
}

func (s *EmailService) SendSupportRequest(ctx context.Context, req ports.SupportRequest) error {
	body, err := render(supportTemplate, req)
	if err != nil {
		return err
	}
	return s.sender.Send(ctx, ports.Mail{
		To:      []string{req.To},
		Subject: req.Subject,
		HTML:    body,
	})
}

// generateOTP returns a uniformly random 6-digit code.
func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", fmt.Errorf("generate otp: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}

func generateResetToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate reset token: %w", err)
	}
	return fmt.Sprintf("%x", b), nil
}

func render(t *template.Template, data any) (string, error) {
	var sb strings.Builder
	if err := t.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("render %s: %w", t.Name(), err)
	}
	return sb.String(), nil
}
