package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/opentalent/recruitment-platform/internal/core/domain"
	"github.com/opentalent/recruitment-platform/internal/core/ports"
)

func newEmailFixture(t *testing.T) (*EmailService, *memUserRepo, *memOTPStore, *captureSender) {
	t.Helper()
	users := newMemUserRepo()
	otp := newMemOTPStore()
	sender := &captureSender{}
	return NewEmailService(users, otp, sender, testLogger()), users, otp, sender
}

func TestSendOTP_StoresAndMailsSixDigitCode(t *testing.T) {
	svc, _, otp, sender := newEmailFixture(t)

	if err := svc.SendOTP(context.Background(), "otp@example.com"); err != nil {
		t.Fatalf("SendOTP: %v", err)
	}

	code, err := otp.Get(context.Background(), "otp@example.com")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if len(code) != 6 {
		t.Fatalf("expected 6-digit code, got %q", code)
	}
	for _, r := range code {
		if r < '0' || r > '9' {
			t.Fatalf("non-digit in code %q", code)
		}
	}

	mail := sender.last()
	if mail == nil {
		t.Fatal("no mail sent")
	}
	if !strings.Contains(mail.HTML, code) {
		t.Fatal("mailed body does not contain the stored code")
	}
}

func TestSendOTP_OverwritesPreviousCode(t *testing.T) {
	svc, _, otp, _ := newEmailFixture(t)

	if err := otp.Set(context.Background(), "otp@example.com", "111111"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := svc.SendOTP(context.Background(), "otp@example.com"); err != nil {
		t.Fatalf("SendOTP: %v", err)
	}

	ok, err := svc.VerifyOTP(context.Background(), "otp@example.com", "111111")
	if err != nil {
		t.Fatalf("VerifyOTP: %v", err)
	}
	if ok {
		t.Fatal("stale code verified after a fresh one was issued")
	}
}

func TestVerifyOTP_ConsumesCode(t *testing.T) {
	svc, _, otp, _ := newEmailFixture(t)

	if err := otp.Set(context.Background(), "otp@example.com", "424242"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	ok, err := svc.VerifyOTP(context.Background(), "otp@example.com", "424242")
	if err != nil || !ok {
		t.Fatalf("first verify: ok=%v err=%v", ok, err)
	}

	// Single use: the same code must not verify twice.
	ok, err = svc.VerifyOTP(context.Background(), "otp@example.com", "424242")
	if err != nil {
		t.Fatalf("second verify: %v", err)
	}
	if ok {
		t.Fatal("code verified twice")
	}
}

func TestVerifyOTP_MismatchAndExpiry(t *testing.T) {
	svc, _, otp, _ := newEmailFixture(t)

	if err := otp.Set(context.Background(), "otp@example.com", "424242"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	if ok, _ := svc.VerifyOTP(context.Background(), "otp@example.com", "000000"); ok {
		t.Fatal("wrong code verified")
	}
	// A mismatch must not consume the code.
	if ok, _ := svc.VerifyOTP(context.Background(), "otp@example.com", "424242"); !ok {
		t.Fatal("correct code rejected after a failed attempt")
	}

	if err := otp.Set(context.Background(), "otp@example.com", "131313"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	otp.expireAll()
	if ok, _ := svc.VerifyOTP(context.Background(), "otp@example.com", "131313"); ok {
		t.Fatal("expired code verified")
	}
}

func TestSendWelcome(t *testing.T) {
	svc, users, _, sender := newEmailFixture(t)

	if _, err := users.Create(context.Background(), &domain.User{Name: "Ada", Email: "ada@example.com", Role: domain.RoleMember}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := svc.SendWelcome(context.Background(), "ada@example.com"); err != nil {
		t.Fatalf("SendWelcome: %v", err)
	}
	mail := sender.last()
	if mail == nil || !strings.Contains(mail.HTML, "Ada") {
		t.Fatal("welcome mail missing or does not greet the user")
	}

	if err := svc.SendWelcome(context.Background(), "nobody@example.com"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestRequestPasswordReset(t *testing.T) {
	svc, users, otp, sender := newEmailFixture(t)

	if _, err := users.Create(context.Background(), &domain.User{Name: "Ada", Email: "ada@example.com", Role: domain.RoleMember}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := svc.RequestPasswordReset(context.Background(), "ada@example.com", "https://app.example.com/"); err != nil {
		t.Fatalf("RequestPasswordReset: %v", err)
	}

	token, err := otp.Get(context.Background(), "reset:ada@example.com")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if len(token) != 64 {
		t.Fatalf("expected 64 hex chars, got %d", len(token))
	}

	mail := sender.last()
	if mail == nil {
		t.Fatal("no mail sent")
	}
	if !strings.Contains(mail.HTML, "https://app.example.com/reset-password?token="+token) {
		t.Fatal("reset link missing or malformed")
	}

	// The service surfaces ErrUserNotFound; the handler masks it.
	if err := svc.RequestPasswordReset(context.Background(), "nobody@example.com", "https://app.example.com"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestSend_RequiresContent(t *testing.T) {
	svc, _, _, sender := newEmailFixture(t)

	if err := svc.Send(context.Background(), ports.Mail{To: []string{"x@example.com"}, Subject: "Empty"}); err == nil {
		t.Fatal("expected error for mail without content")
	}
	if err := svc.Send(context.Background(), ports.Mail{To: []string{"x@example.com"}, Subject: "Hi", Text: "plain"}); err != nil {
		t.Fatalf("Send: %v", err)
	}
	if sender.last() == nil {
		t.Fatal("mail not delivered")
	}
}

func TestSendJobSeekerProfile(t *testing.T) {
	svc, _, _, sender := newEmailFixture(t)

	err := svc.SendJobSeekerProfile(context.Background(), ports.JobSeekerMail{
		To:           "client@example.com",
		Subject:      "Candidate for your opening",
		Name:         "Grace Hopper",
		Skills:       []string{"Go", "PostgreSQL"},
		ContactEmail: "consultant@example.com",
	})
	if err != nil {
		t.Fatalf("SendJobSeekerProfile: %v", err)
	}
	mail := sender.last()
	if mail == nil {
		t.Fatal("no mail sent")
	}
	if !strings.Contains(mail.HTML, "Grace Hopper") || !strings.Contains(mail.HTML, "Go, PostgreSQL") {
		t.Fatalf("profile body incomplete: %s", mail.HTML)
	}
}

func TestSendJobOpportunity(t *testing.T) {
	svc, _, _, sender := newEmailFixture(t)

	err := svc.SendJobOpportunity(context.Background(), ports.JobOpportunityMail{
		To:           "candidate@example.com",
		Subject:      "An opportunity for you",
		JobTitle:     "Backend Engineer",
		Company:      "Acme",
		Location:     "Remote",
		Description:  "Build things.",
		ContactEmail: "jobs@acme.example",
	})
	if err != nil {
		t.Fatalf("SendJobOpportunity: %v", err)
	}
	mail := sender.last()
	if mail == nil || !strings.Contains(mail.HTML, "Backend Engineer at Acme") {
		t.Fatal("opportunity body incomplete")
	}
}

func TestSendSupportRequest(t *testing.T) {
	svc, _, _, sender := newEmailFixture(t)

	err := svc.SendSupportRequest(context.Background(), ports.SupportRequest{
		To:        "support@example.com",
		Subject:   "Billing question",
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane@example.com",
		Company:   "Acme",
		IssueType: "billing",
		Priority:  "high",
		Message:   "My invoice looks wrong.",
	})
	if err != nil {
		t.Fatalf("SendSupportRequest: %v", err)
	}
	mail := sender.last()
	if mail == nil || !strings.Contains(mail.HTML, "Jane Doe") {
		t.Fatal("support body incomplete")
	}
}
