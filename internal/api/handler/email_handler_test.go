package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/rs/zerolog"

	"github.com/opentalent/recruitment-platform/internal/core/domain"
	"github.com/opentalent/recruitment-platform/internal/core/ports"
)

type stubEmailService struct {
	sendOTPErr   error
	resetErr     error
	verifyResult bool
}

func (s *stubEmailService) SendOTP(context.Context, string) error { return s.sendOTPErr }

func (s *stubEmailService) VerifyOTP(context.Context, string, string) (bool, error) {
	return s.verifyResult, nil
}

func (s *stubEmailService) SendWelcome(context.Context, string) error { return nil }

func (s *stubEmailService) RequestPasswordReset(context.Context, string, string) error {
	return s.resetErr
}

func (s *stubEmailService) Send(context.Context, ports.Mail) error { return nil }

func (s *stubEmailService) SendJobSeekerProfile(context.Context, ports.JobSeekerMail) error {
	return nil
}

func (s *stubEmailService) SendJobOpportunity(context.Context, ports.JobOpportunityMail) error {
	return nil
}

func (s *stubEmailService) SendSupportRequest(context.Context, ports.SupportRequest) error {
	return nil
}

// The send-otp endpoint must answer identically whether or not the address
// is registered.
func TestEmailHandler_SendOTP_ResponseShapeIndependentOfAccount(t *testing.T) {
	registered := &stubEmailService{}
	unknown := &stubEmailService{sendOTPErr: domain.ErrUserNotFound}

	bodies := make([]string, 0, 2)
	for _, stub := range []*stubEmailService{registered, unknown} {
		h := NewEmailHandler(stub, "https://app.example.com", zerolog.Nop())
		c, rec := newAuthContext(t, `{"email":"someone@example.com"}`)
		if err := h.SendOTP(c); err != nil {
			t.Fatalf("handler error: %v", err)
		}
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		bodies = append(bodies, rec.Body.String())
	}

	if bodies[0] != bodies[1] {
		t.Fatalf("responses differ: %q vs %q", bodies[0], bodies[1])
	}
}

func TestEmailHandler_RequestReset_MasksUnknownAccount(t *testing.T) {
	h := NewEmailHandler(&stubEmailService{resetErr: domain.ErrUserNotFound}, "https://app.example.com", zerolog.Nop())

	c, rec := newAuthContext(t, `{"email":"nobody@example.com"}`)
	if err := h.RequestReset(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestEmailHandler_SendOTP_RejectsInvalidEmail(t *testing.T) {
	h := NewEmailHandler(&stubEmailService{}, "https://app.example.com", zerolog.Nop())

	c, rec := newAuthContext(t, `{"email":"not-an-email"}`)
	_ = h.SendOTP(c)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestEmailHandler_VerifyOTP(t *testing.T) {
	h := NewEmailHandler(&stubEmailService{verifyResult: true}, "https://app.example.com", zerolog.Nop())

	c, rec := newAuthContext(t, `{"email":"a@example.com","otp":"123456"}`)
	if err := h.VerifyOTP(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if rec.Body.String() != "{\"valid\":true}\n" {
		t.Fatalf("unexpected body %q", rec.Body.String())
	}

	h = NewEmailHandler(&stubEmailService{verifyResult: false}, "https://app.example.com", zerolog.Nop())
	c, rec = newAuthContext(t, `{"email":"a@example.com","otp":"000000"}`)
	if err := h.VerifyOTP(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Body.String() != "{\"valid\":false}\n" {
		t.Fatalf("unexpected body %q", rec.Body.String())
	}
}
