package ports

import "context"

// SupportRequest is a support-form submission forwarded to the support
// mailbox.
type SupportRequest struct {
	To        string
	Subject   string
	FirstName string
	LastName  string
	Email     string
	Company   string
	IssueType string
	Priority  string
	Message   string
}

// JobSeekerMail shares a candidate profile with a third party.
type JobSeekerMail struct {
	To           string
	Subject      string
	Name         string
	Skills       []string
	ContactEmail string
	Details      string
}

// JobOpportunityMail shares a job posting with a candidate.
type JobOpportunityMail struct {
	To           string
	Subject      string
	JobTitle     string
	Company      string
	Location     string
	Description  string
	ContactEmail string
}

// EmailService owns OTP issue/verify and all templated transactional mail.
// SendOTP and RequestPasswordReset report ErrUserNotFound to the caller,
// but handlers must mask that as success to prevent account enumeration.
type EmailService interface {
	SendOTP(ctx context.Context, email string) error
	VerifyOTP(ctx context.Context, email, code string) (bool, error)
	SendWelcome(ctx context.Context, email string) error
	RequestPasswordReset(ctx context.Context, email, baseURL string) error
	Send(ctx context.Context, mail Mail) error
	SendJobSeekerProfile(ctx context.Context, mail JobSeekerMail) error
	SendJobOpportunity(ctx context.Context, mail JobOpportunityMail) error
	SendSupportRequest(ctx context.Context, req SupportRequest) error
}
