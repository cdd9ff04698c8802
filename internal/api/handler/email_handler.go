package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/opentalent/recruitment-platform/internal/api/metrics"
	"github.com/opentalent/recruitment-platform/internal/core/domain"
	"github.com/opentalent/recruitment-platform/internal/core/ports"
)

// EmailHandler exposes the OTP flow, password reset, and templated
// transactional mail. SendOTP and RequestReset are enumeration-resistant:
// they answer identically whether or not the address is registered.
type EmailHandler struct {
	emails  ports.EmailService
	baseURL string
	logger  zerolog.Logger
}

func NewEmailHandler(emails ports.EmailService, baseURL string, logger zerolog.Logger) *EmailHandler {
	return &EmailHandler{emails: emails, baseURL: baseURL, logger: logger}
}

type emailRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type verifyOTPRequest struct {
	Email string `json:"email" validate:"required,email"`
	OTP   string `json:"otp" validate:"required,len=6"`
}

type sendMailRequest struct {
	To      []string `json:"to" validate:"required,min=1,dive,email"`
	CC      []string `json:"cc" validate:"omitempty,dive,email"`
	BCC     []string `json:"bcc" validate:"omitempty,dive,email"`
	Subject string   `json:"subject" validate:"required"`
	Text    string   `json:"text"`
	HTML    string   `json:"html"`
}

type jobSeekerMailRequest struct {
	To           string   `json:"to" validate:"required,email"`
	Subject      string   `json:"subject" validate:"required"`
	Name         string   `json:"name" validate:"required"`
	Skills       []string `json:"skills"`
	ContactEmail string   `json:"contact_email" validate:"omitempty,email"`
	Details      string   `json:"details"`
}

type jobOpportunityMailRequest struct {
	To           string `json:"to" validate:"required,email"`
	Subject      string `json:"subject" validate:"required"`
	JobTitle     string `json:"job_title" validate:"required"`
	Company      string `json:"company" validate:"required"`
	Location     string `json:"location"`
	Description  string `json:"description"`
	ContactEmail string `json:"contact_email" validate:"omitempty,email"`
}

type supportRequest struct {
	To        string `json:"to" validate:"required,email"`
	Subject   string `json:"subject" validate:"required"`
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name"`
	Email     string `json:"email" validate:"required,email"`
	Company   string `json:"company"`
	IssueType string `json:"issue_type"`
	Priority  string `json:"priority" validate:"omitempty,oneof=low medium high"`
	Message   string `json:"message" validate:"required"`
}

// SendOTP mails a verification code. The response never reveals whether
// the address is registered.
//
// @Summary      Send a verification code
// @Tags         email-auth
// @Accept       json
// @Produce      json
// @Param        body  body      emailRequest  true  "Target address"
// @Success      200   {object}  map[string]string
// @Failure      400   {object}  map[string]string
// @Router       /email-auth/send-otp [post]
func (h *EmailHandler) SendOTP(c echo.Context) error {
	var req emailRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	if err := h.emails.SendOTP(c.Request().Context(), req.Email); err != nil {
		// Delivery trouble is logged, not surfaced: the success shape is
		// identical either way.
		h.logger.Error().Err(err).Msg("otp delivery failed")
	} else {
		metrics.EmailsSentTotal.WithLabelValues("otp").Inc()
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "verification code sent"})
}

// VerifyOTP checks and consumes a verification code.
//
// @Summary      Verify a code
// @Tags         email-auth
// @Accept       json
// @Produce      json
// @Param        body  body      verifyOTPRequest  true  "Address and code"
// @Success      200   {object}  map[string]bool
// @Failure      400   {object}  map[string]string
// @Router       /email-auth/verify-otp [post]
func (h *EmailHandler) VerifyOTP(c echo.Context) error {
	var req verifyOTPRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	valid, err := h.emails.VerifyOTP(c.Request().Context(), req.Email, req.OTP)
	if err != nil {
		return err
	}

	if valid {
		metrics.OTPVerificationsTotal.WithLabelValues("valid").Inc()
	} else {
		metrics.OTPVerificationsTotal.WithLabelValues("invalid").Inc()
	}
	return c.JSON(http.StatusOK, map[string]bool{"valid": valid})
}

// RequestReset mails a password-reset link. Enumeration-resistant like
// SendOTP.
//
// @Summary      Request a password reset
// @Tags         email-auth
// @Accept       json
// @Produce      json
// @Param        body  body      emailRequest  true  "Target address"
// @Success      200   {object}  map[string]string
// @Failure      400   {object}  map[string]string
// @Router       /email-auth/request-reset [post]
func (h *EmailHandler) RequestReset(c echo.Context) error {
	var req emailRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	if err := h.emails.RequestPasswordReset(c.Request().Context(), req.Email, h.baseURL); err != nil {
		if !errors.Is(err, domain.ErrUserNotFound) {
			h.logger.Error().Err(err).Msg("reset mail delivery failed")
		}
	} else {
		metrics.EmailsSentTotal.WithLabelValues("password_reset").Inc()
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "reset link sent"})
}

// SendWelcome mails the onboarding message to a registered address.
//
// @Summary      Send the welcome mail
// @Tags         email-auth
// @Accept       json
// @Produce      json
// @Param        body  body      emailRequest  true  "Target address"
// @Success      200   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /email-auth/welcome [post]
func (h *EmailHandler) SendWelcome(c echo.Context) error {
	var req emailRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	if err := h.emails.SendWelcome(c.Request().Context(), req.Email); err != nil {
		return err
	}

	metrics.EmailsSentTotal.WithLabelValues("welcome").Inc()
	return c.JSON(http.StatusOK, map[string]string{"message": "welcome email sent"})
}

// Send delivers an arbitrary message. Authenticated only.
//
// @Summary      Send a custom mail
// @Tags         emails
// @Accept       json
// @Produce      json
// @Param        body  body      sendMailRequest  true  "Message"
// @Success      200   {object}  map[string]string
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /emails/send [post]
func (h *EmailHandler) Send(c echo.Context) error {
	var req sendMailRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	err := h.emails.Send(c.Request().Context(), ports.Mail{
		To:      req.To,
		CC:      req.CC,
		BCC:     req.BCC,
		Subject: req.Subject,
		Text:    req.Text,
		HTML:    req.HTML,
	})
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	metrics.EmailsSentTotal.WithLabelValues("generic").Inc()
	return c.JSON(http.StatusOK, map[string]string{"message": "email sent"})
}

// SendJobSeeker shares a candidate profile by mail.
//
// @Summary      Mail a candidate profile
// @Tags         emails
// @Accept       json
// @Produce      json
// @Param        body  body      jobSeekerMailRequest  true  "Profile mail"
// @Success      200   {object}  map[string]string
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /emails/job-seeker [post]
func (h *EmailHandler) SendJobSeeker(c echo.Context) error {
	var req jobSeekerMailRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	err := h.emails.SendJobSeekerProfile(c.Request().Context(), ports.JobSeekerMail{
		To:           req.To,
		Subject:      req.Subject,
		Name:         req.Name,
		Skills:       req.Skills,
		ContactEmail: req.ContactEmail,
		Details:      req.Details,
	})
	if err != nil {
		return err
	}

	metrics.EmailsSentTotal.WithLabelValues("job_seeker").Inc()
	return c.JSON(http.StatusOK, map[string]string{"message": "email sent"})
}

// SendJobOpportunity shares a job posting by mail.
//
// @Summary      Mail a job opportunity
// @Tags         emails
// @Accept       json
// @Produce      json
// @Param        body  body      jobOpportunityMailRequest  true  "Opportunity mail"
// @Success      200   {object}  map[string]string
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /emails/job-opportunity [post]
func (h *EmailHandler) SendJobOpportunity(c echo.Context) error {
	var req jobOpportunityMailRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	err := h.emails.SendJobOpportunity(c.Request().Context(), ports.JobOpportunityMail{
		To:           req.To,
		Subject:      req.Subject,
		JobTitle:     req.JobTitle,
		Company:      req.Company,
		Location:     req.Location,
		Description:  req.Description,
		ContactEmail: req.ContactEmail,
	})
	if err != nil {
		return err
	}

	metrics.EmailsSentTotal.WithLabelValues("job_opportunity").Inc()
	return c.JSON(http.StatusOK, map[string]string{"message": "email sent"})
}

// SendSupport forwards a support-form submission. Public: visitors without
// accounts can reach support too.
//
// @Summary      Send a support request
// @Tags         emails
// @Accept       json
// @Produce      json
// @Param        body  body      supportRequest  true  "Support form"
// @Success      200   {object}  map[string]string
// @Failure      400   {object}  map[string]string
// @Router       /emails/support [post]
func (h *EmailHandler) SendSupport(c echo.Context) error {
	var req supportRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	err := h.emails.SendSupportRequest(c.Request().Context(), ports.SupportRequest{
		To:        req.To,
		Subject:   req.Subject,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Company:   req.Company,
		IssueType: req.IssueType,
		Priority:  req.Priority,
		Message:   req.Message,
	})
	if err != nil {
		return err
	}

	metrics.EmailsSentTotal.WithLabelValues("support").Inc()
	return c.JSON(http.StatusOK, map[string]string{"message": "support request sent"})
}
