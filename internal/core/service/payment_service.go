package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/opentalent/recruitment-platform/internal/core/domain"
	"github.com/opentalent/recruitment-platform/internal/core/ports"
)

// Plan pricing in cents.
const (
	monthlyAmount = 49 * 100
	yearlyAmount  = 499 * 100
)

// PaymentService creates checkout sessions with the payment provider and
// reconciles their outcome onto the user record.
type PaymentService struct {
	provider ports.PaymentProvider
	users    ports.UserRepository
	baseURL  string
	logger   zerolog.Logger
}

func NewPaymentService(provider ports.PaymentProvider, users ports.UserRepository, baseURL string, logger zerolog.Logger) *PaymentService {
	return &PaymentService{provider: provider, users: users, baseURL: baseURL, logger: logger}
}

func (s *PaymentService) Checkout(ctx context.Context, input ports.CheckoutInput) (string, error) {
	var amount int64
	var description string
	switch input.Plan {
	case domain.PlanMonthly:
		amount = monthlyAmount
		description = "Monthly subscription with full access"
	case domain.PlanYearly:
		amount = yearlyAmount
		description = "Yearly subscription with full access (15% savings)"
	default:
		return "", domain.ErrInvalidPlan
	}

	checkout, err := s.provider.CreateCheckout(ctx, ports.CheckoutParams{
		UserID:      input.UserID,
		Email:       input.Email,
		ProductName: fmt.Sprintf("%s Subscription", titleCase(input.Plan)),
		Description: description,
		AmountCents: amount,
		Currency:    "usd",
		SuccessURL:  s.baseURL + "/pricing",
		CancelURL:   s.baseURL + "/pricing",
		Metadata: map[string]string{
			"user_id": strconv.FormatInt(input.UserID, 10),
			"plan":    input.Plan,
		},
	})
	if err != nil {
		s.logger.Error().Err(err).Int64("user_id", input.UserID).Msg("checkout session creation failed")
		return "", err
	}

	// Remember the pending session on the user so it can be reconciled and
	// cleared once the payment lands.
	if err := s.users.SetCheckoutRef(ctx, input.UserID, checkout.ID); err != nil {
		s.logger.Error().Err(err).Int64("user_id", input.UserID).Msg("failed to store checkout ref")
	}

	s.logger.Info().Int64("user_id", input.UserID).Str("plan", input.Plan).Str("session_id", checkout.ID).Msg("checkout session created")
	return checkout.ID, nil
}

// Status looks up a checkout session and, when it has been paid, marks the
// user as paid and clears the transient checkout reference.
func (s *PaymentService) Status(ctx context.Context, sessionID string) (*ports.CheckoutStatus, error) {
	checkout, err := s.provider.GetCheckout(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if checkout.PaymentStatus == "paid" {
		s.applyPayment(ctx, checkout)
	}

	return &ports.CheckoutStatus{
		ID:            checkout.ID,
		Status:        checkout.PaymentStatus,
		CustomerEmail: checkout.CustomerEmail,
	}, nil
}

func (s *PaymentService) applyPayment(ctx context.Context, checkout *ports.CheckoutSession) {
	userID, err := strconv.ParseInt(checkout.Metadata["user_id"], 10, 64)
	if err != nil {
		s.logger.Error().Str("session_id", checkout.ID).Msg("paid session without a user reference")
		return
	}

	until := time.Now().UTC().AddDate(0, 1, 0)
	if checkout.Metadata["plan"] == domain.PlanYearly {
		until = time.Now().UTC().AddDate(1, 0, 0)
	}

	if _, err := s.users.SetPaymentStatus(ctx, userID, true, &until); err != nil {
		s.logger.Error().Err(err).Int64("user_id", userID).Msg("failed to mark user as paid")
		return
	}
	if err := s.users.SetCheckoutRef(ctx, userID, ""); err != nil {
		s.logger.Error().Err(err).Int64("user_id", userID).Msg("failed to clear checkout ref")
	}
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}
