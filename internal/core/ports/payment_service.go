package ports

import "context"

// CheckoutInput starts a checkout for a subscription plan.
type CheckoutInput struct {
	UserID int64
	Email  string
	Plan   string
}

// CheckoutStatus is returned to the frontend polling for payment outcome.
type CheckoutStatus struct {
	ID            string `json:"id"`
	Status        string `json:"status"`
	CustomerEmail string `json:"customer_email,omitempty"`
}

type PaymentService interface {
	Checkout(ctx context.Context, input CheckoutInput) (string, error)
	Status(ctx context.Context, sessionID string) (*CheckoutStatus, error)
}
