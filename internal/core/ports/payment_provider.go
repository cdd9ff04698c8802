package ports

import "context"

// CheckoutParams describes a one-off checkout session to create with the
// payment provider.
type CheckoutParams struct {
	UserID      int64
	Email       string
	ProductName string
	Description string
	AmountCents int64
	Currency    string
	SuccessURL  string
	CancelURL   string
	Metadata    map[string]string
}

// CheckoutSession is the provider-side view of a checkout.
type CheckoutSession struct {
	ID            string
	PaymentStatus string
	CustomerEmail string
	Metadata      map[string]string
}

type PaymentProvider interface {
	CreateCheckout(ctx context.Context, params CheckoutParams) (*CheckoutSession, error)
	GetCheckout(ctx context.Context, sessionID string) (*CheckoutSession, error)
}
