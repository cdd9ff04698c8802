package domain

import "errors"

// Subscription plans offered at checkout.
const (
	PlanMonthly = "monthly"
	PlanYearly  = "yearly"
)

var ErrInvalidPlan = errors.New("invalid plan")
var ErrCheckoutNotFound = errors.New("checkout session not found")
