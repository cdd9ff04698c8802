package domain

import (
	"errors"
	"time"
)

// Role is the closed set of authorization roles. Every member is a
// consultant; "member" is the canonical spelling used throughout.
type Role string

const (
	RoleMember Role = "member"
	RoleAdmin  Role = "admin"
)

// Valid reports whether r is one of the enumerated roles.
func (r Role) Valid() bool {
	return r == RoleMember || r == RoleAdmin
}

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrEmailInUse = errors.New("email already in use")
var ErrUserNotFound = errors.New("user not found")
var ErrForbidden = errors.New("access forbidden")

// User models a principal: the identity resolved from a session token.
// A non-nil DeletedAt marks the account soft-deleted; soft-deleted users
// never resolve from lookups.
type User struct {
	ID           int64      `json:"id"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	Role         Role       `json:"role"`
	IsPaid       bool       `json:"is_paid"`
	PaidUntil    *time.Time `json:"expiry_date,omitempty"`

	// CheckoutRef holds the Stripe checkout session currently pending for
	// this user. Cleared once the payment is confirmed.
	CheckoutRef string `json:"-"`

	Phone    string `json:"phone,omitempty"`
	Avatar   string `json:"avatar,omitempty"`
	Bio      string `json:"bio,omitempty"`
	Company  string `json:"company,omitempty"`
	Position string `json:"position,omitempty"`
	Location string `json:"location,omitempty"`

	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"-"`
}
