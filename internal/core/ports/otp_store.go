package ports

import "context"

// OTPStore keeps one short-lived verification code per email. Entries
// expire on their own; Get returns "" for a missing or expired code, so
// callers never observe a stale entry.
type OTPStore interface {
	Set(ctx context.Context, email, code string) error
	Get(ctx context.Context, email string) (string, error)
	Delete(ctx context.Context, email string) error
}
