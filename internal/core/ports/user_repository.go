package ports

import (
	"context"
	"time"

	"github.com/opentalent/recruitment-platform/internal/core/domain"
)

// ProfileUpdate carries the mutable profile fields. Nil pointers mean
// "leave unchanged".
type ProfileUpdate struct {
	Name     *string
	Phone    *string
	Avatar   *string
	Bio      *string
	Company  *string
	Position *string
	Location *string
}

// UserRepository defines principal persistence. Every lookup excludes
// soft-deleted rows; a valid token for a deleted account must not resolve.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	UpdateProfile(ctx context.Context, id int64, update ProfileUpdate) (*domain.User, error)
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
	SoftDelete(ctx context.Context, id int64) error
	List(ctx context.Context, limit, offset int) ([]domain.User, error)
	ListByRole(ctx context.Context, role domain.Role, limit, offset int) ([]domain.User, error)
	SetPaymentStatus(ctx context.Context, id int64, isPaid bool, paidUntil *time.Time) (*domain.User, error)
	SetCheckoutRef(ctx context.Context, id int64, ref string) error
}
