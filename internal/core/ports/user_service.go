package ports

import (
	"context"
	"time"

	"github.com/opentalent/recruitment-platform/internal/core/domain"
)

type UserService interface {
	UpdateProfile(ctx context.Context, userID int64, update ProfileUpdate) (*domain.User, error)
	List(ctx context.Context, limit, offset int) ([]domain.User, error)
	Consultants(ctx context.Context, limit, offset int) ([]domain.User, error)
	ConsultantByID(ctx context.Context, id int64) (*domain.User, error)
	SetPaymentStatus(ctx context.Context, userID int64, isPaid bool, paidUntil *time.Time) (*domain.User, error)
}
