package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/opentalent/recruitment-platform/internal/core/domain"
	"github.com/opentalent/recruitment-platform/internal/core/ports"
)

// UserService covers profile and account administration beyond the
// credential flows owned by AuthService.
type UserService struct {
	users  ports.UserRepository
	logger zerolog.Logger
}

func NewUserService(users ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{users: users, logger: logger}
}

func (s *UserService) UpdateProfile(ctx context.Context, userID int64, update ports.ProfileUpdate) (*domain.User, error) {
	return s.users.UpdateProfile(ctx, userID, update)
}

func (s *UserService) List(ctx context.Context, limit, offset int) ([]domain.User, error) {
	return s.users.List(ctx, clampLimit(limit), offset)
}

// Consultants lists active members; every member is a consultant.
func (s *UserService) Consultants(ctx context.Context, limit, offset int) ([]domain.User, error) {
	return s.users.ListByRole(ctx, domain.RoleMember, clampLimit(limit), offset)
}

func (s *UserService) ConsultantByID(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user.Role != domain.RoleMember {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}

func (s *UserService) SetPaymentStatus(ctx context.Context, userID int64, isPaid bool, paidUntil *time.Time) (*domain.User, error) {
	user, err := s.users.SetPaymentStatus(ctx, userID, isPaid, paidUntil)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Int64("user_id", userID).Bool("is_paid", isPaid).Msg("payment status updated")
	return user, nil
}

const defaultLimit = 50

func clampLimit(limit int) int {
	if limit <= 0 {
		return defaultLimit
	}
	return limit
}
