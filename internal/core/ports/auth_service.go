package ports

import (
	"context"

	"github.com/opentalent/recruitment-platform/internal/core/domain"
)

// RegisterInput is the material for a new member account. All registered
// users start as members (consultants).
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Phone    string
	Bio      string
	Company  string
	Position string
	Location string
}

type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*domain.User, error)
	ChangePassword(ctx context.Context, user *domain.User, current, next string) error
	Deactivate(ctx context.Context, userID int64) error
}
