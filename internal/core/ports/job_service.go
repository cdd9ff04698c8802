package ports

import (
	"context"
	"time"

	"github.com/opentalent/recruitment-platform/internal/core/domain"
)

type CreateJobInput struct {
	Title       string
	Company     string
	Location    string
	Description string
	Skills      []string
	Salary      int
	Type        string
	ContactMail string
	Deadline    time.Time
}

type JobService interface {
	Create(ctx context.Context, input CreateJobInput) (*domain.Job, error)
	Get(ctx context.Context, id string) (*domain.Job, error)
	Active(ctx context.Context, limit, offset int) ([]domain.Job, error)
	All(ctx context.Context, limit, offset int) ([]domain.Job, error)
	Search(ctx context.Context, params JobSearch) ([]domain.Job, error)
	Update(ctx context.Context, id string, update JobUpdate) (*domain.Job, error)
	Close(ctx context.Context, id string) (*domain.Job, error)
}
