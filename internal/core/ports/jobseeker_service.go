package ports

import (
	"context"

	"github.com/opentalent/recruitment-platform/internal/core/domain"
)

type CreateJobSeekerInput struct {
	ConsultantID int64
	Name         string
	Email        string
	Phone        string
	Resume       string
	Skills       []string
	Experience   int
	Education    string
	Location     string
	About        string
}

type JobSeekerService interface {
	Create(ctx context.Context, input CreateJobSeekerInput) (*domain.JobSeeker, error)
	Get(ctx context.Context, id string) (*domain.JobSeeker, error)
	ForConsultant(ctx context.Context, consultantID int64, limit, offset int) ([]domain.JobSeeker, error)
	Search(ctx context.Context, params JobSeekerSearch) ([]domain.JobSeeker, error)
	Update(ctx context.Context, id string, update JobSeekerUpdate) (*domain.JobSeeker, error)
	Delete(ctx context.Context, id string) error
}
