package ports

import (
	"context"

	"github.com/opentalent/recruitment-platform/internal/core/domain"
)

// JobSeekerSearch is the conjunction of candidate search predicates.
type JobSeekerSearch struct {
	ConsultantID  *int64
	Skills        []string
	Location      string
	MinExperience *int
	Limit         int
	Offset        int
}

// JobSeekerUpdate carries the mutable candidate fields; nil means unchanged.
type JobSeekerUpdate struct {
	Name       *string
	Phone      *string
	Resume     *string
	Skills     []string
	Experience *int
	Education  *string
	Location   *string
	About      *string
}

type JobSeekerRepository interface {
	Create(ctx context.Context, seeker *domain.JobSeeker) (*domain.JobSeeker, error)
	FindByID(ctx context.Context, id string) (*domain.JobSeeker, error)
	ListByConsultant(ctx context.Context, consultantID int64, limit, offset int) ([]domain.JobSeeker, error)
	Search(ctx context.Context, params JobSeekerSearch) ([]domain.JobSeeker, error)
	Update(ctx context.Context, id string, update JobSeekerUpdate) (*domain.JobSeeker, error)
	Delete(ctx context.Context, id string) error
}
