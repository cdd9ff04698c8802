package ports

import (
	"context"
	"time"

	"github.com/opentalent/recruitment-platform/internal/core/domain"
)

// JobSearch is the conjunction of search predicates over active jobs.
// Zero values are skipped when composing the query.
type JobSearch struct {
	Title    string
	Company  string
	Location string
	Skills   []string
	Type     string
	Limit    int
	Offset   int
}

// JobUpdate carries the mutable job fields; nil means unchanged.
type JobUpdate struct {
	Title       *string
	Company     *string
	Location    *string
	Description *string
	Skills      []string
	Salary      *int
	Type        *string
	Deadline    *time.Time
}

type JobRepository interface {
	Create(ctx context.Context, job *domain.Job) (*domain.Job, error)
	FindByID(ctx context.Context, id string) (*domain.Job, error)
	ListActive(ctx context.Context, limit, offset int) ([]domain.Job, error)
	ListAll(ctx context.Context, limit, offset int) ([]domain.Job, error)
	Search(ctx context.Context, params JobSearch) ([]domain.Job, error)
	Update(ctx context.Context, id string, update JobUpdate) (*domain.Job, error)
	SetStatus(ctx context.Context, id string, status domain.JobStatus) (*domain.Job, error)
}
