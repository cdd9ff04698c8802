package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/opentalent/recruitment-platform/internal/core/domain"
	"github.com/opentalent/recruitment-platform/internal/core/ports"
)

type JobService struct {
	jobs   ports.JobRepository
	logger zerolog.Logger
}

func NewJobService(jobs ports.JobRepository, logger zerolog.Logger) *JobService {
	return &JobService{jobs: jobs, logger: logger}
}

func (s *JobService) Create(ctx context.Context, input ports.CreateJobInput) (*domain.Job, error) {
	job := &domain.Job{
		ID:          uuid.NewString(),
		Title:       input.Title,
		Company:     input.Company,
		Location:    input.Location,
		Description: input.Description,
		Skills:      input.Skills,
		Salary:      input.Salary,
		Type:        input.Type,
		ContactMail: input.ContactMail,
		Status:      domain.JobActive,
		PostedAt:    time.Now().UTC(),
		Deadline:    input.Deadline,
	}

	created, err := s.jobs.Create(ctx, job)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create job")
		return nil, err
	}

	s.logger.Info().Str("job_id", created.ID).Str("company", created.Company).Msg("job posted")
	return created, nil
}

func (s *JobService) Get(ctx context.Context, id string) (*domain.Job, error) {
	return s.jobs.FindByID(ctx, id)
}

func (s *JobService) Active(ctx context.Context, limit, offset int) ([]domain.Job, error) {
	return s.jobs.ListActive(ctx, clampLimit(limit), offset)
}

func (s *JobService) All(ctx context.Context, limit, offset int) ([]domain.Job, error) {
	return s.jobs.ListAll(ctx, clampLimit(limit), offset)
}

func (s *JobService) Search(ctx context.Context, params ports.JobSearch) ([]domain.Job, error) {
	params.Limit = clampLimit(params.Limit)
	return s.jobs.Search(ctx, params)
}

func (s *JobService) Update(ctx context.Context, id string, update ports.JobUpdate) (*domain.Job, error) {
	return s.jobs.Update(ctx, id, update)
}

func (s *JobService) Close(ctx context.Context, id string) (*domain.Job, error) {
	job, err := s.jobs.SetStatus(ctx, id, domain.JobClosed)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("job_id", id).Msg("job closed")
	return job, nil
}
