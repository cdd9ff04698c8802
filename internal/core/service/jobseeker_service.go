package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/opentalent/recruitment-platform/internal/core/domain"
	"github.com/opentalent/recruitment-platform/internal/core/ports"
)

type JobSeekerService struct {
	seekers ports.JobSeekerRepository
	users   ports.UserRepository
	logger  zerolog.Logger
}

func NewJobSeekerService(seekers ports.JobSeekerRepository, users ports.UserRepository, logger zerolog.Logger) *JobSeekerService {
	return &JobSeekerService{seekers: seekers, users: users, logger: logger}
}

func (s *JobSeekerService) Create(ctx context.Context, input ports.CreateJobSeekerInput) (*domain.JobSeeker, error) {
	// The owning consultant must exist and be active.
	if _, err := s.users.FindByID(ctx, input.ConsultantID); err != nil {
		return nil, err
	}

	seeker := &domain.JobSeeker{
		ID:           uuid.NewString(),
		ConsultantID: input.ConsultantID,
		Name:         input.Name,
		Email:        input.Email,
		Phone:        input.Phone,
		Resume:       input.Resume,
		Skills:       input.Skills,
		Experience:   input.Experience,
		Education:    input.Education,
		Location:     input.Location,
		About:        input.About,
		AddedAt:      time.Now().UTC(),
	}

	created, err := s.seekers.Create(ctx, seeker)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create job seeker")
		return nil, err
	}

	s.logger.Info().Str("job_seeker_id", created.ID).Int64("consultant_id", input.ConsultantID).Msg("job seeker added")
	return created, nil
}

func (s *JobSeekerService) Get(ctx context.Context, id string) (*domain.JobSeeker, error) {
	return s.seekers.FindByID(ctx, id)
}

func (s *JobSeekerService) ForConsultant(ctx context.Context, consultantID int64, limit, offset int) ([]domain.JobSeeker, error) {
	if _, err := s.users.FindByID(ctx, consultantID); err != nil {
		return nil, err
	}
	return s.seekers.ListByConsultant(ctx, consultantID, clampLimit(limit), offset)
}

func (s *JobSeekerService) Search(ctx context.Context, params ports.JobSeekerSearch) ([]domain.JobSeeker, error) {
	params.Limit = clampLimit(params.Limit)
	return s.seekers.Search(ctx, params)
}

func (s *JobSeekerService) Update(ctx context.Context, id string, update ports.JobSeekerUpdate) (*domain.JobSeeker, error) {
	return s.seekers.Update(ctx, id, update)
}

func (s *JobSeekerService) Delete(ctx context.Context, id string) error {
	if _, err := s.seekers.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.seekers.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("job_seeker_id", id).Msg("job seeker deleted")
	return nil
}
