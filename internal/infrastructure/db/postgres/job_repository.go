package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/opentalent/recruitment-platform/internal/core/domain"
	"github.com/opentalent/recruitment-platform/internal/core/ports"
)

// jobRecord is the GORM mapping for job postings. Skills live in a jsonb
// column so skill search can use the @> containment operator.
type jobRecord struct {
	ID          string   `gorm:"primaryKey"`
	Title       string   `gorm:"not null;index"`
	Company     string   `gorm:"not null;index"`
	Location    string   `gorm:"index"`
	Description string   `gorm:"type:text"`
	Skills      []string `gorm:"type:jsonb;serializer:json"`
	Salary      int
	Type        string
	ContactMail string
	Status      string `gorm:"not null;index;default:'active'"`
	PostedAt    time.Time
	Deadline    time.Time
}

func (jobRecord) TableName() string { return "jobs" }

func (r jobRecord) toDomain() *domain.Job {
	return &domain.Job{
		ID:          r.ID,
		Title:       r.Title,
		Company:     r.Company,
		Location:    r.Location,
		Description: r.Description,
		Skills:      r.Skills,
		Salary:      r.Salary,
		Type:        r.Type,
		ContactMail: r.ContactMail,
		Status:      domain.JobStatus(r.Status),
		PostedAt:    r.PostedAt,
		Deadline:    r.Deadline,
	}
}

// JobRepository implements ports.JobRepository on Postgres.
type JobRepository struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) ports.JobRepository {
	return &JobRepository{db: db}
}

func (r *JobRepository) Create(ctx context.Context, job *domain.Job) (*domain.Job, error) {
	record := jobRecord{
		ID:          job.ID,
		Title:       job.Title,
		Company:     job.Company,
		Location:    job.Location,
		Description: job.Description,
		Skills:      job.Skills,
		Salary:      job.Salary,
		Type:        job.Type,
		ContactMail: job.ContactMail,
		Status:      string(job.Status),
		PostedAt:    job.PostedAt,
		Deadline:    job.Deadline,
	}
	if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
		return nil, fmt.Errorf("create job: %w", err)
	}
	return record.toDomain(), nil
}

func (r *JobRepository) FindByID(ctx context.Context, id string) (*domain.Job, error) {
	var record jobRecord
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrJobNotFound
		}
		return nil, fmt.Errorf("find job %s: %w", id, err)
	}
	return record.toDomain(), nil
}

func (r *JobRepository) ListActive(ctx context.Context, limit, offset int) ([]domain.Job, error) {
	var records []jobRecord
	err := r.db.WithContext(ctx).
		Where("status = ?", string(domain.JobActive)).
		Order("posted_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("list active jobs: %w", err)
	}
	return toJobs(records), nil
}

func (r *JobRepository) ListAll(ctx context.Context, limit, offset int) ([]domain.Job, error) {
	var records []jobRecord
	err := r.db.WithContext(ctx).
		Order("posted_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	return toJobs(records), nil
}

func (r *JobRepository) Search(ctx context.Context, params ports.JobSearch) ([]domain.Job, error) {
	query := r.db.WithContext(ctx).Model(&jobRecord{}).
		Where("status = ?", string(domain.JobActive))

	if params.Title != "" {
		query = query.Where("title ILIKE ?", "%"+params.Title+"%")
	}
	if params.Company != "" {
		query = query.Where("company ILIKE ?", "%"+params.Company+"%")
	}
	if params.Location != "" {
		query = query.Where("location ILIKE ?", "%"+params.Location+"%")
	}
	if params.Type != "" {
		query = query.Where("type = ?", params.Type)
	}
	if len(params.Skills) > 0 {
		needle, err := json.Marshal(params.Skills)
		if err != nil {
			return nil, fmt.Errorf("encode skills filter: %w", err)
		}
		query = query.Where("skills @> ?::jsonb", string(needle))
	}

	var records []jobRecord
	err := query.
		Order("posted_at DESC").
		Limit(params.Limit).
		Offset(params.Offset).
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("search jobs: %w", err)
	}
	return toJobs(records), nil
}

func (r *JobRepository) Update(ctx context.Context, id string, update ports.JobUpdate) (*domain.Job, error) {
	changes := map[string]any{}
	if update.Title != nil {
		changes["title"] = *update.Title
	}
	if update.Company != nil {
		changes["company"] = *update.Company
	}
	if update.Location != nil {
		changes["location"] = *update.Location
	}
	if update.Description != nil {
		changes["description"] = *update.Description
	}
	if update.Skills != nil {
		encoded, err := json.Marshal(update.Skills)
		if err != nil {
			return nil, fmt.Errorf("encode skills: %w", err)
		}
		changes["skills"] = string(encoded)
	}
	if update.Salary != nil {
		changes["salary"] = *update.Salary
	}
	if update.Type != nil {
		changes["type"] = *update.Type
	}
	if update.Deadline != nil {
		changes["deadline"] = *update.Deadline
	}

	if len(changes) > 0 {
		result := r.db.WithContext(ctx).Model(&jobRecord{}).Where("id = ?", id).Updates(changes)
		if result.Error != nil {
			return nil, fmt.Errorf("update job %s: %w", id, result.Error)
		}
		if result.RowsAffected == 0 {
			return nil, domain.ErrJobNotFound
		}
	}
	return r.FindByID(ctx, id)
}

func (r *JobRepository) SetStatus(ctx context.Context, id string, status domain.JobStatus) (*domain.Job, error) {
	result := r.db.WithContext(ctx).Model(&jobRecord{}).Where("id = ?", id).
		Update("status", string(status))
	if result.Error != nil {
		return nil, fmt.Errorf("set job status %s: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, domain.ErrJobNotFound
	}
	return r.FindByID(ctx, id)
}

func toJobs(records []jobRecord) []domain.Job {
	jobs := make([]domain.Job, 0, len(records))
	for _, record := range records {
		jobs = append(jobs, *record.toDomain())
	}
	return jobs
}
