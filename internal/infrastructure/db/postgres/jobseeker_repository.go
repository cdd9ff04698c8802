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

type jobSeekerRecord struct {
	ID           string   `gorm:"primaryKey"`
	ConsultantID int64    `gorm:"not null;index"`
	Name         string   `gorm:"not null"`
	Email        string   `gorm:"uniqueIndex;not null"`
	Phone        string   `gorm:"uniqueIndex"`
	Resume       string
	Skills       []string `gorm:"type:jsonb;serializer:json"`
	Experience   int
	Education    string
	Location     string `gorm:"index"`
	About        string `gorm:"type:text"`
	AddedAt      time.Time
}

func (jobSeekerRecord) TableName() string { return "job_seekers" }

func (r jobSeekerRecord) toDomain() *domain.JobSeeker {
	return &domain.JobSeeker{
		ID:           r.ID,
		ConsultantID: r.ConsultantID,
		Name:         r.Name,
		Email:        r.Email,
		Phone:        r.Phone,
		Resume:       r.Resume,
		Skills:       r.Skills,
		Experience:   r.Experience,
		Education:    r.Education,
		Location:     r.Location,
		About:        r.About,
		AddedAt:      r.AddedAt,
	}
}

// JobSeekerRepository implements ports.JobSeekerRepository on Postgres.
type JobSeekerRepository struct {
	db *gorm.DB
}

func NewJobSeekerRepository(db *gorm.DB) ports.JobSeekerRepository {
	return &JobSeekerRepository{db: db}
}

func (r *JobSeekerRepository) Create(ctx context.Context, seeker *domain.JobSeeker) (*domain.JobSeeker, error) {
	record := jobSeekerRecord{
		ID:           seeker.ID,
		ConsultantID: seeker.ConsultantID,
		Name:         seeker.Name,
		Email:        seeker.Email,
		Phone:        seeker.Phone,
		Resume:       seeker.Resume,
		Skills:       seeker.Skills,
		Experience:   seeker.Experience,
		Education:    seeker.Education,
		Location:     seeker.Location,
		About:        seeker.About,
		AddedAt:      seeker.AddedAt,
	}
	if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
		return nil, fmt.Errorf("create job seeker: %w", err)
	}
	return record.toDomain(), nil
}

func (r *JobSeekerRepository) FindByID(ctx context.Context, id string) (*domain.JobSeeker, error) {
	var record jobSeekerRecord
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrJobSeekerNotFound
		}
		return nil, fmt.Errorf("find job seeker %s: %w", id, err)
	}
	return record.toDomain(), nil
}

func (r *JobSeekerRepository) ListByConsultant(ctx context.Context, consultantID int64, limit, offset int) ([]domain.JobSeeker, error) {
	var records []jobSeekerRecord
	err := r.db.WithContext(ctx).
		Where("consultant_id = ?", consultantID).
		Order("added_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("list job seekers: %w", err)
	}
	return toJobSeekers(records), nil
}

func (r *JobSeekerRepository) Search(ctx context.Context, params ports.JobSeekerSearch) ([]domain.JobSeeker, error) {
	query := r.db.WithContext(ctx).Model(&jobSeekerRecord{})

	if params.ConsultantID != nil {
		query = query.Where("consultant_id = ?", *params.ConsultantID)
	}
	if params.Location != "" {
		query = query.Where("location ILIKE ?", "%"+params.Location+"%")
	}
	if params.MinExperience != nil {
		query = query.Where("experience >= ?", *params.MinExperience)
	}
	if len(params.Skills) > 0 {
		needle, err := json.Marshal(params.Skills)
		if err != nil {
			return nil, fmt.Errorf("encode skills filter: %w", err)
		}
		query = query.Where("skills @> ?::jsonb", string(needle))
	}

	var records []jobSeekerRecord
	err := query.
		Order("added_at DESC").
		Limit(params.Limit).
		Offset(params.Offset).
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("search job seekers: %w", err)
	}
	return toJobSeekers(records), nil
}

func (r *JobSeekerRepository) Update(ctx context.Context, id string, update ports.JobSeekerUpdate) (*domain.JobSeeker, error) {
	changes := map[string]any{}
	if update.Name != nil {
		changes["name"] = *update.Name
	}
	if update.Phone != nil {
		changes["phone"] = *update.Phone
	}
	if update.Resume != nil {
		changes["resume"] = *update.Resume
	}
	if update.Skills != nil {
		encoded, err := json.Marshal(update.Skills)
		if err != nil {
			return nil, fmt.Errorf("encode skills: %w", err)
		}
		changes["skills"] = string(encoded)
	}
	if update.Experience != nil {
		changes["experience"] = *update.Experience
	}
	if update.Education != nil {
		changes["education"] = *update.Education
	}
	if update.Location != nil {
		changes["location"] = *update.Location
	}
	if update.About != nil {
		changes["about"] = *update.About
	}

	if len(changes) > 0 {
		result := r.db.WithContext(ctx).Model(&jobSeekerRecord{}).Where("id = ?", id).Updates(changes)
		if result.Error != nil {
			return nil, fmt.Errorf("update job seeker %s: %w", id, result.Error)
		}
		if result.RowsAffected == 0 {
			return nil, domain.ErrJobSeekerNotFound
		}
	}
	return r.FindByID(ctx, id)
}

func (r *JobSeekerRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&jobSeekerRecord{})
	if result.Error != nil {
		return fmt.Errorf("delete job seeker %s: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrJobSeekerNotFound
	}
	return nil
}

func toJobSeekers(records []jobSeekerRecord) []domain.JobSeeker {
	seekers := make([]domain.JobSeeker, 0, len(records))
	for _, record := range records {
		seekers = append(seekers, *record.toDomain())
	}
	return seekers
}
