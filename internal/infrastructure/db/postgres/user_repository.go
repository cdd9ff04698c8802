package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/opentalent/recruitment-platform/internal/core/domain"
	"github.com/opentalent/recruitment-platform/internal/core/ports"
)

// userRecord is the GORM mapping for users. gorm.DeletedAt makes every
// query skip soft-deleted rows automatically, which is exactly the
// principal-resolution contract.
type userRecord struct {
	ID           int64          `gorm:"primaryKey"`
	Name         string         `gorm:"not null"`
	Email        string         `gorm:"uniqueIndex;not null"`
	PasswordHash string         `gorm:"not null"`
	Role         string         `gorm:"not null;default:'member'"`
	IsPaid       bool           `gorm:"not null;default:false"`
	PaidUntil    *time.Time
	CheckoutRef  string
	Phone        string
	Avatar       string
	Bio          string `gorm:"type:text"`
	Company      string
	Position     string
	Location     string
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

func (userRecord) TableName() string { return "users" }

func (r userRecord) toDomain() *domain.User {
	user := &domain.User{
		ID:           r.ID,
		Name:         r.Name,
		Email:        r.Email,
		PasswordHash: r.PasswordHash,
		Role:         domain.Role(r.Role),
		IsPaid:       r.IsPaid,
		PaidUntil:    r.PaidUntil,
		CheckoutRef:  r.CheckoutRef,
		Phone:        r.Phone,
		Avatar:       r.Avatar,
		Bio:          r.Bio,
		Company:      r.Company,
		Position:     r.Position,
		Location:     r.Location,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
	if r.DeletedAt.Valid {
		t := r.DeletedAt.Time
		user.DeletedAt = &t
	}
	return user
}

// UserRepository implements ports.UserRepository on Postgres.
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) ports.UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	record := userRecord{
		Name:         user.Name,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		Role:         string(user.Role),
		IsPaid:       user.IsPaid,
		PaidUntil:    user.PaidUntil,
		Phone:        user.Phone,
		Avatar:       user.Avatar,
		Bio:          user.Bio,
		Company:      user.Company,
		Position:     user.Position,
		Location:     user.Location,
	}

	if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.ErrEmailInUse
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return record.toDomain(), nil
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	var record userRecord
	if err := r.db.WithContext(ctx).First(&record, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user %d: %w", id, err)
	}
	return record.toDomain(), nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var record userRecord
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return record.toDomain(), nil
}

func (r *UserRepository) UpdateProfile(ctx context.Context, id int64, update ports.ProfileUpdate) (*domain.User, error) {
	changes := map[string]any{}
	if update.Name != nil {
		changes["name"] = *update.Name
	}
	if update.Phone != nil {
		changes["phone"] = *update.Phone
	}
	if update.Avatar != nil {
		changes["avatar"] = *update.Avatar
	}
	if update.Bio != nil {
		changes["bio"] = *update.Bio
	}
	if update.Company != nil {
		changes["company"] = *update.Company
	}
	if update.Position != nil {
		changes["position"] = *update.Position
	}
	if update.Location != nil {
		changes["location"] = *update.Location
	}

	if len(changes) > 0 {
		result := r.db.WithContext(ctx).Model(&userRecord{}).Where("id = ?", id).Updates(changes)
		if result.Error != nil {
			return nil, fmt.Errorf("update profile %d: %w", id, result.Error)
		}
		if result.RowsAffected == 0 {
			return nil, domain.ErrUserNotFound
		}
	}
	return r.FindByID(ctx, id)
}

func (r *UserRepository) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	result := r.db.WithContext(ctx).Model(&userRecord{}).Where("id = ?", id).
		Update("password_hash", passwordHash)
	if result.Error != nil {
		return fmt.Errorf("update password %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) SoftDelete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&userRecord{}, id)
	if result.Error != nil {
		return fmt.Errorf("delete user %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) List(ctx context.Context, limit, offset int) ([]domain.User, error) {
	var records []userRecord
	err := r.db.WithContext(ctx).
		Order("id").
		Limit(limit).
		Offset(offset).
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return toUsers(records), nil
}

func (r *UserRepository) ListByRole(ctx context.Context, role domain.Role, limit, offset int) ([]domain.User, error) {
	var records []userRecord
	err := r.db.WithContext(ctx).
		Where("role = ?", string(role)).
		Order("id").
		Limit(limit).
		Offset(offset).
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("list users by role: %w", err)
	}
	return toUsers(records), nil
}

func (r *UserRepository) SetPaymentStatus(ctx context.Context, id int64, isPaid bool, paidUntil *time.Time) (*domain.User, error) {
	result := r.db.WithContext(ctx).Model(&userRecord{}).Where("id = ?", id).
		Updates(map[string]any{"is_paid": isPaid, "paid_until": paidUntil})
	if result.Error != nil {
		return nil, fmt.Errorf("set payment status %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, domain.ErrUserNotFound
	}
	return r.FindByID(ctx, id)
}

func (r *UserRepository) SetCheckoutRef(ctx context.Context, id int64, ref string) error {
	result := r.db.WithContext(ctx).Model(&userRecord{}).Where("id = ?", id).
		Update("checkout_ref", ref)
	if result.Error != nil {
		return fmt.Errorf("set checkout ref %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func toUsers(records []userRecord) []domain.User {
	users := make([]domain.User, 0, len(records))
	for _, record := range records {
		users = append(users, *record.toDomain())
	}
	return users
}
