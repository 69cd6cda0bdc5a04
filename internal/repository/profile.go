package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/zentask/zentask-platform/internal/apperrors"
	"github.com/zentask/zentask-platform/internal/models"
	"gorm.io/gorm"
)

// ProfileRepository is the persistence boundary for team member accounts.
type ProfileRepository interface {
	GetProfile(ctx context.Context, id uuid.UUID) (*models.Profile, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, data models.UpdateProfileInput) (*models.Profile, error)
	GetAllProfiles(ctx context.Context) ([]models.Profile, error)
	GetActiveProfiles(ctx context.Context) ([]models.Profile, error)
	UpdateUserStatus(ctx context.Context, id uuid.UUID, active bool) error
}

type profileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) GetProfile(ctx context.Context, id uuid.UUID) (*models.Profile, error) {
	var profile models.Profile
	if err := r.db.WithContext(ctx).First(&profile, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &apperrors.NotFoundError{Resource: "profile"}
		}
		return nil, &apperrors.DependencyError{Op: "load profile", Err: err}
	}
	return &profile, nil
}

// UpdateProfile writes only the supplied fields plus updated_at. Absent
// fields keep their current values.
func (r *profileRepository) UpdateProfile(ctx context.Context, id uuid.UUID, data models.UpdateProfileInput) (*models.Profile, error) {
	updates := map[string]interface{}{"updated_at": time.Now()}
	if data.FullName != nil {
		updates["full_name"] = strings.TrimSpace(*data.FullName)
	}
	if data.AvatarURL != nil {
		updates["avatar_url"] = *data.AvatarURL
	}

	result := r.db.WithContext(ctx).
		Model(&models.Profile{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		return nil, &apperrors.DependencyError{Op: "update profile", Err: result.Error}
	}
	if result.RowsAffected == 0 {
		return nil, &apperrors.NotFoundError{Resource: "profile"}
	}

	return r.GetProfile(ctx, id)
}

func (r *profileRepository) GetAllProfiles(ctx context.Context) ([]models.Profile, error) {
	var profiles []models.Profile
	if err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&profiles).Error; err != nil {
		return nil, &apperrors.DependencyError{Op: "list profiles", Err: err}
	}
	return profiles, nil
}

func (r *profileRepository) GetActiveProfiles(ctx context.Context) ([]models.Profile, error) {
	var profiles []models.Profile
	if err := r.db.WithContext(ctx).
		Where("active = ?", true).
		Order("full_name ASC").
		Find(&profiles).Error; err != nil {
		return nil, &apperrors.DependencyError{Op: "list active profiles", Err: err}
	}
	return profiles, nil
}

func (r *profileRepository) UpdateUserStatus(ctx context.Context, id uuid.UUID, active bool) error {
	result := r.db.WithContext(ctx).
		Model(&models.Profile{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"active": active, "updated_at": time.Now()})
	if result.Error != nil {
		return &apperrors.DependencyError{Op: "update user status", Err: result.Error}
	}
	if result.RowsAffected == 0 {
		return &apperrors.NotFoundError{Resource: "profile"}
	}
	return nil
}
