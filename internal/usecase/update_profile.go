package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/zentask/zentask-platform/internal/apperrors"
	"github.com/zentask/zentask-platform/internal/models"
	"github.com/zentask/zentask-platform/internal/repository"
)

type UpdateProfile struct {
	profiles repository.ProfileRepository
}

func NewUpdateProfile(profiles repository.ProfileRepository) *UpdateProfile {
	return &UpdateProfile{profiles: profiles}
}

// Execute updates the caller's own display fields. A supplied name must not
// be blank; absent fields stay untouched.
func (uc *UpdateProfile) Execute(ctx context.Context, userID uuid.UUID, data models.UpdateProfileInput) (*models.Profile, error) {
	if data.FullName != nil && strings.TrimSpace(*data.FullName) == "" {
		return nil, &apperrors.ValidationError{Field: "full_name", Message: "name cannot be empty"}
	}

	return uc.profiles.UpdateProfile(ctx, userID, data)
}
