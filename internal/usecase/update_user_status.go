package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/zentask/zentask-platform/internal/apperrors"
	"github.com/zentask/zentask-platform/internal/repository"
)

type UpdateUserStatus struct {
	profiles repository.ProfileRepository
}

func NewUpdateUserStatus(profiles repository.ProfileRepository) *UpdateUserStatus {
	return &UpdateUserStatus{profiles: profiles}
}

// Execute activates or deactivates a target account. An admin may not
// deactivate their own account.
func (uc *UpdateUserStatus) Execute(ctx context.Context, targetUserID uuid.UUID, active bool, adminID uuid.UUID) error {
	if targetUserID == adminID {
		return &apperrors.SelfActionError{Message: "you cannot change the status of your own account"}
	}

	return uc.profiles.UpdateUserStatus(ctx, targetUserID, active)
}
