// Package usecase holds the application rules: each use-case validates its
// input, enforces the business invariant it owns, and delegates one
// operation to a repository. Role checks happen at the HTTP boundary
// before a use-case runs.
package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/zentask/zentask-platform/internal/apperrors"
	"github.com/zentask/zentask-platform/internal/models"
	"github.com/zentask/zentask-platform/internal/repository"
)

type CreateMeeting struct {
	meetings repository.MeetingRepository
}

func NewCreateMeeting(meetings repository.MeetingRepository) *CreateMeeting {
	return &CreateMeeting{meetings: meetings}
}

// Execute creates a meeting and its participant rows. The caller must
// already be authorized as an admin.
func (uc *CreateMeeting) Execute(ctx context.Context, input models.CreateMeetingInput, adminID uuid.UUID) (*models.Meeting, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, &apperrors.ValidationError{Field: "title", Message: "meeting title is required"}
	}

	return uc.meetings.CreateMeeting(ctx, input, adminID)
}
