package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/zentask/zentask-platform/internal/apperrors"
	"github.com/zentask/zentask-platform/internal/models"
	"github.com/zentask/zentask-platform/internal/repository"
)

type UploadDeliverable struct {
	tasks repository.TaskRepository
}

func NewUploadDeliverable(tasks repository.TaskRepository) *UploadDeliverable {
	return &UploadDeliverable{tasks: tasks}
}

// Execute records the deliverable URL and completes the task. The blob
// itself was already stored by the caller; this only persists its URL. The
// repository scopes the write to the assignee, so someone else's attempt
// surfaces as not found.
func (uc *UploadDeliverable) Execute(ctx context.Context, taskID, userID uuid.UUID, fileURL string) (*models.Task, error) {
	if fileURL == "" {
		return nil, &apperrors.ValidationError{Field: "file_url", Message: "file URL cannot be empty"}
	}

	return uc.tasks.SetDeliverableURL(ctx, taskID, userID, fileURL)
}
