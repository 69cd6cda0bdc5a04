package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/zentask/zentask-platform/internal/apperrors"
	"github.com/zentask/zentask-platform/internal/models"
	"github.com/zentask/zentask-platform/internal/repository"
)

type UpdateTaskStatus struct {
	tasks repository.TaskRepository
}

func NewUpdateTaskStatus(tasks repository.TaskRepository) *UpdateTaskStatus {
	return &UpdateTaskStatus{tasks: tasks}
}

// Execute validates the requested status and delegates to the repository,
// which enforces assignee ownership and the forward-only transition rule.
func (uc *UpdateTaskStatus) Execute(ctx context.Context, taskID uuid.UUID, status models.TaskStatus, userID uuid.UUID) (*models.Task, error) {
	if !status.IsValid() {
		return nil, &apperrors.ValidationError{
			Field:   "status",
			Message: "status must be one of: todo, in_progress, done",
		}
	}

	return uc.tasks.UpdateTaskStatus(ctx, taskID, status, userID)
}
