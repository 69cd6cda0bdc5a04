package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/zentask/zentask-platform/internal/apperrors"
	"github.com/zentask/zentask-platform/internal/logger"
	"github.com/zentask/zentask-platform/internal/models"
	"github.com/zentask/zentask-platform/internal/repository"
)

// EmailSender notifies an assignee about a new task. Implementations may
// deliver asynchronously; a returned error is logged, never propagated.
type EmailSender interface {
	SendTaskAssignmentEmail(to, assigneeName, adminName, taskTitle, meetingTitle string) error
}

type CreateTask struct {
	tasks repository.TaskRepository
	email EmailSender
	log   *logger.Logger
}

func NewCreateTask(tasks repository.TaskRepository, email EmailSender, log *logger.Logger) *CreateTask {
	return &CreateTask{tasks: tasks, email: email, log: log}
}

// Execute creates the task with status todo, then notifies the assignee.
// The notification is fire-and-forget: the task is already durably created,
// so a delivery failure must not fail the call.
func (uc *CreateTask) Execute(ctx context.Context, input models.CreateTaskInput, adminID uuid.UUID, adminName, assigneeEmail, assigneeName, meetingTitle string) (*models.Task, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, &apperrors.ValidationError{Field: "title", Message: "task title is required"}
	}
	if input.MeetingID == uuid.Nil {
		return nil, &apperrors.ValidationError{Field: "meeting_id", Message: "task must belong to a meeting"}
	}
	if input.AssignedTo == uuid.Nil {
		return nil, &apperrors.ValidationError{Field: "assigned_to", Message: "task must be assigned to a user"}
	}

	task, err := uc.tasks.CreateTask(ctx, input, adminID)
	if err != nil {
		return nil, err
	}

	if err := uc.email.SendTaskAssignmentEmail(assigneeEmail, assigneeName, adminName, task.Title, meetingTitle); err != nil {
		uc.log.Warn("task assignment notification failed",
			"task_id", task.ID,
			"assignee", assigneeEmail,
			"error", err)
	}

	return task, nil
}
