package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/zentask/zentask-platform/internal/apperrors"
	"github.com/zentask/zentask-platform/internal/models"
	"gorm.io/gorm"
)

// TaskRepository is the persistence boundary for tasks. Status and
// deliverable writes are scoped to the assignee so a non-owner's update
// never takes effect.
type TaskRepository interface {
	CreateTask(ctx context.Context, input models.CreateTaskInput, adminID uuid.UUID) (*models.Task, error)
	GetTasksByUser(ctx context.Context, userID uuid.UUID) ([]models.TaskWithDetails, error)
	GetTasksByMeetingsCreatedBy(ctx context.Context, adminID uuid.UUID) ([]models.TaskWithDetails, error)
	UpdateTaskStatus(ctx context.Context, taskID uuid.UUID, status models.TaskStatus, userID uuid.UUID) (*models.Task, error)
	SetDeliverableURL(ctx context.Context, taskID, userID uuid.UUID, url string) (*models.Task, error)
}

type taskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &taskRepository{db: db}
}

func (r *taskRepository) CreateTask(ctx context.Context, input models.CreateTaskInput, adminID uuid.UUID) (*models.Task, error) {
	task := &models.Task{
		MeetingID:   input.MeetingID,
		AssignedTo:  input.AssignedTo,
		CreatedBy:   adminID,
		Title:       input.Title,
		Description: input.Description,
		Status:      models.TaskStatusTodo,
		DueDate:     input.DueDate,
	}

	if err := r.db.WithContext(ctx).Create(task).Error; err != nil {
		return nil, &apperrors.DependencyError{Op: "create task", Err: err}
	}
	return task, nil
}

func (r *taskRepository) GetTasksByUser(ctx context.Context, userID uuid.UUID) ([]models.TaskWithDetails, error) {
	var tasks []models.TaskWithDetails
	if err := r.db.WithContext(ctx).
		Model(&models.Task{}).
		Select("tasks.*, meetings.title AS meeting_title").
		Joins("JOIN meetings ON meetings.id = tasks.meeting_id").
		Where("tasks.assigned_to = ?", userID).
		Order("tasks.created_at DESC").
		Scan(&tasks).Error; err != nil {
		return nil, &apperrors.DependencyError{Op: "list tasks", Err: err}
	}
	return tasks, nil
}

// GetTasksByMeetingsCreatedBy returns every task scoped to a meeting the
// admin created, for the tracking view.
func (r *taskRepository) GetTasksByMeetingsCreatedBy(ctx context.Context, adminID uuid.UUID) ([]models.TaskWithDetails, error) {
	var tasks []models.TaskWithDetails
	if err := r.db.WithContext(ctx).
		Model(&models.Task{}).
		Select("tasks.*, meetings.title AS meeting_title, profiles.full_name AS assigned_user_name").
		Joins("JOIN meetings ON meetings.id = tasks.meeting_id").
		Joins("LEFT JOIN profiles ON profiles.id = tasks.assigned_to").
		Where("meetings.created_by = ?", adminID).
		Order("tasks.created_at DESC").
		Scan(&tasks).Error; err != nil {
		return nil, &apperrors.DependencyError{Op: "list tracked tasks", Err: err}
	}
	return tasks, nil
}

// UpdateTaskStatus persists a status change for the assignee's own task.
// Setting the current status again is a no-op returning the unchanged row.
// Backward transitions are rejected.
func (r *taskRepository) UpdateTaskStatus(ctx context.Context, taskID uuid.UUID, status models.TaskStatus, userID uuid.UUID) (*models.Task, error) {
	var task models.Task
	if err := r.db.WithContext(ctx).
		First(&task, "id = ? AND assigned_to = ?", taskID, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &apperrors.NotFoundError{Resource: "task"}
		}
		return nil, &apperrors.DependencyError{Op: "load task", Err: err}
	}

	if task.Status == status {
		return &task, nil
	}
	if !models.CanTransition(task.Status, status) {
		return nil, &apperrors.ConflictError{
			Message: "task status can only move forward (todo, in_progress, done)",
		}
	}

	if err := r.db.WithContext(ctx).
		Model(&task).
		Update("status", status).Error; err != nil {
		return nil, &apperrors.DependencyError{Op: "update task status", Err: err}
	}
	task.Status = status
	return &task, nil
}

// SetDeliverableURL stores the deliverable and completes the task in one
// update scoped to (task, assignee). Zero affected rows means the task does
// not exist or belongs to someone else.
func (r *taskRepository) SetDeliverableURL(ctx context.Context, taskID, userID uuid.UUID, url string) (*models.Task, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Task{}).
		Where("id = ? AND assigned_to = ?", taskID, userID).
		Updates(map[string]interface{}{
			"deliverable_url": url,
			"status":          models.TaskStatusDone,
		})
	if result.Error != nil {
		return nil, &apperrors.DependencyError{Op: "save deliverable", Err: result.Error}
	}
	if result.RowsAffected == 0 {
		return nil, &apperrors.NotFoundError{Resource: "task"}
	}

	var task models.Task
	if err := r.db.WithContext(ctx).First(&task, "id = ?", taskID).Error; err != nil {
		return nil, &apperrors.DependencyError{Op: "load task", Err: err}
	}
	return &task, nil
}
