package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "todo"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusDone       TaskStatus = "done"
)

// IsValid reports whether s is one of the three known statuses.
func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusTodo, TaskStatusInProgress, TaskStatusDone:
		return true
	}
	return false
}

var statusRank = map[TaskStatus]int{
	TaskStatusTodo:       0,
	TaskStatusInProgress: 1,
	TaskStatusDone:       2,
}

// CanTransition reports whether a status change is a forward move in the
// todo -> in_progress -> done machine. Skipping ahead (todo -> done) is
// allowed; going backward is not.
func CanTransition(from, to TaskStatus) bool {
	return statusRank[to] > statusRank[from]
}

// Task is a unit of work assigned to one Profile within one Meeting.
// Status and DeliverableURL are mutated only by the assignee. A non-empty
// DeliverableURL implies Status == done.
type Task struct {
	ID             uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	MeetingID      uuid.UUID  `gorm:"type:uuid;not null;index" json:"meeting_id"`
	AssignedTo     uuid.UUID  `gorm:"type:uuid;not null;index" json:"assigned_to"`
	CreatedBy      uuid.UUID  `gorm:"type:uuid;not null" json:"created_by"`
	Title          string     `gorm:"not null" json:"title"`
	Description    string     `gorm:"type:text" json:"description"`
	Status         TaskStatus `gorm:"type:varchar(20);not null;default:todo" json:"status"`
	DeliverableURL string     `json:"deliverable_url"`
	DueDate        *time.Time `json:"due_date"`
	CreatedAt      time.Time  `json:"created_at"`
}

func (t *Task) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// TaskWithDetails is the read model joining a task with its meeting title
// and the assignee's display name.
type TaskWithDetails struct {
	Task
	MeetingTitle     string `json:"meeting_title"`
	AssignedUserName string `json:"assigned_user_name"`
}

// CreateTaskInput is the payload for task creation.
type CreateTaskInput struct {
	MeetingID   uuid.UUID  `json:"meeting_id"`
	AssignedTo  uuid.UUID  `json:"assigned_to"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	DueDate     *time.Time `json:"due_date"`
}
