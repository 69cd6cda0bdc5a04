package repository

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zentask/zentask-platform/internal/apperrors"
	"github.com/zentask/zentask-platform/internal/models"
)

type taskFixture struct {
	repo     TaskRepository
	meetings MeetingRepository
	admin    *models.Profile
	assignee *models.Profile
	meeting  *models.Meeting
}

func newTaskFixture(t *testing.T) (*taskFixture, context.Context) {
	t.Helper()

	db := openTestDB(t)
	ctx := context.Background()

	f := &taskFixture{
		repo:     NewTaskRepository(db),
		meetings: NewMeetingRepository(db),
		admin:    createProfile(t, db, "admin", models.RoleAdmin),
		assignee: createProfile(t, db, "u1", models.RoleUser),
	}

	meeting, err := f.meetings.CreateMeeting(ctx, models.CreateMeetingInput{
		Title:          "Q1 Review",
		ParticipantIDs: []uuid.UUID{f.assignee.ID},
	}, f.admin.ID)
	require.NoError(t, err)
	f.meeting = meeting

	return f, ctx
}

func (f *taskFixture) createTask(t *testing.T, ctx context.Context, title string) *models.Task {
	t.Helper()

	task, err := f.repo.CreateTask(ctx, models.CreateTaskInput{
		MeetingID:  f.meeting.ID,
		AssignedTo: f.assignee.ID,
		Title:      title,
	}, f.admin.ID)
	require.NoError(t, err)
	return task
}

func TestCreateTaskStartsAsTodo(t *testing.T) {
	f, ctx := newTaskFixture(t)

	task := f.createTask(t, ctx, "Send report")

	assert.Equal(t, models.TaskStatusTodo, task.Status)
	assert.Equal(t, f.admin.ID, task.CreatedBy)
	assert.Empty(t, task.DeliverableURL)

	tasks, err := f.repo.GetTasksByUser(ctx, f.assignee.ID)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "Send report", tasks[0].Title)
	assert.Equal(t, "Q1 Review", tasks[0].MeetingTitle)
}

func TestGetTasksByMeetingsCreatedBy(t *testing.T) {
	f, ctx := newTaskFixture(t)
	f.createTask(t, ctx, "Send report")
	f.createTask(t, ctx, "Prepare slides")

	tasks, err := f.repo.GetTasksByMeetingsCreatedBy(ctx, f.admin.ID)
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, "u1", tasks[0].AssignedUserName)
	assert.Equal(t, "Q1 Review", tasks[0].MeetingTitle)

	// Tasks in someone else's meetings stay invisible
	tasks, err = f.repo.GetTasksByMeetingsCreatedBy(ctx, f.assignee.ID)
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestUpdateTaskStatusForwardTransitions(t *testing.T) {
	tests := []struct {
		from models.TaskStatus
		to   models.TaskStatus
	}{
		{models.TaskStatusTodo, models.TaskStatusInProgress},
		{models.TaskStatusInProgress, models.TaskStatusDone},
		{models.TaskStatusTodo, models.TaskStatusDone},
	}

	for _, tt := range tests {
		f, ctx := newTaskFixture(t)
		task := f.createTask(t, ctx, "Send report")

		if tt.from != models.TaskStatusTodo {
			_, err := f.repo.UpdateTaskStatus(ctx, task.ID, tt.from, f.assignee.ID)
			require.NoError(t, err)
		}

		updated, err := f.repo.UpdateTaskStatus(ctx, task.ID, tt.to, f.assignee.ID)
		require.NoError(t, err, "%s -> %s should be allowed", tt.from, tt.to)
		assert.Equal(t, tt.to, updated.Status)
	}
}

func TestUpdateTaskStatusBackwardTransitionsRejected(t *testing.T) {
	tests := []struct {
		from models.TaskStatus
		to   models.TaskStatus
	}{
		{models.TaskStatusInProgress, models.TaskStatusTodo},
		{models.TaskStatusDone, models.TaskStatusInProgress},
		{models.TaskStatusDone, models.TaskStatusTodo},
	}

	for _, tt := range tests {
		f, ctx := newTaskFixture(t)
		task := f.createTask(t, ctx, "Send report")

		_, err := f.repo.UpdateTaskStatus(ctx, task.ID, tt.from, f.assignee.ID)
		require.NoError(t, err)

		_, err = f.repo.UpdateTaskStatus(ctx, task.ID, tt.to, f.assignee.ID)
		var conflict *apperrors.ConflictError
		require.ErrorAs(t, err, &conflict, "%s -> %s must be rejected", tt.from, tt.to)
	}
}

func TestUpdateTaskStatusSameStatusIsNoOp(t *testing.T) {
	f, ctx := newTaskFixture(t)
	task := f.createTask(t, ctx, "Send report")

	updated, err := f.repo.UpdateTaskStatus(ctx, task.ID, models.TaskStatusTodo, f.assignee.ID)
	require.NoError(t, err)
	assert.Equal(t, models.TaskStatusTodo, updated.Status)
	assert.Equal(t, task.ID, updated.ID)
}

func TestUpdateTaskStatusNonAssigneeRejected(t *testing.T) {
	f, ctx := newTaskFixture(t)
	task := f.createTask(t, ctx, "Send report")

	_, err := f.repo.UpdateTaskStatus(ctx, task.ID, models.TaskStatusInProgress, f.admin.ID)
	assertNotFound(t, err)
}

func TestSetDeliverableURLCompletesTask(t *testing.T) {
	f, ctx := newTaskFixture(t)
	task := f.createTask(t, ctx, "Send report")

	updated, err := f.repo.SetDeliverableURL(ctx, task.ID, f.assignee.ID, "https://files.example.com/report.pdf")
	require.NoError(t, err)

	assert.Equal(t, models.TaskStatusDone, updated.Status, "a stored deliverable implies done")
	assert.Equal(t, "https://files.example.com/report.pdf", updated.DeliverableURL)
}

func TestSetDeliverableURLNonAssigneeLeavesTaskUntouched(t *testing.T) {
	f, ctx := newTaskFixture(t)
	task := f.createTask(t, ctx, "Send report")

	_, err := f.repo.SetDeliverableURL(ctx, task.ID, uuid.New(), "https://files.example.com/other.pdf")
	assertNotFound(t, err)

	tasks, err := f.repo.GetTasksByUser(ctx, f.assignee.ID)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, models.TaskStatusTodo, tasks[0].Status)
	assert.Empty(t, tasks[0].DeliverableURL)
}
