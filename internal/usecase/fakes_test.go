package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/zentask/zentask-platform/internal/models"
)

// fakeMeetingRepo records creation calls and returns canned results.
type fakeMeetingRepo struct {
	created    []models.CreateMeetingInput
	createErr  error
	lastAdmin  uuid.UUID
	meetings   []models.Meeting
	byIDErr    error
	lastLookup uuid.UUID
}

func (f *fakeMeetingRepo) CreateMeeting(ctx context.Context, input models.CreateMeetingInput, adminID uuid.UUID) (*models.Meeting, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = append(f.created, input)
	f.lastAdmin = adminID
	return &models.Meeting{
		ID:          uuid.New(),
		Title:       strings.TrimSpace(input.Title),
		Description: input.Description,
		CreatedBy:   adminID,
	}, nil
}

func (f *fakeMeetingRepo) GetMeetingsForUser(ctx context.Context, userID uuid.UUID) ([]models.Meeting, error) {
	return f.meetings, nil
}

func (f *fakeMeetingRepo) GetMeetingByID(ctx context.Context, id uuid.UUID) (*models.Meeting, error) {
	f.lastLookup = id
	if f.byIDErr != nil {
		return nil, f.byIDErr
	}
	return &models.Meeting{ID: id}, nil
}

func (f *fakeMeetingRepo) GetMeetingParticipants(ctx context.Context, meetingID uuid.UUID) ([]models.ParticipantInfo, error) {
	return nil, nil
}

func (f *fakeMeetingRepo) IsParticipant(ctx context.Context, meetingID, userID uuid.UUID) (bool, error) {
	return false, nil
}

// fakeTaskRepo records task writes and returns canned results.
type fakeTaskRepo struct {
	created       []models.CreateTaskInput
	createErr     error
	statusResult  *models.Task
	statusErr     error
	statusCalls   int
	deliverResult *models.Task
	deliverErr    error
	deliverCalls  int
}

func (f *fakeTaskRepo) CreateTask(ctx context.Context, input models.CreateTaskInput, adminID uuid.UUID) (*models.Task, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = append(f.created, input)
	return &models.Task{
		ID:         uuid.New(),
		MeetingID:  input.MeetingID,
		AssignedTo: input.AssignedTo,
		CreatedBy:  adminID,
		Title:      input.Title,
		Status:     models.TaskStatusTodo,
	}, nil
}

func (f *fakeTaskRepo) GetTasksByUser(ctx context.Context, userID uuid.UUID) ([]models.TaskWithDetails, error) {
	return nil, nil
}

func (f *fakeTaskRepo) GetTasksByMeetingsCreatedBy(ctx context.Context, adminID uuid.UUID) ([]models.TaskWithDetails, error) {
	return nil, nil
}

func (f *fakeTaskRepo) UpdateTaskStatus(ctx context.Context, taskID uuid.UUID, status models.TaskStatus, userID uuid.UUID) (*models.Task, error) {
	f.statusCalls++
	if f.statusErr != nil {
		return nil, f.statusErr
	}
	return f.statusResult, nil
}

func (f *fakeTaskRepo) SetDeliverableURL(ctx context.Context, taskID, userID uuid.UUID, url string) (*models.Task, error) {
	f.deliverCalls++
	if f.deliverErr != nil {
		return nil, f.deliverErr
	}
	return f.deliverResult, nil
}

// fakeProfileRepo records profile writes.
type fakeProfileRepo struct {
	updated      map[uuid.UUID]models.UpdateProfileInput
	updateResult *models.Profile
	updateErr    error
	statusCalls  []statusCall
	statusErr    error
}

type statusCall struct {
	id     uuid.UUID
	active bool
}

func (f *fakeProfileRepo) GetProfile(ctx context.Context, id uuid.UUID) (*models.Profile, error) {
	return nil, nil
}

func (f *fakeProfileRepo) UpdateProfile(ctx context.Context, id uuid.UUID, data models.UpdateProfileInput) (*models.Profile, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	if f.updated == nil {
		f.updated = make(map[uuid.UUID]models.UpdateProfileInput)
	}
	f.updated[id] = data
	if f.updateResult != nil {
		return f.updateResult, nil
	}
	return &models.Profile{ID: id}, nil
}

func (f *fakeProfileRepo) GetAllProfiles(ctx context.Context) ([]models.Profile, error) {
	return nil, nil
}

func (f *fakeProfileRepo) GetActiveProfiles(ctx context.Context) ([]models.Profile, error) {
	return nil, nil
}

func (f *fakeProfileRepo) UpdateUserStatus(ctx context.Context, id uuid.UUID, active bool) error {
	if f.statusErr != nil {
		return f.statusErr
	}
	f.statusCalls = append(f.statusCalls, statusCall{id: id, active: active})
	return nil
}

// fakeEmailSender records notification attempts and can fail on demand.
type fakeEmailSender struct {
	sent []fakeEmail
	err  error
}

type fakeEmail struct {
	to           string
	assigneeName string
	adminName    string
	taskTitle    string
	meetingTitle string
}

func (f *fakeEmailSender) SendTaskAssignmentEmail(to, assigneeName, adminName, taskTitle, meetingTitle string) error {
	f.sent = append(f.sent, fakeEmail{
		to:           to,
		assigneeName: assigneeName,
		adminName:    adminName,
		taskTitle:    taskTitle,
		meetingTitle: meetingTitle,
	})
	return f.err
}
