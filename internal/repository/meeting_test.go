package repository

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zentask/zentask-platform/internal/models"
)

func TestCreateMeetingWithParticipants(t *testing.T) {
	db := openTestDB(t)
	repo := NewMeetingRepository(db)
	ctx := context.Background()

	admin := createProfile(t, db, "admin", models.RoleAdmin)
	u1 := createProfile(t, db, "u1", models.RoleUser)
	u2 := createProfile(t, db, "u2", models.RoleUser)

	meeting, err := repo.CreateMeeting(ctx, models.CreateMeetingInput{
		Title:          "Q1 Review",
		ParticipantIDs: []uuid.UUID{u1.ID, u2.ID},
	}, admin.ID)
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, meeting.ID)

	var count int64
	db.Model(&models.MeetingParticipant{}).Where("meeting_id = ?", meeting.ID).Count(&count)
	assert.EqualValues(t, 2, count)

	// u1 sees the meeting through their participant row
	meetings, err := repo.GetMeetingsForUser(ctx, u1.ID)
	require.NoError(t, err)
	require.Len(t, meetings, 1)
	assert.Equal(t, "Q1 Review", meetings[0].Title)
}

func TestCreateMeetingDeduplicatesParticipants(t *testing.T) {
	db := openTestDB(t)
	repo := NewMeetingRepository(db)
	ctx := context.Background()

	admin := createProfile(t, db, "admin", models.RoleAdmin)
	u1 := createProfile(t, db, "u1", models.RoleUser)

	meeting, err := repo.CreateMeeting(ctx, models.CreateMeetingInput{
		Title:          "Planning",
		ParticipantIDs: []uuid.UUID{u1.ID, u1.ID, uuid.Nil},
	}, admin.ID)
	require.NoError(t, err)

	var count int64
	db.Model(&models.MeetingParticipant{}).Where("meeting_id = ?", meeting.ID).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestGetMeetingsForUserIncludesCreatedAndDeduplicates(t *testing.T) {
	db := openTestDB(t)
	repo := NewMeetingRepository(db)
	ctx := context.Background()

	admin := createProfile(t, db, "admin", models.RoleAdmin)

	// Admin is creator AND participant of the same meeting
	meeting, err := repo.CreateMeeting(ctx, models.CreateMeetingInput{
		Title:          "Retro",
		ParticipantIDs: []uuid.UUID{admin.ID},
	}, admin.ID)
	require.NoError(t, err)

	meetings, err := repo.GetMeetingsForUser(ctx, admin.ID)
	require.NoError(t, err)
	require.Len(t, meetings, 1, "creator+participant must not produce a duplicate")
	assert.Equal(t, meeting.ID, meetings[0].ID)
}

func TestGetMeetingByIDNotFound(t *testing.T) {
	db := openTestDB(t)
	repo := NewMeetingRepository(db)

	_, err := repo.GetMeetingByID(context.Background(), uuid.New())
	assertNotFound(t, err)
}

func TestGetMeetingParticipantsReturnsNames(t *testing.T) {
	db := openTestDB(t)
	repo := NewMeetingRepository(db)
	ctx := context.Background()

	admin := createProfile(t, db, "admin", models.RoleAdmin)
	u1 := createProfile(t, db, "u1", models.RoleUser)

	meeting, err := repo.CreateMeeting(ctx, models.CreateMeetingInput{
		Title:          "Sync",
		ParticipantIDs: []uuid.UUID{u1.ID},
	}, admin.ID)
	require.NoError(t, err)

	participants, err := repo.GetMeetingParticipants(ctx, meeting.ID)
	require.NoError(t, err)
	require.Len(t, participants, 1)
	assert.Equal(t, u1.ID, participants[0].ID)
	assert.Equal(t, "u1", participants[0].FullName)

	isPart, err := repo.IsParticipant(ctx, meeting.ID, u1.ID)
	require.NoError(t, err)
	assert.True(t, isPart)

	isPart, err = repo.IsParticipant(ctx, meeting.ID, uuid.New())
	require.NoError(t, err)
	assert.False(t, isPart)
}
