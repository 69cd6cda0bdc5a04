package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/zentask/zentask-platform/internal/apperrors"
	"github.com/zentask/zentask-platform/internal/models"
	"gorm.io/gorm"
)

// MeetingRepository is the persistence boundary for meetings and their
// participant rows.
type MeetingRepository interface {
	CreateMeeting(ctx context.Context, input models.CreateMeetingInput, adminID uuid.UUID) (*models.Meeting, error)
	GetMeetingsForUser(ctx context.Context, userID uuid.UUID) ([]models.Meeting, error)
	GetMeetingByID(ctx context.Context, id uuid.UUID) (*models.Meeting, error)
	GetMeetingParticipants(ctx context.Context, meetingID uuid.UUID) ([]models.ParticipantInfo, error)
	IsParticipant(ctx context.Context, meetingID, userID uuid.UUID) (bool, error)
}

type meetingRepository struct {
	db *gorm.DB
}

func NewMeetingRepository(db *gorm.DB) MeetingRepository {
	return &meetingRepository{db: db}
}

// CreateMeeting inserts the meeting and its participant rows in a single
// transaction so a participant failure never leaves an orphaned meeting.
// Duplicate participant ids are collapsed to keep the pair unique.
func (r *meetingRepository) CreateMeeting(ctx context.Context, input models.CreateMeetingInput, adminID uuid.UUID) (*models.Meeting, error) {
	meeting := &models.Meeting{
		Title:       strings.TrimSpace(input.Title),
		Description: input.Description,
		CreatedBy:   adminID,
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(meeting).Error; err != nil {
			return err
		}

		seen := make(map[uuid.UUID]bool, len(input.ParticipantIDs))
		participants := make([]models.MeetingParticipant, 0, len(input.ParticipantIDs))
		for _, userID := range input.ParticipantIDs {
			if userID == uuid.Nil || seen[userID] {
				continue
			}
			seen[userID] = true
			participants = append(participants, models.MeetingParticipant{
				MeetingID: meeting.ID,
				UserID:    userID,
			})
		}

		if len(participants) > 0 {
			if err := tx.Create(&participants).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, &apperrors.DependencyError{Op: "create meeting", Err: err}
	}

	return meeting, nil
}

// GetMeetingsForUser returns meetings the user participates in or created,
// de-duplicated, newest first.
func (r *meetingRepository) GetMeetingsForUser(ctx context.Context, userID uuid.UUID) ([]models.Meeting, error) {
	var meetings []models.Meeting
	if err := r.db.WithContext(ctx).
		Distinct("meetings.*").
		Joins("LEFT JOIN meeting_participants ON meeting_participants.meeting_id = meetings.id").
		Where("meeting_participants.user_id = ? OR meetings.created_by = ?", userID, userID).
		Order("meetings.created_at DESC").
		Find(&meetings).Error; err != nil {
		return nil, &apperrors.DependencyError{Op: "list meetings", Err: err}
	}
	return meetings, nil
}

func (r *meetingRepository) GetMeetingByID(ctx context.Context, id uuid.UUID) (*models.Meeting, error) {
	var meeting models.Meeting
	if err := r.db.WithContext(ctx).First(&meeting, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &apperrors.NotFoundError{Resource: "meeting"}
		}
		return nil, &apperrors.DependencyError{Op: "load meeting", Err: err}
	}
	return &meeting, nil
}

func (r *meetingRepository) GetMeetingParticipants(ctx context.Context, meetingID uuid.UUID) ([]models.ParticipantInfo, error) {
	var participants []models.ParticipantInfo
	if err := r.db.WithContext(ctx).
		Table("meeting_participants").
		Select("profiles.id AS id, profiles.full_name AS full_name").
		Joins("JOIN profiles ON profiles.id = meeting_participants.user_id").
		Where("meeting_participants.meeting_id = ?", meetingID).
		Scan(&participants).Error; err != nil {
		return nil, &apperrors.DependencyError{Op: "list participants", Err: err}
	}
	return participants, nil
}

func (r *meetingRepository) IsParticipant(ctx context.Context, meetingID, userID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.MeetingParticipant{}).
		Where("meeting_id = ? AND user_id = ?", meetingID, userID).
		Count(&count).Error; err != nil {
		return false, &apperrors.DependencyError{Op: "check participant", Err: err}
	}
	return count > 0, nil
}
