package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Meeting is an admin-created collaboration context scoping tasks and
// participants. It is immutable after creation.
type Meeting struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedBy   uuid.UUID `gorm:"type:uuid;not null;index" json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
}

func (m *Meeting) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// MeetingParticipant joins a Profile to a Meeting. A row grants the user
// read access to the Meeting. The composite key keeps the pair unique.
type MeetingParticipant struct {
	MeetingID uuid.UUID `gorm:"type:uuid;primaryKey" json:"meeting_id"`
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
}

// ParticipantInfo is the read model for a meeting's participant list.
type ParticipantInfo struct {
	ID       uuid.UUID `json:"id"`
	FullName string    `json:"full_name"`
}

// CreateMeetingInput is the payload for meeting creation.
type CreateMeetingInput struct {
	Title          string      `json:"title"`
	Description    string      `json:"description"`
	ParticipantIDs []uuid.UUID `json:"participant_ids"`
}
