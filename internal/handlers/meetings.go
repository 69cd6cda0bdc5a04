package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/zentask/zentask-platform/internal/middleware"
	"github.com/zentask/zentask-platform/internal/models"
	"github.com/zentask/zentask-platform/internal/repository"
	"github.com/zentask/zentask-platform/internal/usecase"
)

type MeetingHandler struct {
	meetings      repository.MeetingRepository
	createMeeting *usecase.CreateMeeting
}

func NewMeetingHandler(meetings repository.MeetingRepository) *MeetingHandler {
	return &MeetingHandler{
		meetings:      meetings,
		createMeeting: usecase.NewCreateMeeting(meetings),
	}
}

// CreateMeetingRequest represents meeting creation input
type CreateMeetingRequest struct {
	Title          string      `json:"title" binding:"required"`
	Description    string      `json:"description"`
	ParticipantIDs []uuid.UUID `json:"participant_ids"`
}

// CreateMeeting creates a meeting with its participants. Admin only; the
// route carries the capability check.
func (h *MeetingHandler) CreateMeeting(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	var req CreateMeetingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	meeting, err := h.createMeeting.Execute(c.Request.Context(), models.CreateMeetingInput{
		Title:          req.Title,
		Description:    req.Description,
		ParticipantIDs: req.ParticipantIDs,
	}, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Meeting created successfully",
		"meeting": meeting,
	})
}

// GetMyMeetings lists meetings the caller participates in or created
func (h *MeetingHandler) GetMyMeetings(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	meetings, err := h.meetings.GetMeetingsForUser(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"meetings": meetings})
}

// GetMeeting returns a single meeting. Visible to its creator and to
// participants; everyone else gets a 404 rather than a hint it exists.
func (h *MeetingHandler) GetMeeting(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	meetingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid meeting ID"})
		return
	}

	meeting, err := h.meetings.GetMeetingByID(c.Request.Context(), meetingID)
	if err != nil {
		respondError(c, err)
		return
	}

	if meeting.CreatedBy != userID {
		isParticipant, err := h.meetings.IsParticipant(c.Request.Context(), meetingID, userID)
		if err != nil {
			respondError(c, err)
			return
		}
		if !isParticipant {
			c.JSON(http.StatusNotFound, gin.H{"error": "meeting not found"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"meeting": meeting})
}

// GetMeetingParticipants lists the participants of a meeting
func (h *MeetingHandler) GetMeetingParticipants(c *gin.Context) {
	meetingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid meeting ID"})
		return
	}

	participants, err := h.meetings.GetMeetingParticipants(c.Request.Context(), meetingID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"participants": participants})
}
