package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/zentask/zentask-platform/internal/middleware"
	"github.com/zentask/zentask-platform/internal/models"
	"github.com/zentask/zentask-platform/internal/repository"
	"github.com/zentask/zentask-platform/internal/services"
	"github.com/zentask/zentask-platform/internal/usecase"
)

type ProfileHandler struct {
	profiles       repository.ProfileRepository
	storageService *services.StorageService
	updateProfile  *usecase.UpdateProfile
}

func NewProfileHandler(profiles repository.ProfileRepository, storageService *services.StorageService) *ProfileHandler {
	return &ProfileHandler{
		profiles:       profiles,
		storageService: storageService,
		updateProfile:  usecase.NewUpdateProfile(profiles),
	}
}

// UpdateProfile updates the caller's display name and avatar. Sent as a
// multipart form so the avatar file can ride along with the name.
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	var input models.UpdateProfileInput

	if fullName, ok := c.GetPostForm("full_name"); ok {
		input.FullName = &fullName
	}

	// Store the avatar first; the profile row only keeps its URL
	if file, err := c.FormFile("avatar"); err == nil {
		avatarURL, err := h.storageService.SaveAvatar(userID, file)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		input.AvatarURL = &avatarURL
	}

	profile, err := h.updateProfile.Execute(c.Request.Context(), userID, input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Profile updated successfully",
		"user":    profile.ToResponse(),
	})
}

// GetActiveUsers lists active members, used when picking meeting
// participants and task assignees.
func (h *ProfileHandler) GetActiveUsers(c *gin.Context) {
	profiles, err := h.profiles.GetActiveProfiles(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	users := make([]gin.H, 0, len(profiles))
	for _, p := range profiles {
		users = append(users, gin.H{"id": p.ID, "full_name": p.FullName})
	}

	c.JSON(http.StatusOK, gin.H{"users": users})
}
