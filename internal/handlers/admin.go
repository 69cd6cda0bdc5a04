package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/zentask/zentask-platform/internal/database"
	"github.com/zentask/zentask-platform/internal/middleware"
	"github.com/zentask/zentask-platform/internal/models"
	"github.com/zentask/zentask-platform/internal/repository"
	"github.com/zentask/zentask-platform/internal/usecase"
)

type AdminHandler struct {
	profiles         repository.ProfileRepository
	updateUserStatus *usecase.UpdateUserStatus
}

func NewAdminHandler(profiles repository.ProfileRepository) *AdminHandler {
	return &AdminHandler{
		profiles:         profiles,
		updateUserStatus: usecase.NewUpdateUserStatus(profiles),
	}
}

// GetDashboardStats returns platform statistics
func (h *AdminHandler) GetDashboardStats(c *gin.Context) {
	db := database.GetDB()

	var stats struct {
		TotalUsers      int64 `json:"total_users"`
		ActiveUsers     int64 `json:"active_users"`
		TotalMeetings   int64 `json:"total_meetings"`
		TotalTasks      int64 `json:"total_tasks"`
		TasksTodo       int64 `json:"tasks_todo"`
		TasksInProgress int64 `json:"tasks_in_progress"`
		TasksDone       int64 `json:"tasks_done"`
	}

	db.Model(&models.Profile{}).Count(&stats.TotalUsers)
	db.Model(&models.Profile{}).Where("active = ?", true).Count(&stats.ActiveUsers)
	db.Model(&models.Meeting{}).Count(&stats.TotalMeetings)
	db.Model(&models.Task{}).Count(&stats.TotalTasks)
	db.Model(&models.Task{}).Where("status = ?", models.TaskStatusTodo).Count(&stats.TasksTodo)
	db.Model(&models.Task{}).Where("status = ?", models.TaskStatusInProgress).Count(&stats.TasksInProgress)
	db.Model(&models.Task{}).Where("status = ?", models.TaskStatusDone).Count(&stats.TasksDone)

	c.JSON(http.StatusOK, gin.H{"stats": stats})
}

// ListAllUsers returns every profile, including deactivated ones
func (h *AdminHandler) ListAllUsers(c *gin.Context) {
	profiles, err := h.profiles.GetAllProfiles(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]models.ProfileResponse, 0, len(profiles))
	for _, p := range profiles {
		response = append(response, p.ToResponse())
	}

	c.JSON(http.StatusOK, gin.H{"users": response})
}

// UpdateUserStatusRequest represents an activation change
type UpdateUserStatusRequest struct {
	Active *bool `json:"active" binding:"required"`
}

// UpdateUserStatus activates or deactivates a member account
func (h *AdminHandler) UpdateUserStatus(c *gin.Context) {
	admin, exists := middleware.GetProfile(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	targetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	var req UpdateUserStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.updateUserStatus.Execute(c.Request.Context(), targetID, *req.Active, admin.ID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User status updated"})
}
