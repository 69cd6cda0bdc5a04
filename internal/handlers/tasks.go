package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/zentask/zentask-platform/internal/logger"
	"github.com/zentask/zentask-platform/internal/middleware"
	"github.com/zentask/zentask-platform/internal/models"
	"github.com/zentask/zentask-platform/internal/repository"
	"github.com/zentask/zentask-platform/internal/services"
	"github.com/zentask/zentask-platform/internal/usecase"
)

type TaskHandler struct {
	tasks          repository.TaskRepository
	profiles       repository.ProfileRepository
	meetings       repository.MeetingRepository
	storageService *services.StorageService

	createTask        *usecase.CreateTask
	updateTaskStatus  *usecase.UpdateTaskStatus
	uploadDeliverable *usecase.UploadDeliverable
}

func NewTaskHandler(
	tasks repository.TaskRepository,
	profiles repository.ProfileRepository,
	meetings repository.MeetingRepository,
	storageService *services.StorageService,
	notifier usecase.EmailSender,
	log *logger.Logger,
) *TaskHandler {
	return &TaskHandler{
		tasks:             tasks,
		profiles:          profiles,
		meetings:          meetings,
		storageService:    storageService,
		createTask:        usecase.NewCreateTask(tasks, notifier, log),
		updateTaskStatus:  usecase.NewUpdateTaskStatus(tasks),
		uploadDeliverable: usecase.NewUploadDeliverable(tasks),
	}
}

// CreateTaskRequest represents task creation input
type CreateTaskRequest struct {
	MeetingID   uuid.UUID  `json:"meeting_id" binding:"required"`
	AssignedTo  uuid.UUID  `json:"assigned_to" binding:"required"`
	Title       string     `json:"title" binding:"required"`
	Description string     `json:"description"`
	DueDate     *time.Time `json:"due_date"`
}

// CreateTask creates a task inside a meeting and notifies the assignee.
// Admin only; the route carries the capability check, which also loaded
// the caller's profile.
func (h *TaskHandler) CreateTask(c *gin.Context) {
	admin, exists := middleware.GetProfile(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()

	// Assignee and meeting context feed the notification email
	assignee, err := h.profiles.GetProfile(ctx, req.AssignedTo)
	if err != nil {
		respondError(c, err)
		return
	}

	meeting, err := h.meetings.GetMeetingByID(ctx, req.MeetingID)
	if err != nil {
		respondError(c, err)
		return
	}

	task, err := h.createTask.Execute(ctx, models.CreateTaskInput{
		MeetingID:   req.MeetingID,
		AssignedTo:  req.AssignedTo,
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
	}, admin.ID, admin.FullName, assignee.Email, assignee.FullName, meeting.Title)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Task created successfully",
		"task":    task,
	})
}

// GetMyTasks lists tasks assigned to the caller
func (h *TaskHandler) GetMyTasks(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	tasks, err := h.tasks.GetTasksByUser(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"tasks": tasks})
}

// GetTrackedTasks lists every task in meetings the admin created, for the
// progress tracking view
func (h *TaskHandler) GetTrackedTasks(c *gin.Context) {
	admin, exists := middleware.GetProfile(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	tasks, err := h.tasks.GetTasksByMeetingsCreatedBy(c.Request.Context(), admin.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"tasks": tasks})
}

// UpdateTaskStatusRequest represents a status change
type UpdateTaskStatusRequest struct {
	Status models.TaskStatus `json:"status" binding:"required"`
}

// UpdateTaskStatus moves the caller's own task through the status machine
func (h *TaskHandler) UpdateTaskStatus(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	taskID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task ID"})
		return
	}

	var req UpdateTaskStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task, err := h.updateTaskStatus.Execute(c.Request.Context(), taskID, req.Status, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Task status updated",
		"task":    task,
	})
}

// UploadDeliverable stores the submitted file and completes the task
func (h *TaskHandler) UploadDeliverable(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	taskID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task ID"})
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file provided"})
		return
	}

	fileURL, err := h.storageService.SaveDeliverable(taskID, file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task, err := h.uploadDeliverable.Execute(c.Request.Context(), taskID, userID, fileURL)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Deliverable uploaded",
		"task":    task,
	})
}
