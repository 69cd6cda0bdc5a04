package routes

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/zentask/zentask-platform/internal/authz"
	"github.com/zentask/zentask-platform/internal/config"
	"github.com/zentask/zentask-platform/internal/database"
	"github.com/zentask/zentask-platform/internal/handlers"
	"github.com/zentask/zentask-platform/internal/logger"
	"github.com/zentask/zentask-platform/internal/middleware"
	"github.com/zentask/zentask-platform/internal/models"
	"github.com/zentask/zentask-platform/internal/repository"
	"github.com/zentask/zentask-platform/internal/services"
)

func SetupRouter(cfg *config.Config, log *logger.Logger) *gin.Engine {
	router := gin.Default()

	// CORS configuration
	router.Use(cors.New(cors.Config{
		AllowOriginFunc:  func(origin string) bool { return true },
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":       "ok",
			"db_connected": database.GetDB() != nil,
		})
	})

	// Serve uploaded files (avatars, deliverables)
	wd, _ := os.Getwd()
	router.Static("/uploads", filepath.Join(wd, cfg.UploadDir))

	// Repositories
	db := database.GetDB()
	profileRepo := repository.NewProfileRepository(db)
	meetingRepo := repository.NewMeetingRepository(db)
	taskRepo := repository.NewTaskRepository(db)

	// Services
	authService := services.NewAuthService(cfg)
	emailService := services.NewEmailService(cfg, log)
	notifier := services.NewNotifier(emailService, log)
	storageService := services.NewStorageService(cfg)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService, profileRepo)
	profileHandler := handlers.NewProfileHandler(profileRepo, storageService)
	meetingHandler := handlers.NewMeetingHandler(meetingRepo)
	taskHandler := handlers.NewTaskHandler(taskRepo, profileRepo, meetingRepo, storageService, notifier, log)
	adminHandler := handlers.NewAdminHandler(profileRepo)

	// API routes
	api := router.Group("/api")

	// Middleware to check database readiness
	api.Use(func(c *gin.Context) {
		if database.GetDB() == nil {
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{
				"error": "Service initializing, please try again shortly",
			})
			return
		}
		c.Next()
	})

	{
		// Auth routes (public)
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)

			authProtected := auth.Group("")
			authProtected.Use(middleware.AuthMiddleware(authService))
			{
				authProtected.GET("/me", authHandler.GetCurrentUser)
			}
		}

		// User routes
		users := api.Group("/users")
		users.Use(middleware.AuthMiddleware(authService))
		{
			users.GET("/active", profileHandler.GetActiveUsers)
			users.PUT("/profile", profileHandler.UpdateProfile)
		}

		// Meeting routes
		meetings := api.Group("/meetings")
		meetings.Use(middleware.AuthMiddleware(authService))
		{
			meetings.POST("", middleware.RequireCapability(profileRepo, authz.CapCreateMeeting), meetingHandler.CreateMeeting)
			meetings.GET("", meetingHandler.GetMyMeetings)
			meetings.GET("/:id", meetingHandler.GetMeeting)
			meetings.GET("/:id/participants", meetingHandler.GetMeetingParticipants)
		}

		// Task routes
		tasks := api.Group("/tasks")
		tasks.Use(middleware.AuthMiddleware(authService))
		{
			tasks.POST("", middleware.RequireCapability(profileRepo, authz.CapCreateTask), taskHandler.CreateTask)
			tasks.GET("/mine", taskHandler.GetMyTasks)
			tasks.GET("/tracking", middleware.RequireCapability(profileRepo, authz.CapCreateTask), taskHandler.GetTrackedTasks)
			tasks.PATCH("/:id/status", taskHandler.UpdateTaskStatus)
			tasks.POST("/:id/deliverable", taskHandler.UploadDeliverable)
		}

		// Admin routes
		admin := api.Group("/admin")
		admin.Use(middleware.AuthMiddleware(authService), middleware.RequireCapability(profileRepo, authz.CapManageUsers))
		{
			admin.GET("/stats", adminHandler.GetDashboardStats)
			admin.GET("/users", adminHandler.ListAllUsers)
			admin.PATCH("/users/:id/status", adminHandler.UpdateUserStatus)
		}
	}

	return router
}

// SeedAdminUser creates the default admin profile if none exists
func SeedAdminUser(cfg *config.Config, authService *services.AuthService) error {
	if _, err := authService.GetProfileByEmail(cfg.AdminEmail); err == nil {
		return nil // Admin exists
	}

	admin, err := authService.Register(cfg.AdminEmail, cfg.AdminPassword, "Administrator")
	if err != nil {
		return err
	}

	admin.Role = models.RoleAdmin
	return database.GetDB().Save(admin).Error
}
