package main

import (
	"log"
	"os"

	"github.com/zentask/zentask-platform/internal/config"
	"github.com/zentask/zentask-platform/internal/database"
	"github.com/zentask/zentask-platform/internal/logger"
	"github.com/zentask/zentask-platform/internal/routes"
	"github.com/zentask/zentask-platform/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	zlog, err := logger.New(cfg.LogMode)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zlog.Sync()

	zlog.Info("starting application", "database_type", cfg.DatabaseType)

	// Initialize database
	if err := database.Initialize(cfg); err != nil {
		zlog.Fatal("failed to initialize database", "error", err)
	}
	zlog.Info("database initialized")

	// Create upload directory
	if err := os.MkdirAll(cfg.UploadDir, 0755); err != nil {
		zlog.Warn("failed to create upload directory", "error", err)
	}

	// Seed admin user
	authService := services.NewAuthService(cfg)
	if err := routes.SeedAdminUser(cfg, authService); err != nil {
		zlog.Warn("failed to seed admin user", "error", err)
	} else {
		zlog.Info("admin user ready", "email", cfg.AdminEmail)
	}

	// Setup router
	router := routes.SetupRouter(cfg, zlog)

	// Start server
	addr := cfg.ServerHost + ":" + cfg.ServerPort
	zlog.Info("server starting", "addr", addr)

	if err := router.Run(addr); err != nil {
		zlog.Fatal("failed to start server", "error", err)
	}
}
