package database

import (
	"github.com/glebarez/sqlite"
	"github.com/zentask/zentask-platform/internal/config"
	"github.com/zentask/zentask-platform/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func Initialize(cfg *config.Config) error {
	var dialector gorm.Dialector

	switch cfg.DatabaseType {
	case "postgres":
		dialector = postgres.Open(cfg.DatabaseURL)
	default:
		dialector = sqlite.Open(cfg.DatabaseURL)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return err
	}

	DB = db

	return autoMigrate()
}

func autoMigrate() error {
	return DB.AutoMigrate(
		&models.Profile{},
		&models.Meeting{},
		&models.MeetingParticipant{},
		&models.Task{},
	)
}

func GetDB() *gorm.DB {
	return DB
}
