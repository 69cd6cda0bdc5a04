package repository

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"github.com/zentask/zentask-platform/internal/apperrors"
	"github.com/zentask/zentask-platform/internal/models"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.Profile{},
		&models.Meeting{},
		&models.MeetingParticipant{},
		&models.Task{},
	))
	return db
}

func createProfile(t *testing.T, db *gorm.DB, name string, role models.UserRole) *models.Profile {
	t.Helper()

	profile := &models.Profile{
		Email:        name + "@example.com",
		PasswordHash: "x",
		FullName:     name,
		Role:         role,
		Active:       true,
	}
	require.NoError(t, db.Create(profile).Error)
	return profile
}

func assertNotFound(t *testing.T, err error) {
	t.Helper()

	var notFound *apperrors.NotFoundError
	require.ErrorAs(t, err, &notFound)
}
