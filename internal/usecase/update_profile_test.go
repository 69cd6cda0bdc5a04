package usecase

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zentask/zentask-platform/internal/apperrors"
	"github.com/zentask/zentask-platform/internal/models"
)

func TestUpdateProfileBlankName(t *testing.T) {
	repo := &fakeProfileRepo{}
	uc := NewUpdateProfile(repo)

	blank := "   "
	_, err := uc.Execute(context.Background(), uuid.New(), models.UpdateProfileInput{FullName: &blank})

	var verr *apperrors.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "full_name", verr.Field)
	assert.Empty(t, repo.updated)
}

func TestUpdateProfilePartialUpdate(t *testing.T) {
	repo := &fakeProfileRepo{}
	uc := NewUpdateProfile(repo)
	userID := uuid.New()

	avatar := "https://cdn.example.com/a.png"
	_, err := uc.Execute(context.Background(), userID, models.UpdateProfileInput{AvatarURL: &avatar})
	require.NoError(t, err)

	data, ok := repo.updated[userID]
	require.True(t, ok)
	assert.Nil(t, data.FullName, "absent name must stay untouched")
	require.NotNil(t, data.AvatarURL)
	assert.Equal(t, avatar, *data.AvatarURL)
}

func TestUpdateProfileNameIsAccepted(t *testing.T) {
	repo := &fakeProfileRepo{}
	uc := NewUpdateProfile(repo)

	name := "Jorge Mendoza"
	_, err := uc.Execute(context.Background(), uuid.New(), models.UpdateProfileInput{FullName: &name})
	assert.NoError(t, err)
}
