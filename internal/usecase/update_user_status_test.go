package usecase

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zentask/zentask-platform/internal/apperrors"
)

func TestUpdateUserStatusSelfActionRejected(t *testing.T) {
	repo := &fakeProfileRepo{}
	uc := NewUpdateUserStatus(repo)
	adminID := uuid.New()

	for _, active := range []bool{true, false} {
		err := uc.Execute(context.Background(), adminID, active, adminID)

		var selfErr *apperrors.SelfActionError
		require.ErrorAs(t, err, &selfErr, "self targeting must fail regardless of active=%v", active)
	}
	assert.Empty(t, repo.statusCalls)
}

func TestUpdateUserStatusDelegates(t *testing.T) {
	repo := &fakeProfileRepo{}
	uc := NewUpdateUserStatus(repo)
	targetID := uuid.New()

	err := uc.Execute(context.Background(), targetID, false, uuid.New())
	require.NoError(t, err)

	require.Len(t, repo.statusCalls, 1)
	assert.Equal(t, targetID, repo.statusCalls[0].id)
	assert.False(t, repo.statusCalls[0].active)
}
