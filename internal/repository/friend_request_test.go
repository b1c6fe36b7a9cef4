package repository

import (
	"context"
	"testing"

	"tandem/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFriendRequestRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewFriendRequestRepository(db)
	users := NewUserRepository(db)
	ctx := context.Background()

	ana := &models.User{FullName: "Ana", Email: "ana@example.com", Password: "x", IsOnboarded: true}
	luis := &models.User{FullName: "Luis", Email: "luis@example.com", Password: "x", IsOnboarded: true}
	require.NoError(t, users.Create(ctx, ana))
	require.NoError(t, users.Create(ctx, luis))

	t.Run("Create and GetIncomingPending", func(t *testing.T) {
		request := &models.FriendRequest{
			SenderID:    ana.ID,
			RecipientID: luis.ID,
			Status:      models.FriendRequestStatusPending,
		}
		require.NoError(t, repo.Create(ctx, request))

		incoming, err := repo.GetIncomingPending(ctx, luis.ID)
		require.NoError(t, err)
		require.Len(t, incoming, 1)
		assert.Equal(t, ana.ID, incoming[0].SenderID)
		assert.Equal(t, "Ana", incoming[0].Sender.FullName)

		outgoing, err := repo.GetOutgoingPending(ctx, ana.ID)
		require.NoError(t, err)
		require.Len(t, outgoing, 1)
		assert.Equal(t, "Luis", outgoing[0].Recipient.FullName)
	})

	t.Run("GetBetweenUsers finds either direction", func(t *testing.T) {
		forward, err := repo.GetBetweenUsers(ctx, ana.ID, luis.ID)
		require.NoError(t, err)
		require.NotNil(t, forward)

		reverse, err := repo.GetBetweenUsers(ctx, luis.ID, ana.ID)
		require.NoError(t, err)
		require.NotNil(t, reverse)
		assert.Equal(t, forward.ID, reverse.ID)
	})

	t.Run("duplicate pair conflicts", func(t *testing.T) {
		err := repo.Create(ctx, &models.FriendRequest{
			SenderID:    ana.ID,
			RecipientID: luis.ID,
			Status:      models.FriendRequestStatusPending,
		})
		require.Error(t, err)
		appErr, ok := err.(*models.AppError)
		require.True(t, ok)
		assert.Equal(t, "CONFLICT", appErr.Code)
	})

	t.Run("Accept flips status and mirrors both friends sets", func(t *testing.T) {
		request, err := repo.GetBetweenUsers(ctx, ana.ID, luis.ID)
		require.NoError(t, err)

		require.NoError(t, repo.Accept(ctx, request.ID))

		updated, err := repo.GetByID(ctx, request.ID)
		require.NoError(t, err)
		assert.Equal(t, models.FriendRequestStatusAccepted, updated.Status)

		anaFriends, err := users.GetFriends(ctx, ana.ID)
		require.NoError(t, err)
		require.Len(t, anaFriends, 1)
		assert.Equal(t, luis.ID, anaFriends[0].ID)

		luisFriends, err := users.GetFriends(ctx, luis.ID)
		require.NoError(t, err)
		require.Len(t, luisFriends, 1)
		assert.Equal(t, ana.ID, luisFriends[0].ID)
	})

	t.Run("Accept is idempotent on join rows", func(t *testing.T) {
		request, err := repo.GetBetweenUsers(ctx, ana.ID, luis.ID)
		require.NoError(t, err)

		require.NoError(t, repo.Accept(ctx, request.ID))

		anaFriends, err := users.GetFriends(ctx, ana.ID)
		require.NoError(t, err)
		assert.Len(t, anaFriends, 1)
	})

	t.Run("accepted request shows up as accepted-sent only", func(t *testing.T) {
		accepted, err := repo.GetAcceptedSent(ctx, ana.ID)
		require.NoError(t, err)
		require.Len(t, accepted, 1)
		assert.Equal(t, "Luis", accepted[0].Recipient.FullName)

		incoming, err := repo.GetIncomingPending(ctx, luis.ID)
		require.NoError(t, err)
		assert.Empty(t, incoming)

		outgoing, err := repo.GetOutgoingPending(ctx, ana.ID)
		require.NoError(t, err)
		assert.Empty(t, outgoing)
	})

	t.Run("GetByID absent is not found", func(t *testing.T) {
		_, err := repo.GetByID(ctx, 9999)
		require.Error(t, err)
		appErr, ok := err.(*models.AppError)
		require.True(t, ok)
		assert.Equal(t, "NOT_FOUND", appErr.Code)
	})
}
