package repository

import (
	"context"
	"errors"

	"tandem/internal/cache"
	"tandem/internal/models"

	"gorm.io/gorm"
)

// FriendRequestRepository defines the interface for friend request ledger operations.
type FriendRequestRepository interface {
	Create(ctx context.Context, request *models.FriendRequest) error
	GetByID(ctx context.Context, id uint) (*models.FriendRequest, error)
	// GetBetweenUsers finds the request between two users in either direction,
	// regardless of status. Returns (nil, nil) when no record exists.
	GetBetweenUsers(ctx context.Context, userID1, userID2 uint) (*models.FriendRequest, error)
	// Accept flips the request to accepted and mirrors the pair into both
	// users' friends sets, all inside a single transaction.
	Accept(ctx context.Context, requestID uint) error
	GetIncomingPending(ctx context.Context, userID uint) ([]models.FriendRequest, error)
	GetOutgoingPending(ctx context.Context, userID uint) ([]models.FriendRequest, error)
	GetAcceptedSent(ctx context.Context, userID uint) ([]models.FriendRequest, error)
}

type friendRequestRepository struct {
	db *gorm.DB
}

// NewFriendRequestRepository creates a new friend request repository
func NewFriendRequestRepository(db *gorm.DB) FriendRequestRepository {
	return &friendRequestRepository{db: db}
}

func (r *friendRequestRepository) Create(ctx context.Context, request *models.FriendRequest) error {
	if err := r.db.WithContext(ctx).Create(request).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewConflictError("A friend request already exists between you and this user")
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *friendRequestRepository) GetByID(ctx context.Context, id uint) (*models.FriendRequest, error) {
	var request models.FriendRequest
	if err := r.db.WithContext(ctx).
		Preload("Sender").
		Preload("Recipient").
		First(&request, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Friend request", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &request, nil
}

func (r *friendRequestRepository) GetBetweenUsers(ctx context.Context, userID1, userID2 uint) (*models.FriendRequest, error) {
	var request models.FriendRequest
	if err := r.db.WithContext(ctx).
		Where("(sender_id = ? AND recipient_id = ?) OR (sender_id = ? AND recipient_id = ?)",
			userID1, userID2, userID2, userID1).
		First(&request).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &request, nil
}

func (r *friendRequestRepository) Accept(ctx context.Context, requestID uint) error {
	var request models.FriendRequest

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&request, requestID).Error; err != nil {
			return err
		}

		if err := tx.Model(&models.FriendRequest{}).
			Where("id = ?", requestID).
			Update("status", models.FriendRequestStatusAccepted).Error; err != nil {
			return err
		}

		// Mirror the accepted pair into both friends sets. ON CONFLICT keeps
		// the insert idempotent.
		for _, pair := range [][2]uint{
			{request.SenderID, request.RecipientID},
			{request.RecipientID, request.SenderID},
		} {
			if err := tx.Exec(
				"INSERT INTO user_friends (user_id, friend_id) VALUES (?, ?) ON CONFLICT DO NOTHING",
				pair[0], pair[1],
			).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return models.NewInternalError(err)
	}

	cache.InvalidateUser(ctx, request.SenderID)
	cache.InvalidateUser(ctx, request.RecipientID)
	return nil
}

func (r *friendRequestRepository) GetIncomingPending(ctx context.Context, userID uint) ([]models.FriendRequest, error) {
	var requests []models.FriendRequest
	if err := r.db.WithContext(ctx).
		Where("recipient_id = ? AND status = ?", userID, models.FriendRequestStatusPending).
		Preload("Sender").
		Find(&requests).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return requests, nil
}

func (r *friendRequestRepository) GetOutgoingPending(ctx context.Context, userID uint) ([]models.FriendRequest, error) {
	var requests []models.FriendRequest
	if err := r.db.WithContext(ctx).
		Where("sender_id = ? AND status = ?", userID, models.FriendRequestStatusPending).
		Preload("Recipient").
		Find(&requests).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return requests, nil
}

func (r *friendRequestRepository) GetAcceptedSent(ctx context.Context, userID uint) ([]models.FriendRequest, error) {
	var requests []models.FriendRequest
	if err := r.db.WithContext(ctx).
		Where("sender_id = ? AND status = ?", userID, models.FriendRequestStatusAccepted).
		Preload("Recipient").
		Find(&requests).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return requests, nil
}
