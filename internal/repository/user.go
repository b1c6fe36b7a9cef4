// Package repository implements the data access layer for the application.
package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"tandem/internal/cache"
	"tandem/internal/models"

	"gorm.io/gorm"
)

// UserRepository defines persistence operations for users.
type UserRepository interface {
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	Update(ctx context.Context, user *models.User) error
	// ListRecommended returns onboarded users excluding the given user and
	// everyone already in their friends set.
	ListRecommended(ctx context.Context, userID uint) ([]models.User, error)
	// GetFriends resolves the user's friends set to user records.
	GetFriends(ctx context.Context, userID uint) ([]models.User, error)
	IsFriend(ctx context.Context, userID, otherID uint) (bool, error)
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository returns a new UserRepository implementation.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// userRecord is the cache representation of a user row. The API model hides
// the password hash and soft-delete marker from JSON, so marshaling it into
// the cache would drop them on the round-trip and a later Save would persist
// the zero values.
type userRecord struct {
	ID               uint           `json:"id"`
	Email            string         `json:"email"`
	Password         string         `json:"password"`
	FullName         string         `json:"fullName"`
	ProfilePic       string         `json:"profilePic"`
	Bio              string         `json:"bio"`
	NativeLanguage   string         `json:"nativeLanguage"`
	LearningLanguage string         `json:"learningLanguage"`
	Location         string         `json:"location"`
	IsOnboarded      bool           `json:"isOnboarded"`
	CreatedAt        time.Time      `json:"createdAt"`
	UpdatedAt        time.Time      `json:"updatedAt"`
	DeletedAt        gorm.DeletedAt `json:"deletedAt"`
}

func newUserRecord(u *models.User) userRecord {
	return userRecord{
		ID:               u.ID,
		Email:            u.Email,
		Password:         u.Password,
		FullName:         u.FullName,
		ProfilePic:       u.ProfilePic,
		Bio:              u.Bio,
		NativeLanguage:   u.NativeLanguage,
		LearningLanguage: u.LearningLanguage,
		Location:         u.Location,
		IsOnboarded:      u.IsOnboarded,
		CreatedAt:        u.CreatedAt,
		UpdatedAt:        u.UpdatedAt,
		DeletedAt:        u.DeletedAt,
	}
}

func (rec *userRecord) user() models.User {
	return models.User{
		ID:               rec.ID,
		Email:            rec.Email,
		Password:         rec.Password,
		FullName:         rec.FullName,
		ProfilePic:       rec.ProfilePic,
		Bio:              rec.Bio,
		NativeLanguage:   rec.NativeLanguage,
		LearningLanguage: rec.LearningLanguage,
		Location:         rec.Location,
		IsOnboarded:      rec.IsOnboarded,
		CreatedAt:        rec.CreatedAt,
		UpdatedAt:        rec.UpdatedAt,
		DeletedAt:        rec.DeletedAt,
	}
}

func (r *userRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	var rec userRecord
	key := cache.UserKey(id)

	err := cache.Aside(ctx, key, &rec, cache.UserTTL, func() error {
		var user models.User
		if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("User", id)
			}
			return models.NewInternalError(err)
		}
		rec = newUserRecord(&user)
		return nil
	})

	if err != nil {
		return nil, err
	}
	user := rec.user()
	return &user, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &user, nil
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewConflictError("Email already exists, please use a different one")
		}
		return models.NewInternalError(err)
	}
	return nil
}

// isUniqueConstraintError checks if a DB error is a unique constraint violation.
func isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	// PostgreSQL unique violation SQLSTATE 23505; SQLite phrasing for tests
	return strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "23505")
}

func (r *userRepository) Update(ctx context.Context, user *models.User) error {
	if err := r.db.WithContext(ctx).Save(user).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateUser(ctx, user.ID)
	return nil
}

func (r *userRepository) ListRecommended(ctx context.Context, userID uint) ([]models.User, error) {
	var users []models.User
	if err := r.db.WithContext(ctx).
		Where("is_onboarded = ?", true).
		Where("id <> ?", userID).
		Where("id NOT IN (SELECT friend_id FROM user_friends WHERE user_id = ?)", userID).
		Find(&users).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return users, nil
}

func (r *userRepository) GetFriends(ctx context.Context, userID uint) ([]models.User, error) {
	var users []models.User
	if err := r.db.WithContext(ctx).
		Table("users").
		Joins("JOIN user_friends uf ON users.id = uf.friend_id").
		Where("uf.user_id = ?", userID).
		Find(&users).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return users, nil
}

func (r *userRepository) IsFriend(ctx context.Context, userID, otherID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Table("user_friends").
		Where("user_id = ? AND friend_id = ?", userID, otherID).
		Count(&count).Error; err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}
