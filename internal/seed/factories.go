// Package seed provides helpers to create test and demo data for the
// application database. These helpers are intended for development and
// testing only.
package seed

import (
	"fmt"
	"math/rand"
	"time"

	"tandem/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// languages is the pool profiles draw native/learning pairs from.
var languages = []string{
	"English", "Spanish", "French", "German", "Mandarin",
	"Japanese", "Korean", "Portuguese", "Italian", "Russian",
	"Arabic", "Hindi", "Dutch", "Turkish", "Swedish",
}

// Factory builds domain entities and persists them to the database.
type Factory struct {
	db *gorm.DB
	r  *rand.Rand
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{
		db: db,
		r:  rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// CreateUser constructs and persists a sample onboarded user.
// Optional overrides may modify the generated user before saving.
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	native := languages[f.r.Intn(len(languages))]
	learning := native
	for learning == native {
		learning = languages[f.r.Intn(len(languages))]
	}

	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)

	user := &models.User{
		FullName:         gofakeit.Name(),
		Email:            gofakeit.Email(),
		Password:         string(hashedPassword),
		ProfilePic:       fmt.Sprintf("https://avatar.iran.liara.run/public/%d.png", f.r.Intn(100)+1),
		Bio:              gofakeit.Sentence(12),
		NativeLanguage:   native,
		LearningLanguage: learning,
		Location:         fmt.Sprintf("%s, %s", gofakeit.City(), gofakeit.Country()),
		IsOnboarded:      true,
	}

	for _, override := range overrides {
		override(user)
	}

	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CreateFriendRequest persists a pending request between two users.
func (f *Factory) CreateFriendRequest(sender, recipient *models.User) (*models.FriendRequest, error) {
	request := &models.FriendRequest{
		SenderID:    sender.ID,
		RecipientID: recipient.ID,
		Status:      models.FriendRequestStatusPending,
	}
	if err := f.db.Create(request).Error; err != nil {
		return nil, err
	}
	return request, nil
}

// AcceptFriendRequest flips a request to accepted and mirrors the friendship
// into both users' friends sets, the same shape the API produces.
func (f *Factory) AcceptFriendRequest(request *models.FriendRequest) error {
	return f.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(request).Update("status", models.FriendRequestStatusAccepted).Error; err != nil {
			return err
		}
		pairs := [][2]uint{
			{request.SenderID, request.RecipientID},
			{request.RecipientID, request.SenderID},
		}
		for _, p := range pairs {
			if err := tx.Exec(
				"INSERT INTO user_friends (user_id, friend_id) VALUES (?, ?) ON CONFLICT DO NOTHING",
				p[0], p[1],
			).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
