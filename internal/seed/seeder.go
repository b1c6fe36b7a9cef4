package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"tandem/internal/models"

	"gorm.io/gorm"
)

// Seeder populates the database with a realistic community: onboarded users,
// a spread of pending requests, and some accepted friendships.
type Seeder struct {
	db      *gorm.DB
	factory *Factory
	r       *rand.Rand
}

// NewSeeder creates a Seeder bound to the provided Gorm DB.
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{
		db:      db,
		factory: NewFactory(db),
		r:       rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// ClearAll removes all seeded data. Order matters: join rows and requests
// reference users.
func (s *Seeder) ClearAll() error {
	log.Println("Clearing existing data...")
	if err := s.db.Exec("DELETE FROM user_friends").Error; err != nil {
		return fmt.Errorf("clearing user_friends: %w", err)
	}
	if err := s.db.Unscoped().Where("1 = 1").Delete(&models.FriendRequest{}).Error; err != nil {
		return fmt.Errorf("clearing friend_requests: %w", err)
	}
	if err := s.db.Unscoped().Where("1 = 1").Delete(&models.User{}).Error; err != nil {
		return fmt.Errorf("clearing users: %w", err)
	}
	return nil
}

// SeedCommunity creates numUsers onboarded users and wires roughly a third
// of all generated requests into accepted friendships.
func (s *Seeder) SeedCommunity(numUsers int) ([]*models.User, error) {
	log.Printf("Creating %d users...", numUsers)

	users := make([]*models.User, 0, numUsers)
	for i := 0; i < numUsers; i++ {
		user, err := s.factory.CreateUser()
		if err != nil {
			return nil, fmt.Errorf("creating user %d: %w", i, err)
		}
		users = append(users, user)
	}

	// Each user reaches out to a couple of random others. The pair
	// uniqueness check mirrors what the API enforces.
	requested := make(map[[2]uint]bool)
	var requests []*models.FriendRequest
	for _, sender := range users {
		for n := 0; n < 2; n++ {
			recipient := users[s.r.Intn(len(users))]
			if recipient.ID == sender.ID {
				continue
			}
			key := pairKey(sender.ID, recipient.ID)
			if requested[key] {
				continue
			}
			requested[key] = true

			request, err := s.factory.CreateFriendRequest(sender, recipient)
			if err != nil {
				return nil, fmt.Errorf("creating friend request: %w", err)
			}
			requests = append(requests, request)
		}
	}

	accepted := 0
	for _, request := range requests {
		if s.r.Intn(3) != 0 {
			continue
		}
		if err := s.factory.AcceptFriendRequest(request); err != nil {
			return nil, fmt.Errorf("accepting friend request: %w", err)
		}
		accepted++
	}

	log.Printf("Seeded %d users, %d requests (%d accepted)", len(users), len(requests), accepted)
	return users, nil
}

func pairKey(a, b uint) [2]uint {
	if a > b {
		a, b = b, a
	}
	return [2]uint{a, b}
}
