package service

import (
	"context"
	"log/slog"
	"strconv"

	"tandem/internal/chatprovider"
	"tandem/internal/middleware"
	"tandem/internal/models"
	"tandem/internal/observability"
	"tandem/internal/repository"
	"tandem/internal/validation"
)

// OnboardingInput carries the profile fields a user must fill in before the
// rest of the app opens up.
type OnboardingInput struct {
	FullName         string `json:"fullName"`
	Bio              string `json:"bio"`
	NativeLanguage   string `json:"nativeLanguage"`
	LearningLanguage string `json:"learningLanguage"`
	Location         string `json:"location"`
	ProfilePic       string `json:"profilePic"`
}

// UserService handles profile lifecycle and keeps the chat provider's copy of
// the profile in sync.
type UserService struct {
	userRepo repository.UserRepository
	chat     chatprovider.Client
}

// NewUserService returns a new UserService.
func NewUserService(userRepo repository.UserRepository, chat chatprovider.Client) *UserService {
	return &UserService{
		userRepo: userRepo,
		chat:     chat,
	}
}

// CompleteOnboarding fills in the user's profile and flips the onboarded
// flag. All five text fields are required; the response names every one that
// is missing so the client can highlight them in a single round trip.
func (s *UserService) CompleteOnboarding(ctx context.Context, userID uint, input OnboardingInput) (*models.User, error) {
	missing := validation.MissingOnboardingFields(
		input.FullName,
		input.Bio,
		input.NativeLanguage,
		input.LearningLanguage,
		input.Location,
	)
	if len(missing) > 0 {
		return nil, models.NewMissingFieldsError(missing)
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.FullName = input.FullName
	user.Bio = input.Bio
	user.NativeLanguage = input.NativeLanguage
	user.LearningLanguage = input.LearningLanguage
	user.Location = input.Location
	if input.ProfilePic != "" {
		user.ProfilePic = input.ProfilePic
	}
	user.IsOnboarded = true

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	s.SyncChatProfile(ctx, user)

	return user, nil
}

// SyncChatProfile pushes the user's name and avatar to the chat provider.
// Failures are logged and counted but never surfaced: chat sync must not
// block signup or onboarding.
func (s *UserService) SyncChatProfile(ctx context.Context, user *models.User) {
	err := s.chat.UpsertUser(ctx, chatprovider.UserRecord{
		ID:    strconv.FormatUint(uint64(user.ID), 10),
		Name:  user.FullName,
		Image: user.ProfilePic,
	})
	if err != nil {
		observability.ChatProviderCalls.WithLabelValues("error").Inc()
		middleware.Logger.ErrorContext(ctx, "chat provider upsert failed",
			slog.Uint64("user_id", uint64(user.ID)),
			slog.String("error", err.Error()),
		)
		return
	}
	observability.ChatProviderCalls.WithLabelValues("ok").Inc()
}
