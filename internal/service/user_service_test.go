package service

import (
	"context"
	"errors"
	"testing"

	"tandem/internal/chatprovider"
	"tandem/internal/models"
)

type chatClientStub struct {
	upsertFn func(context.Context, chatprovider.UserRecord) error
	calls    int
}

func (s *chatClientStub) UpsertUser(ctx context.Context, user chatprovider.UserRecord) error {
	s.calls++
	if s.upsertFn != nil {
		return s.upsertFn(ctx, user)
	}
	return nil
}

func validOnboardingInput() OnboardingInput {
	return OnboardingInput{
		FullName:         "Ana Martinez",
		Bio:              "Learning English for work",
		NativeLanguage:   "Spanish",
		LearningLanguage: "English",
		Location:         "Madrid, Spain",
	}
}

func TestCompleteOnboardingMissingFields(t *testing.T) {
	users := noopUserRepo()
	updated := false
	users.updateFn = func(context.Context, *models.User) error {
		updated = true
		return nil
	}

	svc := NewUserService(users, &chatClientStub{})

	input := validOnboardingInput()
	input.Bio = ""
	_, err := svc.CompleteOnboarding(context.Background(), 1, input)

	var appErr *models.AppError
	if !errors.As(err, &appErr) || appErr.Code != "VALIDATION_ERROR" {
		t.Fatalf("expected validation app error, got %#v", err)
	}
	if len(appErr.MissingFields) != 1 || appErr.MissingFields[0] != "bio" {
		t.Fatalf("expected exactly [bio], got %v", appErr.MissingFields)
	}
	if updated {
		t.Fatal("user must not be persisted when fields are missing")
	}
}

func TestCompleteOnboardingSuccess(t *testing.T) {
	users := noopUserRepo()
	users.getByIDFn = func(context.Context, uint) (*models.User, error) {
		return &models.User{ID: 1, ProfilePic: "pic.png"}, nil
	}
	var saved *models.User
	users.updateFn = func(_ context.Context, u *models.User) error {
		saved = u
		return nil
	}

	chat := &chatClientStub{}
	svc := NewUserService(users, chat)

	user, err := svc.CompleteOnboarding(context.Background(), 1, validOnboardingInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !user.IsOnboarded {
		t.Fatal("expected IsOnboarded to be set")
	}
	if saved == nil || saved.NativeLanguage != "Spanish" || saved.Location != "Madrid, Spain" {
		t.Fatalf("expected profile fields persisted, got %+v", saved)
	}
	// Avatar is kept when no replacement is supplied.
	if user.ProfilePic != "pic.png" {
		t.Fatalf("profile picture should be preserved, got %q", user.ProfilePic)
	}
	if chat.calls != 1 {
		t.Fatalf("expected one chat provider upsert, got %d", chat.calls)
	}
}

func TestCompleteOnboardingChatFailureIsSwallowed(t *testing.T) {
	users := noopUserRepo()
	users.getByIDFn = func(context.Context, uint) (*models.User, error) {
		return &models.User{ID: 1}, nil
	}

	chat := &chatClientStub{
		upsertFn: func(context.Context, chatprovider.UserRecord) error {
			return errors.New("provider down")
		},
	}
	svc := NewUserService(users, chat)

	user, err := svc.CompleteOnboarding(context.Background(), 1, validOnboardingInput())
	if err != nil {
		t.Fatalf("onboarding must succeed despite chat provider failure, got %v", err)
	}
	if !user.IsOnboarded {
		t.Fatal("expected IsOnboarded to be set")
	}
	if chat.calls != 1 {
		t.Fatalf("expected chat provider to be attempted once, got %d", chat.calls)
	}
}
