// Package service contains the business logic between handlers and repositories.
package service

import (
	"context"

	"tandem/internal/models"
	"tandem/internal/observability"
	"tandem/internal/repository"
)

// FriendService governs the friend-request ledger and the derived friends
// relation. Every invariant around requests lives here.
type FriendService struct {
	requestRepo repository.FriendRequestRepository
	userRepo    repository.UserRepository
}

// NewFriendService returns a new FriendService.
func NewFriendService(requestRepo repository.FriendRequestRepository, userRepo repository.UserRepository) *FriendService {
	return &FriendService{
		requestRepo: requestRepo,
		userRepo:    userRepo,
	}
}

// FriendRequestsOverview is the combined view returned by ListAll: pending
// requests addressed to the user, plus requests the user sent that were
// accepted. Accepted requests the user received are intentionally absent:
// the view mirrors what the product has always shown.
type FriendRequestsOverview struct {
	IncomingReqs []models.FriendRequestView `json:"incomingReqs"`
	AcceptedReqs []models.FriendRequestView `json:"acceptedReqs"`
}

// SendRequest creates a pending friend request from sender to recipient.
func (s *FriendService) SendRequest(ctx context.Context, senderID, recipientID uint) (*models.FriendRequest, error) {
	if senderID == recipientID {
		return nil, models.NewValidationError("You can't send a friend request to yourself")
	}

	if _, err := s.userRepo.GetByID(ctx, recipientID); err != nil {
		return nil, err
	}

	alreadyFriends, err := s.userRepo.IsFriend(ctx, recipientID, senderID)
	if err != nil {
		return nil, err
	}
	if alreadyFriends {
		return nil, models.NewConflictError("You are already friends with this user")
	}

	// One request per unordered pair, regardless of direction or status.
	// There is no rejected state, so an old request permanently blocks
	// re-sending.
	existing, err := s.requestRepo.GetBetweenUsers(ctx, senderID, recipientID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, models.NewConflictError("A friend request already exists between you and this user")
	}

	request := &models.FriendRequest{
		SenderID:    senderID,
		RecipientID: recipientID,
		Status:      models.FriendRequestStatusPending,
	}
	if err := s.requestRepo.Create(ctx, request); err != nil {
		return nil, err
	}

	return s.requestRepo.GetByID(ctx, request.ID)
}

// AcceptRequest transitions a pending request to accepted and mirrors the
// pair into both users' friends sets. Only the recipient may accept.
func (s *FriendService) AcceptRequest(ctx context.Context, actingUserID, requestID uint) (*models.FriendRequest, error) {
	request, err := s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	if request.RecipientID != actingUserID {
		return nil, models.NewForbiddenError("You are not authorized to accept this request")
	}
	if request.Status != models.FriendRequestStatusPending {
		return nil, models.NewConflictError("Friend request is not pending")
	}

	if err := s.requestRepo.Accept(ctx, requestID); err != nil {
		return nil, err
	}
	observability.FriendRequestsAccepted.Inc()

	return s.requestRepo.GetByID(ctx, requestID)
}

// ListRecommended returns onboarded users who are neither the caller nor
// already friends with the caller.
func (s *FriendService) ListRecommended(ctx context.Context, userID uint) ([]models.User, error) {
	return s.userRepo.ListRecommended(ctx, userID)
}

// ListFriends resolves the caller's friends set to profile summaries.
func (s *FriendService) ListFriends(ctx context.Context, userID uint) ([]models.UserSummary, error) {
	friends, err := s.userRepo.GetFriends(ctx, userID)
	if err != nil {
		return nil, err
	}
	summaries := make([]models.UserSummary, 0, len(friends))
	for i := range friends {
		summaries = append(summaries, friends[i].Summary())
	}
	return summaries, nil
}

// ListIncoming returns pending requests addressed to the user, each with the
// sender's profile summary.
func (s *FriendService) ListIncoming(ctx context.Context, userID uint) ([]models.FriendRequestView, error) {
	requests, err := s.requestRepo.GetIncomingPending(ctx, userID)
	if err != nil {
		return nil, err
	}
	return viewsWithSender(requests), nil
}

// ListOutgoing returns pending requests the user sent, each with the
// recipient's profile summary.
func (s *FriendService) ListOutgoing(ctx context.Context, userID uint) ([]models.FriendRequestView, error) {
	requests, err := s.requestRepo.GetOutgoingPending(ctx, userID)
	if err != nil {
		return nil, err
	}
	return viewsWithRecipient(requests), nil
}

// ListAll combines incoming-pending and accepted-as-sender requests.
func (s *FriendService) ListAll(ctx context.Context, userID uint) (*FriendRequestsOverview, error) {
	incoming, err := s.requestRepo.GetIncomingPending(ctx, userID)
	if err != nil {
		return nil, err
	}
	accepted, err := s.requestRepo.GetAcceptedSent(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &FriendRequestsOverview{
		IncomingReqs: viewsWithSender(incoming),
		AcceptedReqs: viewsWithRecipient(accepted),
	}, nil
}

func viewsWithSender(requests []models.FriendRequest) []models.FriendRequestView {
	views := make([]models.FriendRequestView, 0, len(requests))
	for i := range requests {
		views = append(views, models.FriendRequestView{
			ID:        requests[i].ID,
			Status:    requests[i].Status,
			User:      requests[i].Sender.Summary(),
			CreatedAt: requests[i].CreatedAt,
		})
	}
	return views
}

func viewsWithRecipient(requests []models.FriendRequest) []models.FriendRequestView {
	views := make([]models.FriendRequestView, 0, len(requests))
	for i := range requests {
		views = append(views, models.FriendRequestView{
			ID:        requests[i].ID,
			Status:    requests[i].Status,
			User:      requests[i].Recipient.Summary(),
			CreatedAt: requests[i].CreatedAt,
		})
	}
	return views
}
