package models

import "time"

// FriendRequestStatus represents the state of a friend request.
type FriendRequestStatus string

const (
	// FriendRequestStatusPending indicates a request that has not been accepted yet.
	FriendRequestStatusPending FriendRequestStatus = "pending"
	// FriendRequestStatusAccepted is the terminal state; there is no transition out of it.
	FriendRequestStatusAccepted FriendRequestStatus = "accepted"
)

// FriendRequest is a ledger record between two users. At most one record
// exists per unordered {sender, recipient} pair, regardless of status, and
// records are never deleted: a request permanently occupies the pair slot.
type FriendRequest struct {
	ID          uint                `gorm:"primaryKey" json:"id"`
	SenderID    uint                `gorm:"not null;uniqueIndex:idx_friend_request_pair" json:"sender_id"`
	RecipientID uint                `gorm:"not null;uniqueIndex:idx_friend_request_pair" json:"recipient_id"`
	Status      FriendRequestStatus `gorm:"type:varchar(20);default:'pending';index" json:"status"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`

	Sender    User `gorm:"foreignKey:SenderID" json:"sender,omitempty"`
	Recipient User `gorm:"foreignKey:RecipientID" json:"recipient,omitempty"`
}

// TableName specifies the table name for GORM
func (FriendRequest) TableName() string {
	return "friend_requests"
}

// FriendRequestView pairs a request with the counterpart's profile summary,
// as rendered in incoming/outgoing request lists.
type FriendRequestView struct {
	ID        uint                `json:"id"`
	Status    FriendRequestStatus `json:"status"`
	User      UserSummary         `json:"user"`
	CreatedAt time.Time           `json:"created_at"`
}
