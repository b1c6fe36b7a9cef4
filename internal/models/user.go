// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"gorm.io/gorm"
)

// User represents an account in the language-exchange platform.
type User struct {
	ID               uint           `gorm:"primaryKey" json:"id"`
	Email            string         `gorm:"unique;not null" json:"email"`
	Password         string         `gorm:"not null" json:"-"`
	FullName         string         `gorm:"not null" json:"fullName"`
	ProfilePic       string         `json:"profilePic"`
	Bio              string         `json:"bio"`
	NativeLanguage   string         `json:"nativeLanguage"`
	LearningLanguage string         `json:"learningLanguage"`
	Location         string         `json:"location"`
	IsOnboarded      bool           `gorm:"default:false" json:"isOnboarded"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`

	// Friends mirrors accepted friend requests. The relation is symmetric:
	// accepting a request inserts a join row in both directions.
	Friends []*User `gorm:"many2many:user_friends;joinForeignKey:UserID;joinReferences:FriendID" json:"-"`
}

// UserSummary is the profile projection returned in friend and request lists.
type UserSummary struct {
	ID               uint   `json:"id"`
	FullName         string `json:"fullName"`
	ProfilePic       string `json:"profilePic"`
	NativeLanguage   string `json:"nativeLanguage"`
	LearningLanguage string `json:"learningLanguage"`
}

// Summary projects the user onto its list representation.
func (u *User) Summary() UserSummary {
	return UserSummary{
		ID:               u.ID,
		FullName:         u.FullName,
		ProfilePic:       u.ProfilePic,
		NativeLanguage:   u.NativeLanguage,
		LearningLanguage: u.LearningLanguage,
	}
}
