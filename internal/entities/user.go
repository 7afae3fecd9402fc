package entities

import (
	"time"
)

type UserRole string

const (
	UserRoleAdmin  UserRole = "admin"  // may manage the catalog
	UserRoleMember UserRole = "member" // regular reader
)

type User struct {
	ID             uint     `gorm:"primaryKey" json:"id"`
	Name           string   `gorm:"size:255" json:"name"`
	Email          string   `gorm:"uniqueIndex;size:255" json:"email"`
	PasswordHash   string   `gorm:"size:255" json:"-"`
	ProfilePicture string   `gorm:"size:255" json:"profile_picture,omitempty"`
	Role           UserRole `gorm:"size:20;default:'member'" json:"role"`

	// Login lockout bookkeeping
	FailedLoginCount int        `gorm:"default:0" json:"-"`
	LockedUntil      *time.Time `json:"-"`
	LastLoginAt      *time.Time `json:"-"`

	Reviews      []Review     `gorm:"foreignKey:UserID" json:"-"`
	ShelfEntries []ShelfEntry `gorm:"foreignKey:UserID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

// IsAdmin reports whether the user may perform catalog management.
func (u *User) IsAdmin() bool {
	return u.Role == UserRoleAdmin
}
