package entities

import (
	"time"
)

// Rating bounds for reviews, inclusive.
const (
	MinRating = 1
	MaxRating = 5
)

// Review is a user's rating and optional comment for a book.
// A user may post at most one review per book, enforced by the
// composite unique index.
type Review struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"uniqueIndex:idx_reviews_user_book" json:"user_id"`
	BookID    uint      `gorm:"uniqueIndex:idx_reviews_user_book" json:"book_id"`
	Rating    int       `json:"rating"`
	Comment   string    `gorm:"type:text" json:"comment,omitempty"`
	User      User      `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Book      Book      `gorm:"foreignKey:BookID" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Review) TableName() string {
	return "reviews"
}
