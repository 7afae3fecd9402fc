package entities

import (
	"time"
)

// ShelfType is a user's personal reading-status tag for a book.
type ShelfType string

const (
	ShelfWantToRead       ShelfType = "want_to_read"
	ShelfCurrentlyReading ShelfType = "currently_reading"
	ShelfRead             ShelfType = "read"
)

// Valid reports whether t is one of the three known shelf types.
func (t ShelfType) Valid() bool {
	switch t {
	case ShelfWantToRead, ShelfCurrentlyReading, ShelfRead:
		return true
	}
	return false
}

// DisplayName returns the human-readable shelf name.
func (t ShelfType) DisplayName() string {
	switch t {
	case ShelfWantToRead:
		return "Want to Read"
	case ShelfCurrentlyReading:
		return "Currently Reading"
	case ShelfRead:
		return "Read"
	}
	return string(t)
}

// ShelfEntry records which shelf a user has placed a book on.
// A user has at most one entry per book; reassigning a book to another
// shelf overwrites the entry in place.
type ShelfEntry struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"uniqueIndex:idx_bookshelves_user_book" json:"user_id"`
	BookID    uint      `gorm:"uniqueIndex:idx_bookshelves_user_book" json:"book_id"`
	ShelfType ShelfType `gorm:"size:20" json:"shelf_type"`
	User      User      `gorm:"foreignKey:UserID" json:"-"`
	Book      Book      `gorm:"foreignKey:BookID" json:"book,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (ShelfEntry) TableName() string {
	return "bookshelves"
}
