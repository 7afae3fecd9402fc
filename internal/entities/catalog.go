package entities

import (
	"time"
)

type Category struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"uniqueIndex;size:100" json:"name"`
	Books     []Book    `gorm:"foreignKey:CategoryID" json:"-"`
	CreatedAt time.Time `json:"created_at"`

	// BooksCount is filled by the category listing query, not stored.
	BooksCount int64 `gorm:"->;-:migration" json:"books_count,omitempty"`
}

type Book struct {
	ID            uint         `gorm:"primaryKey" json:"id"`
	Title         string       `gorm:"index;size:255" json:"title"`
	Author        string       `gorm:"index;size:255" json:"author"`
	Description   string       `gorm:"type:text" json:"description,omitempty"`
	CoverImage    string       `gorm:"size:255" json:"cover_image,omitempty"` // stored filename, served from the public covers dir
	ISBN          string       `gorm:"size:20" json:"isbn,omitempty"`
	PublishedYear int          `json:"published_year,omitempty"`
	Publisher     string       `gorm:"size:255" json:"publisher,omitempty"`
	CategoryID    uint         `gorm:"index" json:"category_id"`
	Category      Category     `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Reviews       []Review     `gorm:"foreignKey:BookID" json:"reviews,omitempty"`
	ShelfEntries  []ShelfEntry `gorm:"foreignKey:BookID" json:"-"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
}

func (Category) TableName() string {
	return "categories"
}

func (Book) TableName() string {
	return "books"
}
