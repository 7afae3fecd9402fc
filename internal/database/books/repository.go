// Package books provides database operations for the book catalog.
//
// This package implements the CatalogStore interface defined in
// internal/services/catalog.go.
//
// # Interface Implementation
//
//	var _ services.CatalogStore = (*Repository)(nil)
//
// # Usage
//
//	repo := books.NewRepository(db)
//	books, total, err := repo.List(12, 0)
package books

import (
	"gorm.io/gorm"

	"bookshelf/internal/entities"
)

// Repository handles all catalog database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new books repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// List returns books ordered newest-first with their categories attached,
// along with the total number of books in the catalog.
func (r *Repository) List(limit, offset int) ([]entities.Book, int64, error) {
	var total int64
	if err := r.db.Model(&entities.Book{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var books []entities.Book
	err := r.db.Preload("Category").
		Order("created_at DESC, id DESC").
		Limit(limit).Offset(offset).
		Find(&books).Error
	return books, total, err
}

// Search returns books matching a case-insensitive substring of title,
// author, or description, optionally restricted to a category. Both
// filters are optional; empty filters yield the unfiltered catalog.
func (r *Repository) Search(query string, categoryID uint, limit, offset int) ([]entities.Book, int64, error) {
	base := r.db.Model(&entities.Book{})
	if query != "" {
		pattern := "%" + query + "%"
		base = base.Where(
			"LOWER(title) LIKE LOWER(?) OR LOWER(author) LIKE LOWER(?) OR LOWER(description) LIKE LOWER(?)",
			pattern, pattern, pattern,
		)
	}
	if categoryID != 0 {
		base = base.Where("category_id = ?", categoryID)
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var books []entities.Book
	err := base.Session(&gorm.Session{}).
		Preload("Category").
		Order("created_at DESC, id DESC").
		Limit(limit).Offset(offset).
		Find(&books).Error
	return books, total, err
}

// GetByID retrieves a book with its category and reviews (including the
// reviewing users).
func (r *Repository) GetByID(id uint) (*entities.Book, error) {
	var book entities.Book
	err := r.db.Preload("Category").
		Preload("Reviews", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC")
		}).
		Preload("Reviews.User").
		First(&book, id).Error
	if err != nil {
		return nil, err
	}
	return &book, nil
}

// Create inserts a new book.
func (r *Repository) Create(book *entities.Book) error {
	return r.db.Create(book).Error
}

// Update persists changed book fields.
func (r *Repository) Update(book *entities.Book) error {
	return r.db.Save(book).Error
}

// Delete removes a book together with its shelf entries and reviews in a
// single transaction. The dependent rows are cleared explicitly rather
// than relying on sqlite foreign-key cascades, which require a pragma
// that is off by default.
func (r *Repository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("book_id = ?", id).Delete(&entities.ShelfEntry{}).Error; err != nil {
			return err
		}
		if err := tx.Where("book_id = ?", id).Delete(&entities.Review{}).Error; err != nil {
			return err
		}
		return tx.Delete(&entities.Book{}, id).Error
	})
}

// AverageRating returns the mean rating over a book's current reviews,
// or 0 when the book has none. Always derived on read, never stored.
func (r *Repository) AverageRating(bookID uint) (float64, error) {
	var avg *float64
	err := r.db.Model(&entities.Review{}).
		Where("book_id = ?", bookID).
		Select("AVG(rating)").
		Scan(&avg).Error
	if err != nil {
		return 0, err
	}
	if avg == nil {
		return 0, nil
	}
	return *avg, nil
}

// ReviewCount returns how many reviews a book currently has.
func (r *Repository) ReviewCount(bookID uint) (int64, error) {
	var count int64
	err := r.db.Model(&entities.Review{}).
		Where("book_id = ?", bookID).
		Count(&count).Error
	return count, err
}

// Latest returns the n most recently added books with categories.
func (r *Repository) Latest(n int) ([]entities.Book, error) {
	var books []entities.Book
	err := r.db.Preload("Category").
		Order("created_at DESC, id DESC").
		Limit(n).
		Find(&books).Error
	return books, err
}

// MostReviewed returns the n books with the highest review counts.
func (r *Repository) MostReviewed(n int) ([]entities.Book, error) {
	var books []entities.Book
	err := r.db.Preload("Category").
		Select("books.*, COUNT(reviews.id) AS review_tally").
		Joins("LEFT JOIN reviews ON reviews.book_id = books.id").
		Group("books.id").
		Order("review_tally DESC").
		Limit(n).
		Find(&books).Error
	return books, err
}
