// Package reviews provides database operations for book reviews.
//
// The (user_id, book_id) pair is unique. Create relies on the storage
// constraint rather than a check-then-insert, so a race between two
// concurrent requests surfaces as gorm.ErrDuplicatedKey and never as
// duplicate rows.
package reviews

import (
	"gorm.io/gorm"

	"bookshelf/internal/entities"
)

// Repository handles review database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new reviews repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new review. Returns gorm.ErrDuplicatedKey when the
// user has already reviewed the book.
func (r *Repository) Create(review *entities.Review) error {
	return r.db.Create(review).Error
}

// GetByID retrieves a review.
func (r *Repository) GetByID(id uint) (*entities.Review, error) {
	var review entities.Review
	err := r.db.First(&review, id).Error
	if err != nil {
		return nil, err
	}
	return &review, nil
}

// GetByUserAndBook retrieves a user's review of a book, if any.
func (r *Repository) GetByUserAndBook(userID, bookID uint) (*entities.Review, error) {
	var review entities.Review
	err := r.db.Where("user_id = ? AND book_id = ?", userID, bookID).First(&review).Error
	if err != nil {
		return nil, err
	}
	return &review, nil
}

// Update overwrites a review's rating and comment in place.
func (r *Repository) Update(id uint, rating int, comment string) error {
	return r.db.Model(&entities.Review{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"rating":  rating,
			"comment": comment,
		}).Error
}

// Delete removes a review.
func (r *Repository) Delete(id uint) error {
	return r.db.Delete(&entities.Review{}, id).Error
}
