// Package shelves provides database operations for per-user bookshelf
// entries.
//
// The (user_id, book_id) pair is unique: assigning a book to a shelf is
// an upsert performed at the storage layer via ON CONFLICT, so two
// concurrent assignments for the same pair can never produce duplicate
// rows.
package shelves

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"bookshelf/internal/entities"
)

// Repository handles bookshelf database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new shelves repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Upsert inserts a shelf entry for (userID, bookID) or, when one already
// exists, overwrites its shelf type in place. No history is kept.
func (r *Repository) Upsert(userID, bookID uint, shelfType entities.ShelfType) (*entities.ShelfEntry, error) {
	entry := entities.ShelfEntry{
		UserID:    userID,
		BookID:    bookID,
		ShelfType: shelfType,
	}
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "book_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"shelf_type", "updated_at"}),
	}).Create(&entry).Error
	if err != nil {
		return nil, err
	}

	// The upsert path leaves entry.ID unset when the row already existed,
	// so re-read the canonical row.
	return r.GetByUserAndBook(userID, bookID)
}

// GetByID retrieves a shelf entry.
func (r *Repository) GetByID(id uint) (*entities.ShelfEntry, error) {
	var entry entities.ShelfEntry
	err := r.db.First(&entry, id).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// GetByUserAndBook retrieves the single entry for a (user, book) pair.
func (r *Repository) GetByUserAndBook(userID, bookID uint) (*entities.ShelfEntry, error) {
	var entry entities.ShelfEntry
	err := r.db.Where("user_id = ? AND book_id = ?", userID, bookID).First(&entry).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// UpdateType overwrites the shelf type of an existing entry.
func (r *Repository) UpdateType(id uint, shelfType entities.ShelfType) error {
	return r.db.Model(&entities.ShelfEntry{}).
		Where("id = ?", id).
		Update("shelf_type", shelfType).Error
}

// Delete removes a shelf entry.
func (r *Repository) Delete(id uint) error {
	return r.db.Delete(&entities.ShelfEntry{}, id).Error
}

// ListByUser returns all of a user's shelf entries with each book and
// its category attached.
func (r *Repository) ListByUser(userID uint) ([]entities.ShelfEntry, error) {
	var entries []entities.ShelfEntry
	err := r.db.Preload("Book").Preload("Book.Category").
		Where("user_id = ?", userID).
		Find(&entries).Error
	return entries, err
}
