// Package categories provides database operations for book categories.
package categories

import (
	"gorm.io/gorm"

	"bookshelf/internal/entities"
)

// Repository handles category database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new categories repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// List returns all categories with their book counts filled in.
func (r *Repository) List() ([]entities.Category, error) {
	var categories []entities.Category
	err := r.db.Model(&entities.Category{}).
		Select("categories.*, COUNT(books.id) AS books_count").
		Joins("LEFT JOIN books ON books.category_id = categories.id").
		Group("categories.id").
		Order("categories.name ASC").
		Find(&categories).Error
	return categories, err
}

// GetByID retrieves a single category.
func (r *Repository) GetByID(id uint) (*entities.Category, error) {
	var category entities.Category
	err := r.db.First(&category, id).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// Exists reports whether a category with the given ID exists.
func (r *Repository) Exists(id uint) (bool, error) {
	var count int64
	err := r.db.Model(&entities.Category{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// Books returns a category's books, paginated, newest-first.
func (r *Repository) Books(categoryID uint, limit, offset int) ([]entities.Book, int64, error) {
	var total int64
	if err := r.db.Model(&entities.Book{}).Where("category_id = ?", categoryID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var books []entities.Book
	err := r.db.Preload("Category").
		Where("category_id = ?", categoryID).
		Order("created_at DESC, id DESC").
		Limit(limit).Offset(offset).
		Find(&books).Error
	return books, total, err
}
