// Package users provides database operations for user accounts.
package users

import (
	"gorm.io/gorm"

	"bookshelf/internal/entities"
)

// Repository handles user database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new users repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new user. Returns gorm.ErrDuplicatedKey when the
// email is already taken.
func (r *Repository) Create(user *entities.User) error {
	return r.db.Create(user).Error
}

// GetByID retrieves a user.
func (r *Repository) GetByID(id uint) (*entities.User, error) {
	var user entities.User
	err := r.db.First(&user, id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByEmail retrieves a user by email.
func (r *Repository) GetByEmail(email string) (*entities.User, error) {
	var user entities.User
	err := r.db.Where("email = ?", email).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// EmailTaken reports whether another user already owns the email.
func (r *Repository) EmailTaken(email string, excludeID uint) (bool, error) {
	var count int64
	err := r.db.Model(&entities.User{}).
		Where("email = ? AND id <> ?", email, excludeID).
		Count(&count).Error
	return count > 0, err
}

// Update persists changed user fields.
func (r *Repository) Update(user *entities.User) error {
	return r.db.Save(user).Error
}

// UpdateFields applies a partial update to a user row.
func (r *Repository) UpdateFields(id uint, fields map[string]any) error {
	return r.db.Model(&entities.User{}).Where("id = ?", id).Updates(fields).Error
}

// Count returns the number of users.
func (r *Repository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&entities.User{}).Count(&count).Error
	return count, err
}
